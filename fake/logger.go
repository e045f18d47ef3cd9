// Package fake
// Author: momentics <momentics@gmail.com>
//
// Recording logger for asserting on the transport's diagnostics side
// channel without a real logging backend.

package fake

import (
	"fmt"
	"sync"
)

// Logger records every formatted entry it receives.
type Logger struct {
	mu     sync.Mutex
	errors []string
	infos  []string
	debugs []string
}

// NewLogger creates an empty recording logger.
func NewLogger() *Logger {
	return &Logger{}
}

// Errorf implements api.Logger.
func (l *Logger) Errorf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

// Infof implements api.Logger.
func (l *Logger) Infof(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

// Debugf implements api.Logger.
func (l *Logger) Debugf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugs = append(l.debugs, fmt.Sprintf(format, args...))
}

// Errors returns a copy of the recorded error entries.
func (l *Logger) Errors() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.errors...)
}

// ErrorCount reports how many error entries were recorded.
func (l *Logger) ErrorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.errors)
}
