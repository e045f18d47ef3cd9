// File: session/registry.go
// Package session
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Registry of live transport connections. Each connection gets a unique
// identifier used to correlate log entries and facade introspection with
// a specific descriptor.

package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/momentics/plainsock/api"
)

// Entry describes one live connection.
type Entry struct {
	ID       string
	FD       int
	Server   api.ServerInfo
	State    api.ConnState
	OpenedAt time.Time
}

// Registry tracks live connections by ID.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
	}
}

// Add registers a freshly connected descriptor and returns its entry.
func (r *Registry) Add(fd int, server api.ServerInfo) *Entry {
	e := &Entry{
		ID:       uuid.NewString(),
		FD:       fd,
		Server:   server,
		State:    api.StateConnected,
		OpenedAt: time.Now(),
	}
	r.mu.Lock()
	r.entries[e.ID] = e
	r.mu.Unlock()
	return e
}

// Remove marks the connection closed and drops it from the registry.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	if e, ok := r.entries[id]; ok {
		e.State = api.StateClosed
		delete(r.entries, id)
	}
	r.mu.Unlock()
}

// Get looks up a live connection.
func (r *Registry) Get(id string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	return e, ok
}

// Len reports the number of live connections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Snapshot returns a copy of all live entries.
func (r *Registry) Snapshot() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, *e)
	}
	return out
}
