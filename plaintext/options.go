// File: plaintext/options.go
// Package plaintext defines functional options for Transport construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package plaintext

import (
	"github.com/momentics/plainsock/api"
	"github.com/momentics/plainsock/control"
	"github.com/momentics/plainsock/session"
)

// Option customizes Transport initialization.
type Option func(*Transport)

// WithLogger injects the diagnostics sink. Defaults to a no-op logger.
func WithLogger(log api.Logger) Option {
	return func(t *Transport) {
		if log != nil {
			t.log = log
		}
	}
}

// WithMetrics attaches a counter registry fed by the transport hot path.
func WithMetrics(mr *control.MetricsRegistry) Option {
	return func(t *Transport) {
		t.metrics = mr
	}
}

// WithSessions registers connections in the given registry for the
// lifetime of each connect/disconnect pair.
func WithSessions(r *session.Registry) Option {
	return func(t *Transport) {
		t.sessions = r
	}
}
