// File: facade/plainsock.go
// Unified facade layer for the plainsock library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Aggregates the socket primitive, logger, metrics registry, session
// registry and configuration store behind a single entry point. The
// facade exposes Dial for building connected transports, a Control store
// whose updates retune the poll budgets of future dials, and snapshot
// accessors for metrics and live sessions.

package facade

import (
	"context"
	"sync"
	"time"

	"github.com/momentics/plainsock/adapters"
	"github.com/momentics/plainsock/api"
	"github.com/momentics/plainsock/control"
	"github.com/momentics/plainsock/logging"
	"github.com/momentics/plainsock/plaintext"
	"github.com/momentics/plainsock/session"
	"github.com/momentics/plainsock/sockets"
)

// Config holds the per-facade defaults applied to every dialed transport.
type Config struct {
	SendTimeout   time.Duration // Poll budget for Send; 0 selects the library default
	RecvTimeout   time.Duration // Poll budget for Recv; 0 selects the library default
	DialTimeout   time.Duration // Bound on connection establishment
	EnableMetrics bool          // Whether to collect transport counters
	Verbose       bool          // Whether the console logger emits debug lines
}

// DefaultConfig returns the defaults: the transport's 500 ms poll budget
// in both directions and a 10 s dial bound.
func DefaultConfig() *Config {
	return &Config{
		SendTimeout:   plaintext.DefaultPollBudget,
		RecvTimeout:   plaintext.DefaultPollBudget,
		DialTimeout:   sockets.DefaultDialTimeout,
		EnableMetrics: true,
		Verbose:       false,
	}
}

// Option customizes facade initialization.
type Option func(*Plainsock)

// WithSockets replaces the platform socket primitive, e.g. with a fake.
func WithSockets(s api.Sockets) Option {
	return func(p *Plainsock) {
		if s != nil {
			p.sock = s
		}
	}
}

// WithLogger replaces the console logger.
func WithLogger(l api.Logger) Option {
	return func(p *Plainsock) {
		if l != nil {
			p.log = l
		}
	}
}

// Plainsock is the facade over the transport stack.
type Plainsock struct {
	sock     api.Sockets
	log      api.Logger
	metrics  *control.MetricsRegistry
	sessions *session.Registry
	store    *control.ConfigStore

	mu  sync.RWMutex
	cfg Config
}

// New constructs a facade from cfg; nil selects DefaultConfig.
func New(cfg *Config, opts ...Option) *Plainsock {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	p := &Plainsock{
		sock:     sockets.New(),
		log:      logging.NewConsole(cfg.Verbose),
		sessions: session.NewRegistry(),
		store:    control.NewConfigStore(),
		cfg:      *cfg,
	}
	if cfg.EnableMetrics {
		p.metrics = control.NewMetricsRegistry()
	}
	for _, opt := range opts {
		opt(p)
	}

	p.store.SetConfig(map[string]any{
		control.KeySendTimeout: cfg.SendTimeout,
		control.KeyRecvTimeout: cfg.RecvTimeout,
		control.KeyDialTimeout: cfg.DialTimeout,
	})
	p.store.OnReload(p.reload)
	return p
}

// reload pulls retuned budgets from the store; they apply to future dials.
func (p *Plainsock) reload() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.SendTimeout = p.store.GetDuration(control.KeySendTimeout, p.cfg.SendTimeout)
	p.cfg.RecvTimeout = p.store.GetDuration(control.KeyRecvTimeout, p.cfg.RecvTimeout)
	p.cfg.DialTimeout = p.store.GetDuration(control.KeyDialTimeout, p.cfg.DialTimeout)
}

// Dial builds a transport and connects it to server with the facade's
// current budgets.
func (p *Plainsock) Dial(ctx context.Context, server api.ServerInfo) (*plaintext.Transport, error) {
	p.mu.RLock()
	cfg := p.cfg
	p.mu.RUnlock()

	opts := []plaintext.Option{
		plaintext.WithLogger(p.log),
		plaintext.WithSessions(p.sessions),
	}
	if p.metrics != nil {
		opts = append(opts, plaintext.WithMetrics(p.metrics))
	}
	tr := plaintext.New(p.sock, opts...)

	if _, ok := ctx.Deadline(); !ok && cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := tr.Connect(ctx, server, cfg.SendTimeout, cfg.RecvTimeout); err != nil {
		return nil, err
	}
	return tr, nil
}

// DialConn dials and wraps the transport into a blocking connection for
// protocol stacks expecting io.Reader/io.Writer semantics.
func (p *Plainsock) DialConn(ctx context.Context, server api.ServerInfo) (*adapters.Conn, error) {
	tr, err := p.Dial(ctx, server)
	if err != nil {
		return nil, err
	}
	return adapters.NewConn(tr), nil
}

// Control exposes the hot-reload configuration store.
func (p *Plainsock) Control() *control.ConfigStore {
	return p.store
}

// Metrics returns a counter snapshot, or nil when metrics are disabled.
func (p *Plainsock) Metrics() map[string]uint64 {
	if p.metrics == nil {
		return nil
	}
	return p.metrics.GetSnapshot()
}

// Sessions reports the number of live connections.
func (p *Plainsock) Sessions() int {
	return p.sessions.Len()
}
