// File: plaintext/plaintext.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Polling plaintext transport over a raw stream socket.

package plaintext

import (
	"context"
	"fmt"
	"time"

	"github.com/momentics/plainsock/api"
	"github.com/momentics/plainsock/control"
	"github.com/momentics/plainsock/session"
)

// DefaultPollBudget bounds one readiness wait when the caller supplies no
// timeout at connect time.
const DefaultPollBudget = 500 * time.Millisecond

// Transport is the polling plaintext transport. The zero value is not
// usable; construct with New. The struct is owned by its caller for the
// whole connection lifetime: Connect fills in the descriptor, Disconnect
// invalidates it.
type Transport struct {
	sock     api.Sockets
	log      api.Logger
	metrics  *control.MetricsRegistry
	sessions *session.Registry

	fd         int
	connected  bool
	sendBudget time.Duration
	recvBudget time.Duration
	id         string
	server     api.ServerInfo
}

// Compile-time interface compliance.
var _ api.Transport = (*Transport)(nil)

type nopLogger struct{}

func (nopLogger) Errorf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Debugf(string, ...any) {}

// New creates an unconnected Transport delegating raw socket work to sock.
func New(sock api.Sockets, opts ...Option) *Transport {
	t := &Transport{
		sock: sock,
		log:  nopLogger{},
		fd:   -1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Connect establishes the connection with a single attempt; failures are
// reported as-is, no retry is made here. The supplied timeouts become the
// per-call poll budgets for Send and Recv; zero values select
// DefaultPollBudget.
func (t *Transport) Connect(ctx context.Context, server api.ServerInfo, sendTimeout, recvTimeout time.Duration) error {
	if t == nil || t.sock == nil {
		return api.ErrInvalidArgument
	}
	if t.connected {
		return api.ErrAlreadyConnected
	}

	fd, err := t.sock.Connect(ctx, server, sendTimeout, recvTimeout)
	if err != nil {
		return err
	}

	t.fd = fd
	t.server = server
	t.connected = true
	t.sendBudget = budgetOrDefault(sendTimeout)
	t.recvBudget = budgetOrDefault(recvTimeout)

	if t.sessions != nil {
		t.id = t.sessions.Add(fd, server).ID
	}
	if t.metrics != nil {
		t.metrics.Inc(control.MetricConnects)
	}
	t.log.Debugf("connected to %s (fd=%d id=%s)", server.Addr(), fd, t.id)
	return nil
}

// Disconnect releases the underlying socket. Not idempotent: the second
// call fails with ErrNotConnected instead of touching a recycled
// descriptor. The transport is unconnected afterwards even when the
// collaborator reports a close failure.
func (t *Transport) Disconnect() error {
	if t == nil || t.sock == nil {
		return api.ErrInvalidArgument
	}
	if !t.connected {
		return api.ErrNotConnected
	}

	err := t.sock.Disconnect(t.fd)

	t.connected = false
	t.fd = -1
	if t.sessions != nil && t.id != "" {
		t.sessions.Remove(t.id)
	}
	if t.metrics != nil {
		t.metrics.Inc(control.MetricDisconnects)
	}
	t.log.Debugf("disconnected from %s (id=%s)", t.server.Addr(), t.id)
	return err
}

// Recv waits up to the receive budget for readability, then performs at
// most one read of up to len(p) bytes. See api.Outcome for the result
// taxonomy. Calling Recv with an empty buffer is a contract violation and
// panics.
func (t *Transport) Recv(p []byte) (api.IOResult, error) {
	t.assertUsable("Recv", p)
	if !t.connected {
		return api.IOResult{Outcome: api.OutcomeError}, api.ErrNotConnected
	}

	status, perr := t.sock.PollReadable(t.fd, t.recvBudget)
	switch status {
	case api.PollError:
		err := perr
		if err == nil {
			err = api.ErrPollFailed
		}
		t.logTransportError(err)
		t.count(control.MetricHardErrors, 1)
		return api.IOResult{Outcome: api.OutcomeError}, api.NewError(api.ErrCodePollFailed, "recv poll", err)
	case api.PollTimeout:
		t.count(control.MetricPollTimeouts, 1)
		return api.IOResult{Outcome: api.OutcomeWouldBlock}, nil
	}

	n, err := t.sock.Read(t.fd, p)
	if err != nil {
		t.logTransportError(err)
		t.count(control.MetricHardErrors, 1)
		return api.IOResult{Outcome: api.OutcomeError}, api.NewError(api.ErrCodeIO, "recv", err)
	}
	if n == 0 {
		// Ready descriptor with an empty read: the peer closed.
		t.logTransportError(api.ErrConnectionClosed)
		t.count(control.MetricPeerCloses, 1)
		return api.IOResult{Outcome: api.OutcomeClosed}, api.ErrConnectionClosed
	}

	t.count(control.MetricBytesReceived, uint64(n))
	return api.IOResult{Outcome: api.OutcomeData, N: n}, nil
}

// Send waits up to the send budget for writability, then performs at most
// one write of up to len(p) bytes. Short writes are returned as-is; the
// owning layer loops. Calling Send with an empty buffer panics.
func (t *Transport) Send(p []byte) (api.IOResult, error) {
	t.assertUsable("Send", p)
	if !t.connected {
		return api.IOResult{Outcome: api.OutcomeError}, api.ErrNotConnected
	}

	status, perr := t.sock.PollWritable(t.fd, t.sendBudget)
	switch status {
	case api.PollError:
		err := perr
		if err == nil {
			err = api.ErrPollFailed
		}
		t.logTransportError(err)
		t.count(control.MetricHardErrors, 1)
		return api.IOResult{Outcome: api.OutcomeError}, api.NewError(api.ErrCodePollFailed, "send poll", err)
	case api.PollTimeout:
		t.count(control.MetricPollTimeouts, 1)
		return api.IOResult{Outcome: api.OutcomeWouldBlock}, nil
	}

	n, err := t.sock.Write(t.fd, p)
	if err != nil {
		t.logTransportError(err)
		t.count(control.MetricHardErrors, 1)
		return api.IOResult{Outcome: api.OutcomeError}, api.NewError(api.ErrCodeIO, "send", err)
	}
	if n == 0 {
		// Writable descriptor accepting zero bytes: the peer closed.
		t.logTransportError(api.ErrConnectionClosed)
		t.count(control.MetricPeerCloses, 1)
		return api.IOResult{Outcome: api.OutcomeClosed}, api.ErrConnectionClosed
	}

	t.count(control.MetricBytesSent, uint64(n))
	return api.IOResult{Outcome: api.OutcomeData, N: n}, nil
}

// State reports the connection lifecycle state.
func (t *Transport) State() api.ConnState {
	if t == nil || !t.connected {
		return api.StateUnconnected
	}
	return api.StateConnected
}

// ID returns the session identifier assigned at connect time, or "" when
// no session registry is attached.
func (t *Transport) ID() string {
	return t.id
}

// FD exposes the raw descriptor for readiness-registration in an external
// reactor. Valid only while connected.
func (t *Transport) FD() int {
	return t.fd
}

// assertUsable enforces the hot-path preconditions. These are contract
// breaches by the caller, not recoverable errors.
func (t *Transport) assertUsable(op string, p []byte) {
	if t == nil || t.sock == nil {
		panic(fmt.Sprintf("plaintext: %s on transport without socket primitive", op))
	}
	if len(p) == 0 {
		panic(fmt.Sprintf("plaintext: %s with empty buffer", op))
	}
}

func (t *Transport) logTransportError(err error) {
	t.log.Errorf("transport error on connection %s: %v", t.id, err)
}

func (t *Transport) count(key string, delta uint64) {
	if t.metrics != nil {
		t.metrics.Add(key, delta)
	}
}

func budgetOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultPollBudget
	}
	return d
}
