// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementations for testing and development.
// Provides predictable, scriptable behavior for the api.Sockets and
// api.Logger collaborators.

package fake

import (
	"context"
	"sync"
	"time"

	"github.com/momentics/plainsock/api"
)

// PollStep scripts one readiness-wait outcome.
type PollStep struct {
	Status api.PollStatus
	Err    error
}

// IOStep scripts one Read or Write outcome.
type IOStep struct {
	N   int
	Err error
}

// ConnectCall records the arguments of one Connect invocation.
type ConnectCall struct {
	Server      api.ServerInfo
	SendTimeout time.Duration
	RecvTimeout time.Duration
}

// PollCall records the arguments of one readiness wait.
type PollCall struct {
	FD     int
	Budget time.Duration
}

// Sockets is a scripted implementation of api.Sockets. Outcomes are
// queued per operation; an exhausted queue yields a benign default
// (connect succeeds, polls report ready, reads return EOF-style zero,
// writes accept everything).
type Sockets struct {
	mu sync.Mutex

	nextFD     int
	connectErr error

	readPolls  []PollStep
	writePolls []PollStep
	reads      []IOStep
	writes     []IOStep

	disconnectErr error

	// Recorded calls, in order.
	Connects      []ConnectCall
	Disconnects   []int
	ReadPollCalls []PollCall
	WritePollCall []PollCall
	ReadCalls     int
	WriteCalls    int
	Written       [][]byte
}

// NewSockets creates a fake socket primitive handing out descriptors
// starting at 3.
func NewSockets() *Sockets {
	return &Sockets{nextFD: 3}
}

// SetConnectError makes subsequent Connect calls fail.
func (s *Sockets) SetConnectError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connectErr = err
}

// SetDisconnectError makes subsequent Disconnect calls fail.
func (s *Sockets) SetDisconnectError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disconnectErr = err
}

// QueueReadPoll appends a scripted PollReadable outcome.
func (s *Sockets) QueueReadPoll(status api.PollStatus, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readPolls = append(s.readPolls, PollStep{Status: status, Err: err})
}

// QueueWritePoll appends a scripted PollWritable outcome.
func (s *Sockets) QueueWritePoll(status api.PollStatus, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writePolls = append(s.writePolls, PollStep{Status: status, Err: err})
}

// QueueRead appends a scripted Read outcome.
func (s *Sockets) QueueRead(n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads = append(s.reads, IOStep{N: n, Err: err})
}

// QueueWrite appends a scripted Write outcome.
func (s *Sockets) QueueWrite(n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, IOStep{N: n, Err: err})
}

// Connect implements api.Sockets.Connect.
func (s *Sockets) Connect(_ context.Context, server api.ServerInfo, sendTimeout, recvTimeout time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Connects = append(s.Connects, ConnectCall{
		Server:      server,
		SendTimeout: sendTimeout,
		RecvTimeout: recvTimeout,
	})
	if s.connectErr != nil {
		return -1, s.connectErr
	}
	fd := s.nextFD
	s.nextFD++
	return fd, nil
}

// Disconnect implements api.Sockets.Disconnect.
func (s *Sockets) Disconnect(fd int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Disconnects = append(s.Disconnects, fd)
	return s.disconnectErr
}

// Read implements api.Sockets.Read.
func (s *Sockets) Read(_ int, p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ReadCalls++
	if len(s.reads) == 0 {
		return 0, nil
	}
	step := s.reads[0]
	s.reads = s.reads[1:]
	n := step.N
	if n > len(p) {
		n = len(p)
	}
	return n, step.Err
}

// Write implements api.Sockets.Write.
func (s *Sockets) Write(_ int, p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.WriteCalls++
	s.Written = append(s.Written, append([]byte(nil), p...))
	if len(s.writes) == 0 {
		return len(p), nil
	}
	step := s.writes[0]
	s.writes = s.writes[1:]
	n := step.N
	if n > len(p) {
		n = len(p)
	}
	return n, step.Err
}

// PollReadable implements api.Sockets.PollReadable.
func (s *Sockets) PollReadable(fd int, budget time.Duration) (api.PollStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ReadPollCalls = append(s.ReadPollCalls, PollCall{FD: fd, Budget: budget})
	if len(s.readPolls) == 0 {
		return api.PollReady, nil
	}
	step := s.readPolls[0]
	s.readPolls = s.readPolls[1:]
	return step.Status, step.Err
}

// PollWritable implements api.Sockets.PollWritable.
func (s *Sockets) PollWritable(fd int, budget time.Duration) (api.PollStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.WritePollCall = append(s.WritePollCall, PollCall{FD: fd, Budget: budget})
	if len(s.writePolls) == 0 {
		return api.PollReady, nil
	}
	step := s.writePolls[0]
	s.writePolls = s.writePolls[1:]
	return step.Status, step.Err
}

// TotalCalls reports how many collaborator calls were made, for asserting
// that invalid-parameter paths perform no I/O.
func (s *Sockets) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Connects) + len(s.Disconnects) + s.ReadCalls + s.WriteCalls +
		len(s.ReadPollCalls) + len(s.WritePollCall)
}
