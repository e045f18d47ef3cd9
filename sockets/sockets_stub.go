//go:build !linux

// File: sockets/sockets_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub socket primitive for platforms without a raw-descriptor
// implementation. Every operation reports api.ErrNotSupported.

package sockets

import (
	"context"
	"time"

	"github.com/momentics/plainsock/api"
)

type stubSockets struct{}

func newSockets() api.Sockets {
	return &stubSockets{}
}

func (s *stubSockets) Connect(context.Context, api.ServerInfo, time.Duration, time.Duration) (int, error) {
	return -1, api.ErrNotSupported
}

func (s *stubSockets) Disconnect(int) error {
	return api.ErrNotSupported
}

func (s *stubSockets) Read(int, []byte) (int, error) {
	return 0, api.ErrNotSupported
}

func (s *stubSockets) Write(int, []byte) (int, error) {
	return 0, api.ErrNotSupported
}

func (s *stubSockets) PollReadable(int, time.Duration) (api.PollStatus, error) {
	return api.PollError, api.ErrNotSupported
}

func (s *stubSockets) PollWritable(int, time.Duration) (api.PollStatus, error) {
	return api.PollError, api.ErrNotSupported
}
