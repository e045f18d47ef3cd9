//go:build !linux

// File: reactor/reactor_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub for platforms without an epoll-equivalent implementation.

package reactor

import "errors"

func newReactor() (EventReactor, error) {
	return nil, errors.New("reactor: not supported on this platform")
}
