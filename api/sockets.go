// File: api/sockets.go
// Author: momentics <momentics@gmail.com>
//
// Contract of the raw socket primitive the polling transport delegates to.
// Platform implementations live in the sockets package; a scripted fake
// lives in the fake package.

package api

import (
	"context"
	"net"
	"strconv"
	"time"
)

// ServerInfo identifies the peer to connect to.
type ServerInfo struct {
	Host string
	Port uint16
}

// Addr renders the host:port form accepted by resolvers.
func (s ServerInfo) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(int(s.Port)))
}

// Sockets is the raw socket primitive. Descriptors are opaque handles
// owned by exactly one Transport at a time.
//
// Read reporting (0, nil) means end of stream; the transport combines that
// with a preceding PollReady to classify a peer close. Errno-style causes
// are wrapped into returned errors and passed through to the logging sink,
// never interpreted here.
type Sockets interface {
	// Connect resolves the server address, creates a stream socket and
	// establishes the connection, honoring ctx for cancellation. The
	// timeouts are applied to the new descriptor as its per-direction
	// kernel I/O timeouts where the platform supports that.
	Connect(ctx context.Context, server ServerInfo, sendTimeout, recvTimeout time.Duration) (fd int, err error)

	// Disconnect releases the descriptor. Not idempotent: the second
	// call on the same descriptor fails.
	Disconnect(fd int) error

	// Read performs one read of up to len(p) bytes.
	Read(fd int, p []byte) (int, error)

	// Write performs one write of up to len(p) bytes.
	Write(fd int, p []byte) (int, error)

	// PollReadable waits up to budget for the descriptor to become
	// readable. The returned error is non-nil exactly when the status
	// is PollError.
	PollReadable(fd int, budget time.Duration) (PollStatus, error)

	// PollWritable is the write-direction twin of PollReadable.
	PollWritable(fd int, budget time.Duration) (PollStatus, error)
}
