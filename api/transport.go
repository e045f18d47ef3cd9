// File: api/transport.go
// Author: momentics <momentics@gmail.com>
//
// Defines the generic network-interface contract satisfied polymorphically
// by alternative transports (plaintext today, a TLS-wrapped one above it).

package api

import (
	"context"
	"time"
)

// Transport is a blocking-with-timeout transport over one stream socket.
//
// Operations on one Transport must be invoked sequentially by a single
// owner; concurrent Send and Recv from different goroutines are permitted
// because they use independent readiness checks, but two concurrent Sends
// (or Recvs) are not supported and no internal locking is provided.
type Transport interface {
	// Connect establishes the connection. The timeouts become the
	// per-call poll budgets for Send and Recv; zero selects the
	// library default.
	Connect(ctx context.Context, server ServerInfo, sendTimeout, recvTimeout time.Duration) error

	// Disconnect releases the underlying socket. Not idempotent.
	Disconnect() error

	// Send attempts one bounded write of p. May transfer fewer bytes
	// than len(p); the caller loops at a higher layer.
	Send(p []byte) (IOResult, error)

	// Recv attempts one bounded read into p.
	Recv(p []byte) (IOResult, error)
}

// NetConn abstracts a conventional blocking full-duplex connection, for
// layering protocol stacks that expect io.Reader/io.Writer semantics on
// top of a Transport. See the adapters package.
type NetConn interface {
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	Close() error
}
