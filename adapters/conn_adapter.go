// File: adapters/conn_adapter.go
// Package adapters bridges the tagged-outcome Transport to conventional
// blocking connection contracts.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package adapters

import (
	"errors"
	"io"

	"github.com/momentics/plainsock/api"
)

// Conn adapts an api.Transport into the blocking api.NetConn shape
// expected by protocol stacks built on io.Reader/io.Writer. The
// retry-on-would-block and short-write loops that the transport core
// deliberately omits live here, one layer above it.
type Conn struct {
	transport api.Transport
}

// Compile-time interface compliance.
var _ api.NetConn = (*Conn)(nil)

// NewConn wraps a connected transport.
func NewConn(t api.Transport) *Conn {
	return &Conn{transport: t}
}

// Read blocks until at least one byte arrives, the peer closes, or a hard
// error occurs. Would-block windows are retried transparently, each one
// bounded by the transport's poll budget.
func (c *Conn) Read(p []byte) (int, error) {
	for {
		res, err := c.transport.Recv(p)
		switch res.Outcome {
		case api.OutcomeData:
			return res.N, nil
		case api.OutcomeWouldBlock:
			continue
		case api.OutcomeClosed:
			return 0, io.EOF
		default:
			return 0, err
		}
	}
}

// Write blocks until all of p is accepted, looping over short writes and
// would-block windows.
func (c *Conn) Write(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		res, err := c.transport.Send(p[total:])
		switch res.Outcome {
		case api.OutcomeData:
			total += res.N
		case api.OutcomeWouldBlock:
			continue
		case api.OutcomeClosed:
			return total, io.ErrClosedPipe
		default:
			return total, err
		}
	}
	return total, nil
}

// Close tears the connection down. A close racing an already-torn-down
// transport reports success.
func (c *Conn) Close() error {
	err := c.transport.Disconnect()
	if errors.Is(err, api.ErrNotConnected) {
		return nil
	}
	return err
}
