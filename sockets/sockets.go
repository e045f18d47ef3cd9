// File: sockets/sockets.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-independent facade and factory for the raw socket primitive.
// The platform implementation is selected at build time; on unsupported
// platforms every operation reports api.ErrNotSupported.

package sockets

import (
	"fmt"
	"net"
	"time"

	"github.com/momentics/plainsock/api"
)

// DefaultDialTimeout bounds connection establishment when the caller's
// context carries no deadline.
const DefaultDialTimeout = 10 * time.Second

// New creates the socket primitive suitable for the host platform.
func New() api.Sockets {
	return newSockets()
}

// resolve maps server info to a concrete TCP address, performing name
// resolution when Host is not a literal IP.
func resolve(server api.ServerInfo) (*net.TCPAddr, error) {
	addr, err := net.ResolveTCPAddr("tcp", server.Addr())
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", server.Addr(), err)
	}
	return addr, nil
}
