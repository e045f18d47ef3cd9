// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations and constants.

package api

import "time"

// ConnState enumerates the lifecycle of a Transport connection.
type ConnState int

const (
	StateUnconnected ConnState = iota
	StateConnecting
	StateConnected
	StateClosed
)

func (s ConnState) String() string {
	switch s {
	case StateUnconnected:
		return "unconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// TransportStats is a standard layout for transport health reporting.
type TransportStats struct {
	BytesSent     uint64
	BytesReceived uint64
	PollTimeouts  uint64
	PeerCloses    uint64
	HardErrors    uint64
	StartedAt     time.Time
}
