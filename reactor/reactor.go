// File: reactor/reactor.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral event reactor interface for multi-descriptor
// readiness demultiplexing.

package reactor

import "time"

// Interest selects the directions a descriptor is watched for.
type Interest uint8

const (
	InterestRead Interest = 1 << iota
	InterestWrite
)

// Event reports readiness of one registered descriptor. Hangup and error
// conditions surface as a readable/writable event whose following one-shot
// I/O attempt yields the definitive result, the same policy as the
// single-descriptor poll in the sockets package.
type Event struct {
	FD       int
	Readable bool
	Writable bool
	Hangup   bool
}

// EventReactor demultiplexes readiness across registered descriptors.
type EventReactor interface {
	// Register adds a descriptor with the given interest set.
	Register(fd int, interest Interest) error

	// Unregister removes a descriptor. Callers must unregister before
	// closing the descriptor to avoid stale delivery after fd reuse.
	Unregister(fd int) error

	// Wait fills events with pending readiness, blocking up to budget.
	// Returns 0 when the budget elapses with nothing ready. A negative
	// budget blocks until at least one event arrives.
	Wait(events []Event, budget time.Duration) (int, error)

	// Close releases the kernel demultiplexer.
	Close() error
}

// New constructs the platform-specific EventReactor.
func New() (EventReactor, error) {
	return newReactor()
}
