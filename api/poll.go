// File: api/poll.go
// Author: momentics <momentics@gmail.com>
//
// Tri-state readiness contract for single-descriptor polling. The same
// ready/timeout/error triple is the abstraction boundary reused by the
// multi-descriptor reactor package.

package api

// PollStatus is the outcome of a bounded readiness wait on one descriptor.
type PollStatus int

const (
	// PollTimeout means the budget elapsed without the descriptor
	// becoming ready. Benign: nothing to transfer within this window.
	PollTimeout PollStatus = iota

	// PollReady means the descriptor is ready for the requested
	// direction and exactly one I/O attempt may follow.
	PollReady

	// PollError means the wait itself failed. No I/O attempt follows.
	PollError
)

func (s PollStatus) String() string {
	switch s {
	case PollTimeout:
		return "timeout"
	case PollReady:
		return "ready"
	case PollError:
		return "error"
	default:
		return "unknown"
	}
}
