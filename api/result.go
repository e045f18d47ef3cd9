// File: api/result.go
// Author: momentics <momentics@gmail.com>
//
// Tagged I/O outcome for Send/Recv. Replaces the classic C convention of
// overloading a signed byte count (0 for timeout, -1 for both poll errors
// and peer close) with an explicit result kind.

package api

// Outcome tags the result of a single bounded Send or Recv call.
type Outcome int

const (
	// OutcomeData: bytes were transferred. N holds the count, which may
	// be short of the buffer size; the caller loops at a higher layer.
	OutcomeData Outcome = iota

	// OutcomeWouldBlock: the readiness poll timed out. No bytes moved,
	// the connection is presumed alive, the caller may retry later.
	OutcomeWouldBlock

	// OutcomeClosed: the descriptor was ready but the transfer moved
	// zero bytes, meaning the peer closed the connection. The channel
	// will never produce more data; tear the connection down.
	OutcomeClosed

	// OutcomeError: the poll or the transfer itself failed hard.
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeData:
		return "data"
	case OutcomeWouldBlock:
		return "would-block"
	case OutcomeClosed:
		return "closed"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// IOResult is the per-call result of Send/Recv. N is meaningful only when
// Outcome is OutcomeData.
type IOResult struct {
	Outcome Outcome
	N       int
}
