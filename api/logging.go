// File: api/logging.go
// Author: momentics <momentics@gmail.com>
//
// Injected structured-logging capability. The transport reports hard
// failures through this sink as a diagnostics side channel; it is never
// consulted for control flow.

package api

// Logger is the logging sink collaborator. Implementations must be safe
// for fire-and-forget use from the transport hot path.
type Logger interface {
	Errorf(format string, args ...any)
	Infof(format string, args ...any)
	Debugf(format string, args ...any)
}
