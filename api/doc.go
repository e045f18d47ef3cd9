// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package api declares the public contracts of the plainsock library.
//
// The central abstraction is Transport: a blocking-with-timeout plaintext
// transport over a single raw stream socket, suitable as the lowest network
// layer beneath a protocol client (MQTT, HTTP, custom RPC). Every Send/Recv
// call is bounded by a readiness-polling budget, so callers never block
// indefinitely on a peer that stopped responding.
//
// The socket primitive (Sockets) and the logging sink (Logger) are
// collaborators injected into implementations; fakes for both live in the
// fake package.
package api
