// File: reactor/doc.go
// Author: momentics <momentics@gmail.com>
//
// Package reactor generalizes the transport's single-descriptor readiness
// wait to many descriptors for server-side embeddings. It keeps the same
// tri-state contract as the sockets primitive: a Wait that returns events
// (ready), zero events (budget elapsed), or an error.
//
// Wait must be driven from a single goroutine; the reactor provides no
// internal synchronization, matching the transport's single-owner model.
package reactor
