// File: plaintext/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package plaintext implements the polling plaintext transport: four
// operations (Connect, Disconnect, Send, Recv) over one raw stream
// socket, each bounded by a readiness-polling budget.
//
// The nontrivial policy lives entirely in Send and Recv: a bounded
// single-descriptor readiness wait decides between exactly one I/O
// attempt (ready), a benign would-block result (timeout), and a hard
// error (wait failure). A zero-byte transfer after a confirmed-ready
// descriptor is escalated to a peer-closed error, disambiguating "nothing
// arrived yet" from "the channel will never produce more data".
//
// The package performs no buffering, framing or retries; short transfers
// are returned as-is and the owning layer loops. Operations on one
// Transport must be externally serialized per direction.
package plaintext
