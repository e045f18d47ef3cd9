//go:build linux

// File: sockets/sockets_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux socket primitive over raw descriptors: non-blocking connect with
// a writability wait, poll(2)-based single-descriptor readiness checks,
// and one-shot read/write attempts.

package sockets

import (
	"context"
	"fmt"
	"net"
	"time"

	"golang.org/x/sys/unix"

	"github.com/momentics/plainsock/api"
)

type unixSockets struct{}

func newSockets() api.Sockets {
	return &unixSockets{}
}

// Connect resolves the address, creates a non-blocking TCP socket and
// completes the handshake within the context deadline (or
// DefaultDialTimeout). The send/recv timeouts are installed as kernel
// I/O timeouts on the new descriptor.
func (s *unixSockets) Connect(ctx context.Context, server api.ServerInfo, sendTimeout, recvTimeout time.Duration) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}

	tcpAddr, err := resolve(server)
	if err != nil {
		return -1, err
	}
	sa, family, err := sockaddrFor(tcpAddr)
	if err != nil {
		return -1, err
	}

	fd, err := unix.Socket(family, unix.SOCK_STREAM|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, unix.IPPROTO_TCP)
	if err != nil {
		return -1, fmt.Errorf("socket create: %w", err)
	}
	_ = unix.SetsockoptInt(fd, unix.IPPROTO_TCP, unix.TCP_NODELAY, 1)
	setKernelTimeout(fd, unix.SO_SNDTIMEO, sendTimeout)
	setKernelTimeout(fd, unix.SO_RCVTIMEO, recvTimeout)

	err = unix.Connect(fd, sa)
	if err == unix.EINPROGRESS {
		err = s.awaitHandshake(ctx, fd)
	}
	if err != nil {
		_ = unix.Close(fd)
		return -1, fmt.Errorf("connect %s: %w", server.Addr(), err)
	}
	return fd, nil
}

// awaitHandshake waits for the in-progress connect to finish and surfaces
// the socket-level result via SO_ERROR.
func (s *unixSockets) awaitHandshake(ctx context.Context, fd int) error {
	budget := DefaultDialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		budget = time.Until(deadline)
	}

	status, err := pollOne(fd, unix.POLLOUT, budget)
	if err != nil {
		return err
	}
	if status == api.PollTimeout {
		return unix.ETIMEDOUT
	}

	soErr, err := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_ERROR)
	if err != nil {
		return fmt.Errorf("getsockopt SO_ERROR: %w", err)
	}
	if soErr != 0 {
		return unix.Errno(soErr)
	}
	return nil
}

// Disconnect releases the descriptor.
func (s *unixSockets) Disconnect(fd int) error {
	if err := unix.Close(fd); err != nil {
		return fmt.Errorf("close fd %d: %w", fd, err)
	}
	return nil
}

// Read performs one read attempt. (0, nil) means end of stream.
func (s *unixSockets) Read(fd int, p []byte) (int, error) {
	n, err := unix.Read(fd, p)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Write performs one write attempt; the count may be short.
func (s *unixSockets) Write(fd int, p []byte) (int, error) {
	n, err := unix.Write(fd, p)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// PollReadable waits up to budget for the descriptor to become readable.
func (s *unixSockets) PollReadable(fd int, budget time.Duration) (api.PollStatus, error) {
	return pollOne(fd, unix.POLLIN, budget)
}

// PollWritable waits up to budget for the descriptor to become writable.
func (s *unixSockets) PollWritable(fd int, budget time.Duration) (api.PollStatus, error) {
	return pollOne(fd, unix.POLLOUT, budget)
}

// pollOne is the single-descriptor readiness wait behind both directions.
// Hangup and error conditions are reported as ready so that the following
// one-shot I/O attempt observes the definitive result (a zero-byte read
// for a closed peer, an errno for a broken descriptor), mirroring
// select(2) semantics.
func pollOne(fd int, events int16, budget time.Duration) (api.PollStatus, error) {
	if budget < 0 {
		budget = 0
	}
	fds := []unix.PollFd{{Fd: int32(fd), Events: events}}

	n, err := unix.Poll(fds, int(budget.Milliseconds()))
	if err != nil {
		return api.PollError, fmt.Errorf("poll fd %d: %w", fd, err)
	}
	if n == 0 {
		return api.PollTimeout, nil
	}
	if fds[0].Revents&unix.POLLNVAL != 0 {
		return api.PollError, fmt.Errorf("poll fd %d: %w", fd, unix.EBADF)
	}
	return api.PollReady, nil
}

// setKernelTimeout installs a per-direction kernel I/O timeout. Zero means
// no kernel timeout, matching the poll-before-I/O discipline above it.
func setKernelTimeout(fd int, opt int, d time.Duration) {
	if d <= 0 {
		return
	}
	tv := unix.NsecToTimeval(d.Nanoseconds())
	_ = unix.SetsockoptTimeval(fd, unix.SOL_SOCKET, opt, &tv)
}

// sockaddrFor converts a resolved TCP address into the kernel form.
func sockaddrFor(addr *net.TCPAddr) (unix.Sockaddr, int, error) {
	if ip4 := addr.IP.To4(); ip4 != nil {
		sa := &unix.SockaddrInet4{Port: addr.Port}
		copy(sa.Addr[:], ip4)
		return sa, unix.AF_INET, nil
	}
	if ip6 := addr.IP.To16(); ip6 != nil {
		sa := &unix.SockaddrInet6{Port: addr.Port}
		copy(sa.Addr[:], ip6)
		return sa, unix.AF_INET6, nil
	}
	return nil, 0, fmt.Errorf("no usable address for %s: %w", addr.String(), api.ErrInvalidArgument)
}
