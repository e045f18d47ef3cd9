//go:build linux

// File: reactor/reactor_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux epoll(7)-based reactor. One kernel wait drains up to batchSize
// events into a FIFO carry-over queue, from which callers consume in
// batches of their own size; leftover events survive to the next Wait
// without re-entering the kernel.

package reactor

import (
	"fmt"
	"time"

	"github.com/eapache/queue"
	"golang.org/x/sys/unix"
)

const batchSize = 128

type epollReactor struct {
	epfd    int
	raw     []unix.EpollEvent
	pending *queue.Queue
}

func newReactor() (EventReactor, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("epoll create: %w", err)
	}
	return &epollReactor{
		epfd:    epfd,
		raw:     make([]unix.EpollEvent, batchSize),
		pending: queue.New(),
	}, nil
}

// Register adds a descriptor to the epoll interest set, level-triggered.
func (r *epollReactor) Register(fd int, interest Interest) error {
	ev := unix.EpollEvent{Fd: int32(fd)}
	if interest&InterestRead != 0 {
		ev.Events |= unix.EPOLLIN
	}
	if interest&InterestWrite != 0 {
		ev.Events |= unix.EPOLLOUT
	}
	if err := unix.EpollCtl(r.epfd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
		return fmt.Errorf("epoll ctl add fd %d: %w", fd, err)
	}
	return nil
}

// Unregister removes a descriptor from the interest set.
func (r *epollReactor) Unregister(fd int) error {
	if err := unix.EpollCtl(r.epfd, unix.EPOLL_CTL_DEL, fd, nil); err != nil {
		return fmt.Errorf("epoll ctl del fd %d: %w", fd, err)
	}
	return nil
}

// Wait serves events from the carry-over queue, refilling it with one
// kernel wait when empty.
func (r *epollReactor) Wait(events []Event, budget time.Duration) (int, error) {
	if len(events) == 0 {
		return 0, fmt.Errorf("reactor wait: empty event slice")
	}

	if r.pending.Length() == 0 {
		if err := r.fill(budget); err != nil {
			return 0, err
		}
	}

	n := 0
	for n < len(events) && r.pending.Length() > 0 {
		events[n] = r.pending.Remove().(Event)
		n++
	}
	return n, nil
}

func (r *epollReactor) fill(budget time.Duration) error {
	timeout := -1
	if budget >= 0 {
		timeout = int(budget.Milliseconds())
	}

	n, err := unix.EpollWait(r.epfd, r.raw, timeout)
	if err != nil {
		if err == unix.EINTR {
			// Interrupted by a signal: report as an elapsed budget.
			return nil
		}
		return fmt.Errorf("epoll wait: %w", err)
	}

	for i := 0; i < n; i++ {
		raw := r.raw[i]
		hangup := raw.Events&(unix.EPOLLHUP|unix.EPOLLERR) != 0
		r.pending.Add(Event{
			FD:       int(raw.Fd),
			Readable: raw.Events&unix.EPOLLIN != 0 || hangup,
			Writable: raw.Events&unix.EPOLLOUT != 0,
			Hangup:   hangup,
		})
	}
	return nil
}

// Close releases the epoll descriptor.
func (r *epollReactor) Close() error {
	return unix.Close(r.epfd)
}
