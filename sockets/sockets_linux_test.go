//go:build linux

package sockets_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/momentics/plainsock/api"
	"github.com/momentics/plainsock/sockets"
)

// startListener returns a loopback listener and its ServerInfo.
func startListener(t *testing.T) (net.Listener, api.ServerInfo) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	t.Cleanup(func() { ln.Close() })
	port := ln.Addr().(*net.TCPAddr).Port
	return ln, api.ServerInfo{Host: "127.0.0.1", Port: uint16(port)}
}

func TestConnect_Loopback(t *testing.T) {
	ln, server := startListener(t)
	s := sockets.New()

	fd, err := s.Connect(context.Background(), server, 0, 0)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer s.Disconnect(fd)

	peer, err := ln.Accept()
	if err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	defer peer.Close()

	// Nothing written yet: a short readability wait must time out.
	status, err := s.PollReadable(fd, 50*time.Millisecond)
	if err != nil || status != api.PollTimeout {
		t.Errorf("idle poll = %v err=%v, want timeout", status, err)
	}

	if _, err := peer.Write([]byte("hello")); err != nil {
		t.Fatalf("peer write failed: %v", err)
	}

	status, err = s.PollReadable(fd, time.Second)
	if err != nil || status != api.PollReady {
		t.Fatalf("poll after write = %v err=%v, want ready", status, err)
	}

	buf := make([]byte, 16)
	n, err := s.Read(fd, buf)
	if err != nil || n != 5 || string(buf[:n]) != "hello" {
		t.Errorf("read = %d %q err=%v, want 5 bytes 'hello'", n, buf[:n], err)
	}

	// A fresh connection is immediately writable.
	status, err = s.PollWritable(fd, time.Second)
	if err != nil || status != api.PollReady {
		t.Errorf("writable poll = %v err=%v, want ready", status, err)
	}
	if n, err := s.Write(fd, []byte("pong")); err != nil || n != 4 {
		t.Errorf("write = %d err=%v, want 4", n, err)
	}
}

func TestRead_PeerCloseYieldsReadyThenZero(t *testing.T) {
	ln, server := startListener(t)
	s := sockets.New()

	fd, err := s.Connect(context.Background(), server, 0, 0)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer s.Disconnect(fd)

	peer, err := ln.Accept()
	if err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	peer.Close()

	status, err := s.PollReadable(fd, time.Second)
	if err != nil || status != api.PollReady {
		t.Fatalf("poll after close = %v err=%v, want ready", status, err)
	}

	n, err := s.Read(fd, make([]byte, 16))
	if err != nil || n != 0 {
		t.Errorf("read after close = %d err=%v, want (0, nil)", n, err)
	}
}

func TestConnect_Refused(t *testing.T) {
	ln, server := startListener(t)
	ln.Close() // free the port so the connect is refused

	s := sockets.New()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := s.Connect(ctx, server, 0, 0); err == nil {
		t.Error("expected connection failure on closed port")
	}
}

func TestConnect_CancelledContext(t *testing.T) {
	_, server := startListener(t)
	s := sockets.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Connect(ctx, server, 0, 0); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestDisconnect_NotIdempotent(t *testing.T) {
	_, server := startListener(t)
	s := sockets.New()

	fd, err := s.Connect(context.Background(), server, 0, 0)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}

	if err := s.Disconnect(fd); err != nil {
		t.Fatalf("first disconnect failed: %v", err)
	}
	if err := s.Disconnect(fd); err == nil {
		t.Error("second disconnect succeeded, want error")
	}
}
