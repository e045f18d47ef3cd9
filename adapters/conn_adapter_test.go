package adapters_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/momentics/plainsock/adapters"
	"github.com/momentics/plainsock/api"
	"github.com/momentics/plainsock/fake"
	"github.com/momentics/plainsock/plaintext"
)

func dial(t *testing.T, sock *fake.Sockets) *adapters.Conn {
	t.Helper()
	tr := plaintext.New(sock)
	if err := tr.Connect(context.Background(), api.ServerInfo{Host: "127.0.0.1", Port: 9}, 0, 0); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	return adapters.NewConn(tr)
}

func TestRead_RetriesWouldBlock(t *testing.T) {
	sock := fake.NewSockets()
	conn := dial(t, sock)

	sock.QueueReadPoll(api.PollTimeout, nil)
	sock.QueueReadPoll(api.PollTimeout, nil)
	sock.QueueReadPoll(api.PollReady, nil)
	sock.QueueRead(3, nil)

	buf := make([]byte, 8)
	n, err := conn.Read(buf)
	if err != nil || n != 3 {
		t.Errorf("read = %d err=%v, want 3 bytes after two retries", n, err)
	}
	if len(sock.ReadPollCalls) != 3 {
		t.Errorf("poll calls = %d, want 3", len(sock.ReadPollCalls))
	}
}

func TestRead_PeerCloseBecomesEOF(t *testing.T) {
	sock := fake.NewSockets()
	conn := dial(t, sock)

	sock.QueueReadPoll(api.PollReady, nil)
	sock.QueueRead(0, nil)

	n, err := conn.Read(make([]byte, 8))
	if n != 0 || err != io.EOF {
		t.Errorf("read = %d err=%v, want (0, io.EOF)", n, err)
	}
}

func TestRead_HardErrorPassedThrough(t *testing.T) {
	sock := fake.NewSockets()
	conn := dial(t, sock)

	boom := errors.New("EBADF")
	sock.QueueReadPoll(api.PollError, boom)

	if _, err := conn.Read(make([]byte, 8)); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
}

func TestWrite_LoopsOverShortWrites(t *testing.T) {
	sock := fake.NewSockets()
	conn := dial(t, sock)

	sock.QueueWrite(4, nil)
	sock.QueueWrite(2, nil)
	sock.QueueWrite(4, nil)

	n, err := conn.Write([]byte("0123456789"))
	if err != nil || n != 10 {
		t.Errorf("write = %d err=%v, want all 10 bytes", n, err)
	}
	if sock.WriteCalls != 3 {
		t.Errorf("write calls = %d, want 3", sock.WriteCalls)
	}
}

func TestWrite_ClosedPipe(t *testing.T) {
	sock := fake.NewSockets()
	conn := dial(t, sock)

	sock.QueueWrite(4, nil)
	sock.QueueWrite(0, nil)

	n, err := conn.Write([]byte("0123456789"))
	if n != 4 || err != io.ErrClosedPipe {
		t.Errorf("write = %d err=%v, want (4, ErrClosedPipe)", n, err)
	}
}

func TestClose_SwallowsDoubleClose(t *testing.T) {
	sock := fake.NewSockets()
	conn := dial(t, sock)

	if err := conn.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Errorf("second close = %v, want nil", err)
	}
	if len(sock.Disconnects) != 1 {
		t.Errorf("collaborator closes = %d, want 1", len(sock.Disconnects))
	}
}
