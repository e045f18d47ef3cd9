package facade_test

import (
	"context"
	"testing"
	"time"

	"github.com/momentics/plainsock/api"
	"github.com/momentics/plainsock/control"
	"github.com/momentics/plainsock/facade"
	"github.com/momentics/plainsock/fake"
)

var server = api.ServerInfo{Host: "10.0.0.1", Port: 8883}

func TestDial_WiresTransportStack(t *testing.T) {
	sock := fake.NewSockets()
	log := fake.NewLogger()
	p := facade.New(nil, facade.WithSockets(sock), facade.WithLogger(log))

	tr, err := p.Dial(context.Background(), server)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}

	if tr.State() != api.StateConnected {
		t.Errorf("state = %v, want connected", tr.State())
	}
	if tr.ID() == "" {
		t.Error("transport has no session ID")
	}
	if p.Sessions() != 1 {
		t.Errorf("sessions = %d, want 1", p.Sessions())
	}
	if got := p.Metrics()[control.MetricConnects]; got != 1 {
		t.Errorf("connects counter = %d, want 1", got)
	}

	if err := tr.Disconnect(); err != nil {
		t.Fatalf("disconnect failed: %v", err)
	}
	if p.Sessions() != 0 {
		t.Errorf("sessions after disconnect = %d, want 0", p.Sessions())
	}
}

func TestDial_DefaultBudgetsForwarded(t *testing.T) {
	sock := fake.NewSockets()
	p := facade.New(nil, facade.WithSockets(sock))

	if _, err := p.Dial(context.Background(), server); err != nil {
		t.Fatalf("dial failed: %v", err)
	}

	call := sock.Connects[0]
	if call.SendTimeout != 500*time.Millisecond || call.RecvTimeout != 500*time.Millisecond {
		t.Errorf("forwarded timeouts = %v/%v, want 500ms/500ms", call.SendTimeout, call.RecvTimeout)
	}
}

func TestControl_ReloadRetunesFutureDials(t *testing.T) {
	sock := fake.NewSockets()
	p := facade.New(nil, facade.WithSockets(sock))

	p.Control().SetConfig(map[string]any{
		control.KeySendTimeout: 50 * time.Millisecond,
		control.KeyRecvTimeout: 75 * time.Millisecond,
	})

	if _, err := p.Dial(context.Background(), server); err != nil {
		t.Fatalf("dial failed: %v", err)
	}

	call := sock.Connects[len(sock.Connects)-1]
	if call.SendTimeout != 50*time.Millisecond || call.RecvTimeout != 75*time.Millisecond {
		t.Errorf("retuned timeouts = %v/%v, want 50ms/75ms", call.SendTimeout, call.RecvTimeout)
	}
}

func TestDial_ConnectFailure(t *testing.T) {
	sock := fake.NewSockets()
	sock.SetConnectError(api.ErrNotSupported)
	p := facade.New(nil, facade.WithSockets(sock))

	if _, err := p.Dial(context.Background(), server); err == nil {
		t.Error("expected dial failure")
	}
	if p.Sessions() != 0 {
		t.Errorf("sessions = %d, want 0", p.Sessions())
	}
}

func TestMetricsDisabled(t *testing.T) {
	cfg := facade.DefaultConfig()
	cfg.EnableMetrics = false
	p := facade.New(cfg, facade.WithSockets(fake.NewSockets()))

	if p.Metrics() != nil {
		t.Error("metrics snapshot should be nil when disabled")
	}
}
