package control_test

import (
	"testing"
	"time"

	"github.com/momentics/plainsock/control"
)

func TestConfigStore_TypedGettersAndReload(t *testing.T) {
	cs := control.NewConfigStore()

	if got := cs.GetDuration(control.KeySendTimeout, 500*time.Millisecond); got != 500*time.Millisecond {
		t.Errorf("default not returned: %v", got)
	}

	reloads := 0
	cs.OnReload(func() { reloads++ })

	cs.SetConfig(map[string]any{
		control.KeySendTimeout: 250 * time.Millisecond,
		"custom.batch":         8,
	})

	if got := cs.GetDuration(control.KeySendTimeout, 0); got != 250*time.Millisecond {
		t.Errorf("unexpected duration: %v", got)
	}
	if got := cs.GetInt("custom.batch", 0); got != 8 {
		t.Errorf("unexpected int: %d", got)
	}
	if reloads != 1 {
		t.Errorf("expected 1 reload dispatch, got %d", reloads)
	}

	snap := cs.GetSnapshot()
	if len(snap) != 2 {
		t.Errorf("unexpected snapshot size: %d", len(snap))
	}
}

func TestMetricsRegistry_Counters(t *testing.T) {
	mr := control.NewMetricsRegistry()

	mr.Inc(control.MetricConnects)
	mr.Add(control.MetricBytesSent, 42)
	mr.Add(control.MetricBytesSent, 8)

	if got := mr.Get(control.MetricBytesSent); got != 50 {
		t.Errorf("bytes_sent = %d, want 50", got)
	}
	if got := mr.Get(control.MetricConnects); got != 1 {
		t.Errorf("connects = %d, want 1", got)
	}
	if mr.Updated().IsZero() {
		t.Error("updated timestamp not set")
	}

	snap := mr.GetSnapshot()
	snap[control.MetricBytesSent] = 0
	if mr.Get(control.MetricBytesSent) != 50 {
		t.Error("snapshot must be a copy")
	}
}
