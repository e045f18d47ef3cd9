package session_test

import (
	"testing"

	"github.com/momentics/plainsock/api"
	"github.com/momentics/plainsock/session"
)

func TestRegistry_Lifecycle(t *testing.T) {
	r := session.NewRegistry()
	server := api.ServerInfo{Host: "broker.local", Port: 1883}

	e := r.Add(7, server)
	if e.ID == "" {
		t.Fatal("entry has no ID")
	}
	if e.State != api.StateConnected {
		t.Errorf("state = %v, want connected", e.State)
	}
	if r.Len() != 1 {
		t.Errorf("len = %d, want 1", r.Len())
	}

	got, ok := r.Get(e.ID)
	if !ok || got.FD != 7 || got.Server != server {
		t.Errorf("unexpected entry: %+v ok=%v", got, ok)
	}

	r.Remove(e.ID)
	if r.Len() != 0 {
		t.Errorf("len after remove = %d, want 0", r.Len())
	}
	if _, ok := r.Get(e.ID); ok {
		t.Error("removed entry still retrievable")
	}
}

func TestRegistry_UniqueIDs(t *testing.T) {
	r := session.NewRegistry()
	a := r.Add(3, api.ServerInfo{Host: "a", Port: 1})
	b := r.Add(4, api.ServerInfo{Host: "b", Port: 2})
	if a.ID == b.ID {
		t.Error("two connections share an ID")
	}
	if len(r.Snapshot()) != 2 {
		t.Error("snapshot incomplete")
	}
}
