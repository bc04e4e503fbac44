package notify

import (
	"testing"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.Info("event created")
	r.Warning("registry missing")
	r.Error("boom")
	r.OpenFile("/world/events/wedding.wf")

	events := r.Events()
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}
	want := []Event{
		{Level: "info", Message: "event created"},
		{Level: "warning", Message: "registry missing"},
		{Level: "error", Message: "boom"},
		{Level: "open", Message: "/world/events/wedding.wf"},
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}
}

func TestRecorderHas(t *testing.T) {
	r := NewRecorder()
	r.Warning("registry file not found: /world/events.wf")

	if !r.Has("warning", "registry") {
		t.Error("Has(warning, registry) = false, want true")
	}
	if r.Has("error", "registry") {
		t.Error("Has(error, registry) = true, want false")
	}
	if r.Has("warning", "nope") {
		t.Error("Has(warning, nope) = true, want false")
	}
}

func TestRecorderEventsCopy(t *testing.T) {
	r := NewRecorder()
	r.Info("one")
	events := r.Events()
	events[0].Message = "mutated"
	if r.Events()[0].Message != "one" {
		t.Error("Events() leaked internal storage")
	}
}

func TestNop(t *testing.T) {
	var n Notifier = Nop{}
	n.Info("x")
	n.Warning("x")
	n.Error("x")
	n.OpenFile("x")
}
