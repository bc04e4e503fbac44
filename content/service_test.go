package content

import (
	"strings"
	"testing"

	"github.com/Belafon/WFUtilities-sub000/fsys"
	"github.com/Belafon/WFUtilities-sub000/notify"
)

func newTestService(t *testing.T) (*Service, *fsys.MemFS, *notify.Recorder) {
	t.Helper()
	fs := fsys.NewMemFS()
	rec := notify.NewRecorder()
	return NewService(fs, rec, "/world"), fs, rec
}

func TestCreateEvent(t *testing.T) {
	s, fs, rec := newTestService(t)

	if err := s.CreateEvent("wedding", "Main Wedding"); err != nil {
		t.Fatal(err)
	}

	event, err := fs.ReadFile("/world/events/wedding.wf")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(event), "export const weddingEvent") {
		t.Errorf("event file missing declaration:\n%s", event)
	}
	if !strings.Contains(string(event), "title: 'Main Wedding'") {
		t.Errorf("event file missing title:\n%s", event)
	}

	registry, err := fs.ReadFile("/world/events/events.wf")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(registry), "import { weddingEvent } from './wedding';") {
		t.Errorf("registry missing import:\n%s", registry)
	}
	if !strings.Contains(string(registry), "wedding: weddingEvent") {
		t.Errorf("registry missing entry:\n%s", registry)
	}

	if !rec.Has("info", "created event wedding") {
		t.Errorf("missing creation notification, got %v", rec.Events())
	}
	if !rec.Has("open", "wedding.wf") {
		t.Errorf("missing open-file notification, got %v", rec.Events())
	}
}

func TestCreateEventPreservesRegistryFormatting(t *testing.T) {
	s, fs, _ := newTestService(t)

	existing := strings.Join([]string{
		"import { TWorldEvents } from '../types';",
		"import { feastEvent } from './feast';",
		"",
		"// registry of all world events",
		"export const events: TWorldEvents = {",
		"\tfeast: feastEvent,",
		"};",
		"",
	}, "\n")
	if err := fs.WriteFile("/world/events/events.wf", []byte(existing)); err != nil {
		t.Fatal(err)
	}

	if err := s.CreateEvent("wedding", "Main Wedding"); err != nil {
		t.Fatal(err)
	}

	registry, err := fs.ReadFile("/world/events/events.wf")
	if err != nil {
		t.Fatal(err)
	}
	got := string(registry)
	for _, want := range []string{
		"// registry of all world events",
		"import { feastEvent } from './feast';\nimport { weddingEvent } from './wedding';",
		"\tfeast: feastEvent,\n\twedding: weddingEvent",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("registry missing %q:\n%s", want, got)
		}
	}
}

func TestCreateEventDuplicate(t *testing.T) {
	s, fs, rec := newTestService(t)
	if err := s.CreateEvent("wedding", ""); err != nil {
		t.Fatal(err)
	}
	before, _ := fs.ReadFile("/world/events/wedding.wf")

	if err := s.CreateEvent("wedding", "Other"); err != nil {
		t.Fatal(err)
	}
	after, _ := fs.ReadFile("/world/events/wedding.wf")
	if string(before) != string(after) {
		t.Error("duplicate create modified the existing event file")
	}
	if !rec.Has("warning", "already exists") {
		t.Errorf("missing duplicate warning, got %v", rec.Events())
	}
}

func TestCreateEventInvalidName(t *testing.T) {
	s, _, _ := newTestService(t)
	if err := s.CreateEvent("not valid", ""); err == nil {
		t.Error("CreateEvent(invalid name): err = nil, want error")
	}
}

func TestUpdateEventProperty(t *testing.T) {
	s, fs, _ := newTestService(t)
	if err := s.CreateEvent("wedding", "Main Wedding"); err != nil {
		t.Fatal(err)
	}

	if err := s.UpdateEventProperty("wedding", "title", "'Renamed'"); err != nil {
		t.Fatal(err)
	}
	event, _ := fs.ReadFile("/world/events/wedding.wf")
	if !strings.Contains(string(event), "title: 'Renamed',") {
		t.Errorf("title not updated:\n%s", event)
	}

	if err := s.UpdateEventProperty("wedding", "timeRange.start", "'day 2 09:00'"); err != nil {
		t.Fatal(err)
	}
	event, _ = fs.ReadFile("/world/events/wedding.wf")
	if !strings.Contains(string(event), "start: 'day 2 09:00',") {
		t.Errorf("nested property not updated:\n%s", event)
	}
}

func TestUpdateEventPropertyAddsMissing(t *testing.T) {
	s, fs, _ := newTestService(t)
	if err := s.CreateEvent("wedding", ""); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateEventProperty("wedding", "location", "'Great Hall'"); err != nil {
		t.Fatal(err)
	}
	event, _ := fs.ReadFile("/world/events/wedding.wf")
	if !strings.Contains(string(event), "location: 'Great Hall'") {
		t.Errorf("new property not inserted:\n%s", event)
	}
}

func TestUpdateEventPropertyMissingEvent(t *testing.T) {
	s, _, rec := newTestService(t)
	if err := s.UpdateEventProperty("ghost", "title", "'x'"); err != nil {
		t.Fatal(err)
	}
	if !rec.Has("warning", "not found") {
		t.Errorf("missing warning, got %v", rec.Events())
	}
}

func TestUpdateEventPropertyMissingPath(t *testing.T) {
	s, fs, rec := newTestService(t)
	if err := s.CreateEvent("wedding", ""); err != nil {
		t.Fatal(err)
	}
	before, _ := fs.ReadFile("/world/events/wedding.wf")

	if err := s.UpdateEventProperty("wedding", "timeRange.missing.deep", "'x'"); err != nil {
		t.Fatal(err)
	}
	after, _ := fs.ReadFile("/world/events/wedding.wf")
	if string(before) != string(after) {
		t.Error("unresolved path modified the file")
	}
	if !rec.Has("warning", "not found") {
		t.Errorf("missing warning, got %v", rec.Events())
	}
}

func TestUpdateEventPropertyMalformedPath(t *testing.T) {
	s, _, _ := newTestService(t)
	if err := s.UpdateEventProperty("wedding", "a..b", "'x'"); err == nil {
		t.Error("malformed path: err = nil, want error")
	}
}

func TestDeleteEvent(t *testing.T) {
	s, fs, rec := newTestService(t)
	if err := s.CreateEvent("wedding", ""); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateEvent("feast", ""); err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteEvent("wedding"); err != nil {
		t.Fatal(err)
	}

	if fs.Exists("/world/events/wedding.wf") {
		t.Error("event file still exists after delete")
	}
	registry, _ := fs.ReadFile("/world/events/events.wf")
	got := string(registry)
	if strings.Contains(got, "wedding") {
		t.Errorf("registry still references deleted event:\n%s", got)
	}
	if !strings.Contains(got, "feast: feastEvent") {
		t.Errorf("registry lost unrelated entry:\n%s", got)
	}
	if !rec.Has("info", "deleted event wedding") {
		t.Errorf("missing delete notification, got %v", rec.Events())
	}
}

func TestDeleteEventMissing(t *testing.T) {
	s, _, rec := newTestService(t)
	if err := s.DeleteEvent("ghost"); err != nil {
		t.Fatal(err)
	}
	if !rec.Has("warning", "registry file not found") {
		t.Errorf("missing registry warning, got %v", rec.Events())
	}
	if !rec.Has("warning", "ghost not found") {
		t.Errorf("missing event warning, got %v", rec.Events())
	}
}
