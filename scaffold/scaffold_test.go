package scaffold

import (
	"strings"
	"testing"

	"github.com/Belafon/WFUtilities-sub000/script"
)

func TestRenderEvent(t *testing.T) {
	src, err := RenderEvent(Event{
		Name:  "wedding",
		Title: "Main Wedding",
		Start: "day 1 08:00",
		End:   "day 1 20:00",
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"export const weddingEvent: TWorldEvent = {",
		"eventId: 'wedding'",
		"title: 'Main Wedding'",
		"start: 'day 1 08:00'",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("rendered event missing %q:\n%s", want, src)
		}
	}
}

func TestRenderEventDefaultTitle(t *testing.T) {
	src, err := RenderEvent(Event{Name: "feast"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(src, "title: 'feast'") {
		t.Errorf("rendered event missing default title:\n%s", src)
	}
}

func TestRenderEventIsEditable(t *testing.T) {
	// The generated file must round-trip through the structural editor.
	src, err := RenderEvent(Event{Name: "wedding", Title: "Main Wedding"})
	if err != nil {
		t.Fatal(err)
	}

	e := script.New(src)
	obj, ok := e.FindObject("weddingEvent")
	if !ok {
		t.Fatalf("generated event not structurally editable:\n%s", src)
	}
	if err := obj.SetProperty("title", "'Renamed'"); err != nil {
		t.Fatal(err)
	}
	updated := e.Apply()
	if !strings.Contains(updated, "title: 'Renamed',") {
		t.Errorf("title not updated:\n%s", updated)
	}
	if !strings.Contains(updated, "eventId: 'wedding',") {
		t.Errorf("unrelated property disturbed:\n%s", updated)
	}
}

func TestRenderRegistryIsEditable(t *testing.T) {
	src, err := RenderRegistry()
	if err != nil {
		t.Fatal(err)
	}

	e := script.New(src)
	obj, ok := e.FindObject("events")
	if !ok {
		t.Fatalf("generated registry not structurally editable:\n%s", src)
	}
	if err := obj.SetProperty("wedding", "weddingEvent"); err != nil {
		t.Fatal(err)
	}
	updated := e.Apply()
	if !strings.Contains(updated, "wedding: weddingEvent") {
		t.Errorf("registry entry not added:\n%s", updated)
	}
}

func TestRenderEventInvalidName(t *testing.T) {
	tests := []string{"", "1starts", "has space", "dash-ed", "dot.ted"}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := RenderEvent(Event{Name: name}); err == nil {
				t.Errorf("RenderEvent(%q): err = nil, want error", name)
			}
		})
	}
}

func TestValidateIdent(t *testing.T) {
	for _, name := range []string{"wedding", "_x", "$ref", "camelCase9"} {
		if err := ValidateIdent(name); err != nil {
			t.Errorf("ValidateIdent(%q) = %v, want nil", name, err)
		}
	}
}
