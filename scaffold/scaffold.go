// Package scaffold renders the source files the content services create:
// a new event definition and an empty event registry.
package scaffold

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Event carries the fields the event template needs. Name must be a
// valid script identifier; it becomes both the declaration name suffix
// and the event id.
type Event struct {
	Name  string
	Title string
	Start string
	End   string
}

// RenderEvent produces the source text of a new event file.
func RenderEvent(ev Event) (string, error) {
	if err := ValidateIdent(ev.Name); err != nil {
		return "", err
	}
	if ev.Title == "" {
		ev.Title = ev.Name
	}
	var out strings.Builder
	if err := templates.ExecuteTemplate(&out, "event.wf.tmpl", ev); err != nil {
		return "", fmt.Errorf("render event template: %w", err)
	}
	return out.String(), nil
}

// RenderRegistry produces the source text of an empty event registry.
func RenderRegistry() (string, error) {
	var out strings.Builder
	if err := templates.ExecuteTemplate(&out, "registry.wf.tmpl", nil); err != nil {
		return "", fmt.Errorf("render registry template: %w", err)
	}
	return out.String(), nil
}

// ValidateIdent rejects names that cannot serve as a declaration name in
// the generated source.
func ValidateIdent(name string) error {
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}
	for i := 0; i < len(name); i++ {
		ch := name[i]
		letter := ch == '_' || ch == '$' ||
			(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		digit := ch >= '0' && ch <= '9'
		if i == 0 && !letter {
			return fmt.Errorf("name %q: must start with a letter, '_' or '$'", name)
		}
		if !letter && !digit {
			return fmt.Errorf("name %q: invalid character %q", name, ch)
		}
	}
	return nil
}
