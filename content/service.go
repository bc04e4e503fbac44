// Package content implements the authoring operations of a story world:
// creating, updating and deleting events, and keeping the event registry
// file in sync through structural source edits.
package content

import (
	"fmt"
	"path"

	"github.com/tliron/commonlog"

	"github.com/Belafon/WFUtilities-sub000/fsys"
	"github.com/Belafon/WFUtilities-sub000/notify"
	"github.com/Belafon/WFUtilities-sub000/scaffold"
	"github.com/Belafon/WFUtilities-sub000/script"
)

const registryObject = "events"

// Service owns the world directory layout: events live under
// <root>/events/<name>.wf and are wired into <root>/events/events.wf.
//
// Missing files and duplicate creates are author mistakes, not system
// failures: they surface through the notifier and leave everything on
// disk untouched. Only malformed input and file-system trouble return
// errors.
type Service struct {
	fs       fsys.FS
	notifier notify.Notifier
	log      commonlog.Logger
	root     string
}

type ServiceOption func(*Service)

func WithLogger(log commonlog.Logger) ServiceOption {
	return func(s *Service) {
		s.log = log
	}
}

func NewService(fs fsys.FS, notifier notify.Notifier, root string, opts ...ServiceOption) *Service {
	s := &Service{
		fs:       fs,
		notifier: notifier,
		log:      commonlog.GetLogger("content"),
		root:     root,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) eventPath(name string) string {
	return path.Join(s.root, "events", name+".wf")
}

func (s *Service) registryPath() string {
	return path.Join(s.root, "events", "events.wf")
}

// CreateEvent scaffolds a new event file and registers it: a named
// import plus a registry property, both inserted structurally so the
// registry's formatting survives. A missing registry is scaffolded too.
func (s *Service) CreateEvent(name, title string) error {
	rendered, err := scaffold.RenderEvent(scaffold.Event{Name: name, Title: title})
	if err != nil {
		return err
	}

	eventPath := s.eventPath(name)
	if s.fs.Exists(eventPath) {
		s.notifier.Warning(fmt.Sprintf("event %s already exists: %s", name, eventPath))
		return nil
	}
	if err := s.fs.WriteFile(eventPath, []byte(rendered)); err != nil {
		return fmt.Errorf("write event file: %w", err)
	}

	if err := s.registerEvent(name); err != nil {
		return err
	}

	s.notifier.Info(fmt.Sprintf("created event %s", name))
	s.notifier.OpenFile(eventPath)
	return nil
}

func (s *Service) registerEvent(name string) error {
	registryPath := s.registryPath()
	if !s.fs.Exists(registryPath) {
		base, err := scaffold.RenderRegistry()
		if err != nil {
			return err
		}
		if err := s.fs.WriteFile(registryPath, []byte(base)); err != nil {
			return fmt.Errorf("write registry file: %w", err)
		}
	}

	content, err := s.fs.ReadFile(registryPath)
	if err != nil {
		return fmt.Errorf("read registry file: %w", err)
	}

	e := script.New(string(content), script.WithFile(registryPath), script.WithLogger(s.log))
	if _, err := e.Imports().AddNamed("./"+name, name+"Event"); err != nil {
		return err
	}
	registry, ok := e.FindObject(registryObject)
	if !ok {
		s.notifier.Warning(fmt.Sprintf("registry object %q not found in %s", registryObject, registryPath))
		return nil
	}
	if _, err := registry.AddPropertyIfMissing(name, name+"Event"); err != nil {
		return err
	}

	if err := s.fs.WriteFile(registryPath, []byte(e.Apply())); err != nil {
		return fmt.Errorf("write registry file: %w", err)
	}
	return nil
}

// UpdateEventProperty sets a property of the event's definition object,
// addressed by a nested path ("title", "timeRange.start", "guests[0]").
// A path that does not resolve leaves the file untouched.
func (s *Service) UpdateEventProperty(name, property, value string) error {
	segments, err := script.ParsePath(property)
	if err != nil {
		return err
	}

	eventPath := s.eventPath(name)
	if !s.fs.Exists(eventPath) {
		s.notifier.Warning(fmt.Sprintf("event %s not found: %s", name, eventPath))
		return nil
	}
	content, err := s.fs.ReadFile(eventPath)
	if err != nil {
		return fmt.Errorf("read event file: %w", err)
	}

	e := script.New(string(content), script.WithFile(eventPath), script.WithLogger(s.log))
	obj, ok := e.FindObject(name + "Event")
	if !ok {
		s.notifier.Warning(fmt.Sprintf("definition %sEvent not found in %s", name, eventPath))
		return nil
	}

	if len(segments) == 1 && !segments[0].IsIndex {
		// Top-level properties may be created, not just replaced.
		if err := obj.SetProperty(segments[0].Name, value); err != nil {
			return err
		}
	} else {
		target, found, err := obj.FindNested(property)
		if err != nil {
			return err
		}
		if !found {
			s.notifier.Warning(fmt.Sprintf("path %q not found in %sEvent", property, name))
			return nil
		}
		target.Replace(value)
	}

	if err := s.fs.WriteFile(eventPath, []byte(e.Apply())); err != nil {
		return fmt.Errorf("write event file: %w", err)
	}
	s.notifier.Info(fmt.Sprintf("updated %s.%s", name, property))
	return nil
}

// DeleteEvent unregisters the event and removes its file.
func (s *Service) DeleteEvent(name string) error {
	if err := scaffold.ValidateIdent(name); err != nil {
		return err
	}

	registryPath := s.registryPath()
	if s.fs.Exists(registryPath) {
		content, err := s.fs.ReadFile(registryPath)
		if err != nil {
			return fmt.Errorf("read registry file: %w", err)
		}
		e := script.New(string(content), script.WithFile(registryPath), script.WithLogger(s.log))
		changed := false
		if registry, ok := e.FindObject(registryObject); ok {
			if registry.RemoveProperty(name) {
				changed = true
			}
		}
		if e.Imports().Remove("./" + name) {
			changed = true
		}
		if changed {
			if err := s.fs.WriteFile(registryPath, []byte(e.Apply())); err != nil {
				return fmt.Errorf("write registry file: %w", err)
			}
		}
	} else {
		s.notifier.Warning(fmt.Sprintf("registry file not found: %s", registryPath))
	}

	eventPath := s.eventPath(name)
	if !s.fs.Exists(eventPath) {
		s.notifier.Warning(fmt.Sprintf("event %s not found: %s", name, eventPath))
		return nil
	}
	if err := s.fs.Remove(eventPath); err != nil {
		return fmt.Errorf("remove event file: %w", err)
	}
	s.notifier.Info(fmt.Sprintf("deleted event %s", name))
	return nil
}
