// Package notify decouples the content services from how outcomes reach
// the author: a log, an editor integration, or a test recorder.
package notify

import (
	"strings"
	"sync"

	"github.com/tliron/commonlog"
)

type Notifier interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
	// OpenFile asks the author's editor to open the given path. Sinks
	// without an editor attached treat it as an informational message.
	OpenFile(path string)
}

// LogNotifier forwards notifications to a commonlog logger.
type LogNotifier struct {
	log commonlog.Logger
}

func NewLogNotifier(log commonlog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Info(msg string)    { n.log.Info(msg) }
func (n *LogNotifier) Warning(msg string) { n.log.Warning(msg) }
func (n *LogNotifier) Error(msg string)   { n.log.Error(msg) }

func (n *LogNotifier) OpenFile(path string) {
	n.log.Infof("open %s", path)
}

// Recorder captures notifications for test assertions.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

type Event struct {
	Level   string
	Message string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Level: level, Message: msg})
}

func (r *Recorder) Info(msg string)    { r.record("info", msg) }
func (r *Recorder) Warning(msg string) { r.record("warning", msg) }
func (r *Recorder) Error(msg string)   { r.record("error", msg) }

func (r *Recorder) OpenFile(path string) {
	r.record("open", path)
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Has reports whether an event with the given level was recorded whose
// message contains the given fragment.
func (r *Recorder) Has(level, fragment string) bool {
	for _, ev := range r.Events() {
		if ev.Level == level && strings.Contains(ev.Message, fragment) {
			return true
		}
	}
	return false
}

// Nop discards every notification.
type Nop struct{}

func (Nop) Info(string)     {}
func (Nop) Warning(string)  {}
func (Nop) Error(string)    {}
func (Nop) OpenFile(string) {}
