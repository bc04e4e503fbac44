package script

import (
	"sort"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/Belafon/WFUtilities-sub000/script/parser"
)

// Edit is a scheduled text replacement. Start and End are half-open byte
// offsets into the original text the Editor was constructed from, never
// into post-edit text.
type Edit struct {
	Start int
	End   int
	Text  string
}

type Option func(*Editor)

// WithLogger injects the diagnostic sink. The default logger stays
// silent until a commonlog backend is configured, so library consumers
// get a no-op.
func WithLogger(log commonlog.Logger) Option {
	return func(e *Editor) {
		e.log = log
	}
}

func WithFile(path string) Option {
	return func(e *Editor) {
		e.file = path
	}
}

// Editor owns one immutable text snapshot, the structural tree parsed
// from it, and an ordered list of pending edits. Many structurally
// independent mutations can be computed against the original parse's
// coordinate space and applied in a single Apply pass.
//
// An Editor is single-writer: callers serialize AddEdit/Apply, and
// builders derived before an Apply are stale afterwards.
type Editor struct {
	src   string
	file  string
	root  *parser.Group
	edits []Edit
	log   commonlog.Logger
}

func New(src string, opts ...Option) *Editor {
	e := &Editor{
		src: src,
		log: commonlog.GetLogger("script"),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.root = parser.Parse([]byte(src), parser.WithFile(e.file))
	return e
}

// Source returns the original text snapshot.
func (e *Editor) Source() string {
	return e.src
}

// Root exposes the parsed structural tree.
func (e *Editor) Root() *parser.Group {
	return e.root
}

// Len reports the number of pending edits.
func (e *Editor) Len() int {
	return len(e.edits)
}

// AddEdit queues a replacement of src[start:end] with text. A range that
// falls outside the original text is logged and dropped: one miscomputed
// span inside a larger multi-step mutation must not abort sibling edits
// already queued in the same batch.
func (e *Editor) AddEdit(start, end int, text string) {
	if start < 0 || end < start || end > len(e.src) {
		e.log.Warningf("dropping edit with invalid range [%d, %d) for text of length %d", start, end, len(e.src))
		return
	}
	e.edits = append(e.edits, Edit{Start: start, End: end, Text: text})
}

// Apply applies all pending edits in one atomic pass and clears the
// queue. With no pending edits the original text is returned unchanged.
//
// Edits are ordered by ascending start and, at the same start, by
// descending end, so a broader replacement supersedes a narrower one
// queued at the same point. A sorted edit whose translated range no
// longer fits the working buffer is skipped with a diagnostic.
func (e *Editor) Apply() string {
	if len(e.edits) == 0 {
		return e.src
	}

	sorted := make([]Edit, len(e.edits))
	copy(sorted, e.edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End > sorted[j].End
	})

	var out strings.Builder
	result := e.src
	offset := 0
	for _, edit := range sorted {
		start := edit.Start + offset
		end := edit.End + offset
		if start < 0 || end < start || end > len(result) {
			e.log.Warningf("skipping edit [%d, %d): translated range [%d, %d) is out of bounds", edit.Start, edit.End, start, end)
			continue
		}
		out.Reset()
		out.WriteString(result[:start])
		out.WriteString(edit.Text)
		out.WriteString(result[end:])
		result = out.String()
		offset += len(edit.Text) - (edit.End - edit.Start)
	}

	e.edits = nil
	return result
}

// FindObject locates the object literal bound to a variable declaration
// with the given name.
func (e *Editor) FindObject(name string) (*ObjectBuilder, bool) {
	group := e.root.Find(parser.GroupVariable, name)
	if group == nil {
		return nil, false
	}
	start, end, ok := e.literalSpan(group, parser.GroupObject, '{')
	if !ok {
		return nil, false
	}
	return &ObjectBuilder{ed: e, start: start, end: end}, true
}

// FindArray locates the array literal bound to a variable declaration
// with the given name.
func (e *Editor) FindArray(name string) (*ArrayBuilder, bool) {
	group := e.root.Find(parser.GroupVariable, name)
	if group == nil {
		return nil, false
	}
	start, end, ok := e.literalSpan(group, parser.GroupArray, '[')
	if !ok {
		return nil, false
	}
	return &ArrayBuilder{ed: e, start: start, end: end}, true
}

// FindType locates a type alias declaration by name.
func (e *Editor) FindType(name string) (*TypeBuilder, bool) {
	group := e.root.Find(parser.GroupTypeAlias, name)
	if group == nil {
		return nil, false
	}
	return &TypeBuilder{ed: e, group: group}, true
}

// FindClass locates a class declaration by name.
func (e *Editor) FindClass(name string) (*ClassBuilder, bool) {
	group := e.root.Find(parser.GroupClass, name)
	if group == nil {
		return nil, false
	}
	return &ClassBuilder{memberBody{ed: e, group: group}}, true
}

// FindInterface locates an interface declaration by name.
func (e *Editor) FindInterface(name string) (*InterfaceBuilder, bool) {
	group := e.root.Find(parser.GroupInterface, name)
	if group == nil {
		return nil, false
	}
	return &InterfaceBuilder{memberBody{ed: e, group: group}}, true
}

// FindReturnedObject locates the object literal returned by the named
// function.
func (e *Editor) FindReturnedObject(name string) (*ObjectBuilder, bool) {
	group := e.root.Find(parser.GroupFunction, name)
	if group == nil {
		return nil, false
	}
	if child := group.FirstChildOfKind(parser.GroupObject); child != nil {
		return &ObjectBuilder{ed: e, start: child.Span.Start.Offset, end: child.Span.End.Offset}, true
	}
	start, end, ok := e.returnedObjectSpan(group)
	if !ok {
		return nil, false
	}
	return &ObjectBuilder{ed: e, start: start, end: end}, true
}

// Imports returns the import manager for this text.
func (e *Editor) Imports() *ImportManager {
	return newImportManager(e)
}

// literalSpan resolves the span of the literal backing a declaration:
// the ready-made child group when the grouper extracted one, otherwise a
// delimiter scan over the declaration's own text, extended past its
// recorded end when the declaration span was cut short.
func (e *Editor) literalSpan(group *parser.Group, kind parser.GroupKind, open byte) (int, int, bool) {
	if child := group.FirstChildOfKind(kind); child != nil {
		return child.Span.Start.Offset, child.Span.End.Offset, true
	}

	declStart := group.Span.Start.Offset
	declEnd := group.Span.End.Offset
	s := newTextScanner(e.src, declStart, declEnd)
	for !s.done() {
		ch, at := s.next()
		if ch != open || !s.inCode() {
			continue
		}
		end := matchDelimiter(e.src, at)
		if end < 0 {
			return 0, 0, false
		}
		return at, end, true
	}
	// The declaration span may have fallen short of the literal (grouper
	// recovery); look at the raw text beyond it.
	for i := declEnd; i < len(e.src); i++ {
		if e.src[i] == open {
			end := matchDelimiter(e.src, i)
			if end < 0 {
				return 0, 0, false
			}
			return i, end, true
		}
		if !isSpaceByte(e.src[i]) && e.src[i] != '=' {
			break
		}
	}
	return 0, 0, false
}

// returnedObjectSpan scans a function declaration's text for the first
// object literal that follows a return keyword.
func (e *Editor) returnedObjectSpan(group *parser.Group) (int, int, bool) {
	start := group.Span.Start.Offset
	end := group.Span.End.Offset
	s := newTextScanner(e.src, start, end)
	const keyword = "return"
	matched := 0
	for !s.done() {
		ch, at := s.next()
		if !s.inCode() {
			matched = 0
			continue
		}
		if matched == len(keyword) {
			if isSpaceByte(ch) {
				continue
			}
			if ch == '{' {
				objEnd := matchDelimiter(e.src, at)
				if objEnd < 0 {
					return 0, 0, false
				}
				return at, objEnd, true
			}
			matched = 0
		}
		if ch == keyword[matched] {
			boundaryBefore := matched > 0 || at == 0 || !isIdentByte(e.src[at-1])
			if boundaryBefore {
				matched++
				continue
			}
		}
		matched = 0
	}
	return 0, 0, false
}

func isIdentByte(ch byte) bool {
	return ch == '_' || ch == '$' ||
		(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}
