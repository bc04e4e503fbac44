package script

import (
	"fmt"
	"strconv"
	"strings"
)

// PathSegment is one hop of a nested path: either a property name or an
// array index.
type PathSegment struct {
	Name    string
	Index   int
	IsIndex bool
}

func (s PathSegment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Name
}

// ParsePath splits a path of dotted names and bracketed integer indices
// ("a.b[1].c") into segments. A syntactically malformed path is a caller
// bug and yields an error; it is never treated as a not-found outcome.
func ParsePath(path string) ([]PathSegment, error) {
	if path == "" {
		return nil, fmt.Errorf("path must not be empty")
	}

	var segments []PathSegment
	rest := path
	expectDotOrBracket := false
	for rest != "" {
		switch {
		case rest[0] == '[':
			close := strings.IndexByte(rest, ']')
			if close < 0 {
				return nil, fmt.Errorf("path %q: unterminated index", path)
			}
			index, err := strconv.Atoi(rest[1:close])
			if err != nil {
				return nil, fmt.Errorf("path %q: invalid index %q", path, rest[1:close])
			}
			segments = append(segments, PathSegment{Index: index, IsIndex: true})
			rest = rest[close+1:]
			expectDotOrBracket = true
		case rest[0] == '.':
			if !expectDotOrBracket {
				return nil, fmt.Errorf("path %q: empty segment", path)
			}
			rest = rest[1:]
			expectDotOrBracket = false
			if rest == "" {
				return nil, fmt.Errorf("path %q: trailing dot", path)
			}
		default:
			if expectDotOrBracket {
				return nil, fmt.Errorf("path %q: expected '.' or '[' before %q", path, rest)
			}
			end := strings.IndexAny(rest, ".[")
			if end < 0 {
				end = len(rest)
			}
			name := rest[:end]
			if name == "" {
				return nil, fmt.Errorf("path %q: empty segment", path)
			}
			segments = append(segments, PathSegment{Name: name})
			rest = rest[end:]
			expectDotOrBracket = true
		}
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("path %q: no segments", path)
	}
	return segments, nil
}

// Value is the result of a nested path lookup: a span over the original
// text that may hold a primitive, an object or an array.
type Value struct {
	ed    *Editor
	Start int
	End   int
}

func (v Value) Text() string {
	return v.ed.src[v.Start:v.End]
}

func (v Value) IsObject() bool {
	return v.End > v.Start && v.ed.src[v.Start] == '{'
}

func (v Value) IsArray() bool {
	return v.End > v.Start && v.ed.src[v.Start] == '['
}

// Object binds a sub-builder when the value is an object literal.
func (v Value) Object() (*ObjectBuilder, bool) {
	if !v.IsObject() {
		return nil, false
	}
	return &ObjectBuilder{ed: v.ed, start: v.Start, end: v.End}, true
}

// Array binds a sub-builder when the value is an array literal.
func (v Value) Array() (*ArrayBuilder, bool) {
	if !v.IsArray() {
		return nil, false
	}
	return &ArrayBuilder{ed: v.ed, start: v.Start, end: v.End}, true
}

// Replace queues a replacement of the value's span.
func (v Value) Replace(text string) {
	v.ed.AddEdit(v.Start, v.End, text)
}

// FindNested resolves a path of dotted names and bracketed indices
// starting at this object. Each hop switches between object and array
// semantics as the segment demands; descending through a primitive or
// past the end of an array fails closed at that segment.
func (b *ObjectBuilder) FindNested(path string) (Value, bool, error) {
	segments, err := ParsePath(path)
	if err != nil {
		return Value{}, false, err
	}

	current := Value{ed: b.ed, Start: b.start, End: b.end}
	for _, seg := range segments {
		next, ok := resolveSegment(current, seg)
		if !ok {
			return Value{}, false, nil
		}
		current = next
	}
	return current, true, nil
}

func resolveSegment(current Value, seg PathSegment) (Value, bool) {
	if seg.IsIndex {
		arr, ok := current.Array()
		if !ok {
			return Value{}, false
		}
		item, ok := arr.Item(seg.Index)
		if !ok {
			return Value{}, false
		}
		return Value{ed: arr.ed, Start: item.ValueStart, End: item.ValueEnd}, true
	}

	obj, ok := current.Object()
	if !ok {
		return Value{}, false
	}
	prop, ok := obj.Property(seg.Name)
	if !ok {
		return Value{}, false
	}
	return Value{ed: obj.ed, Start: prop.ValueStart, End: prop.ValueEnd}, true
}
