package script

import (
	"fmt"
	"strings"
)

// Property is an ephemeral record of one object property, re-derived on
// demand. Spans are offsets into the editor's original text and become
// stale the moment Apply is called.
type Property struct {
	Name       string
	NameStart  int
	NameEnd    int
	ValueStart int
	ValueEnd   int
	// Segment bounds between the surrounding top-level commas (or the
	// braces), including whitespace and comments.
	SegStart int
	SegEnd   int
	// CommaPos is the offset of the trailing comma, -1 when absent.
	CommaPos int
}

// HasComma reports whether the property carries its own trailing comma.
func (p Property) HasComma() bool {
	return p.CommaPos >= 0
}

// ObjectBuilder exposes read/navigate/mutate operations scoped to one
// object literal's span. It holds no derived state: every query re-scans
// the span, string- and comment-aware.
type ObjectBuilder struct {
	ed    *Editor
	start int // offset of the opening brace
	end   int // offset one past the closing brace
}

// Span returns the builder's literal span, including both braces.
func (b *ObjectBuilder) Span() (start, end int) {
	return b.start, b.end
}

// Text returns the literal's text in the original snapshot.
func (b *ObjectBuilder) Text() string {
	return b.ed.src[b.start:b.end]
}

func (b *ObjectBuilder) contentBounds() (int, int) {
	return b.start + 1, b.end - 1
}

// Properties re-derives the property list from the current span.
func (b *ObjectBuilder) Properties() []Property {
	contentStart, contentEnd := b.contentBounds()
	if contentStart >= contentEnd {
		return nil
	}

	var props []Property
	for _, seg := range splitTopLevel(b.ed.src, contentStart, contentEnd, ',') {
		prop, ok := b.parseProperty(seg)
		if ok {
			props = append(props, prop)
		}
	}
	return props
}

func (b *ObjectBuilder) parseProperty(seg segment) (Property, bool) {
	src := b.ed.src
	first, last, ok := significantBounds(src, seg.start, seg.end)
	if !ok {
		return Property{}, false
	}

	prop := Property{SegStart: seg.start, SegEnd: seg.end, CommaPos: seg.sepPos}

	// Property name: an identifier run or a quoted string.
	nameStart := first
	nameEnd := nameStart
	if src[nameStart] == '\'' || src[nameStart] == '"' {
		quote := src[nameStart]
		i := nameStart + 1
		for i < last && src[i] != quote {
			if src[i] == '\\' {
				i++
			}
			i++
		}
		if i < last {
			i++
		}
		nameEnd = i
		prop.Name = src[nameStart+1 : nameEnd-1]
	} else {
		i := nameStart
		for i < last && isIdentByte(src[i]) {
			i++
		}
		nameEnd = i
		prop.Name = src[nameStart:nameEnd]
	}
	if prop.Name == "" {
		return Property{}, false
	}
	prop.NameStart = nameStart
	prop.NameEnd = nameEnd

	// Find the separating colon at depth zero; an optional "?" marker may
	// precede it.
	s := newTextScanner(src, nameEnd, last)
	colon := -1
	for !s.done() {
		ch, at := s.next()
		if ch == ':' && s.inCode() && s.atDepthZero() {
			colon = at
			break
		}
	}
	if colon < 0 {
		return Property{}, false
	}

	valueStart, valueEnd, ok := significantBounds(src, colon+1, seg.end)
	if !ok {
		return Property{}, false
	}
	prop.ValueStart = valueStart
	prop.ValueEnd = valueEnd
	return prop, true
}

// Property returns the named property when present.
func (b *ObjectBuilder) Property(name string) (Property, bool) {
	for _, prop := range b.Properties() {
		if prop.Name == name {
			return prop, true
		}
	}
	return Property{}, false
}

// Has reports whether the named property exists.
func (b *ObjectBuilder) Has(name string) bool {
	_, ok := b.Property(name)
	return ok
}

// Object returns a sub-builder for a property whose value is an object
// literal.
func (b *ObjectBuilder) Object(name string) (*ObjectBuilder, bool) {
	prop, ok := b.Property(name)
	if !ok || b.ed.src[prop.ValueStart] != '{' {
		return nil, false
	}
	end := matchDelimiter(b.ed.src, prop.ValueStart)
	if end < 0 {
		return nil, false
	}
	return &ObjectBuilder{ed: b.ed, start: prop.ValueStart, end: end}, true
}

// Array returns a sub-builder for a property whose value is an array
// literal.
func (b *ObjectBuilder) Array(name string) (*ArrayBuilder, bool) {
	prop, ok := b.Property(name)
	if !ok || b.ed.src[prop.ValueStart] != '[' {
		return nil, false
	}
	end := matchDelimiter(b.ed.src, prop.ValueStart)
	if end < 0 {
		return nil, false
	}
	return &ArrayBuilder{ed: b.ed, start: prop.ValueStart, end: end}, true
}

// SetProperty replaces the named property's value, touching nothing else
// of the property, or synthesizes a style-preserving insertion when the
// property is absent.
func (b *ObjectBuilder) SetProperty(name, value string) error {
	if name == "" {
		return fmt.Errorf("property name must not be empty")
	}
	if prop, ok := b.Property(name); ok {
		b.ed.AddEdit(prop.ValueStart, prop.ValueEnd, value)
		return nil
	}
	b.insertAfterLast(name, value)
	return nil
}

// AddPropertyIfMissing inserts the property only when absent and reports
// whether an insertion was queued.
func (b *ObjectBuilder) AddPropertyIfMissing(name, value string) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("property name must not be empty")
	}
	if b.Has(name) {
		return false, nil
	}
	b.insertAfterLast(name, value)
	return true, nil
}

// AddPropertyAt inserts a property at the given position among the
// existing properties. index may equal the property count, which
// appends.
func (b *ObjectBuilder) AddPropertyAt(index int, name, value string) error {
	if name == "" {
		return fmt.Errorf("property name must not be empty")
	}
	props := b.Properties()
	if index < 0 || index > len(props) {
		return fmt.Errorf("property index %d out of range [0, %d]", index, len(props))
	}
	if index == len(props) {
		b.insertAfterLast(name, value)
		return nil
	}
	b.insertBefore(props[index], name, value)
	return nil
}

// AddPropertyAfter inserts a property immediately after the named one.
func (b *ObjectBuilder) AddPropertyAfter(after, name, value string) error {
	if name == "" {
		return fmt.Errorf("property name must not be empty")
	}
	props := b.Properties()
	for i, prop := range props {
		if prop.Name != after {
			continue
		}
		if i == len(props)-1 {
			b.insertAfterLast(name, value)
		} else {
			b.insertBefore(props[i+1], name, value)
		}
		return nil
	}
	return fmt.Errorf("property %q not found", after)
}

// RemoveProperty removes the named property together with exactly one of
// the commas around it, leaving the neighbors' own terminators intact.
// Removing a missing property reports false.
func (b *ObjectBuilder) RemoveProperty(name string) bool {
	props := b.Properties()
	for i, prop := range props {
		if prop.Name != name {
			continue
		}
		contentStart, contentEnd := b.contentBounds()
		switch {
		case len(props) == 1:
			b.ed.AddEdit(contentStart, contentEnd, "")
		case i < len(props)-1:
			// Take the whole segment plus the trailing comma; the next
			// property keeps its own leading whitespace.
			b.ed.AddEdit(prop.SegStart, prop.CommaPos+1, "")
		default:
			// Last property: absorb the separator left by the previous
			// one.
			b.ed.AddEdit(props[i-1].CommaPos, prop.ValueEnd, "")
		}
		return true
	}
	return false
}

// insertAfterLast appends a property after the current last property, or
// into the empty body.
func (b *ObjectBuilder) insertAfterLast(name, value string) {
	src := b.ed.src
	contentStart, contentEnd := b.contentBounds()
	content := src[contentStart:contentEnd]
	props := b.Properties()

	if len(props) == 0 {
		entry := name + ": " + value
		switch {
		case content == "":
			// An exactly-{} object gets no padding.
			b.ed.AddEdit(contentStart, contentEnd, entry)
		case !strings.Contains(content, "\n"):
			// Whitespace or comments on one line: padded single-line
			// form, content preserved.
			b.ed.AddEdit(contentEnd, contentEnd, entry+" ")
		default:
			indent := shortestBlankIndent(src, contentStart, contentEnd)
			if indent == "" {
				indent = lineIndent(src, b.start) + "\t"
			}
			b.ed.AddEdit(contentStart, contentStart, "\n"+indent+entry)
		}
		return
	}

	last := props[len(props)-1]
	multiline := strings.Contains(content, "\n")
	entry := name + ": " + value

	if last.HasComma() {
		if multiline {
			indent := lineIndent(src, last.NameStart)
			b.ed.AddEdit(last.CommaPos+1, last.CommaPos+1, "\n"+indent+entry)
		} else {
			b.ed.AddEdit(last.CommaPos+1, last.CommaPos+1, " "+entry)
		}
		return
	}

	if multiline {
		indent := lineIndent(src, last.NameStart)
		b.ed.AddEdit(last.ValueEnd, last.ValueEnd, ",\n"+indent+entry)
	} else {
		b.ed.AddEdit(last.ValueEnd, last.ValueEnd, ", "+entry)
	}
}

// insertBefore places a new property in front of an existing one, giving
// the new property the trailing comma.
func (b *ObjectBuilder) insertBefore(next Property, name, value string) {
	contentStart, contentEnd := b.contentBounds()
	content := b.ed.src[contentStart:contentEnd]
	entry := name + ": " + value
	if strings.Contains(content, "\n") {
		indent := lineIndent(b.ed.src, next.NameStart)
		b.ed.AddEdit(next.NameStart, next.NameStart, entry+",\n"+indent)
	} else {
		b.ed.AddEdit(next.NameStart, next.NameStart, entry+", ")
	}
}
