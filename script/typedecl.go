package script

import (
	"fmt"
	"strings"

	"github.com/Belafon/WFUtilities-sub000/script/parser"
)

// TypeBuilder operates on a named type alias declaration. The definition
// span runs from the assignment marker to the statement separator at
// depth zero, independent of how much nesting the definition contains.
type TypeBuilder struct {
	ed    *Editor
	group *parser.Group
}

func (b *TypeBuilder) Name() string {
	return b.group.Name
}

// Span returns the whole declaration's span.
func (b *TypeBuilder) Span() (start, end int) {
	return b.group.Span.Start.Offset, b.group.Span.End.Offset
}

// DefinitionSpan locates the definition: everything between the
// assignment marker and the terminating separator, trimmed to
// significant content.
func (b *TypeBuilder) DefinitionSpan() (start, end int, ok bool) {
	declStart := b.group.Span.Start.Offset
	declEnd := b.group.Span.End.Offset
	src := b.ed.src

	assign := -1
	angle := 0
	s := newTextScanner(src, declStart, declEnd)
	for !s.done() {
		ch, at := s.next()
		if !s.inCode() || !s.atDepthZero() {
			continue
		}
		// The assignment marker of a parameter default ("<T = U>") must
		// not count; angle depth shares the comparison-operator
		// ambiguity of the grouper.
		switch ch {
		case '<':
			angle++
		case '>':
			if angle > 0 {
				angle--
			}
		case '=':
			if angle == 0 {
				assign = at
			}
		}
		if assign >= 0 {
			break
		}
	}
	if assign < 0 {
		return 0, 0, false
	}

	defEnd := declEnd
	if src[declEnd-1] == ';' {
		defEnd = declEnd - 1
	}
	first, last, ok := significantBounds(src, assign+1, defEnd)
	if !ok {
		return 0, 0, false
	}
	return first, last, true
}

// Definition returns the definition text.
func (b *TypeBuilder) Definition() (string, bool) {
	start, end, ok := b.DefinitionSpan()
	if !ok {
		return "", false
	}
	return b.ed.src[start:end], true
}

// UnionMembers splits the definition on pipes recognized at depth zero
// outside strings and comments.
func (b *TypeBuilder) UnionMembers() []string {
	start, end, ok := b.DefinitionSpan()
	if !ok {
		return nil
	}
	var members []string
	for _, seg := range splitTopLevel(b.ed.src, start, end, '|') {
		first, last, ok := significantBounds(b.ed.src, seg.start, seg.end)
		if !ok {
			continue
		}
		members = append(members, b.ed.src[first:last])
	}
	return members
}

// AddUnionMember appends a member to the union. Adding one that is
// already present is a no-op; the returned bool reports whether an edit
// was queued.
func (b *TypeBuilder) AddUnionMember(member string) (bool, error) {
	member = strings.TrimSpace(member)
	if member == "" {
		return false, fmt.Errorf("union member must not be empty")
	}
	_, end, ok := b.DefinitionSpan()
	if !ok {
		return false, fmt.Errorf("type %s has no definition", b.group.Name)
	}
	for _, existing := range b.UnionMembers() {
		if existing == member {
			return false, nil
		}
	}
	b.ed.AddEdit(end, end, " | "+member)
	return true, nil
}

// RemoveUnionMember removes a member together with one adjacent pipe.
// Removing the last remaining member is refused; a member that is not
// present reports false without error.
func (b *TypeBuilder) RemoveUnionMember(member string) (bool, error) {
	member = strings.TrimSpace(member)
	if member == "" {
		return false, fmt.Errorf("union member must not be empty")
	}
	start, end, ok := b.DefinitionSpan()
	if !ok {
		return false, fmt.Errorf("type %s has no definition", b.group.Name)
	}

	segments := splitTopLevel(b.ed.src, start, end, '|')
	type memberSpan struct {
		first, last int
	}
	var members []memberSpan
	target := -1
	for _, seg := range segments {
		first, last, ok := significantBounds(b.ed.src, seg.start, seg.end)
		if !ok {
			continue
		}
		if b.ed.src[first:last] == member && target < 0 {
			target = len(members)
		}
		members = append(members, memberSpan{first: first, last: last})
	}
	if target < 0 {
		return false, nil
	}
	if len(members) == 1 {
		return false, fmt.Errorf("cannot remove the last member of union type %s", b.group.Name)
	}

	if target < len(members)-1 {
		// Remove through the following pipe; the next member keeps its
		// leading whitespace.
		b.ed.AddEdit(members[target].first, members[target+1].first, "")
	} else {
		// Last member: absorb the pipe that precedes it.
		b.ed.AddEdit(members[target-1].last, members[target].last, "")
	}
	return true, nil
}

// TypeObject is a brace-delimited block inside a type definition,
// located by FindNestedTypeObject.
type TypeObject struct {
	ed    *Editor
	start int
	end   int
}

func (o *TypeObject) Span() (start, end int) {
	return o.start, o.end
}

func (o *TypeObject) Text() string {
	return o.ed.src[o.start:o.end]
}

// FindNestedTypeObject walks dotted names through brace-delimited type
// bodies: each hop looks for "name:" followed by a balanced-brace block.
// Index segments have no meaning in type bodies and fail closed.
func (b *TypeBuilder) FindNestedTypeObject(path string) (*TypeObject, bool, error) {
	segments, err := ParsePath(path)
	if err != nil {
		return nil, false, err
	}

	start, end, ok := b.DefinitionSpan()
	if !ok {
		return nil, false, nil
	}
	if b.ed.src[start] != '{' {
		return nil, false, nil
	}
	blockStart, blockEnd := start, end
	if e := matchDelimiter(b.ed.src, start); e >= 0 {
		blockEnd = e
	}

	for _, seg := range segments {
		if seg.IsIndex {
			return nil, false, nil
		}
		bracePos, ok := findTypeMemberBlock(b.ed.src, blockStart+1, blockEnd-1, seg.Name)
		if !ok {
			return nil, false, nil
		}
		blockStart = bracePos
		blockEnd = matchDelimiter(b.ed.src, bracePos)
		if blockEnd < 0 {
			return nil, false, nil
		}
	}
	return &TypeObject{ed: b.ed, start: blockStart, end: blockEnd}, true, nil
}

// findTypeMemberBlock scans src[start:end) for "name:" at depth zero
// followed by an opening brace, using the same matching-delimiter
// discipline as the object builders.
func findTypeMemberBlock(src string, start, end int, name string) (int, bool) {
	s := newTextScanner(src, start, end)
	for !s.done() {
		ch, at := s.next()
		if !s.inCode() || !s.atDepthZero() {
			continue
		}
		if !isIdentByte(ch) {
			continue
		}
		// Consume the identifier run starting here.
		identStart := at
		identEnd := at + 1
		for !s.done() {
			next, nat := s.next()
			if isIdentByte(next) {
				identEnd = nat + 1
				continue
			}
			break
		}
		if identStart > start && isIdentByte(src[identStart-1]) {
			continue
		}
		if src[identStart:identEnd] != name {
			continue
		}

		// Optional "?" marker, then a colon, then the block.
		i := identEnd
		for i < end && isSpaceByte(src[i]) {
			i++
		}
		if i < end && src[i] == '?' {
			i++
			for i < end && isSpaceByte(src[i]) {
				i++
			}
		}
		if i >= end || src[i] != ':' {
			continue
		}
		i++
		for i < end && isSpaceByte(src[i]) {
			i++
		}
		if i < end && src[i] == '{' {
			return i, true
		}
	}
	return 0, false
}
