package script

import (
	"fmt"
	"strings"

	"github.com/Belafon/WFUtilities-sub000/script/parser"
)

// Member is an ephemeral record of one class or interface member,
// re-derived on demand. A member runs either to a statement separator or
// to the close of its own brace block, whichever ends it at depth zero.
type Member struct {
	Name     string
	Start    int
	End      int
	SegStart int
	SegEnd   int
}

// memberBody is the shared body machinery of ClassBuilder and
// InterfaceBuilder. It re-derives the body span and member boundaries
// from the declaration group on every call.
type memberBody struct {
	ed    *Editor
	group *parser.Group
}

func (b *memberBody) Name() string {
	return b.group.Name
}

// Span returns the whole declaration's span.
func (b *memberBody) Span() (start, end int) {
	return b.group.Span.Start.Offset, b.group.Span.End.Offset
}

// BodySpan returns the span of the brace-delimited body, both braces
// included.
func (b *memberBody) BodySpan() (start, end int, ok bool) {
	declStart := b.group.Span.Start.Offset
	declEnd := b.group.Span.End.Offset
	s := newTextScanner(b.ed.src, declStart, declEnd)
	for !s.done() {
		ch, at := s.next()
		if ch != '{' || !s.inCode() {
			continue
		}
		end := matchDelimiter(b.ed.src, at)
		if end < 0 {
			return 0, 0, false
		}
		return at, end, true
	}
	return 0, 0, false
}

// Members re-derives the member list from the body text. A member ends
// at a depth-zero semicolon or at the close of a brace block opened at
// depth zero, so field declarations and brace-bodied methods both scan
// as single members.
func (b *memberBody) Members() []Member {
	bodyStart, bodyEnd, ok := b.BodySpan()
	if !ok {
		return nil
	}
	contentStart, contentEnd := bodyStart+1, bodyEnd-1

	var members []Member
	s := newTextScanner(b.ed.src, contentStart, contentEnd)
	segStart := contentStart
	opened := false
	for !s.done() {
		ch, at := s.next()
		if !s.inCode() {
			continue
		}
		switch {
		case ch == ';' && s.atDepthZero():
			members = appendMember(members, b.ed.src, segStart, at+1)
			segStart = at + 1
			opened = false
		case ch == '{':
			opened = true
		case ch == '}' && s.atDepthZero() && opened:
			members = appendMember(members, b.ed.src, segStart, at+1)
			segStart = at + 1
			opened = false
		}
	}
	members = appendMember(members, b.ed.src, segStart, contentEnd)
	return members
}

func appendMember(members []Member, src string, segStart, segEnd int) []Member {
	first, last, ok := significantBounds(src, segStart, segEnd)
	if !ok {
		return members
	}
	m := Member{
		Name:     memberName(src, first, last),
		Start:    first,
		End:      last,
		SegStart: segStart,
		SegEnd:   segEnd,
	}
	if m.Name == "" {
		return members
	}
	return append(members, m)
}

// memberName picks the declared name out of a member's head: the last
// identifier run before the first depth-zero "(", ":", "=" or "{".
func memberName(src string, start, end int) string {
	head := end
	s := newTextScanner(src, start, end)
scan:
	for !s.done() {
		ch, at := s.next()
		if !s.inCode() {
			continue
		}
		switch ch {
		case '(':
			if s.paren == 1 && s.brace == 0 && s.bracket == 0 {
				head = at
				break scan
			}
		case '{':
			if s.brace == 1 && s.paren == 0 && s.bracket == 0 {
				head = at
				break scan
			}
		case ':', '=':
			if s.atDepthZero() {
				head = at
				break scan
			}
		}
	}

	name := ""
	i := start
	for i < head {
		if !isIdentByte(src[i]) {
			i++
			continue
		}
		runStart := i
		for i < head && isIdentByte(src[i]) {
			i++
		}
		name = src[runStart:i]
	}
	return name
}

// Member returns the named member when present.
func (b *memberBody) Member(name string) (Member, bool) {
	for _, m := range b.Members() {
		if m.Name == name {
			return m, true
		}
	}
	return Member{}, false
}

// HasMember reports whether the named member exists.
func (b *memberBody) HasMember(name string) bool {
	_, ok := b.Member(name)
	return ok
}

// AddMember appends a member declaration to the body, matching the
// body's existing line layout.
func (b *memberBody) AddMember(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("member text must not be empty")
	}
	bodyStart, bodyEnd, ok := b.BodySpan()
	if !ok {
		return fmt.Errorf("%s has no body", b.group.Name)
	}
	src := b.ed.src
	contentStart, contentEnd := bodyStart+1, bodyEnd-1
	content := src[contentStart:contentEnd]
	members := b.Members()

	if len(members) == 0 {
		indent := lineIndent(src, bodyStart) + "\t"
		closeIndent := lineIndent(src, bodyStart)
		if content == "" || !strings.Contains(content, "\n") {
			b.ed.AddEdit(contentStart, contentEnd, "\n"+indent+text+"\n"+closeIndent)
		} else {
			b.ed.AddEdit(contentStart, contentStart, "\n"+indent+text)
		}
		return nil
	}

	last := members[len(members)-1]
	if strings.Contains(content, "\n") {
		indent := lineIndent(src, last.Start)
		b.ed.AddEdit(last.End, last.End, "\n"+indent+text)
	} else {
		b.ed.AddEdit(last.End, last.End, " "+text)
	}
	return nil
}

// RemoveMember removes the named member together with its own line when
// nothing else shares it. A missing member reports false.
func (b *memberBody) RemoveMember(name string) bool {
	m, ok := b.Member(name)
	if !ok {
		return false
	}
	src := b.ed.src
	start := m.Start
	ls := lineStart(src, m.Start)
	if strings.TrimSpace(src[ls:m.Start]) == "" {
		start = ls
		if start > 0 && src[start-1] == '\n' {
			start--
		}
	}
	b.ed.AddEdit(start, m.End, "")
	return true
}

// ClassBuilder operates on a class declaration: its inheritance clauses
// and its body members.
type ClassBuilder struct {
	memberBody
}

// Extends returns the names in the extends clause.
func (b *ClassBuilder) Extends() []string {
	return b.group.Extends
}

// Implements returns the names in the implements clause.
func (b *ClassBuilder) Implements() []string {
	return b.group.Implements
}

// InterfaceBuilder operates on an interface declaration the way
// ClassBuilder does on a class.
type InterfaceBuilder struct {
	memberBody
}

// Extends returns the names in the extends clause.
func (b *InterfaceBuilder) Extends() []string {
	return b.group.Extends
}
