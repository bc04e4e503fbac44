package script

import "strings"

// textScanner walks raw source text tracking string state (quote char +
// backslash escape), line/block comment state and brace/bracket/paren
// depth. Builders use it to re-derive property and item boundaries on
// demand: a boundary only counts when it sits outside strings and
// comments at depth zero.
type textScanner struct {
	src     string
	pos     int
	end     int
	quote   byte
	escaped bool
	line    bool
	block   bool
	brace   int
	bracket int
	paren   int
}

func newTextScanner(src string, start, end int) *textScanner {
	return &textScanner{src: src, pos: start, end: end}
}

func (s *textScanner) done() bool {
	return s.pos >= s.end
}

// next consumes one character, updating string/comment/depth state, and
// returns it together with the offset it was read from.
func (s *textScanner) next() (byte, int) {
	at := s.pos
	ch := s.src[s.pos]
	s.pos++

	if s.quote != 0 {
		if s.escaped {
			s.escaped = false
		} else if ch == '\\' {
			s.escaped = true
		} else if ch == s.quote {
			s.quote = 0
		}
		return ch, at
	}
	if s.line {
		if ch == '\n' {
			s.line = false
		}
		return ch, at
	}
	if s.block {
		if ch == '*' && s.pos < s.end && s.src[s.pos] == '/' {
			s.pos++
			s.block = false
			return ch, at
		}
		return ch, at
	}

	switch ch {
	case '\'', '"':
		s.quote = ch
	case '/':
		if s.pos < s.end {
			// Consume the second opener character so the "*" of "/*"
			// can never pair with a following "/" as a closer.
			switch s.src[s.pos] {
			case '/':
				s.line = true
				s.pos++
			case '*':
				s.block = true
				s.pos++
			}
		}
	case '{':
		s.brace++
	case '}':
		s.brace--
	case '[':
		s.bracket++
	case ']':
		s.bracket--
	case '(':
		s.paren++
	case ')':
		s.paren--
	}
	return ch, at
}

// inCode reports whether the scanner currently sits outside strings and
// comments.
func (s *textScanner) inCode() bool {
	return s.quote == 0 && !s.line && !s.block
}

func (s *textScanner) atDepthZero() bool {
	return s.brace == 0 && s.bracket == 0 && s.paren == 0
}

// segment is a run of text between top-level separators. sepPos is the
// offset of the separator that follows the segment, or -1 for the last
// one.
type segment struct {
	start  int
	end    int
	sepPos int
}

// splitTopLevel cuts src[start:end] at every occurrence of sep that sits
// at depth zero outside strings and comments. The separator itself
// belongs to no segment.
func splitTopLevel(src string, start, end int, sep byte) []segment {
	var segments []segment
	s := newTextScanner(src, start, end)
	segStart := start
	for !s.done() {
		ch, at := s.next()
		if ch == sep && s.inCode() && s.atDepthZero() {
			segments = append(segments, segment{start: segStart, end: at, sepPos: at})
			segStart = at + 1
		}
	}
	segments = append(segments, segment{start: segStart, end: end, sepPos: -1})
	return segments
}

// matchDelimiter returns the offset one past the delimiter matching the
// opener at openPos, or -1 if the input ends first. String and comment
// content never counts toward the match.
func matchDelimiter(src string, openPos int) int {
	open := src[openPos]
	var close byte
	switch open {
	case '{':
		close = '}'
	case '[':
		close = ']'
	case '(':
		close = ')'
	default:
		return -1
	}

	s := newTextScanner(src, openPos, len(src))
	depth := 0
	for !s.done() {
		ch, at := s.next()
		if !s.inCode() {
			continue
		}
		switch ch {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return at + 1
			}
		}
	}
	return -1
}

// significantBounds returns the first and last offsets of content in
// src[start:end) that is neither whitespace nor comment text, with end
// exclusive. ok is false when the range holds nothing significant.
func significantBounds(src string, start, end int) (first, last int, ok bool) {
	s := newTextScanner(src, start, end)
	first, last = -1, -1
	for !s.done() {
		wasComment := s.line || s.block
		wasString := s.quote != 0
		ch, at := s.next()

		significant := false
		switch {
		case wasComment:
			// Comment bytes, including the closing "*/".
		case wasString || s.quote != 0:
			// String contents and both quotes.
			significant = true
		case s.line || s.block:
			// The slash that opened a comment.
		default:
			significant = !isSpaceByte(ch)
		}

		if significant {
			if first < 0 {
				first = at
			}
			last = at
		}
	}
	if first < 0 {
		return 0, 0, false
	}
	return first, last + 1, true
}

func isSpaceByte(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

// lineStart returns the offset of the first character of the line
// containing offset.
func lineStart(src string, offset int) int {
	if offset > len(src) {
		offset = len(src)
	}
	i := offset
	for i > 0 && src[i-1] != '\n' {
		i--
	}
	return i
}

// lineIndent returns the leading whitespace of the line containing
// offset.
func lineIndent(src string, offset int) string {
	start := lineStart(src, offset)
	i := start
	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	return src[start:i]
}

// shortestBlankIndent returns the shortest non-zero indentation found on
// whitespace-only lines of src[start:end). Used to pick an item indent
// for an object whose body holds nothing but blank lines.
func shortestBlankIndent(src string, start, end int) string {
	best := ""
	for _, line := range strings.Split(src[start:end], "\n") {
		trimmed := strings.TrimRight(line, " \t\r")
		if trimmed != "" {
			continue
		}
		indent := line
		if r := strings.TrimLeft(indent, " \t"); r != "" {
			indent = indent[:len(indent)-len(r)]
		}
		if indent == "" {
			continue
		}
		if best == "" || len(indent) < len(best) {
			best = indent
		}
	}
	return best
}
