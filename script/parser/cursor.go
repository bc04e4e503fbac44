package parser

// Cursor is a byte-index cursor over an immutable input buffer.
// It tracks line and column for diagnostics; all spans produced from it
// reference the original buffer by offset.
type Cursor struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func NewCursor(input []byte, file string) *Cursor {
	return &Cursor{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (c *Cursor) Position() Position {
	return Position{
		File:   c.file,
		Offset: c.pos,
		Line:   c.line,
		Column: c.column,
	}
}

func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.input)
}

func (c *Cursor) Peek() byte {
	if c.pos >= len(c.input) {
		return 0
	}
	return c.input[c.pos]
}

func (c *Cursor) PeekN(n int) byte {
	if c.pos+n >= len(c.input) {
		return 0
	}
	return c.input[c.pos+n]
}

func (c *Cursor) Advance() byte {
	if c.pos >= len(c.input) {
		return 0
	}
	ch := c.input[c.pos]
	c.pos++
	if ch == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return ch
}

func (c *Cursor) AdvanceN(n int) {
	for i := 0; i < n; i++ {
		c.Advance()
	}
}

// Text returns the input between two offsets. Both offsets must come from
// positions previously produced by this cursor.
func (c *Cursor) Text(start, end int) string {
	return string(c.input[start:end])
}
