package script

import (
	"fmt"
	"strings"
)

// Item is an ephemeral record of one array element, re-derived on
// demand. Spans are offsets into the editor's original text.
type Item struct {
	Index      int
	ValueStart int
	ValueEnd   int
	SegStart   int
	SegEnd     int
	CommaPos   int
}

func (it Item) HasComma() bool {
	return it.CommaPos >= 0
}

// ArrayBuilder mirrors ObjectBuilder for array literals: every query
// re-scans the span, and mutations follow the same comma and line
// sensitivity.
type ArrayBuilder struct {
	ed    *Editor
	start int
	end   int
}

func (b *ArrayBuilder) Span() (start, end int) {
	return b.start, b.end
}

func (b *ArrayBuilder) Text() string {
	return b.ed.src[b.start:b.end]
}

func (b *ArrayBuilder) contentBounds() (int, int) {
	return b.start + 1, b.end - 1
}

// Items re-derives the element list from the current span.
func (b *ArrayBuilder) Items() []Item {
	contentStart, contentEnd := b.contentBounds()
	if contentStart >= contentEnd {
		return nil
	}

	var items []Item
	for _, seg := range splitTopLevel(b.ed.src, contentStart, contentEnd, ',') {
		first, last, ok := significantBounds(b.ed.src, seg.start, seg.end)
		if !ok {
			continue
		}
		items = append(items, Item{
			Index:      len(items),
			ValueStart: first,
			ValueEnd:   last,
			SegStart:   seg.start,
			SegEnd:     seg.end,
			CommaPos:   seg.sepPos,
		})
	}
	return items
}

// Item returns the element at the given index.
func (b *ArrayBuilder) Item(index int) (Item, bool) {
	items := b.Items()
	if index < 0 || index >= len(items) {
		return Item{}, false
	}
	return items[index], true
}

// Len reports the number of elements.
func (b *ArrayBuilder) Len() int {
	return len(b.Items())
}

// ObjectAt returns a sub-builder for an element that is an object
// literal.
func (b *ArrayBuilder) ObjectAt(index int) (*ObjectBuilder, bool) {
	item, ok := b.Item(index)
	if !ok || b.ed.src[item.ValueStart] != '{' {
		return nil, false
	}
	end := matchDelimiter(b.ed.src, item.ValueStart)
	if end < 0 {
		return nil, false
	}
	return &ObjectBuilder{ed: b.ed, start: item.ValueStart, end: end}, true
}

// ArrayAt returns a sub-builder for an element that is itself an array
// literal.
func (b *ArrayBuilder) ArrayAt(index int) (*ArrayBuilder, bool) {
	item, ok := b.Item(index)
	if !ok || b.ed.src[item.ValueStart] != '[' {
		return nil, false
	}
	end := matchDelimiter(b.ed.src, item.ValueStart)
	if end < 0 {
		return nil, false
	}
	return &ArrayBuilder{ed: b.ed, start: item.ValueStart, end: end}, true
}

// AddItem appends an element after the current last one.
func (b *ArrayBuilder) AddItem(value string) error {
	if value == "" {
		return fmt.Errorf("item text must not be empty")
	}
	b.insertAfterLast(value)
	return nil
}

// InsertItemAt inserts an element at the given position; index may equal
// the element count, which appends.
func (b *ArrayBuilder) InsertItemAt(index int, value string) error {
	if value == "" {
		return fmt.Errorf("item text must not be empty")
	}
	items := b.Items()
	if index < 0 || index > len(items) {
		return fmt.Errorf("item index %d out of range [0, %d]", index, len(items))
	}
	if index == len(items) {
		b.insertAfterLast(value)
		return nil
	}
	b.insertBefore(items[index], value)
	return nil
}

// ReplaceItemAt replaces the element's value span, touching nothing
// else.
func (b *ArrayBuilder) ReplaceItemAt(index int, value string) error {
	if value == "" {
		return fmt.Errorf("item text must not be empty")
	}
	item, ok := b.Item(index)
	if !ok {
		return fmt.Errorf("item index %d out of range", index)
	}
	b.ed.AddEdit(item.ValueStart, item.ValueEnd, value)
	return nil
}

// RemoveItemAt removes the element together with exactly one of the
// commas around it.
func (b *ArrayBuilder) RemoveItemAt(index int) error {
	items := b.Items()
	if index < 0 || index >= len(items) {
		return fmt.Errorf("item index %d out of range", index)
	}
	item := items[index]
	contentStart, contentEnd := b.contentBounds()
	switch {
	case len(items) == 1:
		b.ed.AddEdit(contentStart, contentEnd, "")
	case index < len(items)-1:
		b.ed.AddEdit(item.SegStart, item.CommaPos+1, "")
	default:
		b.ed.AddEdit(items[index-1].CommaPos, item.ValueEnd, "")
	}
	return nil
}

func (b *ArrayBuilder) insertAfterLast(value string) {
	src := b.ed.src
	contentStart, contentEnd := b.contentBounds()
	content := src[contentStart:contentEnd]
	items := b.Items()

	if len(items) == 0 {
		switch {
		case content == "":
			b.ed.AddEdit(contentStart, contentEnd, value)
		case !strings.Contains(content, "\n"):
			b.ed.AddEdit(contentEnd, contentEnd, value+" ")
		default:
			indent := shortestBlankIndent(src, contentStart, contentEnd)
			if indent == "" {
				indent = lineIndent(src, b.start) + "\t"
			}
			b.ed.AddEdit(contentStart, contentStart, "\n"+indent+value)
		}
		return
	}

	last := items[len(items)-1]
	multiline := strings.Contains(content, "\n")

	if last.HasComma() {
		if multiline {
			indent := lineIndent(src, last.ValueStart)
			b.ed.AddEdit(last.CommaPos+1, last.CommaPos+1, "\n"+indent+value)
		} else {
			b.ed.AddEdit(last.CommaPos+1, last.CommaPos+1, " "+value)
		}
		return
	}

	if multiline {
		indent := lineIndent(src, last.ValueStart)
		b.ed.AddEdit(last.ValueEnd, last.ValueEnd, ",\n"+indent+value)
	} else {
		b.ed.AddEdit(last.ValueEnd, last.ValueEnd, ", "+value)
	}
}

func (b *ArrayBuilder) insertBefore(next Item, value string) {
	contentStart, contentEnd := b.contentBounds()
	content := b.ed.src[contentStart:contentEnd]
	if strings.Contains(content, "\n") {
		indent := lineIndent(b.ed.src, next.ValueStart)
		b.ed.AddEdit(next.ValueStart, next.ValueStart, value+",\n"+indent)
	} else {
		b.ed.AddEdit(next.ValueStart, next.ValueStart, value+", ")
	}
}
