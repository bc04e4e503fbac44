package script

import "strconv"

// Visitor receives depth-first traversal callbacks. Every callback gets
// the dotted/indexed path from the traversal root ("" for the root
// itself, "a.b[1].c" below it). Nil callbacks are skipped.
type Visitor struct {
	EnterObject func(path string, obj *ObjectBuilder)
	LeaveObject func(path string, obj *ObjectBuilder)
	EnterArray  func(path string, arr *ArrayBuilder)
	LeaveArray  func(path string, arr *ArrayBuilder)
	Property    func(path string, prop Property, value Value)
	Item        func(path string, item Item, value Value)
}

// Traverse walks the object tree depth-first: nested object and array
// values recurse, primitive leaves surface through Property/Item. It
// lets callers serialize or inspect arbitrary nested shapes without
// bespoke recursion per call site.
func (b *ObjectBuilder) Traverse(v Visitor) {
	b.traverse("", v)
}

func (b *ObjectBuilder) traverse(path string, v Visitor) {
	if v.EnterObject != nil {
		v.EnterObject(path, b)
	}
	for _, prop := range b.Properties() {
		childPath := prop.Name
		if path != "" {
			childPath = path + "." + prop.Name
		}
		value := Value{ed: b.ed, Start: prop.ValueStart, End: prop.ValueEnd}
		if v.Property != nil {
			v.Property(childPath, prop, value)
		}
		if obj, ok := value.Object(); ok {
			obj.traverse(childPath, v)
		} else if arr, ok := value.Array(); ok {
			arr.traverse(childPath, v)
		}
	}
	if v.LeaveObject != nil {
		v.LeaveObject(path, b)
	}
}

// Traverse walks the array the same way Traverse on an object does.
func (b *ArrayBuilder) Traverse(v Visitor) {
	b.traverse("", v)
}

func (b *ArrayBuilder) traverse(path string, v Visitor) {
	if v.EnterArray != nil {
		v.EnterArray(path, b)
	}
	for _, item := range b.Items() {
		childPath := path + "[" + strconv.Itoa(item.Index) + "]"
		value := Value{ed: b.ed, Start: item.ValueStart, End: item.ValueEnd}
		if v.Item != nil {
			v.Item(childPath, item, value)
		}
		if obj, ok := value.Object(); ok {
			obj.traverse(childPath, v)
		} else if arr, ok := value.Array(); ok {
			arr.traverse(childPath, v)
		}
	}
	if v.LeaveArray != nil {
		v.LeaveArray(path, b)
	}
}
