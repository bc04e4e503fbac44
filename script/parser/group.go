package parser

import "strconv"

type GroupKind int

const (
	GroupRoot GroupKind = iota

	// Literal structures
	GroupObject
	GroupArray

	// Declarations
	GroupClass
	GroupInterface
	GroupTypeAlias
	GroupEnum
	GroupFunction
	GroupVariable
	GroupImport
)

var groupKindNames = map[GroupKind]string{
	GroupRoot:      "Root",
	GroupObject:    "Object",
	GroupArray:     "Array",
	GroupClass:     "Class",
	GroupInterface: "Interface",
	GroupTypeAlias: "TypeAlias",
	GroupEnum:      "Enum",
	GroupFunction:  "Function",
	GroupVariable:  "Variable",
	GroupImport:    "Import",
}

func (k GroupKind) String() string {
	if name, ok := groupKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Group is a node in the structural tree: one declaration or literal
// structure and its source span. Child spans are fully contained in the
// parent's span, sibling spans never overlap, and spans always reference
// the original text the tree was parsed from.
type Group struct {
	Kind       GroupKind
	Span       Span
	Name       string
	Children   []*Group
	Extends    []string
	Implements []string
	ReturnType string
}

func (g *Group) AddChild(child *Group) {
	if child != nil {
		g.Children = append(g.Children, child)
	}
}

func (g *Group) FirstChildOfKind(kind GroupKind) *Group {
	for _, child := range g.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

// Find returns the first group of the given kind and name, searching
// depth-first. An empty name matches any group of the kind.
func (g *Group) Find(kind GroupKind, name string) *Group {
	for _, child := range g.Children {
		if child.Kind == kind && (name == "" || child.Name == name) {
			return child
		}
		if found := child.Find(kind, name); found != nil {
			return found
		}
	}
	return nil
}

func (g *Group) String() string {
	return g.stringIndent(0)
}

func (g *Group) stringIndent(indent int) string {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}

	result := prefix + g.Kind.String()
	if g.Name != "" {
		result += " " + g.Name
	}
	result += " [" + strconv.Itoa(g.Span.Start.Offset) + "-" + strconv.Itoa(g.Span.End.Offset) + ")"
	result += "\n"

	for _, child := range g.Children {
		result += child.stringIndent(indent + 1)
	}
	return result
}
