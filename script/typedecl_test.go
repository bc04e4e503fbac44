package script

import (
	"strings"
	"testing"
)

func findType(t *testing.T, src, name string) (*Editor, *TypeBuilder) {
	t.Helper()
	e := New(src)
	tb, ok := e.FindType(name)
	if !ok {
		t.Fatalf("type %s not found in %q", name, src)
	}
	return e, tb
}

func TestTypeDefinition(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"union", "type Status = 'planned' | 'done';", "'planned' | 'done'"},
		{"object", "type Point = { x: number };", "{ x: number }"},
		{"generic", "type Registry = Map<string, Event>;", "Map<string, Event>"},
		{"no semicolon", "type Id = string", "string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, tb := findType(t, tt.src, strings.Fields(tt.src)[1])
			got, ok := tb.Definition()
			if !ok {
				t.Fatal("Definition() not found")
			}
			if got != tt.want {
				t.Errorf("Definition() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeUnionMembers(t *testing.T) {
	_, tb := findType(t, "type Status = 'planned' | 'running' | 'done';", "Status")
	got := tb.UnionMembers()
	want := []string{"'planned'", "'running'", "'done'"}
	if len(got) != len(want) {
		t.Fatalf("got %d members %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("member %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTypeUnionMembersSingle(t *testing.T) {
	_, tb := findType(t, "type Id = string;", "Id")
	got := tb.UnionMembers()
	if len(got) != 1 || got[0] != "string" {
		t.Errorf("UnionMembers() = %v, want [string]", got)
	}
}

func TestTypeAddUnionMember(t *testing.T) {
	e, tb := findType(t, "type Status = 'planned' | 'done';", "Status")
	added, err := tb.AddUnionMember("'running'")
	if err != nil {
		t.Fatal(err)
	}
	if !added {
		t.Error("AddUnionMember = false, want true")
	}
	want := "type Status = 'planned' | 'done' | 'running';"
	if got := e.Apply(); got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}

func TestTypeAddUnionMemberDuplicate(t *testing.T) {
	src := "type Status = 'planned' | 'done';"
	e, tb := findType(t, src, "Status")
	added, err := tb.AddUnionMember("'done'")
	if err != nil {
		t.Fatal(err)
	}
	if added {
		t.Error("AddUnionMember(duplicate) = true, want false")
	}
	if got := e.Apply(); got != src {
		t.Errorf("Apply() = %q, want unchanged input", got)
	}
}

func TestTypeRemoveUnionMember(t *testing.T) {
	tests := []struct {
		name   string
		remove string
		want   string
	}{
		{"first", "'a'", "type T = 'b' | 'c';"},
		{"middle", "'b'", "type T = 'a' | 'c';"},
		{"last", "'c'", "type T = 'a' | 'b';"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, tb := findType(t, "type T = 'a' | 'b' | 'c';", "T")
			removed, err := tb.RemoveUnionMember(tt.remove)
			if err != nil {
				t.Fatal(err)
			}
			if !removed {
				t.Fatalf("RemoveUnionMember(%s) = false, want true", tt.remove)
			}
			if got := e.Apply(); got != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeRemoveUnionMemberMissing(t *testing.T) {
	e, tb := findType(t, "type T = 'a' | 'b';", "T")
	removed, err := tb.RemoveUnionMember("'z'")
	if err != nil {
		t.Fatal(err)
	}
	if removed {
		t.Error("RemoveUnionMember(missing) = true, want false")
	}
	if got := e.Apply(); got != "type T = 'a' | 'b';" {
		t.Errorf("Apply() = %q, want unchanged input", got)
	}
}

func TestTypeRemoveLastUnionMember(t *testing.T) {
	_, tb := findType(t, "type T = 'only';", "T")
	if _, err := tb.RemoveUnionMember("'only'"); err == nil {
		t.Error("removing the last member: err = nil, want error")
	}
}

func TestTypeFindNestedTypeObject(t *testing.T) {
	src := "type World = {\n\tevent: {\n\t\tguests: { count: number };\n\t\tname: string;\n\t};\n};"
	_, tb := findType(t, src, "World")

	tests := []struct {
		path string
		want string
	}{
		{"event", "{\n\t\tguests: { count: number };\n\t\tname: string;\n\t}"},
		{"event.guests", "{ count: number }"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			obj, ok, err := tb.FindNestedTypeObject(tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Fatalf("FindNestedTypeObject(%q) not found", tt.path)
			}
			if obj.Text() != tt.want {
				t.Errorf("Text() = %q, want %q", obj.Text(), tt.want)
			}
		})
	}
}

func TestTypeFindNestedTypeObjectNotFound(t *testing.T) {
	_, tb := findType(t, "type World = { event: { name: string } };", "World")

	tests := []string{
		"missing",
		"event.missing",
		"event.name", // member exists but is not an object
		"event[0]",   // index segments have no meaning here
	}
	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			_, ok, err := tb.FindNestedTypeObject(path)
			if err != nil {
				t.Fatal(err)
			}
			if ok {
				t.Errorf("FindNestedTypeObject(%q) = true, want false", path)
			}
		})
	}
}

func TestTypeFindNestedTypeObjectOnNonObject(t *testing.T) {
	_, tb := findType(t, "type Id = string;", "Id")
	_, ok, err := tb.FindNestedTypeObject("x")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("FindNestedTypeObject on a non-object definition = true, want false")
	}
}
