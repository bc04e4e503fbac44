package script

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// importPattern recognizes the import statement forms at the start of a
// line: default, namespace, named, mixed and bare side-effect imports.
// The clause may spread a named specifier list over several lines, hence
// the s flag. Recognition is textual on purpose: import statements keep
// a rigid shape even in files the grouper degrades on.
var importPattern = regexp.MustCompile(`(?ms)^[ \t]*(import\s+(?:([^'"]+?)\s+from\s+)?(['"])([^'"]+)['"][ \t]*;?)`)

// ImportStatement is one recognized import, re-derived on demand. Start
// and End span the statement text without its leading indentation.
type ImportStatement struct {
	Start     int
	End       int
	Default   string
	Namespace string
	Named     []string
	Source    string
	Quote     byte
}

// SideEffect reports whether the statement imports for side effects
// only.
func (st ImportStatement) SideEffect() bool {
	return st.Default == "" && st.Namespace == "" && len(st.Named) == 0
}

func (st ImportStatement) render() string {
	q := string(st.Quote)
	if st.SideEffect() {
		return "import " + q + st.Source + q + ";"
	}
	var parts []string
	if st.Default != "" {
		parts = append(parts, st.Default)
	}
	if st.Namespace != "" {
		parts = append(parts, "* as "+st.Namespace)
	}
	if len(st.Named) > 0 {
		parts = append(parts, "{ "+strings.Join(st.Named, ", ")+" }")
	}
	return "import " + strings.Join(parts, ", ") + " from " + q + st.Source + q + ";"
}

// ImportManager reads and rewrites the import statements of the editor's
// text. Like the builders it holds no derived state: every operation
// re-scans the original snapshot and queues edits on the editor.
type ImportManager struct {
	ed *Editor
}

func newImportManager(e *Editor) *ImportManager {
	return &ImportManager{ed: e}
}

// List returns the recognized import statements in source order.
func (m *ImportManager) List() []ImportStatement {
	var statements []ImportStatement
	for _, idx := range importPattern.FindAllStringSubmatchIndex(m.ed.src, -1) {
		st := ImportStatement{
			Start:  idx[2],
			End:    idx[3],
			Source: m.ed.src[idx[8]:idx[9]],
			Quote:  m.ed.src[idx[6]],
		}
		if idx[4] >= 0 {
			parseImportClause(m.ed.src[idx[4]:idx[5]], &st)
		}
		statements = append(statements, st)
	}
	return statements
}

// parseImportClause splits the text between "import" and "from" into the
// default, namespace and named parts.
func parseImportClause(clause string, st *ImportStatement) {
	clause = strings.TrimSpace(clause)

	if open := strings.IndexByte(clause, '{'); open >= 0 {
		inner := clause[open+1:]
		if close := strings.IndexByte(inner, '}'); close >= 0 {
			inner = inner[:close]
		}
		for _, name := range strings.Split(inner, ",") {
			name = strings.Join(strings.Fields(name), " ")
			if name != "" {
				st.Named = append(st.Named, name)
			}
		}
		clause = clause[:open]
	}

	for _, part := range strings.Split(clause, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, "*") {
			fields := strings.Fields(part)
			if len(fields) == 3 && fields[1] == "as" {
				st.Namespace = fields[2]
			}
			continue
		}
		st.Default = part
	}
}

// Find returns the statement importing from the given source.
func (m *ImportManager) Find(source string) (ImportStatement, bool) {
	for _, st := range m.List() {
		if st.Source == source {
			return st, true
		}
	}
	return ImportStatement{}, false
}

// HasNamed reports whether name is imported from source, counting an
// aliased specifier by its original name.
func (m *ImportManager) HasNamed(source, name string) bool {
	st, ok := m.Find(source)
	if !ok {
		return false
	}
	for _, spec := range st.Named {
		if spec == name || strings.HasPrefix(spec, name+" ") {
			return true
		}
	}
	return false
}

// AddNamed makes name available from source: an existing statement for
// the source is rewritten with the specifier merged in, otherwise a new
// statement is appended to the import block. Reports whether an edit was
// queued.
func (m *ImportManager) AddNamed(source, name string) (bool, error) {
	if source == "" || name == "" {
		return false, fmt.Errorf("import source and name must not be empty")
	}
	if st, ok := m.Find(source); ok {
		if m.HasNamed(source, name) {
			return false, nil
		}
		st.Named = append(st.Named, name)
		m.ed.AddEdit(st.Start, st.End, st.render())
		return true, nil
	}
	m.insertStatement(ImportStatement{Named: []string{name}, Source: source, Quote: m.preferredQuote()})
	return true, nil
}

// AddDefault makes name the default import from source. An existing
// statement with a different default is left alone and reported as an
// error rather than silently renamed.
func (m *ImportManager) AddDefault(source, name string) (bool, error) {
	if source == "" || name == "" {
		return false, fmt.Errorf("import source and name must not be empty")
	}
	if st, ok := m.Find(source); ok {
		if st.Default == name {
			return false, nil
		}
		if st.Default != "" {
			return false, fmt.Errorf("source %q already has default import %s", source, st.Default)
		}
		st.Default = name
		m.ed.AddEdit(st.Start, st.End, st.render())
		return true, nil
	}
	m.insertStatement(ImportStatement{Default: name, Source: source, Quote: m.preferredQuote()})
	return true, nil
}

// AddNamespace makes alias the namespace import from source.
func (m *ImportManager) AddNamespace(source, alias string) (bool, error) {
	if source == "" || alias == "" {
		return false, fmt.Errorf("import source and alias must not be empty")
	}
	if st, ok := m.Find(source); ok {
		if st.Namespace == alias {
			return false, nil
		}
		if st.Namespace != "" {
			return false, fmt.Errorf("source %q already has namespace import %s", source, st.Namespace)
		}
		st.Namespace = alias
		m.ed.AddEdit(st.Start, st.End, st.render())
		return true, nil
	}
	m.insertStatement(ImportStatement{Namespace: alias, Source: source, Quote: m.preferredQuote()})
	return true, nil
}

// AddSideEffect ensures the source is imported at all.
func (m *ImportManager) AddSideEffect(source string) (bool, error) {
	if source == "" {
		return false, fmt.Errorf("import source must not be empty")
	}
	if _, ok := m.Find(source); ok {
		return false, nil
	}
	m.insertStatement(ImportStatement{Source: source, Quote: m.preferredQuote()})
	return true, nil
}

// Remove drops the whole statement for the source, together with its
// line break. A missing source reports false.
func (m *ImportManager) Remove(source string) bool {
	st, ok := m.Find(source)
	if !ok {
		return false
	}
	start, end := st.Start, st.End
	src := m.ed.src
	ls := lineStart(src, start)
	if strings.TrimSpace(src[ls:start]) == "" {
		start = ls
	}
	if end < len(src) && src[end] == '\n' {
		end++
	} else if end+1 < len(src) && src[end] == '\r' && src[end+1] == '\n' {
		end += 2
	}
	m.ed.AddEdit(start, end, "")
	return true
}

// RemoveNamed drops one named specifier; the statement itself is removed
// when nothing else remains of it.
func (m *ImportManager) RemoveNamed(source, name string) bool {
	st, ok := m.Find(source)
	if !ok {
		return false
	}
	kept := st.Named[:0:0]
	found := false
	for _, spec := range st.Named {
		if spec == name || strings.HasPrefix(spec, name+" ") {
			found = true
			continue
		}
		kept = append(kept, spec)
	}
	if !found {
		return false
	}
	st.Named = kept
	if st.SideEffect() {
		return m.Remove(source)
	}
	m.ed.AddEdit(st.Start, st.End, st.render())
	return true
}

// insertStatement queues a brand-new statement after the last import, or
// at the top of the file when there is none.
func (m *ImportManager) insertStatement(st ImportStatement) {
	statements := m.List()
	text := st.render()
	if len(statements) == 0 {
		suffix := "\n"
		if strings.TrimSpace(m.ed.src) != "" {
			suffix = "\n\n"
		}
		m.ed.AddEdit(0, 0, text+suffix)
		return
	}
	last := statements[len(statements)-1]
	m.ed.AddEdit(last.End, last.End, "\n"+text)
}

// preferredQuote picks the quote character the file already uses for its
// imports, defaulting to single quotes.
func (m *ImportManager) preferredQuote() byte {
	for _, st := range m.List() {
		return st.Quote
	}
	return '\''
}

// importGroup classifies a source for Organize: external packages first,
// then absolute paths, then relative ones.
func importGroup(source string) int {
	switch {
	case strings.HasPrefix(source, "."):
		return 2
	case strings.HasPrefix(source, "/"):
		return 1
	default:
		return 0
	}
}

// Organize rewrites the leading import block: statements grouped by
// external, absolute and relative sources, each group alphabetical by
// source and separated by a blank line. Only the contiguous leading run
// of imports is touched; a statement past other code stays where it is.
// Reports whether an edit was queued.
func (m *ImportManager) Organize() bool {
	statements := m.List()
	if len(statements) == 0 {
		return false
	}

	// The leading run: consecutive statements with nothing significant
	// between them, starting at the top of the file.
	src := m.ed.src
	var run []ImportStatement
	prevEnd := 0
	for _, st := range statements {
		if _, _, significant := significantBounds(src, prevEnd, st.Start); significant {
			break
		}
		run = append(run, st)
		prevEnd = st.End
	}
	if len(run) == 0 {
		return false
	}

	sorted := make([]ImportStatement, len(run))
	copy(sorted, run)
	sort.SliceStable(sorted, func(i, j int) bool {
		gi, gj := importGroup(sorted[i].Source), importGroup(sorted[j].Source)
		if gi != gj {
			return gi < gj
		}
		return sorted[i].Source < sorted[j].Source
	})

	var out strings.Builder
	prevGroup := -1
	for i, st := range sorted {
		group := importGroup(st.Source)
		if i > 0 {
			out.WriteByte('\n')
			if group != prevGroup {
				out.WriteByte('\n')
			}
		}
		out.WriteString(st.render())
		prevGroup = group
	}

	rendered := out.String()
	start, end := run[0].Start, run[len(run)-1].End
	if rendered == src[start:end] {
		return false
	}
	m.ed.AddEdit(start, end, rendered)
	return true
}
