package parser

import "strings"

type Option func(*Grouper)

func WithFile(path string) Option {
	return func(g *Grouper) {
		g.file = path
	}
}

// Grouper turns a flat token stream into a tree of groups using
// depth-counted scanning. It is a best-effort skeleton extractor, not a
// full parser: unrecognized top-level constructs produce no group, and a
// missing delimiter ends the enclosing group at the last consumed token.
type Grouper struct {
	file   string
	input  []byte
	tokens []Token
	pos    int
}

// Parse tokenizes and groups the input. It never returns an error: if
// grouping fails internally the result degrades to a root-only tree, so
// lookups on it report not-found instead of propagating the failure.
func Parse(input []byte, opts ...Option) (root *Group) {
	g := &Grouper{input: input}
	for _, opt := range opts {
		opt(g)
	}

	root = &Group{
		Kind: GroupRoot,
		Span: Span{
			Start: Position{File: g.file, Offset: 0, Line: 1, Column: 1},
		},
	}

	defer func() {
		// A grouping bug must not take the caller down with it.
		_ = recover()
	}()

	g.tokens = Tokenize(input, g.file)
	root.Span.End = g.tokens[len(g.tokens)-1].Span.End
	g.parseTopLevel(root)
	return root
}

func (g *Grouper) peek() Token {
	if g.pos >= len(g.tokens) {
		return Token{Kind: TokenEOF}
	}
	return g.tokens[g.pos]
}

func (g *Grouper) advance() Token {
	tok := g.peek()
	if g.pos < len(g.tokens) {
		g.pos++
	}
	return tok
}

func (g *Grouper) check(kind TokenKind) bool {
	return g.peek().Kind == kind
}

func (g *Grouper) skipWhitespace() {
	for g.check(TokenWhitespace) {
		g.advance()
	}
}

// lastEnd is the fallback end position when an expected delimiter never
// appears: the end of the last consumed token.
func (g *Grouper) lastEnd() Position {
	if g.pos > 0 {
		return g.tokens[g.pos-1].Span.End
	}
	if len(g.tokens) > 0 {
		return g.tokens[0].Span.Start
	}
	return Position{File: g.file, Line: 1, Column: 1}
}

func (g *Grouper) parseTopLevel(root *Group) {
	for !g.check(TokenEOF) {
		g.skipWhitespace()
		tok := g.peek()

		switch {
		case tok.Kind == TokenEOF:
			return
		case tok.Kind.IsDeclarationKeyword():
			root.AddChild(g.scanDeclaration())
		case tok.Kind == TokenLBrace || tok.Kind == TokenLBracket:
			root.AddChild(g.scanLiteral())
		default:
			// Not a construct we extract; move on.
			g.advance()
		}
	}
}

func (g *Grouper) scanDeclaration() *Group {
	keyword := g.advance()

	switch keyword.Kind {
	case TokenClass:
		return g.scanBodyDeclaration(GroupClass, keyword)
	case TokenInterface:
		return g.scanBodyDeclaration(GroupInterface, keyword)
	case TokenEnum:
		return g.scanBodyDeclaration(GroupEnum, keyword)
	case TokenFunction:
		return g.scanFunction(keyword)
	case TokenType:
		return g.scanDefinitionDeclaration(GroupTypeAlias, keyword)
	case TokenConst, TokenLet, TokenVar:
		return g.scanDefinitionDeclaration(GroupVariable, keyword)
	case TokenImport:
		return g.scanImport(keyword)
	}
	return nil
}

// scanBodyDeclaration handles class/interface/enum: name, optional
// template parameters, optional extends/implements clauses, then a
// brace-delimited body.
func (g *Grouper) scanBodyDeclaration(kind GroupKind, keyword Token) *Group {
	group := &Group{Kind: kind, Span: Span{Start: keyword.Span.Start}}

	g.skipWhitespace()
	if g.isNameToken() {
		group.Name = g.advance().Literal
	}

	g.skipWhitespace()
	if g.check(TokenLT) {
		g.skipTemplateParams()
	}

clauses:
	for {
		g.skipWhitespace()
		switch g.peek().Kind {
		case TokenExtends:
			g.advance()
			group.Extends = append(group.Extends, g.scanNameList()...)
		case TokenImplements:
			g.advance()
			group.Implements = append(group.Implements, g.scanNameList()...)
		default:
			break clauses
		}
	}

	g.skipWhitespace()
	if g.check(TokenLBrace) {
		end := g.skipBalanced(TokenLBrace, TokenRBrace)
		group.Span.End = end
	} else {
		group.Span.End = g.lastEnd()
	}
	return group
}

// scanFunction handles function declarations: name, optional template
// parameters, a parameter list, an optional ":<return type>" annotation
// and a brace body. If the body returns an object literal, that literal
// becomes a child group. The return-type scan stops at the first brace
// at zero depth, so an object-typed annotation like ": { x: number }" is
// taken as the body; like the angle-bracket counting in
// skipTemplateParams, the ambiguity is inherent to the heuristic.
func (g *Grouper) scanFunction(keyword Token) *Group {
	group := &Group{Kind: GroupFunction, Span: Span{Start: keyword.Span.Start}}

	g.skipWhitespace()
	if g.isNameToken() {
		group.Name = g.advance().Literal
	}

	g.skipWhitespace()
	if g.check(TokenLT) {
		g.skipTemplateParams()
	}

	g.skipWhitespace()
	if g.check(TokenLParen) {
		g.skipBalanced(TokenLParen, TokenRParen)
	}

	g.skipWhitespace()
	if g.check(TokenColon) {
		g.advance()
		typeStart := -1
		typeEnd := -1
		var depth depthCounter
		for !g.check(TokenEOF) {
			tok := g.peek()
			if tok.Kind == TokenLBrace && depth.zero() {
				break
			}
			depth.update(tok.Kind)
			if tok.Kind != TokenWhitespace {
				if typeStart < 0 {
					typeStart = tok.Span.Start.Offset
				}
				typeEnd = tok.Span.End.Offset
			}
			g.advance()
		}
		if typeStart >= 0 {
			group.ReturnType = strings.TrimSpace(string(g.input[typeStart:typeEnd]))
		}
	}

	if g.check(TokenLBrace) {
		group.Span.End = g.scanFunctionBody(group)
	} else {
		group.Span.End = g.lastEnd()
	}
	return group
}

// scanFunctionBody consumes a balanced brace body. An object literal that
// directly follows a return keyword is extracted as a child group, so
// findReturnedObject gets a ready-made literal to bind to.
func (g *Grouper) scanFunctionBody(group *Group) Position {
	g.advance() // opening brace
	depth := 1
	for !g.check(TokenEOF) {
		tok := g.peek()
		switch tok.Kind {
		case TokenLBrace:
			depth++
			g.advance()
		case TokenRBrace:
			depth--
			end := g.advance().Span.End
			if depth == 0 {
				return end
			}
		case TokenReturn:
			g.advance()
			g.skipWhitespace()
			if g.check(TokenLBrace) {
				group.AddChild(g.scanLiteral())
			}
		default:
			g.advance()
		}
	}
	return g.lastEnd()
}

// scanDefinitionDeclaration handles type aliases and variable
// declarations: name, optional template parameters, an optional type
// annotation, "=", then a definition that runs to the first semicolon at
// zero depth. Depth is tracked independently for braces, brackets, parens
// and angle brackets so nested structures never trigger the terminator
// early.
func (g *Grouper) scanDefinitionDeclaration(kind GroupKind, keyword Token) *Group {
	group := &Group{Kind: kind, Span: Span{Start: keyword.Span.Start}}

	g.skipWhitespace()
	if g.isNameToken() {
		group.Name = g.advance().Literal
	}

	g.skipWhitespace()
	if g.check(TokenLT) {
		g.skipTemplateParams()
	}

	var depth depthCounter
	seenAssign := false
	for !g.check(TokenEOF) {
		tok := g.peek()
		if tok.Kind == TokenSemicolon && depth.zero() {
			group.Span.End = g.advance().Span.End
			return group
		}
		if tok.Kind == TokenAssign && depth.zero() && !seenAssign {
			seenAssign = true
			g.advance()
			g.skipWhitespace()
			if g.check(TokenLBrace) || g.check(TokenLBracket) {
				group.AddChild(g.scanLiteral())
			}
			continue
		}
		depth.update(tok.Kind)
		g.advance()
	}
	group.Span.End = g.lastEnd()
	return group
}

// scanImport consumes an import statement up to its semicolon. A
// semicolon-less statement ends at the next import keyword at zero
// depth, so consecutive unterminated imports still group one-per-line.
func (g *Grouper) scanImport(keyword Token) *Group {
	group := &Group{Kind: GroupImport, Span: Span{Start: keyword.Span.Start}}
	var depth depthCounter
	for !g.check(TokenEOF) {
		tok := g.peek()
		if tok.Kind == TokenSemicolon && depth.zero() {
			group.Span.End = g.advance().Span.End
			return group
		}
		if tok.Kind == TokenImport && depth.zero() {
			break
		}
		if tok.Kind == TokenString && group.Name == "" {
			group.Name = importSource(tok.Literal)
		}
		depth.update(tok.Kind)
		g.advance()
	}
	group.Span.End = g.lastEnd()
	return group
}

// scanLiteral consumes a brace or bracket delimited literal; the group
// span covers the delimiters. Object internals are not decomposed here
// (builders re-derive property boundaries on demand), but array literals
// recurse into immediately nested object literals since array-of-object
// is a common shape worth a direct child reference.
func (g *Grouper) scanLiteral() *Group {
	open := g.advance()

	kind := GroupObject
	closeKind := TokenRBrace
	if open.Kind == TokenLBracket {
		kind = GroupArray
		closeKind = TokenRBracket
	}

	group := &Group{Kind: kind, Span: Span{Start: open.Span.Start}}
	depth := 1
	for !g.check(TokenEOF) {
		tok := g.peek()
		switch tok.Kind {
		case open.Kind:
			depth++
			g.advance()
		case closeKind:
			depth--
			end := g.advance().Span.End
			if depth == 0 {
				group.Span.End = end
				return group
			}
		case TokenLBrace:
			if kind == GroupArray && depth == 1 {
				group.AddChild(g.scanLiteral())
			} else {
				g.advance()
			}
		default:
			g.advance()
		}
	}
	group.Span.End = g.lastEnd()
	return group
}

// skipTemplateParams consumes a <...> section with a plain
// increment/decrement counter. The same characters also spell comparison
// and shift operators; the ambiguity is inherent to this heuristic and is
// kept as-is.
func (g *Grouper) skipTemplateParams() {
	g.advance() // <
	depth := 1
	for depth > 0 && !g.check(TokenEOF) {
		switch g.advance().Kind {
		case TokenLT:
			depth++
		case TokenGT:
			depth--
		}
	}
}

// skipBalanced consumes from an opening delimiter to its match and
// returns the end position, or the last consumed position if the match
// never appears.
func (g *Grouper) skipBalanced(open, close TokenKind) Position {
	g.advance()
	depth := 1
	for !g.check(TokenEOF) {
		tok := g.advance()
		switch tok.Kind {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return tok.Span.End
			}
		}
	}
	return g.lastEnd()
}

// scanNameList consumes a comma-separated list of (possibly dotted,
// possibly parameterized) names following extends/implements, stopping at
// the first token that cannot continue the list.
func (g *Grouper) scanNameList() []string {
	var names []string
	for {
		g.skipWhitespace()
		if !g.isNameToken() {
			return names
		}
		name := g.advance().Literal
		for {
			if g.check(TokenDot) {
				g.advance()
				if g.isNameToken() {
					name += "." + g.advance().Literal
					continue
				}
			}
			break
		}
		g.skipWhitespace()
		if g.check(TokenLT) {
			g.skipTemplateParams()
			g.skipWhitespace()
		}
		names = append(names, name)
		if !g.check(TokenComma) {
			return names
		}
		g.advance()
	}
}

// isNameToken reports whether the next token can serve as a declaration
// name. Keywords double as names: the language allows identifiers like
// "type" or "from" in name position.
func (g *Grouper) isNameToken() bool {
	kind := g.peek().Kind
	return kind == TokenIdent || kind == TokenType || kind == TokenFrom || kind == TokenAs
}

// depthCounter tracks brace, bracket, paren and angle depth
// independently.
type depthCounter struct {
	brace   int
	bracket int
	paren   int
	angle   int
}

func (d *depthCounter) update(kind TokenKind) {
	switch kind {
	case TokenLBrace:
		d.brace++
	case TokenRBrace:
		d.brace--
	case TokenLBracket:
		d.bracket++
	case TokenRBracket:
		d.bracket--
	case TokenLParen:
		d.paren++
	case TokenRParen:
		d.paren--
	case TokenLT:
		d.angle++
	case TokenGT:
		if d.angle > 0 {
			d.angle--
		}
	}
}

func (d *depthCounter) zero() bool {
	return d.brace == 0 && d.bracket == 0 && d.paren == 0 && d.angle == 0
}

// importSource strips the quotes from an import source string literal.
func importSource(literal string) string {
	if len(literal) >= 2 {
		first := literal[0]
		last := literal[len(literal)-1]
		if (first == '\'' || first == '"') && last == first {
			return literal[1 : len(literal)-1]
		}
	}
	return literal
}
