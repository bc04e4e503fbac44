package parser

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

type Span struct {
	Start Position
	End   Position
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

type TokenKind int

const (
	TokenEOF TokenKind = iota

	// Whitespace covers plain whitespace and both comment forms. Comment
	// bytes stay inside the token span so untouched regions round-trip
	// verbatim; comments carry no structural meaning to the grouper.
	TokenWhitespace

	TokenIdent
	TokenNumber
	TokenString

	// Declaration keywords
	TokenClass
	TokenInterface
	TokenType
	TokenEnum
	TokenFunction
	TokenConst
	TokenLet
	TokenVar
	TokenImport
	TokenExport
	TokenExtends
	TokenImplements
	TokenReturn
	TokenFrom
	TokenAs

	// Punctuation
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenLParen
	TokenRParen
	TokenLT
	TokenGT
	TokenColon
	TokenSemicolon
	TokenComma
	TokenDot
	TokenAssign
	TokenPipe
	TokenQuestion
	TokenNot
	TokenAt
	TokenStar
	TokenAmp

	// Punct is any single character not covered above. The lexer never
	// fails; unrecognized input degrades to Punct tokens.
	TokenPunct
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:        "EOF",
	TokenWhitespace: "Whitespace",
	TokenIdent:      "Identifier",
	TokenNumber:     "Number",
	TokenString:     "String",
	TokenClass:      "class",
	TokenInterface:  "interface",
	TokenType:       "type",
	TokenEnum:       "enum",
	TokenFunction:   "function",
	TokenConst:      "const",
	TokenLet:        "let",
	TokenVar:        "var",
	TokenImport:     "import",
	TokenExport:     "export",
	TokenExtends:    "extends",
	TokenImplements: "implements",
	TokenReturn:     "return",
	TokenFrom:       "from",
	TokenAs:         "as",
	TokenLBrace:     "{",
	TokenRBrace:     "}",
	TokenLBracket:   "[",
	TokenRBracket:   "]",
	TokenLParen:     "(",
	TokenRParen:     ")",
	TokenLT:         "<",
	TokenGT:         ">",
	TokenColon:      ":",
	TokenSemicolon:  ";",
	TokenComma:      ",",
	TokenDot:        ".",
	TokenAssign:     "=",
	TokenPipe:       "|",
	TokenQuestion:   "?",
	TokenNot:        "!",
	TokenAt:         "@",
	TokenStar:       "*",
	TokenAmp:        "&",
	TokenPunct:      "Punct",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

var keywords = map[string]TokenKind{
	"class":      TokenClass,
	"interface":  TokenInterface,
	"type":       TokenType,
	"enum":       TokenEnum,
	"function":   TokenFunction,
	"const":      TokenConst,
	"let":        TokenLet,
	"var":        TokenVar,
	"import":     TokenImport,
	"export":     TokenExport,
	"extends":    TokenExtends,
	"implements": TokenImplements,
	"return":     TokenReturn,
	"from":       TokenFrom,
	"as":         TokenAs,
}

func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}

// IsDeclarationKeyword reports whether the kind introduces a top-level
// declaration the grouper dispatches on.
func (k TokenKind) IsDeclarationKeyword() bool {
	switch k {
	case TokenClass, TokenInterface, TokenType, TokenEnum, TokenFunction,
		TokenConst, TokenLet, TokenVar, TokenImport:
		return true
	}
	return false
}
