package parser

import (
	"testing"
)

func TestLexerNewLexer(t *testing.T) {
	lexer := NewLexer([]byte("const x = 1;"), "world.wf")
	pos := lexer.Position()

	if pos.File != "world.wf" {
		t.Errorf("File = %q, want %q", pos.File, "world.wf")
	}
	if pos.Line != 1 {
		t.Errorf("Line = %d, want %d", pos.Line, 1)
	}
	if pos.Column != 1 {
		t.Errorf("Column = %d, want %d", pos.Column, 1)
	}
	if pos.Offset != 0 {
		t.Errorf("Offset = %d, want %d", pos.Offset, 0)
	}
}

func TestLexerKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"class", TokenClass},
		{"interface", TokenInterface},
		{"type", TokenType},
		{"enum", TokenEnum},
		{"function", TokenFunction},
		{"const", TokenConst},
		{"let", TokenLet},
		{"var", TokenVar},
		{"import", TokenImport},
		{"export", TokenExport},
		{"extends", TokenExtends},
		{"implements", TokenImplements},
		{"return", TokenReturn},
		{"from", TokenFrom},
		{"as", TokenAs},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input), "test.wf")
			tok := lexer.NextToken()
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestLexerIdentifiers(t *testing.T) {
	tests := []string{
		"foo",
		"Bar",
		"_private",
		"$special",
		"camelCase",
		"SCREAMING_CASE",
		"with123Numbers",
		"weddingEvent",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lexer := NewLexer([]byte(input), "test.wf")
			tok := lexer.NextToken()
			if tok.Kind != TokenIdent {
				t.Errorf("Kind = %v, want %v", tok.Kind, TokenIdent)
			}
			if tok.Literal != input {
				t.Errorf("Literal = %q, want %q", tok.Literal, input)
			}
		})
	}
}

func TestLexerPunctuation(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"{", TokenLBrace},
		{"}", TokenRBrace},
		{"[", TokenLBracket},
		{"]", TokenRBracket},
		{"(", TokenLParen},
		{")", TokenRParen},
		{"<", TokenLT},
		{">", TokenGT},
		{":", TokenColon},
		{";", TokenSemicolon},
		{",", TokenComma},
		{".", TokenDot},
		{"=", TokenAssign},
		{"|", TokenPipe},
		{"?", TokenQuestion},
		{"!", TokenNot},
		{"@", TokenAt},
		{"*", TokenStar},
		{"&", TokenAmp},
		{"#", TokenPunct},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input), "test.wf")
			tok := lexer.NextToken()
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
		})
	}
}

func TestLexerTokenStream(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"const", []TokenKind{TokenConst, TokenEOF}},
		{"const x = 1;", []TokenKind{TokenConst, TokenIdent, TokenAssign, TokenNumber, TokenSemicolon, TokenEOF}},
		{"// comment\nclass", []TokenKind{TokenClass, TokenEOF}},
		{"/* block */ class", []TokenKind{TokenClass, TokenEOF}},
		{"'hello'", []TokenKind{TokenString, TokenEOF}},
		{"\"hello\"", []TokenKind{TokenString, TokenEOF}},
		{"'it\\'s'", []TokenKind{TokenString, TokenEOF}},
		{"123", []TokenKind{TokenNumber, TokenEOF}},
		{"3.14", []TokenKind{TokenNumber, TokenEOF}},
		{"1_000", []TokenKind{TokenNumber, TokenEOF}},
		{"1e9", []TokenKind{TokenNumber, TokenEOF}},
		{"1.5e-3", []TokenKind{TokenNumber, TokenEOF}},
		{"a | b", []TokenKind{TokenIdent, TokenPipe, TokenIdent, TokenEOF}},
		{"type Id = string;", []TokenKind{TokenType, TokenIdent, TokenAssign, TokenIdent, TokenSemicolon, TokenEOF}},
		{"import { a } from 'm';", []TokenKind{TokenImport, TokenLBrace, TokenIdent, TokenRBrace, TokenFrom, TokenString, TokenSemicolon, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got []TokenKind
			for _, tok := range Tokenize([]byte(tt.input), "test.wf") {
				if tok.Kind != TokenWhitespace {
					got = append(got, tok.Kind)
				}
			}
			if len(got) != len(tt.expected) {
				t.Errorf("got %d tokens, want %d", len(got), len(tt.expected))
				return
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLexerCommentsAreWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"line comment", "// until end of line"},
		{"block comment", "/* spans\nlines */"},
		{"unterminated block", "/* never closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input), "test.wf")
			tok := lexer.NextToken()
			if tok.Kind != TokenWhitespace {
				t.Errorf("Kind = %v, want %v", tok.Kind, TokenWhitespace)
			}
			if tok.Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestLexerSpans(t *testing.T) {
	input := "const x = 'a';\nlet y = 2;"
	tokens := Tokenize([]byte(input), "test.wf")

	// Every span must slice the input back to its own literal.
	for _, tok := range tokens {
		if got := input[tok.Span.Start.Offset:tok.Span.End.Offset]; got != tok.Literal {
			t.Errorf("span slice = %q, want literal %q", got, tok.Literal)
		}
	}

	last := tokens[len(tokens)-1]
	if last.Kind != TokenEOF {
		t.Fatalf("last token = %v, want %v", last.Kind, TokenEOF)
	}
	if last.Span.Start.Offset != len(input) {
		t.Errorf("EOF offset = %d, want %d", last.Span.Start.Offset, len(input))
	}
}

func TestLexerLineTracking(t *testing.T) {
	input := "const a = 1;\nconst b = 2;"
	tokens := Tokenize([]byte(input), "test.wf")

	var seconds []Token
	for _, tok := range tokens {
		if tok.Span.Start.Line == 2 && tok.Kind != TokenWhitespace {
			seconds = append(seconds, tok)
		}
	}
	if len(seconds) == 0 {
		t.Fatal("no tokens on line 2")
	}
	if seconds[0].Kind != TokenConst {
		t.Errorf("first token on line 2 = %v, want %v", seconds[0].Kind, TokenConst)
	}
	if seconds[0].Span.Start.Column != 1 {
		t.Errorf("Column = %d, want %d", seconds[0].Span.Start.Column, 1)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	tokens := Tokenize([]byte("'never closed"), "test.wf")
	if tokens[0].Kind != TokenString {
		t.Errorf("Kind = %v, want %v", tokens[0].Kind, TokenString)
	}
	if tokens[1].Kind != TokenEOF {
		t.Errorf("Kind = %v, want %v", tokens[1].Kind, TokenEOF)
	}
}
