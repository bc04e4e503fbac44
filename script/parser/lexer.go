package parser

import (
	"unicode"
	"unicode/utf8"
)

// Lexer scans the input character by character with single-character
// lookahead, except for comment detection which peeks two characters
// ahead for "//" and "/*".
type Lexer struct {
	cursor *Cursor
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{cursor: NewCursor(input, file)}
}

func (l *Lexer) Position() Position {
	return l.cursor.Position()
}

func (l *Lexer) NextToken() Token {
	startPos := l.cursor.Position()

	if l.cursor.AtEnd() {
		return Token{Kind: TokenEOF, Span: Span{Start: startPos, End: startPos}}
	}

	ch := l.cursor.Peek()

	if ch == '/' && l.cursor.PeekN(1) == '/' {
		return l.scanLineComment(startPos)
	}
	if ch == '/' && l.cursor.PeekN(1) == '*' {
		return l.scanBlockComment(startPos)
	}

	if isSpace(ch) {
		return l.scanWhitespace(startPos)
	}

	if isIdentStart(ch) {
		return l.scanIdentOrKeyword(startPos)
	}

	if isDigit(ch) {
		return l.scanNumber(startPos)
	}

	if ch == '\'' || ch == '"' {
		return l.scanString(startPos)
	}

	return l.scanPunct(startPos)
}

// Tokenize scans the whole input and returns every token, whitespace and
// comments included, followed by a final EOF token.
func Tokenize(input []byte, file string) []Token {
	l := NewLexer(input, file)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

func (l *Lexer) scanWhitespace(start Position) Token {
	for isSpace(l.cursor.Peek()) {
		l.cursor.Advance()
	}
	return l.token(TokenWhitespace, start)
}

func (l *Lexer) scanLineComment(start Position) Token {
	l.cursor.AdvanceN(2)
	for l.cursor.Peek() != 0 && l.cursor.Peek() != '\n' {
		l.cursor.Advance()
	}
	return l.token(TokenWhitespace, start)
}

func (l *Lexer) scanBlockComment(start Position) Token {
	l.cursor.AdvanceN(2)
	for {
		if l.cursor.Peek() == 0 {
			break
		}
		if l.cursor.Peek() == '*' && l.cursor.PeekN(1) == '/' {
			l.cursor.AdvanceN(2)
			break
		}
		l.cursor.Advance()
	}
	return l.token(TokenWhitespace, start)
}

func (l *Lexer) scanIdentOrKeyword(start Position) Token {
	for isIdentPart(l.cursor.Peek()) {
		l.cursor.Advance()
	}
	end := l.cursor.Position()
	literal := l.cursor.Text(start.Offset, end.Offset)
	return Token{
		Kind:    LookupKeyword(literal),
		Span:    Span{Start: start, End: end},
		Literal: literal,
	}
}

func (l *Lexer) scanNumber(start Position) Token {
	for isDigit(l.cursor.Peek()) || l.cursor.Peek() == '_' {
		l.cursor.Advance()
	}
	if l.cursor.Peek() == '.' && isDigit(l.cursor.PeekN(1)) {
		l.cursor.Advance()
		for isDigit(l.cursor.Peek()) || l.cursor.Peek() == '_' {
			l.cursor.Advance()
		}
	}
	if l.cursor.Peek() == 'e' || l.cursor.Peek() == 'E' {
		next := l.cursor.PeekN(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.cursor.PeekN(2))) {
			l.cursor.Advance()
			if l.cursor.Peek() == '+' || l.cursor.Peek() == '-' {
				l.cursor.Advance()
			}
			for isDigit(l.cursor.Peek()) {
				l.cursor.Advance()
			}
		}
	}
	return l.token(TokenNumber, start)
}

// scanString consumes an opening quote and everything up to the next
// unescaped matching quote. A preceding backslash suppresses termination;
// no further escape decoding happens here.
func (l *Lexer) scanString(start Position) Token {
	quote := l.cursor.Advance()
	for l.cursor.Peek() != 0 && l.cursor.Peek() != quote {
		if l.cursor.Peek() == '\\' {
			l.cursor.Advance()
		}
		l.cursor.Advance()
	}
	if l.cursor.Peek() == quote {
		l.cursor.Advance()
	}
	return l.token(TokenString, start)
}

func (l *Lexer) scanPunct(start Position) Token {
	ch := l.cursor.Advance()
	kind := TokenPunct
	switch ch {
	case '{':
		kind = TokenLBrace
	case '}':
		kind = TokenRBrace
	case '[':
		kind = TokenLBracket
	case ']':
		kind = TokenRBracket
	case '(':
		kind = TokenLParen
	case ')':
		kind = TokenRParen
	case '<':
		kind = TokenLT
	case '>':
		kind = TokenGT
	case ':':
		kind = TokenColon
	case ';':
		kind = TokenSemicolon
	case ',':
		kind = TokenComma
	case '.':
		kind = TokenDot
	case '=':
		kind = TokenAssign
	case '|':
		kind = TokenPipe
	case '?':
		kind = TokenQuestion
	case '!':
		kind = TokenNot
	case '@':
		kind = TokenAt
	case '*':
		kind = TokenStar
	case '&':
		kind = TokenAmp
	}
	return l.token(kind, start)
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.cursor.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: l.cursor.Text(start.Offset, end.Offset),
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	if ch >= 128 {
		r, _ := utf8.DecodeRune([]byte{ch})
		return unicode.IsLetter(r) || r == '_' || r == '$'
	}
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '$'
}

func isIdentPart(ch byte) bool {
	if ch >= 128 {
		r, _ := utf8.DecodeRune([]byte{ch})
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$'
	}
	return isIdentStart(ch) || isDigit(ch)
}
