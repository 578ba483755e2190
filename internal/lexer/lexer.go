package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/catena/internal/config"
	"github.com/funvibe/catena/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += w
		l.column++
		return
	}

	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	switch l.ch {
	case '[':
		tok = newToken(token.LBRACKET, l.ch, l.line, l.column)
	case ']':
		tok = newToken(token.RBRACKET, l.ch, l.line, l.column)
	case '{':
		tok = newToken(token.LBRACE, l.ch, l.line, l.column)
	case '}':
		tok = newToken(token.RBRACE, l.ch, l.line, l.column)
	case '(':
		tok = newToken(token.LPAREN, l.ch, l.line, l.column)
	case ')':
		tok = newToken(token.RPAREN, l.ch, l.line, l.column)
	case ':':
		tok = newToken(token.COLON, l.ch, l.line, l.column)
	case config.VarMarkerChar:
		// 'name reads as a type variable
		line, col := l.line, l.column
		l.readChar()
		if isIdentStart(l.ch) {
			name := l.readIdentifier()
			return token.Token{Type: token.TYPEVAR, Literal: name, Line: line, Column: col}
		}
		return token.Token{Type: token.ILLEGAL, Literal: "'", Line: line, Column: col}
	case '-':
		if l.peekChar() == '>' {
			line, col := l.line, l.column
			l.readChar()
			l.readChar()
			return token.Token{Type: token.ARROW, Literal: "->", Line: line, Column: col}
		}
		if isDigit(l.peekChar()) {
			line, col := l.line, l.column
			l.readChar()
			return token.Token{Type: token.INT, Literal: "-" + l.readNumber(), Line: line, Column: col}
		}
		// bare - is an ordinary word (subtraction)
		return l.readIdentToken()
	case '/':
		if l.peekChar() == '/' {
			l.skipLineComment()
			return l.NextToken()
		}
		return l.readIdentToken()
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
		tok.Line = l.line
		tok.Column = l.column
	default:
		if isDigit(l.ch) {
			line, col := l.line, l.column
			return token.Token{Type: token.INT, Literal: l.readNumber(), Line: line, Column: col}
		}
		if isIdentStart(l.ch) {
			return l.readIdentToken()
		}
		tok = newToken(token.ILLEGAL, l.ch, l.line, l.column)
	}

	l.readChar()
	return tok
}

func (l *Lexer) readIdentToken() token.Token {
	line, col := l.line, l.column
	lit := l.readIdentifier()
	return token.Token{Type: token.LookupIdent(lit), Literal: lit, Line: line, Column: col}
}

// readIdentifier consumes a word. Concatenative words may contain
// operator characters (+, -, *, <, =, ...), so anything that is not
// whitespace, a delimiter, or a comment start belongs to the word.
func (l *Lexer) readIdentifier() string {
	position := l.position
	for isIdentPart(l.ch) {
		if l.ch == '/' && l.peekChar() == '/' {
			break
		}
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

func newToken(tokenType token.TokenType, ch rune, line, column int) token.Token {
	return token.Token{Type: tokenType, Literal: string(ch), Line: line, Column: column}
}

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_' || isOperatorChar(ch)
}

func isIdentPart(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch == '-' || isOperatorChar(ch)
}

func isOperatorChar(ch rune) bool {
	switch ch {
	case '+', '*', '/', '<', '>', '=', '!', '?', '%', '-':
		return true
	}
	return false
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
