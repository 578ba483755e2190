package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/funvibe/catena/internal/ast"
	"github.com/funvibe/catena/internal/lexer"
	"github.com/funvibe/catena/internal/token"
)

type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []string
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	p.errors = append(p.errors, fmt.Sprintf("line %d:%d: expected next token to be %s, got %s",
		p.peekToken.Line, p.peekToken.Column, t, p.peekToken.Type))
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf("line %d:%d: ", p.curToken.Line, p.curToken.Column)+
		fmt.Sprintf(format, args...))
}

// ParseProgram parses a sequence of terms and definitions until EOF.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.curTokenIs(token.EOF) {
		term := p.parseTerm()
		if term != nil {
			program.Terms = append(program.Terms, term)
		}
		p.nextToken()
	}
	return program
}

func (p *Parser) parseTerm() ast.Term {
	switch p.curToken.Type {
	case token.IDENT:
		return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	case token.INT:
		return p.parseIntegerLiteral()
	case token.TRUE:
		return &ast.BooleanLiteral{Token: p.curToken, Value: true}
	case token.FALSE:
		return &ast.BooleanLiteral{Token: p.curToken, Value: false}
	case token.LBRACKET:
		return p.parseQuotation()
	case token.DEFINE:
		return p.parseDefine()
	default:
		p.errorf("unexpected token %s (%q)", p.curToken.Type, p.curToken.Literal)
		return nil
	}
}

func (p *Parser) parseIntegerLiteral() ast.Term {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errorf("could not parse %q as integer", p.curToken.Literal)
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseQuotation() ast.Term {
	quot := &ast.QuotationLiteral{Token: p.curToken}
	p.nextToken()
	for !p.curTokenIs(token.RBRACKET) {
		if p.curTokenIs(token.EOF) {
			p.errorf("unterminated quotation")
			return nil
		}
		term := p.parseTerm()
		if term != nil {
			quot.Terms = append(quot.Terms, term)
		}
		p.nextToken()
	}
	return quot
}

// parseDefine parses: define name : ( signature ) { body }
func (p *Parser) parseDefine() ast.Term {
	stmt := &ast.DefineStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = p.curToken.Literal

	if !p.expectPeek(token.COLON) {
		return nil
	}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	stmt.Signature = p.parseParenType()
	if stmt.Signature == nil {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			p.errorf("unterminated definition body for %s", stmt.Name)
			return nil
		}
		term := p.parseTerm()
		if term != nil {
			stmt.Body = append(stmt.Body, term)
		}
		p.nextToken()
	}
	return stmt
}

// ParseSource is the convenience entry point for a whole program.
func ParseSource(src string) (*ast.Program, error) {
	p := New(lexer.New(src))
	program := p.ParseProgram()
	if len(p.errors) > 0 {
		return nil, fmt.Errorf("parse errors:\n%s", strings.Join(p.errors, "\n"))
	}
	return program, nil
}

// ParseTerms parses a term sequence, rejecting definitions.
func ParseTerms(src string) ([]ast.Term, error) {
	program, err := ParseSource(src)
	if err != nil {
		return nil, err
	}
	for _, t := range program.Terms {
		if _, ok := t.(*ast.DefineStatement); ok {
			return nil, fmt.Errorf("definitions are not allowed here: %s", t)
		}
	}
	return program.Terms, nil
}
