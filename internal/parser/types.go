package parser

import (
	"fmt"
	"strings"

	"github.com/funvibe/catena/internal/ast"
	"github.com/funvibe/catena/internal/lexer"
	"github.com/funvibe/catena/internal/token"
)

// Type-expression grammar:
//
//	atom     := 'name | Name | '[' atom* ']' | paren
//	paren    := '(' atom+ '->' atom+ ')' | '(' atom ')'
//
// A parenthesized form with an arrow is a stack-effect type; the element
// lists are written top-first and the last element is the stack tail.

func (p *Parser) parseTypeAtom() ast.TypeNode {
	switch p.curToken.Type {
	case token.TYPEVAR:
		return &ast.TypeVariableNode{Token: p.curToken, Name: p.curToken.Literal}
	case token.IDENT:
		return &ast.TypeConstantNode{Token: p.curToken, Name: p.curToken.Literal}
	case token.LBRACKET:
		return p.parseTypeList()
	case token.LPAREN:
		return p.parseParenType()
	default:
		p.errorf("unexpected token %s (%q) in type expression", p.curToken.Type, p.curToken.Literal)
		return nil
	}
}

func (p *Parser) parseTypeList() ast.TypeNode {
	list := &ast.TypeListNode{Token: p.curToken}
	p.nextToken()
	for !p.curTokenIs(token.RBRACKET) {
		if p.curTokenIs(token.EOF) {
			p.errorf("unterminated type list")
			return nil
		}
		atom := p.parseTypeAtom()
		if atom == nil {
			return nil
		}
		list.Elems = append(list.Elems, atom)
		p.nextToken()
	}
	return list
}

// parseParenType is called with curToken on '('. It leaves curToken on
// the closing ')'.
func (p *Parser) parseParenType() ast.TypeNode {
	fn := &ast.FunctionTypeNode{Token: p.curToken}
	p.nextToken()

	for !p.curTokenIs(token.ARROW) {
		if p.curTokenIs(token.RPAREN) {
			// No arrow: a parenthesized group, legal only around one atom.
			if len(fn.Input) == 1 {
				return fn.Input[0]
			}
			p.errorf("expected -> in parenthesized type")
			return nil
		}
		if p.curTokenIs(token.EOF) {
			p.errorf("unterminated type expression")
			return nil
		}
		atom := p.parseTypeAtom()
		if atom == nil {
			return nil
		}
		fn.Input = append(fn.Input, atom)
		p.nextToken()
	}

	p.nextToken()
	for !p.curTokenIs(token.RPAREN) {
		if p.curTokenIs(token.EOF) {
			p.errorf("unterminated type expression")
			return nil
		}
		atom := p.parseTypeAtom()
		if atom == nil {
			return nil
		}
		fn.Output = append(fn.Output, atom)
		p.nextToken()
	}
	return fn
}

// ParseTypeSignature parses a standalone type expression, e.g. a word
// signature like "('a 'b -> 'a 'a 'b)".
func ParseTypeSignature(src string) (ast.TypeNode, error) {
	p := New(lexer.New(src))
	node := p.parseTypeAtom()
	if node != nil && !p.peekTokenIs(token.EOF) {
		p.errorf("unexpected trailing tokens after type expression")
	}
	if len(p.errors) > 0 {
		return nil, fmt.Errorf("parse errors:\n%s", strings.Join(p.errors, "\n"))
	}
	return node, nil
}
