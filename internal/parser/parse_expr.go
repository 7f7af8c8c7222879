package parser

import (
	"strconv"

	"ash/internal/ast"
	"ash/internal/diag"
	"ash/internal/token"
)

// precedence levels, lowest to highest. Ash has no unary operators and no
// right-associative operators, so a simple left-to-right climb suffices.
const (
	precNone = iota
	precEquality   // == !=
	precRelational // < <= > >=
	precAdditive   // + -
)

func binOpFor(k token.Kind) (ast.BinOp, int, bool) {
	switch k {
	case token.EqEq:
		return ast.OpEq, precEquality, true
	case token.BangEq:
		return ast.OpNotEq, precEquality, true
	case token.Lt:
		return ast.OpLt, precRelational, true
	case token.LtEq:
		return ast.OpLtEq, precRelational, true
	case token.Gt:
		return ast.OpGt, precRelational, true
	case token.GtEq:
		return ast.OpGtEq, precRelational, true
	case token.Plus:
		return ast.OpAdd, precAdditive, true
	case token.Minus:
		return ast.OpSub, precAdditive, true
	default:
		return 0, precNone, false
	}
}

// parseExpr parses a full expression at the lowest precedence.
func (p *Parser) parseExpr() *ast.Expr {
	return p.parseBinary(precNone)
}

func (p *Parser) parseBinary(minPrec int) *ast.Expr {
	left := p.parsePostfix()
	for {
		op, prec, ok := binOpFor(p.cur.Kind)
		if !ok || prec <= minPrec {
			return left
		}
		p.advance()
		right := p.parseBinary(prec)
		left = &ast.Expr{
			Kind:  ast.ExprBinary,
			Span:  left.Span.Cover(right.Span),
			Op:    op,
			Left:  left,
			Right: right,
		}
	}
}

// parsePostfix parses a primary expression followed by any number of
// trailing `.field` accesses.
func (p *Parser) parsePostfix() *ast.Expr {
	expr := p.parsePrimary()
	for p.at(token.Dot) {
		p.advance()
		field := p.expectIdent()
		expr = &ast.Expr{
			Kind:   ast.ExprFieldAccess,
			Span:   expr.Span.Cover(field.Span),
			Name:   field.Text,
			Object: expr,
		}
	}
	return expr
}

func (p *Parser) parsePrimary() *ast.Expr {
	switch p.cur.Kind {
	case token.IntLit:
		tok := p.advance()
		n, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			p.errorf(diag.SynUnexpectedToken, tok.Span, "malformed integer literal %q", tok.Text)
		}
		return &ast.Expr{Kind: ast.ExprIntLit, Span: tok.Span, IntValue: n}
	case token.KwTrue:
		tok := p.advance()
		return &ast.Expr{Kind: ast.ExprBoolLit, Span: tok.Span, BoolValue: true}
	case token.KwFalse:
		tok := p.advance()
		return &ast.Expr{Kind: ast.ExprBoolLit, Span: tok.Span, BoolValue: false}
	case token.KwManaged:
		return p.parseManagedLit()
	case token.KwPrintln:
		return p.parsePrintln()
	case token.LParen:
		p.advance()
		inner := p.parseExpr()
		p.expect(token.RParen)
		return inner
	case token.Ident:
		return p.parseIdentStartedExpr()
	default:
		tok := p.cur
		p.errorf(diag.SynUnexpectedToken, tok.Span, "expected an expression but found %s", tok.Kind)
		p.advance()
		return &ast.Expr{Kind: ast.ExprIntLit, Span: tok.Span}
	}
}

// parseIdentStartedExpr disambiguates a bare variable, a call, and a struct
// literal, all of which start with an identifier.
func (p *Parser) parseIdentStartedExpr() *ast.Expr {
	nameTok := p.advance()
	switch p.cur.Kind {
	case token.LParen:
		return p.parseCallArgs(nameTok)
	case token.LBrace:
		return p.parseStructLitFields(nameTok, false)
	default:
		return &ast.Expr{Kind: ast.ExprVar, Span: nameTok.Span, Name: nameTok.Text}
	}
}

func (p *Parser) parseCallArgs(nameTok token.Token) *ast.Expr {
	p.advance() // '('
	var args []*ast.Expr
	for !p.at(token.RParen) && !p.atEOF() {
		args = append(args, p.parseExpr())
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end := p.expect(token.RParen)
	return &ast.Expr{Kind: ast.ExprCall, Span: nameTok.Span.Cover(end.Span), Name: nameTok.Text, Args: args}
}

// parseManagedLit parses `managed Name{ field: expr, ... }`.
func (p *Parser) parseManagedLit() *ast.Expr {
	start := p.advance() // 'managed'
	nameTok := p.expectIdent()
	expr := p.parseStructLitFields(nameTok, true)
	expr.Span = start.Span.Cover(expr.Span)
	return expr
}

func (p *Parser) parseStructLitFields(nameTok token.Token, managed bool) *ast.Expr {
	p.advance() // '{'
	var fields []ast.FieldInit
	for !p.at(token.RBrace) && !p.atEOF() {
		fieldName := p.expectIdent()
		p.expect(token.Colon)
		val := p.parseExpr()
		fields = append(fields, ast.FieldInit{Name: fieldName.Text, Value: val, Span: fieldName.Span.Cover(val.Span)})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end := p.expect(token.RBrace)
	kind := ast.ExprStructLit
	if managed {
		kind = ast.ExprManagedLit
	}
	return &ast.Expr{Kind: kind, Span: nameTok.Span.Cover(end.Span), Name: nameTok.Text, Fields: fields}
}

// parsePrintln parses `println(fmt, arg, ...)`. The format token is kept
// verbatim and opaque to the checker.
func (p *Parser) parsePrintln() *ast.Expr {
	start := p.advance() // 'println'
	p.expect(token.LParen)
	var format string
	if p.at(token.StringLit) {
		format = p.advance().Text
	} else {
		p.errorf(diag.SynUnexpectedToken, p.cur.Span, "expected a string literal format but found %s", p.cur.Kind)
	}
	var args []*ast.Expr
	for p.at(token.Comma) {
		p.advance()
		args = append(args, p.parseExpr())
	}
	end := p.expect(token.RParen)
	return &ast.Expr{Kind: ast.ExprPrintln, Span: start.Span.Cover(end.Span), Format: format, Args: args}
}
