package parser

import (
	"ash/internal/ast"
	"ash/internal/token"
)

// parseBlock parses `{ stmt* }`.
func (p *Parser) parseBlock() *ast.Block {
	start := p.expect(token.LBrace)
	var stmts []*ast.Stmt
	for !p.at(token.RBrace) && !p.atEOF() {
		stmts = append(stmts, p.parseStmt())
	}
	end := p.expect(token.RBrace)
	return &ast.Block{Stmts: stmts, Span: start.Span.Cover(end.Span)}
}

func (p *Parser) parseStmt() *ast.Stmt {
	switch p.cur.Kind {
	case token.KwLet:
		return p.parseLetStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	default:
		return p.parseAssignOrExprStmt()
	}
}

// parseLetStmt parses `let ['mut'] name [: Type] = expr ;`.
func (p *Parser) parseLetStmt() *ast.Stmt {
	start := p.advance() // 'let'
	var mutable bool
	if p.at(token.KwMut) {
		p.advance()
		mutable = true
	}
	name := p.expectIdent()

	var annotation *ast.TypeExpr
	if p.at(token.Colon) {
		p.advance()
		annotation = p.parseTypeExpr()
	}

	p.expect(token.Assign)
	value := p.parseExpr()
	end := p.expectSemi()

	return &ast.Stmt{
		Kind:       ast.StmtLet,
		Span:       start.Span.Cover(end.Span),
		Name:       name.Text,
		Mutable:    mutable,
		Annotation: annotation,
		Value:      value,
	}
}

// parseReturnStmt parses `return [expr] ;`.
func (p *Parser) parseReturnStmt() *ast.Stmt {
	start := p.advance() // 'return'
	var value *ast.Expr
	if !p.at(token.Semicolon) {
		value = p.parseExpr()
	}
	end := p.expectSemi()
	return &ast.Stmt{Kind: ast.StmtReturn, Span: start.Span.Cover(end.Span), Value: value}
}

// parseAssignOrExprStmt disambiguates `place = value ;` from a bare
// expression statement by parsing a full expression first, then checking
// for a following '='.
func (p *Parser) parseAssignOrExprStmt() *ast.Stmt {
	expr := p.parseExpr()
	if p.at(token.Assign) {
		p.advance()
		value := p.parseExpr()
		end := p.expectSemi()
		return &ast.Stmt{
			Kind:   ast.StmtAssign,
			Span:   expr.Span.Cover(end.Span),
			Target: expr,
			Value:  value,
		}
	}
	end := p.expectSemi()
	return &ast.Stmt{Kind: ast.StmtExpr, Span: expr.Span.Cover(end.Span), Value: expr}
}
