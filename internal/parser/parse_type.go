package parser

import (
	"ash/internal/ast"
	"ash/internal/token"
)

// parseTypeExpr parses a type as written by the programmer: a primitive
// keyword, a named user type, or `managed Inner`.
func (p *Parser) parseTypeExpr() *ast.TypeExpr {
	switch p.cur.Kind {
	case token.KwInt:
		tok := p.advance()
		return &ast.TypeExpr{Kind: ast.TypeExprInt, Span: tok.Span}
	case token.KwBool:
		tok := p.advance()
		return &ast.TypeExpr{Kind: ast.TypeExprBool, Span: tok.Span}
	case token.KwUnit:
		tok := p.advance()
		return &ast.TypeExpr{Kind: ast.TypeExprUnit, Span: tok.Span}
	case token.KwManaged:
		start := p.advance()
		inner := p.parseTypeExpr()
		return &ast.TypeExpr{Kind: ast.TypeExprManaged, Inner: inner, Span: start.Span.Cover(inner.Span)}
	case token.Ident:
		tok := p.advance()
		return &ast.TypeExpr{Kind: ast.TypeExprNamed, Name: tok.Text, Span: tok.Span}
	default:
		tok := p.expectIdent() // reports SynExpectIdentifier and returns current token
		return &ast.TypeExpr{Kind: ast.TypeExprNamed, Name: tok.Text, Span: tok.Span}
	}
}
