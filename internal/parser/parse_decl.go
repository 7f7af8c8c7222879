package parser

import (
	"ash/internal/ast"
	"ash/internal/token"
)

// parseStructDef parses `struct Name { field: Type, ... }`.
func (p *Parser) parseStructDef() *ast.StructDef {
	start := p.advance() // 'struct'
	name := p.expectIdent()
	fields := p.parseFieldList()
	end := p.expect(token.RBrace)
	return &ast.StructDef{
		Name:   name.Text,
		Fields: fields,
		Span:   start.Span.Cover(end.Span),
	}
}

// parseResourceDef parses `resource Name { field: Type, ... } [cleanup { ... }]`.
func (p *Parser) parseResourceDef() *ast.ResourceDef {
	start := p.advance() // 'resource'
	name := p.expectIdent()
	fields := p.parseFieldList()
	end := p.expect(token.RBrace)

	span := start.Span.Cover(end.Span)
	var cleanup *ast.Block
	if p.at(token.KwCleanup) {
		p.advance()
		cleanup = p.parseBlock()
		span = start.Span.Cover(cleanup.Span)
	}

	return &ast.ResourceDef{
		Name:    name.Text,
		Fields:  fields,
		Cleanup: cleanup,
		Span:    span,
	}
}

// parseFieldList consumes the '{' and every `name: Type` pair up to (but
// not including) the closing '}'. Fields may be separated by commas, with
// an optional trailing comma.
func (p *Parser) parseFieldList() []ast.Field {
	p.expect(token.LBrace)
	var fields []ast.Field
	for !p.at(token.RBrace) && !p.atEOF() {
		nameTok := p.expectIdent()
		p.expect(token.Colon)
		ty := p.parseTypeExpr()
		fields = append(fields, ast.Field{
			Name: nameTok.Text,
			Type: ty,
			Span: nameTok.Span.Cover(ty.Span),
		})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	return fields
}

// parseFuncDef parses `fn name(params) -> ReturnType { ... }`. A missing
// `-> Type` defaults the return type to Unit (nil TypeExpr).
func (p *Parser) parseFuncDef() *ast.FuncDef {
	start := p.advance() // 'fn'
	name := p.expectIdent()
	p.expect(token.LParen)
	var params []ast.Param
	for !p.at(token.RParen) && !p.atEOF() {
		params = append(params, p.parseParam())
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RParen)

	var retType *ast.TypeExpr
	if p.at(token.Arrow) {
		p.advance()
		retType = p.parseTypeExpr()
	}

	body := p.parseBlock()
	return &ast.FuncDef{
		Name:       name.Text,
		Params:     params,
		ReturnType: retType,
		Body:       body,
		Span:       start.Span.Cover(body.Span),
	}
}

// parseParam parses one parameter: `['mut'] name : ['ref'|'inout'] Type`.
// Absence of 'ref'/'inout' means PassMove; 'mut' only has meaning together
// with PassMove (it marks the resulting local binding mutable).
func (p *Parser) parseParam() ast.Param {
	var mutable bool
	startSpan := p.cur.Span
	if p.at(token.KwMut) {
		p.advance()
		mutable = true
	}
	nameTok := p.expectIdent()
	p.expect(token.Colon)

	mode := ast.PassMove
	switch p.cur.Kind {
	case token.KwRef:
		p.advance()
		mode = ast.PassRef
	case token.KwInout:
		p.advance()
		mode = ast.PassInout
	}
	ty := p.parseTypeExpr()

	return ast.Param{
		Name:    nameTok.Text,
		Mode:    mode,
		Mutable: mutable,
		Type:    ty,
		Span:    startSpan.Cover(ty.Span),
	}
}
