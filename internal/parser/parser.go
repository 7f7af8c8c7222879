// Package parser implements a recursive-descent, Pratt-expression parser
// that turns a token stream into the untyped ast.Program the checker
// consumes. Ash's grammar has no operator-precedence ambiguity beyond
// equality/relational/additive, so the Pratt table is small.
package parser

import (
	"fmt"

	"ash/internal/ast"
	"ash/internal/diag"
	"ash/internal/lexer"
	"ash/internal/source"
	"ash/internal/token"
)

// Parser consumes a token stream and builds a Program. A Parser is
// single-use: construct one per file with New, call Parse once.
type Parser struct {
	lx       *lexer.Lexer
	reporter diag.Reporter
	file     *source.File

	cur  token.Token
	next token.Token // one extra token of lookahead beyond cur
}

// New constructs a Parser over file's token stream. reporter may be nil, in
// which case syntax errors are silently skipped (parsing still attempts to
// recover and continue on a best-effort basis).
func New(file *source.File, reporter diag.Reporter) *Parser {
	lx := lexer.New(file, reporter)
	p := &Parser{lx: lx, reporter: reporter, file: file}
	p.cur = lx.Next()
	p.next = lx.Next()
	return p
}

func (p *Parser) advance() token.Token {
	tok := p.cur
	p.cur = p.next
	p.next = p.lx.Next()
	return tok
}

func (p *Parser) at(k token.Kind) bool { return p.cur.Kind == k }

func (p *Parser) atEOF() bool { return p.cur.Kind == token.EOF }

// expect consumes the current token if it has kind k, reporting a
// SynUnexpectedToken diagnostic otherwise. Returns the consumed (or
// current, on mismatch) token either way so callers can keep going.
func (p *Parser) expect(k token.Kind) token.Token {
	if p.at(k) {
		return p.advance()
	}
	p.errorf(diag.SynUnexpectedToken, p.cur.Span, "expected %s but found %s", k, p.cur.Kind)
	return p.cur
}

// expectSemi consumes a trailing ';', reporting the statement-specific
// SynExpectSemicolon code rather than the generic unexpected-token one.
func (p *Parser) expectSemi() token.Token {
	if p.at(token.Semicolon) {
		return p.advance()
	}
	p.errorf(diag.SynExpectSemicolon, p.cur.Span, "expected ';' but found %s", p.cur.Kind)
	return p.cur
}

func (p *Parser) expectIdent() token.Token {
	if p.at(token.Ident) {
		return p.advance()
	}
	p.errorf(diag.SynExpectIdentifier, p.cur.Span, "expected identifier but found %s", p.cur.Kind)
	return p.cur
}

func (p *Parser) errorf(code diag.Code, span source.Span, format string, args ...any) {
	if p.reporter == nil {
		return
	}
	p.reporter.Report(code, diag.SevError, span, fmt.Sprintf(format, args...), nil, nil)
}

// Parse consumes the whole token stream and returns the top-level program.
// Parsing never panics; malformed input is reported through the configured
// reporter and parsing attempts to resynchronize at the next top-level
// keyword so a single error does not hide the rest of the file's problems.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}
	for !p.atEOF() {
		switch p.cur.Kind {
		case token.KwStruct:
			prog.Structs = append(prog.Structs, p.parseStructDef())
		case token.KwResource:
			prog.Resources = append(prog.Resources, p.parseResourceDef())
		case token.KwFn:
			prog.Funcs = append(prog.Funcs, p.parseFuncDef())
		default:
			p.errorf(diag.SynUnexpectedToken, p.cur.Span, "expected 'struct', 'resource', or 'fn' but found %s", p.cur.Kind)
			p.resyncToTopLevel()
		}
	}
	return prog
}

// resyncToTopLevel advances past tokens until the next top-level keyword or
// EOF, so one malformed declaration does not cascade into the whole file.
func (p *Parser) resyncToTopLevel() {
	for !p.atEOF() {
		switch p.cur.Kind {
		case token.KwStruct, token.KwResource, token.KwFn:
			return
		default:
			p.advance()
		}
	}
}
