package lexer

import (
	"ash/internal/diag"
	"ash/internal/source"
	"ash/internal/token"
)

// Lexer turns a source file into a stream of tokens.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	reporter diag.Reporter
	look     *token.Token // one-token lookahead buffer
}

// New creates a Lexer over file. reporter may be nil, in which case lexical
// errors are silently skipped and lexing continues with Invalid tokens.
func New(file *source.File, reporter diag.Reporter) *Lexer {
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		reporter: reporter,
	}
}

// Next returns the next significant token. Returns EOF forever once the
// input is exhausted.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipWhitespaceAndComments()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) skipWhitespaceAndComments() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			lx.cursor.Bump()
		case b == '/' && lx.peekSecond() == '/':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		default:
			return
		}
	}
}

func (lx *Lexer) peekSecond() byte {
	_, b1, ok := lx.cursor.Peek2()
	if !ok {
		return 0
	}
	return b1
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.reporter != nil {
		lx.reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}
