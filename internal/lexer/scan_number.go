package lexer

import "ash/internal/token"

// scanNumber scans a decimal integer literal. Ash has no floats, no
// hex/binary/octal bases, and no digit-group separators.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.IntLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
