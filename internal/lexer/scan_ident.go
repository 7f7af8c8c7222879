package lexer

import "ash/internal/token"

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	mark := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	span := lx.cursor.SpanFrom(mark)
	text := string(lx.file.Content[span.Start:span.End])

	if kw, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kw, Span: span, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: span, Text: text}
}
