package token

import (
	"ash/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is an integer or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, StringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwStruct, KwResource, KwFn, KwLet, KwMut, KwManaged, KwRef, KwInout,
		KwReturn, KwPrintln, KwCleanup, KwTrue, KwFalse, KwInt, KwBool, KwUnit:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is a plain identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
