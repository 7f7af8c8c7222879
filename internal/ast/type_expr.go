package ast

import "ash/internal/source"

// TypeExprKind discriminates the surface-syntax spelling of a type.
type TypeExprKind uint8

const (
	TypeExprInt TypeExprKind = iota
	TypeExprBool
	TypeExprUnit
	TypeExprNamed
	TypeExprManaged
)

// TypeExpr is a type as written by the programmer, before resolution against
// the global context. Span may be zero for synthesized nodes (e.g. an
// implicit Unit return type).
type TypeExpr struct {
	Kind  TypeExprKind
	Name  string    // set when Kind == TypeExprNamed
	Inner *TypeExpr // set when Kind == TypeExprManaged
	Span  source.Span
}
