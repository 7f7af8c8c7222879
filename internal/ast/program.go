// Package ast defines the untyped Program AST the parser produces and the
// checker consumes. Ash's grammar is small enough (no generics, no control
// flow beyond straight-line blocks and return) that nodes are represented as
// Kind-tagged structs with their variant data inline, rather than an
// arena-of-IDs indirection — see DESIGN.md for the tradeoff.
package ast

import "ash/internal/source"

// Program is the root of a parsed Ash source file.
type Program struct {
	Structs   []*StructDef
	Resources []*ResourceDef
	Funcs     []*FuncDef
}

// Field is one (name, type) pair in a struct or resource definition.
type Field struct {
	Name string
	Type *TypeExpr
	Span source.Span
}

// StructDef declares a move-kind user type with ordered fields.
type StructDef struct {
	Name   string
	Fields []Field
	Span   source.Span
}

// ResourceDef declares a move-kind user type with an optional cleanup block.
// Structurally identical to StructDef but rejected at every managed
// allocation site.
type ResourceDef struct {
	Name    string
	Fields  []Field
	Cleanup *Block // nil if no cleanup block was written
	Span    source.Span
}

// PassMode is a function parameter's passing convention.
type PassMode uint8

const (
	// PassMove transfers ownership of move-kind arguments.
	PassMove PassMode = iota
	// PassRef borrows the argument for the duration of the call, read-only.
	PassRef
	// PassInout borrows the argument for the duration of the call, read-write.
	PassInout
)

// Param is one function parameter.
type Param struct {
	Name string
	Mode PassMode
	// Mutable only applies to PassMove; it marks the resulting local
	// binding as mutable inside the callee.
	Mutable bool
	Type    *TypeExpr
	Span    source.Span
}

// FuncDef declares a top-level function.
type FuncDef struct {
	Name       string
	Params     []Param
	ReturnType *TypeExpr // nil means Unit
	Body       *Block
	Span       source.Span
}
