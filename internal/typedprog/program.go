// Package typedprog defines the typed program the checker hands to the
// emitter: the original struct/resource/function lists, with every
// expression annotated with its final type and every struct construction
// tagged linear or managed.
package typedprog

import (
	"ash/internal/ast"
	"ash/internal/types"
)

// LiteralKind distinguishes a linear struct construction from a managed
// one, so the emitter can read the distinction back off every
// struct-literal expression.
type LiteralKind uint8

const (
	// NotALiteral marks an ExprInfo that does not describe a struct
	// construction (e.g. a variable read or a binary op).
	NotALiteral LiteralKind = iota
	LiteralLinear
	LiteralManaged
)

// ExprInfo is the annotation attached to a single *ast.Expr node. RawField
// and ManagedField are only meaningful for ExprFieldAccess: RawField is
// always the field's declared type off the struct/resource definition;
// ManagedField is set to the lifted Managed(inner) type when the access sat
// on a managed object and the field itself is a named user type — the
// emitter uses the presence of ManagedField to choose `->` over `.`.
type ExprInfo struct {
	Type         types.TypeID
	Kind         LiteralKind
	RawField     types.TypeID
	ManagedField types.TypeID
}

// Func is a function with its body's expressions fully annotated.
type Func struct {
	Def        *ast.FuncDef
	ReturnType types.TypeID
	ExprTypes  map[*ast.Expr]ExprInfo
}

// Resource carries its (possibly absent) cleanup block's annotations.
type Resource struct {
	Def       *ast.ResourceDef
	ExprTypes map[*ast.Expr]ExprInfo // nil if Def.Cleanup == nil
}

// Program is the checker's output, ready for the emitter to consume.
type Program struct {
	Structs   []*ast.StructDef // unchanged from the input AST
	Resources []*Resource
	Funcs     []*Func
	Types     *types.Interner
}

// TypeOf returns the final type recorded for e, or types.NoTypeID if e was
// never annotated (e.g. it belongs to a different function's map).
func (f *Func) TypeOf(e *ast.Expr) types.TypeID {
	if f == nil || f.ExprTypes == nil {
		return types.NoTypeID
	}
	return f.ExprTypes[e].Type
}
