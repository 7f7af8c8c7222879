package sema

import (
	"ash/internal/ast"
	"ash/internal/diag"
	"ash/internal/types"
)

// resolveType validates and interns a surface TypeExpr against gc,
// producing the TypeID the rest of the checker operates on. Named(n) is
// valid iff n resolves to a struct or resource; Managed(inner) is valid
// iff inner validates and is not itself Managed (no nested
// managed-of-managed).
func (gc *GlobalContext) resolveType(t *ast.TypeExpr) (types.TypeID, *CheckError) {
	b := gc.Types.Builtins()
	switch t.Kind {
	case ast.TypeExprInt:
		return b.Int, nil
	case ast.TypeExprBool:
		return b.Bool, nil
	case ast.TypeExprUnit:
		return b.Unit, nil
	case ast.TypeExprNamed:
		if _, isStruct := gc.Structs[t.Name]; isStruct {
			return gc.Types.Intern(types.MakeNamed(t.Name)), nil
		}
		if _, isResource := gc.Resources[t.Name]; isResource {
			return gc.Types.Intern(types.MakeNamed(t.Name)), nil
		}
		return types.NoTypeID, newErr(diag.SemaUnknownType, t.Span, "unknown type '%s'", t.Name)
	case ast.TypeExprManaged:
		if t.Inner.Kind == ast.TypeExprManaged {
			return types.NoTypeID, newErr(diag.SemaUnknownType, t.Span, "managed(managed(_)) is not a valid type")
		}
		inner, err := gc.resolveType(t.Inner)
		if err != nil {
			return types.NoTypeID, err
		}
		return gc.Types.Intern(types.MakeManaged(inner)), nil
	default:
		return types.NoTypeID, newErr(diag.SemaUnknownType, t.Span, "unknown type expression")
	}
}

// typeStr renders id using the surface spelling, for embedding verbatim in
// diagnostic messages.
func (gc *GlobalContext) typeStr(id types.TypeID) string {
	return gc.Types.String(id)
}

func mismatchMsg(gc *GlobalContext, want, got types.TypeID) string {
	return "Expected " + gc.typeStr(want) + " but got " + gc.typeStr(got)
}
