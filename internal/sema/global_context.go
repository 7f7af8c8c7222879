package sema

import (
	"ash/internal/ast"
	"ash/internal/diag"
	"ash/internal/types"
)

// GlobalContext is the de-duplicated, name-indexed view of a program's
// top-level definitions. It is built once and is read-only for the rest of
// the check — every per-function checker may consult it freely, including
// concurrently.
type GlobalContext struct {
	Structs   map[string]*ast.StructDef
	Resources map[string]*ast.ResourceDef
	Funcs     map[string]*ast.FuncDef
	Types     *types.Interner
}

// BuildGlobalContext de-duplicates top-level definitions within each of the
// three namespaces and interns every struct/resource name. Duplicate names
// within one namespace are rejected, reporting the second occurrence's
// location; a struct and a function may legally share a name, a known and
// intentional gap in the naming rules.
func BuildGlobalContext(prog *ast.Program) (*GlobalContext, *CheckError) {
	gc := &GlobalContext{
		Structs:   make(map[string]*ast.StructDef, len(prog.Structs)),
		Resources: make(map[string]*ast.ResourceDef, len(prog.Resources)),
		Funcs:     make(map[string]*ast.FuncDef, len(prog.Funcs)),
		Types:     types.NewInterner(),
	}

	for _, s := range prog.Structs {
		if _, dup := gc.Structs[s.Name]; dup {
			return nil, newErr(diag.SemaDuplicateDefinition, s.Span, "duplicate struct definition '%s'", s.Name)
		}
		gc.Structs[s.Name] = s
		gc.Types.DeclareNominal(s.Name, types.NominalStruct)
	}

	for _, r := range prog.Resources {
		if _, dup := gc.Resources[r.Name]; dup {
			return nil, newErr(diag.SemaDuplicateDefinition, r.Span, "duplicate resource definition '%s'", r.Name)
		}
		gc.Resources[r.Name] = r
		gc.Types.DeclareNominal(r.Name, types.NominalResource)
	}

	for _, f := range prog.Funcs {
		if _, dup := gc.Funcs[f.Name]; dup {
			return nil, newErr(diag.SemaDuplicateDefinition, f.Span, "duplicate function definition '%s'", f.Name)
		}
		gc.Funcs[f.Name] = f
	}

	return gc, nil
}

// fieldsOf returns the ordered field list for a named user type, or nil if
// name resolves to neither a struct nor a resource.
func (gc *GlobalContext) fieldsOf(name string) []ast.Field {
	if s, ok := gc.Structs[name]; ok {
		return s.Fields
	}
	if r, ok := gc.Resources[name]; ok {
		return r.Fields
	}
	return nil
}

// ValidateMain enforces that the program declares exactly one
// zero-parameter function named 'main'.
func (gc *GlobalContext) ValidateMain() *CheckError {
	fn, ok := gc.Funcs["main"]
	if !ok {
		return newErrNoSpan(diag.SemaMainMissing, "No 'main' function found")
	}
	if len(fn.Params) > 0 {
		return newErr(diag.SemaMainHasParameters, fn.Span, "'main' function cannot have parameters")
	}
	return nil
}
