package sema

import (
	"ash/internal/ast"
	"ash/internal/diag"
	"ash/internal/typedprog"
)

// checkFunc checks one function body against a fresh ownership engine
// seeded with its parameters: move params start Owned, ref params start
// BorrowedRead, and inout params start BorrowedWrite and mutable.
func checkFunc(gc *GlobalContext, fn *ast.FuncDef) (*typedprog.Func, *CheckError) {
	returnType := gc.Types.Builtins().Unit
	if fn.ReturnType != nil {
		rt, err := gc.resolveType(fn.ReturnType)
		if err != nil {
			return nil, err
		}
		returnType = rt
	}

	c := newChecker(gc, returnType, true)

	seen := make(map[string]bool, len(fn.Params))
	for _, p := range fn.Params {
		if seen[p.Name] {
			return nil, newErr(diag.SemaDuplicateLocalBinding, p.Span, "duplicate parameter '%s'", p.Name)
		}
		seen[p.Name] = true

		pt, err := gc.resolveType(p.Type)
		if err != nil {
			return nil, err
		}

		var info VarInfo
		switch p.Mode {
		case ast.PassMove:
			info = VarInfo{Type: pt, State: Owned, Mutable: p.Mutable, DefSite: p.Span}
		case ast.PassRef:
			info = VarInfo{Type: pt, State: BorrowedRead, Mutable: false, DefSite: p.Span}
		case ast.PassInout:
			info = VarInfo{Type: pt, State: BorrowedWrite, Mutable: true, DefSite: p.Span}
		}
		if err := c.engine.Declare(p.Name, info); err != nil {
			return nil, err
		}
	}

	if err := c.checkBlock(fn.Body); err != nil {
		return nil, err
	}

	return &typedprog.Func{Def: fn, ReturnType: returnType, ExprTypes: c.exprTypes}, nil
}

// checkResource checks a resource's cleanup block, if it has one. The
// resource's own fields are in scope, each as an owned, mutable binding,
// but there is no enclosing function, so a bare `return` inside is
// rejected.
func checkResource(gc *GlobalContext, r *ast.ResourceDef) (*typedprog.Resource, *CheckError) {
	if r.Cleanup == nil {
		return &typedprog.Resource{Def: r}, nil
	}

	c := newChecker(gc, gc.Types.Builtins().Unit, false)

	for _, f := range r.Fields {
		ft, err := gc.resolveType(f.Type)
		if err != nil {
			return nil, err
		}
		info := VarInfo{Type: ft, State: Owned, Mutable: true, DefSite: f.Span}
		if err := c.engine.Declare(f.Name, info); err != nil {
			return nil, err
		}
	}

	if err := c.checkBlock(r.Cleanup); err != nil {
		return nil, err
	}

	return &typedprog.Resource{Def: r, ExprTypes: c.exprTypes}, nil
}
