package sema

import (
	"ash/internal/ast"
	"ash/internal/typedprog"

	"golang.org/x/sync/errgroup"
)

// Check runs the full ownership/type checker over prog and produces the
// typedprog.Program the emitter consumes. Every resource's cleanup block
// and every function body gets its own Engine and is checked
// independently, so they're fanned out across goroutines with errgroup —
// but the result is never order-dependent on goroutine scheduling: each
// slot is pre-assigned by declaration index, and the first error reported
// is always the first one in declaration order (resources, then funcs).
func Check(prog *ast.Program) (*typedprog.Program, *CheckError) {
	gc, err := BuildGlobalContext(prog)
	if err != nil {
		return nil, err
	}
	if err := gc.ValidateMain(); err != nil {
		return nil, err
	}

	resources := make([]*typedprog.Resource, len(prog.Resources))
	resourceErrs := make([]*CheckError, len(prog.Resources))
	funcs := make([]*typedprog.Func, len(prog.Funcs))
	funcErrs := make([]*CheckError, len(prog.Funcs))

	var g errgroup.Group

	for i, r := range prog.Resources {
		i, r := i, r
		g.Go(func() error {
			res, cerr := checkResource(gc, r)
			resources[i] = res
			resourceErrs[i] = cerr
			return nil
		})
	}
	for i, fn := range prog.Funcs {
		i, fn := i, fn
		g.Go(func() error {
			f, cerr := checkFunc(gc, fn)
			funcs[i] = f
			funcErrs[i] = cerr
			return nil
		})
	}

	_ = g.Wait() // every goroutine above always returns nil; errors travel via the slot slices

	for _, cerr := range resourceErrs {
		if cerr != nil {
			return nil, cerr
		}
	}
	for _, cerr := range funcErrs {
		if cerr != nil {
			return nil, cerr
		}
	}

	return &typedprog.Program{
		Structs:   prog.Structs,
		Resources: resources,
		Funcs:     funcs,
		Types:     gc.Types,
	}, nil
}
