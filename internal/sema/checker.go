package sema

import (
	"ash/internal/ast"
	"ash/internal/types"
	"ash/internal/typedprog"
)

// checker drives the ownership engine over one function body or one
// resource cleanup block. It is never shared across functions — each gets
// its own engine and exprTypes map, which is exactly what lets Check fan
// function bodies out across goroutines safely.
type checker struct {
	gc     *GlobalContext
	engine *Engine

	// returnType is the enclosing function's declared return type.
	// inFunction is false while checking a resource's cleanup block, which
	// has no enclosing function.
	returnType types.TypeID
	inFunction bool

	exprTypes map[*ast.Expr]typedprog.ExprInfo
}

func newChecker(gc *GlobalContext, returnType types.TypeID, inFunction bool) *checker {
	return &checker{
		gc:         gc,
		engine:     NewEngine(),
		returnType: returnType,
		inFunction: inFunction,
		exprTypes:  make(map[*ast.Expr]typedprog.ExprInfo),
	}
}

func (c *checker) annotate(e *ast.Expr, info typedprog.ExprInfo) types.TypeID {
	c.exprTypes[e] = info
	return info.Type
}

func (c *checker) annotateType(e *ast.Expr, t types.TypeID) types.TypeID {
	return c.annotate(e, typedprog.ExprInfo{Type: t})
}
