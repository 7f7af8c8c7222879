package sema

import (
	"ash/internal/ast"
	"ash/internal/diag"
	"ash/internal/types"
)

// checkBlock checks every statement in block in order, failing fast on the
// first error. Entering a block always pushes a fresh scope and leaving it
// discards whatever happened inside.
func (c *checker) checkBlock(block *ast.Block) *CheckError {
	c.engine.EnterScope()
	defer c.engine.LeaveScope()

	for _, s := range block.Stmts {
		if err := c.checkStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (c *checker) checkStmt(s *ast.Stmt) *CheckError {
	switch s.Kind {
	case ast.StmtLet:
		return c.checkLet(s)
	case ast.StmtAssign:
		return c.checkAssign(s)
	case ast.StmtExpr:
		_, err := c.checkExpr(s.Value)
		return err
	case ast.StmtReturn:
		return c.checkReturn(s)
	default:
		return newErr(diag.SemaTypeMismatch, s.Span, "unrecognized statement")
	}
}

func (c *checker) checkLet(s *ast.Stmt) *CheckError {
	valType, err := c.checkExpr(s.Value)
	if err != nil {
		return err
	}

	finalType := valType
	if s.Annotation != nil {
		annType, err := c.gc.resolveType(s.Annotation)
		if err != nil {
			return err
		}
		if !types.Equal(valType, annType) {
			return newErr(diag.SemaTypeMismatch, s.Value.Span, mismatchMsg(c.gc, annType, valType))
		}
		finalType = annType
	}

	if !c.gc.Types.IsCopy(finalType) && s.Value.Kind == ast.ExprVar {
		if err := c.engine.Move(s.Value.Name, s.Value.Span); err != nil {
			return err
		}
	}

	return c.engine.Declare(s.Name, VarInfo{
		Type:    finalType,
		State:   Owned,
		Mutable: s.Mutable,
		DefSite: s.Span,
	})
}

func (c *checker) checkAssign(s *ast.Stmt) *CheckError {
	if err := c.checkPlace(s.Target); err != nil {
		return err
	}
	targetType, err := c.checkExpr(s.Target)
	if err != nil {
		return err
	}
	valType, err := c.checkExpr(s.Value)
	if err != nil {
		return err
	}
	if !types.Equal(valType, targetType) {
		return newErr(diag.SemaTypeMismatch, s.Value.Span, mismatchMsg(c.gc, targetType, valType))
	}
	if !c.gc.Types.IsCopy(valType) && s.Value.Kind == ast.ExprVar {
		if err := c.engine.Move(s.Value.Name, s.Value.Span); err != nil {
			return err
		}
	}
	return nil
}

// checkPlace validates that e is a legal, mutable assignment target: a
// variable or a field-access chain rooted in one, recursing to the root to
// apply the mutability check.
func (c *checker) checkPlace(e *ast.Expr) *CheckError {
	switch e.Kind {
	case ast.ExprVar:
		return c.engine.CheckAssignable(e.Name, e.Span)
	case ast.ExprFieldAccess:
		return c.checkPlace(e.Object)
	default:
		return newErr(diag.SemaAssignTargetNotAPlace, e.Span, "assignment target is not a place")
	}
}

func (c *checker) checkReturn(s *ast.Stmt) *CheckError {
	if !c.inFunction {
		return newErr(diag.SemaReturnOutsideFunction, s.Span, "return statement outside of a function")
	}

	if s.Value == nil {
		if !types.Equal(c.returnType, c.gc.Types.Builtins().Unit) {
			return newErr(diag.SemaTypeMismatch, s.Span, mismatchMsg(c.gc, c.returnType, c.gc.Types.Builtins().Unit))
		}
		return nil
	}

	t, err := c.checkExpr(s.Value)
	if err != nil {
		return err
	}
	if !types.Equal(t, c.returnType) {
		return newErr(diag.SemaTypeMismatch, s.Value.Span, mismatchMsg(c.gc, c.returnType, t))
	}
	if !c.gc.Types.IsCopy(t) && s.Value.Kind == ast.ExprVar {
		if err := c.engine.Move(s.Value.Name, s.Value.Span); err != nil {
			return err
		}
	}
	return nil
}
