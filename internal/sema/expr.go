package sema

import (
	"ash/internal/ast"
	"ash/internal/diag"
	"ash/internal/types"
	"ash/internal/typedprog"
)

// checkExpr type-checks e and drives the ownership engine's read rule. It
// is the single place a variable reference is evaluated, so the
// use-after-move check holds no matter where the reference occurs — a
// call argument, a println argument, a struct-literal field, a binary
// operand.
func (c *checker) checkExpr(e *ast.Expr) (types.TypeID, *CheckError) {
	switch e.Kind {
	case ast.ExprIntLit:
		return c.annotateType(e, c.gc.Types.Builtins().Int), nil
	case ast.ExprBoolLit:
		return c.annotateType(e, c.gc.Types.Builtins().Bool), nil
	case ast.ExprVar:
		return c.checkVar(e)
	case ast.ExprBinary:
		return c.checkBinary(e)
	case ast.ExprStructLit:
		return c.checkStructLit(e, false)
	case ast.ExprManagedLit:
		return c.checkStructLit(e, true)
	case ast.ExprFieldAccess:
		return c.checkFieldAccess(e)
	case ast.ExprCall:
		return c.checkCall(e)
	case ast.ExprPrintln:
		return c.checkPrintln(e)
	default:
		return types.NoTypeID, newErr(diag.SemaTypeMismatch, e.Span, "unrecognized expression")
	}
}

func (c *checker) checkVar(e *ast.Expr) (types.TypeID, *CheckError) {
	if err := c.engine.CheckRead(e.Name, e.Span); err != nil {
		return types.NoTypeID, err
	}
	info, _ := c.engine.Lookup(e.Name)
	return c.annotateType(e, info.Type), nil
}

func (c *checker) checkBinary(e *ast.Expr) (types.TypeID, *CheckError) {
	lt, err := c.checkExpr(e.Left)
	if err != nil {
		return types.NoTypeID, err
	}
	rt, err := c.checkExpr(e.Right)
	if err != nil {
		return types.NoTypeID, err
	}
	b := c.gc.Types.Builtins()

	switch e.Op {
	case ast.OpAdd, ast.OpSub:
		if lt != b.Int || rt != b.Int {
			return types.NoTypeID, newErr(diag.SemaArithmeticOperandsNotInt, e.Span,
				"arithmetic requires int operands, got '%s' and '%s'", c.gc.typeStr(lt), c.gc.typeStr(rt))
		}
		return c.annotateType(e, b.Int), nil
	case ast.OpLt, ast.OpLtEq, ast.OpGt, ast.OpGtEq:
		if lt != b.Int || rt != b.Int {
			return types.NoTypeID, newErr(diag.SemaArithmeticOperandsNotInt, e.Span,
				"arithmetic requires int operands, got '%s' and '%s'", c.gc.typeStr(lt), c.gc.typeStr(rt))
		}
		return c.annotateType(e, b.Bool), nil
	case ast.OpEq, ast.OpNotEq:
		if !types.Equal(lt, rt) {
			return types.NoTypeID, newErr(diag.SemaTypeMismatch, e.Right.Span, mismatchMsg(c.gc, lt, rt))
		}
		if !c.gc.Types.IsCopy(lt) {
			return types.NoTypeID, newErr(diag.SemaEqualityOperandsNotCopyKind, e.Span,
				"equality requires copy-kind operands, got '%s'", c.gc.typeStr(lt))
		}
		return c.annotateType(e, b.Bool), nil
	default:
		return types.NoTypeID, newErr(diag.SemaTypeMismatch, e.Span, "unrecognized binary operator")
	}
}

// checkStructLit checks a struct or managed literal. When managed is true
// every field is checked in a managed context, which is where the
// managed-boundary rule's lift lives (see checkManagedField).
func (c *checker) checkStructLit(e *ast.Expr, managed bool) (types.TypeID, *CheckError) {
	fields := c.gc.fieldsOf(e.Name)
	_, isStruct := c.gc.Structs[e.Name]
	_, isResource := c.gc.Resources[e.Name]
	if !isStruct && !isResource {
		return types.NoTypeID, newErr(diag.SemaUnknownType, e.Span, "unknown type '%s'", e.Name)
	}
	if managed && isResource {
		return types.NoTypeID, newErr(diag.SemaResourceNotManageable, e.Span,
			"resource '%s' cannot be allocated as managed", e.Name)
	}

	if err := c.checkFieldSet(e, fields); err != nil {
		return types.NoTypeID, err
	}

	byName := make(map[string]*ast.FieldInit, len(e.Fields))
	for i := range e.Fields {
		byName[e.Fields[i].Name] = &e.Fields[i]
	}

	for _, field := range fields {
		init := byName[field.Name]
		rawFieldType, err := c.gc.resolveType(field.Type)
		if err != nil {
			return types.NoTypeID, err
		}

		var gotType types.TypeID
		if managed {
			gotType, err = c.checkManagedField(init.Value, rawFieldType)
		} else {
			gotType, err = c.checkExpr(init.Value)
			if err == nil && !types.Equal(gotType, rawFieldType) {
				err = newErr(diag.SemaTypeMismatch, init.Value.Span, mismatchMsg(c.gc, rawFieldType, gotType))
			}
		}
		if err != nil {
			return types.NoTypeID, err
		}

		if !c.gc.Types.IsCopy(gotType) && init.Value.Kind == ast.ExprVar {
			if err := c.engine.Move(init.Value.Name, init.Value.Span); err != nil {
				return types.NoTypeID, err
			}
		}
	}

	named := c.gc.Types.Intern(types.MakeNamed(e.Name))
	kind := typedprog.LiteralLinear
	finalType := named
	if managed {
		kind = typedprog.LiteralManaged
		finalType = c.gc.Types.Intern(types.MakeManaged(named))
	}
	return c.annotate(e, typedprog.ExprInfo{Type: finalType, Kind: kind}), nil
}

// checkFieldSet enforces that a struct/managed literal names exactly the
// declared fields, once each — no missing, no unknown, no duplicates.
func (c *checker) checkFieldSet(e *ast.Expr, fields []ast.Field) *CheckError {
	declared := make(map[string]bool, len(fields))
	for _, f := range fields {
		declared[f.Name] = true
	}
	seen := make(map[string]bool, len(e.Fields))
	for _, init := range e.Fields {
		if !declared[init.Name] {
			return newErr(diag.SemaUnknownFieldInStructLiteral, init.Span,
				"unknown field '%s' in literal of type '%s'", init.Name, e.Name)
		}
		if seen[init.Name] {
			return newErr(diag.SemaFieldSetMismatch, init.Span,
				"field '%s' is initialized more than once in literal of type '%s'", init.Name, e.Name)
		}
		seen[init.Name] = true
	}
	if len(seen) != len(declared) {
		return newErr(diag.SemaFieldSetMismatch, e.Span,
			"literal of type '%s' does not initialize every declared field", e.Name)
	}
	return nil
}

// checkManagedField implements the managed-boundary rule's field-level
// behavior: if the field's raw declared type is itself a named user type,
// the expected type at that position is lifted to Managed(raw), and the
// lift distributes into a literally-nested struct literal. Any other
// value at that position must already have the lifted type.
func (c *checker) checkManagedField(value *ast.Expr, rawFieldType types.TypeID) (types.TypeID, *CheckError) {
	if !c.gc.Types.IsNamedUserType(rawFieldType) {
		got, err := c.checkExpr(value)
		if err != nil {
			return got, err
		}
		if !types.Equal(got, rawFieldType) {
			return got, newErr(diag.SemaTypeMismatch, value.Span, mismatchMsg(c.gc, rawFieldType, got))
		}
		return got, nil
	}

	switch value.Kind {
	case ast.ExprStructLit, ast.ExprManagedLit:
		return c.checkStructLit(value, true)
	default:
		expected := c.gc.Types.Intern(types.MakeManaged(rawFieldType))
		got, err := c.checkExpr(value)
		if err != nil {
			return got, err
		}
		if !types.Equal(got, expected) {
			return got, newErr(diag.SemaTypeMismatch, value.Span, mismatchMsg(c.gc, expected, got))
		}
		return got, nil
	}
}

// checkFieldAccess resolves a field access, including the managed-field
// lift: if the base expression's observed type is Managed(Named(_)) and
// the raw field type is itself a named user type, the produced type is
// lifted to Managed(raw).
func (c *checker) checkFieldAccess(e *ast.Expr) (types.TypeID, *CheckError) {
	objType, err := c.checkExpr(e.Object)
	if err != nil {
		return types.NoTypeID, err
	}

	t, ok := c.gc.Types.Lookup(objType)
	if !ok {
		return types.NoTypeID, newErr(diag.SemaFieldAccessOnNonStruct, e.Span,
			"cannot access field '%s' on '%s'", e.Name, c.gc.typeStr(objType))
	}

	var structName string
	managedObj := false
	switch t.Kind {
	case types.KindNamed:
		structName = t.Name
	case types.KindManaged:
		inner, ok := c.gc.Types.Lookup(t.Inner)
		if !ok || inner.Kind != types.KindNamed {
			return types.NoTypeID, newErr(diag.SemaFieldAccessOnManagedNonStruct, e.Span,
				"cannot access field '%s' on '%s'", e.Name, c.gc.typeStr(objType))
		}
		structName = inner.Name
		managedObj = true
	default:
		return types.NoTypeID, newErr(diag.SemaFieldAccessOnNonStruct, e.Span,
			"cannot access field '%s' on '%s'", e.Name, c.gc.typeStr(objType))
	}

	fields := c.gc.fieldsOf(structName)
	var field *ast.Field
	for i := range fields {
		if fields[i].Name == e.Name {
			field = &fields[i]
			break
		}
	}
	if field == nil {
		return types.NoTypeID, newErr(diag.SemaUnknownFieldInStructLiteral, e.Span,
			"type '%s' has no field '%s'", structName, e.Name)
	}

	rawFieldType, err := c.gc.resolveType(field.Type)
	if err != nil {
		return types.NoTypeID, err
	}

	finalType := rawFieldType
	managedField := types.NoTypeID
	if managedObj && c.gc.Types.IsNamedUserType(rawFieldType) {
		managedField = c.gc.Types.Intern(types.MakeManaged(rawFieldType))
		finalType = managedField
	}

	return c.annotate(e, typedprog.ExprInfo{Type: finalType, RawField: rawFieldType, ManagedField: managedField}), nil
}

// baseVarName finds the root variable of a place expression, which is
// where a borrow of a field access actually lands.
func baseVarName(e *ast.Expr) (string, bool) {
	switch e.Kind {
	case ast.ExprVar:
		return e.Name, true
	case ast.ExprFieldAccess:
		return baseVarName(e.Object)
	default:
		return "", false
	}
}

func (c *checker) checkCall(e *ast.Expr) (types.TypeID, *CheckError) {
	fn, ok := c.gc.Funcs[e.Name]
	if !ok {
		if _, isVar := c.engine.Lookup(e.Name); isVar {
			return types.NoTypeID, newErr(diag.SemaDynamicCallNotSupported, e.Span,
				"cannot call '%s': dynamic calls are not supported", e.Name)
		}
		return types.NoTypeID, newErr(diag.SemaNoSuchFunction, e.Span, "no such function '%s'", e.Name)
	}
	if len(e.Args) != len(fn.Params) {
		return types.NoTypeID, newErr(diag.SemaArityMismatch, e.Span,
			"function '%s' expects %d argument(s) but got %d", e.Name, len(fn.Params), len(e.Args))
	}

	for i, arg := range e.Args {
		param := fn.Params[i]
		paramType, err := c.gc.resolveType(param.Type)
		if err != nil {
			return types.NoTypeID, err
		}
		argType, err := c.checkExpr(arg)
		if err != nil {
			return types.NoTypeID, err
		}
		if !types.Equal(argType, paramType) {
			return types.NoTypeID, newErr(diag.SemaTypeMismatch, arg.Span, mismatchMsg(c.gc, paramType, argType))
		}

		switch param.Mode {
		case ast.PassMove:
			if !c.gc.Types.IsCopy(argType) && arg.Kind == ast.ExprVar {
				if err := c.engine.Move(arg.Name, arg.Span); err != nil {
					return types.NoTypeID, err
				}
			}
		case ast.PassRef:
			if name, ok := baseVarName(arg); ok {
				if err := c.engine.BorrowRead(name, arg.Span); err != nil {
					return types.NoTypeID, err
				}
			}
		case ast.PassInout:
			if name, ok := baseVarName(arg); ok {
				if err := c.engine.BorrowWrite(name, arg.Span); err != nil {
					return types.NoTypeID, err
				}
			}
		}
	}

	returnType := c.gc.Types.Builtins().Unit
	if fn.ReturnType != nil {
		rt, err := c.gc.resolveType(fn.ReturnType)
		if err != nil {
			return types.NoTypeID, err
		}
		returnType = rt
	}
	return c.annotateType(e, returnType), nil
}

// checkPrintln type-checks every argument as an observable read: no move
// or borrow side effect is applied. The use-after-move rule still applies
// because checkExpr always evaluates ExprVar through checkVar, which is
// where that rule lives.
func (c *checker) checkPrintln(e *ast.Expr) (types.TypeID, *CheckError) {
	for _, arg := range e.Args {
		if _, err := c.checkExpr(arg); err != nil {
			return types.NoTypeID, err
		}
	}
	return c.annotateType(e, c.gc.Types.Builtins().Unit), nil
}
