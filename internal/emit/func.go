package emit

import (
	"fmt"
	"strings"

	"ash/internal/ast"
	"ash/internal/types"
	"ash/internal/typedprog"
)

// emitter lowers one function body, consulting the checker's per-expression
// annotations to decide `.` vs `->` and whether a struct literal allocates.
type emitter struct {
	typed *typedprog.Func
	types *types.Interner
}

func (e *emitter) emitFunc(b *strings.Builder) {
	emitFuncSignature(b, e.typed.Def)
	b.WriteString(" {\n")
	if e.typed.Def.Name == "main" {
		b.WriteString("    GC_init();\n")
	}
	e.emitBlock(b, e.typed.Def.Body, 1)
	b.WriteString("}\n\n")
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("    ", depth))
}

func (e *emitter) emitBlock(b *strings.Builder, block *ast.Block, depth int) {
	for _, s := range block.Stmts {
		e.emitStmt(b, s, depth)
	}
}

func (e *emitter) emitStmt(b *strings.Builder, s *ast.Stmt, depth int) {
	switch s.Kind {
	case ast.StmtLet:
		indent(b, depth)
		fmt.Fprintf(b, "auto %s = %s;\n", s.Name, e.emitExpr(s.Value))
	case ast.StmtAssign:
		indent(b, depth)
		fmt.Fprintf(b, "%s = %s;\n", e.emitExpr(s.Target), e.emitExpr(s.Value))
	case ast.StmtExpr:
		indent(b, depth)
		fmt.Fprintf(b, "%s;\n", e.emitExpr(s.Value))
	case ast.StmtReturn:
		indent(b, depth)
		if s.Value == nil {
			b.WriteString("return;\n")
			return
		}
		fmt.Fprintf(b, "return %s;\n", e.emitExpr(s.Value))
	}
}

func (e *emitter) emitExpr(expr *ast.Expr) string {
	switch expr.Kind {
	case ast.ExprIntLit:
		return fmt.Sprintf("%d", expr.IntValue)
	case ast.ExprBoolLit:
		if expr.BoolValue {
			return "true"
		}
		return "false"
	case ast.ExprVar:
		return expr.Name
	case ast.ExprBinary:
		return fmt.Sprintf("(%s %s %s)", e.emitExpr(expr.Left), cppBinOp(expr.Op), e.emitExpr(expr.Right))
	case ast.ExprStructLit:
		return e.emitStructLit(expr, false)
	case ast.ExprManagedLit:
		return e.emitStructLit(expr, true)
	case ast.ExprFieldAccess:
		return e.emitFieldAccess(expr)
	case ast.ExprCall:
		return e.emitCall(expr)
	case ast.ExprPrintln:
		return e.emitPrintln(expr)
	default:
		return "/* unsupported expression */"
	}
}

func cppBinOp(op ast.BinOp) string {
	switch op {
	case ast.OpAdd:
		return "+"
	case ast.OpSub:
		return "-"
	case ast.OpLt:
		return "<"
	case ast.OpLtEq:
		return "<="
	case ast.OpGt:
		return ">"
	case ast.OpGtEq:
		return ">="
	case ast.OpEq:
		return "=="
	case ast.OpNotEq:
		return "!="
	default:
		return "?"
	}
}

// emitStructLit lowers a linear struct literal to aggregate initialization,
// and a managed one to a placement-new over GC_malloc, targeting the
// GC_init/GC_malloc runtime.
func (e *emitter) emitStructLit(expr *ast.Expr, managed bool) string {
	var args strings.Builder
	for i, f := range expr.Fields {
		if i > 0 {
			args.WriteString(", ")
		}
		fmt.Fprintf(&args, "%s", e.emitExpr(f.Value))
	}
	if !managed {
		return fmt.Sprintf("%s{%s}", expr.Name, args.String())
	}
	return fmt.Sprintf("new (GC_malloc(sizeof(%s))) %s{%s}", expr.Name, expr.Name, args.String())
}

// emitFieldAccess chooses `.` or `->` from the checker's RawField/ManagedField
// annotation on this exact expression node: a lifted access (ManagedField
// set) means the base pointer is heap-managed, so it uses `->`.
func (e *emitter) emitFieldAccess(expr *ast.Expr) string {
	info := e.typed.ExprTypes[expr]
	op := "."
	if info.ManagedField != types.NoTypeID || e.baseIsManagedPointer(expr.Object) {
		op = "->"
	}
	return fmt.Sprintf("%s%s%s", e.emitExpr(expr.Object), op, expr.Name)
}

// baseIsManagedPointer reports whether obj's own checked type is
// Managed(Named(_)), in which case it lowers to a GC_malloc'd pointer and
// needs `->` even for its own direct field access.
func (e *emitter) baseIsManagedPointer(obj *ast.Expr) bool {
	info, ok := e.typed.ExprTypes[obj]
	if !ok {
		return false
	}
	t, ok := e.types.Lookup(info.Type)
	return ok && t.Kind == types.KindManaged
}

func (e *emitter) emitCall(expr *ast.Expr) string {
	var args strings.Builder
	for i, a := range expr.Args {
		if i > 0 {
			args.WriteString(", ")
		}
		args.WriteString(e.emitExpr(a))
	}
	return fmt.Sprintf("%s(%s)", expr.Name, args.String())
}

func (e *emitter) emitPrintln(expr *ast.Expr) string {
	var args strings.Builder
	fmt.Fprintf(&args, "%q", expr.Format)
	for _, a := range expr.Args {
		args.WriteString(", ")
		args.WriteString(e.emitExpr(a))
	}
	return fmt.Sprintf("std::printf(%s)", args.String())
}
