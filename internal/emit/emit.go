// Package emit lowers a checked typedprog.Program into a single C++
// translation unit. The target runtime is the conservative mark-and-sweep
// allocator exposed by GC_init/GC_malloc; every `managed T{...}` literal
// becomes a placement-new over GC_malloc(sizeof(T)), never a bare `new`,
// and emitted `main` calls GC_init() once before anything else runs.
//
// The emitter is intentionally minimal: straight-line functions, no
// generics, no control flow beyond what the checker itself accepts. It
// never second-guesses the checker — every type it needs is already on the
// typedprog annotations.
package emit

import (
	"fmt"
	"strings"

	"ash/internal/ast"
	"ash/internal/typedprog"
)

// Program renders the whole typed program as a C++ translation unit.
func Program(p *typedprog.Program) string {
	var b strings.Builder
	b.WriteString("#include <cstddef>\n")
	b.WriteString("#include <cstdint>\n")
	b.WriteString("#include <cstdio>\n")
	b.WriteString("#include <new>\n")
	b.WriteString("\n")
	b.WriteString("extern \"C\" void GC_init();\n")
	b.WriteString("extern \"C\" void* GC_malloc(size_t size);\n")
	b.WriteString("\n")

	for _, s := range p.Structs {
		emitStruct(&b, s)
	}
	for _, r := range p.Resources {
		emitResourceStruct(&b, r.Def)
	}
	for _, f := range p.Funcs {
		emitFuncSignature(&b, f.Def)
		b.WriteString(";\n")
	}
	b.WriteString("\n")
	for _, f := range p.Funcs {
		e := &emitter{typed: f, types: p.Types}
		e.emitFunc(&b)
	}
	return b.String()
}

func emitStruct(b *strings.Builder, s *ast.StructDef) {
	emitFields(b, s.Name, s.Fields)
}

// emitResourceStruct renders a resource the same way as a struct: resources
// and structs share a field layout, they only differ in whether they may be
// allocated as managed (enforced by the checker, not the emitter).
func emitResourceStruct(b *strings.Builder, r *ast.ResourceDef) {
	emitFields(b, r.Name, r.Fields)
}

func emitFields(b *strings.Builder, name string, fields []ast.Field) {
	fmt.Fprintf(b, "struct %s {\n", name)
	for _, f := range fields {
		fmt.Fprintf(b, "    %s %s;\n", cppTypeExpr(f.Type), f.Name)
	}
	b.WriteString("};\n\n")
}

func cppTypeExpr(t *ast.TypeExpr) string {
	switch t.Kind {
	case ast.TypeExprInt:
		return "int64_t"
	case ast.TypeExprBool:
		return "bool"
	case ast.TypeExprUnit:
		return "void"
	case ast.TypeExprNamed:
		return t.Name
	case ast.TypeExprManaged:
		return cppTypeExpr(t.Inner) + "*"
	default:
		return "void"
	}
}

func emitFuncSignature(b *strings.Builder, fn *ast.FuncDef) {
	ret := "void"
	if fn.ReturnType != nil {
		ret = cppTypeExpr(fn.ReturnType)
	}
	fmt.Fprintf(b, "%s %s(", ret, fn.Name)
	for i, p := range fn.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		ty := cppTypeExpr(p.Type)
		switch p.Mode {
		case ast.PassRef:
			ty = "const " + ty + "&"
		case ast.PassInout:
			ty += "&"
		}
		fmt.Fprintf(b, "%s %s", ty, p.Name)
	}
	b.WriteString(")")
}
