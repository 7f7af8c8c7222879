package sema

import (
	"testing"

	"ash/internal/ast"
	"ash/internal/types"
)

func buildGC(t *testing.T, src string) *GlobalContext {
	t.Helper()
	prog, bag := parseSnippet(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}
	gc, err := BuildGlobalContext(prog)
	if err != nil {
		t.Fatalf("unexpected error building global context: %v", err)
	}
	return gc
}

func namedType(name string) *ast.TypeExpr {
	return &ast.TypeExpr{Kind: ast.TypeExprNamed, Name: name}
}

func managedType(inner *ast.TypeExpr) *ast.TypeExpr {
	return &ast.TypeExpr{Kind: ast.TypeExprManaged, Inner: inner}
}

func TestResolveTypeBuiltins(t *testing.T) {
	gc := buildGC(t, `fn main()->unit{}`)
	b := gc.Types.Builtins()

	cases := []struct {
		texpr *ast.TypeExpr
		want  types.TypeID
	}{
		{&ast.TypeExpr{Kind: ast.TypeExprInt}, b.Int},
		{&ast.TypeExpr{Kind: ast.TypeExprBool}, b.Bool},
		{&ast.TypeExpr{Kind: ast.TypeExprUnit}, b.Unit},
	}
	for _, tc := range cases {
		got, err := gc.resolveType(tc.texpr)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tc.want {
			t.Fatalf("expected %v, got %v", tc.want, got)
		}
	}
}

func TestResolveTypeNamedStruct(t *testing.T) {
	gc := buildGC(t, `struct Point{x:int,y:int} fn main()->unit{}`)
	id, err := gc.resolveType(namedType("Point"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gc.Types.IsNamedUserType(id) {
		t.Fatalf("expected Point to resolve to a named user type")
	}
}

func TestResolveTypeNamedResource(t *testing.T) {
	gc := buildGC(t, `resource File{fd:int} fn main()->unit{}`)
	id, err := gc.resolveType(namedType("File"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gc.Types.IsNamedUserType(id) {
		t.Fatalf("expected File to resolve to a named user type")
	}
}

func TestResolveTypeUnknownNamed(t *testing.T) {
	gc := buildGC(t, `fn main()->unit{}`)
	_, err := gc.resolveType(namedType("Ghost"))
	requireErrContains(t, err, "unknown type 'Ghost'")
}

func TestResolveTypeManagedOfNamed(t *testing.T) {
	gc := buildGC(t, `struct Point{x:int,y:int} fn main()->unit{}`)
	id, err := gc.resolveType(managedType(namedType("Point")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tv, ok := gc.Types.Lookup(id)
	if !ok || tv.Kind != types.KindManaged {
		t.Fatalf("expected a managed type, got %v", tv)
	}
}

func TestResolveTypeRejectsNestedManaged(t *testing.T) {
	gc := buildGC(t, `struct Point{x:int,y:int} fn main()->unit{}`)
	_, err := gc.resolveType(managedType(managedType(namedType("Point"))))
	requireErrContains(t, err, "managed(managed(_))")
}

func TestTypeStrRendersManagedPrefix(t *testing.T) {
	gc := buildGC(t, `struct Point{x:int,y:int} fn main()->unit{}`)
	id, err := gc.resolveType(managedType(namedType("Point")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := gc.typeStr(id); got != "managed Point" {
		t.Fatalf("expected 'managed Point', got %q", got)
	}
}

func TestMismatchMsgFormat(t *testing.T) {
	gc := buildGC(t, `struct Point{x:int,y:int} fn main()->unit{}`)
	named, _ := gc.resolveType(namedType("Point"))
	got := mismatchMsg(gc, gc.Types.Builtins().Int, named)
	if got != "Expected int but got Point" {
		t.Fatalf("unexpected mismatch message: %q", got)
	}
}

func TestIsCopyClassification(t *testing.T) {
	gc := buildGC(t, `struct Point{x:int,y:int} fn main()->unit{}`)
	b := gc.Types.Builtins()
	named, _ := gc.resolveType(namedType("Point"))
	managed, _ := gc.resolveType(managedType(namedType("Point")))

	copyCases := map[string]types.TypeID{"int": b.Int, "bool": b.Bool, "unit": b.Unit, "managed Point": managed}
	for name, id := range copyCases {
		if !gc.Types.IsCopy(id) {
			t.Fatalf("expected %s to be copy-kind", name)
		}
	}
	if gc.Types.IsCopy(named) {
		t.Fatalf("expected Point to be move-kind, not copy")
	}
}

// resolveType is independent of the checker's variable state, so calling it
// repeatedly with the same surface type always interns to the same TypeID.
func TestResolveTypeIsIdempotent(t *testing.T) {
	gc := buildGC(t, `struct Point{x:int,y:int} fn main()->unit{}`)
	first, err1 := gc.resolveType(namedType("Point"))
	second, err2 := gc.resolveType(namedType("Point"))
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Fatalf("expected identical TypeID on repeated resolution, got %v and %v", first, second)
	}
}
