package typedprog

import (
	"testing"

	"ash/internal/ast"
	"ash/internal/types"
)

func TestSnapshotRoundTripsThroughMsgpack(t *testing.T) {
	interner := types.NewInterner()
	intID := interner.Intern(types.Type{Kind: types.KindInt})

	p := &Program{
		Structs: []*ast.StructDef{
			{Name: "Point", Fields: []ast.Field{{Name: "x", Type: &ast.TypeExpr{Kind: ast.TypeExprInt}}}},
		},
		Resources: []*Resource{
			{Def: &ast.ResourceDef{Name: "File"}},
		},
		Funcs: []*Func{
			{
				Def:        &ast.FuncDef{Name: "main", Body: &ast.Block{}},
				ReturnType: intID,
				ExprTypes:  map[*ast.Expr]ExprInfo{&ast.Expr{}: {Type: intID}},
			},
		},
		Types: interner,
	}

	want := p.Snapshot("deadbeef")
	data, err := want.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got, err := UnmarshalSnapshot(data)
	if err != nil {
		t.Fatalf("UnmarshalSnapshot: %v", err)
	}

	if got.SourceHash != want.SourceHash {
		t.Errorf("SourceHash = %q, want %q", got.SourceHash, want.SourceHash)
	}
	if len(got.StructNames) != 1 || got.StructNames[0] != "Point" {
		t.Errorf("StructNames = %v, want [Point]", got.StructNames)
	}
	if len(got.ResourceNames) != 1 || got.ResourceNames[0] != "File" {
		t.Errorf("ResourceNames = %v, want [File]", got.ResourceNames)
	}
	if len(got.Funcs) != 1 || got.Funcs[0].Name != "main" || got.Funcs[0].ReturnType != "int" || got.Funcs[0].ExprCount != 1 {
		t.Errorf("Funcs = %+v, want one 'main' returning int with 1 expr", got.Funcs)
	}
}

func TestSnapshotDiffersOnHashMismatch(t *testing.T) {
	p := &Program{Types: types.NewInterner()}
	a := p.Snapshot("hash-a")
	b := p.Snapshot("hash-b")
	if a.SourceHash == b.SourceHash {
		t.Fatal("expected distinct source hashes to stay distinct through Snapshot")
	}
}
