package types

import "testing"

func TestInternerBuiltins(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if b.Int == NoTypeID || b.Bool == NoTypeID || b.Unit == NoTypeID {
		t.Fatalf("builtins not initialized")
	}
	unit, ok := in.Lookup(b.Unit)
	if !ok || unit.Kind != KindUnit {
		t.Fatalf("expected unit kind, got %v", unit.Kind)
	}
}

func TestInternerDeduplicatesNamed(t *testing.T) {
	in := NewInterner()
	a := in.Intern(MakeNamed("Point"))
	b := in.Intern(MakeNamed("Point"))
	if a != b {
		t.Fatalf("named types with the same name should be deduplicated")
	}
}

func TestInternerDistinguishesNames(t *testing.T) {
	in := NewInterner()
	a := in.Intern(MakeNamed("Point"))
	b := in.Intern(MakeNamed("Line"))
	if a == b {
		t.Fatalf("distinct names must not collide")
	}
}

func TestInternerManagedNestsByInner(t *testing.T) {
	in := NewInterner()
	point := in.Intern(MakeNamed("Point"))
	line := in.Intern(MakeNamed("Line"))
	managedPoint := in.Intern(MakeManaged(point))
	managedPointAgain := in.Intern(MakeManaged(point))
	managedLine := in.Intern(MakeManaged(line))
	if managedPoint != managedPointAgain {
		t.Fatalf("managed(Point) should be deduplicated")
	}
	if managedPoint == managedLine {
		t.Fatalf("managed(Point) and managed(Line) must differ")
	}
}

func TestDeclareNominalIsIdempotent(t *testing.T) {
	in := NewInterner()
	a := in.DeclareNominal("Point", NominalStruct)
	b := in.DeclareNominal("Point", NominalStruct)
	if a != b {
		t.Fatalf("declaring the same nominal twice should return the same TypeID")
	}
	kind, ok := in.NominalKindOf("Point")
	if !ok || kind != NominalStruct {
		t.Fatalf("expected Point to be registered as a struct")
	}
}

func TestIsResource(t *testing.T) {
	in := NewInterner()
	fileID := in.DeclareNominal("File", NominalResource)
	pointID := in.DeclareNominal("Point", NominalStruct)
	if !in.IsResource(fileID) {
		t.Errorf("File should be reported as a resource")
	}
	if in.IsResource(pointID) {
		t.Errorf("Point should not be reported as a resource")
	}
	if in.IsResource(in.Builtins().Int) {
		t.Errorf("int should not be reported as a resource")
	}
}

func TestMustLookupPanicsOnInvalidID(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for invalid TypeID")
		}
	}()
	in := NewInterner()
	in.MustLookup(TypeID(9999))
}
