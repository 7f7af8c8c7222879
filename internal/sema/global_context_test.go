package sema

import "testing"

func TestBuildGlobalContextRejectsDuplicateStruct(t *testing.T) {
	prog, bag := parseSnippet(t, `
struct P{x:int}
struct P{y:int}
fn main()->unit{}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}
	_, err := BuildGlobalContext(prog)
	requireErrContains(t, err, "duplicate struct definition 'P'")
}

func TestBuildGlobalContextRejectsDuplicateResource(t *testing.T) {
	prog, bag := parseSnippet(t, `
resource F{fd:int}
resource F{fd2:int}
fn main()->unit{}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}
	_, err := BuildGlobalContext(prog)
	requireErrContains(t, err, "duplicate resource definition 'F'")
}

func TestBuildGlobalContextRejectsDuplicateFunc(t *testing.T) {
	prog, bag := parseSnippet(t, `
fn helper()->unit{}
fn helper()->unit{}
fn main()->unit{}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}
	_, err := BuildGlobalContext(prog)
	requireErrContains(t, err, "duplicate function definition 'helper'")
}

// A struct and a function may legally share one name: the three namespaces
// are tracked independently.
func TestBuildGlobalContextAllowsStructFuncNameOverlap(t *testing.T) {
	prog, bag := parseSnippet(t, `
struct Point{x:int}
fn Point()->unit{}
fn main()->unit{}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}
	if _, err := BuildGlobalContext(prog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFieldsOfResolvesBothNamespaces(t *testing.T) {
	gc := buildGC(t, `
struct Point{x:int,y:int}
resource File{fd:int}
fn main()->unit{}
`)
	if fields := gc.fieldsOf("Point"); len(fields) != 2 {
		t.Fatalf("expected 2 fields for Point, got %d", len(fields))
	}
	if fields := gc.fieldsOf("File"); len(fields) != 1 {
		t.Fatalf("expected 1 field for File, got %d", len(fields))
	}
	if fields := gc.fieldsOf("Ghost"); fields != nil {
		t.Fatalf("expected nil fields for an unknown name, got %v", fields)
	}
}

func TestValidateMainMissing(t *testing.T) {
	gc := buildGC(t, `fn notmain()->unit{}`)
	err := gc.ValidateMain()
	requireErrContains(t, err, "No 'main' function found")
}

func TestValidateMainWithParameters(t *testing.T) {
	gc := buildGC(t, `fn main(x:int)->unit{}`)
	err := gc.ValidateMain()
	requireErrContains(t, err, "'main' function cannot have parameters")
}

func TestValidateMainOK(t *testing.T) {
	gc := buildGC(t, `fn main()->unit{}`)
	if err := gc.ValidateMain(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
