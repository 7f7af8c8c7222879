package sema

import (
	"strings"
	"testing"

	"ash/internal/ast"
	"ash/internal/diag"
	"ash/internal/parser"
	"ash/internal/source"
	"ash/internal/typedprog"
)

// parseSnippet parses src as a virtual file and returns the resulting
// Program alongside the bag any syntax errors were reported into.
func parseSnippet(t *testing.T, src string) (*ast.Program, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("snippet.ash", []byte(src))
	file := fs.Get(fileID)

	bag := diag.NewBag(64)
	p := parser.New(file, diag.BagReporter{Bag: bag})
	prog := p.Parse()
	return prog, bag
}

// checkSnippet parses and checks src, failing the test if parsing itself
// reported any diagnostic (every scenario below is syntactically valid by
// construction).
func checkSnippet(t *testing.T, src string) (*typedprog.Program, *CheckError) {
	t.Helper()
	prog, bag := parseSnippet(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors for snippet: %v", bag.Items())
	}
	return Check(prog)
}

func requireErrContains(t *testing.T, err *CheckError, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error containing %q, got none", substr)
	}
	if !strings.Contains(err.Message, substr) {
		t.Fatalf("expected error to contain %q, got %q", substr, err.Message)
	}
}

func requireOK(t *testing.T, err *CheckError) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// S1: moving p into p2 makes p2 an immutable binding; writing p2.x is
// rejected for immutability, regardless of the move.
func TestScenarioMoveThenAssignToAlias(t *testing.T) {
	_, err := checkSnippet(t, `
struct P{x:int,y:int}
fn main()->unit{
    let mut p=P{x:10,y:20};
    let p2=p;
    p2.x=30;
}
`)
	requireErrContains(t, err, "Cannot assign")
}

// S2: reading a moved variable as a println argument is still a read.
func TestScenarioUseAfterMove(t *testing.T) {
	_, err := checkSnippet(t, `
struct P{x:int,y:int}
fn main()->unit{
    let mut p=P{x:10,y:20};
    let p2=p;
    println("{}", p);
}
`)
	requireErrContains(t, err, "Use of moved value")
}

// S3: a struct literal nested inside a managed literal's field is lifted
// to managed, and field access off a managed object lifts a named-type
// field the same way.
func TestScenarioNestedManagedPropagation(t *testing.T) {
	_, err := checkSnippet(t, `
struct Bar{val:int}
struct Foo{bar:Bar}
fn main()->unit{
    let foo=managed Foo{bar:Bar{val:42}};
    let b:managed Bar=foo.bar;
}
`)
	requireOK(t, err)
}

// S4: a linear value can't fill a managed-boundary slot.
func TestScenarioLinearIntoManagedSlot(t *testing.T) {
	_, err := checkSnippet(t, `
struct Bar{val:int}
struct Foo{bar:Bar}
fn main()->unit{
    let linear_bar=Bar{val:1};
    let foo=managed Foo{bar:linear_bar};
}
`)
	requireErrContains(t, err, "Expected managed Bar but got Bar")
}

// S5: a managed field's access type stays managed even when the
// destination annotation wants the raw type.
func TestScenarioManagedFieldIntoLinearSlot(t *testing.T) {
	_, err := checkSnippet(t, `
struct Bar{val:int}
struct Foo{bar:Bar}
fn main()->unit{
    let foo=managed Foo{bar:Bar{val:42}};
    let c:Bar = foo.bar;
}
`)
	requireErrContains(t, err, "Expected Bar but got managed Bar")
}

// S6: a ref parameter's binding is immutable inside the callee.
func TestScenarioRefParamWriteRejected(t *testing.T) {
	_, err := checkSnippet(t, `
struct Point{x:int,y:int}
fn take_ref(pt:ref Point)->unit{ pt.x=2; }
fn main()->unit{ let p=Point{x:1,y:2}; take_ref(p); }
`)
	requireErrContains(t, err, "Cannot assign")
}

// S7: an inout binding is a borrow, and moving it out to another call is
// rejected.
func TestScenarioInoutConsumedByCall(t *testing.T) {
	_, err := checkSnippet(t, `
struct Point{x:int,y:int}
fn consume(pt:Point)->unit{}
fn take_inout(pt:inout Point)->unit{ consume(pt); }
fn main()->unit{ let mut p=Point{x:1,y:2}; take_inout(p); }
`)
	requireErrContains(t, err, "Cannot move")
}

// S8: resources can never be allocated on the managed heap.
func TestScenarioResourceOnManagedHeap(t *testing.T) {
	_, err := checkSnippet(t, `
resource F{fd:int}
fn main()->unit{ let f:managed F = managed F{fd:6}; }
`)
	requireErrContains(t, err, "cannot be allocated as managed")
}

func TestScenarioMainMissing(t *testing.T) {
	_, err := checkSnippet(t, `
struct P{x:int}
fn notmain()->unit{}
`)
	requireErrContains(t, err, "No 'main' function")
}

func TestScenarioMainHasParameters(t *testing.T) {
	_, err := checkSnippet(t, `
fn main(x:int)->unit{}
`)
	requireErrContains(t, err, "'main' function cannot have parameters")
}

// Determinism: re-checking the same parsed program twice produces the same
// outcome, regardless of how the goroutine fan-out inside Check interleaves.
func TestCheckIsDeterministic(t *testing.T) {
	prog, bag := parseSnippet(t, `
struct P{x:int,y:int}
fn double(p:P)->int{ return p.x+p.x; }
fn main()->unit{ let p=P{x:1,y:2}; let n=double(p); println("{}", n); }
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}

	first, err1 := Check(prog)
	second, err2 := Check(prog)
	requireOK(t, err1)
	requireOK(t, err2)

	if len(first.Funcs) != len(second.Funcs) {
		t.Fatalf("non-deterministic function count: %d vs %d", len(first.Funcs), len(second.Funcs))
	}
	for i := range first.Funcs {
		if first.Funcs[i].ReturnType != second.Funcs[i].ReturnType {
			t.Fatalf("non-deterministic return type for func %d", i)
		}
	}
}

// Equality: 'unit' is comparable, but two named-struct operands are not.
func TestEqualityRejectsNamedTypeOperands(t *testing.T) {
	_, err := checkSnippet(t, `
struct P{x:int}
fn main()->unit{ let a=P{x:1}; let b=P{x:2}; let ok=a==b; }
`)
	requireErrContains(t, err, "equality requires copy-kind operands")
}

func TestEqualityAcceptsIntOperands(t *testing.T) {
	_, err := checkSnippet(t, `
fn main()->unit{ let a=1; let b=2; let ok=a==b; }
`)
	requireOK(t, err)
}
