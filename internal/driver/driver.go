// Package driver wires the lexer, parser, and checker into the single
// entry point the CLI commands call, the way the teacher's own
// internal/driver fronts its tokenize/parse/diag commands.
package driver

import (
	"ash/internal/ast"
	"ash/internal/diag"
	"ash/internal/parser"
	"ash/internal/sema"
	"ash/internal/source"
	"ash/internal/typedprog"
)

// CheckResult bundles everything a CLI command needs to report on one file.
type CheckResult struct {
	FileSet *source.FileSet
	Bag     *diag.Bag
	Program *ast.Program
	Typed   *typedprog.Program // nil if checking failed
}

// Check loads path, parses it, and runs the ownership/type checker. Syntax
// errors are collected in the returned Bag; at most one semantic error is
// ever reported, since sema.Check fails fast.
func Check(path string, maxDiagnostics int) (*CheckResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	p := parser.New(file, reporter)
	prog := p.Parse()

	result := &CheckResult{FileSet: fs, Bag: bag, Program: prog}
	if bag.HasErrors() {
		return result, nil
	}

	typed, cerr := sema.Check(prog)
	if cerr != nil {
		cerr.Report(reporter)
		return result, nil
	}
	result.Typed = typed
	return result, nil
}
