// Package sema implements Ash's ownership/type checker: the global-context
// builder, the type resolver, the ownership engine, and the expression and
// statement checker that drives it over the AST. The package reports
// through a single CheckError kind; callers that need the fuller diag.Code
// taxonomy for tooling can read it off CheckError.Code.
package sema

import (
	"fmt"

	"ash/internal/diag"
	"ash/internal/source"
)

// CheckError is the single error kind the checker surfaces externally.
// Code retains the internal taxonomy so tests and tooling can categorize
// failures without string-matching on Message, even though Message itself
// is also part of the documented contract.
type CheckError struct {
	Code    diag.Code
	Message string
	Span    source.Span
	HasSpan bool
}

func (e *CheckError) Error() string {
	return e.Message
}

func newErr(code diag.Code, span source.Span, format string, args ...any) *CheckError {
	return &CheckError{Code: code, Message: fmt.Sprintf(format, args...), Span: span, HasSpan: true}
}

// newErrNoSpan is for structural errors with no single offending location,
// e.g. a missing 'main' function.
func newErrNoSpan(code diag.Code, format string, args ...any) *CheckError {
	return &CheckError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Report forwards e to r using its own code, span, and message, so the CLI
// can render every CheckError through the same diag.Reporter/Bag pipeline
// used by the lexer and parser (see cmd/ash and internal/diagfmt).
func (e *CheckError) Report(r diag.Reporter) {
	if e == nil || r == nil {
		return
	}
	r.Report(e.Code, diag.SevError, e.Span, e.Message, nil, nil)
}
