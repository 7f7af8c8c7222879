// Package diag defines the diagnostic model shared by the lexer, parser and
// the ownership/type checker.
//
// Diagnostic is the central record: a Severity, a stage-prefixed Code, a
// human-readable Message, a Primary span, and optional Notes for secondary
// context. Fix is left as a data-only stub — this module never proposes
// automated fixes, but the shape matches the teacher lineage's fix-suggestion
// record so future tooling can slot in without changing the Reporter
// contract.
//
// Producers emit through the Reporter interface so the checker stays
// decoupled from how diagnostics are stored or rendered; Bag is the
// reference sink (BagReporter adapts it to Reporter), and internal/diagfmt
// renders a Bag to text.
package diag
