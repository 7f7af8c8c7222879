package diag

import "fmt"

// Code identifies a distinct diagnostic kind. Ranges mirror the pipeline
// stage that raises them: lexical, syntactic, then semantic (the
// ownership/type checker, the only stage this module implements in full).
type Code uint16

const (
	// UnknownCode marks a diagnostic that was not constructed through one of
	// the named codes below.
	UnknownCode Code = 0

	// Lexical.
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Syntactic.
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynUnclosedParen    Code = 2002
	SynUnclosedBrace    Code = 2003
	SynExpectSemicolon  Code = 2004
	SynExpectIdentifier Code = 2005

	// Semantic — the ownership/type checker's CheckError taxonomy.
	SemaInfo                          Code = 3000
	SemaDuplicateDefinition           Code = 3001
	SemaUnknownType                   Code = 3002
	SemaUnknownFieldInStructLiteral   Code = 3003
	SemaFieldSetMismatch              Code = 3004
	SemaUndefinedVariable             Code = 3005
	SemaDuplicateLocalBinding         Code = 3006
	SemaUseOfMovedValue               Code = 3007
	SemaTypeMismatch                  Code = 3008
	SemaArityMismatch                 Code = 3009
	SemaDynamicCallNotSupported       Code = 3010
	SemaNoSuchFunction                Code = 3011
	SemaFieldAccessOnNonStruct        Code = 3012
	SemaFieldAccessOnManagedNonStruct Code = 3013
	SemaAssignToImmutable             Code = 3014
	SemaMutableBorrowOfImmutable      Code = 3015
	SemaAssignTargetNotAPlace         Code = 3016
	SemaMoveFromBorrowed              Code = 3017
	SemaMoveAlreadyMoved              Code = 3018
	SemaBorrowConflict                Code = 3019
	SemaResourceNotManageable         Code = 3020
	SemaEqualityOperandsNotCopyKind   Code = 3021
	SemaArithmeticOperandsNotInt      Code = 3022
	SemaReturnOutsideFunction         Code = 3023
	SemaMainMissing                   Code = 3024
	SemaMainHasParameters             Code = 3025
)

var codeTitle = map[Code]string{
	UnknownCode:                       "unknown error",
	LexInfo:                           "lexical information",
	LexUnknownChar:                    "unrecognized character",
	LexUnterminatedString:             "unterminated string literal",
	LexBadNumber:                      "malformed numeric literal",
	SynInfo:                           "syntax information",
	SynUnexpectedToken:                "unexpected token",
	SynUnclosedParen:                  "unclosed parenthesis",
	SynUnclosedBrace:                  "unclosed brace",
	SynExpectSemicolon:                "expected ';'",
	SynExpectIdentifier:               "expected identifier",
	SemaInfo:                          "semantic information",
	SemaDuplicateDefinition:           "duplicate top-level definition",
	SemaUnknownType:                   "unknown type",
	SemaUnknownFieldInStructLiteral:   "unknown field in struct literal",
	SemaFieldSetMismatch:              "struct literal field set mismatch",
	SemaUndefinedVariable:             "undefined variable",
	SemaDuplicateLocalBinding:         "duplicate local binding",
	SemaUseOfMovedValue:               "use of moved value",
	SemaTypeMismatch:                  "type mismatch",
	SemaArityMismatch:                 "argument arity mismatch",
	SemaDynamicCallNotSupported:       "dynamic call not supported",
	SemaNoSuchFunction:                "no such function",
	SemaFieldAccessOnNonStruct:        "field access on non-struct",
	SemaFieldAccessOnManagedNonStruct: "field access on managed non-struct",
	SemaAssignToImmutable:             "cannot assign to immutable binding",
	SemaMutableBorrowOfImmutable:      "mutable borrow of immutable binding",
	SemaAssignTargetNotAPlace:         "assignment target is not a place",
	SemaMoveFromBorrowed:              "cannot move from a borrowed value",
	SemaMoveAlreadyMoved:              "cannot move an already-moved value",
	SemaBorrowConflict:                "borrow conflict",
	SemaResourceNotManageable:         "resource cannot be allocated as managed",
	SemaEqualityOperandsNotCopyKind:   "equality requires copy-kind operands",
	SemaArithmeticOperandsNotInt:      "arithmetic requires int operands",
	SemaReturnOutsideFunction:         "return outside of a function",
	SemaMainMissing:                   "missing 'main' function",
	SemaMainHasParameters:             "'main' function has parameters",
}

// ID renders the stable, stage-prefixed string form of the code, e.g.
// "SEM3007". Tests and external tooling may rely on this exact spelling.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	}
	return "E0000"
}

// Title returns the short human-readable description registered for c.
func (c Code) Title() string {
	if title, ok := codeTitle[c]; ok {
		return title
	}
	return codeTitle[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
