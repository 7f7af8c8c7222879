// Package token defines the lexical vocabulary of Ash: the Kind enum, its
// printable form for diagnostics, keyword lookup, and the Token record the
// lexer emits.
package token
