// Package types interns the closed set of types a checked Ash program can
// mention: int, bool, unit, a named struct/resource, or managed(inner).
// Interning gives every distinct type a stable TypeID so the checker can
// compare types with a plain integer equality instead of walking structures.
package types

import "fmt"

// TypeID uniquely identifies a type inside an Interner.
type TypeID uint32

// NoTypeID marks the absence of a resolved type.
const NoTypeID TypeID = 0

// Kind enumerates the members of the closed type sum.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindBool
	KindUnit
	KindNamed
	KindManaged
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindUnit:
		return "unit"
	case KindNamed:
		return "named"
	case KindManaged:
		return "managed"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Type is a compact descriptor for one member of the sum. Name is set only
// for KindNamed; Inner is set only for KindManaged and points at the
// interned element type.
type Type struct {
	Kind  Kind
	Name  string
	Inner TypeID
}

// MakeNamed describes a reference to a user-declared struct or resource.
func MakeNamed(name string) Type {
	return Type{Kind: KindNamed, Name: name}
}

// MakeManaged describes managed(inner).
func MakeManaged(inner TypeID) Type {
	return Type{Kind: KindManaged, Inner: inner}
}
