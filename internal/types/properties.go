package types

import "fmt"

// Equal reports whether two TypeIDs from the same interner denote the same
// type. Since every Type is interned, this is just integer equality, but the
// named helper keeps call sites readable and gives future structural
// comparisons (e.g. across interners) one place to live.
func Equal(a, b TypeID) bool {
	return a == b
}

// IsCopy reports whether a value of type t is duplicated on use rather than
// moved. int, bool, and unit are always copy; managed(_) is copy because the
// managed allocation outlives any single owner; a named struct or resource
// is never copy.
func (in *Interner) IsCopy(id TypeID) bool {
	t, ok := in.Lookup(id)
	if !ok {
		return false
	}
	switch t.Kind {
	case KindInt, KindBool, KindUnit, KindManaged:
		return true
	default:
		return false
	}
}

// IsNamedUserType reports whether id refers to a declared struct or
// resource, as opposed to one of the three primitives or a managed wrapper.
func (in *Interner) IsNamedUserType(id TypeID) bool {
	t, ok := in.Lookup(id)
	return ok && t.Kind == KindNamed
}

// String renders id using the same spelling the surface language accepts,
// e.g. "int", "Point", or "managed Point". Diagnostics quote this string
// verbatim, so its exact form is part of the checker's observable contract.
func (in *Interner) String(id TypeID) string {
	t, ok := in.Lookup(id)
	if !ok {
		return "<invalid>"
	}
	switch t.Kind {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindUnit:
		return "unit"
	case KindNamed:
		return t.Name
	case KindManaged:
		return "managed " + in.String(t.Inner)
	default:
		return fmt.Sprintf("<kind %d>", t.Kind)
	}
}
