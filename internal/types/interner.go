package types

import (
	"fmt"

	"fortio.org/safecast"
)

// NominalKind distinguishes the two kinds of user-declared named types.
type NominalKind uint8

const (
	NominalStruct NominalKind = iota
	NominalResource
)

// Builtins holds the TypeIDs of the sum's three primitive members.
type Builtins struct {
	Int  TypeID
	Bool TypeID
	Unit TypeID
}

// nominalInfo records which declaration a KindNamed type refers to, so the
// checker can tell a struct apart from a resource without re-parsing names.
type nominalInfo struct {
	name string
	kind NominalKind
}

// Interner assigns stable TypeIDs to structurally distinct Types.
type Interner struct {
	types    []Type
	index    map[typeKey]TypeID
	builtins Builtins
	nominals map[string]nominalInfo
}

type typeKey struct {
	Kind  Kind
	Name  string
	Inner TypeID
}

// NewInterner constructs an interner seeded with the three primitive types.
func NewInterner() *Interner {
	in := &Interner{
		index:    make(map[typeKey]TypeID, 16),
		nominals: make(map[string]nominalInfo, 8),
	}
	in.internRaw(Type{Kind: KindInvalid}) // reserve slot 0 as the invalid sentinel
	in.builtins.Int = in.Intern(Type{Kind: KindInt})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Unit = in.Intern(Type{Kind: KindUnit})
	return in
}

// Builtins returns the TypeIDs of int, bool, and unit.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern returns the stable TypeID for t, allocating a new slot on first
// sight of this structural shape.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	key := typeKey{Kind: t.Kind, Name: t.Name, Inner: t.Inner}
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internRaw(t)
}

func (in *Interner) internRaw(t Type) TypeID {
	idx, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("types: interner overflow: %w", err))
	}
	id := TypeID(idx)
	in.types = append(in.types, t)
	key := typeKey{Kind: t.Kind, Name: t.Name, Inner: t.Inner}
	in.index[key] = id
	return id
}

// Lookup returns the descriptor stored for id.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics if id is not a valid TypeID from this interner.
func (in *Interner) MustLookup(id TypeID) Type {
	t, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return t
}

// DeclareNominal registers name as a struct or resource and returns its
// interned TypeID. Calling it twice for the same name is a no-op that
// returns the existing TypeID; the checker is responsible for rejecting
// duplicate top-level definitions before this is reached.
func (in *Interner) DeclareNominal(name string, kind NominalKind) TypeID {
	if _, ok := in.nominals[name]; !ok {
		in.nominals[name] = nominalInfo{name: name, kind: kind}
	}
	return in.Intern(MakeNamed(name))
}

// NominalKindOf reports whether name was declared as a struct or a resource.
func (in *Interner) NominalKindOf(name string) (NominalKind, bool) {
	info, ok := in.nominals[name]
	return info.kind, ok
}

// IsResource reports whether the named type id refers to is a resource.
// Returns false for any non-KindNamed type or an unregistered name.
func (in *Interner) IsResource(id TypeID) bool {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindNamed {
		return false
	}
	kind, ok := in.NominalKindOf(t.Name)
	return ok && kind == NominalResource
}
