package source

import (
	"testing"
)

func TestInternerBasic(t *testing.T) {
	interner := NewInterner()

	if s, ok := interner.Lookup(NoStringID); !ok || s != "" {
		t.Errorf("NoStringID should map to the empty string, got %q, ok=%v", s, ok)
	}

	id1 := interner.Intern("hello")
	if id1 == NoStringID {
		t.Error("Intern should not return NoStringID for a non-empty string")
	}

	id2 := interner.Intern("hello")
	if id1 != id2 {
		t.Errorf("Intern should return the same ID for equal strings: %d != %d", id1, id2)
	}

	if s, ok := interner.Lookup(id1); !ok || s != "hello" {
		t.Errorf("Lookup returned the wrong string: %q, ok=%v", s, ok)
	}

	id3 := interner.Intern("world")
	if id3 == id1 {
		t.Error("distinct strings should get distinct IDs")
	}

	if interner.Len() != 3 { // "", "hello", "world"
		t.Errorf("Len should be 3, got %d", interner.Len())
	}
}

func TestInternerBytes(t *testing.T) {
	interner := NewInterner()

	id1 := interner.InternBytes([]byte("test"))
	id2 := interner.Intern("test")

	if id1 != id2 {
		t.Errorf("InternBytes and Intern should agree on the ID for the same string: %d != %d", id1, id2)
	}
}

func TestInternerHas(t *testing.T) {
	interner := NewInterner()

	if !interner.Has(NoStringID) {
		t.Error("Has should return true for NoStringID")
	}

	id := interner.Intern("test")
	if !interner.Has(id) {
		t.Error("Has should return true for a valid ID")
	}

	if interner.Has(StringID(9999)) {
		t.Error("Has should return false for an out-of-range ID")
	}
}

func TestInternerMustLookup(t *testing.T) {
	interner := NewInterner()

	id := interner.Intern("test")
	s := interner.MustLookup(id)
	if s != "test" {
		t.Errorf("MustLookup returned the wrong string: %q", s)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustLookup should panic on an invalid ID")
		}
	}()
	interner.MustLookup(StringID(9999))
}

func TestInternerSnapshot(t *testing.T) {
	interner := NewInterner()

	interner.Intern("hello")
	interner.Intern("world")

	snapshot := interner.Snapshot()
	if len(snapshot) != 3 { // "", "hello", "world"
		t.Errorf("Snapshot should contain 3 elements, got %d", len(snapshot))
	}

	snapshot[0] = "modified"
	if s, _ := interner.Lookup(NoStringID); s != "" {
		t.Error("mutating the snapshot should not affect the interner")
	}
}

func TestInternerStringCopy(t *testing.T) {
	interner := NewInterner()

	buf := []byte("original")
	id := interner.InternBytes(buf)

	buf[0] = 'X'

	if s, ok := interner.Lookup(id); !ok || s != "original" {
		t.Errorf("interner should retain its own copy of the string, got %q", s)
	}
}
