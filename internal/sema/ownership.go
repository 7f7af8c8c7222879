package sema

import (
	"ash/internal/diag"
	"ash/internal/source"
	"ash/internal/types"
)

// VarState is one of the four states a binding's VarInfo can occupy.
type VarState uint8

const (
	Owned VarState = iota
	Moved
	BorrowedRead
	BorrowedWrite
)

// VarInfo is the ownership engine's central per-variable record.
type VarInfo struct {
	Type    types.TypeID
	State   VarState
	Mutable bool
	DefSite source.Span
}

// frame is one entry in the scope stack. vars holds every binding visible
// at this point (inherited bindings are deep-copied in on entry), so a
// lookup never has to walk outward; own tracks which names were declared
// directly in this frame, which is what the "no shadowing within one
// block" rule checks against.
type frame struct {
	vars map[string]VarInfo
	own  map[string]bool
}

// Engine is the per-function ownership engine: a stack of scope frames,
// entirely private to the function being checked, with no mutable state
// shared across functions.
type Engine struct {
	stack []frame
}

// NewEngine starts an engine with a single (function-body) frame.
func NewEngine() *Engine {
	e := &Engine{}
	e.EnterScope()
	return e
}

// EnterScope pushes a deep copy of the current frame, so mutations inside
// the new scope never alias the parent's records.
func (e *Engine) EnterScope() {
	f := frame{vars: make(map[string]VarInfo), own: make(map[string]bool)}
	if n := len(e.stack); n > 0 {
		for k, v := range e.stack[n-1].vars {
			f.vars[k] = v
		}
	}
	e.stack = append(e.stack, f)
}

// LeaveScope discards the current frame. Any state changes made inside it
// — moves, new bindings — vanish with it; this is a deliberately
// non-flow-sensitive block-scoping model.
func (e *Engine) LeaveScope() {
	if len(e.stack) == 0 {
		return
	}
	e.stack = e.stack[:len(e.stack)-1]
}

func (e *Engine) top() *frame {
	return &e.stack[len(e.stack)-1]
}

// Lookup returns the binding for name in the current scope.
func (e *Engine) Lookup(name string) (VarInfo, bool) {
	v, ok := e.top().vars[name]
	return v, ok
}

// Declare introduces a new binding in the current frame. It rejects a
// second declaration of the same name within the same block; shadowing a
// binding from an enclosing scope is permitted, since entering a child
// scope already starts a fresh `own` set.
func (e *Engine) Declare(name string, info VarInfo) *CheckError {
	f := e.top()
	if f.own[name] {
		return newErr(diag.SemaDuplicateLocalBinding, info.DefSite, "duplicate local binding '%s'", name)
	}
	f.vars[name] = info
	f.own[name] = true
	return nil
}

// set overwrites an existing binding's record in place.
func (e *Engine) set(name string, info VarInfo) {
	e.top().vars[name] = info
}

// CheckRead enforces that reading a variable is legal from any state
// except Moved.
func (e *Engine) CheckRead(name string, span source.Span) *CheckError {
	v, ok := e.Lookup(name)
	if !ok {
		return newErr(diag.SemaUndefinedVariable, span, "undefined variable '%s'", name)
	}
	if v.State == Moved {
		return newErr(diag.SemaUseOfMovedValue, span, "Use of moved value '%s'", name)
	}
	return nil
}

// Move transitions an Owned variable to Moved. Moving a non-variable
// source (a temporary) never reaches this — callers only invoke Move when
// the move's source is an ast.ExprVar.
func (e *Engine) Move(name string, span source.Span) *CheckError {
	v, ok := e.Lookup(name)
	if !ok {
		return newErr(diag.SemaUndefinedVariable, span, "undefined variable '%s'", name)
	}
	switch v.State {
	case Owned:
		v.State = Moved
		e.set(name, v)
		return nil
	case Moved:
		return newErr(diag.SemaMoveAlreadyMoved, span, "Cannot move an already-moved value '%s'", name)
	case BorrowedRead, BorrowedWrite:
		return newErr(diag.SemaMoveFromBorrowed, span, "Cannot move from a borrowed value '%s'", name)
	default:
		return newErr(diag.SemaMoveFromBorrowed, span, "Cannot move '%s'", name)
	}
}

// BorrowRead validates a `ref` borrow of name; the variable's own state is
// unaffected by a read borrow.
func (e *Engine) BorrowRead(name string, span source.Span) *CheckError {
	v, ok := e.Lookup(name)
	if !ok {
		return newErr(diag.SemaUndefinedVariable, span, "undefined variable '%s'", name)
	}
	switch v.State {
	case Owned, BorrowedRead:
		return nil
	case Moved:
		return newErr(diag.SemaBorrowConflict, span, "cannot borrow moved value '%s'", name)
	case BorrowedWrite:
		return newErr(diag.SemaBorrowConflict, span, "immutable borrow conflicts with an existing mutable borrow of '%s'", name)
	default:
		return newErr(diag.SemaBorrowConflict, span, "cannot borrow '%s'", name)
	}
}

// BorrowWrite validates an `inout` borrow of name: legal only from Owned,
// and only when the binding is itself mutable.
func (e *Engine) BorrowWrite(name string, span source.Span) *CheckError {
	v, ok := e.Lookup(name)
	if !ok {
		return newErr(diag.SemaUndefinedVariable, span, "undefined variable '%s'", name)
	}
	switch v.State {
	case Owned:
		if !v.Mutable {
			return newErr(diag.SemaMutableBorrowOfImmutable, span, "mutable borrow of immutable binding '%s'", name)
		}
		return nil
	case Moved:
		return newErr(diag.SemaBorrowConflict, span, "cannot borrow moved value '%s'", name)
	case BorrowedRead:
		return newErr(diag.SemaBorrowConflict, span, "mutable borrow conflicts with an existing immutable borrow of '%s'", name)
	case BorrowedWrite:
		return newErr(diag.SemaBorrowConflict, span, "mutable borrow conflicts with an existing mutable borrow of '%s'", name)
	default:
		return newErr(diag.SemaBorrowConflict, span, "cannot borrow '%s'", name)
	}
}

// CheckAssignable enforces that name is a mutable place: a moved variable,
// or one whose binding is not mutable (including a `ref` parameter), cannot
// be written.
func (e *Engine) CheckAssignable(name string, span source.Span) *CheckError {
	v, ok := e.Lookup(name)
	if !ok {
		return newErr(diag.SemaUndefinedVariable, span, "undefined variable '%s'", name)
	}
	if v.State == Moved {
		return newErr(diag.SemaUseOfMovedValue, span, "Use of moved value '%s'", name)
	}
	if !v.Mutable {
		return newErr(diag.SemaAssignToImmutable, span, "Cannot assign to immutable binding '%s'", name)
	}
	return nil
}
