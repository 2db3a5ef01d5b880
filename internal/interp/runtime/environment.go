// Package runtime holds the interpreter's live state during
// evaluation: the dynamic scope stack, the REPCOUNT stack, the
// placeholder stack used by templates, and the procedure table.
//
// None of this package knows how to parse or evaluate a program — it
// is pure bookkeeping, kept separate from internal/interp/evaluator
// the way the teacher keeps its call-stack bookkeeping
// (internal/interp/evaluator/callstack.go) separate from the visitor
// that drives it.
package runtime

import (
	"fmt"

	"github.com/cwaldbieser/logopy/internal/value"
)

// Scope maps a variable name to its Value. A key present with a nil
// Value means the name has been declared (by LOCAL, or a template
// parameter with no matching datum) but never assigned — reading it
// is an error distinct from "no such variable".
type Scope map[string]value.Value

// Environment is the interpreter's mutable execution state: the
// dynamic scope chain plus the REPCOUNT and placeholder stacks that
// back REPEAT/FOREACH/MAP/FILTER/... and template `?`/`?N` resolution.
type Environment struct {
	scopes       []Scope
	repcounts    []int
	placeholders [][]value.Value
}

// NewEnvironment creates an Environment with a single, never-popped
// global scope.
func NewEnvironment() *Environment {
	return &Environment{scopes: []Scope{make(Scope)}}
}

// PushScope enters a new, empty innermost scope (procedure call,
// template expansion, FOR-loop parameter binding).
func (e *Environment) PushScope() {
	e.scopes = append(e.scopes, make(Scope))
}

// PopScope leaves the innermost scope. Popping the global scope is a
// programming error in the evaluator, not a user-facing one, so it
// panics rather than silently corrupting state.
func (e *Environment) PopScope() {
	if len(e.scopes) <= 1 {
		panic("runtime: attempted to pop the global scope")
	}
	e.scopes = e.scopes[:len(e.scopes)-1]
}

// Depth reports how many scopes are currently on the stack (1 means
// only the global scope is live).
func (e *Environment) Depth() int { return len(e.scopes) }

// Get searches the scope chain innermost-first for name.
func (e *Environment) Get(name string) (value.Value, error) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if v, ok := e.scopes[i][name]; ok {
			if v == nil {
				return nil, fmt.Errorf("`%s` has no value", name)
			}
			return v, nil
		}
	}
	return nil, fmt.Errorf("no scope has a variable named `%s`", name)
}

// Make implements MAKE: if name is already bound somewhere on the
// scope chain, overwrite it there; otherwise create it in the global
// scope. This is the "search, then fall back to global" rule that
// distinguishes MAKE from LOCALMAKE.
func (e *Environment) Make(name string, v value.Value) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if _, ok := e.scopes[i][name]; ok {
			e.scopes[i][name] = v
			return
		}
	}
	e.scopes[0][name] = v
}

// LocalMake implements LOCALMAKE: always write to the innermost
// scope, regardless of whether name is already bound elsewhere.
func (e *Environment) LocalMake(name string, v value.Value) {
	e.scopes[len(e.scopes)-1][name] = v
}

// Local implements LOCAL: declare names in the innermost scope,
// unbound until assigned.
func (e *Environment) Local(names ...string) {
	innermost := e.scopes[len(e.scopes)-1]
	for _, name := range names {
		innermost[name] = nil
	}
}

// Innermost returns the innermost scope, for callers (procedure call
// setup) that need to bind several names directly.
func (e *Environment) Innermost() Scope { return e.scopes[len(e.scopes)-1] }

// GlobalScope returns the outermost, never-popped scope, for SAVE's
// dump of global variables back to `MAKE "name value` text.
func (e *Environment) GlobalScope() Scope { return e.scopes[0] }

// GetFromScopeChainExcludingInnermost resolves a default-parameter
// reference: "a default that is a token sequence beginning with
// `:other` resolves `other` in the caller's scope chain at this
// moment" (spec §4.5.5) — i.e. against the scope chain as it stood
// before the new call frame's scope was pushed.
func (e *Environment) GetFromScopeChainExcludingInnermost(name string) (value.Value, error) {
	for i := len(e.scopes) - 2; i >= 0; i-- {
		if v, ok := e.scopes[i][name]; ok {
			if v == nil {
				return nil, fmt.Errorf("`%s` has no value", name)
			}
			return v, nil
		}
	}
	return nil, fmt.Errorf("no scope has a variable named `%s`", name)
}

// CreateRepcountScope pushes a fresh REPCOUNT frame, initialized to
// -1 (no iteration has happened yet).
func (e *Environment) CreateRepcountScope() {
	e.repcounts = append(e.repcounts, -1)
}

// DestroyRepcountScope pops the innermost REPCOUNT frame.
func (e *Environment) DestroyRepcountScope() {
	if len(e.repcounts) == 0 {
		return
	}
	e.repcounts = e.repcounts[:len(e.repcounts)-1]
}

// SetRepcount sets the innermost REPCOUNT frame's value.
func (e *Environment) SetRepcount(n int) {
	if len(e.repcounts) == 0 {
		return
	}
	e.repcounts[len(e.repcounts)-1] = n
}

// GetRepcount returns the innermost REPCOUNT value, or -1 if no
// REPEAT/FOREACH/MAP/FILTER/... frame is active.
func (e *Environment) GetRepcount() int {
	if len(e.repcounts) == 0 {
		return -1
	}
	return e.repcounts[len(e.repcounts)-1]
}

// PushPlaceholders pushes a new template-invocation tuple, backing
// `?`/`?N` resolution during one iteration of FILTER/FIND/FOREACH/MAP/
// MAP.SE/REDUCE/CASCADE.
func (e *Environment) PushPlaceholders(tuple []value.Value) {
	e.placeholders = append(e.placeholders, tuple)
}

// PopPlaceholders pops the innermost placeholder tuple.
func (e *Environment) PopPlaceholders() {
	if len(e.placeholders) == 0 {
		return
	}
	e.placeholders = e.placeholders[:len(e.placeholders)-1]
}

// GetPlaceholder returns the 0-based nth datum of the innermost
// template tuple.
func (e *Environment) GetPlaceholder(n int) (value.Value, error) {
	if len(e.placeholders) == 0 {
		return nil, fmt.Errorf("no template is active")
	}
	tuple := e.placeholders[len(e.placeholders)-1]
	if n < 0 || n >= len(tuple) {
		return nil, fmt.Errorf("placeholder ?%d is out of range for a %d-element template tuple", n+1, len(tuple))
	}
	return tuple[n], nil
}
