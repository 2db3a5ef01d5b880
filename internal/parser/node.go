// Package parser turns a token stream from internal/lexer into a tree
// of Nodes the evaluator walks directly: Atom/Number leaves, List
// literals (quoted, un-evaluated contents), Groups (a parenthesised
// sequence evaluated as one expression), and Special-forms (a
// parenthesised command invocation with explicit, possibly
// non-default, arity).
package parser

import "github.com/cwaldbieser/logopy/pkg/token"

// Node is any element of a parsed token tree.
type Node interface {
	Position() token.Position
}

// Atom is a bare word: a command name, a `:variable` reference, a
// `"literal`, or (inside a Group's item list) an infix operator
// spelled out as its own token. Kind records the originating lexer
// token kind so the evaluator can tell an operator atom from an
// ordinary word without re-parsing its text.
type Atom struct {
	Text string
	Kind token.Kind
	Pos  token.Position
}

func (a Atom) Position() token.Position { return a.Pos }

// IsCommandWord reports whether a behaves as a callable command name:
// an ordinary word, not a `:variable` reference or a `"literal`.
func (a Atom) IsCommandWord() bool {
	if a.Kind != token.WORD {
		return false
	}
	if len(a.Text) == 0 {
		return false
	}
	switch a.Text[0] {
	case ':', '"':
		return false
	default:
		return true
	}
}

// Number is a numeric literal, already parsed to a float64.
type Number struct {
	Text  string
	Value float64
	Pos   token.Position
}

func (n Number) Position() token.Position { return n.Pos }

// ListLit is a `[ ... ]` literal. Its contents are parsed in quoted
// mode: words and numbers are kept exactly as written, with no infix
// or command interpretation; nested lists recurse.
type ListLit struct {
	Items []Node
	Pos   token.Position
}

func (l ListLit) Position() token.Position { return l.Pos }

// Group is a `( ... )` form whose first element is not a command atom
// (a number, `:var`, `"literal`, nested list/group/special-form), or
// whose second element is an infix operator even though the first
// element looks like a command (the `(heading * -1 + 90)` case). A
// Group is evaluated as one expression via the evaluator's ordinary
// infix-aware `evaluate`. A leading command atom on its own, with no
// following items, is NOT a Group — `(heading)` is a 0-arg SpecialForm.
type Group struct {
	Items []Node
	Pos   token.Position
}

func (g Group) Position() token.Position { return g.Pos }

// SpecialForm is a `( command arg1 arg2 ... )` form: command is
// dispatched with exactly len(Args) arguments, overriding its usual
// default arity.
type SpecialForm struct {
	Name string
	Args []Node
	Pos  token.Position
}

func (s SpecialForm) Position() token.Position { return s.Pos }
