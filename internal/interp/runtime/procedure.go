package runtime

import (
	"strings"
	"sync"

	"github.com/cwaldbieser/logopy/internal/parser"
	"github.com/cwaldbieser/logopy/internal/value"
)

// OptionalInput is one `[:name default]` formal parameter: its
// default is a token-sequence, not a resolved Value, because it is
// re-evaluated against the caller's scope chain on every call that
// omits it (spec §4.5.5).
type OptionalInput struct {
	Name    string
	Default []parser.Node
}

// NativeFunc is a primitive's implementation: given the evaluation
// context and already-evaluated arguments, produce a result (nil for
// commands that report their effect only as output, e.g. PRINT).
type NativeFunc func(ctx Context, args []value.Value) (value.Value, error)

// Context is the minimal surface a native primitive needs from the
// evaluator, mirroring the teacher's builtins.Context split that
// keeps primitives decoupled from the concrete evaluator type to
// avoid an import cycle (internal/interp/builtins must not import
// internal/interp/evaluator).
type Context interface {
	Env() *Environment
	// RunBody evaluates a captured node sequence (a procedure body) and
	// returns its OUTPUT value, if any.
	RunBody(body []parser.Node) (value.Value, error)
	// RunValue runs an instructionlist given as an already-evaluated
	// Value, the way RUN/IF/REPEAT/WHILE/... and the template
	// primitives do: a List's elements become a node sequence (no
	// re-lexing needed, since quoted-mode evaluation never altered
	// their spelling), a Word is re-lexed and parsed as source text.
	// Mirrors `_process_run_like` in the reference implementation.
	RunValue(v value.Value) (value.Value, error)
	// CallProcedure invokes a named procedure or primitive with
	// already-evaluated arguments (used by APPLY-style primitives and
	// templates whose form is a bare procedure name).
	CallProcedure(name string, args []value.Value) (value.Value, error)
	NewError(format string, a ...interface{}) error
	// Backend is the installed Turtle-Backend capability (spec §6),
	// reached by every turtle-delegating primitive and by WAIT for its
	// process_events interleaving.
	Backend() Backend
}

// Procedure is either a user-defined TO/END body or a native
// primitive, per spec §3's Procedure entity.
type Procedure struct {
	Name           string
	RequiredInputs []string
	OptionalInputs []OptionalInput
	RestInput      string // "" if there is none
	DefaultArity   int

	// Variadic marks a primitive that reads len(args) itself and
	// accepts any number of actuals at or above RequiredInputs in a
	// parenthesised call (e.g. WORD/SENTENCE/LIST/AND/OR), without
	// binding a named rest input the way a user-defined procedure's
	// `[:rest]` formal would.
	Variadic bool

	Body   []parser.Node // nil for a primitive
	Native NativeFunc    // nil for a user-defined procedure
}

// IsPrimitive reports whether this Procedure wraps a native function.
func (p *Procedure) IsPrimitive() bool { return p.Native != nil }

// MinArity is the number of required inputs.
func (p *Procedure) MinArity() int { return len(p.RequiredInputs) }

// MaxArity is required+optional inputs, or -1 (unbounded) when a rest
// input collects any extra actuals or the primitive is Variadic.
func (p *Procedure) MaxArity() int {
	if p.RestInput != "" || p.Variadic {
		return -1
	}
	return len(p.RequiredInputs) + len(p.OptionalInputs)
}

// String renders the procedure's `TO` signature line, e.g. for SAVE
// and for error messages that quote a procedure's shape.
func (p *Procedure) String() string {
	var sb strings.Builder
	sb.WriteString("to ")
	sb.WriteString(p.Name)
	for _, name := range p.RequiredInputs {
		sb.WriteString(" :")
		sb.WriteString(name)
	}
	for _, opt := range p.OptionalInputs {
		sb.WriteString(" [:")
		sb.WriteString(opt.Name)
		sb.WriteString(" ...]")
	}
	if p.RestInput != "" {
		sb.WriteString(" [:")
		sb.WriteString(p.RestInput)
		sb.WriteString("]")
	}
	return sb.String()
}

// Table is a case-insensitive, concurrency-safe procedure registry
// holding both primitives and user-defined procedures, mirroring the
// teacher's builtins.Registry.
type Table struct {
	mu    sync.RWMutex
	procs map[string]*Procedure
}

// NewTable creates an empty procedure table.
func NewTable() *Table {
	return &Table{procs: make(map[string]*Procedure)}
}

// Define installs or replaces a procedure, case-insensitively.
func (t *Table) Define(p *Procedure) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.procs[strings.ToLower(p.Name)] = p
}

// Lookup returns the procedure named name (case-insensitive), if any.
func (t *Table) Lookup(name string) (*Procedure, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.procs[strings.ToLower(name)]
	return p, ok
}

// Erase removes a procedure definition.
func (t *Table) Erase(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.procs, strings.ToLower(name))
}

// Names returns every defined procedure name in the table, in no
// particular order; callers that need a stable order (POTS) sort it
// themselves.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.procs))
	for name := range t.procs {
		names = append(names, name)
	}
	return names
}
