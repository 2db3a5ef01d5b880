// Package evaluator walks a parsed Logo program: it resolves infix
// arithmetic, dispatches commands to primitives and user-defined
// procedures, and drives the control-flow signals (STOP/OUTPUT/HALT)
// that unwind a call the way a return would.
//
// It is grounded directly on the reference implementation's
// evaluate/evaluate_value/process_command/execute_procedure family of
// methods, split across files the way the teacher splits its own
// tree-walking evaluator (internal/interp/evaluator in the teacher
// repo) into one file per concern.
package evaluator

import (
	"fmt"

	"github.com/cwaldbieser/logopy/internal/interperr"
	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/internal/lexer"
	"github.com/cwaldbieser/logopy/internal/parser"
	"github.com/cwaldbieser/logopy/internal/value"
	"github.com/cwaldbieser/logopy/pkg/token"
)

// Evaluator is the interpreter's single mutable execution engine: one
// per running program, shared by every procedure call and template
// iteration within it.
type Evaluator struct {
	env   *runtime.Environment
	Procs *runtime.Table

	backend runtime.Backend

	Source string
	File   string

	// DebugPrimitives/DebugProcs mirror the reference interpreter's
	// debug_primitives/debug_procs flags: when set, every primitive or
	// user-defined procedure call is traced to the backend's stderr
	// before it runs.
	DebugPrimitives bool
	DebugProcs      bool

	// evaluatingDefault is set while resolving an unsupplied optional
	// parameter's default expression (spec §4.5.5 step 3): while true,
	// a `:name` lookup in evaluateValue searches the caller's scope
	// chain rather than the just-pushed (and still-being-filled)
	// callee scope.
	evaluatingDefault bool
}

// New creates an Evaluator with a fresh global scope, an empty
// procedure table, and a no-op Turtle-Backend. Callers register
// primitives into Procs and call InstallBackend before running a
// program that touches turtle graphics.
func New() *Evaluator {
	return &Evaluator{
		env:     runtime.NewEnvironment(),
		Procs:   runtime.NewTable(),
		backend: runtime.NopBackend{},
	}
}

var _ runtime.Context = (*Evaluator)(nil)

// Env implements runtime.Context.
func (e *Evaluator) Env() *runtime.Environment { return e.env }

// Backend implements runtime.Context.
func (e *Evaluator) Backend() runtime.Backend { return e.backend }

// InstallBackend swaps the Turtle-Backend capability a running
// evaluator delegates to (spec §6's `install_backend`).
func (e *Evaluator) InstallBackend(b runtime.Backend) { e.backend = b }

// NewError builds a LogoError; native primitives have no token
// position of their own, so errors raised from within them carry only
// the message (mirrors the reference implementation, where every
// LogoError is message-only by construction).
func (e *Evaluator) NewError(format string, a ...interface{}) error {
	return interperr.NewLogoError(token.Position{}, fmt.Sprintf(format, a...), e.Source, e.File)
}

// ProcessInstructionList lexes, parses, and runs text as a sequence of
// top-level forms, mirroring process_instructionlist: each form is run
// through ProcessCommands, and the final one's result (if any) is
// returned.
func (e *Evaluator) ProcessInstructionList(text string) (value.Value, error) {
	toks, err := lexer.New(text).Tokenize()
	if err != nil {
		return nil, err
	}
	nodes, err := parser.New(toks, text, e.File).Parse()
	if err != nil {
		return nil, err
	}
	prevSource := e.Source
	e.Source = text
	defer func() { e.Source = prevSource }()
	return e.ProcessCommands(nodes)
}

// ProcessCommands runs a flat node sequence form by form, polling the
// backend's event pump between each one and honoring an
// externally-requested halt the same way HALT itself does. Each form
// goes through evaluate, so a command word dispatches to processCommand
// while an expression such as `:n > 0` or `? * ?` yields its value;
// that value is what RUN, WHILE's test and the templates receive.
func (e *Evaluator) ProcessCommands(nodes []parser.Node) (value.Value, error) {
	c := newCursor(nodes)
	var result value.Value
	for !c.atEnd() {
		v, err := e.evaluate(c)
		if err != nil {
			return nil, err
		}
		result = v
		e.backend.ProcessEvents()
	}
	return result, nil
}

// RunBody implements runtime.Context: run a captured procedure body,
// returning OUTPUT's value if one was raised, nil if STOP was raised
// or the body simply ran out of commands.
func (e *Evaluator) RunBody(body []parser.Node) (value.Value, error) {
	result, err := e.ProcessCommands(body)
	if err != nil {
		if _, ok := err.(interperr.StopSignal); ok {
			return nil, nil
		}
		if out, ok := err.(interperr.OutputSignal); ok {
			v, _ := out.Value.(value.Value)
			return v, nil
		}
		return nil, err
	}
	return result, nil
}

// RunValue implements runtime.Context: run an instructionlist given as
// an already-evaluated Value, the way RUN/IF/REPEAT/WHILE/the template
// primitives do (mirrors `_process_run_like`). A List's elements
// become a node sequence directly (they were never re-spelled by
// quoted-mode evaluation); a Word is re-lexed and parsed as source.
//
// This runs through ProcessCommands, not RunBody: a STOP or OUTPUT
// raised inside the list must unwind past this call and keep
// propagating until it reaches the enclosing procedure call, the way
// `_process_run_like` calls `process_instructionlist`/
// `process_commands` with no signal catch of its own (only
// `execute_procedure` catches). Catching here would turn `if
// :n > 5 [output "big]` inside a procedure into a no-op instead of an
// early return.
func (e *Evaluator) RunValue(v value.Value) (value.Value, error) {
	switch vv := v.(type) {
	case value.List:
		nodes, err := nodesFromValues(vv.Items())
		if err != nil {
			return nil, err
		}
		return e.ProcessCommands(nodes)
	case value.Word:
		return e.ProcessInstructionList(vv.Text)
	default:
		return nil, e.NewError("expected a word or list, but received `%s` instead", value.Repr(v, true, false))
	}
}

// EvaluateQuotedText lexes and parses text, then evaluates the
// resulting node sequence as a single quoted list, the way READLIST
// wraps an input line in `[ ... ]` and evaluates it as a quoted list
// (spec §4.5.9), grounded on `evaluate_readlist` in the reference
// implementation. Exported for pkg/logo, which owns the blocking line
// read READLIST needs and has no other way to reach evaluateQuotedList.
func (e *Evaluator) EvaluateQuotedText(text string) (value.Value, error) {
	toks, err := lexer.New(text).Tokenize()
	if err != nil {
		return nil, err
	}
	nodes, err := parser.New(toks, text, e.File).Parse()
	if err != nil {
		return nil, err
	}
	return e.evaluateQuotedList(nodes)
}

// CallProcedure implements runtime.Context: invoke a named procedure
// or primitive with already-evaluated arguments, bypassing the usual
// default-arity token consumption (used by APPLY-style primitives and
// by `evaluate`'s dispatch to the boolean relational primitives).
func (e *Evaluator) CallProcedure(name string, args []value.Value) (value.Value, error) {
	proc, ok := e.Procs.Lookup(name)
	if !ok {
		return nil, e.NewError("I don't know how to `%s`", name)
	}
	return e.executeProcedure(proc, args)
}
