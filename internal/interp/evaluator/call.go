package evaluator

import (
	"fmt"

	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/internal/parser"
	"github.com/cwaldbieser/logopy/internal/value"
)

// executeProcedure runs proc with already-evaluated args (spec
// §4.5.5). Primitives are called directly; user-defined procedures get
// a fresh scope, pairwise argument binding against the formal list
// (required, then optional, with missing optionals falling back to
// their default expression, re-evaluated against the caller's scope
// chain on every call), and overflow collection into a rest input.
func (e *Evaluator) executeProcedure(proc *runtime.Procedure, args []value.Value) (value.Value, error) {
	if proc.IsPrimitive() {
		if e.DebugPrimitives {
			fmt.Fprintln(e.backend.Stderr(), "PRIMITIVE:", proc.Name, "ARGS:", argsDisplay(args))
		}
		return proc.Native(e, args)
	}
	if e.DebugProcs {
		fmt.Fprintln(e.backend.Stderr(), "PROCEDURE:", proc.Name, "ARGS:", argsDisplay(args))
	}

	e.env.PushScope()
	defer e.env.PopScope()

	required := proc.RequiredInputs
	optional := proc.OptionalInputs
	formalCount := len(required) + len(optional)
	n := formalCount
	if len(args) > n {
		n = len(args)
	}

	var rest []value.Value
	for i := 0; i < n; i++ {
		hasValue := i < len(args)
		var val value.Value
		if hasValue {
			val = args[i]
		}

		switch {
		case i < len(required):
			if !hasValue {
				return nil, e.NewError("not enough inputs for `%s`", proc.Name)
			}
			e.env.Innermost()[required[i]] = val

		case i < formalCount:
			opt := optional[i-len(required)]
			if !hasValue {
				def, err := e.evaluateDefault(opt.Default)
				if err != nil {
					return nil, err
				}
				val = def
			}
			e.env.Innermost()[opt.Name] = val

		default:
			if proc.RestInput == "" {
				return nil, e.NewError("too many inputs for `%s`", proc.Name)
			}
			rest = append(rest, val)
		}
	}
	if proc.RestInput != "" {
		e.env.Innermost()[proc.RestInput] = value.NewList(rest)
	}

	return e.RunBody(proc.Body)
}

// evaluateDefault resolves an optional parameter's default expression
// against the caller's scope chain (spec §4.5.5 step 3): while this
// runs, a `:name` lookup in evaluateValue skips the scope this call
// just pushed.
func (e *Evaluator) evaluateDefault(nodes []parser.Node) (value.Value, error) {
	prev := e.evaluatingDefault
	e.evaluatingDefault = true
	defer func() { e.evaluatingDefault = prev }()
	return e.evaluate(newCursor(nodes))
}

// argsDisplay renders an argument list for --debug-primitives/
// --debug-procs tracing, mirroring `logopycli.py`'s bare `print(...,
// args)` of the evaluated Python list.
func argsDisplay(args []value.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = value.Repr(a, true, false)
	}
	return fmt.Sprint(parts)
}
