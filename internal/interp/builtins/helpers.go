// Package builtins implements the ~160 native Logo primitives (spec
// §4.6), grouped into one file per category the way spec.md's own
// category table is laid out. Every primitive is a plain
// `runtime.NativeFunc`: it receives the evaluator only through
// `runtime.Context`, never the concrete evaluator type, mirroring the
// decoupling the teacher's `internal/interp/builtins` package uses to
// avoid an import cycle with its evaluator.
//
// Grounded throughout on `logopy/procedure.py`'s `process_*` family
// and its `create_primitives_map()` registration table.
package builtins

import (
	"strconv"
	"strings"

	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/internal/value"
)

func numArg(ctx runtime.Context, name string, args []value.Value, i int) (float64, error) {
	f, ok := value.AsFloat(args[i])
	if !ok {
		return 0, ctx.NewError("%s expected a number, but got `%s` instead", name, value.Repr(args[i], true, false))
	}
	return f, nil
}

func intArg(ctx runtime.Context, name string, args []value.Value, i int) (int, error) {
	f, err := numArg(ctx, name, args, i)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func wordArg(ctx runtime.Context, name string, args []value.Value, i int) (value.Word, error) {
	w, ok := args[i].(value.Word)
	if !ok {
		return value.Word{}, ctx.NewError("%s expected a word, but got `%s` instead", name, value.Repr(args[i], true, false))
	}
	return w, nil
}

func listArg(ctx runtime.Context, name string, args []value.Value, i int) (value.List, error) {
	l, ok := args[i].(value.List)
	if !ok {
		return value.List{}, ctx.NewError("%s expected a list, but got `%s` instead", name, value.Repr(args[i], true, false))
	}
	return l, nil
}

func boolArg(ctx runtime.Context, name string, args []value.Value, i int) (bool, error) {
	w, ok := args[i].(value.Word)
	if !ok {
		return false, ctx.NewError("%s expected true/false, but got `%s` instead", name, value.Repr(args[i], true, false))
	}
	if w.IsTrue() {
		return true, nil
	}
	if w.IsFalse() {
		return false, nil
	}
	return false, ctx.NewError("%s expected true/false, but got `%s` instead", name, w.Text)
}

// listOrWordLen returns a thing's element/character count (value.Len).
func listOrWordLen(v value.Value) int { return value.Len(v) }

func define(procs *runtime.Table, name string, required int, fn runtime.NativeFunc) {
	names := make([]string, required)
	for i := range names {
		names[i] = strings.ToLower(name) + "_arg" + strconv.Itoa(i+1)
	}
	procs.Define(&runtime.Procedure{
		Name:           name,
		RequiredInputs: names,
		DefaultArity:   required,
		Native:         fn,
	})
}

// defineVariadic registers a primitive whose DefaultArity differs from
// its RequiredInputs count (e.g. WORD/SENTENCE/LIST, which take 2 by
// default but accept more when called in parenthesised form). MaxArity
// is left unbounded (Variadic) rather than pinned to minArgs, since a
// parenthesised call is exactly how these primitives accept more than
// their default arity.
func defineVariadic(procs *runtime.Table, name string, minArgs, defaultArity int, fn runtime.NativeFunc) {
	required := make([]string, minArgs)
	for i := range required {
		required[i] = strings.ToLower(name) + "_arg" + strconv.Itoa(i+1)
	}
	procs.Define(&runtime.Procedure{
		Name:           name,
		RequiredInputs: required,
		DefaultArity:   defaultArity,
		Variadic:       true,
		Native:         fn,
	})
}

// defineOptional registers a primitive with a mix of required and
// optional-with-fixed-default inputs that spec.md gives literal
// defaults for (e.g. RANDOM's implicit 0, ARCTAN's 1-or-2 forms),
// expressed as a native that inspects len(args) itself; the table
// entry's arity bounds are set via minArgs/maxArgs so
// processSpecialFormOrExpression's bounds check (parenthesised calls)
// and the default-arity dispatch (bare calls) both work.
func defineOptional(procs *runtime.Table, name string, minArgs, maxArgs, defaultArity int, fn runtime.NativeFunc) {
	required := make([]string, minArgs)
	for i := range required {
		required[i] = strings.ToLower(name) + "_arg" + strconv.Itoa(i+1)
	}
	var optional []runtime.OptionalInput
	for i := minArgs; i < maxArgs; i++ {
		optional = append(optional, runtime.OptionalInput{Name: strings.ToLower(name) + "_opt" + strconv.Itoa(i+1)})
	}
	procs.Define(&runtime.Procedure{
		Name:           name,
		RequiredInputs: required,
		OptionalInputs: optional,
		DefaultArity:   defaultArity,
		Native:         fn,
	})
}
