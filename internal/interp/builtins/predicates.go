package builtins

import (
	"strings"

	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/internal/value"
)

// RegisterPredicates installs the boolean-returning primitives: the
// six relational predicates `evaluate`'s infix loop dispatches to
// (`internal/interp/evaluator/infix.go`), plus EMPTYP/LISTP/WORDP/
// NUMBERP/MEMBERP/SUBSTRINGP/BEFOREP/SHOWNP/PENDOWNP/.EQ. Grounded on
// `logopy/procedure.py`'s same-named process_* functions.
func RegisterPredicates(procs *runtime.Table) {
	define(procs, "equalp", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return value.BoolWord(value.Equal(args[0], args[1])), nil
	})
	define(procs, "notequalp", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return value.BoolWord(!value.Equal(args[0], args[1])), nil
	})
	define(procs, "lessp", 2, relational("LESSP", func(a, b float64) bool { return a < b }))
	define(procs, "lessequalp", 2, relational("LESSEQUALP", func(a, b float64) bool { return a <= b }))
	define(procs, "greaterp", 2, relational("GREATERP", func(a, b float64) bool { return a > b }))
	define(procs, "greaterequalp", 2, relational("GREATEREQUALP", func(a, b float64) bool { return a >= b }))

	define(procs, "emptyp", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return value.BoolWord(value.Len(args[0]) == 0), nil
	})
	define(procs, "listp", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return value.BoolWord(value.IsList(args[0])), nil
	})
	define(procs, "wordp", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return value.BoolWord(value.IsWord(args[0])), nil
	})
	define(procs, "numberp", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return value.BoolWord(value.IsNumber(args[0])), nil
	})
	define(procs, "memberp", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return value.BoolWord(memberOf(args[0], args[1])), nil
	})
	define(procs, "substringp", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		sub, err := wordArg(ctx, "SUBSTRINGP", args, 0)
		if err != nil {
			return nil, err
		}
		whole, err := wordArg(ctx, "SUBSTRINGP", args, 1)
		if err != nil {
			return nil, err
		}
		return value.BoolWord(strings.Contains(whole.Text, sub.Text)), nil
	})
	define(procs, "beforep", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		a, err := wordArg(ctx, "BEFOREP", args, 0)
		if err != nil {
			return nil, err
		}
		b, err := wordArg(ctx, "BEFOREP", args, 1)
		if err != nil {
			return nil, err
		}
		return value.BoolWord(collatedLess(a.Text, b.Text)), nil
	})
	define(procs, "shownp", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return value.BoolWord(ctx.Backend().Shown()), nil
	})
	define(procs, "pendownp", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return value.BoolWord(ctx.Backend().IsPenDown()), nil
	})
	define(procs, ".eq", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		al, aok := args[0].(value.List)
		bl, bok := args[1].(value.List)
		if aok && bok {
			return value.BoolWord(al.SameIdentity(bl)), nil
		}
		return value.BoolWord(args[0] == args[1]), nil
	})
}

func relational(name string, cmp func(a, b float64) bool) runtime.NativeFunc {
	return func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		a, err := numArg(ctx, name, args, 0)
		if err != nil {
			return nil, err
		}
		b, err := numArg(ctx, name, args, 1)
		if err != nil {
			return nil, err
		}
		return value.BoolWord(cmp(a, b)), nil
	}
}

func memberOf(needle, haystack value.Value) bool {
	switch h := haystack.(type) {
	case value.List:
		for _, item := range h.Items() {
			if value.Equal(needle, item) {
				return true
			}
		}
		return false
	case value.Word:
		n, ok := needle.(value.Word)
		if !ok {
			return false
		}
		return strings.Contains(h.Text, n.Text)
	default:
		return false
	}
}
