package builtins

import (
	"strings"

	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/internal/value"
)

// RegisterConversion installs CHAR/UNICODE/LOWERCASE/UPPERCASE/
// QUOTED/DEC.STR, grounded on `logopy/procedure.py`'s same-named
// process_* functions.
func RegisterConversion(procs *runtime.Table) {
	define(procs, "char", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		code, err := intArg(ctx, "CHAR", args, 0)
		if err != nil {
			return nil, err
		}
		return value.NewWord(string(rune(code))), nil
	})
	define(procs, "unicode", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		w, err := wordArg(ctx, "UNICODE", args, 0)
		if err != nil {
			return nil, err
		}
		runes := []rune(w.Text)
		if len(runes) == 0 {
			return nil, ctx.NewError("UNICODE does not like an empty word as input")
		}
		return value.NewNumberWord(float64(runes[0])), nil
	})
	define(procs, "lowercase", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		w, err := wordArg(ctx, "LOWERCASE", args, 0)
		if err != nil {
			return nil, err
		}
		return value.NewWord(strings.ToLower(w.Text)), nil
	})
	define(procs, "uppercase", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		w, err := wordArg(ctx, "UPPERCASE", args, 0)
		if err != nil {
			return nil, err
		}
		return value.NewWord(strings.ToUpper(w.Text)), nil
	})
	define(procs, "quoted", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		w, ok := args[0].(value.Word)
		if !ok {
			return args[0], nil
		}
		return value.NewWord("\"" + w.Text), nil
	})
	define(procs, "dec.str", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		w, err := wordArg(ctx, "DEC.STR", args, 0)
		if err != nil {
			return nil, err
		}
		return value.NewWord(w.Text), nil
	})
}
