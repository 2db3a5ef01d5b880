package builtins

import (
	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/internal/value"
)

// RegisterLogical installs AND/OR/NOT (case-insensitive on their
// true/false arguments, per spec.md §4.6's closing note).
func RegisterLogical(procs *runtime.Table) {
	defineVariadic(procs, "and", 2, 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		for i := range args {
			b, err := boolArg(ctx, "AND", args, i)
			if err != nil {
				return nil, err
			}
			if !b {
				return value.BoolWord(false), nil
			}
		}
		return value.BoolWord(true), nil
	})
	defineVariadic(procs, "or", 2, 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		for i := range args {
			b, err := boolArg(ctx, "OR", args, i)
			if err != nil {
				return nil, err
			}
			if b {
				return value.BoolWord(true), nil
			}
		}
		return value.BoolWord(false), nil
	})
	define(procs, "not", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		b, err := boolArg(ctx, "NOT", args, 0)
		if err != nil {
			return nil, err
		}
		return value.BoolWord(!b), nil
	})
}
