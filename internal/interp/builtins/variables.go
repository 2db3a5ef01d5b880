package builtins

import (
	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/internal/value"
)

// RegisterVariables installs MAKE/LOCAL/LOCALMAKE/THING. MAKE searches
// the scope stack for an existing binding and assigns there, falling
// back to creating a global; LOCALMAKE always creates/overwrites in
// the innermost scope (spec.md §9's recorded Open Question
// resolution, grounded on `logopy/procedure.py`'s process_make vs
// process_localmake).
func RegisterVariables(procs *runtime.Table) {
	define(procs, "make", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		name, err := wordArg(ctx, "MAKE", args, 0)
		if err != nil {
			return nil, err
		}
		ctx.Env().Make(name.Text, args[1])
		return nil, nil
	})
	defineVariadic(procs, "local", 1, 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		names := make([]string, len(args))
		for i := range args {
			w, err := wordArg(ctx, "LOCAL", args, i)
			if err != nil {
				return nil, err
			}
			names[i] = w.Text
		}
		ctx.Env().Local(names...)
		return nil, nil
	})
	define(procs, "localmake", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		name, err := wordArg(ctx, "LOCALMAKE", args, 0)
		if err != nil {
			return nil, err
		}
		ctx.Env().LocalMake(name.Text, args[1])
		return nil, nil
	})
	define(procs, "thing", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		name, err := wordArg(ctx, "THING", args, 0)
		if err != nil {
			return nil, err
		}
		return ctx.Env().Get(name.Text)
	})
}
