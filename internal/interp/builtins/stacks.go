package builtins

import (
	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/internal/value"
)

// RegisterStacks installs PUSH/POP/QUEUE/DEQUEUE: mutating operations
// on the list held by a named variable (spec §5's mutability
// contract), grounded on `logopy/procedure.py`'s process_push/
// process_pop/process_queue/process_dequeue.
func RegisterStacks(procs *runtime.Table) {
	define(procs, "push", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		name, err := wordArg(ctx, "PUSH", args, 0)
		if err != nil {
			return nil, err
		}
		l, err := stackVar(ctx, "PUSH", name.Text)
		if err != nil {
			return nil, err
		}
		l.Push(args[1])
		return nil, nil
	})
	define(procs, "pop", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		name, err := wordArg(ctx, "POP", args, 0)
		if err != nil {
			return nil, err
		}
		l, err := stackVar(ctx, "POP", name.Text)
		if err != nil {
			return nil, err
		}
		v, ok := l.Pop()
		if !ok {
			return nil, ctx.NewError("tried to POP from an empty list, `%s`", name.Text)
		}
		return v, nil
	})
	define(procs, "queue", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		name, err := wordArg(ctx, "QUEUE", args, 0)
		if err != nil {
			return nil, err
		}
		l, err := stackVar(ctx, "QUEUE", name.Text)
		if err != nil {
			return nil, err
		}
		l.Queue(args[1])
		return nil, nil
	})
	define(procs, "dequeue", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		name, err := wordArg(ctx, "DEQUEUE", args, 0)
		if err != nil {
			return nil, err
		}
		l, err := stackVar(ctx, "DEQUEUE", name.Text)
		if err != nil {
			return nil, err
		}
		v, ok := l.Dequeue()
		if !ok {
			return nil, ctx.NewError("tried to DEQUEUE from an empty list, `%s`", name.Text)
		}
		return v, nil
	})
}

func stackVar(ctx runtime.Context, name, varName string) (value.List, error) {
	v, err := ctx.Env().Get(varName)
	if err != nil {
		return value.List{}, err
	}
	l, ok := v.(value.List)
	if !ok {
		return value.List{}, ctx.NewError("tried to %s on `%s`, but it is not a list", name, varName)
	}
	return l, nil
}
