package builtins

import (
	"time"

	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/internal/interperr"
	"github.com/cwaldbieser/logopy/internal/value"
)

// RegisterControl installs IF/IFELSE/COND/CASE/RUN/RUNRESULT/STOP/
// HALT/OUTPUT/IGNORE/WAIT, grounded on `logopy/procedure.py`'s
// same-named process_* functions and spec §4.5.6/§4.5.9's
// control-flow-signal contract.
func RegisterControl(procs *runtime.Table) {
	defineOptional(procs, "if", 2, 3, 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		tf, err := boolArg(ctx, "IF", args, 0)
		if err != nil {
			return nil, err
		}
		if tf {
			return ctx.RunValue(args[1])
		}
		if len(args) == 3 {
			return ctx.RunValue(args[2])
		}
		return nil, nil
	})
	define(procs, "ifelse", 3, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		tf, err := boolArg(ctx, "IFELSE", args, 0)
		if err != nil {
			return nil, err
		}
		if tf {
			return ctx.RunValue(args[1])
		}
		return ctx.RunValue(args[2])
	})
	define(procs, "cond", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		clauses, err := listArg(ctx, "COND", args, 0)
		if err != nil {
			return nil, err
		}
		for _, clauseV := range clauses.Items() {
			clause, ok := clauseV.(value.List)
			if !ok || clause.Len() < 2 {
				return nil, ctx.NewError("COND expects a clause to be a list with at least 2 members, but received `%s`", value.Repr(clauseV, true, false))
			}
			items := clause.Items()
			cond := items[0]
			matched := false
			if w, ok := cond.(value.Word); ok && eqFold(w.Text, "else") {
				matched = true
			} else {
				result, err := ctx.RunValue(cond)
				if err != nil {
					return nil, err
				}
				matched = value.IsTrue(result)
			}
			if matched {
				return ctx.RunValue(value.NewList(items[1:]))
			}
		}
		return nil, nil
	})
	define(procs, "case", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		clauses, err := listArg(ctx, "CASE", args, 1)
		if err != nil {
			return nil, err
		}
		for _, clauseV := range clauses.Items() {
			clause, ok := clauseV.(value.List)
			if !ok || clause.Len() != 2 {
				return nil, ctx.NewError("CASE expects a clause to be a 2-member list, but received `%s`", value.Repr(clauseV, true, false))
			}
			values := clause.Get(0)
			matched := false
			if w, ok := values.(value.Word); ok && eqFold(w.Text, "else") {
				matched = true
			} else if l, ok := values.(value.List); ok && memberOf(args[0], l) {
				matched = true
			}
			if matched {
				return clause.Get(1), nil
			}
		}
		return nil, nil
	})
	define(procs, "run", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return ctx.RunValue(args[0])
	})
	define(procs, "runresult", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		result, err := ctx.RunValue(args[0])
		if err != nil {
			return nil, err
		}
		if result == nil {
			return value.EmptyList(), nil
		}
		return value.NewList([]value.Value{result}), nil
	})
	define(procs, "stop", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return nil, interperr.StopSignal{}
	})
	define(procs, "halt", 0, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		ctx.Backend().SetHalt(true)
		return nil, interperr.HaltSignal{}
	})
	define(procs, "output", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return nil, interperr.OutputSignal{Value: args[0]}
	})
	define(procs, "ignore", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return nil, nil
	})
	define(procs, "wait", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		ticks, err := numArg(ctx, "WAIT", args, 0)
		if err != nil {
			return nil, err
		}
		deadline := time.Now().Add(time.Duration(ticks / 60.0 * float64(time.Second)))
		const refresh = 100 * time.Millisecond
		for {
			ctx.Backend().ProcessEvents()
			remaining := time.Until(deadline)
			if remaining <= 0 {
				return nil, nil
			}
			if remaining > refresh {
				time.Sleep(refresh)
			} else {
				time.Sleep(remaining)
			}
		}
	})
}

func eqFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
