package builtins

import (
	"fmt"
	"math"

	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/internal/value"
)

// RegisterIteration installs REPEAT/FOR/WHILE/UNTIL/DO.WHILE/
// DO.UNTIL/CASCADE, grounded on `logopy/procedure.py`'s process_repeat/
// process_for/process_while/process_until/process_cascade and
// spec.md §4.5.8's DO.WHILE/DO.UNTIL redesign (body-first order, not
// present in the reference implementation).
func RegisterIteration(procs *runtime.Table) {
	define(procs, "repeat", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		n, err := intArg(ctx, "REPEAT", args, 0)
		if err != nil {
			return nil, err
		}
		ctx.Env().CreateRepcountScope()
		defer ctx.Env().DestroyRepcountScope()
		for i := 1; i <= n; i++ {
			ctx.Env().SetRepcount(i)
			if _, err := ctx.RunValue(args[1]); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	define(procs, "for", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		control, err := listArg(ctx, "FOR", args, 0)
		if err != nil {
			return nil, err
		}
		items := control.Items()
		if len(items) != 3 && len(items) != 4 {
			return nil, ctx.NewError("FOR expects a control list with 3 or 4 members, but received `%s`", value.Repr(args[0], true, false))
		}
		counterName, ok := items[0].(value.Word)
		if !ok {
			return nil, ctx.NewError("FOR expects a variable name, but received `%s`", value.Repr(items[0], true, false))
		}
		start, err := ctx.RunValue(items[1])
		if err != nil {
			return nil, err
		}
		limit, err := ctx.RunValue(items[2])
		if err != nil {
			return nil, err
		}
		startN, err := numValue(ctx, "FOR", start)
		if err != nil {
			return nil, err
		}
		limitN, err := numValue(ctx, "FOR", limit)
		if err != nil {
			return nil, err
		}
		var step float64
		if len(items) == 4 {
			stepV, err := ctx.RunValue(items[3])
			if err != nil {
				return nil, err
			}
			step, err = numValue(ctx, "FOR", stepV)
			if err != nil {
				return nil, err
			}
		} else if startN <= limitN {
			step = 1
		} else {
			step = -1
		}
		ctx.Env().PushScope()
		defer ctx.Env().PopScope()
		counter := startN
		ctx.Env().LocalMake(counterName.Text, value.NewNumberWord(counter))
		for math.Copysign(1, counter-limitN) != math.Copysign(1, step) || counter == limitN {
			if _, err := ctx.RunValue(args[1]); err != nil {
				return nil, err
			}
			current, err := ctx.Env().Get(counterName.Text)
			if err != nil {
				return nil, err
			}
			counter, err = numValue(ctx, "FOR", current)
			if err != nil {
				return nil, err
			}
			counter += step
			ctx.Env().LocalMake(counterName.Text, value.NewNumberWord(counter))
		}
		return nil, nil
	})
	define(procs, "while", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		for {
			tf, err := runTest(ctx, "WHILE", args[0])
			if err != nil {
				return nil, err
			}
			if !tf {
				return nil, nil
			}
			if _, err := ctx.RunValue(args[1]); err != nil {
				return nil, err
			}
		}
	})
	define(procs, "until", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		for {
			tf, err := runTest(ctx, "UNTIL", args[0])
			if err != nil {
				return nil, err
			}
			if tf {
				return nil, nil
			}
			if _, err := ctx.RunValue(args[1]); err != nil {
				return nil, err
			}
		}
	})
	define(procs, "do.while", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		for {
			if _, err := ctx.RunValue(args[0]); err != nil {
				return nil, err
			}
			tf, err := runTest(ctx, "DO.WHILE", args[1])
			if err != nil {
				return nil, err
			}
			if !tf {
				return nil, nil
			}
		}
	})
	define(procs, "do.until", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		for {
			if _, err := ctx.RunValue(args[0]); err != nil {
				return nil, err
			}
			tf, err := runTest(ctx, "DO.UNTIL", args[1])
			if err != nil {
				return nil, err
			}
			if tf {
				return nil, nil
			}
		}
	})
	defineVariadic(procs, "cascade", 2, 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		endtest := args[0]
		rest := args[1:]
		var finalTemplate value.Value
		if len(rest)%2 != 0 {
			finalTemplate = rest[len(rest)-1]
			rest = rest[:len(rest)-1]
		}
		templateCount := len(rest) / 2
		templates := make([]value.Value, templateCount)
		results := make([]value.Value, templateCount)
		for i := 0; i < templateCount; i++ {
			templates[i] = rest[2*i]
			results[i] = rest[2*i+1]
		}
		isCountEndtest := false
		var repetitions int
		if w, ok := endtest.(value.Word); ok {
			n, err := wordToInt(w.Text)
			if err != nil {
				return nil, ctx.NewError("CASCADE expected an integer for its end test, but received `%s` instead", value.Repr(endtest, true, false))
			}
			isCountEndtest = true
			repetitions = n
		} else if _, ok := endtest.(value.List); !ok {
			return nil, ctx.NewError("CASCADE expected an integer or template for `endtest`, but received `%s` instead", value.Repr(endtest, true, false))
		}
		ctx.Env().CreateRepcountScope()
		defer ctx.Env().DestroyRepcountScope()
		repcount := 0
		for {
			repcount++
			ctx.Env().SetRepcount(repcount)
			if isCountEndtest {
				if repcount > repetitions {
					break
				}
			} else {
				tf, err := runTest(ctx, "CASCADE", endtest)
				if err != nil {
					return nil, err
				}
				if tf {
					break
				}
			}
			lastResults := append([]value.Value(nil), results...)
			ctx.Env().PushPlaceholders(lastResults)
			next := make([]value.Value, templateCount)
			for i, tmpl := range templates {
				r, err := ctx.RunValue(tmpl)
				if err != nil {
					ctx.Env().PopPlaceholders()
					return nil, err
				}
				next[i] = r
			}
			ctx.Env().PopPlaceholders()
			results = next
		}
		if finalTemplate != nil {
			ctx.Env().PushPlaceholders(results)
			defer ctx.Env().PopPlaceholders()
			return ctx.RunValue(finalTemplate)
		}
		if templateCount == 0 {
			return nil, nil
		}
		return results[0], nil
	})
}

func runTest(ctx runtime.Context, name string, v value.Value) (bool, error) {
	result, err := ctx.RunValue(v)
	if err != nil {
		return false, err
	}
	return value.IsTrue(result), nil
}

func numValue(ctx runtime.Context, name string, v value.Value) (float64, error) {
	f, ok := value.AsFloat(v)
	if !ok {
		return 0, ctx.NewError("%s expects a number, but received `%s`", name, value.Repr(v, true, false))
	}
	return f, nil
}

func wordToInt(s string) (int, error) {
	f, ok := value.AsFloat(value.NewWord(s))
	if !ok {
		return 0, fmt.Errorf("not a number: %s", s)
	}
	return int(f), nil
}
