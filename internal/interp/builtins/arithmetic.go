package builtins

import (
	"math"
	"math/rand"

	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/internal/value"
)

// RegisterArithmetic installs SUM/DIFFERENCE/PRODUCT/QUOTIENT/
// REMAINDER/MODULO/POWER/EXP/LOG10/LN/SQRT/INT/ROUND/FLOAT/RANDOM/
// RSEQ/ISEQ, grounded on `logopy/procedure.py`'s same-named
// process_* functions.
func RegisterArithmetic(procs *runtime.Table) {
	define(procs, "sum", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		a, err := numArg(ctx, "SUM", args, 0)
		if err != nil {
			return nil, err
		}
		b, err := numArg(ctx, "SUM", args, 1)
		if err != nil {
			return nil, err
		}
		return value.NewNumberWord(a + b), nil
	})
	define(procs, "difference", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		a, err := numArg(ctx, "DIFFERENCE", args, 0)
		if err != nil {
			return nil, err
		}
		b, err := numArg(ctx, "DIFFERENCE", args, 1)
		if err != nil {
			return nil, err
		}
		return value.NewNumberWord(a - b), nil
	})
	define(procs, "product", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		a, err := numArg(ctx, "PRODUCT", args, 0)
		if err != nil {
			return nil, err
		}
		b, err := numArg(ctx, "PRODUCT", args, 1)
		if err != nil {
			return nil, err
		}
		return value.NewNumberWord(a * b), nil
	})
	define(procs, "quotient", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		a, err := numArg(ctx, "QUOTIENT", args, 0)
		if err != nil {
			return nil, err
		}
		b, err := numArg(ctx, "QUOTIENT", args, 1)
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, ctx.NewError("QUOTIENT does not like `0` as its second input")
		}
		return value.NewNumberWord(a / b), nil
	})
	define(procs, "remainder", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		a, err := numArg(ctx, "REMAINDER", args, 0)
		if err != nil {
			return nil, err
		}
		b, err := numArg(ctx, "REMAINDER", args, 1)
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, ctx.NewError("REMAINDER does not like `0` as its second input")
		}
		return value.NewNumberWord(math.Mod(a, b)), nil
	})
	define(procs, "modulo", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		a, err := numArg(ctx, "MODULO", args, 0)
		if err != nil {
			return nil, err
		}
		b, err := numArg(ctx, "MODULO", args, 1)
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, ctx.NewError("MODULO does not like `0` as its second input")
		}
		m := math.Mod(a, b)
		if m != 0 && (m < 0) != (b < 0) {
			m += b
		}
		return value.NewNumberWord(m), nil
	})
	define(procs, "power", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		a, err := numArg(ctx, "POWER", args, 0)
		if err != nil {
			return nil, err
		}
		b, err := numArg(ctx, "POWER", args, 1)
		if err != nil {
			return nil, err
		}
		return value.NewNumberWord(math.Pow(a, b)), nil
	})
	define(procs, "exp", 1, unaryMath("EXP", math.Exp))
	define(procs, "log10", 1, unaryMath("LOG10", math.Log10))
	define(procs, "ln", 1, unaryMath("LN", math.Log))
	define(procs, "sqrt", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		n, err := numArg(ctx, "SQRT", args, 0)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, ctx.NewError("SQRT does not like `%v` as its input", n)
		}
		return value.NewNumberWord(math.Sqrt(n)), nil
	})
	define(procs, "int", 1, unaryMath("INT", math.Trunc))
	define(procs, "round", 1, unaryMath("ROUND", math.Round))
	define(procs, "float", 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		n, err := numArg(ctx, "FLOAT", args, 0)
		if err != nil {
			return nil, err
		}
		return value.NewNumberWord(n), nil
	})
	defineOptional(procs, "random", 1, 2, 1, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		if len(args) == 1 {
			n, err := intArg(ctx, "RANDOM", args, 0)
			if err != nil {
				return nil, err
			}
			if n <= 0 {
				return nil, ctx.NewError("RANDOM does not like `%d` as its input", n)
			}
			return value.NewNumberWord(float64(rand.Intn(n))), nil
		}
		lo, err := intArg(ctx, "RANDOM", args, 0)
		if err != nil {
			return nil, err
		}
		hi, err := intArg(ctx, "RANDOM", args, 1)
		if err != nil {
			return nil, err
		}
		if hi < lo {
			return nil, ctx.NewError("RANDOM expects its first input to be no greater than its second")
		}
		return value.NewNumberWord(float64(lo + rand.Intn(hi-lo+1))), nil
	})
	define(procs, "rseq", 3, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		from, err := numArg(ctx, "RSEQ", args, 0)
		if err != nil {
			return nil, err
		}
		to, err := numArg(ctx, "RSEQ", args, 1)
		if err != nil {
			return nil, err
		}
		count, err := intArg(ctx, "RSEQ", args, 2)
		if err != nil {
			return nil, err
		}
		if count < 2 {
			return nil, ctx.NewError("RSEQ expects a count of at least 2")
		}
		items := make([]value.Value, count)
		for i := 0; i < count; i++ {
			pos := (to*float64(i) + from*float64(count-i-1)) / float64(count-1)
			items[i] = value.NewNumberWord(pos)
		}
		return value.NewList(items), nil
	})
	define(procs, "iseq", 2, func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		from, err := intArg(ctx, "ISEQ", args, 0)
		if err != nil {
			return nil, err
		}
		to, err := intArg(ctx, "ISEQ", args, 1)
		if err != nil {
			return nil, err
		}
		var items []value.Value
		if from <= to {
			for i := from; i <= to; i++ {
				items = append(items, value.NewNumberWord(float64(i)))
			}
		} else {
			for i := from; i >= to; i-- {
				items = append(items, value.NewNumberWord(float64(i)))
			}
		}
		return value.NewList(items), nil
	})
}

func unaryMath(name string, fn func(float64) float64) runtime.NativeFunc {
	return func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		n, err := numArg(ctx, name, args, 0)
		if err != nil {
			return nil, err
		}
		return value.NewNumberWord(fn(n)), nil
	}
}
