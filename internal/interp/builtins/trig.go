package builtins

import (
	"math"

	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/internal/value"
)

// RegisterTrig installs SIN/COS/ARCTAN and their radian-native
// siblings RADSIN/RADCOS/RADARCTAN, grounded on
// `logopy/procedure.py`'s process_sin/process_cos/process_arctan/
// process_radsin/process_radcos/process_radarctan. Unlike the
// reference implementation (which calls a nonexistent `math.arctan`),
// ARCTAN/RADARCTAN use `math.Atan`/`math.Atan2` directly (spec.md §9's
// recorded Open Question resolution).
func RegisterTrig(procs *runtime.Table) {
	define(procs, "sin", 1, degTrig("SIN", math.Sin))
	define(procs, "cos", 1, degTrig("COS", math.Cos))
	define(procs, "radsin", 1, unaryMath("RADSIN", math.Sin))
	define(procs, "radcos", 1, unaryMath("RADCOS", math.Cos))

	defineOptional(procs, "arctan", 1, 2, 1, arctanFunc("ARCTAN", true))
	defineOptional(procs, "radarctan", 1, 2, 1, arctanFunc("RADARCTAN", false))
}

func degTrig(name string, fn func(float64) float64) runtime.NativeFunc {
	return func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		degrees, err := numArg(ctx, name, args, 0)
		if err != nil {
			return nil, err
		}
		return value.NewNumberWord(fn(degrees * math.Pi / 180.0)), nil
	}
}

func arctanFunc(name string, degrees bool) runtime.NativeFunc {
	return func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		toResult := func(rad float64) value.Value {
			if degrees {
				return value.NewNumberWord(rad * 180.0 / math.Pi)
			}
			return value.NewNumberWord(rad)
		}
		if len(args) == 1 {
			x, err := numArg(ctx, name, args, 0)
			if err != nil {
				return nil, err
			}
			return toResult(math.Atan(x)), nil
		}
		x, err := numArg(ctx, name, args, 0)
		if err != nil {
			return nil, err
		}
		y, err := numArg(ctx, name, args, 1)
		if err != nil {
			return nil, err
		}
		if x == 0 {
			switch {
			case y > 0:
				if degrees {
					return value.NewNumberWord(90), nil
				}
				return value.NewNumberWord(math.Pi / 2), nil
			case y < 0:
				if degrees {
					return value.NewNumberWord(-90), nil
				}
				return value.NewNumberWord(-math.Pi / 2), nil
			default:
				return nil, ctx.NewError("%s does not like `0`, `0` as its inputs", name)
			}
		}
		return toResult(math.Atan2(y, x)), nil
	}
}
