package evaluator

import (
	"errors"
	"testing"

	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/internal/interperr"
	"github.com/cwaldbieser/logopy/internal/lexer"
	"github.com/cwaldbieser/logopy/internal/parser"
	"github.com/cwaldbieser/logopy/internal/value"
)

func evalExpr(t *testing.T, e *Evaluator, src string) value.Value {
	t.Helper()
	toks, err := lexer.New(src).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", src, err)
	}
	nodes, err := parser.New(toks, src, "").Parse()
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", src, err)
	}
	v, err := e.evaluate(newCursor(nodes))
	if err != nil {
		t.Fatalf("evaluate(%q) error = %v", src, err)
	}
	return v
}

func relational(cmp func(a, b float64) bool) runtime.NativeFunc {
	return func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		a, _ := value.AsFloat(args[0])
		b, _ := value.AsFloat(args[1])
		return value.BoolWord(cmp(a, b)), nil
	}
}

func registerRelationals(e *Evaluator) {
	define := func(name string, fn runtime.NativeFunc) {
		e.Procs.Define(&runtime.Procedure{Name: name, RequiredInputs: []string{"a", "b"}, DefaultArity: 2, Native: fn})
	}
	define("lessp", relational(func(a, b float64) bool { return a < b }))
	define("lessequalp", relational(func(a, b float64) bool { return a <= b }))
	define("greaterp", relational(func(a, b float64) bool { return a > b }))
	define("greaterequalp", relational(func(a, b float64) bool { return a >= b }))
	define("equalp", func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return value.BoolWord(value.Equal(args[0], args[1])), nil
	})
	define("notequalp", func(ctx runtime.Context, args []value.Value) (value.Value, error) {
		return value.BoolWord(!value.Equal(args[0], args[1])), nil
	})
}

func TestEvaluateArithmeticPrecedence(t *testing.T) {
	e := New()
	got := evalExpr(t, e, "2 + 3 * 5")
	if got.String() != "17" {
		t.Errorf("2 + 3 * 5 = %v, want 17", got)
	}
}

func TestEvaluateRelationalShortCircuitsAfterTerms(t *testing.T) {
	e := New()
	registerRelationals(e)
	got := evalExpr(t, e, "5 + 1 < 3 * 4")
	if !value.IsTrue(got) {
		t.Errorf("5 + 1 < 3 * 4 = %v, want true (6 < 12)", got)
	}
}

func TestEvaluateGroupOverrideArithmetic(t *testing.T) {
	// (heading * -1 + 90) parses to a Group; evaluate() must resolve
	// the whole infix chain in one call once `heading` is bound.
	e := New()
	e.Procs.Define(&runtime.Procedure{
		Name: "heading", DefaultArity: 0,
		Native: func(ctx runtime.Context, args []value.Value) (value.Value, error) {
			return value.NewNumberWord(30), nil
		},
	})
	got := evalExpr(t, e, "(heading * -1 + 90)")
	if got.String() != "60" {
		t.Errorf("(heading * -1 + 90) = %v, want 60", got)
	}
}

func TestProcessCommandUnknownProcedureErrors(t *testing.T) {
	e := New()
	_, err := e.ProcessInstructionList("frobnicate 1 2")
	if err == nil {
		t.Fatal("expected an error for an unknown command")
	}
}

func TestExpectedEndErrorOnUnterminatedTo(t *testing.T) {
	e := New()
	_, err := e.ProcessInstructionList("to square :x\nprint :x * :x")
	var end *interperr.ExpectedEndError
	if !errors.As(err, &end) {
		t.Fatalf("error = %#v (%T), want *interperr.ExpectedEndError", err, err)
	}
}

func registerMakeLocalIfOutput(e *Evaluator) {
	e.Procs.Define(&runtime.Procedure{Name: "make", RequiredInputs: []string{"name", "value"}, DefaultArity: 2,
		Native: func(ctx runtime.Context, args []value.Value) (value.Value, error) {
			ctx.Env().Make(args[0].String(), args[1])
			return nil, nil
		}})
	e.Procs.Define(&runtime.Procedure{Name: "local", RequiredInputs: []string{"name"}, DefaultArity: 1,
		Native: func(ctx runtime.Context, args []value.Value) (value.Value, error) {
			ctx.Env().Local(args[0].String())
			return nil, nil
		}})
	e.Procs.Define(&runtime.Procedure{Name: "output", RequiredInputs: []string{"value"}, DefaultArity: 1,
		Native: func(ctx runtime.Context, args []value.Value) (value.Value, error) {
			return nil, interperr.OutputSignal{Value: args[0]}
		}})
	e.Procs.Define(&runtime.Procedure{Name: "if", RequiredInputs: []string{"tf", "body"}, DefaultArity: 2,
		Native: func(ctx runtime.Context, args []value.Value) (value.Value, error) {
			if value.IsTrue(args[0]) {
				return ctx.RunValue(args[1])
			}
			return nil, nil
		}})
}

func TestDynamicScopeNotLexical(t *testing.T) {
	e := New()
	registerMakeLocalIfOutput(e)
	src := `
to inner
make "x 2
end
to outer
local "x
make "x 1
inner
output :x
end
`
	if _, err := e.ProcessInstructionList(src); err != nil {
		t.Fatalf("defining procedures: %v", err)
	}
	got, err := e.CallProcedure("outer", nil)
	if err != nil {
		t.Fatalf("CallProcedure(outer) error = %v", err)
	}
	if got.String() != "2" {
		t.Errorf("outer's :x after inner's MAKE = %v, want 2 (dynamic scope)", got)
	}
}

func TestRecursiveOutputFactorial(t *testing.T) {
	e := New()
	registerRelationals(e)
	registerMakeLocalIfOutput(e)
	src := `
to fact :n
if :n < 2 [output 1]
output :n * fact :n - 1
end
`
	if _, err := e.ProcessInstructionList(src); err != nil {
		t.Fatalf("defining fact: %v", err)
	}
	got, err := e.CallProcedure("fact", []value.Value{value.NewNumberWord(6)})
	if err != nil {
		t.Fatalf("CallProcedure(fact,6) error = %v", err)
	}
	if got.String() != "720" {
		t.Errorf("fact(6) = %v, want 720", got)
	}
}

func TestOptionalDefaultReevaluatedAgainstCallerScope(t *testing.T) {
	e := New()
	registerMakeLocalIfOutput(e)
	src := `
to withdefault :x [:y :x]
output :y
end
`
	if _, err := e.ProcessInstructionList(src); err != nil {
		t.Fatalf("defining withdefault: %v", err)
	}
	// The caller (top level) has its own x; the default reads that one,
	// not the x the new call just bound.
	e.Env().Make("x", value.NewNumberWord(5))
	got, err := e.CallProcedure("withdefault", []value.Value{value.NewNumberWord(9)})
	if err != nil {
		t.Fatalf("CallProcedure error = %v", err)
	}
	if got.String() != "5" {
		t.Errorf("withdefault(9) = %v, want 5 (y defaults to the caller's x)", got)
	}
}

func TestRepeatPrimitiveUsingRepcount(t *testing.T) {
	e := New()
	var out []value.Value
	e.Procs.Define(&runtime.Procedure{Name: "collect", RequiredInputs: []string{"v"}, DefaultArity: 1,
		Native: func(ctx runtime.Context, args []value.Value) (value.Value, error) {
			out = append(out, args[0])
			return nil, nil
		}})
	e.Procs.Define(&runtime.Procedure{Name: "repcount", DefaultArity: 0,
		Native: func(ctx runtime.Context, args []value.Value) (value.Value, error) {
			return value.NewNumberWord(float64(ctx.Env().GetRepcount())), nil
		}})
	e.Procs.Define(&runtime.Procedure{Name: "repeat", RequiredInputs: []string{"n", "body"}, DefaultArity: 2,
		Native: func(ctx runtime.Context, args []value.Value) (value.Value, error) {
			n, _ := value.AsFloat(args[0])
			ctx.Env().CreateRepcountScope()
			defer ctx.Env().DestroyRepcountScope()
			for i := 1; i <= int(n); i++ {
				ctx.Env().SetRepcount(i)
				if _, err := ctx.RunValue(args[1]); err != nil {
					return nil, err
				}
			}
			return nil, nil
		}})
	if _, err := e.ProcessInstructionList("repeat 3 [collect repcount]"); err != nil {
		t.Fatalf("ProcessInstructionList error = %v", err)
	}
	if len(out) != 3 || out[0].String() != "1" || out[2].String() != "3" {
		t.Errorf("collected = %v, want [1 2 3]", out)
	}
	if got := e.Env().GetRepcount(); got != -1 {
		t.Errorf("GetRepcount() after REPEAT = %d, want -1", got)
	}
}
