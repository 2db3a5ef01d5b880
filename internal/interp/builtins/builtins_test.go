package builtins_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwaldbieser/logopy/internal/interp/builtins"
	"github.com/cwaldbieser/logopy/internal/interp/evaluator"
	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/pkg/turtle"
)

// run lexes, parses, and runs src through a fresh Evaluator with every
// primitive installed, returning its stdout.
func run(t *testing.T, src string) string {
	t.Helper()
	e := evaluator.New()
	builtins.RegisterAll(e.Procs)
	var out bytes.Buffer
	e.InstallBackend(runtime.NopBackend{Out: &out})
	if _, err := e.ProcessInstructionList(src); err != nil {
		t.Fatalf("ProcessInstructionList(%q) error = %v", src, err)
	}
	return out.String()
}

func TestArithmeticPrimitives(t *testing.T) {
	cases := map[string]string{
		`print sum 2 3`:        "5\n",
		`print difference 5 2`: "3\n",
		`print product 4 5`:    "20\n",
		`print quotient 10 4`:  "2.5\n",
		`print remainder 10 3`: "1\n",
		`print power 2 8`:      "256\n",
	}
	for src, want := range cases {
		if got := run(t, src); got != want {
			t.Errorf("%s => %q, want %q", src, got, want)
		}
	}
}

func TestPredicates(t *testing.T) {
	cases := map[string]string{
		`print emptyp []`:          "true\n",
		`print emptyp [1]`:         "false\n",
		`print wordp "hello`:       "true\n",
		`print listp [1 2]`:        "true\n",
		`print numberp 42`:         "true\n",
		`print numberp "abc`:       "false\n",
		`print memberp 2 [1 2 3]`:  "true\n",
		`print equalp 3 3`:         "true\n",
		`print greaterp 5 3`:       "true\n",
	}
	for src, want := range cases {
		if got := run(t, src); got != want {
			t.Errorf("%s => %q, want %q", src, got, want)
		}
	}
}

func TestListConstructionAndSelection(t *testing.T) {
	// PRINT drops the outermost list's brackets (nested sublists still
	// get theirs), matching value.Repr's withBraces=false top level.
	cases := map[string]string{
		`print fput "a [b c]`:      "a b c\n",
		`print lput "c [a b]`:      "a b c\n",
		`print sentence [a b] [c]`: "a b c\n",
		`print first [a b c]`:      "a\n",
		`print butfirst [a b c]`:   "b c\n",
		`print last [a b c]`:       "c\n",
		`print item 2 [a b c]`:     "b\n",
		`print count [a b c]`:      "3\n",
		`print reverse [1 2 3]`:    "3 2 1\n",
	}
	for src, want := range cases {
		if got := run(t, src); got != want {
			t.Errorf("%s => %q, want %q", src, got, want)
		}
	}
}

func TestControlFlowIfIfelse(t *testing.T) {
	if got, want := run(t, `if "true [print "yes]`), "yes\n"; got != want {
		t.Errorf(`IF "true => %q, want %q`, got, want)
	}
	if got, want := run(t, `if "false [print "no]`), ""; got != want {
		t.Errorf(`IF "false => %q, want %q`, got, want)
	}
	if got, want := run(t, `ifelse greaterp 5 3 [print "bigger] [print "smaller]`), "bigger\n"; got != want {
		t.Errorf("IFELSE => %q, want %q", got, want)
	}
}

func TestOutputInsideIfPropagatesPastTheIfBoundary(t *testing.T) {
	src := `to test :n
if :n > 5 [output "big]
output "small
end
print test 10`
	if got, want := run(t, src), "big\n"; got != want {
		t.Errorf("OUTPUT inside IF inside a procedure => %q, want %q", got, want)
	}
}

func TestStopInsideRepeatUnwindsTheEnclosingProcedure(t *testing.T) {
	src := `to stopearly
repeat 10 [print repcount if equalp repcount 3 [stop]]
print "after
end
stopearly`
	if got, want := run(t, src), "1\n2\n3\n"; got != want {
		t.Errorf("STOP inside REPEAT inside a procedure => %q, want %q", got, want)
	}
}

func TestParenthesizedVariadicAcceptsMoreThanDefaultArity(t *testing.T) {
	if got, want := run(t, `(print 1 2 3)`), "1 2 3\n"; got != want {
		t.Errorf("(print 1 2 3) => %q, want %q", got, want)
	}
	if got, want := run(t, `print (sentence [a] [b] [c])`), "a b c\n"; got != want {
		t.Errorf("(sentence [a] [b] [c]) => %q, want %q", got, want)
	}
	if got, want := run(t, `print (word "a "b "c)`), "abc\n"; got != want {
		t.Errorf("(word \"a \"b \"c) => %q, want %q", got, want)
	}
	if got, want := run(t, `print (and "true "true "true)`), "true\n"; got != want {
		t.Errorf("(and \"true \"true \"true) => %q, want %q", got, want)
	}
	if got, want := run(t, `print (map [sum ?1 ?2] [1 2] [3 4])`), "4 6\n"; got != want {
		t.Errorf("(map [sum ?1 ?2] [1 2] [3 4]) => %q, want %q", got, want)
	}
}

func TestRepeatAccumulatesRepcount(t *testing.T) {
	src := `make "total 0
repeat 5 [make "total :total + repcount]
print :total`
	if got, want := run(t, src), "15\n"; got != want {
		t.Errorf("REPEAT sum 1..5 => %q, want %q", got, want)
	}
}

func TestForCountsInclusive(t *testing.T) {
	got := run(t, `for [i 1 3] [print :i]`)
	if got != "1\n2\n3\n" {
		t.Errorf("FOR [i 1 3] => %q, want %q", got, "1\n2\n3\n")
	}
}

func TestUserDefinedProcedureWithOutput(t *testing.T) {
	src := `to double :x
output :x * 2
end
print double 21`
	if got, want := run(t, src), "42\n"; got != want {
		t.Errorf("user-defined double => %q, want %q", got, want)
	}
}

func TestMapFilterReduceTemplates(t *testing.T) {
	if got, want := run(t, `print map [[:x] :x * :x] [1 2 3]`), "1 4 9\n"; got != want {
		t.Errorf("MAP => %q, want %q", got, want)
	}
	if got, want := run(t, `print filter [[:x] greaterp :x 2] [1 2 3 4]`), "3 4\n"; got != want {
		t.Errorf("FILTER => %q, want %q", got, want)
	}
	if got, want := run(t, `print reduce [[:a :b] :a + :b] [1 2 3 4]`), "10\n"; got != want {
		t.Errorf("REDUCE => %q, want %q", got, want)
	}
}

func TestPotJSONModeEmitsProcedureObject(t *testing.T) {
	src := `to double :x
output :x * 2
end
(pot [double] "json)`
	got := run(t, src)
	for _, want := range []string{`"name":"double"`, `"primitive":false`} {
		if !strings.Contains(got, want) {
			t.Errorf("POT json output = %q, want it to contain %q", got, want)
		}
	}
}

func TestMakeAndThing(t *testing.T) {
	src := `make "x 10
print thing "x`
	if got, want := run(t, src), "10\n"; got != want {
		t.Errorf("MAKE/THING round trip => %q, want %q", got, want)
	}
}

func TestTurtlePrimitivesDelegateToBackend(t *testing.T) {
	e := evaluator.New()
	builtins.RegisterAll(e.Procs)
	var out bytes.Buffer
	tt := turtle.New()
	tt.SetStreams(&out, &out)
	e.InstallBackend(tt)

	src := `forward 100
print pos`
	if _, err := e.ProcessInstructionList(src); err != nil {
		t.Fatalf("ProcessInstructionList error = %v", err)
	}
	if got, want := out.String(), "0 100\n"; got != want {
		t.Errorf("FORWARD 100 then PRINT POS => %q, want %q", got, want)
	}
}
