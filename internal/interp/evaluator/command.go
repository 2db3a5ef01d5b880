package evaluator

import (
	"strings"

	"github.com/cwaldbieser/logopy/internal/interperr"
	"github.com/cwaldbieser/logopy/internal/parser"
	"github.com/cwaldbieser/logopy/internal/value"
	"github.com/cwaldbieser/logopy/pkg/token"
)

// processCommand consumes one top-level command invocation from c
// (spec §4.5.3). `?N` has already been rewritten to a `(?, N)`
// SpecialForm at parse time, so step 1 of the reference algorithm
// (popping and checking for `?N`) has nothing left to do here.
func (e *Evaluator) processCommand(c *cursor) (value.Value, error) {
	if e.backend.Halted() {
		return nil, interperr.HaltSignal{}
	}
	n := c.pop()
	if n == nil {
		return nil, e.NewError("expected a command but instead got end of input")
	}

	if sf, ok := n.(parser.SpecialForm); ok {
		return e.processSpecialFormOrExpression(sf)
	}

	atom, ok := n.(parser.Atom)
	if !ok || !atom.IsCommandWord() {
		return nil, e.NewError("expected a command; instead, got `%s`", nodeDisplay(n))
	}

	command := strings.ToLower(atom.Text)
	if command == "to" {
		return nil, e.parseTo(c)
	}

	proc, ok := e.Procs.Lookup(command)
	if !ok {
		return nil, e.NewError("I don't know how to `%s`", atom.Text)
	}
	args, err := e.evaluateArgsForCommand(proc.DefaultArity, c)
	if err != nil {
		return nil, err
	}
	for i, a := range args {
		if a == nil {
			return nil, e.NewError("`%s` received a null value for argument %d", atom.Text, i+1)
		}
	}
	return e.executeProcedure(proc, args)
}

// evaluateArgsForCommand calls evaluate exactly arity times, per spec
// §4.5.3 step 5.
func (e *Evaluator) evaluateArgsForCommand(arity int, c *cursor) ([]value.Value, error) {
	args := make([]value.Value, 0, arity)
	for len(args) < arity {
		v, err := e.evaluate(c)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

// processSpecialFormOrExpression handles a parenthesised SpecialForm
// node (spec §4.5.4). The "second inner token is an operator" override
// is already baked into the parser's Group-vs-SpecialForm
// classification (internal/parser.classifyParen), so the only
// remaining ambiguity here is runtime: the leading word might not
// actually name a known primitive or procedure, in which case the
// whole form falls back to being evaluated as an ordinary expression
// that merely starts with that word.
func (e *Evaluator) processSpecialFormOrExpression(sf parser.SpecialForm) (value.Value, error) {
	proc, ok := e.Procs.Lookup(sf.Name)
	if !ok {
		asExpr := append([]parser.Node{parser.Atom{Text: sf.Name, Kind: token.WORD, Pos: sf.Pos}}, sf.Args...)
		return e.evaluate(newCursor(asExpr))
	}

	argsCursor := newCursor(sf.Args)
	var args []value.Value
	for !argsCursor.atEnd() {
		v, err := e.evaluate(argsCursor)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	maxArity := proc.MaxArity()
	if maxArity != -1 && len(args) > maxArity {
		return nil, e.NewError("too many arguments for `%s`", sf.Name)
	}
	if len(args) < proc.MinArity() {
		return nil, e.NewError("not enough arguments for `%s`", sf.Name)
	}
	return e.executeProcedure(proc, args)
}

func nodeDisplay(n parser.Node) string {
	switch v := n.(type) {
	case parser.Atom:
		return v.Text
	case parser.Number:
		return v.Text
	default:
		return "a parenthesised or bracketed form"
	}
}
