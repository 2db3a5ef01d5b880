package evaluator

import (
	"strings"

	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/pkg/token"

	"github.com/cwaldbieser/logopy/internal/interperr"
	"github.com/cwaldbieser/logopy/internal/parser"
)

// parseTo consumes a `TO name ... END` definition from c and installs
// it into the procedure table (spec §4.3). c is the same top-level
// cursor process_command is driving — TO's grammar is consumed inline
// from the surrounding program, not from a sub-stream.
func (e *Evaluator) parseTo(c *cursor) error {
	nameNode := c.pop()
	if nameNode == nil {
		return e.NewError("TO requires a procedure name")
	}
	nameAtom, ok := nameNode.(parser.Atom)
	if !ok {
		return e.NewError("TO requires a procedure name, but got `%s`", nodeDisplay(nameNode))
	}
	name := nameAtom.Text

	var required []string
	for {
		a, ok := c.peek().(parser.Atom)
		if !ok || !isDotsName(a) {
			break
		}
		c.pop()
		required = append(required, a.Text[1:])
	}

	var optional []runtime.OptionalInput
	for {
		l, ok := c.peek().(parser.ListLit)
		if !ok || len(l.Items) < 2 {
			break
		}
		head, ok := l.Items[0].(parser.Atom)
		if !ok || !isDotsName(head) {
			break
		}
		c.pop()
		optional = append(optional, runtime.OptionalInput{
			Name:    head.Text[1:],
			Default: append([]parser.Node{}, l.Items[1:]...),
		})
	}

	restInput := ""
	if l, ok := c.peek().(parser.ListLit); ok && len(l.Items) == 1 {
		if head, ok := l.Items[0].(parser.Atom); ok && isDotsName(head) {
			c.pop()
			restInput = head.Text[1:]
		}
	}

	defaultArity := len(required)
	if num, ok := c.peek().(parser.Number); ok {
		c.pop()
		defaultArity = int(num.Value)
	}

	var body []parser.Node
	for {
		n := c.pop()
		if n == nil {
			return interperr.NewExpectedEndError(nameAtom.Pos, name, e.Source, e.File)
		}
		if a, ok := n.(parser.Atom); ok && strings.EqualFold(a.Text, "end") {
			break
		}
		body = append(body, n)
	}

	e.Procs.Define(&runtime.Procedure{
		Name:           name,
		RequiredInputs: required,
		OptionalInputs: optional,
		RestInput:      restInput,
		DefaultArity:   defaultArity,
		Body:           body,
	})
	return nil
}

// isDotsName reports whether a is a `:name` formal-parameter atom
// (spec §4.3 steps 2-4): a WORD atom starting with `:`, with at least
// one character after it.
func isDotsName(a parser.Atom) bool {
	return a.Kind == token.WORD && len(a.Text) > 1 && a.Text[0] == ':'
}
