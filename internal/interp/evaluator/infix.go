package evaluator

import (
	"github.com/cwaldbieser/logopy/internal/parser"
	"github.com/cwaldbieser/logopy/internal/value"
	"github.com/cwaldbieser/logopy/pkg/token"
)

// evaluate produces a single Value from c, honoring infix arithmetic
// and relational operators (spec §4.5.1). Unlike the grammar this
// interpreter is grounded on, no parse-time folding has happened: this
// loop is the only place `+ - * / < <= > >= = <>` are ever resolved.
func (e *Evaluator) evaluate(c *cursor) (value.Value, error) {
	first, err := e.evaluateValue(c, false)
	if err != nil {
		return nil, err
	}
	f, isNum := value.AsFloat(first)
	if !isNum {
		return e.evaluateNonNumericTail(c, first)
	}

	terms := []float64{f}
	for {
		op, ok := c.peekOperator()
		if !ok {
			break
		}
		switch op {
		case token.MINUS:
			c.pop()
			v, err := e.evaluateValue(c, false)
			if err != nil {
				return nil, err
			}
			n, ok := value.AsFloat(v)
			if !ok {
				return nil, e.NewError("expected a number, but got `%s` instead", value.Repr(v, true, false))
			}
			terms = append(terms, -n)
		case token.PLUS:
			c.pop()
			v, err := e.evaluateValue(c, false)
			if err != nil {
				return nil, err
			}
			n, ok := value.AsFloat(v)
			if !ok {
				return nil, e.NewError("expected a number, but got `%s` instead", value.Repr(v, true, false))
			}
			terms = append(terms, n)
		case token.STAR:
			c.pop()
			v, err := e.evaluateValue(c, false)
			if err != nil {
				return nil, err
			}
			n, ok := value.AsFloat(v)
			if !ok {
				return nil, e.NewError("expected a number, but got `%s` instead", value.Repr(v, true, false))
			}
			terms[len(terms)-1] *= n
		case token.SLASH:
			c.pop()
			v, err := e.evaluateValue(c, false)
			if err != nil {
				return nil, err
			}
			n, ok := value.AsFloat(v)
			if !ok {
				return nil, e.NewError("expected a number, but got `%s` instead", value.Repr(v, true, false))
			}
			terms[len(terms)-1] /= n
		case token.LT, token.LTE, token.GT, token.GTE, token.EQ, token.NOTEQ:
			c.pop()
			rhs, err := e.evaluate(c)
			if err != nil {
				return nil, err
			}
			lhs := value.NewNumberWord(sumTerms(terms))
			return e.callRelational(op, lhs, rhs)
		default:
			return value.NewNumberWord(sumTerms(terms)), nil
		}
	}
	return value.NewNumberWord(sumTerms(terms)), nil
}

func sumTerms(terms []float64) float64 {
	total := 0.0
	for _, t := range terms {
		total += t
	}
	return total
}

// evaluateNonNumericTail handles the non-numeric half of §4.5.1 step
//3: only `=`/`<>` are allowed after a non-numeric first operand.
func (e *Evaluator) evaluateNonNumericTail(c *cursor, first value.Value) (value.Value, error) {
	op, ok := c.peekOperator()
	if !ok || (op != token.EQ && op != token.NOTEQ) {
		return first, nil
	}
	c.pop()
	rhs, err := e.evaluateValue(c, false)
	if err != nil {
		return nil, err
	}
	return e.callRelational(op, first, rhs)
}

var relationalPrimitive = map[token.Kind]string{
	token.LT:    "lessp",
	token.LTE:   "lessequalp",
	token.GT:    "greaterp",
	token.GTE:   "greaterequalp",
	token.EQ:    "equalp",
	token.NOTEQ: "notequalp",
}

func (e *Evaluator) callRelational(op token.Kind, lhs, rhs value.Value) (value.Value, error) {
	return e.CallProcedure(relationalPrimitive[op], []value.Value{lhs, rhs})
}

// evaluateValue consumes and returns one value from c (spec §4.5.2).
// In quoted mode (evaluating a list literal's contents) nothing is
// resolved: words, numbers and nested lists are returned verbatim.
func (e *Evaluator) evaluateValue(c *cursor, quoted bool) (value.Value, error) {
	n := c.peek()
	if n == nil {
		return nil, e.NewError("expected a value but instead got end of input")
	}

	switch node := n.(type) {
	case parser.ListLit:
		c.pop()
		return e.evaluateQuotedList(node.Items)

	case parser.SpecialForm:
		c.pop()
		return e.processSpecialFormOrExpression(node)

	case parser.Group:
		c.pop()
		return e.evaluate(newCursor(node.Items))

	case parser.Number:
		c.pop()
		return value.NewNumberWord(node.Value), nil
	}

	if quoted {
		c.pop()
		return quotedAtomValue(n), nil
	}

	atom, ok := n.(parser.Atom)
	if !ok {
		// A bare operator atom reaching here (e.g. a line starting with
		// `+`) has nothing to be an operator of.
		c.pop()
		return nil, e.NewError("expected a value, but got `%s` instead", atomText(n))
	}

	switch {
	case atom.Kind == token.MINUS:
		// A standalone `-` in value position negates the expression
		// that follows it (spec §9's unary-negation note; see
		// internal/parser's design note on why this never arrives as
		// a merged `-word` atom the way the reference lexer produces).
		c.pop()
		v, err := e.evaluate(c)
		if err != nil {
			return nil, err
		}
		f, ok := value.AsFloat(v)
		if !ok {
			return nil, e.NewError("expected a number after unary `-`, but got `%s` instead", value.Repr(v, true, false))
		}
		return value.NewNumberWord(-f), nil

	case len(atom.Text) > 0 && atom.Text[0] == '"':
		c.pop()
		return value.NewWord(atom.Text[1:]), nil

	case len(atom.Text) > 0 && atom.Text[0] == ':':
		c.pop()
		name := atom.Text[1:]
		if e.evaluatingDefault {
			return e.env.GetFromScopeChainExcludingInnermost(name)
		}
		return e.env.Get(name)

	default:
		return e.processCommand(c)
	}
}

// evaluateQuotedList evaluates a ListLit's contents in quoted mode,
// producing a fresh List of literal Words/nested Lists (spec §4.5.2's
// "List -> evaluate in quoted mode" case, mirroring evaluate_list).
func (e *Evaluator) evaluateQuotedList(items []parser.Node) (value.Value, error) {
	qc := newCursor(items)
	var out []value.Value
	for !qc.atEnd() {
		v, err := e.evaluateValue(qc, true)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return value.NewList(out), nil
}

func quotedAtomValue(n parser.Node) value.Value {
	switch node := n.(type) {
	case parser.Number:
		return value.NewNumberWord(node.Value)
	case parser.Atom:
		return value.NewWord(node.Text)
	case parser.ListLit:
		// Reached only via recursive calls from evaluateQuotedList's
		// non-List branches; lists are handled by their own case there.
		return value.EmptyList()
	default:
		return value.NewWord(atomText(n))
	}
}

func atomText(n parser.Node) string {
	switch node := n.(type) {
	case parser.Atom:
		return node.Text
	case parser.Number:
		return node.Text
	default:
		return ""
	}
}
