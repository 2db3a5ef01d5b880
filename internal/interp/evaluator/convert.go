package evaluator

import (
	"github.com/cwaldbieser/logopy/internal/lexer"
	"github.com/cwaldbieser/logopy/internal/parser"
	"github.com/cwaldbieser/logopy/internal/value"
	"github.com/cwaldbieser/logopy/pkg/token"
)

// nodesFromValues turns an already-evaluated instructionlist (a
// List's elements, produced by quoted-mode evaluation) back into a
// node sequence process_commands can run. Quoted-mode evaluation never
// altered a Word's spelling, but internal/parser's quoted-list grammar
// turns every operator and parenthesis into a literal word, so a word
// spelled as an infix operator is given its operator kind back here.
// Parentheses are not rebuilt: inside a run list `(` and `)` remain
// plain words, so a parenthesised form there is not evaluated as one.
func nodesFromValues(items []value.Value) ([]parser.Node, error) {
	nodes := make([]parser.Node, 0, len(items))
	for _, v := range items {
		n, err := nodeFromValue(v)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func nodeFromValue(v value.Value) (parser.Node, error) {
	switch t := v.(type) {
	case value.Word:
		if t.IsNumber() {
			f, _ := t.Float()
			return parser.Number{Text: t.Text, Value: f}, nil
		}
		if qn, ok := parseQmarkText(t.Text); ok {
			return parser.SpecialForm{Name: "?", Args: []parser.Node{parser.Number{Value: float64(qn)}}}, nil
		}
		if toks, err := lexer.New(t.Text).Tokenize(); err == nil && len(toks) == 1 && toks[0].Kind.IsInfixOperator() {
			return parser.Atom{Text: t.Text, Kind: toks[0].Kind}, nil
		}
		return parser.Atom{Text: t.Text, Kind: token.WORD}, nil
	case value.List:
		items, err := nodesFromValues(t.Items())
		if err != nil {
			return nil, err
		}
		return parser.ListLit{Items: items}, nil
	default:
		return nil, nil
	}
}

// parseQmarkText mirrors internal/parser's parseQmark, duplicated here
// (unexported, tiny) rather than exported from internal/parser purely
// to service this one conversion: a `?N` word stored in a list and
// later run as code must still behave as a template placeholder.
func parseQmarkText(text string) (int, bool) {
	if len(text) < 2 || text[0] != '?' {
		return 0, false
	}
	n := 0
	for _, c := range text[1:] {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	if n < 1 {
		return 0, false
	}
	return n, true
}
