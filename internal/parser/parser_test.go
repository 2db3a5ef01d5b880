package parser

import (
	"testing"

	"github.com/cwaldbieser/logopy/internal/lexer"
	"github.com/cwaldbieser/logopy/pkg/token"
)

func parse(t *testing.T, src string) []Node {
	t.Helper()
	toks, err := lexer.New(src).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", src, err)
	}
	nodes, err := New(toks, src, "").Parse()
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", src, err)
	}
	return nodes
}

func TestParseFlatCommandSequence(t *testing.T) {
	nodes := parse(t, "print 2 + 3 * 5")
	if len(nodes) != 6 {
		t.Fatalf("got %d nodes, want 6 (no parse-time infix folding): %#v", len(nodes), nodes)
	}
	if a, ok := nodes[0].(Atom); !ok || a.Text != "print" {
		t.Errorf("nodes[0] = %#v, want Atom(print)", nodes[0])
	}
	if op, ok := nodes[2].(Atom); !ok || op.Kind != token.PLUS {
		t.Errorf("nodes[2] = %#v, want Atom(+) with Kind PLUS", nodes[2])
	}
}

func TestParseListLiteralNotEvaluated(t *testing.T) {
	nodes := parse(t, "show [1 + 2]")
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	lst, ok := nodes[1].(ListLit)
	if !ok {
		t.Fatalf("nodes[1] = %#v, want ListLit", nodes[1])
	}
	if len(lst.Items) != 3 {
		t.Fatalf("list has %d items, want 3 (1, +, 2 kept literal): %#v", len(lst.Items), lst.Items)
	}
	if _, ok := lst.Items[1].(Atom); !ok {
		t.Errorf("list.Items[1] = %#v, want a literal Atom(+), not an operator", lst.Items[1])
	}
}

func TestParseSpecialFormVariableArity(t *testing.T) {
	nodes := parse(t, "(sum 1 2 3)")
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(nodes))
	}
	sf, ok := nodes[0].(SpecialForm)
	if !ok {
		t.Fatalf("nodes[0] = %#v, want SpecialForm", nodes[0])
	}
	if sf.Name != "sum" || len(sf.Args) != 3 {
		t.Errorf("SpecialForm = %+v, want Name=sum Args len 3", sf)
	}
}

func TestParseGroupOverrideWhenSecondTokenIsOperator(t *testing.T) {
	nodes := parse(t, "(heading * -1 + 90)")
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(nodes))
	}
	grp, ok := nodes[0].(Group)
	if !ok {
		t.Fatalf("nodes[0] = %#v, want Group (override rule), got %T", nodes[0], nodes[0])
	}
	if len(grp.Items) != 5 {
		t.Fatalf("Group has %d items, want 5: %#v", len(grp.Items), grp.Items)
	}
}

func TestParseGroupWhenFirstTokenIsNotCommand(t *testing.T) {
	nodes := parse(t, "(3 + 4)")
	grp, ok := nodes[0].(Group)
	if !ok {
		t.Fatalf("nodes[0] = %#v, want Group", nodes[0])
	}
	if len(grp.Items) != 3 {
		t.Errorf("Group has %d items, want 3", len(grp.Items))
	}
}

func TestParseSingleCommandAtomParenIsZeroArgSpecialForm(t *testing.T) {
	// (heading) is an explicit 0-arg call, not a Group: a leading
	// command atom always makes a SpecialForm regardless of length,
	// unless the second item is an infix operator.
	nodes := parse(t, "(heading)")
	sf, ok := nodes[0].(SpecialForm)
	if !ok {
		t.Fatalf("nodes[0] = %#v, want SpecialForm", nodes[0])
	}
	if sf.Name != "heading" || len(sf.Args) != 0 {
		t.Errorf("SpecialForm = %+v, want Name=heading Args len 0", sf)
	}
}

func TestParseSingleNonCommandAtomParenIsGroup(t *testing.T) {
	nodes := parse(t, "(:x)")
	grp, ok := nodes[0].(Group)
	if !ok {
		t.Fatalf("nodes[0] = %#v, want Group", nodes[0])
	}
	if len(grp.Items) != 1 {
		t.Errorf("Group has %d items, want 1", len(grp.Items))
	}
}

func TestParseQmarkRewrite(t *testing.T) {
	nodes := parse(t, "?1 ?2 ?")
	sf1, ok := nodes[0].(SpecialForm)
	if !ok || sf1.Name != "?" {
		t.Fatalf("nodes[0] = %#v, want SpecialForm(?)", nodes[0])
	}
	if n, ok := sf1.Args[0].(Number); !ok || n.Value != 1 {
		t.Errorf("?1 arg = %#v, want Number(1)", sf1.Args[0])
	}
	if _, ok := nodes[2].(Atom); !ok {
		t.Errorf("bare `?` should stay a literal Atom, got %#v", nodes[2])
	}
}

func TestParseUnmatchedBracketIsParseError(t *testing.T) {
	_, err := func() ([]Node, error) {
		toks, terr := lexer.New("print [1 2").Tokenize()
		if terr != nil {
			return nil, terr
		}
		return New(toks, "print [1 2", "").Parse()
	}()
	if err == nil {
		t.Fatal("expected a ParseError for an unmatched `[`")
	}
}

func TestParseNestedListLiteral(t *testing.T) {
	nodes := parse(t, "[a [b c] d]")
	lst := nodes[0].(ListLit)
	if len(lst.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(lst.Items))
	}
	nested, ok := lst.Items[1].(ListLit)
	if !ok || len(nested.Items) != 2 {
		t.Fatalf("nested list = %#v, want ListLit with 2 items", lst.Items[1])
	}
}
