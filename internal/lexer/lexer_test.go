package lexer

import (
	"testing"

	"github.com/cwaldbieser/logopy/pkg/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func literals(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Literal
	}
	return out
}

func TestTokenizeArithmetic(t *testing.T) {
	toks, err := New("print 2 + 3 * 5").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	wantLit := []string{"print", "2", "+", "3", "*", "5"}
	got := literals(toks)
	if len(got) != len(wantLit) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(wantLit), got)
	}
	for i, w := range wantLit {
		if got[i] != w {
			t.Errorf("token %d = %q, want %q", i, got[i], w)
		}
	}
}

func TestTokenizeNegativeNumberVsMinus(t *testing.T) {
	toks, err := New(":n - 2").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	want := []token.Kind{token.WORD, token.MINUS, token.NUMBER}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d kind = %v, want %v", i, got[i], want[i])
		}
	}

	toks2, err := New("make \"x -5").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	lit := literals(toks2)
	if lit[2] != "-5" {
		t.Errorf("expected `-5` to lex as one numeric token, got %q", lit[2])
	}
}

func TestTokenizeListLiteral(t *testing.T) {
	toks, err := New("[hello [nested] world]").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	want := []token.Kind{
		token.LBRACKET, token.WORD, token.LBRACKET, token.WORD, token.RBRACKET, token.WORD, token.RBRACKET,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), literals(toks))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d kind = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeCommentStripped(t *testing.T) {
	toks, err := New("show 1 ; a comment\nshow 2").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	lit := literals(toks)
	want := []string{"show", "1", "show", "2"}
	if len(lit) != len(want) {
		t.Fatalf("got %v, want %v", lit, want)
	}
	for i := range want {
		if lit[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, lit[i], want[i])
		}
	}
}

func TestTokenizeEscapedChar(t *testing.T) {
	toks, err := New(`"hello\ world`).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1: %v", len(toks), literals(toks))
	}
	if toks[0].Literal != `"hello world` {
		t.Errorf("literal = %q, want %q", toks[0].Literal, `"hello world`)
	}
}

func TestTokenizeRelationalOperators(t *testing.T) {
	toks, err := New("<> >= <= < >").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	want := []token.Kind{token.NOTEQ, token.GTE, token.LTE, token.LT, token.GT}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d kind = %v, want %v", i, got[i], want[i])
		}
	}
}
