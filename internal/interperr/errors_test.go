package interperr

import (
	"strings"
	"testing"

	"github.com/cwaldbieser/logopy/pkg/token"
)

func TestLogoErrorFormatIncludesCaret(t *testing.T) {
	src := "make \"x 1\nshow :y\n"
	err := NewLogoError(token.Position{Line: 2, Column: 6}, "SHOW doesn't know what :y is", src, "")
	out := err.Format(false)
	if !strings.Contains(out, "show :y") {
		t.Errorf("Format() missing source line, got:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("Format() missing caret, got:\n%s", out)
	}
}

func TestExpectedEndErrorIsParseError(t *testing.T) {
	var err error = NewExpectedEndError(token.Position{Line: 1, Column: 1}, "square", "to square\n", "")
	var pe *ParseError
	if e, ok := err.(*ExpectedEndError); !ok {
		t.Fatalf("expected *ExpectedEndError, got %T", err)
	} else {
		pe = e.ParseError
	}
	if pe == nil {
		t.Fatal("ExpectedEndError should embed a non-nil ParseError")
	}
}

func TestOutputSignalCarriesValue(t *testing.T) {
	sig := OutputSignal{Value: "hi"}
	if sig.Value != "hi" {
		t.Errorf("OutputSignal.Value = %v, want hi", sig.Value)
	}
}
