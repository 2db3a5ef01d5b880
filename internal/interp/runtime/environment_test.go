package runtime

import (
	"testing"

	"github.com/cwaldbieser/logopy/internal/value"
)

func TestMakeSearchesThenFallsBackToGlobal(t *testing.T) {
	e := NewEnvironment()
	e.Make("x", value.NewWord("1")) // no existing binding -> global
	e.PushScope()
	e.Make("x", value.NewWord("2")) // still only bound in global -> overwrite global
	got, err := e.Get("x")
	if err != nil {
		t.Fatalf("Get(x) error = %v", err)
	}
	if got.String() != "2" {
		t.Errorf("Get(x) = %v, want 2", got)
	}
	e.PopScope()
	got, _ = e.Get("x")
	if got.String() != "2" {
		t.Errorf("after pop, Get(x) = %v, want 2 (MAKE wrote through to global)", got)
	}
}

func TestLocalMakeAlwaysWritesInnermost(t *testing.T) {
	e := NewEnvironment()
	e.Make("x", value.NewWord("global"))
	e.PushScope()
	e.LocalMake("x", value.NewWord("inner"))
	got, _ := e.Get("x")
	if got.String() != "inner" {
		t.Errorf("Get(x) = %v, want inner", got)
	}
	e.PopScope()
	got, _ = e.Get("x")
	if got.String() != "global" {
		t.Errorf("after pop, Get(x) = %v, want global (LOCALMAKE must not touch it)", got)
	}
}

func TestLocalDeclaresUnbound(t *testing.T) {
	e := NewEnvironment()
	e.Local("y")
	if _, err := e.Get("y"); err == nil {
		t.Error("expected an error reading an unbound LOCAL variable")
	}
}

func TestGetUnknownVariableErrors(t *testing.T) {
	e := NewEnvironment()
	if _, err := e.Get("nope"); err == nil {
		t.Error("expected an error for an unbound, never-declared variable")
	}
}

func TestRepcountStackDefaultsToMinusOne(t *testing.T) {
	e := NewEnvironment()
	if got := e.GetRepcount(); got != -1 {
		t.Errorf("GetRepcount() = %d, want -1 with no active frame", got)
	}
	e.CreateRepcountScope()
	e.SetRepcount(3)
	if got := e.GetRepcount(); got != 3 {
		t.Errorf("GetRepcount() = %d, want 3", got)
	}
	e.DestroyRepcountScope()
	if got := e.GetRepcount(); got != -1 {
		t.Errorf("GetRepcount() after destroy = %d, want -1", got)
	}
}

func TestPlaceholderStack(t *testing.T) {
	e := NewEnvironment()
	e.PushPlaceholders([]value.Value{value.NewWord("a"), value.NewWord("b")})
	v, err := e.GetPlaceholder(1)
	if err != nil || v.String() != "b" {
		t.Errorf("GetPlaceholder(1) = %v, %v, want b, nil", v, err)
	}
	if _, err := e.GetPlaceholder(5); err == nil {
		t.Error("expected an out-of-range error")
	}
	e.PopPlaceholders()
	if _, err := e.GetPlaceholder(0); err == nil {
		t.Error("expected an error once the placeholder frame is popped")
	}
}

func TestPopGlobalScopePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected PopScope on the global scope to panic")
		}
	}()
	NewEnvironment().PopScope()
}
