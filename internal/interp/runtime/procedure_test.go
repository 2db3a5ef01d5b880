package runtime

import "testing"

func TestTableLookupIsCaseInsensitive(t *testing.T) {
	tbl := NewTable()
	tbl.Define(&Procedure{Name: "Forward", RequiredInputs: []string{"dist"}})
	p, ok := tbl.Lookup("FORWARD")
	if !ok {
		t.Fatal("expected a case-insensitive lookup hit")
	}
	if p.Name != "Forward" {
		t.Errorf("p.Name = %q, want Forward", p.Name)
	}
}

func TestArityWithRestInputIsUnbounded(t *testing.T) {
	p := &Procedure{RequiredInputs: []string{"a"}, RestInput: "rest"}
	if p.MaxArity() != -1 {
		t.Errorf("MaxArity() = %d, want -1", p.MaxArity())
	}
	if p.MinArity() != 1 {
		t.Errorf("MinArity() = %d, want 1", p.MinArity())
	}
}

func TestArityWithoutRestInput(t *testing.T) {
	p := &Procedure{
		RequiredInputs: []string{"a", "b"},
		OptionalInputs: []OptionalInput{{Name: "c"}},
	}
	if p.MaxArity() != 3 {
		t.Errorf("MaxArity() = %d, want 3", p.MaxArity())
	}
}

func TestEraseRemovesDefinition(t *testing.T) {
	tbl := NewTable()
	tbl.Define(&Procedure{Name: "square"})
	tbl.Erase("SQUARE")
	if _, ok := tbl.Lookup("square"); ok {
		t.Error("expected square to be erased")
	}
}
