package facts

import "testing"

func TestApply(t *testing.T) {
	tests := []struct {
		a    int
		op   Operation
		b    int
		want int
	}{
		{3, Multiplication, 4, 12},
		{7, Addition, 8, 15},
		{9, Subtraction, 4, 5},
		{5, Subtraction, 5, 0},
	}
	for _, tt := range tests {
		if got := Apply(tt.a, tt.op, tt.b); got != tt.want {
			t.Errorf("Apply(%d, %s, %d) = %d, want %d", tt.a, tt.op, tt.b, got, tt.want)
		}
	}
}

func TestKeyIsOrdered(t *testing.T) {
	if NewKey(3, Multiplication, 4) == NewKey(4, Multiplication, 3) {
		t.Fatal("3x4 and 4x3 must have distinct keys")
	}
	if got := NewKey(3, Multiplication, 4); got != "3-multiplication-4" {
		t.Errorf("key = %q, want %q", got, "3-multiplication-4")
	}
}

func TestKeyParse(t *testing.T) {
	a, op, b, err := NewKey(12, Subtraction, 7).Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if a != 12 || op != Subtraction || b != 7 {
		t.Errorf("parsed (%d, %s, %d), want (12, subtraction, 7)", a, op, b)
	}

	for _, bad := range []Key{"", "3x4", "a-addition-1", "1-division-2"} {
		if _, _, _, err := bad.Parse(); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", bad)
		}
	}
}

func TestParseOperation(t *testing.T) {
	tests := map[string]Operation{
		"multiplication": Multiplication,
		"x":              Multiplication,
		"ADD":            Addition,
		"-":              Subtraction,
	}
	for in, want := range tests {
		got, err := ParseOperation(in)
		if err != nil {
			t.Errorf("ParseOperation(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseOperation(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseOperation("divide"); err == nil {
		t.Error("expected error for unsupported operation")
	}
}
