package term

import (
	"errors"
	"testing"

	"github.com/cognicore/resolv/pkg/resolv/internalerr"
)

func TestParseAtomic(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
		name string
	}{
		{"x", Variable, "x"},
		{"y", Variable, "y"},
		{"John", Constant, "John"},
		{"A", Constant, "A"},
		{"xy", Constant, "xy"},
		{"  Mary ", Constant, "Mary"},
	}

	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", c.in, err)
		}
		if got.Kind != c.kind || got.Name != c.name {
			t.Errorf("Parse(%q) = %v %q, want %v %q", c.in, got.Kind, got.Name, c.kind, c.name)
		}
	}
}

func TestParseCompound(t *testing.T) {
	got, err := Parse("Parent(x, y)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Kind != Compound || got.Name != "Parent" || len(got.Args) != 2 {
		t.Fatalf("unexpected term: %v", got)
	}
	if got.Args[0].Kind != Variable || got.Args[0].Name != "x" {
		t.Errorf("first arg should be variable x, got %v", got.Args[0])
	}
	if got.String() != "Parent(x,y)" {
		t.Errorf("canonical form = %q, want Parent(x,y)", got.String())
	}
}

func TestParseNested(t *testing.T) {
	got, err := Parse("Loves(father(x),x)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Name != "Loves" || len(got.Args) != 2 {
		t.Fatalf("unexpected term: %v", got)
	}
	inner := got.Args[0]
	if inner.Kind != Compound || inner.Name != "father" || len(inner.Args) != 1 {
		t.Fatalf("nested arg not parsed: %v", inner)
	}
	if inner.Args[0].Kind != Variable {
		t.Errorf("father's arg should be a variable, got %v", inner.Args[0])
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"",
		"Parent(x,y",
		"Parent(x,,y)",
		"Parent()",
		"(x,y)",
		"Parent(x))",
		"x,y",
		"not a term",
	}
	for _, in := range bad {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		} else if !errors.Is(err, internalerr.ErrParse) {
			t.Errorf("Parse(%q) error should match ErrParse, got %v", in, err)
		}
	}
}

func TestEqualAndGround(t *testing.T) {
	a, _ := Parse("Knows(John,x)")
	b, _ := Parse("Knows(John, x)")
	c, _ := Parse("Knows(John,Mary)")

	if !a.Equal(b) {
		t.Error("whitespace-insensitive parses should be equal")
	}
	if a.Equal(c) {
		t.Error("different terms should not be equal")
	}
	if a.IsGround() {
		t.Error("Knows(John,x) is not ground")
	}
	if !c.IsGround() {
		t.Error("Knows(John,Mary) is ground")
	}
}

func TestVariablesAndRename(t *testing.T) {
	tm, _ := Parse("Between(x,father(y),x)")
	vars := tm.Variables(map[string]bool{}, nil)
	if len(vars) != 2 || vars[0] != "x" || vars[1] != "y" {
		t.Fatalf("Variables = %v, want [x y]", vars)
	}

	renamed := tm.Rename(func(v string) string { return v + "'" })
	if renamed.String() != "Between(x',father(y'),x')" {
		t.Errorf("Rename = %q", renamed.String())
	}
	// receiver untouched
	if tm.String() != "Between(x,father(y),x)" {
		t.Errorf("Rename mutated the receiver: %q", tm.String())
	}
}
