package graph

import "testing"

func mustParse(t *testing.T, s string) *Graph {
	t.Helper()
	g, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", s, err)
	}
	return g
}

func TestCounts(t *testing.T) {
	tests := []struct {
		input    string
		atoms    int
		children int
		size     int
	}{
		{input: "()", atoms: 0, children: 0, size: 0},
		{input: "[]", atoms: 0, children: 0, size: 0},
		{input: "([[]])", atoms: 0, children: 1, size: 1},
		{input: "(A, [B, C], [[D]])", atoms: 1, children: 2, size: 3},
	}

	for _, tt := range tests {
		g := mustParse(t, tt.input)
		if got := g.NumAtoms(); got != tt.atoms {
			t.Errorf("%q NumAtoms = %d, want %d", tt.input, got, tt.atoms)
		}
		if got := g.NumChildren(); got != tt.children {
			t.Errorf("%q NumChildren = %d, want %d", tt.input, got, tt.children)
		}
		if got := g.Size(); got != tt.size {
			t.Errorf("%q Size = %d, want %d", tt.input, got, tt.size)
		}
	}
}

func TestAt(t *testing.T) {
	g := mustParse(t, "(A, [B])")

	tests := []struct {
		name  string
		index int
		want  string
	}{
		{name: "Child", index: 0, want: "[B]"},
		{name: "AtomWrapped", index: 1, want: "(A)"},
		{name: "OutOfRange", index: 2, want: "()"},
		{name: "Negative", index: -1, want: "()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.At(tt.index).String(); got != tt.want {
				t.Errorf("At(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "SameContent", a: "(A, [B])", b: "([B], A)", want: true},
		{name: "PolarityIgnored", a: "(A, [B])", b: "[A, [B]]", want: true},
		{name: "DifferentAtoms", a: "(A)", b: "(B)", want: false},
		{name: "DifferentNesting", a: "([A])", b: "([[A]])", want: false},
		{name: "DifferentArity", a: "([B], [B])", b: "([B])", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := mustParse(t, tt.a), mustParse(t, tt.b)
			if got := a.Equal(b); got != tt.want {
				t.Errorf("Equal(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestContainsAtom(t *testing.T) {
	g := mustParse(t, "(A, [B, [C]])")

	for atom, want := range map[string]bool{"A": true, "B": true, "C": true, "D": false} {
		if got := g.ContainsAtom(atom); got != want {
			t.Errorf("ContainsAtom(%q) = %v, want %v", atom, got, want)
		}
	}
}

func TestContainsGraph(t *testing.T) {
	g := mustParse(t, "([A], [[B], C])")

	tests := []struct {
		name   string
		target string
		want   bool
	}{
		{name: "DirectChild", target: "[A]", want: true},
		{name: "NestedChild", target: "[B]", want: true},
		{name: "Absent", target: "[C]", want: false},
		{name: "SelfIsNotContained", target: "([A], [[B], C])", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := mustParse(t, tt.target)
			if got := g.ContainsGraph(target); got != tt.want {
				t.Errorf("ContainsGraph(%q) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := mustParse(t, "(A, [B])")
	c := g.Clone()

	c.Atoms[0] = "Z"
	c.Children[0].Atoms[0] = "Y"

	if got := g.String(); got != "([B], A)" {
		t.Errorf("original mutated through clone: %q", got)
	}
	if !mustParse(t, "(A, [B])").Equal(g) {
		t.Error("original no longer equal to its parse")
	}
}
