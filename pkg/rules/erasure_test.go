package rules

import (
	"testing"

	"github.com/peircelab/peirce/pkg/graph"
)

func TestFindErasable(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []graph.Address
	}{
		{
			// ([B, C], A): nothing at the root level (even), both elements of
			// [B, C] at level 1.
			name:  "OddLevelOnly",
			input: "(A, [B, C])",
			want:  []graph.Address{{0, 0}, {0, 1}},
		},
		{
			// The sole element of a singleton cut is not erasable.
			name:  "SingletonExcluded",
			input: "(A, [B])",
			want:  nil,
		},
		{
			// ([[A, B]]): level-1 cut is a singleton, level-2 contents are even.
			name:  "EvenLevelExcluded",
			input: "([[A, B]])",
			want:  nil,
		},
		{
			// ([[C], A]): both elements of the level-1 cut qualify; the C
			// inside [C] sits at level 2 and does not.
			name:  "MixedChildAndAtom",
			input: "([A, [C]])",
			want:  []graph.Address{{0, 0}, {0, 1}},
		},
		{
			// Level 3 is odd again: ([[[A, B]]]) exposes A and B.
			name:  "LevelThree",
			input: "([[[A, B]]])",
			want:  []graph.Address{{0, 0, 0, 0}, {0, 0, 0, 1}},
		},
		{name: "EmptySheet", input: "()", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.input)
			got := FindErasable(g)
			if !addrsEqual(got, tt.want) {
				t.Errorf("FindErasable(%q) = %v, want %v", g, got, tt.want)
			}
		})
	}
}

func TestFindErasableNeverEvenLevel(t *testing.T) {
	inputs := []string{"(A, [B, C], [[D]])", "([A, [B, [C, D]]])", "([[A], [B], C])"}

	for _, input := range inputs {
		g := mustParse(t, input)
		for _, addr := range FindErasable(g) {
			// Odd address length means the named element lives at an odd
			// nesting level, since each step descends exactly one cut.
			if len(addr)%2 != 0 {
				t.Errorf("FindErasable(%q) returned even-level candidate %v", g, addr)
			}
		}
	}
}

func TestErase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		addr  graph.Address
		want  string
	}{
		{name: "Atom", input: "(A, [B, C])", addr: graph.Address{0, 0}, want: "(A, [C])"},
		{name: "OtherAtom", input: "(A, [B, C])", addr: graph.Address{0, 1}, want: "(A, [B])"},
		{name: "ChildCut", input: "([A, [C]])", addr: graph.Address{0, 0}, want: "([A])"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.input)
			before := g.String()

			got, err := Erase(g, tt.addr)
			if err != nil {
				t.Fatalf("Erase(%q, %v) error: %v", g, tt.addr, err)
			}
			if want := mustParse(t, tt.want); !got.Equal(want) {
				t.Errorf("Erase(%q, %v) = %q, want %q", before, tt.addr, got, want)
			}
			if g.String() != before {
				t.Errorf("input mutated: %q -> %q", before, g)
			}
		})
	}
}

func TestEraseShrinksParentLevel(t *testing.T) {
	g := mustParse(t, "(A, [B, C])")

	out, err := Erase(g, graph.Address{0, 0})
	if err != nil {
		t.Fatalf("Erase error: %v", err)
	}
	if got, want := out.Children[0].Size(), g.Children[0].Size()-1; got != want {
		t.Errorf("parent level size = %d, want %d", got, want)
	}
}
