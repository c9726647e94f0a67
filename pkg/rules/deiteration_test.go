package rules

import (
	"testing"

	"github.com/peircelab/peirce/pkg/graph"
)

func TestFindDeiterable(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []graph.Address
	}{
		{
			// ([A], A): the copy of A inside the cut duplicates the root atom.
			name:  "AtomCopyInCut",
			input: "(A, [A])",
			want:  []graph.Address{{0, 0}},
		},
		{
			// ([A, B], A): A at 0.0 duplicates the root atom; B has no original.
			name:  "OnlyDuplicatedAtom",
			input: "(A, [A, B])",
			want:  []graph.Address{{0, 0}},
		},
		{
			// ([A], [[A], B]): the nested [A] duplicates the root child [A].
			name:  "SubgraphCopy",
			input: "([A], [[A], B])",
			want:  []graph.Address{{1, 0}},
		},
		{
			// Deep copy: A recurs two cuts down.
			name:  "DeepAtomCopy",
			input: "(A, [B, [A, C]])",
			want:  []graph.Address{{0, 0, 0}},
		},
		{name: "NoDuplicates", input: "(A, [B])", want: nil},
		{name: "NoChildren", input: "(A, B)", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.input)
			got := FindDeiterable(g)
			if !addrsEqual(got, tt.want) {
				t.Errorf("FindDeiterable(%q) = %v, want %v", g, got, tt.want)
			}
		})
	}
}

// Every deiteration candidate must name an element structurally equal to a
// root-level sibling child or atom.
func TestDeiterableTargetsMatchDominator(t *testing.T) {
	inputs := []string{
		"(A, [A])",
		"([A], [[A], B])",
		"(A, [B, [A, C]], [A, D])",
		"([B], [[B]], A, [A, B])",
	}

	for _, input := range inputs {
		g := mustParse(t, input)
		for _, addr := range FindDeiterable(g) {
			site, err := g.Locate(addr)
			if err != nil {
				t.Fatalf("Locate(%v) on %q error: %v", addr, g, err)
			}

			matched := false
			switch site.Kind {
			case graph.SiteAtom:
				target := site.Parent.Atoms[site.Index]
				for _, atom := range g.Atoms {
					if atom == target {
						matched = true
					}
				}
			case graph.SiteChild:
				target := site.Parent.Children[site.Index]
				for _, child := range g.Children {
					if child.Equal(target) {
						matched = true
					}
				}
			}
			if !matched {
				t.Errorf("candidate %v in %q has no dominating original", addr, g)
			}
		}
	}
}

func TestDeiterate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		addr  graph.Address
		want  string
	}{
		{name: "AtomInCut", input: "(A, [A])", addr: graph.Address{0, 0}, want: "(A, [])"},
		{name: "NestedSubgraph", input: "([A], [[A], B])", addr: graph.Address{1, 0}, want: "([A], [B])"},
		{name: "DeepAtom", input: "(A, [B, [A, C]])", addr: graph.Address{0, 0, 0}, want: "(A, [B, [C]])"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.input)
			before := g.String()

			got, err := Deiterate(g, tt.addr)
			if err != nil {
				t.Fatalf("Deiterate(%q, %v) error: %v", g, tt.addr, err)
			}
			if want := mustParse(t, tt.want); !got.Equal(want) {
				t.Errorf("Deiterate(%q, %v) = %q, want %q", before, tt.addr, got, want)
			}
			if g.String() != before {
				t.Errorf("input mutated: %q -> %q", before, g)
			}
		})
	}
}
