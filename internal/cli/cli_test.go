package cli

import (
	"strings"
	"testing"

	"github.com/peircelab/peirce/pkg/graph"
)

func mustParse(t *testing.T, text string) *graph.Graph {
	t.Helper()
	g, err := graph.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", text, err)
	}
	return g
}

func TestGraphStats(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantAtoms int
		wantCuts  int
		wantDepth int
	}{
		{"EmptySheet", "()", 0, 0, 0},
		{"AtomsOnly", "(A, B, C)", 3, 0, 0},
		{"SingleCut", "(A, [B])", 2, 1, 1},
		{"NestedCuts", "([[A], B])", 2, 2, 2},
		{"Syllogism", "([[mortal], man], [[dies], mortal])", 4, 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.input)
			if got := countAtoms(g); got != tt.wantAtoms {
				t.Errorf("countAtoms = %d, want %d", got, tt.wantAtoms)
			}
			if got := countCuts(g); got != tt.wantCuts {
				t.Errorf("countCuts = %d, want %d", got, tt.wantCuts)
			}
			if got := depth(g); got != tt.wantDepth {
				t.Errorf("depth = %d, want %d", got, tt.wantDepth)
			}
		})
	}
}

func TestReadGraphArgPassthrough(t *testing.T) {
	got, err := readGraphArg("(A, [B])")
	if err != nil {
		t.Fatalf("readGraphArg failed: %v", err)
	}
	if got != "(A, [B])" {
		t.Errorf("readGraphArg = %q, want input unchanged", got)
	}
}

func TestRuleList(t *testing.T) {
	got := ruleList()
	for _, want := range []string{"double-cut", "erasure", "deiteration"} {
		if !strings.Contains(got, want) {
			t.Errorf("ruleList() = %q, missing %q", got, want)
		}
	}
}
