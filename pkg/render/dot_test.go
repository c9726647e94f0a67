package render

import (
	"strings"
	"testing"

	"github.com/peircelab/peirce/pkg/graph"
)

func mustParse(t *testing.T, s string) *graph.Graph {
	t.Helper()
	g, err := graph.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", s, err)
	}
	return g
}

func TestToDOTStructure(t *testing.T) {
	g := mustParse(t, "(A, [B, C], [[D]])")
	dot := ToDOT(g, Options{})

	for _, want := range []string{
		"digraph EG {",
		`[label="A"]`,
		`[label="B"]`,
		`[label="C"]`,
		`[label="D"]`,
		`subgraph "cluster_r_c0"`,
		`subgraph "cluster_r_c1"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}

	// The double cut around D must produce a cluster nested inside another.
	if got := strings.Count(dot, "subgraph"); got != 3 {
		t.Errorf("subgraph count = %d, want 3:\n%s", got, dot)
	}
}

func TestToDOTEmptyCut(t *testing.T) {
	dot := ToDOT(mustParse(t, "([])"), Options{})

	if !strings.Contains(dot, "style=invis") {
		t.Errorf("empty cut should emit an invisible anchor node:\n%s", dot)
	}
}

func TestToDOTShading(t *testing.T) {
	g := mustParse(t, "([A, [B]])")

	shaded := ToDOT(g, Options{Shaded: true})
	if !strings.Contains(shaded, "grey92") {
		t.Errorf("shaded output missing fill:\n%s", shaded)
	}

	plain := ToDOT(g, Options{})
	if strings.Contains(plain, "grey92") {
		t.Errorf("unshaded output has fill:\n%s", plain)
	}
}
