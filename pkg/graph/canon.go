package graph

import (
	"slices"
	"strings"
)

// Canonicalize sorts the graph into its canonical form in place: children are
// canonicalized first (post-order), then atoms are sorted lexicographically
// and children are sorted by their canonical rendering.
//
// Parse canonicalizes automatically, as do the transformation rules, so most
// callers never need this directly. It is idempotent.
func (g *Graph) Canonicalize() {
	for _, child := range g.Children {
		child.Canonicalize()
	}
	slices.Sort(g.Atoms)
	slices.SortStableFunc(g.Children, func(a, b *Graph) int {
		return strings.Compare(a.String(), b.String())
	})
}
