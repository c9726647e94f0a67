package graph

import "slices"

// Graph is a node in an existential graph tree: the atoms asserted directly
// at this level plus the child cuts nested directly inside it.
//
// The zero value is an empty cut. Graphs built by Parse are canonical; code
// that assembles Graph values by hand must call Canonicalize before relying
// on Equal, String, or address-based operations.
//
// A Graph owns its atoms and children outright. There is no sharing between
// trees: transformations operate on deep copies (see Clone) and never mutate
// their input.
type Graph struct {
	// Sheet is true for the outermost sheet of assertion (positive,
	// unenclosed context) and false for a cut (one level of negation).
	Sheet bool

	// Atoms are the propositional letters directly present at this level,
	// excluding anything inside child cuts. Sorted in canonical form.
	Atoms []string

	// Children are the cuts nested directly at this level, sorted by their
	// canonical rendering in canonical form.
	Children []*Graph
}

// NumAtoms returns the number of atoms directly at this level.
func (g *Graph) NumAtoms() int { return len(g.Atoms) }

// NumChildren returns the number of child cuts directly at this level.
func (g *Graph) NumChildren() int { return len(g.Children) }

// Size returns the element count of this level: atoms plus child cuts.
// An empty cut has size 0.
func (g *Graph) Size() int { return len(g.Atoms) + len(g.Children) }

// At provides unified access to the index space used by addresses: indices
// below NumChildren return the child cut directly, indices up to Size return
// the corresponding atom wrapped in a synthetic single-atom sheet node, and
// out-of-range indices return an empty sheet node rather than an error.
//
// The soft fallback for out-of-range indices is part of the contract; callers
// that need strict resolution should use Locate instead.
func (g *Graph) At(index int) *Graph {
	if index < 0 {
		return &Graph{Sheet: true}
	}
	if index < len(g.Children) {
		return g.Children[index]
	}
	if index < len(g.Children)+len(g.Atoms) {
		return &Graph{Sheet: true, Atoms: []string{g.Atoms[index-len(g.Children)]}}
	}
	return &Graph{Sheet: true}
}

// Clone returns a deep copy of the graph. The copy shares no state with the
// original and may be mutated freely.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		Sheet: g.Sheet,
		Atoms: slices.Clone(g.Atoms),
	}
	if len(g.Children) > 0 {
		c.Children = make([]*Graph, len(g.Children))
		for i, child := range g.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// Equal reports structural equality between two canonical graphs: equal atom
// sequences and pairwise-equal child sequences at every level. Polarity is
// not part of equality, so a cut and a sheet with identical content compare
// equal. Both operands must be in canonical form.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if !slices.Equal(g.Atoms, other.Atoms) {
		return false
	}
	if len(g.Children) != len(other.Children) {
		return false
	}
	for i := range g.Children {
		if !g.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// ContainsAtom reports whether the atom appears at this level or anywhere
// inside a descendant cut.
func (g *Graph) ContainsAtom(name string) bool {
	if slices.Contains(g.Atoms, name) {
		return true
	}
	for _, child := range g.Children {
		if child.ContainsAtom(name) {
			return true
		}
	}
	return false
}

// ContainsGraph reports whether some child cut, at any depth, is structurally
// equal to other. The receiver itself is not a candidate.
func (g *Graph) ContainsGraph(other *Graph) bool {
	for _, child := range g.Children {
		if child.Equal(other) {
			return true
		}
	}
	for _, child := range g.Children {
		if child.ContainsGraph(other) {
			return true
		}
	}
	return false
}
