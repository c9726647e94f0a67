package rules

import (
	"slices"

	"github.com/peircelab/peirce/pkg/errors"
	"github.com/peircelab/peirce/pkg/graph"
)

// FindDoubleCuts returns the address of every double cut in g: a child cut
// whose only content is exactly one nested cut and no atoms. Candidates are
// reported at every depth, in sorted order.
func FindDoubleCuts(g *graph.Graph) []graph.Address {
	addrs := findDoubleCuts(g, nil)
	graph.SortAddresses(addrs)
	return addrs
}

func findDoubleCuts(g *graph.Graph, prefix graph.Address) []graph.Address {
	var addrs []graph.Address
	for i, child := range g.Children {
		if child.NumChildren() == 1 && child.NumAtoms() == 0 {
			addrs = append(addrs, step(prefix, i))
		}
		addrs = append(addrs, findDoubleCuts(child, step(prefix, i))...)
	}
	return addrs
}

// RemoveDoubleCut removes the double cut at addr from a copy of g: the outer
// and inner cut both vanish, and the inner cut's content rises one level to
// merge with its new siblings. The address must name a child of double-cut
// shape (one nested cut, zero atoms); anything else fails with
// ErrCodeInvalidAddress.
func RemoveDoubleCut(g *graph.Graph, addr graph.Address) (*graph.Graph, error) {
	out := g.Clone()
	site, err := out.Locate(addr)
	if err != nil {
		return nil, err
	}
	if site.Kind != graph.SiteChild {
		return nil, errors.New(errors.ErrCodeInvalidAddress, "address %s names an atom, not a cut", addr)
	}

	outer := site.Parent.Children[site.Index]
	if outer.NumChildren() != 1 || outer.NumAtoms() != 0 {
		return nil, errors.New(errors.ErrCodeInvalidAddress, "cut at %s is not a double cut", addr)
	}
	inner := outer.Children[0]

	site.Parent.Children = slices.Delete(site.Parent.Children, site.Index, site.Index+1)
	site.Parent.Children = append(site.Parent.Children, inner.Children...)
	site.Parent.Atoms = append(site.Parent.Atoms, inner.Atoms...)

	out.Canonicalize()
	return out, nil
}
