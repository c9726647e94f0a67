package rules

import "github.com/peircelab/peirce/pkg/graph"

// FindDeiterable returns the address of every element that duplicates an
// atom or child cut present at the root level and is nested somewhere inside
// a sibling cut. Such a copy is redundant while the dominating original
// remains, so removing it preserves meaning.
//
// Pairs are considered at the root level only: for each ordered pair of
// distinct children (i, j), occurrences of child i inside child j are
// candidates, and for each root atom, occurrences of that atom inside any
// child are candidates. Results are sorted with duplicates removed.
func FindDeiterable(g *graph.Graph) []graph.Address {
	var addrs []graph.Address

	for i, original := range g.Children {
		for j, host := range g.Children {
			if i == j {
				continue
			}
			addrs = append(addrs, graphSites(host, original, step(nil, j))...)
		}
	}

	for _, atom := range g.Atoms {
		for j, host := range g.Children {
			addrs = append(addrs, atomSites(host, atom, step(nil, j))...)
		}
	}

	return sortUnique(addrs)
}

// atomSites collects every occurrence of the atom inside g, including an
// occurrence that is its node's sole element. Unlike Graph.PathsToAtom there
// is no singleton exclusion here: a lone copy under a dominating original is
// a legitimate deiteration target.
func atomSites(g *graph.Graph, name string, prefix graph.Address) []graph.Address {
	var addrs []graph.Address
	for i, atom := range g.Atoms {
		if atom == name {
			addrs = append(addrs, step(prefix, g.NumChildren()+i))
		}
	}
	for i, child := range g.Children {
		addrs = append(addrs, atomSites(child, name, step(prefix, i))...)
	}
	return addrs
}

// graphSites collects every child cut inside g structurally equal to target.
// A matching child is reported without descending into it; non-matching
// children are searched recursively.
func graphSites(g *graph.Graph, target *graph.Graph, prefix graph.Address) []graph.Address {
	var addrs []graph.Address
	for i, child := range g.Children {
		if child.Equal(target) {
			addrs = append(addrs, step(prefix, i))
			continue
		}
		addrs = append(addrs, graphSites(child, target, step(prefix, i))...)
	}
	return addrs
}

// Deiterate removes the duplicate named by addr from a copy of g, with the
// same removal mechanics as Erase.
func Deiterate(g *graph.Graph, addr graph.Address) (*graph.Graph, error) {
	return removeAt(g, addr)
}
