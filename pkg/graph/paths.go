package graph

// PathsToAtom returns every address at which name occurs as a direct atom of
// some node in the tree, in deterministic (sorted) order.
//
// An occurrence that is the sole element of its node (node size 1) is
// excluded: a lone atom is never a valid transformation target on its own.
// Atoms at the current level are reported before matches found inside
// children.
func (g *Graph) PathsToAtom(name string) []Address {
	paths := g.pathsToAtom(name, nil)
	SortAddresses(paths)
	return paths
}

func (g *Graph) pathsToAtom(name string, prefix Address) []Address {
	var paths []Address

	if g.Size() > 1 {
		for i, atom := range g.Atoms {
			if atom == name {
				paths = append(paths, appendStep(prefix, len(g.Children)+i))
			}
		}
	}

	for i, child := range g.Children {
		if child.ContainsAtom(name) {
			paths = append(paths, child.pathsToAtom(name, appendStep(prefix, i))...)
		}
	}

	return paths
}

// PathsToGraph returns every address of a child cut structurally equal to
// other, searched depth-first, in deterministic (sorted) order.
//
// As with PathsToAtom, a match that is the sole element of its parent is
// excluded. A matching child is reported but not descended into; only
// non-matching children are searched further.
func (g *Graph) PathsToGraph(other *Graph) []Address {
	paths := g.pathsToGraph(other, nil)
	SortAddresses(paths)
	return paths
}

func (g *Graph) pathsToGraph(other *Graph, prefix Address) []Address {
	var paths []Address

	for i, child := range g.Children {
		if child.Equal(other) && g.Size() > 1 {
			paths = append(paths, appendStep(prefix, i))
			continue
		}
		paths = append(paths, child.pathsToGraph(other, appendStep(prefix, i))...)
	}

	return paths
}

// appendStep extends an address prefix without aliasing the prefix's backing
// array across sibling branches.
func appendStep(prefix Address, idx int) Address {
	step := make(Address, len(prefix)+1)
	copy(step, prefix)
	step[len(prefix)] = idx
	return step
}
