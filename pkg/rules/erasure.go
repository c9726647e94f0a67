package rules

import "github.com/peircelab/peirce/pkg/graph"

// FindErasable returns the address of every element that may be erased from
// g. Candidates are the elements of nodes at odd nesting depth (the root
// sheet is depth 0, each cut adds one); nothing on the sheet itself or at any
// even depth is erasable. A node's sole remaining element is never a
// candidate, since erasing the last thing from a singleton level is
// degenerate. Results are sorted.
func FindErasable(g *graph.Graph) []graph.Address {
	addrs := findErasable(g, 0, nil)
	graph.SortAddresses(addrs)
	return addrs
}

func findErasable(g *graph.Graph, level int, prefix graph.Address) []graph.Address {
	var addrs []graph.Address

	if level%2 == 1 && g.Size() > 1 {
		for i := 0; i < g.Size(); i++ {
			addrs = append(addrs, step(prefix, i))
		}
	}

	for i, child := range g.Children {
		addrs = append(addrs, findErasable(child, level+1, step(prefix, i))...)
	}

	return addrs
}

// Erase removes the child or atom named by addr from a copy of g. The
// address must resolve within the tree; addresses obtained from FindErasable
// always do.
func Erase(g *graph.Graph, addr graph.Address) (*graph.Graph, error) {
	return removeAt(g, addr)
}
