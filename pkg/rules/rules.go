package rules

import (
	"slices"

	"github.com/peircelab/peirce/pkg/errors"
	"github.com/peircelab/peirce/pkg/graph"
)

// Rule identifies one of the three transformation rules.
type Rule string

const (
	// DoubleCut removes a pair of directly nested cuts with nothing between
	// them, splicing the enclosed content up into the surrounding level.
	DoubleCut Rule = "double-cut"

	// Erasure removes an element from a cut at odd nesting depth.
	Erasure Rule = "erasure"

	// Deiteration removes a copy of an atom or subgraph that duplicates one
	// present at an enclosing level.
	Deiteration Rule = "deiteration"
)

// Rules lists all transformation rules in a stable order.
func Rules() []Rule {
	return []Rule{DoubleCut, Erasure, Deiteration}
}

// ParseRule resolves a rule name, accepting the canonical names plus a few
// common short forms. Unknown names fail with ErrCodeInvalidRule.
func ParseRule(name string) (Rule, error) {
	switch name {
	case "double-cut", "doublecut", "dc":
		return DoubleCut, nil
	case "erasure", "erase", "e":
		return Erasure, nil
	case "deiteration", "deiterate", "di":
		return Deiteration, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidRule, "unknown rule %q (want double-cut, erasure, or deiteration)", name)
	}
}

// Find enumerates every address at which the rule may be applied to g.
func Find(r Rule, g *graph.Graph) ([]graph.Address, error) {
	switch r {
	case DoubleCut:
		return FindDoubleCuts(g), nil
	case Erasure:
		return FindErasable(g), nil
	case Deiteration:
		return FindDeiterable(g), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidRule, "unknown rule %q", r)
	}
}

// Apply applies the rule to g at the given address and returns the resulting
// canonical graph. g is never mutated.
func Apply(r Rule, g *graph.Graph, addr graph.Address) (*graph.Graph, error) {
	switch r {
	case DoubleCut:
		return RemoveDoubleCut(g, addr)
	case Erasure:
		return Erase(g, addr)
	case Deiteration:
		return Deiterate(g, addr)
	default:
		return nil, errors.New(errors.ErrCodeInvalidRule, "unknown rule %q", r)
	}
}

// step extends an address prefix with one more index, copying so sibling
// branches never share a backing array.
func step(prefix graph.Address, idx int) graph.Address {
	next := make(graph.Address, len(prefix)+1)
	copy(next, prefix)
	next[len(prefix)] = idx
	return next
}

// removeAt deletes the child or atom named by addr from a deep copy of g.
// Erasure and deiteration share these removal mechanics.
func removeAt(g *graph.Graph, addr graph.Address) (*graph.Graph, error) {
	out := g.Clone()
	site, err := out.Locate(addr)
	if err != nil {
		return nil, err
	}

	switch site.Kind {
	case graph.SiteChild:
		site.Parent.Children = slices.Delete(site.Parent.Children, site.Index, site.Index+1)
	case graph.SiteAtom:
		site.Parent.Atoms = slices.Delete(site.Parent.Atoms, site.Index, site.Index+1)
	}

	out.Canonicalize()
	return out, nil
}

// sortUnique orders candidate addresses and drops duplicates, which arise
// when a level holds several structurally equal children.
func sortUnique(addrs []graph.Address) []graph.Address {
	graph.SortAddresses(addrs)
	return slices.CompactFunc(addrs, func(a, b graph.Address) bool {
		return a.Compare(b) == 0
	})
}
