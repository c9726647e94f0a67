package graph

import (
	"slices"
	"strconv"
	"strings"

	"github.com/peircelab/peirce/pkg/errors"
)

// Address locates a node or atom within a graph as a sequence of indices into
// the unified child/atom index space: at each level, indices below the child
// count name children in canonical order, and the remaining indices name
// atoms offset by the child count. The final index names the target at its
// parent's level.
//
// Addresses are bound to the exact canonical graph they were computed from.
// Applying any transformation invalidates every previously computed address.
type Address []int

// String renders the address as dot-separated indices, e.g. "1.0.2".
// The empty address renders as ".".
func (a Address) String() string {
	if len(a) == 0 {
		return "."
	}
	parts := make([]string, len(a))
	for i, idx := range a {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}

// Clone returns an independent copy of the address.
func (a Address) Clone() Address { return slices.Clone(a) }

// Compare orders addresses lexicographically, shorter prefixes first.
func (a Address) Compare(b Address) int { return slices.Compare(a, b) }

// ParseAddress parses dot- or comma-separated indices into an Address.
// Indices must be non-negative integers; anything else fails with
// ErrCodeInvalidAddress.
func ParseAddress(s string) (Address, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == ',' || r == ' '
	})
	if len(fields) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidAddress, "address %q is empty", s)
	}

	addr := make(Address, len(fields))
	for i, f := range fields {
		idx, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidAddress, "address step %q is not an integer", f)
		}
		if idx < 0 {
			return nil, errors.New(errors.ErrCodeInvalidAddress, "address step %d is negative", idx)
		}
		addr[i] = idx
	}
	return addr, nil
}

// SortAddresses orders a set of addresses lexicographically in place.
// Enumerators return their candidates in this order so output is
// deterministic across runs.
func SortAddresses(addrs []Address) {
	slices.SortFunc(addrs, Address.Compare)
}

// SiteKind tags what the final index of an address resolves to.
type SiteKind int

const (
	// SiteChild marks an address whose final index names a child cut.
	SiteChild SiteKind = iota
	// SiteAtom marks an address whose final index names an atom.
	SiteAtom
)

// Site is a resolved address: the node owning the final index, plus an
// explicit classification of that index as a child or an atom. The tagged
// form replaces offset arithmetic at every use site, so "child vs atom" is
// decided exactly once, here.
type Site struct {
	Parent *Graph   // node whose level contains the target
	Kind   SiteKind // whether Index refers to Children or Atoms
	Index  int      // index into Parent.Children or Parent.Atoms
}

// Locate resolves an address against the graph. All indices but the last
// must name children (the descent path); the final index is classified per
// the unified index space. Out-of-range indices at any step fail with
// ErrCodeInvalidAddress.
//
// The returned Site points into the receiver's tree; callers that intend to
// mutate must Clone first and locate within the clone.
func (g *Graph) Locate(addr Address) (Site, error) {
	if len(addr) == 0 {
		return Site{}, errors.New(errors.ErrCodeInvalidAddress, "address is empty")
	}

	node := g
	for depth, idx := range addr[:len(addr)-1] {
		if idx < 0 || idx >= len(node.Children) {
			return Site{}, errors.New(errors.ErrCodeInvalidAddress,
				"address %s: step %d (index %d) does not name a child cut", addr, depth, idx)
		}
		node = node.Children[idx]
	}

	last := addr[len(addr)-1]
	switch {
	case last >= 0 && last < len(node.Children):
		return Site{Parent: node, Kind: SiteChild, Index: last}, nil
	case last >= len(node.Children) && last < node.Size():
		return Site{Parent: node, Kind: SiteAtom, Index: last - len(node.Children)}, nil
	default:
		return Site{}, errors.New(errors.ErrCodeInvalidAddress,
			"address %s: final index %d out of range (size %d)", addr, last, node.Size())
	}
}
