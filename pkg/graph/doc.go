// Package graph implements the recursive data model for existential graphs,
// Charles Peirce's diagrammatic notation for propositional logic.
//
// A graph is a strict tree of alternating polarity levels. The root is the
// sheet of assertion (the unenclosed, positive context); every nested node is
// a cut, a single level of negation. Each node holds the propositional atoms
// written directly at its level plus its immediate child cuts.
//
// # Textual Notation
//
// Graphs are written as comma-separated elements between delimiters: "(...)"
// for the sheet of assertion, "[...]" for cuts. Elements are either bare atom
// identifiers or nested cuts. For example:
//
//	(A, [B, C], [[D]])
//
// is a sheet asserting A, a cut containing B and C, and a double cut around D.
// Whitespace around elements is insignificant.
//
// # Canonical Form
//
// Every graph produced by this package is canonicalized: atoms are sorted
// lexicographically and child cuts are sorted by their own canonical
// rendering, recursively. Two graphs with the same logical content therefore
// render identically, and structural equality reduces to comparing canonical
// forms. Parse canonicalizes on construction; transformations in package
// rules canonicalize their results.
//
// # Addresses
//
// Positions within a graph are named by an Address: a sequence of indices
// into the unified child/atom index space of each level (children first, then
// atoms, offset by the child count). Addresses are only meaningful against
// the exact canonical graph they were computed from; any transformation
// invalidates them.
package graph
