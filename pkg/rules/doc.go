// Package rules implements the three structural transformation rules of
// existential graph inference: double-cut removal, erasure, and deiteration.
//
// Each rule pairs an enumerator, which lists every address at which the rule
// may legally be applied, with an applier, which performs the transformation
// at one caller-chosen address. Appliers never mutate their input: they
// operate on a deep copy, canonicalize it, and return it, so a caller can
// hold one starting graph and try several candidate addresses against it.
//
// Appliers validate their address and return an INVALID_ADDRESS error for
// anything that does not resolve to a site of the required shape. Every
// address produced by an enumerator is valid for its paired applier.
//
// None of the operations keep state between calls; there is no notion of an
// in-progress proof here. Recording a sequence of applications is the job of
// package session.
package rules
