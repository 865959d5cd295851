// Package permgroup computes structural invariants of
// finite permutation groups given by generating sets.
//
// The central construction is a base and strong generating
// set (BSGS), built by BuildBSGS with a randomized
// Schreier-Sims procedure and checked by Verify before it
// is returned. From a BSGS, Order reads off the order of
// the group, Group answers membership queries and samples
// uniform elements, and IsHomomorphism decides whether a
// map on generators extends to a homomorphism.
//
// Permutations compose from left to right: p.Compose(q)
// applies p first and then q.
package permgroup
