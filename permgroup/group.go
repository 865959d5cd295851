package permgroup

import "math/big"

// A Group is a permutation group together with a verified
// base and strong generating set.
type Group struct {
	degree int
	chain  Chain
	gens   []Perm
}

// NewGroup builds a BSGS for the group generated by gens.
func NewGroup(n int, gens []Perm, rng Rand) *Group {
	chain, strong := BuildBSGS(n, nil, gens, rng)
	return &Group{degree: n, chain: chain, gens: strong}
}

// Degree returns the size of the ground set.
func (g *Group) Degree() int {
	return g.degree
}

// Chain returns the verified stabilizer chain.
//
// The result is shared with g and should not be modified.
func (g *Group) Chain() Chain {
	return g.chain
}

// Base returns the base points.
func (g *Group) Base() []int {
	return g.chain.Base()
}

// StrongGenerators returns the strong generating set.
func (g *Group) StrongGenerators() []Perm {
	return append([]Perm{}, g.gens...)
}

// Order returns the order of the group.
func (g *Group) Order() *big.Int {
	return g.chain.Order()
}

// Contains checks if p is an element of the group.
func (g *Group) Contains(p Perm) bool {
	if len(p) != g.degree {
		return false
	}
	reps, residual := Strip(p, g.chain)
	return len(reps) == len(g.chain) && residual.IsIdentity()
}

// RandomElement samples a uniformly random element of the
// group.
//
// Every element factors uniquely as a product of one
// representative per level, so choosing each factor
// uniformly gives a uniform element.
func (g *Group) RandomElement(rng Rand) Perm {
	res := Identity(g.degree)
	for _, level := range g.chain {
		orbit := level.Transversal.Orbit()
		rep := level.Transversal[orbit[rng.Intn(len(orbit))]]
		res = rep.Compose(res)
	}
	return res
}
