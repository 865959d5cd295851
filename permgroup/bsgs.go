package permgroup

import "fmt"

// A Rand is a source of randomness for choosing new base
// points. *rand.Rand implements it.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// A Level is one step of a stabilizer chain: a base point
// and the transversal of its orbit under the stabilizer of
// all previous base points.
type Level struct {
	Point       int
	Transversal Transversal
}

// A Chain is a stabilizer chain, ordered from the full
// group down to the trivial group.
type Chain []Level

// Base returns the base points of the chain.
func (c Chain) Base() []int {
	res := make([]int, len(c))
	for i, level := range c {
		res[i] = level.Point
	}
	return res
}

// BuildBSGS extends base and gens until they form a base
// and strong generating set for the group generated by
// gens.
//
// The initial base may be empty. Whenever the base has to
// grow, the new point is chosen with rng among the points
// moved by the current witness. The returned chain is
// verified, and the returned generators contain every
// non-identity element of gens, deduplicated.
func BuildBSGS(n int, base []int, gens []Perm, rng Rand) (Chain, []Perm) {
	checkGenerators(n, gens)
	b := &bsgsBuilder{
		n:    n,
		gens: uniquePerms(nonIdentity(gens)),
		used: NewPointSet(n),
	}
	seen := NewPointSet(n)
	for _, point := range base {
		checkPoint(n, point)
		if seen.Get(point) {
			panic(fmt.Errorf("%w: %d", ErrDuplicateBasePoint, point))
		}
		seen.Set(point, true)
		b.chain = append(b.chain, Level{Point: point})
	}

	for {
		b.computeTransversals()
		witness := Verify(n, b.chain, b.gens)
		if witness == nil {
			return b.chain, b.gens
		}
		b.extend(witness.Residual, rng)
	}
}

// bsgsBuilder holds the state owned by one BuildBSGS run.
type bsgsBuilder struct {
	n     int
	chain Chain
	gens  []Perm
	used  *PointSet
}

// computeTransversals recomputes every level from scratch,
// narrowing the generators to the pointwise stabilizer of
// the previous base points as it goes.
func (b *bsgsBuilder) computeTransversals() {
	cur := b.gens
	for i, level := range b.chain {
		orbit, _ := OrbitTransversalStabilizer(b.n, cur, level.Point)
		b.chain[i].Transversal = NewTransversal(b.n, orbit)
		cur = fixingPerms(cur, level.Point)
		b.used.Set(level.Point, true)
	}
}

// extend adds h to the generators and, if h moves no used
// point, adds a random point moved by h to the base.
func (b *bsgsBuilder) extend(h Perm, rng Rand) {
	b.gens = append(b.gens, h)
	moved := h.Support()
	if moved.Intersects(b.used) {
		return
	}
	points := moved.Points()
	if len(points) == 0 {
		return
	}
	point := points[rng.Intn(len(points))]
	b.chain = append(b.chain, Level{Point: point})
}

func fixingPerms(perms []Perm, point int) []Perm {
	var res []Perm
	for _, p := range perms {
		if p.Fixes(point) {
			res = append(res, p)
		}
	}
	return res
}

func nonIdentity(perms []Perm) []Perm {
	var res []Perm
	for _, p := range perms {
		if !p.IsIdentity() {
			res = append(res, p)
		}
	}
	return res
}
