package permgroup

import (
	"fmt"
	"math/rand"
)

// IsHomomorphism checks if mapping x[i] to y[i] extends to
// a group homomorphism from <x> to <y>, where x has degree
// n and y has degree m.
//
// The graph of the map is generated by the concatenations
// x[i]+y[i], and it projects onto <x> injectively exactly
// when both groups have the same order.
func IsHomomorphism(n, m int, x, y []Perm) bool {
	return IsHomomorphismRand(n, m, x, y, rand.New(rand.NewSource(rand.Int63())))
}

// IsHomomorphismRand is like IsHomomorphism, but uses the
// given source of randomness.
func IsHomomorphismRand(n, m int, x, y []Perm, rng Rand) bool {
	if len(x) != len(y) {
		panic(fmt.Errorf("%w: %d and %d", ErrGeneratorCount, len(x), len(y)))
	}
	checkGenerators(n, x)
	checkGenerators(m, y)

	graph := make([]Perm, len(x))
	for i := range x {
		graph[i] = x[i].Concat(y[i])
	}
	return OrderRand(n, x, rng).Cmp(OrderRand(n+m, graph, rng)) == 0
}
