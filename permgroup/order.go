package permgroup

import (
	"math/big"
	"math/rand"
)

// Order computes the order of the group generated by gens.
func Order(n int, gens []Perm) *big.Int {
	return OrderRand(n, gens, rand.New(rand.NewSource(rand.Int63())))
}

// OrderRand is like Order, but uses the given source of
// randomness to build the stabilizer chain.
func OrderRand(n int, gens []Perm, rng Rand) *big.Int {
	chain, _ := BuildBSGS(n, nil, gens, rng)
	return chain.Order()
}

// Order multiplies the orbit sizes of every level, which is
// the order of the group if the chain is verified.
func (c Chain) Order() *big.Int {
	res := big.NewInt(1)
	for _, level := range c {
		res.Mul(res, big.NewInt(int64(level.Transversal.OrbitSize())))
	}
	return res
}
