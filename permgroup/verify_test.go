package permgroup

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyFindsWitness(t *testing.T) {
	// G = <(0 1 2), (2 3 4)> = A_5 with base [0, 2], which is
	// too short: the stabilizer of 0 and 2 has order 3.
	n := 5
	gens := a5Generators()
	base := []int{0, 2}

	orbit0, subgen := OrbitTransversalStabilizer(n, gens, base[0])
	require.Len(t, orbit0, 5)
	orbit1, _ := OrbitTransversalStabilizer(n, subgen, base[1])
	require.Len(t, orbit1, 4)
	transversal1 := NewTransversal(n, orbit1)
	_, ok := transversal1.Get(0)
	require.False(t, ok, "orbit of 2 under G_0 is {1, 2, 3, 4}")

	chain := Chain{
		{Point: base[0], Transversal: NewTransversal(n, orbit0)},
		{Point: base[1], Transversal: transversal1},
	}
	witness := Verify(n, chain, gens)
	require.NotNil(t, witness)
	require.False(t, witness.Residual.IsIdentity())
	for _, point := range base {
		require.True(t, witness.Residual.Fixes(point))
	}
}

func TestVerifyEmptyChain(t *testing.T) {
	require.Nil(t, Verify(3, nil, nil))
	require.Nil(t, Verify(3, nil, []Perm{Identity(3)}))

	g := MustPerm(1, 0, 2)
	witness := Verify(3, nil, []Perm{Identity(3), g})
	require.NotNil(t, witness)
	require.Equal(t, g, witness.Residual)
	require.Empty(t, witness.Reps)
}

func TestVerifyAcceptsBuiltChain(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, gens := range [][]Perm{a5Generators(), StarGenerators(7), DihedralGenerators(9)} {
		n := gens[0].Degree()
		chain, strong := BuildBSGS(n, nil, gens, rng)
		require.Nil(t, Verify(n, chain, strong))
	}
}

func TestVerifyRejectsStaleGenerators(t *testing.T) {
	// A chain built for <(0 1 2)> does not describe S_3.
	n := 3
	chain, _ := BuildBSGS(n, nil, []Perm{MustPerm(1, 2, 0)}, rand.New(rand.NewSource(4)))
	witness := Verify(n, chain, []Perm{MustPerm(1, 2, 0), MustPerm(1, 0, 2)})
	require.NotNil(t, witness)
	require.False(t, witness.Residual.IsIdentity())
}
