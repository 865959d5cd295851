package permgroup

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKnownGroupOrders(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for n := 1; n <= 8; n++ {
		require.Equal(t, int64(n), OrderRand(n, CyclicGenerators(n), rng).Int64(), "C_%d", n)
		require.Equal(t, 0, factorial(n).Cmp(OrderRand(n, SymmetricGenerators(n), rng)), "S_%d", n)
		require.Equal(t, 0, factorial(n).Cmp(OrderRand(n, StarGenerators(n), rng)), "star %d", n)

		alt := new(big.Int).Set(factorial(n))
		if n >= 2 {
			alt.Div(alt, big.NewInt(2))
		}
		require.Equal(t, 0, alt.Cmp(OrderRand(n, AlternatingGenerators(n), rng)), "A_%d", n)
	}
	for n := 3; n <= 12; n++ {
		require.Equal(t, int64(2*n), OrderRand(n, DihedralGenerators(n), rng).Int64(), "D_%d", n)
	}
}

func TestKnownGroupsAreBijections(t *testing.T) {
	n, rubik := RubikGenerators()
	require.Equal(t, 48, n)
	require.Len(t, rubik, 6)
	for _, g := range rubik {
		_, err := NewPerm(g)
		require.NoError(t, err)
		for i, x := range g {
			require.Equal(t, i%2, x%2, "face turns keep corners and edges apart")
		}
	}

	n, m12 := Mathieu12Generators()
	require.Equal(t, 12, n)
	for _, g := range m12 {
		_, err := NewPerm(g)
		require.NoError(t, err)
	}
}
