package permgroup

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays a fixed sequence of choices, reduced
// modulo the requested range.
type scriptedRand struct {
	values []int
	next   int
}

func (s *scriptedRand) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func a5Generators() []Perm {
	return []Perm{MustPerm(1, 2, 0, 3, 4), MustPerm(0, 1, 3, 4, 2)}
}

func d8Generators() []Perm {
	return []Perm{MustPerm(1, 2, 3, 0), MustPerm(2, 1, 0, 3)}
}

func factorial(n int) *big.Int {
	return new(big.Int).MulRange(1, int64(n))
}

// closureSize counts the elements of the group generated by
// gens by explicit enumeration.
func closureSize(n int, gens []Perm) int {
	key := func(p Perm) string {
		b := make([]byte, len(p))
		for i, x := range p {
			b[i] = byte(x)
		}
		return string(b)
	}
	id := Identity(n)
	seen := map[string]bool{key(id): true}
	queue := []Perm{id}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, g := range gens {
			q := p.Compose(g)
			if k := key(q); !seen[k] {
				seen[k] = true
				queue = append(queue, q)
			}
		}
	}
	return len(seen)
}

func randomPerm(rng *rand.Rand, n int) Perm {
	return MustPerm(rng.Perm(n)...)
}

func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %v", r)
		require.True(t, errors.Is(err, target), "got %v, want %v", err, target)
	}()
	f()
}
