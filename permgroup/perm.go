package permgroup

import "fmt"

// A Perm is a bijection of {0, ..., n-1}, where index i
// maps to p[i].
//
// Perms are treated as immutable values. Every operation
// returns a freshly allocated Perm.
type Perm []int

// NewPerm copies images into a Perm, returning an error if
// the images are not a bijection of {0, ..., len(images)-1}.
func NewPerm(images []int) (Perm, error) {
	seen := NewPointSet(len(images))
	for i, x := range images {
		if x < 0 || x >= len(images) {
			return nil, fmt.Errorf("%w: image %d of point %d is outside [0, %d)",
				ErrNotBijection, x, i, len(images))
		}
		if seen.Get(x) {
			return nil, fmt.Errorf("%w: image %d appears twice", ErrNotBijection, x)
		}
		seen.Set(x, true)
	}
	return append(Perm{}, images...), nil
}

// MustPerm is like NewPerm, but panics for invalid input.
func MustPerm(images ...int) Perm {
	p, err := NewPerm(images)
	if err != nil {
		panic(err)
	}
	return p
}

// Identity creates the identity permutation of degree n.
func Identity(n int) Perm {
	res := make(Perm, n)
	for i := range res {
		res[i] = i
	}
	return res
}

// Degree returns the size of the ground set.
func (p Perm) Degree() int {
	return len(p)
}

// Apply returns the image of point i.
func (p Perm) Apply(i int) int {
	return p[i]
}

// Fixes checks if p maps i to itself.
func (p Perm) Fixes(i int) bool {
	return p[i] == i
}

// Compose returns the permutation which applies p first
// and then q, i.e. i -> q[p[i]].
func (p Perm) Compose(q Perm) Perm {
	checkDegree(p, q)
	res := make(Perm, len(p))
	for i, x := range p {
		res[i] = q[x]
	}
	return res
}

// Inverse returns the inverse permutation.
func (p Perm) Inverse() Perm {
	res := make(Perm, len(p))
	for i, x := range p {
		res[x] = i
	}
	return res
}

// Pow raises p to a (possibly negative) integer power.
func (p Perm) Pow(k int) Perm {
	res := Identity(len(p))
	if k == 0 {
		return res
	}
	cur := p
	if k < 0 {
		cur = p.Inverse()
		k = -k
	}
	for k > 0 {
		if k&1 == 1 {
			res = res.Compose(cur)
		}
		cur = cur.Compose(cur)
		k >>= 1
	}
	return res
}

// Concat returns the permutation of degree len(p)+len(q)
// acting as p on the first len(p) points and as q, shifted
// by len(p), on the rest.
func (p Perm) Concat(q Perm) Perm {
	res := make(Perm, 0, len(p)+len(q))
	res = append(res, p...)
	for _, x := range q {
		res = append(res, x+len(p))
	}
	return res
}

// Sign returns 1 for even permutations and -1 for odd ones.
func (p Perm) Sign() int {
	visited := NewPointSet(len(p))
	sign := 1
	for i := range p {
		if visited.Get(i) {
			continue
		}
		length := 0
		for j := i; !visited.Get(j); j = p[j] {
			visited.Set(j, true)
			length++
		}
		if length%2 == 0 {
			sign = -sign
		}
	}
	return sign
}

// IsIdentity checks if p fixes every point.
func (p Perm) IsIdentity() bool {
	for i, x := range p {
		if i != x {
			return false
		}
	}
	return true
}

// Equal checks if p and q are the same permutation.
func (p Perm) Equal(q Perm) bool {
	checkDegree(p, q)
	for i, x := range p {
		if q[i] != x {
			return false
		}
	}
	return true
}

// Less orders permutations lexicographically by their
// images.
func (p Perm) Less(q Perm) bool {
	checkDegree(p, q)
	for i, x := range p {
		if x != q[i] {
			return x < q[i]
		}
	}
	return false
}

// Support returns the set of points moved by p.
func (p Perm) Support() *PointSet {
	res := NewPointSet(len(p))
	for i, x := range p {
		if i != x {
			res.Set(i, true)
		}
	}
	return res
}

func checkDegree(p, q Perm) {
	if len(p) != len(q) {
		panic(fmt.Errorf("%w: %d and %d", ErrDegreeMismatch, len(p), len(q)))
	}
}

func checkPoint(n, point int) {
	if point < 0 || point >= n {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrPointOutOfRange, point, n))
	}
}

func checkGenerators(n int, gens []Perm) {
	for _, g := range gens {
		if len(g) != n {
			panic(fmt.Errorf("%w: generator of degree %d in a group of degree %d",
				ErrDegreeMismatch, len(g), n))
		}
	}
}
