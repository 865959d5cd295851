package permgroup

// AllPermutations lists all n! permutations of degree n in
// lexicographic order.
func AllPermutations(n int) []Perm {
	var res []Perm
	cur := Identity(n)
	for {
		res = append(res, append(Perm{}, cur...))
		if !nextPermutation(cur) {
			return res
		}
	}
}

// nextPermutation advances p to its lexicographic
// successor in place, returning false if p was the last
// permutation.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] > p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] < p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}
