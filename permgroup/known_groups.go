package permgroup

// StarGenerators returns the transpositions (i n-1) for
// i < n-1, which generate the symmetric group S_n.
func StarGenerators(n int) []Perm {
	var res []Perm
	for i := 0; i < n-1; i++ {
		res = append(res, FromCycles(n, [][]int{{i, n - 1}}))
	}
	return res
}

// CyclicGenerators returns the n-cycle (0 1 ... n-1).
func CyclicGenerators(n int) []Perm {
	if n < 2 {
		return nil
	}
	return []Perm{FromCycles(n, [][]int{rangeCycle(0, n)})}
}

// SymmetricGenerators returns (0 1 ... n-1) and (0 1),
// which generate S_n.
func SymmetricGenerators(n int) []Perm {
	if n < 2 {
		return nil
	}
	return []Perm{
		FromCycles(n, [][]int{rangeCycle(0, n)}),
		FromCycles(n, [][]int{{0, 1}}),
	}
}

// AlternatingGenerators returns the 3-cycles (0 1 i),
// which generate the alternating group A_n.
func AlternatingGenerators(n int) []Perm {
	var res []Perm
	for i := 2; i < n; i++ {
		res = append(res, FromCycles(n, [][]int{{0, 1, i}}))
	}
	return res
}

// DihedralGenerators returns a rotation and a reflection
// of a regular n-gon, which generate the dihedral group of
// order 2n. For n < 3 it falls back to SymmetricGenerators.
func DihedralGenerators(n int) []Perm {
	if n < 3 {
		return SymmetricGenerators(n)
	}
	reflection := make(Perm, n)
	for i := range reflection {
		reflection[i] = (n - i) % n
	}
	return []Perm{FromCycles(n, [][]int{rangeCycle(0, n)}), reflection}
}

// Mathieu12Generators returns generators of the Mathieu
// group M12, of order 95040, acting on 12 points.
func Mathieu12Generators() (int, []Perm) {
	const n = 12
	return n, []Perm{
		FromCycles(n, [][]int{{0, 3}, {2, 9}, {4, 10}, {5, 11}}),
		FromCycles(n, [][]int{{0, 7, 8}, {1, 2, 3}, {4, 11, 10}, {5, 9, 6}}),
	}
}

// RubikGenerators returns the six face turns of the
// Rubik's cube, acting on its 48 movable facelets.
//
// Corner facelets have even labels and edge facelets have
// odd labels.
func RubikGenerators() (int, []Perm) {
	const n = 48
	faces := [][][]int{
		{{0, 2, 4, 6}, {1, 3, 5, 7}, {14, 16, 34, 28}, {13, 23, 33, 27}, {12, 22, 32, 26}},
		{{8, 10, 12, 14}, {9, 11, 13, 15}, {42, 18, 2, 26}, {41, 17, 1, 25}, {40, 16, 0, 24}},
		{{16, 18, 20, 22}, {17, 19, 21, 23}, {12, 40, 36, 4}, {11, 47, 35, 3}, {10, 46, 34, 2}},
		{{24, 26, 28, 30}, {25, 27, 29, 31}, {8, 0, 32, 44}, {15, 7, 39, 43}, {14, 6, 38, 42}},
		{{32, 34, 36, 38}, {33, 35, 37, 39}, {6, 22, 46, 30}, {5, 21, 45, 29}, {4, 20, 44, 28}},
		{{40, 42, 44, 46}, {41, 43, 45, 47}, {10, 24, 38, 20}, {9, 31, 37, 19}, {8, 30, 36, 18}},
	}
	res := make([]Perm, len(faces))
	for i, face := range faces {
		res[i] = FromCycles(n, face)
	}
	return n, res
}

func rangeCycle(start, end int) []int {
	res := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		res = append(res, i)
	}
	return res
}
