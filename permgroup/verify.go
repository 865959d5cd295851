package permgroup

// A Witness is an element of the group generated by a
// generating set which the claimed stabilizer chain fails
// to account for.
//
// Residual is the element itself and Reps are the
// transversal representatives it was stripped by before
// sifting stopped.
type Witness struct {
	Reps     []Perm
	Residual Perm
}

// Verify checks if the chain is a stabilizer chain for the
// group generated by gens, with gens a strong generating
// set for it.
//
// It returns nil on success, or a Witness proving that gens
// must be extended.
func Verify(n int, chain Chain, gens []Perm) *Witness {
	checkGenerators(n, gens)
	if len(chain) == 0 {
		for _, g := range gens {
			if !g.IsIdentity() {
				return &Witness{Residual: g}
			}
		}
		return nil
	}

	beta := chain[0].Point
	var fixing []Perm
	for _, g := range gens {
		if g.Fixes(beta) {
			fixing = append(fixing, g)
		}
	}
	if w := Verify(n, chain[1:], fixing); w != nil {
		return w
	}

	// The stabilizer of beta under all of gens may be larger
	// than the group generated by the fixing subset.
	_, schreierGens := OrbitTransversalStabilizer(n, gens, beta)
	for _, y := range schreierGens {
		reps, residual := Strip(y, chain[1:])
		if !residual.IsIdentity() {
			return &Witness{Reps: reps, Residual: residual}
		}
	}
	return nil
}
