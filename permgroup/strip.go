package permgroup

// Strip sifts g through the chain.
//
// At each level, the residual is multiplied by the inverse
// of the representative taking the base point to its
// current image. Sifting stops early at the first level
// whose transversal lacks that image.
//
// The result satisfies
//
//	g = residual.Compose(reps[k-1]).Compose(...).Compose(reps[0])
func Strip(g Perm, chain Chain) (reps []Perm, residual Perm) {
	residual = g
	for _, level := range chain {
		rep, ok := level.Transversal.Get(residual[level.Point])
		if !ok {
			break
		}
		residual = residual.Compose(rep.Inverse())
		reps = append(reps, rep)
	}
	return reps, residual
}
