package permgroup

import "sort"

// An OrbitPoint pairs a point w in the orbit of a base
// point v with a representative r such that r maps v to w.
type OrbitPoint struct {
	Point int
	Rep   Perm
}

// A Transversal maps each point of an orbit to a coset
// representative carrying the base point to it.
//
// The table has one entry per point of the ground set, and
// the entry is nil for points outside the orbit.
type Transversal []Perm

// NewTransversal builds a Transversal of degree n from the
// orbit produced by OrbitTransversalStabilizer.
func NewTransversal(n int, orbit []OrbitPoint) Transversal {
	res := make(Transversal, n)
	for _, op := range orbit {
		res[op.Point] = op.Rep
	}
	return res
}

// Get returns the representative for point w, if w is in
// the orbit.
func (t Transversal) Get(w int) (Perm, bool) {
	if w < 0 || w >= len(t) || t[w] == nil {
		return nil, false
	}
	return t[w], true
}

// OrbitSize counts the points present in the table.
func (t Transversal) OrbitSize() int {
	var count int
	for _, rep := range t {
		if rep != nil {
			count++
		}
	}
	return count
}

// Orbit lists the points present in the table.
func (t Transversal) Orbit() []int {
	var res []int
	for w, rep := range t {
		if rep != nil {
			res = append(res, w)
		}
	}
	return res
}

type orbitItem struct {
	point int
	rep   Perm
}

// OrbitTransversalStabilizer performs a breadth-first
// search of the orbit of v under the group generated by
// gens.
//
// It returns the orbit in visit order, with a
// representative for every point, and a sorted,
// deduplicated set of Schreier generators for the
// stabilizer of v.
func OrbitTransversalStabilizer(n int, gens []Perm, v int) ([]OrbitPoint, []Perm) {
	checkPoint(n, v)
	checkGenerators(n, gens)

	table := make(Transversal, n)
	var orbit []OrbitPoint
	var stabilizer []Perm

	queue := []orbitItem{{point: v, rep: Identity(n)}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if q := table[item.point]; q != nil {
			// q and item.rep both carry v to the same point.
			r := q.Compose(item.rep.Inverse())
			if !r.IsIdentity() {
				stabilizer = append(stabilizer, r)
			}
			continue
		}
		table[item.point] = item.rep
		orbit = append(orbit, OrbitPoint{Point: item.point, Rep: item.rep})
		for _, g := range gens {
			queue = append(queue, orbitItem{
				point: g[item.point],
				rep:   item.rep.Compose(g),
			})
		}
	}

	return orbit, uniquePerms(stabilizer)
}

// uniquePerms sorts perms and drops duplicates in place.
func uniquePerms(perms []Perm) []Perm {
	if len(perms) == 0 {
		return nil
	}
	sort.Slice(perms, func(i, j int) bool {
		return perms[i].Less(perms[j])
	})
	res := perms[:1]
	for _, p := range perms[1:] {
		if !p.Equal(res[len(res)-1]) {
			res = append(res, p)
		}
	}
	return res
}
