package permgroup

import "github.com/bits-and-blooms/bitset"

// A PointSet is a subset of the points {0, ..., n-1}.
type PointSet struct {
	NumPoints int
	Bits      *bitset.BitSet
}

// NewPointSet creates an empty set over n points.
func NewPointSet(n int) *PointSet {
	return &PointSet{
		NumPoints: n,
		Bits:      bitset.New(uint(n)),
	}
}

// Len returns the size of the ground set.
func (s *PointSet) Len() int {
	return s.NumPoints
}

// Get checks if the point is in the set.
func (s *PointSet) Get(index int) bool {
	if index < 0 || index >= s.NumPoints {
		panic("index out of range")
	}
	return s.Bits.Test(uint(index))
}

// Set adds or removes the point.
func (s *PointSet) Set(index int, value bool) {
	if index < 0 || index >= s.NumPoints {
		panic("index out of range")
	}
	s.Bits.SetTo(uint(index), value)
}

// Count returns the number of points in the set.
func (s *PointSet) Count() int {
	return int(s.Bits.Count())
}

// Intersects checks if the two sets share a point.
func (s *PointSet) Intersects(other *PointSet) bool {
	return s.Bits.IntersectionCardinality(other.Bits) > 0
}

// Points lists the members in increasing order.
func (s *PointSet) Points() []int {
	res := make([]int, 0, s.Count())
	for i, ok := s.Bits.NextSet(0); ok; i, ok = s.Bits.NextSet(i + 1) {
		res = append(res, int(i))
	}
	return res
}
