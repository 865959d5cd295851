package permgroup

import (
	"fmt"
	"strconv"
	"strings"
)

// FromCycles multiplies the given cycles together, from
// left to right, to get a permutation of degree n.
//
// The cycle [a, b, c] maps a to b, b to c, and c to a.
// Each cycle must list distinct points in [0, n).
func FromCycles(n int, cycles [][]int) Perm {
	res := Identity(n)
	for _, cycle := range cycles {
		t := Identity(n)
		for i, x := range cycle {
			checkPoint(n, x)
			t[x] = cycle[(i+1)%len(cycle)]
		}
		res = res.Compose(t)
	}
	return res
}

// ParseCycles parses cycle notation such as "(0 1 2)(3 4)"
// into a permutation of degree n.
//
// Points may be separated by spaces or commas. The strings
// "" and "()" denote the identity. Each cycle must list
// distinct points, but cycles may overlap, in which case
// they are composed from left to right.
func ParseCycles(n int, s string) (Perm, error) {
	var cycles [][]int
	rest := strings.TrimSpace(s)
	for rest != "" {
		if rest[0] != '(' {
			return nil, fmt.Errorf("%w: expected '(' in %q", ErrInvalidCycle, s)
		}
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated cycle in %q", ErrInvalidCycle, s)
		}
		fields := strings.FieldsFunc(rest[1:end], func(r rune) bool {
			return r == ' ' || r == ',' || r == '\t'
		})
		cycle := make([]int, 0, len(fields))
		seen := map[int]bool{}
		for _, field := range fields {
			x, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: bad point %q", ErrInvalidCycle, field)
			}
			if x < 0 || x >= n {
				return nil, fmt.Errorf("%w: point %d not in [0, %d)", ErrInvalidCycle, x, n)
			}
			if seen[x] {
				return nil, fmt.Errorf("%w: point %d repeated in one cycle", ErrInvalidCycle, x)
			}
			seen[x] = true
			cycle = append(cycle, x)
		}
		cycles = append(cycles, cycle)
		rest = strings.TrimSpace(rest[end+1:])
	}
	return FromCycles(n, cycles), nil
}

// Cycles decomposes p into disjoint cycles of length at
// least two, each starting at its smallest point.
func (p Perm) Cycles() [][]int {
	var res [][]int
	visited := NewPointSet(len(p))
	for i := range p {
		if visited.Get(i) || p[i] == i {
			continue
		}
		var cycle []int
		for j := i; !visited.Get(j); j = p[j] {
			visited.Set(j, true)
			cycle = append(cycle, j)
		}
		res = append(res, cycle)
	}
	return res
}

// String formats p in disjoint cycle notation, using "()"
// for the identity.
func (p Perm) String() string {
	cycles := p.Cycles()
	if len(cycles) == 0 {
		return "()"
	}
	var b strings.Builder
	for _, cycle := range cycles {
		b.WriteByte('(')
		for i, x := range cycle {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(x))
		}
		b.WriteByte(')')
	}
	return b.String()
}
