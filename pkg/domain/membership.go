package domain

import (
	"math"
	"sort"
)

// Membership maps category names to degrees in [0, 1].
// A missing name is equivalent to a degree of 0.
type Membership map[string]float64

// Degree returns the degree for name, or 0 if absent.
func (m Membership) Degree(name string) float64 {
	return m[name]
}

// Names returns the category names in lexical order.
func (m Membership) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy. Cloning a nil map yields an empty one.
func (m Membership) Clone() Membership {
	out := make(Membership, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Max returns the largest degree (the height of the set), or 0 when empty.
func (m Membership) Max() float64 {
	height := 0.0
	for _, v := range m {
		height = math.Max(height, v)
	}
	return height
}

// Sum returns the total of all degrees.
func (m Membership) Sum() float64 {
	total := 0.0
	for _, v := range m {
		total += v
	}
	return total
}

// Strongest returns the name with the highest degree. Ties resolve to the
// lexically smallest name so the result is deterministic.
func (m Membership) Strongest() (string, float64, bool) {
	best, bestDegree, found := "", 0.0, false
	for _, name := range m.Names() {
		if d := m[name]; !found || d > bestDegree {
			best, bestDegree, found = name, d, true
		}
	}
	return best, bestDegree, found
}
