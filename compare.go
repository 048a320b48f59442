package polyedit

import "cmp"

// Compare orders polylines for sorting and deduplication.
//
// Fewer vertices sort first. Polylines of equal length compare vertex by
// vertex in sequence order, X before Y. The result is negative, zero or
// positive like cmp.Compare. This is a structural order, not geometric
// equivalence: a rotated or reversed copy of the same shape is not equal.
func Compare(a, b *Polyline) int {
	if c := cmp.Compare(len(a.points), len(b.points)); c != 0 {
		return c
	}
	for i, v := range a.points {
		w := b.points[i]
		if c := cmp.Compare(v.X, w.X); c != 0 {
			return c
		}
		if c := cmp.Compare(v.Y, w.Y); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether Compare(a, b) == 0.
func Equal(a, b *Polyline) bool {
	return Compare(a, b) == 0
}
