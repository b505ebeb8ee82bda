package scan

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Runes is a set of unique characters, keyed by code point. The zero value is
// not usable; create a Runes with make().
type Runes map[rune]struct{}

// Add inserts r into the set. Adding a rune that is already in the set is a
// no-op.
func (rs Runes) Add(r rune) {
	rs[r] = struct{}{}
}

// Has reports whether r is in the set.
func (rs Runes) Has(r rune) bool {
	_, ok := rs[r]
	return ok
}

// Len returns the number of runes in the set.
func (rs Runes) Len() int {
	return len(rs)
}

// Slice returns the runes of the set in unspecified order.
func (rs Runes) Slice() []rune {
	return maps.Keys(rs)
}

// Sorted returns the runes of the set, sorted by code point.
func (rs Runes) Sorted() []rune {
	out := maps.Keys(rs)
	slices.Sort(out)
	return out
}

// String returns the runes of the set as a string, sorted by code point.
func (rs Runes) String() string {
	return string(rs.Sorted())
}
