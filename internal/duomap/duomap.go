// Package duomap implements the dual free/used bitmap primitive described as
// an external collaborator in the storage core's design: free(i) XOR used(i)
// holds for every index in range, with O(log size) find-free and next-used
// queries.
//
// Rather than keep two physical bitmaps in lockstep, Map tracks a single
// hierarchical "used" bitset (internal/hbb) and derives "free" as its
// complement; the spec's own design notes observe that for this storage
// iteration, the hbb's role is subsumed by the duomap, which is exactly this
// construction.
package duomap

import "github.com/bitgrain/silo/internal/hbb"

// Map tracks free vs used slot indices over a fixed range [0, size),
// initialised to all free.
type Map struct {
	used *hbb.Set
}

// New allocates a Map over [0, size).
func New(size int) *Map {
	return &Map{used: hbb.NewSet(size)}
}

// Size returns the map's fixed range.
func (m *Map) Size() int { return m.used.Size() }

// FindFreeAndSetUsed finds any free index, marks it used, and returns it.
// Returns (-1, false) if every index is used.
func (m *Map) FindFreeAndSetUsed() (int, bool) {
	idx, ok := m.used.FindFirstClear()
	if !ok {
		return -1, false
	}
	m.used.Set(idx)
	return idx, true
}

// SetFree marks index i as free.
func (m *Map) SetFree(i int) {
	m.used.Clear(i)
}

// IsUsed reports whether index i is currently used.
func (m *Map) IsUsed(i int) bool {
	return m.used.IsSet(i)
}

// NextUsedUp returns the smallest used index >= from, or (-1, false) if none
// exists.
func (m *Map) NextUsedUp(from int) (int, bool) {
	return m.used.FindFirstSetFrom(from)
}
