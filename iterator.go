package silo

import "github.com/TheBitDrifter/mask"

// Iterator walks live entities in strictly ascending slot-index order,
// optionally constrained to those whose component occupancy AND tag
// occupancy are both a superset of a reference entity's. It mirrors
// en_iterator_t's begin/next/end shape from c_ecs3.h, reframed in the
// teacher cursor.go's Ready/Advancing/Terminal state naming.
type Iterator struct {
	world        *World
	required     []uint32 // nil: unconstrained
	requiredTags mask.Mask256
	excludeIdx   uint32 // reference entity's own index, skipped; only meaningful when required != nil
	hasExclude   bool

	cur     int32
	started bool
}

// NewIterator returns an iterator over every live entity in w.
func (w *World) NewIterator() *Iterator {
	return &Iterator{world: w, cur: -1}
}

// NewIteratorFromReference returns an iterator over every live entity
// (other than reference itself) whose component occupancy AND tag occupancy
// are both a superset of reference's — the "find entities matching this
// prototype" query shape. Per spec.md §4.4, the component and tag masks are
// matched the same way: every word of the reference's row must be a subset
// of the candidate's.
func (w *World) NewIteratorFromReference(reference Entity) *Iterator {
	it := &Iterator{world: w, cur: -1}
	if !w.IsLive(reference) {
		return it
	}
	idx := reference.Index()
	row := w.occupancyRow(idx)
	required := make([]uint32, len(row))
	copy(required, row)
	it.required = required
	it.requiredTags = w.tagRows[idx].bits
	it.excludeIdx = idx
	it.hasExclude = true
	return it
}

// Begin positions the iterator at the first matching entity and reports
// whether one was found.
func (it *Iterator) Begin() bool {
	it.started = true
	it.cur = -1
	return it.advance(0)
}

// Next advances to the next matching entity, reporting whether one was
// found.
func (it *Iterator) Next() bool {
	if !it.started {
		return it.Begin()
	}
	return it.advance(it.cur + 1)
}

// End reports whether the iterator has been exhausted.
func (it *Iterator) End() bool {
	return it.started && it.cur < 0
}

// Entity returns the handle the iterator currently rests on. Only valid
// after Begin/Next returns true.
func (it *Iterator) Entity() Entity {
	if it.cur < 0 {
		return NullEntity
	}
	idx := uint32(it.cur)
	return makeEntity(it.world.generations[idx], idx)
}

// advance scans forward from "from" for the next slot matching the
// iterator's constraint, translating en_iterator_t::find from c_ecs3.cpp.
func (it *Iterator) advance(from int) bool {
	w := it.world
	next := from
	for {
		foundIdx, ok := w.slots.NextUsedUp(next)
		if !ok {
			it.cur = -1
			return false
		}
		idx := uint32(foundIdx)
		if it.hasExclude && idx == it.excludeIdx {
			next = foundIdx + 1
			continue
		}
		if it.required != nil && !w.componentRowContainsAll(idx, it.required) {
			next = foundIdx + 1
			continue
		}
		if it.hasExclude && !w.tagRows[idx].bits.ContainsAll(it.requiredTags) {
			next = foundIdx + 1
			continue
		}
		it.cur = int32(idx)
		return true
	}
}

// NewQueryFromPrototype builds a throwaway reference entity via build, then
// returns an iterator over every other live entity matching its component
// and tag occupancy, plus a cleanup closure that destroys the reference entity.
// This promotes the create-reference/iterate/destroy-reference pattern
// test_ecs3.cpp's iterator_basic exercises by hand to a first-class helper.
func (w *World) NewQueryFromPrototype(build func(Entity)) (*Iterator, func(), error) {
	ref, err := w.CreateEntity()
	if err != nil {
		return nil, func() {}, err
	}
	build(ref)
	it := w.NewIteratorFromReference(ref)
	cleanup := func() { w.DestroyEntity(ref) }
	return it, cleanup, nil
}
