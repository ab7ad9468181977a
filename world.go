package silo

import (
	"github.com/TheBitDrifter/bark"
	"github.com/bitgrain/silo/internal/duomap"
)

// World is the composition root: a fixed-capacity entity table plus the
// registered component and tag stores attached to it. A World's three
// capacities (maxEntities, maxComponents, maxTags) are fixed for its
// lifetime, mirroring c_ecs3.cpp's g_create_ecs allocating three parallel
// arrays up front.
type World struct {
	maxEntities   uint32
	maxComponents uint32
	maxTags       uint32

	wordsPerEntity uint32 // ceil(maxComponents/32)

	generations []uint8
	occupancy   []uint32 // flat, row-major: entity idx * wordsPerEntity + word
	tagRows     []tagRow

	components []componentStore
	compNames *nameRegistry

	slots *duomap.Map

	allocator       Allocator
	debugAssertions bool
	destroyed       bool
}

// WorldOption configures a World at construction time.
type WorldOption func(*worldOptions)

type worldOptions struct {
	allocator       Allocator
	debugAssertions bool
}

// WithAllocator overrides the Allocator a single World is built with,
// independent of the package-level Config default.
func WithAllocator(a Allocator) WorldOption {
	return func(o *worldOptions) { o.allocator = a }
}

// WithDebugAssertions overrides the package-level Config.debugAssertions
// default for a single World.
func WithDebugAssertions(enabled bool) WorldOption {
	return func(o *worldOptions) { o.debugAssertions = enabled }
}

func newWorld(maxEntities, maxComponents, maxTags int, opts ...WorldOption) (*World, error) {
	if maxEntities <= 0 {
		return nil, AllocationError{Reason: "maxEntities must be positive"}
	}
	if maxComponents <= 0 {
		return nil, AllocationError{Reason: "maxComponents must be positive"}
	}
	if maxTags <= 0 || maxTags > 256 {
		return nil, AllocationError{Reason: "maxTags must be in (0,256], mask.Mask256-backed"}
	}

	cfg := worldOptions{allocator: Config.allocator, debugAssertions: Config.debugAssertions}
	for _, opt := range opts {
		opt(&cfg)
	}

	wordsPerEntity := (uint32(maxComponents) + 31) / 32

	genBuf := cfg.allocator.Alloc(maxEntities)

	w := &World{
		maxEntities:     uint32(maxEntities),
		maxComponents:   uint32(maxComponents),
		maxTags:         uint32(maxTags),
		wordsPerEntity:  wordsPerEntity,
		generations:     genBuf,
		occupancy:       make([]uint32, uint32(maxEntities)*wordsPerEntity),
		tagRows:         make([]tagRow, maxEntities),
		components:      make([]componentStore, maxComponents),
		compNames:       newNameRegistry(maxComponents),
		slots:           duomap.New(maxEntities),
		allocator:       cfg.allocator,
		debugAssertions: cfg.debugAssertions,
	}
	return w, nil
}

// Destroy tears the World down, releasing its allocator-backed buffers.
// Calling Destroy more than once is a programming error: with debug
// assertions on (the default), it trips a bark-traced panic; with them off,
// it's left as undefined behaviour per spec's error taxonomy and is a silent
// no-op here.
func (w *World) Destroy() {
	if w.destroyed {
		if w.debugAssertions {
			panic(bark.AddTrace(WorldDestroyedError{}))
		}
		return
	}
	w.allocator.Free(w.generations)
	w.generations = nil
	w.occupancy = nil
	w.tagRows = nil
	w.components = nil
	w.slots = nil
	w.destroyed = true
}

// CreateEntity allocates a fresh slot and returns its handle. The slot's
// generation is whatever it was left at by the last DestroyEntity of a
// previous occupant (0 the first time a slot is used).
func (w *World) CreateEntity() (Entity, error) {
	idx, ok := w.slots.FindFreeAndSetUsed()
	if !ok {
		return NullEntity, AllocationError{Reason: "entity table at capacity"}
	}
	return makeEntity(w.generations[idx], uint32(idx)), nil
}

// CreateEntities allocates n fresh entities in one call, a convenience
// batch helper over CreateEntity (spec's distillation omits batch creation;
// test_ecs3.cpp's create_destroy_many_entities exercises it directly).
func (w *World) CreateEntities(n int) ([]Entity, error) {
	out := make([]Entity, 0, n)
	for i := 0; i < n; i++ {
		e, err := w.CreateEntity()
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, nil
}

// DestroyEntity releases e's slot back to the free pool. Per spec.md §9's
// resolved Open Question 1, the slot's generation is bumped (mod 256)
// before release, so any handle still referring to the old generation is
// recognisably stale rather than ambiguously aliasing the slot's next
// occupant. A no-op if e is not currently live.
func (w *World) DestroyEntity(e Entity) {
	if !w.IsLive(e) {
		return
	}
	idx := e.Index()
	for _, store := range w.components {
		if store != nil && store.isRegistered() {
			store.clearEntity(idx)
		}
	}
	w.clearOccupancyRow(idx)
	w.tagRows[idx].clear()
	w.generations[idx]++
	w.slots.SetFree(int(idx))
}

// DestroyEntities destroys each of handles, skipping any that are already
// not live.
func (w *World) DestroyEntities(handles ...Entity) {
	for _, e := range handles {
		w.DestroyEntity(e)
	}
}

// IsLive reports whether e refers to a currently occupied slot at e's own
// generation (a stale handle to a recycled slot is not live).
func (w *World) IsLive(e Entity) bool {
	if e.IsNull() || e.Index() >= w.maxEntities {
		return false
	}
	idx := e.Index()
	return w.slots.IsUsed(int(idx)) && w.generations[idx] == e.Generation()
}

func (w *World) occupancyRow(idx uint32) []uint32 {
	start := idx * w.wordsPerEntity
	return w.occupancy[start : start+w.wordsPerEntity]
}

func (w *World) clearOccupancyRow(idx uint32) {
	row := w.occupancyRow(idx)
	for i := range row {
		row[i] = 0
	}
}

func (w *World) hasComponentBit(idx uint32, id ComponentID) bool {
	row := w.occupancyRow(idx)
	return row[id/32]&(1<<(id%32)) != 0
}

func (w *World) setComponentOccupancy(idx uint32, id ComponentID) {
	row := w.occupancyRow(idx)
	row[id/32] |= 1 << (id % 32)
}

func (w *World) clearComponentOccupancy(idx uint32, id ComponentID) {
	row := w.occupancyRow(idx)
	row[id/32] &^= 1 << (id % 32)
}

// clearComponentOccupancyColumn clears bit id from every entity's occupancy
// row, called by UnregisterComponent so Has() can never again report a
// ghost column for a store that no longer exists.
func (w *World) clearComponentOccupancyColumn(id ComponentID) {
	for idx := uint32(0); idx < w.maxEntities; idx++ {
		w.clearComponentOccupancy(idx, id)
	}
}

// componentRowContainsAll reports whether e's occupancy row is a superset of
// the given required-bits row (used by the iterator's reference-entity
// constraint).
func (w *World) componentRowContainsAll(idx uint32, required []uint32) bool {
	row := w.occupancyRow(idx)
	for i, word := range required {
		if row[i]&word != word {
			return false
		}
	}
	return true
}
