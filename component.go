package silo

// ComponentID identifies a registered component type within a World's
// [0, maxComponents) index space.
type ComponentID uint32

const noneIndex = ^uint32(0)

// componentStore is the type-erased control surface World needs over a
// registered component's dense sparse-set store, without knowing its
// payload type T.
type componentStore interface {
	isRegistered() bool
	teardown()
	storeName() string
	clearEntity(entityIdx uint32)
}

// typedComponentStore is a per-component-type dense sparse-set: payload is
// packed in [0, freeIndex), globalToLocal/localToGlobal form the sparse-set
// index pair described in spec.md §3/§4.2.
type typedComponentStore[T any] struct {
	name          string
	capacity      int
	payload       []T
	globalToLocal []uint32 // len == maxEntities; noneIndex if entity lacks the component
	localToGlobal []uint32 // len == capacity; noneIndex past freeIndex
	freeIndex     int
	registered    bool
}

func (s *typedComponentStore[T]) isRegistered() bool { return s.registered }

func (s *typedComponentStore[T]) storeName() string { return s.name }

func (s *typedComponentStore[T]) teardown() {
	s.payload = nil
	s.globalToLocal = nil
	s.localToGlobal = nil
	s.freeIndex = 0
	s.registered = false
}

// removeIndex performs the swap-remove described in spec.md §4.2: the last
// packed element moves into the removed slot's place, both maps are rewired,
// and freeIndex shrinks by one. A no-op if entityIdx doesn't own the
// component.
func (s *typedComponentStore[T]) removeIndex(entityIdx uint32) {
	local := s.globalToLocal[entityIdx]
	if local == noneIndex {
		return
	}
	last := uint32(s.freeIndex - 1)
	if local != last {
		lastGlobal := s.localToGlobal[last]
		s.payload[local] = s.payload[last]
		s.globalToLocal[lastGlobal] = local
		s.localToGlobal[local] = lastGlobal
	}
	s.localToGlobal[last] = noneIndex
	s.globalToLocal[entityIdx] = noneIndex
	s.freeIndex--
}

// clearEntity drops entityIdx's sparse-set entry, if any. Called by
// World.DestroyEntity on every registered store so a recycled slot index
// never inherits a previous occupant's stale globalToLocal entry (which
// would otherwise let Get/Add see a component the occupancy bit denies).
func (s *typedComponentStore[T]) clearEntity(entityIdx uint32) {
	s.removeIndex(entityIdx)
}

// ComponentOption configures optional metadata at RegisterComponent time.
type ComponentOption func(*componentOptions)

type componentOptions struct {
	name string
}

// WithComponentName attaches a debug name to a registered component, mirroring
// the optional `name` field on spec.md's component store.
func WithComponentName(name string) ComponentOption {
	return func(o *componentOptions) { o.name = name }
}

// RegisterComponent initialises the dense store for component id, rejecting
// (returning an error, changing no state) if id is already registered.
// capacity bounds how many entities may simultaneously own the component.
func RegisterComponent[T any](w *World, id ComponentID, capacity int, opts ...ComponentOption) (ComponentAccessor[T], error) {
	if uint32(id) >= w.maxComponents {
		return ComponentAccessor[T]{}, IndexOutOfRangeError{Kind: "component", Index: uint32(id), Max: w.maxComponents}
	}
	if capacity <= 0 {
		return ComponentAccessor[T]{}, AllocationError{Reason: "component capacity must be positive"}
	}
	if existing := w.components[id]; existing != nil && existing.isRegistered() {
		return ComponentAccessor[T]{}, ComponentAlreadyRegisteredError{ID: id, Name: existing.storeName()}
	}

	cfg := componentOptions{}
	for _, opt := range opts {
		opt(&cfg)
	}

	store := &typedComponentStore[T]{
		name:          cfg.name,
		capacity:      capacity,
		payload:       make([]T, capacity),
		globalToLocal: make([]uint32, w.maxEntities),
		localToGlobal: make([]uint32, capacity),
		registered:    true,
	}
	for i := range store.globalToLocal {
		store.globalToLocal[i] = noneIndex
	}
	for i := range store.localToGlobal {
		store.localToGlobal[i] = noneIndex
	}
	if err := w.compNames.register(cfg.name, int(id)); err != nil {
		return ComponentAccessor[T]{}, err
	}
	w.components[id] = store
	return ComponentAccessor[T]{id: id}, nil
}

// UnregisterComponent releases component id's store. Per spec.md §9's
// resolved Open Question, it also clears bit id from every entity's
// component-occupancy row, preserving P1 (has ⇔ get != nil) for subsequent
// calls rather than leaving has() reporting a ghost column.
func (w *World) UnregisterComponent(id ComponentID) {
	if uint32(id) >= w.maxComponents {
		return
	}
	store := w.components[id]
	if store == nil || !store.isRegistered() {
		return
	}
	w.compNames.forget(int(id))
	store.teardown()
	w.clearComponentOccupancyColumn(id)
}

// ComponentName returns the debug name id was registered with, or "" if
// unregistered or never named.
func (w *World) ComponentName(id ComponentID) string {
	if uint32(id) >= w.maxComponents || w.components[id] == nil || !w.components[id].isRegistered() {
		return ""
	}
	return w.components[id].storeName()
}

// ComponentIDByName returns the id a component was registered under name,
// if any.
func (w *World) ComponentIDByName(name string) (ComponentID, bool) {
	idx, ok := w.compNames.lookup(name)
	if !ok {
		return 0, false
	}
	return ComponentID(idx), true
}

// ComponentAccessor is a typed handle to a registered component, returned by
// RegisterComponent. It carries no storage of its own; every method takes
// the World to operate against.
type ComponentAccessor[T any] struct {
	id ComponentID
}

// ID returns the accessor's component id.
func (a ComponentAccessor[T]) ID() ComponentID { return a.id }

func componentStoreFor[T any](w *World, id ComponentID) *typedComponentStore[T] {
	if uint32(id) >= uint32(len(w.components)) {
		return nil
	}
	store, _ := w.components[id].(*typedComponentStore[T])
	return store
}

// Has reports whether e currently owns the component, reading the
// per-entity occupancy bit rather than the sparse-set (spec.md §4.2: "the
// iterator never touches component stores for entities that don't match").
func (a ComponentAccessor[T]) Has(w *World, e Entity) bool {
	if !w.IsLive(e) {
		return false
	}
	return w.hasComponentBit(e.Index(), a.id)
}

// Add attaches the component to e, returning a pointer to its payload (the
// zero value of T if newly attached). Calling Add twice on the same entity is
// idempotent: it returns the existing pointer without disturbing freeIndex.
func (a ComponentAccessor[T]) Add(w *World, e Entity) (*T, error) {
	if !w.IsLive(e) {
		return nil, nil
	}
	store := componentStoreFor[T](w, a.id)
	if store == nil || !store.registered {
		return nil, ComponentUnregisteredError{ID: a.id}
	}
	idx := e.Index()
	if local := store.globalToLocal[idx]; local != noneIndex {
		return &store.payload[local], nil
	}
	if store.freeIndex >= store.capacity {
		return nil, AllocationError{Reason: "component store at capacity"}
	}
	local := uint32(store.freeIndex)
	var zero T
	store.payload[local] = zero
	store.freeIndex++
	store.globalToLocal[idx] = local
	store.localToGlobal[local] = idx
	w.setComponentOccupancy(idx, a.id)
	return &store.payload[local], nil
}

// Get returns a pointer to e's payload and true, or (nil, false) if e
// doesn't own the component.
func (a ComponentAccessor[T]) Get(w *World, e Entity) (*T, bool) {
	if !w.IsLive(e) {
		return nil, false
	}
	store := componentStoreFor[T](w, a.id)
	if store == nil || !store.registered {
		return nil, false
	}
	local := store.globalToLocal[e.Index()]
	if local == noneIndex {
		return nil, false
	}
	return &store.payload[local], true
}

// Remove detaches the component from e via swap-remove. No-op if e doesn't
// own the component or the store is unregistered.
func (a ComponentAccessor[T]) Remove(w *World, e Entity) {
	if !w.IsLive(e) {
		return
	}
	store := componentStoreFor[T](w, a.id)
	if store == nil || !store.registered {
		return
	}
	idx := e.Index()
	if store.globalToLocal[idx] == noneIndex {
		return
	}
	store.removeIndex(idx)
	w.clearComponentOccupancy(idx, a.id)
}
