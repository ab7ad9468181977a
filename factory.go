package silo

// factory implements the factory pattern for constructing silo primitives.
type factory struct{}

// Factory is the package's global factory instance.
var Factory factory

// NewWorld creates a new World with the given capacities.
func (f factory) NewWorld(maxEntities, maxComponents, maxTags int, opts ...WorldOption) (*World, error) {
	return newWorld(maxEntities, maxComponents, maxTags, opts...)
}

// NewIterator creates an unconstrained iterator over every live entity in w.
func (f factory) NewIterator(w *World) *Iterator {
	return w.NewIterator()
}

// NewIteratorFromReference creates an iterator constrained to entities whose
// occupancy is a superset of reference's.
func (f factory) NewIteratorFromReference(w *World, reference Entity) *Iterator {
	return w.NewIteratorFromReference(reference)
}
