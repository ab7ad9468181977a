package silo

import "fmt"

// nameRegistry maps debug names to dense indices with a fixed capacity,
// adapted from the teacher's SimpleCache[T] (api.go/cache.go): same
// map-plus-slice shape, repurposed here to back World's component name
// lookups instead of caching arbitrary items.
type nameRegistry struct {
	names       []string
	indexByName map[string]int
	maxCapacity int
}

func newNameRegistry(maxCapacity int) *nameRegistry {
	return &nameRegistry{
		names:       make([]string, maxCapacity),
		indexByName: make(map[string]int),
		maxCapacity: maxCapacity,
	}
}

// register records name for idx. Empty names are not indexed (RegisterComponent
// treats an unnamed component as anonymous, not an error).
func (r *nameRegistry) register(name string, idx int) error {
	if name == "" {
		return nil
	}
	if _, exists := r.indexByName[name]; exists {
		return fmt.Errorf("name %q already registered", name)
	}
	if len(r.indexByName) >= r.maxCapacity {
		return fmt.Errorf("name registry at maximum capacity (%d)", r.maxCapacity)
	}
	r.indexByName[name] = idx
	r.names[idx] = name
	return nil
}

// lookup returns the index name was registered under, if any.
func (r *nameRegistry) lookup(name string) (int, bool) {
	idx, ok := r.indexByName[name]
	return idx, ok
}

// nameOf returns the name idx was registered under, or "" if idx was never
// named.
func (r *nameRegistry) nameOf(idx int) string {
	if idx < 0 || idx >= len(r.names) {
		return ""
	}
	return r.names[idx]
}

// forget removes idx's entry, e.g. when its owning component is unregistered.
func (r *nameRegistry) forget(idx int) {
	name := r.names[idx]
	if name == "" {
		return
	}
	delete(r.indexByName, name)
	r.names[idx] = ""
}
