package silo

// Config holds package-level defaults new Worlds are built with unless a
// WorldOption overrides them.
var Config config = config{
	allocator:       DefaultAllocator{},
	debugAssertions: true,
}

type config struct {
	allocator       Allocator
	debugAssertions bool
}

// SetAllocator overrides the default Allocator new Worlds are built with.
func (c *config) SetAllocator(a Allocator) {
	c.allocator = a
}

// SetDebugAssertions toggles whether a second World.Destroy (the one
// programming error the World checks) trips a bark-traced panic (the
// default) or is left as undefined behaviour, per spec's error
// taxonomy: "release builds may treat them as undefined".
func (c *config) SetDebugAssertions(enabled bool) {
	c.debugAssertions = enabled
}
