package silo

// Allocator is the abstract memory collaborator a World consumes for its
// byte-grained backing storage (spec.md §6's allocate/deallocate contract).
// Go's garbage collector makes raw pointer management unnecessary, so
// Allocator operates on byte slices instead: Alloc returns a zeroed buffer,
// Free releases it early when the Allocator is arena-backed (a no-op for a
// GC-backed one).
//
// Only byte-grained arrays route through Allocator (currently: per-entity
// generation counters). Typed per-component payload storage and the
// row-major occupancy word arrays use native Go slices instead of a void*
// arena, since Go's type system already gives them safe, correctly aligned
// backing memory without unsafe.Pointer gymnastics.
type Allocator interface {
	Alloc(n int) []byte
	Free(buf []byte)
}

// DefaultAllocator is the GC-backed Allocator used when none is configured.
type DefaultAllocator struct{}

// Alloc returns a zeroed buffer of n bytes.
func (DefaultAllocator) Alloc(n int) []byte {
	return make([]byte, n)
}

// Free is a no-op; the Go garbage collector reclaims the buffer once
// unreferenced.
func (DefaultAllocator) Free(buf []byte) {}
