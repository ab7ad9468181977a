package silo

import "fmt"

// ComponentAlreadyRegisteredError is returned by RegisterComponent when the
// target id is already initialised; registration is idempotent-rejecting,
// not idempotent-overwriting.
type ComponentAlreadyRegisteredError struct {
	ID   ComponentID
	Name string
}

func (e ComponentAlreadyRegisteredError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("component %d (%q) is already registered", e.ID, e.Name)
	}
	return fmt.Sprintf("component %d is already registered", e.ID)
}

// ComponentUnregisteredError is returned by ComponentAccessor.Add called
// against a component id that has never been registered, or was
// unregistered. Get, Has and Remove report false or do nothing instead.
type ComponentUnregisteredError struct {
	ID ComponentID
}

func (e ComponentUnregisteredError) Error() string {
	return fmt.Sprintf("component %d is not registered", e.ID)
}

// IndexOutOfRangeError is returned when a component or tag index falls
// outside the World's configured capacity.
type IndexOutOfRangeError struct {
	Kind  string // "component" or "tag"
	Index uint32
	Max   uint32
}

func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.Kind, e.Index, e.Max)
}

// AllocationError is surfaced when a dense store cannot grow further, rather
// than being swallowed. Spec note: allocation failure propagates up.
type AllocationError struct {
	Reason string
}

func (e AllocationError) Error() string {
	return fmt.Sprintf("allocation failed: %s", e.Reason)
}

// WorldDestroyedError is raised (via a bark-traced panic) when a World is
// torn down more than once; this is a programming error, not a recoverable
// condition.
type WorldDestroyedError struct{}

func (e WorldDestroyedError) Error() string {
	return "world already destroyed"
}
