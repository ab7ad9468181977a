package silo

import "github.com/TheBitDrifter/mask"

// TagID identifies a tag within a World's [0, maxTags) index space. Tags are
// boolean-only markers: they carry no payload, unlike components.
type TagID uint32

// HasTag reports whether e carries tag id.
func (w *World) HasTag(e Entity, id TagID) bool {
	if !w.IsLive(e) || uint32(id) >= w.maxTags {
		return false
	}
	row := &w.tagRows[e.Index()]
	return row.Contains(uint32(id))
}

// AddTag marks e as carrying tag id. Idempotent.
func (w *World) AddTag(e Entity, id TagID) error {
	if !w.IsLive(e) {
		return nil
	}
	if uint32(id) >= w.maxTags {
		return IndexOutOfRangeError{Kind: "tag", Index: uint32(id), Max: w.maxTags}
	}
	row := &w.tagRows[e.Index()]
	row.Mark(uint32(id))
	return nil
}

// RemoveTag clears tag id from e. No-op if e doesn't carry it.
func (w *World) RemoveTag(e Entity, id TagID) error {
	if !w.IsLive(e) {
		return nil
	}
	if uint32(id) >= w.maxTags {
		return IndexOutOfRangeError{Kind: "tag", Index: uint32(id), Max: w.maxTags}
	}
	row := &w.tagRows[e.Index()]
	row.Unmark(uint32(id))
	return nil
}

// tagRow is a thin wrapper over mask.Mask256 giving it Mark/Unmark/Contains
// semantics keyed by a plain bit index, the shape tag.go's callers expect.
type tagRow struct {
	bits mask.Mask256
}

func (r *tagRow) Mark(bit uint32) {
	r.bits.Mark(bit)
}

func (r *tagRow) Unmark(bit uint32) {
	r.bits.Unmark(bit)
}

func (r *tagRow) Contains(bit uint32) bool {
	var probe mask.Mask256
	probe.Mark(bit)
	return r.bits.ContainsAll(probe)
}

func (r *tagRow) clear() {
	r.bits = mask.Mask256{}
}
