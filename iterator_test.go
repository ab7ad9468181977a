package silo

import "testing"

func TestIteratorUnconstrainedVisitsAllLiveEntities(t *testing.T) {
	w, _ := Factory.NewWorld(8, 2, 2)
	defer w.Destroy()

	handles, _ := w.CreateEntities(5)
	w.DestroyEntity(handles[2])

	seen := map[Entity]bool{}
	it := w.NewIterator()
	for it.Begin(); !it.End(); it.Next() {
		seen[it.Entity()] = true
	}

	for i, e := range handles {
		if i == 2 {
			if seen[e] {
				t.Fatalf("destroyed entity %v visited by iterator", e)
			}
			continue
		}
		if !seen[e] {
			t.Fatalf("live entity %v not visited by iterator", e)
		}
	}
}

func TestIteratorAscendingOrder(t *testing.T) {
	w, _ := Factory.NewWorld(8, 2, 2)
	defer w.Destroy()

	handles, _ := w.CreateEntities(4)

	var order []uint32
	it := w.NewIterator()
	for it.Begin(); !it.End(); it.Next() {
		order = append(order, it.Entity().Index())
	}

	if len(order) != len(handles) {
		t.Fatalf("got %d entities, want %d", len(order), len(handles))
	}
	for i := 1; i < len(order); i++ {
		if order[i] <= order[i-1] {
			t.Fatalf("iteration order not strictly increasing: %v", order)
		}
	}
}

// TestIteratorByReferenceEntity mirrors the reference implementation's
// iterator_basic scenario: a throwaway "shape" entity is tagged/componentized
// as a prototype, matching live entities are found by superset comparison,
// and the reference entity itself never appears in its own results.
func TestIteratorByReferenceEntity(t *testing.T) {
	w, _ := Factory.NewWorld(16, 4, 4)
	defer w.Destroy()

	position, _ := RegisterComponent[Position](w, 0, 16)
	velocity, _ := RegisterComponent[Velocity](w, 1, 16)

	matching := make([]Entity, 3)
	for i := range matching {
		e, _ := w.CreateEntity()
		position.Add(w, e)
		velocity.Add(w, e)
		matching[i] = e
	}

	onlyPosition, _ := w.CreateEntity()
	position.Add(w, onlyPosition)

	it, cleanup, err := w.NewQueryFromPrototype(func(ref Entity) {
		position.Add(w, ref)
		velocity.Add(w, ref)
	})
	if err != nil {
		t.Fatalf("NewQueryFromPrototype: %v", err)
	}
	defer cleanup()

	seen := map[Entity]bool{}
	for it.Begin(); !it.End(); it.Next() {
		seen[it.Entity()] = true
	}

	for _, e := range matching {
		if !seen[e] {
			t.Fatalf("entity %v matching the prototype was not visited", e)
		}
	}
	if seen[onlyPosition] {
		t.Fatal("entity missing velocity matched the position+velocity prototype")
	}
	if len(seen) != len(matching) {
		t.Fatalf("got %d matches, want %d (reference entity must be excluded)", len(seen), len(matching))
	}
}

// TestIteratorByReferenceEntityMatchesTags is spec.md §8 scenario #4,
// literally: a reference carrying Velocity + tag "enemy" must match E1-E3
// (both Velocity and the tag) and exclude E4, which has Velocity but lacks
// the tag.
func TestIteratorByReferenceEntityMatchesTags(t *testing.T) {
	w, _ := Factory.NewWorld(16, 4, 4)
	defer w.Destroy()

	velocity, _ := RegisterComponent[Velocity](w, 0, 16)
	const tagEnemy TagID = 0

	matching := make([]Entity, 3)
	for i := range matching {
		e, _ := w.CreateEntity()
		velocity.Add(w, e)
		w.AddTag(e, tagEnemy)
		matching[i] = e
	}

	velocityOnly, _ := w.CreateEntity()
	velocity.Add(w, velocityOnly)

	it, cleanup, err := w.NewQueryFromPrototype(func(ref Entity) {
		velocity.Add(w, ref)
		w.AddTag(ref, tagEnemy)
	})
	if err != nil {
		t.Fatalf("NewQueryFromPrototype: %v", err)
	}
	defer cleanup()

	seen := map[Entity]bool{}
	for it.Begin(); !it.End(); it.Next() {
		seen[it.Entity()] = true
	}

	for _, e := range matching {
		if !seen[e] {
			t.Fatalf("entity %v matching component+tag prototype was not visited", e)
		}
	}
	if seen[velocityOnly] {
		t.Fatal("entity with Velocity but without the enemy tag matched the prototype")
	}
	if len(seen) != len(matching) {
		t.Fatalf("got %d matches, want %d", len(seen), len(matching))
	}
}

func TestIteratorEmptyWorld(t *testing.T) {
	w, _ := Factory.NewWorld(4, 2, 2)
	defer w.Destroy()

	it := w.NewIterator()
	if it.Begin() {
		t.Fatal("Begin() returned true over an empty world")
	}
	if !it.End() {
		t.Fatal("End() false after Begin() on an empty world")
	}
}
