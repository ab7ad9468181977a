package silo

import "testing"

func TestEntityPackingRoundtrips(t *testing.T) {
	cases := []struct {
		gen uint8
		idx uint32
	}{
		{0, 0},
		{1, 1},
		{255, 0xFFFFFE},
		{42, 12345},
	}
	for _, c := range cases {
		e := makeEntity(c.gen, c.idx)
		if e.Generation() != c.gen {
			t.Fatalf("gen=%d idx=%d: got generation %d", c.gen, c.idx, e.Generation())
		}
		if e.Index() != c.idx {
			t.Fatalf("gen=%d idx=%d: got index %d", c.gen, c.idx, e.Index())
		}
	}
}

func TestNullEntity(t *testing.T) {
	if !NullEntity.IsNull() {
		t.Fatal("NullEntity.IsNull() = false")
	}
	e := makeEntity(0, 0)
	if e.IsNull() {
		t.Fatal("freshly packed handle reported null")
	}
}

func TestCreateDestroyWorld(t *testing.T) {
	w, err := Factory.NewWorld(16, 4, 4)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	w.Destroy()
}

func TestDestroyWorldTwicePanics(t *testing.T) {
	w, err := Factory.NewWorld(16, 4, 4)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	w.Destroy()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic destroying an already-destroyed World")
		}
	}()
	w.Destroy()
}

func TestCreateAndDestroyEntities(t *testing.T) {
	w, _ := Factory.NewWorld(8, 4, 4)
	defer w.Destroy()

	e, err := w.CreateEntity()
	if err != nil {
		t.Fatalf("CreateEntity: %v", err)
	}
	if !w.IsLive(e) {
		t.Fatal("freshly created entity is not live")
	}

	w.DestroyEntity(e)
	if w.IsLive(e) {
		t.Fatal("destroyed entity is still reported live")
	}
}

func TestDestroyEntityBumpsGenerationAndInvalidatesStaleHandle(t *testing.T) {
	w, _ := Factory.NewWorld(8, 4, 4)
	defer w.Destroy()

	e1, _ := w.CreateEntity()
	w.DestroyEntity(e1)

	e2, _ := w.CreateEntity()
	if e2.Index() != e1.Index() {
		t.Fatalf("expected slot reuse: e1.Index()=%d e2.Index()=%d", e1.Index(), e2.Index())
	}
	if e2.Generation() == e1.Generation() {
		t.Fatal("generation did not advance across destroy/recreate")
	}
	if w.IsLive(e1) {
		t.Fatal("stale handle from before destroy reported live after slot reuse")
	}
	if !w.IsLive(e2) {
		t.Fatal("freshly recreated entity is not live")
	}
}

func TestCreateDestroyManyEntities(t *testing.T) {
	const n = 512
	w, _ := Factory.NewWorld(n, 4, 4)
	defer w.Destroy()

	handles, err := w.CreateEntities(n)
	if err != nil {
		t.Fatalf("CreateEntities: %v", err)
	}
	if len(handles) != n {
		t.Fatalf("expected %d handles, got %d", n, len(handles))
	}
	for _, e := range handles {
		if !w.IsLive(e) {
			t.Fatalf("entity %v not live after batch create", e)
		}
	}

	if _, err := w.CreateEntity(); err == nil {
		t.Fatal("expected allocation error at capacity")
	}

	w.DestroyEntities(handles...)
	for _, e := range handles {
		if w.IsLive(e) {
			t.Fatalf("entity %v still live after batch destroy", e)
		}
	}

	// capacity should be fully reclaimed
	if _, err := w.CreateEntities(n); err != nil {
		t.Fatalf("CreateEntities after full teardown: %v", err)
	}
}

func TestDestroyEntityIsIdempotent(t *testing.T) {
	w, _ := Factory.NewWorld(4, 2, 2)
	defer w.Destroy()

	e, _ := w.CreateEntity()
	w.DestroyEntity(e)
	w.DestroyEntity(e) // must not panic or double-free the slot
	if w.IsLive(e) {
		t.Fatal("entity reported live after destroy")
	}
}
