/*
Package silo provides a dense, archetype-free Entity-Component-System
storage core.

Instead of grouping entities into archetype tables by component signature,
silo keeps one fixed-capacity entity table plus one dense sparse-set per
registered component type. Adding or removing a component from an entity
never moves it between tables; it only updates that component's own
sparse-set and flips a bit in the entity's occupancy row.

Core Concepts:

  - Entity: an opaque 32-bit handle {generation, index}; equality is bitwise.
  - World: the fixed-capacity composition root owning the entity table and
    every registered component/tag store.
  - ComponentAccessor[T]: a typed handle returned by RegisterComponent,
    used to Add/Get/Remove/Has a component on an entity.
  - Tag: a boolean-only marker toggled with AddTag/RemoveTag/HasTag.
  - Iterator: a forward scan over live entities, optionally constrained to
    those whose occupancy is a superset of a reference entity's.

Basic Usage:

	w, _ := silo.Factory.NewWorld(1024, 64, 32)
	defer w.Destroy()

	position, _ := silo.RegisterComponent[Position](w, 0, 1024)
	velocity, _ := silo.RegisterComponent[Velocity](w, 1, 1024)

	e, _ := w.CreateEntity()
	pos, _ := position.Add(w, e)
	pos.X, pos.Y = 10, 20
	velocity.Add(w, e)

	it := w.NewIterator()
	for it.Begin(); !it.End(); it.Next() {
		cur := it.Entity()
		p, _ := position.Get(w, cur)
		v, _ := velocity.Get(w, cur)
		p.X += v.X
		p.Y += v.Y
	}
*/
package silo
