package silo_test

import (
	"fmt"

	"github.com/bitgrain/silo"
)

type Position struct{ X, Y float32 }
type Velocity struct{ X, Y float32 }

func Example() {
	w, err := silo.Factory.NewWorld(64, 8, 8)
	if err != nil {
		panic(err)
	}
	defer w.Destroy()

	position, _ := silo.RegisterComponent[Position](w, 0, 64)
	velocity, _ := silo.RegisterComponent[Velocity](w, 1, 64)

	e, _ := w.CreateEntity()
	pos, _ := position.Add(w, e)
	pos.X, pos.Y = 0, 0
	vel, _ := velocity.Add(w, e)
	vel.X, vel.Y = 1, 2

	it := w.NewIterator()
	for it.Begin(); !it.End(); it.Next() {
		cur := it.Entity()
		p, _ := position.Get(w, cur)
		v, _ := velocity.Get(w, cur)
		p.X += v.X
		p.Y += v.Y
	}

	final, _ := position.Get(w, e)
	fmt.Println(final.X, final.Y)
	// Output: 1 2
}
