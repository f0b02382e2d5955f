package ecs_test

import "github.com/plus3/playpark/ecs"

// Shared component types for the package tests.

type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Health struct {
	Current, Max int
}

type Name string

func newTestWorld() *ecs.World {
	w := ecs.NewWorld()
	ecs.RegisterComponent[Position](w)
	ecs.RegisterComponent[Velocity](w)
	ecs.RegisterComponent[Health](w)
	ecs.RegisterComponent[Name](w)
	return w
}
