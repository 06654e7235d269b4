/*
Package ecscore provides an archetype-based Entity-Component-System
(ECS) runtime core.

Entities are grouped by the exact set of component types they carry
(their archetype), and every archetype stores its entities' components
column-by-column so a system touching the same few component types
across thousands of entities stays cache-friendly.

Core Concepts:

  - Entity: an opaque handle to a collection of components.
  - ComponentType: a registered kind of component, created once via
    CreateComponentType[T].
  - Archetype: the set of entities sharing an exact TypeSet of
    component types, each with its own ComponentTable.
  - System: behavior registered against a required TypeSet, run over
    every entity in every archetype that satisfies it.

Basic Usage:

	ecscore.Init()

	position := ecscore.CreateComponentType[Position](nil)
	velocity := ecscore.CreateComponentType[Velocity](nil)

	requirements := ecscore.Factory.NewTypeSet(position, velocity)
	ecscore.CreateSystem(requirements, nil, func(g ecscore.ComponentGroup) {
		pos := ecscore.GetGroupComponent[Position](g, position)
		vel := ecscore.GetGroupComponent[Velocity](g, velocity)
		pos.X += vel.X
		pos.Y += vel.Y
	}, nil, nil)

	e := ecscore.CreateEntity()
	ecscore.AddComponentWithValue(e, position, Position{})
	ecscore.AddComponentWithValue(e, velocity, Velocity{X: 1})

	ecscore.UpdateAll()
*/
package ecscore
