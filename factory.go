package ecscore

// factory implements the factory pattern for ecscore's core record
// types: entities, component types, systems and type sets.
type factory struct{}

// Factory is the global factory instance.
var Factory factory

// NewEntity creates a new entity with no components.
func (f factory) NewEntity() Entity {
	return CreateEntity()
}

// NewTypeSet creates a TypeSet containing the given component types.
func (f factory) NewTypeSet(types ...ComponentType) TypeSet {
	ts := NewTypeSet()
	for _, ct := range types {
		ts = ts.Add(ct.id)
	}
	return ts
}

// FactoryNewComponentType registers a new component type for Go type
// T, as CreateComponentType. It is a package-level function rather
// than a factory method because Go methods cannot themselves be
// generic.
func FactoryNewComponentType[T any](destructor func(*T)) ComponentType {
	return CreateComponentType(destructor)
}

// NewSystem creates a new system, as CreateSystem.
func (f factory) NewSystem(requirements TypeSet, start, update UpdateFunc, draw DrawFunc, destroy DestroyFunc) System {
	return CreateSystem(requirements, start, update, draw, destroy)
}
