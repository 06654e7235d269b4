package ecscore

import "reflect"

// Destructor is invoked once per component instance, on entity
// destruction and on RemoveComponent. A nil destructor passed to
// CreateComponentType is replaced with a no-op.
type Destructor func(component any)

// ComponentType is a registered kind of component. Once created it is
// never destroyed; the registry only ever grows. Alongside the
// destructor, its record keeps the Go type's reflect.Type for
// introspection and a generic constructor for its typed column
// (column.go).
type ComponentType struct {
	id Id
}

func (ct ComponentType) ID() Id { return ct.id }

// componentTypeData is the registry-held record for a ComponentType:
// its destructor, the column constructor for its Go type, and the
// list of archetypes currently including it — a fast path for
// narrowing archetype search (see findArchetype and
// addMatchingSystemsToArchetypesFor) without scanning every archetype.
type componentTypeData struct {
	reflectType reflect.Type
	destructor  Destructor
	newColumn   func() column
	archetypes  []Id
}

// componentTypeRegistry is the KindComponentType registry map plus its
// id allocator, bundled the way lifecycle.go wires up each kind.
type componentTypeRegistry struct {
	alloc *idAllocator
	data  *registry[componentTypeData]
}

func newComponentTypeRegistry() *componentTypeRegistry {
	return &componentTypeRegistry{
		alloc: newIdAllocator(KindComponentType),
		data:  newRegistry[componentTypeData](),
	}
}

// CreateComponentType registers a new component type for Go type T. A
// nil destructor is replaced with a no-op.
func CreateComponentType[T any](destructor func(*T)) ComponentType {
	requireInitialized()
	logger().WithField("op", "CreateComponentType").Debug("creating component type")

	if destructor == nil {
		destructor = func(*T) {}
	}
	wrapped := func(c any) { destructor(c.(*T)) }

	id := world.componentTypes.alloc.allocate()
	world.componentTypes.data.insert(id, componentTypeData{
		reflectType: reflect.TypeOf((*T)(nil)).Elem(),
		destructor:  wrapped,
		newColumn:   func() column { return newTypedColumn[T]() },
	})

	logger().WithField("componentType", id).Info("created component type")
	return ComponentType{id: id}
}

func (ct ComponentType) data() *componentTypeData {
	d := world.componentTypes.data.get(ct.id)
	failIf(d == nil, newInvalidIdError(KindComponentType, ct.id))
	return d
}

func componentTypeExists(id Id) bool {
	return world.componentTypes.data.contains(id)
}

// addArchetypeToComponentType records that archetype now includes ct.
func addArchetypeToComponentType(ct ComponentType, arct Id) {
	d := ct.data()
	d.archetypes = append(d.archetypes, arct)
}
