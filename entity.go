package ecscore

import "fmt"

// Entity is an opaque handle to a single collection of components.
// Entities start with no components and move between archetypes as
// components are added and removed.
type Entity struct {
	id Id
}

func (e Entity) ID() Id { return e.id }

// String renders e's id and the ascending ids of its current component
// types, e.g. "Entity(3, components=[1 2 5])".
func (e Entity) String() string {
	if !entityExists(e.id) {
		return fmt.Sprintf("Entity(%d, destroyed)", e.id)
	}
	d := Archetype{id: world.entities.data.get(e.id).archetype}.data()

	ids := make([]Id, 0, d.typeSet.Count())
	for t := d.typeSet.First(); t != InvalidId; t = d.typeSet.Next(t) {
		ids = append(ids, t)
	}
	return fmt.Sprintf("Entity(%d, components=%v)", e.id, ids)
}

// EntitiesEqual reports whether a and b refer to the same entity.
func EntitiesEqual(a, b Entity) bool { return a.id == b.id }

type entityData struct {
	archetype Id
}

type entityRegistry struct {
	alloc *idAllocator
	data  *registry[entityData]
}

func newEntityRegistry() *entityRegistry {
	return &entityRegistry{
		alloc: newIdAllocator(KindEntity),
		data:  newRegistry[entityData](),
	}
}

func entityExists(id Id) bool { return world.entities.data.contains(id) }

// CreateEntity allocates an entity with no components, placed in the
// (lazily created) empty archetype.
func CreateEntity() Entity {
	requireInitialized()

	id := world.entities.alloc.allocate()
	arct := findOrCreateArchetype(NewTypeSet())
	world.entities.data.insert(id, entityData{archetype: arct})
	Archetype{id: arct}.data().table.addRow(id)

	logger().WithField("entity", id).Info("created entity")
	return Entity{id: id}
}

// DestroyEntity removes entity and every component it holds, firing
// each matching system's destroy callback first. Destroying an
// already-nonexistent entity is a no-op.
func DestroyEntity(entity Entity) {
	if !entityExists(entity.id) {
		return
	}

	logger().WithField("entity", entity.id).Info("destroying entity")

	ed := world.entities.data.get(entity.id)
	arct := ed.archetype
	d := Archetype{id: arct}.data()

	for _, sysId := range d.systems {
		sys := System{id: sysId}
		if fn := sys.data().funcs.destroy; fn != nil {
			fn(ComponentGroup{entity: entity, system: sys})
		}
	}

	d.table.removeRow(entity.id, true)
	world.entities.data.remove(entity.id)
	world.entities.alloc.release(entity.id)
}

// ContainsComponent reports whether entity currently has a component
// of type ct. Returns false, rather than failing, for a nonexistent
// entity or component type.
func ContainsComponent(entity Entity, ct ComponentType) bool {
	if !entityExists(entity.id) || !componentTypeExists(ct.id) {
		return false
	}
	d := Archetype{id: world.entities.data.get(entity.id).archetype}.data()
	return d.typeSet.Contains(ct.id)
}

// addOrRemoveComponent moves entity to the archetype reached by
// toggling ct's membership, returning the entity's archetype before
// and after the move.
func addOrRemoveComponent(entity Entity, ct ComponentType, add bool) (oldArct, newArct Id) {
	ed := world.entities.data.get(entity.id)
	oldArct = ed.archetype

	newArct = archetypeEdge(oldArct, ct.id)

	oldData := Archetype{id: oldArct}.data()
	newData := Archetype{id: newArct}.data()

	if !add {
		// moveRow only copies columns shared by both tables, so the
		// dropped component's cell must be destroyed explicitly first
		// or its value would leak.
		row := oldData.table.entityToRow[entity.id]
		oldData.table.destroyCell(row, ct.id)
	}

	moveRow(newData.table, oldData.table, entity.id)

	ed = world.entities.data.get(entity.id)
	ed.archetype = newArct
	return oldArct, newArct
}

// callStartFunctions runs the start callback of every system in
// newSystems that is not also in oldSystems, for a single entity.
func callStartFunctions(newSystems, oldSystems []Id, entity Entity) {
	excluded := make(map[Id]struct{}, len(oldSystems))
	for _, id := range oldSystems {
		excluded[id] = struct{}{}
	}
	for _, sysId := range newSystems {
		if _, skip := excluded[sysId]; skip {
			continue
		}
		sys := System{id: sysId}
		if fn := sys.data().funcs.start; fn != nil {
			fn(ComponentGroup{entity: entity, system: sys})
		}
	}
}

// AddComponent gives entity a zero-valued component of type ct, moving
// it into the corresponding archetype and firing the start callback of
// every newly-matched system.
func AddComponent(entity Entity, ct ComponentType) {
	failIf(!entityExists(entity.id), newInvalidIdError(KindEntity, entity.id))
	failIf(!componentTypeExists(ct.id), newInvalidIdError(KindComponentType, ct.id))
	failIf(ContainsComponent(entity, ct), ComponentExistsError{Entity: entity, ComponentType: ct})

	logger().WithFields(map[string]any{"entity": entity.id, "componentType": ct.id}).Debug("adding component")

	oldArct, newArct := addOrRemoveComponent(entity, ct, true)

	oldData := Archetype{id: oldArct}.data()
	newData := Archetype{id: newArct}.data()
	callStartFunctions(newData.systems, oldData.systems, entity)
}

// AddComponentWithValue adds a component of type ct to entity, as
// AddComponent, then immediately overwrites its zero value with
// value.
func AddComponentWithValue[T any](entity Entity, ct ComponentType, value T) {
	AddComponent(entity, ct)
	*GetComponent[T](entity, ct) = value
}

// RemoveComponent drops entity's component of type ct, destroying its
// value and moving the entity to the corresponding archetype. Unlike
// AddComponent, no start callbacks fire on removal.
func RemoveComponent(entity Entity, ct ComponentType) {
	failIf(!entityExists(entity.id), newInvalidIdError(KindEntity, entity.id))
	failIf(!componentTypeExists(ct.id), newInvalidIdError(KindComponentType, ct.id))
	failIf(!ContainsComponent(entity, ct), ComponentNotFoundError{Entity: entity, ComponentType: ct})

	logger().WithFields(map[string]any{"entity": entity.id, "componentType": ct.id}).Debug("removing component")

	addOrRemoveComponent(entity, ct, false)
}

// GetComponent returns a pointer to entity's component of type ct,
// valid until the next structural mutation of entity's archetype
// table (an Add/RemoveComponent on any entity sharing that table, or
// a DestroyEntity).
func GetComponent[T any](entity Entity, ct ComponentType) *T {
	failIf(!entityExists(entity.id), newInvalidIdError(KindEntity, entity.id))
	failIf(!componentTypeExists(ct.id), newInvalidIdError(KindComponentType, ct.id))
	failIf(!ContainsComponent(entity, ct), ComponentNotFoundError{Entity: entity, ComponentType: ct})

	d := Archetype{id: world.entities.data.get(entity.id).archetype}.data()
	return d.table.get(entity.id, ct.id).(*T)
}

// ComponentGroup is passed to a system callback, pairing the entity
// being visited with the system visiting it so GetGroupComponent can
// enforce that only required component types are accessed.
type ComponentGroup struct {
	entity Entity
	system System
}

func (g ComponentGroup) Entity() Entity { return g.entity }
func (g ComponentGroup) System() System { return g.system }

// GetGroupComponent is GetComponent restricted to component types the
// calling system actually declared as a requirement, panicking
// otherwise. Systems should use this instead of GetComponent so a
// requirements typo fails loudly instead of silently working by
// accident.
func GetGroupComponent[T any](g ComponentGroup, ct ComponentType) *T {
	failIf(!g.system.data().requirements.Contains(ct.id), ComponentNotRequiredError{System: g.system, ComponentType: ct})
	return GetComponent[T](g.entity, ct)
}
