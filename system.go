package ecscore

// System is a registered unit of per-entity behavior matched against
// archetypes by a required TypeSet. Like ComponentType, a System is
// never destroyed automatically — only an explicit DestroySystem
// removes it.
type System struct {
	id Id
}

func (s System) ID() Id { return s.id }

// SystemsEqual reports whether a and b are the same system.
func SystemsEqual(a, b System) bool { return a.id == b.id }

// UpdateFunc, DrawFunc and DestroyFunc are the three callback shapes a
// system may register. There is no separate start-callback type: a
// system's start callback shares UpdateFunc's signature and is fired
// internally by callStartFunctions in entity.go rather than through a
// host-supplied hook type of its own.
type UpdateFunc func(ComponentGroup)
type DrawFunc func(ComponentGroup)
type DestroyFunc func(ComponentGroup)

type systemFuncs struct {
	start   UpdateFunc
	update  UpdateFunc
	draw    DrawFunc
	destroy DestroyFunc
}

// systemData is the registry-held record for a System.
type systemData struct {
	requirements TypeSet
	funcs        systemFuncs
}

type systemRegistry struct {
	alloc *idAllocator
	data  *registry[systemData]
}

func newSystemRegistry() *systemRegistry {
	return &systemRegistry{
		alloc: newIdAllocator(KindSystem),
		data:  newRegistry[systemData](),
	}
}

func (s System) data() *systemData {
	d := world.systems.data.get(s.id)
	failIf(d == nil, newInvalidIdError(KindSystem, s.id))
	return d
}

// CreateSystem registers a system matching every archetype whose
// TypeSet is a superset of requirements. Its start callback (if any)
// fires immediately against every entity already in a matching
// archetype, in registry enumeration order of archetypes and
// descending row order within each.
func CreateSystem(requirements TypeSet, start, update UpdateFunc, draw DrawFunc, destroy DestroyFunc) System {
	requireInitialized()
	failIf(requirements.IsEmpty(), EmptyRequirementsError{})

	logger().WithField("op", "CreateSystem").Debug("creating system")

	id := world.systems.alloc.allocate()
	world.systems.data.insert(id, systemData{
		requirements: requirements.Copy(),
		funcs:        systemFuncs{start: start, update: update, draw: draw, destroy: destroy},
	})
	sys := System{id: id}

	addMatchingSystemsToArchetypesFor(sys)

	logger().WithField("system", id).Info("created system")
	return sys
}

// addMatchingSystemsToArchetype is called once, when arct is first
// created, to register every already-existing system whose
// requirements arct's TypeSet satisfies.
func addMatchingSystemsToArchetype(arct Id) {
	d := Archetype{id: arct}.data()
	for i := 0; i < world.systems.data.len(); i++ {
		sysId, sysD := world.systems.data.at(i)
		if sysD.requirements.IsSubset(d.typeSet) {
			d.systems = append(d.systems, sysId)
		}
	}
}

// addMatchingSystemsToArchetypesFor is the mirror operation, called
// once when sys is created, to register it on every already-existing
// matching archetype and fire its start callback over their entities.
func addMatchingSystemsToArchetypesFor(sys System) {
	sysD := sys.data()
	first := sysD.requirements.First()
	if first == InvalidId {
		return
	}

	ctData := ComponentType{id: first}.data()
	for _, arctId := range ctData.archetypes {
		d := Archetype{id: arctId}.data()
		if !sysD.requirements.IsSubset(d.typeSet) {
			continue
		}
		d.systems = append(d.systems, sys.id)
		callSystemFuncOnArchetype(sys, arctId, sysD.funcs.start)
	}
}

// DestroySystem unregisters sys from every archetype it matched and
// releases its id. It fires no destroy callbacks — destroy only runs
// on entity teardown, never on system teardown.
func DestroySystem(sys System) {
	if !world.systems.data.contains(sys.id) {
		return
	}

	sysD := sys.data()
	first := sysD.requirements.First()
	if first != InvalidId {
		ctData := ComponentType{id: first}.data()
		for _, arctId := range ctData.archetypes {
			d := Archetype{id: arctId}.data()
			for i, s := range d.systems {
				if s == sys.id {
					d.systems = append(d.systems[:i], d.systems[i+1:]...)
					break
				}
			}
		}
	}

	world.systems.data.remove(sys.id)
	world.systems.alloc.release(sys.id)
}

func callSystemFuncOnArchetype(sys System, arct Id, fn UpdateFunc) {
	if fn == nil {
		return
	}
	d := Archetype{id: arct}.data()
	t := d.table

	for e := t.first(); e != InvalidId; e = t.next(e) {
		fn(ComponentGroup{entity: Entity{id: e}, system: sys})
	}
}

func callSystemDrawOnArchetype(sys System, arct Id, fn DrawFunc) {
	callSystemFuncOnArchetype(sys, arct, UpdateFunc(fn))
}

// UpdateAll runs every system's update callback over every entity in
// every archetype it matches, in archetype-registry enumeration order.
func UpdateAll() {
	forEachArchetype(func(id Id, d *archetypeData) {
		for _, sysId := range d.systems {
			sys := System{id: sysId}
			callSystemFuncOnArchetype(sys, id, sys.data().funcs.update)
		}
	})
}

// DrawAll runs every system's draw callback the same way UpdateAll
// runs update callbacks.
func DrawAll() {
	forEachArchetype(func(id Id, d *archetypeData) {
		for _, sysId := range d.systems {
			sys := System{id: sysId}
			callSystemDrawOnArchetype(sys, id, sys.data().funcs.draw)
		}
	})
}
