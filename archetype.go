package ecscore

// Archetype identifies a distinct set of component types. Entities
// sharing an archetype are stored in the same ComponentTable.
// Archetypes are created lazily, the first time some TypeSet is
// needed, and are never destroyed.
type Archetype struct {
	id Id
}

func (a Archetype) ID() Id { return a.id }

// archetypeData is the registry-held record for an Archetype: a deep
// copy of the defining TypeSet, the ComponentTable storing its
// entities, an edge cache for fast add/remove-component transitions,
// and the list of systems whose requirements this archetype
// satisfies.
type archetypeData struct {
	typeSet TypeSet
	table   *ComponentTable
	edges   map[Id]Id // toggled component-type id -> neighboring archetype id
	systems []Id
}

type archetypeRegistry struct {
	alloc *idAllocator
	data  *registry[archetypeData]
}

func newArchetypeRegistry() *archetypeRegistry {
	return &archetypeRegistry{
		alloc: newIdAllocator(KindArchetype),
		data:  newRegistry[archetypeData](),
	}
}

func (a Archetype) data() *archetypeData {
	d := world.archetypes.data.get(a.id)
	failIf(d == nil, newInvalidIdError(KindArchetype, a.id))
	return d
}

// findArchetype narrows the search to archetypes containing the
// TypeSet's first member, rather than scanning every archetype: a
// component type's own archetypes list is almost always far shorter
// than the full archetype registry. If ts is empty it linearly scans
// for the one archetype with no components, since there is no
// component type to narrow by.
func findArchetype(ts TypeSet) (Id, bool) {
	first := ts.First()
	if first == InvalidId {
		for i := 0; i < world.archetypes.data.len(); i++ {
			id, d := world.archetypes.data.at(i)
			if d.typeSet.IsEmpty() {
				return id, true
			}
		}
		return InvalidId, false
	}

	ctData := ComponentType{id: first}.data()
	for _, arctId := range ctData.archetypes {
		d := Archetype{id: arctId}.data()
		if d.typeSet.Equals(ts) {
			return arctId, true
		}
	}
	return InvalidId, false
}

// findOrCreateArchetype returns the archetype whose defining TypeSet
// equals ts, creating it (and registering it against every system it
// now matches) if none exists yet.
func findOrCreateArchetype(ts TypeSet) Id {
	if id, ok := findArchetype(ts); ok {
		return id
	}

	logger().WithField("op", "findOrCreateArchetype").Debug("creating archetype")

	id := world.archetypes.alloc.allocate()
	data := archetypeData{
		typeSet: ts.Copy(),
		edges:   make(map[Id]Id),
	}
	data.table = newComponentTable(id, data.typeSet)
	world.archetypes.data.insert(id, data)

	for t := ts.First(); t != InvalidId; t = ts.Next(t) {
		addArchetypeToComponentType(ComponentType{id: t}, id)
	}

	addMatchingSystemsToArchetype(id)

	logger().WithField("archetype", id).Info("created archetype")
	return id
}

// archetypeEdge returns the archetype reached by toggling ct's
// membership in arct's TypeSet (adding it if absent, removing it if
// present), creating that neighbor the first time it's needed and
// caching it on arct's edge map for subsequent lookups.
func archetypeEdge(arct Id, ct Id) Id {
	d := Archetype{id: arct}.data()
	if neighbor, ok := d.edges[ct]; ok {
		return neighbor
	}

	var toggled TypeSet
	if d.typeSet.Contains(ct) {
		toggled = d.typeSet.Remove(ct)
	} else {
		toggled = d.typeSet.Add(ct)
	}

	neighbor := findOrCreateArchetype(toggled)

	// findOrCreateArchetype may have reallocated the archetype
	// registry's backing storage, invalidating d.
	d = Archetype{id: arct}.data()
	d.edges[ct] = neighbor
	return neighbor
}

// ArchetypesEqual reports whether a and b are the same archetype,
// for symmetry with EntitiesEqual and SystemsEqual.
func ArchetypesEqual(a, b Archetype) bool { return a.id == b.id }

func forEachArchetype(fn func(id Id, d *archetypeData)) {
	for i := 0; i < world.archetypes.data.len(); i++ {
		id, d := world.archetypes.data.at(i)
		fn(id, d)
	}
}
