package ecscore

import "iter"

// Entities returns a range-over-func sequence yielding every entity
// currently in arct, in the same descending-row order the table
// itself uses internally. Breaking out of a range early halts the
// underlying table cursor, flushing any pending removals deferred
// during the partial traversal — exactly as if a system's own
// dispatch loop had been interrupted.
func Entities(arct Archetype) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		t := arct.data().table
		for e := t.first(); e != InvalidId; e = t.next(e) {
			if !yield(Entity{id: e}) {
				t.halt()
				return
			}
		}
	}
}

// Archetypes returns a range-over-func sequence yielding every
// archetype that currently exists, in registry enumeration order —
// the same order UpdateAll and DrawAll visit them in.
func Archetypes() iter.Seq[Archetype] {
	return func(yield func(Archetype) bool) {
		for i := 0; i < world.archetypes.data.len(); i++ {
			id, _ := world.archetypes.data.at(i)
			if !yield(Archetype{id: id}) {
				return
			}
		}
	}
}
