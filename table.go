package ecscore

const invalidRow = -1

// ComponentTable is the column-store for one archetype's entities:
// one column per component type in the archetype's TypeSet, an
// entity↔row bimap, a per-row tombstone bit used only during
// iteration, and two pending sets used to defer structural mutation
// of a table that is currently being iterated.
type ComponentTable struct {
	archetype Id
	typeSet   TypeSet

	columns     map[Id]column
	columnOrder []Id // ascending component-type id order

	capacity int
	rowCount int

	entityToRow []int // indexed by entity id; invalidRow when absent
	rowToEntity []Id
	rowSkipped  []bool

	pendingRemove  []Id
	pendingDestroy []Id

	iterCursor Id
}

func newComponentTable(archetype Id, ts TypeSet) *ComponentTable {
	t := &ComponentTable{
		archetype: archetype,
		typeSet:   ts,
		columns:   make(map[Id]column),
	}
	for id := ts.First(); id != InvalidId; id = ts.Next(id) {
		ct := ComponentType{id: id}
		t.columns[id] = ct.data().newColumn()
		t.columnOrder = append(t.columnOrder, id)
	}
	return t
}

// Length reports the table's live row count.
func (t *ComponentTable) Length() int { return t.rowCount }

// Contains reports whether entity currently has a row in t.
func (t *ComponentTable) Contains(entity Id) bool {
	return int(entity) < len(t.entityToRow) && t.entityToRow[entity] != invalidRow
}

func (t *ComponentTable) ensureEntityCapacity(size int) {
	for len(t.entityToRow) < size {
		t.entityToRow = append(t.entityToRow, invalidRow)
	}
}

func (t *ComponentTable) growTo(capacity int) {
	for _, id := range t.columnOrder {
		t.columns[id].grow(capacity)
	}
	for len(t.rowToEntity) < capacity {
		t.rowToEntity = append(t.rowToEntity, InvalidId)
	}
	for len(t.rowSkipped) < capacity {
		t.rowSkipped = append(t.rowSkipped, false)
	}
	t.capacity = capacity
}

func (t *ComponentTable) shrinkTo(capacity int) {
	for _, id := range t.columnOrder {
		t.columns[id].shrink(capacity)
	}
	if capacity < len(t.rowToEntity) {
		t.rowToEntity = t.rowToEntity[:capacity:capacity]
	}
	if capacity < len(t.rowSkipped) {
		t.rowSkipped = t.rowSkipped[:capacity:capacity]
	}
	t.capacity = capacity
}

// addRow appends entity at rowCount, growing geometrically (x2) when
// full, and extends entityToRow lazily so entity < len(entityToRow).
func (t *ComponentTable) addRow(entity Id) int {
	if t.rowCount == t.capacity {
		newCap := t.capacity * 2
		if newCap == 0 {
			newCap = 1
		}
		t.growTo(newCap)
	}
	row := t.rowCount
	t.rowCount++
	t.rowToEntity[row] = entity
	t.rowSkipped[row] = false

	t.ensureEntityCapacity(int(entity) + 1)
	t.entityToRow[entity] = row

	if hook := Config.tableEvents.OnRowAdded; hook != nil {
		hook(t.archetype, entity)
	}
	return row
}

// removeRow removes entity from t. If a traversal of t is in progress,
// the removal is deferred into the appropriate pending set and the
// row is tagged skipped; otherwise it happens immediately.
func (t *ComponentTable) removeRow(entity Id, destroy bool) {
	if t.iterCursor != InvalidId {
		row := t.entityToRow[entity]
		t.rowSkipped[row] = true
		if destroy {
			t.pendingDestroy = append(t.pendingDestroy, entity)
		} else {
			t.pendingRemove = append(t.pendingRemove, entity)
		}
		return
	}
	t.removeRowNow(entity, destroy)
}

func (t *ComponentTable) destroyCell(row int, ctId Id) {
	col := t.columns[ctId]
	ct := ComponentType{id: ctId}
	ct.data().destructor(col.addr(row))
	col.zeroRow(row)
}

func (t *ComponentTable) removeRowNow(entity Id, destroy bool) {
	row := t.entityToRow[entity]

	if destroy {
		for _, ctId := range t.columnOrder {
			t.destroyCell(row, ctId)
		}
	}

	last := t.rowCount - 1
	if row != last {
		lastEntity := t.rowToEntity[last]
		for _, ctId := range t.columnOrder {
			col := t.columns[ctId]
			col.copyRow(col, last, row)
		}
		t.entityToRow[lastEntity] = row
		t.rowToEntity[row] = lastEntity
		t.rowSkipped[row] = t.rowSkipped[last]
	}

	t.entityToRow[entity] = invalidRow
	t.rowCount--

	if t.rowCount*2 <= t.capacity && t.capacity > 1 {
		newCap := t.capacity
		for newCap > 1 && t.rowCount*2 <= newCap {
			newCap /= 2
		}
		t.shrinkTo(newCap)
	}

	if hook := Config.tableEvents.OnRowRemoved; hook != nil {
		hook(t.archetype, entity)
	}
}

// get returns a pointer (boxed as any) to the cell (entity, ctId).
// Undefined if entity is not in t or ctId is not in t's TypeSet —
// callers (entity.go) check both first.
func (t *ComponentTable) get(entity Id, ctId Id) any {
	row := t.entityToRow[entity]
	return t.columns[ctId].addr(row)
}

// moveRow moves entity from src to dest, copying every component type
// present in both tables. Types only in dest are left zero-valued;
// types only in src are NOT destroyed here — callers that need the
// dropped type's value destroyed must do so before calling moveRow
// (see RemoveComponent).
func moveRow(dest, src *ComponentTable, entity Id) {
	destRow := dest.addRow(entity)
	srcRow := src.entityToRow[entity]

	for _, ctId := range dest.columnOrder {
		if srcCol, ok := src.columns[ctId]; ok {
			srcCol.copyRow(dest.columns[ctId], srcRow, destRow)
		}
	}

	src.removeRow(entity, false)

	if hook := Config.tableEvents.OnRowMoved; hook != nil {
		hook(src.archetype, dest.archetype, entity)
	}
}

// refresh executes the enqueued removals/destructions and clears every
// row's skip bit. Called when iteration is halted or exhausted; it is
// illegal to call while iterCursor is still valid.
func (t *ComponentTable) refresh() {
	if len(t.pendingRemove) == 0 && len(t.pendingDestroy) == 0 {
		return
	}
	for _, e := range t.pendingRemove {
		t.removeRowNow(e, false)
	}
	t.pendingRemove = t.pendingRemove[:0]

	for _, e := range t.pendingDestroy {
		t.removeRowNow(e, true)
	}
	t.pendingDestroy = t.pendingDestroy[:0]

	for i := 0; i < t.rowCount; i++ {
		t.rowSkipped[i] = false
	}
}

// first begins a descending-row traversal of t, the last row yielded
// first, because removal during iteration swaps the tail into the
// hole — descending order guarantees the hole is always behind the
// cursor.
func (t *ComponentTable) first() Id {
	failIf(t.iterCursor != InvalidId, TableIteratingError{Archetype: t.archetype})

	if t.rowCount == 0 {
		return InvalidId
	}
	row := t.rowCount - 1
	for t.rowSkipped[row] {
		if row == 0 {
			return InvalidId
		}
		row--
	}
	t.iterCursor = t.rowToEntity[row]
	return t.iterCursor
}

// next advances the traversal started by first. curr must be the
// entity most recently yielded by first/next on this table.
func (t *ComponentTable) next(curr Id) Id {
	failIf(t.iterCursor != curr, TableIteratingError{Archetype: t.archetype})

	row := t.entityToRow[curr]
	if row == 0 {
		t.halt()
		return InvalidId
	}

	newRow := row - 1
	for t.rowSkipped[newRow] {
		if newRow == 0 {
			t.halt()
			return InvalidId
		}
		newRow--
	}
	t.iterCursor = t.rowToEntity[newRow]
	return t.iterCursor
}

// halt aborts an in-progress traversal, performing the same deferred
// refresh as natural exhaustion.
func (t *ComponentTable) halt() {
	t.iterCursor = InvalidId
	t.refresh()
}
