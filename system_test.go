package ecscore

import "testing"

func TestCreateSystemEmptyRequirementsPanics(t *testing.T) {
	resetWorldForTest()

	defer func() {
		if recover() == nil {
			t.Fatal("CreateSystem with empty requirements should panic")
		}
	}()
	CreateSystem(NewTypeSet(), nil, nil, nil, nil)
}

func TestCreateSystemFiresStartForExistingEntities(t *testing.T) {
	resetWorldForTest()
	position := CreateComponentType[Position](nil)

	e := CreateEntity()
	AddComponent(e, position)

	var started []Entity
	CreateSystem(NewTypeSet().Add(position.id), func(g ComponentGroup) {
		started = append(started, g.Entity())
	}, nil, nil, nil)

	if len(started) != 1 || started[0] != e {
		t.Fatalf("start callback = %v, want [%v]", started, e)
	}
}

func TestUpdateAllRunsMatchingSystemsOnly(t *testing.T) {
	resetWorldForTest()
	position := CreateComponentType[Position](nil)
	velocity := CreateComponentType[Velocity](nil)

	withPos := CreateEntity()
	AddComponent(withPos, position)

	withBoth := CreateEntity()
	AddComponent(withBoth, position)
	AddComponent(withBoth, velocity)

	var updated []Entity
	CreateSystem(NewTypeSet().Add(position.id).Add(velocity.id), nil, func(g ComponentGroup) {
		updated = append(updated, g.Entity())
	}, nil, nil)

	UpdateAll()

	if len(updated) != 1 || updated[0] != withBoth {
		t.Fatalf("updated = %v, want only the entity with both components", updated)
	}
}

func TestDestroySystemStopsDispatch(t *testing.T) {
	resetWorldForTest()
	position := CreateComponentType[Position](nil)
	e := CreateEntity()
	AddComponent(e, position)

	calls := 0
	sys := CreateSystem(NewTypeSet().Add(position.id), nil, func(ComponentGroup) {
		calls++
	}, nil, nil)

	UpdateAll()
	DestroySystem(sys)
	UpdateAll()

	if calls != 1 {
		t.Fatalf("calls = %d, want 1 (no dispatch after DestroySystem)", calls)
	}
}

func TestDestroySystemFiresNoDestroyCallback(t *testing.T) {
	resetWorldForTest()
	position := CreateComponentType[Position](nil)
	e := CreateEntity()
	AddComponent(e, position)

	destroyCalls := 0
	sys := CreateSystem(NewTypeSet().Add(position.id), nil, nil, nil, func(ComponentGroup) {
		destroyCalls++
	})

	DestroySystem(sys)

	if destroyCalls != 0 {
		t.Fatalf("destroyCalls = %d, want 0 (DestroySystem must not fire destroy callbacks)", destroyCalls)
	}
}

func TestSystemsEqual(t *testing.T) {
	a := System{id: Id(1)}
	b := System{id: Id(1)}
	c := System{id: Id(2)}

	if !SystemsEqual(a, b) {
		t.Fatal("systems with the same id should be equal")
	}
	if SystemsEqual(a, c) {
		t.Fatal("systems with different ids should not be equal")
	}
}
