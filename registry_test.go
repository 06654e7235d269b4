package ecscore

import "testing"

func TestRegistryInsertGet(t *testing.T) {
	r := newRegistry[string]()

	r.insert(Id(1), "one")
	r.insert(Id(2), "two")

	if got := r.get(Id(1)); got == nil || *got != "one" {
		t.Fatalf("get(1) = %v, want \"one\"", got)
	}
	if got := r.get(Id(2)); got == nil || *got != "two" {
		t.Fatalf("get(2) = %v, want \"two\"", got)
	}
	if got := r.get(Id(3)); got != nil {
		t.Fatalf("get(3) = %v, want nil", got)
	}
	if r.len() != 2 {
		t.Fatalf("len() = %d, want 2", r.len())
	}
}

func TestRegistryInsertDuplicatePanics(t *testing.T) {
	r := newRegistry[int]()
	r.insert(Id(1), 10)

	defer func() {
		if recover() == nil {
			t.Fatal("inserting a duplicate id should panic")
		}
	}()
	r.insert(Id(1), 20)
}

func TestRegistryRemoveMissingPanics(t *testing.T) {
	r := newRegistry[int]()

	defer func() {
		if recover() == nil {
			t.Fatal("removing an absent id should panic")
		}
	}()
	r.remove(Id(1))
}

func TestRegistrySwapPopRemove(t *testing.T) {
	r := newRegistry[string]()
	r.insert(Id(1), "one")
	r.insert(Id(2), "two")
	r.insert(Id(3), "three")

	r.remove(Id(1))

	if r.contains(Id(1)) {
		t.Fatal("removed id should no longer be present")
	}
	if r.len() != 2 {
		t.Fatalf("len() = %d, want 2", r.len())
	}
	if got := r.get(Id(2)); got == nil || *got != "two" {
		t.Fatalf("get(2) after removal = %v, want \"two\"", got)
	}
	if got := r.get(Id(3)); got == nil || *got != "three" {
		t.Fatalf("get(3) after removal = %v, want \"three\"", got)
	}
}

func TestRegistryAtEnumeration(t *testing.T) {
	r := newRegistry[int]()
	r.insert(Id(5), 50)
	r.insert(Id(6), 60)

	seen := map[Id]int{}
	for i := 0; i < r.len(); i++ {
		id, v := r.at(i)
		seen[id] = *v
	}

	if seen[Id(5)] != 50 || seen[Id(6)] != 60 {
		t.Fatalf("at() enumeration = %v, want {5:50, 6:60}", seen)
	}
}
