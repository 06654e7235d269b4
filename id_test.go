package ecscore

import "testing"

func TestIdAllocatorAllocate(t *testing.T) {
	a := newIdAllocator(KindEntity)

	first := a.allocate()
	second := a.allocate()
	third := a.allocate()

	if first == InvalidId || second == InvalidId || third == InvalidId {
		t.Fatalf("allocate returned InvalidId: %v %v %v", first, second, third)
	}
	if first == second || second == third || first == third {
		t.Fatalf("allocate returned duplicate ids: %v %v %v", first, second, third)
	}
}

func TestIdAllocatorReleaseAndReuse(t *testing.T) {
	a := newIdAllocator(KindEntity)

	first := a.allocate()
	second := a.allocate()

	a.release(first)
	if a.inUse(first) {
		t.Fatalf("id %v still reported in use after release", first)
	}

	reused := a.allocate()
	if reused != first {
		t.Fatalf("allocate() = %v, want reused id %v", reused, first)
	}
	if !a.inUse(second) {
		t.Fatalf("unrelated id %v should still be in use", second)
	}
}

func TestIdAllocatorReleaseUnusedPanics(t *testing.T) {
	a := newIdAllocator(KindEntity)

	defer func() {
		if recover() == nil {
			t.Fatal("release of an id never allocated should panic")
		}
	}()
	a.release(Id(42))
}

func TestIdAllocatorInUse(t *testing.T) {
	a := newIdAllocator(KindEntity)

	if a.inUse(InvalidId) {
		t.Fatal("InvalidId must never be in use")
	}
	if a.inUse(Id(1)) {
		t.Fatal("unissued id must not be in use")
	}

	id := a.allocate()
	if !a.inUse(id) {
		t.Fatalf("id %v should be in use right after allocate", id)
	}
}
