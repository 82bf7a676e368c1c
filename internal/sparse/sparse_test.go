package sparse

import "testing"

func TestSparseSet_Basic(t *testing.T) {
	s := NewSparseSet(100)

	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	s.Insert(5)
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	s.Insert(5) // duplicate, no-op
	if s.Size() != 1 {
		t.Errorf("size should be 1, got %d", s.Size())
	}

	s.Insert(10)
	s.Insert(3)
	s.Insert(7)
	if s.Size() != 4 {
		t.Errorf("size should be 4, got %d", s.Size())
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Error("set should be empty after Clear")
	}
	if s.Contains(10) {
		t.Error("cleared set should not contain previously-inserted values")
	}
}

func TestSparseSet_Remove(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	s.Remove(2)
	if s.Contains(2) {
		t.Error("removed value should not be contained")
	}
	if s.Size() != 2 {
		t.Errorf("size should be 2 after remove, got %d", s.Size())
	}
	if !s.Contains(1) || !s.Contains(3) {
		t.Error("remaining values should still be contained")
	}

	s.Remove(99) // no-op, not present
	if s.Size() != 2 {
		t.Error("removing an absent value must not change size")
	}
}

func TestSparseSet_ContainsOutOfRange(t *testing.T) {
	s := NewSparseSet(4)
	if s.Contains(100) {
		t.Error("value beyond capacity must never be reported as contained")
	}
}

func TestSparseSet_ValuesAndIter(t *testing.T) {
	s := NewSparseSet(8)
	want := map[uint32]bool{1: true, 4: true, 6: true}
	for v := range want {
		s.Insert(v)
	}

	got := map[uint32]bool{}
	for _, v := range s.Values() {
		got[v] = true
	}
	if len(got) != len(want) {
		t.Fatalf("Values() returned %d elements, want %d", len(got), len(want))
	}

	iterGot := map[uint32]bool{}
	s.Iter(func(v uint32) { iterGot[v] = true })
	for v := range want {
		if !iterGot[v] {
			t.Errorf("Iter did not visit %d", v)
		}
	}
}
