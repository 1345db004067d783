package history

import (
	"fmt"
	"slices"
	"testing"
)

func appendAll(s *Store, lines ...string) {
	for _, l := range lines {
		s.Append([]rune(l))
	}
}

func TestAppendBelowCapacity(t *testing.T) {
	s := New(4)
	appendAll(s, "a", "b", "c")
	if s.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", s.Len())
	}
	if got := s.Entries(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected entries %v", got)
	}
}

func TestAppendEvictsOldestHalf(t *testing.T) {
	s := New(4)
	appendAll(s, "a", "b", "c", "d", "e")
	if s.Len() != 3 {
		t.Fatalf("expected 3 entries after eviction, got %d", s.Len())
	}
	if got := s.Entries(); !slices.Equal(got, []string{"c", "d", "e"}) {
		t.Fatalf("expected [c d e], got %v", got)
	}
}

func TestEvictionKeepsMostRecentHalfInOrder(t *testing.T) {
	const capacity = 10
	s := New(capacity)
	for i := 0; i <= capacity; i++ {
		s.Append([]rune(fmt.Sprint(i)))
	}
	if s.Len() != capacity/2+1 {
		t.Fatalf("expected %d entries, got %d", capacity/2+1, s.Len())
	}
	want := []string{"5", "6", "7", "8", "9", "10"}
	if got := s.Entries(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestOddCapacityKeepsFloorHalf(t *testing.T) {
	s := New(5)
	appendAll(s, "a", "b", "c", "d", "e", "f")
	if got := s.Entries(); !slices.Equal(got, []string{"d", "e", "f"}) {
		t.Fatalf("expected [d e f], got %v", got)
	}
}

func TestCapacityOneReplacesEntry(t *testing.T) {
	s := New(1)
	appendAll(s, "a", "b")
	if got := s.Entries(); !slices.Equal(got, []string{"b"}) {
		t.Fatalf("expected [b], got %v", got)
	}
}

func TestRepeatedEvictionStaysBounded(t *testing.T) {
	s := New(8)
	for i := 0; i < 100; i++ {
		s.Append([]rune(fmt.Sprint(i)))
		if s.Len() > s.Capacity() {
			t.Fatalf("store grew past capacity: %d", s.Len())
		}
	}
	if last := s.At(s.Len() - 1); last != "99" {
		t.Fatalf("expected newest entry last, got %q", last)
	}
}

func TestAppendStoresHandedOverSlice(t *testing.T) {
	s := New(2)
	entry := []rune("run")
	s.Append(entry)
	if &s.entries[0][0] != &entry[0] {
		t.Fatalf("store copied the entry instead of keeping it")
	}
}

func TestReset(t *testing.T) {
	s := New(4)
	appendAll(s, "a", "b")
	s.Reset()
	if s.Len() != 0 || s.Capacity() != 4 {
		t.Fatalf("unexpected state after reset: len=%d cap=%d", s.Len(), s.Capacity())
	}
}
