package series

import (
	"reflect"
	"testing"

	"github.com/five82/pinmon/internal/category"
)

func TestRebuild_GroupsInFileOrder(t *testing.T) {
	s := Rebuild([]string{"5,3.2", "2,1.0", "5,4.1", "2,1.5\n"})

	if got := s.Samples(5); !reflect.DeepEqual(got, []float64{3.2, 4.1}) {
		t.Fatalf("Samples(5) = %v, want [3.2 4.1]", got)
	}
	if got := s.Samples(2); !reflect.DeepEqual(got, []float64{1.0, 1.5}) {
		t.Fatalf("Samples(2) = %v, want [1 1.5]", got)
	}
	if s.Total() != 4 {
		t.Fatalf("Total = %d, want 4", s.Total())
	}
	if !reflect.DeepEqual(s.Keys(), []category.Key{2, 5}) {
		t.Fatalf("Keys = %v, want [2 5]", s.Keys())
	}
}

func TestRebuild_SkipsMalformedLines(t *testing.T) {
	s := Rebuild([]string{"abc,xyz", "2,1.0", "", "   ", "7,"})

	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if got := s.Samples(2); !reflect.DeepEqual(got, []float64{1.0}) {
		t.Fatalf("Samples(2) = %v, want [1]", got)
	}
	if s.Rejected() != 2 {
		t.Fatalf("Rejected = %d, want 2 (blank lines are not counted)", s.Rejected())
	}
}

func TestRebuild_Empty(t *testing.T) {
	s := Rebuild(nil)
	if s.Len() != 0 || s.Total() != 0 {
		t.Fatalf("empty rebuild: Len=%d Total=%d, want 0/0", s.Len(), s.Total())
	}
	if got := s.Samples(10); got != nil {
		t.Fatalf("Samples on empty store = %v, want nil", got)
	}
}

func TestRebuild_Deterministic(t *testing.T) {
	lines := []string{"10,1", "3,2", "10,3", "junk", "99,4"}
	a := Rebuild(lines)
	b := Rebuild(lines)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("Rebuild not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestRebuild_AppendPrefixExtends(t *testing.T) {
	before := []string{"10,1", "3,2", "10,3"}
	after := append(append([]string{}, before...), "3,4", "10,5", "4,6")

	old := Rebuild(before)
	grown := Rebuild(after)

	for _, k := range old.Keys() {
		prev := old.Samples(k)
		next := grown.Samples(k)
		if len(next) < len(prev) {
			t.Fatalf("key %d shrank from %d to %d samples", k, len(prev), len(next))
		}
		if !reflect.DeepEqual(next[:len(prev)], prev) {
			t.Fatalf("key %d: %v is not a prefix of %v", k, prev, next)
		}
	}
}

func TestStore_Orphans(t *testing.T) {
	s := Rebuild([]string{"10,1", "42,2", "1,3", "0,4"})
	want := []category.Key{0, 1, 42}
	if got := s.Orphans(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Orphans = %v, want %v", got, want)
	}
	if got := s.Samples(42); !reflect.DeepEqual(got, []float64{2}) {
		t.Fatalf("orphan samples = %v, want [2]", got)
	}
}

func TestStore_NilSafe(t *testing.T) {
	var s *Store
	if s.Len() != 0 || s.Total() != 0 || s.Rejected() != 0 || s.Samples(1) != nil || s.Keys() != nil {
		t.Fatal("nil store accessors should return zero values")
	}
}
