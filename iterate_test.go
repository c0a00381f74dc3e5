package tripod

import (
	"slices"
	"testing"
)

func TestIterator(t *testing.T) {
	a, p := newIntArena(t)
	tree := a.FromSlice(p, seq(0, 20))
	it := tree.Iter(p)
	var got []int
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	if !slices.Equal(got, seq(0, 20)) {
		t.Fatalf("expected iteration over 0…19, got %v", got)
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("expected exhausted iterator to stay exhausted")
	}
}

func TestIteratorRange(t *testing.T) {
	a, p := newIntArena(t)
	tree := a.FromSlice(p, seq(0, 20))
	cases := []struct {
		from, to int
		expected []int
	}{
		{3, 8, seq(3, 8)},
		{-5, 3, seq(0, 3)},
		{17, 40, seq(17, 20)},
		{5, 2, nil},
		{20, 20, nil},
	}
	for _, c := range cases {
		it := tree.IterRange(p, c.from, c.to)
		var got []int
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			got = append(got, v)
		}
		if !slices.Equal(got, c.expected) {
			t.Errorf("IterRange(%d, %d) yields %v, expected %v", c.from, c.to, got, c.expected)
		}
	}
}

func TestIteratorIndexingMatchesAt(t *testing.T) {
	a, p := newIntArena(t)
	tree := a.NewTree()
	for i := range 50 {
		if err := tree.InsertAt(p, i/2, i); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	for i, v := range tree.All(p) {
		if w, ok := tree.At(p, i); !ok || w != v {
			t.Fatalf("At(%d) = %d, iterator yields %d", i, w, v)
		}
	}
}

func TestRangeOverFunc(t *testing.T) {
	a, p := newIntArena(t)
	tree := a.FromSlice(p, seq(0, 10))
	var idx []int
	for i, v := range tree.Range(p, 4, 7) {
		if i != v {
			t.Fatalf("expected index %d to hold %d, holds %d", i, i, v)
		}
		idx = append(idx, i)
	}
	if !slices.Equal(idx, []int{4, 5, 6}) {
		t.Fatalf("unexpected indices %v", idx)
	}
	var vals []int
	for v := range tree.Values(p) {
		if v == 3 {
			break
		}
		vals = append(vals, v)
	}
	if !slices.Equal(vals, []int{0, 1, 2}) {
		t.Fatalf("expected early break after 3 values, got %v", vals)
	}
}

func TestIteratorUnderSharedPermits(t *testing.T) {
	a, p := newIntArena(t)
	tree := a.FromSlice(p, seq(0, 10))
	p.Release()
	r1, err := a.Shared()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer r1.Release()
	r2, err := a.Shared()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer r2.Release()
	it1, it2 := tree.Iter(r1), tree.Iter(r2)
	for range 10 {
		v1, ok1 := it1.Next()
		v2, ok2 := it2.Next()
		if !ok1 || !ok2 || v1 != v2 {
			t.Fatalf("expected concurrent readers to see the same sequence")
		}
	}
}
