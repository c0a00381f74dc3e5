package tripod

import (
	"errors"
	"slices"
	"strconv"
	"testing"
)

// newIntArena creates an arena for int elements together with an exclusive
// permit. The permit is released at the end of the test.
func newIntArena(t testing.TB) (*Arena[int], *Permit[int]) {
	t.Helper()
	a, err := NewArena(Config[int]{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err := a.Exclusive()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(p.Release)
	return a, p
}

func seq(from, to int) []int {
	s := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		s = append(s, i)
	}
	return s
}

// inflate builds a tree from a level-order listing of its values, with "-"
// marking absent nodes. The result is not rebalanced.
func inflate(a *Arena[int], levels ...string) *Tree[int] {
	tree := a.NewTree()
	slots := make([]slot, len(levels))
	for i, lv := range levels {
		if lv == "-" {
			continue
		}
		v, err := strconv.Atoi(lv)
		if err != nil {
			panic(err)
		}
		slots[i] = a.alloc(v)
		if i == 0 {
			tree.root = slots[i]
			continue
		}
		parent := slots[(i-1)/2]
		if parent == nilSlot {
			panic("inflate: node without parent")
		}
		side := Left
		if i%2 == 0 {
			side = Right
		}
		a.setChild(parent, side, slots[i])
	}
	for i := len(slots) - 1; i >= 0; i-- {
		if slots[i] != nilSlot {
			a.update(slots[i])
		}
	}
	return tree
}

// flatten lists the values of a tree in level-order, with "-" for absent
// nodes and trailing absent nodes trimmed.
func flatten(a *Arena[int], tree *Tree[int]) []string {
	var out []string
	level := []slot{tree.root}
	for slices.ContainsFunc(level, func(s slot) bool { return s != nilSlot }) {
		var next []slot
		for _, s := range level {
			if s == nilSlot {
				out = append(out, "-")
				next = append(next, nilSlot, nilSlot)
				continue
			}
			out = append(out, strconv.Itoa(a.nodes[s].value))
			next = append(next, a.nodes[s].left, a.nodes[s].right)
		}
		level = next
	}
	for len(out) > 0 && out[len(out)-1] == "-" {
		out = out[:len(out)-1]
	}
	return out
}

func checkTree(t *testing.T, p *Permit[int], tree *Tree[int], expected []int) {
	t.Helper()
	if err := tree.Check(p); err != nil {
		t.Fatalf("tree check failed: %v", err)
	}
	if got := tree.Slice(p); !slices.Equal(got, expected) {
		t.Fatalf("expected tree to hold %v, holds %v", expected, got)
	}
	if n := tree.Len(p); n != len(expected) {
		t.Fatalf("expected length %d, have %d", len(expected), n)
	}
}

func mustPanic(t *testing.T, what string, fn func()) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatalf("expected %s to panic, did not", what)
		}
	}()
	fn()
	return nil
}

func mustPermitPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	r := mustPanic(t, what, fn)
	var perr PermitError
	if err, ok := r.(error); !ok || !errors.As(err, &perr) {
		t.Fatalf("expected %s to panic with PermitError, got %v", what, r)
	}
}
