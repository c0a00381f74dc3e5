package tripod

import (
	"slices"
	"testing"
)

func TestBalancedBounds(t *testing.T) {
	cases := []struct {
		l, r int
		ok   bool
	}{
		{0, 0, true},
		{0, 1, true},
		{1, 0, true},
		{0, 2, false},
		{1, 3, true},
		{1, 4, false},
		{2, 5, true},
		{2, 7, false},
		{10, 24, true}, // weights 11 and 25 differ by more than a factor of 2
		{10, 26, false},
		{100, 245, true},
		{100, 250, false},
	}
	for _, c := range cases {
		if Balanced(c.l, c.r) != c.ok {
			t.Errorf("Balanced(%d, %d) = %v, expected %v", c.l, c.r, !c.ok, c.ok)
		}
		if Balanced(c.r, c.l) != c.ok {
			t.Errorf("Balanced is not symmetric for (%d, %d)", c.l, c.r)
		}
	}
}

func TestRotations(t *testing.T) {
	a, p := newIntArena(t)
	tree := inflate(a, "2", "1", "4", "-", "-", "3", "5")
	tree.root = a.rotateLeft(tree.root)
	if got := flatten(a, tree); !slices.Equal(got, []string{"4", "2", "5", "1", "3"}) {
		t.Fatalf("unexpected shape after left rotation: %v", got)
	}
	checkTree(t, p, tree, seq(1, 6))
	tree.root = a.rotateRight(tree.root)
	if got := flatten(a, tree); !slices.Equal(got, []string{"2", "1", "4", "-", "-", "3", "5"}) {
		t.Fatalf("unexpected shape after right rotation: %v", got)
	}
}

func TestBalanceSingleRotation(t *testing.T) {
	a, p := newIntArena(t)
	tree := inflate(a, "1", "-", "2", "-", "-", "-", "3")
	tree.root = a.balance(tree.root)
	if got := flatten(a, tree); !slices.Equal(got, []string{"2", "1", "3"}) {
		t.Fatalf("unexpected shape after balancing: %v", got)
	}
	checkTree(t, p, tree, seq(1, 4))
}

func TestBalanceDoubleRotation(t *testing.T) {
	a, p := newIntArena(t)
	tree := inflate(a, "1", "-", "3", "-", "-", "2")
	tree.root = a.balance(tree.root)
	if got := flatten(a, tree); !slices.Equal(got, []string{"2", "1", "3"}) {
		t.Fatalf("unexpected shape after balancing: %v", got)
	}
	checkTree(t, p, tree, seq(1, 4))
}

func TestJoinUnequalSizes(t *testing.T) {
	a, p := newIntArena(t)
	for _, sizes := range [][2]int{{0, 0}, {0, 10}, {10, 0}, {1, 100}, {100, 1}, {3, 500}, {500, 3}, {64, 64}} {
		l := a.FromSlice(p, seq(0, sizes[0]))
		r := a.FromSlice(p, seq(sizes[0]+1, sizes[0]+1+sizes[1]))
		k := a.alloc(sizes[0])
		joined := &Tree[int]{arena: a, root: a.join(l.root, k, r.root)}
		checkTree(t, p, joined, seq(0, sizes[0]+1+sizes[1]))
		joined.Clear(p)
	}
	if a.Live() != 0 {
		t.Fatalf("expected all nodes to be released, %d still live", a.Live())
	}
}

func TestJoin2AndSplit(t *testing.T) {
	a, p := newIntArena(t)
	for n := range 40 {
		for k := range n {
			tree := a.FromSlice(p, seq(0, n))
			before, after := a.split(a.locate(tree.root, k), Right)
			checkTree(t, p, &Tree[int]{arena: a, root: before}, seq(0, k))
			checkTree(t, p, &Tree[int]{arena: a, root: after}, seq(k, n))
			tree.root = a.join2(before, after)
			checkTree(t, p, tree, seq(0, n))
			before, after = a.split(a.locate(tree.root, k), Left)
			checkTree(t, p, &Tree[int]{arena: a, root: before}, seq(0, k+1))
			checkTree(t, p, &Tree[int]{arena: a, root: after}, seq(k+1, n))
			tree.root = a.join2(before, after)
			tree.Clear(p)
		}
	}
}

func TestMaxHeight(t *testing.T) {
	if MaxHeight(0) != 0 {
		t.Errorf("expected empty tree to have height 0, bound is %d", MaxHeight(0))
	}
	a, p := newIntArena(t)
	for _, n := range []int{1, 2, 3, 10, 100, 1000} {
		tree := a.FromSlice(p, seq(0, n))
		if h := tree.Height(p); h > MaxHeight(n) {
			t.Errorf("height %d of %d elements exceeds bound %d", h, n, MaxHeight(n))
		}
		tree.Clear(p)
	}
}
