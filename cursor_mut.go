package tripod

import "fmt"

// CursorMut is a cursor which may change the tree it focuses on. It requires
// an exclusive permit.
type CursorMut[T any] struct {
	Cursor[T]
}

// mutable checks the permit for write access and returns the arena.
func (c *CursorMut[T]) mutable() *Arena[T] {
	a := c.tree.arena
	c.permit.check(a, true)
	return a
}

// SetCurrent replaces the value of the focus element and returns the old one.
// If the focus is a gap, nothing happens and false is returned.
func (c *CursorMut[T]) SetCurrent(value T) (T, bool) {
	a := c.mutable()
	if s := c.node(); s != nilSlot {
		old := a.nodes[s].value
		a.nodes[s].value = value
		return old, true
	}
	var zero T
	return zero, false
}

// InsertBefore inserts a new element immediately before the focus and moves
// the focus to it. If the focus is a gap, the element fills the gap.
func (c *CursorMut[T]) InsertBefore(value T) {
	c.insert(value, Left)
}

// InsertAfter inserts a new element immediately after the focus and moves the
// focus to it. If the focus is a gap, the element fills the gap.
func (c *CursorMut[T]) InsertAfter(value T) {
	c.insert(value, Right)
}

func (c *CursorMut[T]) insert(value T, side Side) {
	a := c.mutable()
	s, g := c.node(), c.gapNode()
	n := a.alloc(value)
	switch {
	case s != nilSlot:
		if ch := a.child(s, side); ch == nilSlot {
			a.setChild(s, side, n)
		} else {
			a.setChild(a.extreme(ch, side.Opposite()), side.Opposite(), n)
		}
	case g != nilSlot:
		assert(a.child(g, c.side) == nilSlot, "tripod: stale cursor gap")
		a.setChild(g, c.side, n)
	default:
		assert(c.tree.root == nilSlot, "tripod: stale cursor gap")
		c.tree.root = n
		c.setFocus(n)
		return
	}
	c.tree.root = a.fixUp(a.nodes[n].up)
	c.setFocus(n)
}

// RemoveCurrent removes the focus element from the tree and returns its value.
// The focus moves to the element which follows the removed one, or to the end
// gap. If the focus is a gap, nothing is removed and false is returned.
//
// A node with two children is replaced by its in-order neighbour from the
// larger child subtree; for children of equal size the successor is taken.
func (c *CursorMut[T]) RemoveCurrent() (T, bool) {
	a := c.mutable()
	x := c.node()
	if x == nilSlot {
		var zero T
		return zero, false
	}
	i := a.index(x)
	h := a.deploy(x)
	l, r, p := a.nodes[x].left, a.nodes[x].right, a.nodes[x].up
	var repl, from slot
	if l == nilSlot || r == nilSlot {
		if repl = l; repl == nilSlot {
			repl = r
		}
		a.replaceChild(p, x, repl)
		from = p
	} else {
		var y, yc slot
		if a.size(l) > a.size(r) {
			y = a.extreme(l, Right)
			yc = a.nodes[y].left
		} else {
			y = a.extreme(r, Left)
			yc = a.nodes[y].right
		}
		yp := a.nodes[y].up
		a.replaceChild(yp, y, yc)
		a.setChild(y, Left, a.nodes[x].left)
		a.setChild(y, Right, a.nodes[x].right)
		a.replaceChild(p, x, y)
		repl, from = y, yp
		if yp == x {
			from = y
		}
	}
	a.isolate(x)
	a.retract(h)
	value := a.free(x)
	if from == nilSlot {
		c.tree.root = repl
	} else {
		c.tree.root = a.fixUp(from)
	}
	c.seek(i)
	return value, true
}

// SplitBefore cuts the tree in two at the focus. All elements from the focus
// onward are moved to a new tree, which is returned. The cursor's tree keeps
// the elements before the focus and the focus moves to its end gap.
func (c *CursorMut[T]) SplitBefore() *Tree[T] {
	return c.splitAt(Right)
}

// SplitAfter cuts the tree in two after the focus. All elements after the
// focus are moved to a new tree, which is returned. If the focus is an
// element it stays in place; a gap focus moves to the end gap.
func (c *CursorMut[T]) SplitAfter() *Tree[T] {
	return c.splitAt(Left)
}

// splitAt splits at a node focus, sending the node to the side given by at,
// or at a gap focus.
func (c *CursorMut[T]) splitAt(at Side) *Tree[T] {
	a := c.mutable()
	rest := &Tree[T]{arena: a}
	var f slot
	if s := c.node(); s != nilSlot {
		f = s
	} else if g := c.gapNode(); g != nilSlot {
		f, at = g, c.side.Opposite()
	} else {
		return rest
	}
	before, after := a.split(f, at)
	c.tree.root, rest.root = before, after
	tracer().Debugf("tripod: split into %d | %d", a.size(before), a.size(after))
	if c.focus.s == nilSlot || at == Right {
		c.toEndGap()
	}
	return rest
}

// SpliceBefore moves all elements of other into the cursor's tree, immediately
// before the focus. other is left empty. The focus stays at the same element,
// or at the gap following the spliced elements.
//
// other has to belong to the same arena and must not be the cursor's tree.
func (c *CursorMut[T]) SpliceBefore(other *Tree[T]) error {
	return c.splice(other, Left)
}

// SpliceAfter moves all elements of other into the cursor's tree, immediately
// after the focus. other is left empty. The focus stays at the same element,
// or at the gap preceding the spliced elements.
func (c *CursorMut[T]) SpliceAfter(other *Tree[T]) error {
	return c.splice(other, Right)
}

func (c *CursorMut[T]) splice(other *Tree[T], side Side) error {
	a := c.mutable()
	if err := c.tree.compatible(other); err != nil {
		return err
	}
	if other.root == nilSlot {
		return nil
	}
	i := c.Index()
	s := c.node()
	at := i // elements before position at stay in front
	if s != nilSlot && side == Right {
		at++
	}
	var before, after slot
	if at < a.size(c.tree.root) {
		before, after = a.split(a.locate(c.tree.root, at), Right)
	} else {
		before = c.tree.root
	}
	m := a.size(other.root)
	c.tree.root = a.join2(a.join2(before, other.root), after)
	other.root = nilSlot
	tracer().Debugf("tripod: spliced %d elements at %d", m, at)
	if s == nilSlot {
		if side == Left {
			i += m
		}
		c.gapAt(i)
	}
	return nil
}

// gapAt moves the focus to the gap before position i.
func (c *CursorMut[T]) gapAt(i int) {
	a := c.tree.arena
	if i >= a.size(c.tree.root) {
		c.toEndGap()
		return
	}
	e := a.locate(c.tree.root, i)
	if l := a.nodes[e].left; l != nilSlot {
		c.setGap(a.extreme(l, Right), Right)
	} else {
		c.setGap(e, Left)
	}
}

// compatible checks if other may be combined with t.
func (t *Tree[T]) compatible(other *Tree[T]) error {
	if other == nil || other.arena != t.arena {
		var id any = "nil"
		if other != nil {
			id = other.arena.id
		}
		return fmt.Errorf("%w: %s vs %v", ErrForeignArena, t.arena.id, id)
	}
	if other == t {
		return ErrSelfSplice
	}
	return nil
}
