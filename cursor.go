package tripod

// Cursor is a read-only focus into a tree.
//
// The focus of a cursor is either an element of the tree or a gap between
// two elements. Gaps are addressed as the empty child slot of a node: the gap
// before the front element is the left slot of the front node, the gap after
// the back element is the right slot of the back node. An empty tree has a
// single gap at its root.
//
// A cursor is valid as long as its permit is not released. Navigation methods
// which cannot move leave the focus unchanged and report false.
type Cursor[T any] struct {
	tree   *Tree[T]
	permit *Permit[T]
	focus  handle // element, or zero for a gap
	gap    handle // node owning the gap, zero for the root gap
	side   Side   // child slot of gap
}

func newCursor[T any](t *Tree[T], p *Permit[T]) Cursor[T] {
	c := Cursor[T]{tree: t, permit: p}
	c.MoveToRoot()
	return c
}

// arena checks the cursor's permit and returns the arena.
func (c *Cursor[T]) arena() *Arena[T] {
	a := c.tree.arena
	c.permit.check(a, false)
	return a
}

// node returns the focus node, or nilSlot if the focus is a gap. It panics
// if the focus node has been recycled by another cursor.
func (c *Cursor[T]) node() slot {
	if c.focus.s == nilSlot {
		return nilSlot
	}
	assert(c.tree.arena.valid(c.focus), "tripod: stale cursor")
	return c.focus.s
}

func (c *Cursor[T]) setFocus(s slot) {
	c.focus = c.tree.arena.handleOf(s)
	c.gap = handle{}
	c.side = Left
}

func (c *Cursor[T]) setGap(s slot, side Side) {
	a := c.tree.arena
	assert(s == nilSlot || a.child(s, side) == nilSlot, "gap is occupied")
	c.focus = handle{}
	c.gap = a.handleOf(s)
	c.side = side
}

// gapNode returns the node owning the gap, or nilSlot for the root gap.
func (c *Cursor[T]) gapNode() slot {
	if c.gap.s == nilSlot {
		return nilSlot
	}
	assert(c.tree.arena.valid(c.gap), "tripod: stale cursor")
	return c.gap.s
}

// seek moves the focus to the element at global index i, or to the gap after
// the back element if i equals the tree's length.
func (c *Cursor[T]) seek(i int) {
	a := c.tree.arena
	root := c.tree.root
	if i >= a.size(root) {
		c.toEndGap()
		return
	}
	c.setFocus(a.locate(root, i))
}

func (c *Cursor[T]) toEndGap() {
	if root := c.tree.root; root != nilSlot {
		c.setGap(c.tree.arena.extreme(root, Right), Right)
	} else {
		c.setGap(nilSlot, Left)
	}
}

// IsGap reports whether the focus is between elements.
func (c *Cursor[T]) IsGap() bool {
	c.arena()
	return c.focus.s == nilSlot
}

// MoveToRoot moves the focus to the root element, or to the root gap of an
// empty tree.
func (c *Cursor[T]) MoveToRoot() {
	c.arena()
	if root := c.tree.root; root != nilSlot {
		c.setFocus(root)
	} else {
		c.setGap(nilSlot, Left)
	}
}

// MoveToFront moves the focus to the front element.
func (c *Cursor[T]) MoveToFront() {
	a := c.arena()
	if root := c.tree.root; root != nilSlot {
		c.setFocus(a.extreme(root, Left))
	} else {
		c.setGap(nilSlot, Left)
	}
}

// MoveToBack moves the focus to the back element.
func (c *Cursor[T]) MoveToBack() {
	a := c.arena()
	if root := c.tree.root; root != nilSlot {
		c.setFocus(a.extreme(root, Right))
	} else {
		c.setGap(nilSlot, Left)
	}
}

// MoveLeft moves the focus to the left child of the focus element.
func (c *Cursor[T]) MoveLeft() bool {
	return c.moveDown(Left)
}

// MoveRight moves the focus to the right child of the focus element.
func (c *Cursor[T]) MoveRight() bool {
	return c.moveDown(Right)
}

func (c *Cursor[T]) moveDown(side Side) bool {
	a := c.arena()
	s := c.node()
	if s == nilSlot {
		return false
	}
	ch := a.child(s, side)
	if ch == nilSlot {
		return false
	}
	c.setFocus(ch)
	return true
}

// MoveUp moves the focus to the parent of the focus element. If the focus is
// a gap, the node owning the gap becomes the focus.
func (c *Cursor[T]) MoveUp() bool {
	a := c.arena()
	s := c.node()
	if s == nilSlot {
		if g := c.gapNode(); g != nilSlot {
			c.setFocus(g)
			return true
		}
		return false
	}
	p := a.nodes[s].up
	if p == nilSlot {
		return false
	}
	c.setFocus(p)
	return true
}

// MoveNext moves the focus to the in-order successor. Moving past the back
// element leaves the focus at the end gap. MoveNext reports whether the new
// focus is an element.
func (c *Cursor[T]) MoveNext() bool {
	return c.step(Right)
}

// MovePrev moves the focus to the in-order predecessor. Moving past the front
// element leaves the focus at the front gap. MovePrev reports whether the new
// focus is an element.
func (c *Cursor[T]) MovePrev() bool {
	return c.step(Left)
}

func (c *Cursor[T]) step(dir Side) bool {
	a := c.arena()
	s := c.node()
	if s == nilSlot {
		g := c.gapNode()
		if g == nilSlot {
			return false
		}
		// a gap on the opposite side of its node is just before that node
		if c.side != dir {
			c.setFocus(g)
			return true
		}
		if n := a.next(g, dir); n != nilSlot {
			c.setFocus(n)
			return true
		}
		return false
	}
	if n := a.next(s, dir); n != nilSlot {
		c.setFocus(n)
		return true
	}
	c.setGap(s, dir)
	return false
}

// MoveTo moves the focus to position i, relative to the subtree rooted at the
// focus: it descends, comparing i to the size of the left subtree at every
// node. If i equals the size of the subtree, the focus moves to the gap after
// the subtree's last element. For indices out of range the focus does not
// change and MoveTo returns false.
//
// A gap spans an empty subtree, i.e., the only valid index for a gap is 0.
//
// To address positions of the whole tree, call MoveToRoot first.
func (c *Cursor[T]) MoveTo(i int) bool {
	a := c.arena()
	s := c.node()
	if s == nilSlot {
		return i == 0
	}
	n := a.size(s)
	switch {
	case i < 0 || i > n:
		return false
	case i == n:
		c.setGap(a.extreme(s, Right), Right)
	default:
		c.setFocus(a.locate(s, i))
	}
	return true
}

// Current returns the value of the focus element. If the focus is a gap,
// Current returns false.
func (c *Cursor[T]) Current() (T, bool) {
	a := c.arena()
	if s := c.node(); s != nilSlot {
		return a.nodes[s].value, true
	}
	var zero T
	return zero, false
}

// Index returns the global position of the focus. For a gap, this is the
// position of the element following the gap.
func (c *Cursor[T]) Index() int {
	a := c.arena()
	if s := c.node(); s != nilSlot {
		return a.index(s)
	}
	g := c.gapNode()
	if g == nilSlot {
		return 0
	}
	if c.side == Left {
		return a.index(g)
	}
	return a.index(g) + 1
}

// Range returns the half-open interval of global positions spanned by the
// subtree rooted at the focus. For a gap the interval is empty.
func (c *Cursor[T]) Range() (from, to int) {
	a := c.arena()
	i := c.Index()
	s := c.node()
	if s == nilSlot {
		return i, i
	}
	from = i - a.size(a.nodes[s].left)
	return from, from + a.size(s)
}

// PeekLeft returns the value of the left child of the focus element without
// moving the focus.
func (c *Cursor[T]) PeekLeft() (T, bool) {
	return c.peek(Left)
}

// PeekRight returns the value of the right child of the focus element without
// moving the focus.
func (c *Cursor[T]) PeekRight() (T, bool) {
	return c.peek(Right)
}

func (c *Cursor[T]) peek(side Side) (T, bool) {
	a := c.arena()
	if s := c.node(); s != nilSlot {
		if ch := a.child(s, side); ch != nilSlot {
			return a.nodes[ch].value, true
		}
	}
	var zero T
	return zero, false
}
