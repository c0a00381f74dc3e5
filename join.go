package tripod

// join concatenates the subtrees l and r with the singleton node k between
// them and returns the root of the result. All three have to be detached;
// l and r may be empty.
//
// If one side outweighs the other beyond the balance bound, join descends the
// heavier tree along its inner spine until it meets a subtree of comparable
// weight, links there and rebalances on the way back. The cost is proportional
// to the difference of the logarithms of the two weights.
func (a *Arena[T]) join(l, k, r slot) slot {
	assert(k != nilSlot && a.nodes[k].size == 1, "join: middle node must be a singleton")
	wl, wr := a.weight(l), a.weight(r)
	switch {
	case heavy(wl, wr):
		return a.joinRight(l, k, r)
	case heavy(wr, wl):
		return a.joinLeft(l, k, r)
	}
	return a.link(k, l, r)
}

func (a *Arena[T]) joinRight(l, k, r slot) slot {
	if !heavy(a.weight(l), a.weight(r)) {
		assert(!heavy(a.weight(r), a.weight(l)), "joinRight overshot")
		return a.link(k, l, r)
	}
	c := a.nodes[l].right
	a.nodes[l].right = nilSlot
	if c != nilSlot {
		a.nodes[c].up = nilSlot
	}
	t := a.joinRight(c, k, r)
	a.setChild(l, Right, t)
	a.update(l)
	return a.balance(l)
}

func (a *Arena[T]) joinLeft(l, k, r slot) slot {
	if !heavy(a.weight(r), a.weight(l)) {
		assert(!heavy(a.weight(l), a.weight(r)), "joinLeft overshot")
		return a.link(k, l, r)
	}
	c := a.nodes[r].left
	a.nodes[r].left = nilSlot
	if c != nilSlot {
		a.nodes[c].up = nilSlot
	}
	t := a.joinLeft(l, k, c)
	a.setChild(r, Left, t)
	a.update(r)
	return a.balance(r)
}

// link makes l and r the children of k.
func (a *Arena[T]) link(k, l, r slot) slot {
	a.setChild(k, Left, l)
	a.setChild(k, Right, r)
	a.update(k)
	return k
}

// join2 concatenates two detached subtrees without a middle node. The last
// node of l is taken out and used as the joint.
func (a *Arena[T]) join2(l, r slot) slot {
	if l == nilSlot {
		return r
	}
	if r == nilSlot {
		return l
	}
	l, m := a.popExtreme(l, Right)
	return a.join(l, m, r)
}

// popExtreme detaches the first (side == Left) or last (side == Right) node
// from the detached subtree at t. It returns the remaining subtree and the
// detached node.
func (a *Arena[T]) popExtreme(t slot, side Side) (rest, m slot) {
	m = a.extreme(t, side)
	p := a.nodes[m].up
	c := a.child(m, side.Opposite())
	a.replaceChild(p, m, c)
	a.isolate(m)
	if p == nilSlot {
		return c, m
	}
	return a.fixUp(p), m
}

// split cuts the tree containing f into the nodes before and after f. If at
// is Right, f goes to the after part, otherwise to the before part. Both
// parts are returned as detached roots.
//
// Starting with the children of f, split climbs towards the root and joins
// every ancestor, together with its off-path subtree, to the part it belongs
// to. No node is copied; only links are rewritten.
func (a *Arena[T]) split(f slot, at Side) (before, after slot) {
	h := a.deploy(f)
	side, p := Left, a.nodes[f].up
	if p != nilSlot {
		side = a.sideOf(f)
	}
	l, r := a.unlink(f)
	if at == Right {
		before, after = l, a.join(nilSlot, f, r)
	} else {
		before, after = a.join(l, f, nilSlot), r
	}
	for p != nilSlot {
		pp, pside := a.nodes[p].up, Left
		if pp != nilSlot {
			pside = a.sideOf(p)
		}
		// the on-path child of p has already been moved to one of the parts
		pl, pr := a.nodes[p].left, a.nodes[p].right
		a.isolate(p)
		if side == Left { // path came up from the left: p and its right part follow
			if pr != nilSlot {
				a.nodes[pr].up = nilSlot
			}
			after = a.join(after, p, pr)
		} else {
			if pl != nilSlot {
				a.nodes[pl].up = nilSlot
			}
			before = a.join(pl, p, before)
		}
		p, side = pp, pside
	}
	a.retract(h)
	return before, after
}
