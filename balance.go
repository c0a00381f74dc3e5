package tripod

import "math"

// The balance parameter α, as a fraction. Rotations are guaranteed to restore
// balance for α ≤ 1-1/√2 ≈ 0.2929.
const (
	alphaNum = 29
	alphaDen = 100
)

// weight of a subtree is its size plus one, so that empty subtrees weigh 1.
func (a *Arena[T]) weight(s slot) int {
	return a.nodes[s].size + 1
}

// like tells if two sibling subtrees of weights wa and wb are in balance.
func like(wa, wb int) bool {
	w := wa + wb
	return alphaDen*wa >= alphaNum*w && alphaDen*wb >= alphaNum*w
}

// heavy tells if a subtree of weight wa outweighs a sibling of weight wb
// beyond the balance bound.
func heavy(wa, wb int) bool {
	return alphaDen*wb < alphaNum*(wa+wb)
}

// Balanced reports whether a node with child subtrees of the given sizes
// satisfies the balance criterion of tripod trees. Each child's weight (size
// plus one) has to be at least 29% of the node's weight, so the weights of two
// siblings differ by a factor of at most 71/29 ≈ 2.45, not 2.
func Balanced(leftSize, rightSize int) bool {
	return like(leftSize+1, rightSize+1)
}

// MaxHeight returns the height which a tree holding n elements will never
// exceed: every step down a path shrinks the weight to at most 71% of the
// weight above, giving ⌊log(n+1)/log(100/71)⌋+1, about 2.02·log₂(n+1).
func MaxHeight(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Log(float64(n+1))/math.Log(float64(alphaDen)/float64(alphaDen-alphaNum))) + 1
}

// update recomputes the size of s from its children.
func (a *Arena[T]) update(s slot) {
	nd := &a.nodes[s]
	nd.size = 1 + a.nodes[nd.left].size + a.nodes[nd.right].size
}

// rotateLeft lifts the right child of x into the position of x and returns it.
// Only x and its former right child change size.
func (a *Arena[T]) rotateLeft(x slot) slot {
	y := a.nodes[x].right
	assert(y != nilSlot, "rotateLeft without right child")
	a.replaceChild(a.nodes[x].up, x, y)
	a.setChild(x, Right, a.nodes[y].left)
	a.setChild(y, Left, x)
	a.update(x)
	a.update(y)
	return y
}

// rotateRight lifts the left child of x into the position of x and returns it.
func (a *Arena[T]) rotateRight(x slot) slot {
	y := a.nodes[x].left
	assert(y != nilSlot, "rotateRight without left child")
	a.replaceChild(a.nodes[x].up, x, y)
	a.setChild(x, Left, a.nodes[y].right)
	a.setChild(y, Right, x)
	a.update(x)
	a.update(y)
	return y
}

// rotate performs a single or double rotation at x towards the lighter side
// and returns the node now in the position of x.
//
// A single rotation is chosen if it leaves both nodes involved in balance,
// otherwise a double rotation.
func (a *Arena[T]) rotate(x slot) slot {
	l, r := a.nodes[x].left, a.nodes[x].right
	wl, wr := a.weight(l), a.weight(r)
	if wr > wl {
		rl, rr := a.nodes[r].left, a.nodes[r].right
		if rl == nilSlot || like(wl, a.weight(rl)) && like(wl+a.weight(rl), a.weight(rr)) {
			return a.rotateLeft(x)
		}
		a.rotateRight(r)
		return a.rotateLeft(x)
	}
	ll, lr := a.nodes[l].left, a.nodes[l].right
	if lr == nilSlot || like(wr, a.weight(lr)) && like(wr+a.weight(lr), a.weight(ll)) {
		return a.rotateRight(x)
	}
	a.rotateLeft(l)
	return a.rotateRight(x)
}

// balance restores the balance criterion for the subtree at x, given that
// the subtrees of the children of x are balanced. It returns the node now in
// the position of x, linked to the former parent of x.
func (a *Arena[T]) balance(x slot) slot {
	if x == nilSlot || like(a.weight(a.nodes[x].left), a.weight(a.nodes[x].right)) {
		return x
	}
	y := a.rotate(x)
	// For single-element changes and joins one rotation suffices. Nodes demoted
	// by the rotation are checked anyway, which costs two comparisons each.
	a.balance(a.nodes[y].left)
	a.balance(a.nodes[y].right)
	return a.balance(y)
}

// fixUp walks from s up to the root, recomputing sizes and restoring balance
// on the way. It returns the root. s may not be nilSlot.
func (a *Arena[T]) fixUp(s slot) slot {
	assert(s != nilSlot, "fixUp from sentinel")
	for {
		a.update(s)
		s = a.balance(s)
		p := a.nodes[s].up
		if p == nilSlot {
			return s
		}
		s = p
	}
}
