package tripod

import (
	"sync"

	"github.com/google/uuid"
)

// Side denotes a child relation of a node.
type Side int8

// A node has children on two sides.
const (
	Left Side = iota
	Right
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	return 1 - s
}

func (s Side) String() string {
	if s == Left {
		return "Left"
	}
	return "Right"
}

// slot is an index into the node storage of an arena. Slot 0 is a sentinel
// standing for an absent node; it always has size 0.
type slot int32

const nilSlot slot = 0

type node[T any] struct {
	value           T
	size            int
	up, left, right slot
	gen             uint32 // bumped every time the slot is recycled
	spare           bool   // true while the node's spare handle is parked in the node
	live            bool
}

// handle is a movable reference to a node, valid as long as the node's slot
// has not been recycled.
type handle struct {
	s   slot
	gen uint32
}

// Arena holds the nodes for a family of trees. Trees which should be able to
// exchange elements by splicing, appending or splitting have to share an arena.
//
// An arena is not safe for concurrent use by itself. Clients coordinate access
// by acquiring permits, see Arena.Shared and Arena.Exclusive.
type Arena[T any] struct {
	id       uuid.UUID
	cfg      Config[T]
	nodes    []node[T]
	freeList []slot
	guard    sync.RWMutex
}

// NewArena creates an arena with a validated configuration.
func NewArena[T any](cfg Config[T]) (*Arena[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	a := &Arena[T]{
		id:    uuid.New(),
		cfg:   cfg,
		nodes: make([]node[T], 1, cfg.InitialCapacity+1),
	}
	tracer().Debugf("tripod: new arena %s", a.id)
	return a, nil
}

// ID returns the identity of an arena.
func (a *Arena[T]) ID() uuid.UUID {
	return a.id
}

// Config returns a copy of the effective arena configuration.
func (a *Arena[T]) Config() Config[T] {
	return a.cfg
}

// Live returns the number of nodes currently allocated, for all trees of the
// arena.
func (a *Arena[T]) Live() int {
	return len(a.nodes) - 1 - len(a.freeList)
}

// --- Allocation ------------------------------------------------------------

// alloc creates a detached singleton node holding value.
//
// alloc may grow the node storage: pointers to nodes obtained before a call to
// alloc are invalid afterwards.
func (a *Arena[T]) alloc(value T) slot {
	var s slot
	if n := len(a.freeList); n > 0 {
		s = a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
	} else {
		a.nodes = append(a.nodes, node[T]{})
		s = slot(len(a.nodes) - 1)
	}
	nd := &a.nodes[s]
	*nd = node[T]{value: value, size: 1, gen: nd.gen, spare: true, live: true}
	return s
}

// free recycles a node and returns its value. The node has to be fully
// detached and its spare handle has to be home.
func (a *Arena[T]) free(s slot) T {
	assert(s != nilSlot, "free of sentinel node")
	nd := &a.nodes[s]
	assert(nd.live, "double free of node")
	assert(nd.spare, "free of node with a deployed handle")
	assert(nd.up == nilSlot && nd.left == nilSlot && nd.right == nilSlot,
		"free of node which is still linked")
	value := nd.value
	gen := nd.gen + 1
	*nd = node[T]{gen: gen}
	a.freeList = append(a.freeList, s)
	return value
}

// deploy takes the spare handle out of a node. The handle has to be retracted
// before the node may be freed.
func (a *Arena[T]) deploy(s slot) handle {
	nd := &a.nodes[s]
	assert(nd.live, "deploy of dead node")
	assert(nd.spare, "double deploy of spare handle")
	nd.spare = false
	return handle{s: s, gen: nd.gen}
}

// retract parks a deployed handle in its node again.
func (a *Arena[T]) retract(h handle) {
	assert(a.valid(h), "retract of stale handle")
	nd := &a.nodes[h.s]
	assert(!nd.spare, "retract into occupied spare slot")
	nd.spare = true
}

// handleOf references a live node without deploying its spare.
func (a *Arena[T]) handleOf(s slot) handle {
	if s == nilSlot {
		return handle{}
	}
	return handle{s: s, gen: a.nodes[s].gen}
}

func (a *Arena[T]) valid(h handle) bool {
	if h.s <= nilSlot || int(h.s) >= len(a.nodes) {
		return false
	}
	nd := &a.nodes[h.s]
	return nd.live && nd.gen == h.gen
}

// --- Links -----------------------------------------------------------------

func (a *Arena[T]) size(s slot) int {
	return a.nodes[s].size
}

func (a *Arena[T]) child(s slot, side Side) slot {
	if side == Left {
		return a.nodes[s].left
	}
	return a.nodes[s].right
}

// setChild links c as the child of p on the given side. c may be nilSlot.
func (a *Arena[T]) setChild(p slot, side Side, c slot) {
	assert(p != nilSlot, "setChild on sentinel")
	if side == Left {
		a.nodes[p].left = c
	} else {
		a.nodes[p].right = c
	}
	if c != nilSlot {
		a.nodes[c].up = p
	}
}

// replaceChild puts c where old has been attached to p. If p is nilSlot, c
// becomes a root.
func (a *Arena[T]) replaceChild(p, old, c slot) {
	if p != nilSlot {
		if a.nodes[p].left == old {
			a.nodes[p].left = c
		} else {
			assert(a.nodes[p].right == old, "replaceChild: node is not a child of its parent")
			a.nodes[p].right = c
		}
	}
	if c != nilSlot {
		a.nodes[c].up = p
	}
}

// sideOf tells on which side of its parent s is attached, by identity.
func (a *Arena[T]) sideOf(s slot) Side {
	p := a.nodes[s].up
	assert(p != nilSlot, "sideOf called for root node")
	if a.nodes[p].left == s {
		return Left
	}
	assert(a.nodes[p].right == s, "node is not a child of its parent")
	return Right
}

// unlink cuts all links of s, including the back-links of its children, and
// leaves s as a singleton. The parent's child slot is not touched.
func (a *Arena[T]) unlink(s slot) (l, r slot) {
	nd := &a.nodes[s]
	l, r = nd.left, nd.right
	nd.left, nd.right, nd.up = nilSlot, nilSlot, nilSlot
	nd.size = 1
	if l != nilSlot {
		a.nodes[l].up = nilSlot
	}
	if r != nilSlot {
		a.nodes[r].up = nilSlot
	}
	return l, r
}

// isolate resets the links of s, leaving it as a singleton. Neither the
// parent nor the children of s are touched.
func (a *Arena[T]) isolate(s slot) {
	nd := &a.nodes[s]
	nd.left, nd.right, nd.up = nilSlot, nilSlot, nilSlot
	nd.size = 1
}

// extreme descends from s to its leftmost or rightmost descendant.
func (a *Arena[T]) extreme(s slot, side Side) slot {
	for c := a.child(s, side); c != nilSlot; c = a.child(s, side) {
		s = c
	}
	return s
}

// next finds the in-order neighbour of s in direction side, or nilSlot.
func (a *Arena[T]) next(s slot, side Side) slot {
	if c := a.child(s, side); c != nilSlot {
		return a.extreme(c, side.Opposite())
	}
	for p := a.nodes[s].up; p != nilSlot; p = a.nodes[s].up {
		if a.child(p, side.Opposite()) == s {
			return p
		}
		s = p
	}
	return nilSlot
}

// index returns the position of s within the tree it belongs to.
func (a *Arena[T]) index(s slot) int {
	i := a.size(a.nodes[s].left)
	for p := a.nodes[s].up; p != nilSlot; p = a.nodes[s].up {
		if a.nodes[p].right == s {
			i += a.size(a.nodes[p].left) + 1
		}
		s = p
	}
	return i
}

// locate descends from s to the node at position i relative to the subtree
// of s. i has to be less than the subtree's size.
func (a *Arena[T]) locate(s slot, i int) slot {
	assert(i >= 0 && i < a.size(s), "locate: index out of subtree range")
	for {
		ls := a.size(a.nodes[s].left)
		switch {
		case i < ls:
			s = a.nodes[s].left
		case i == ls:
			return s
		default:
			i -= ls + 1
			s = a.nodes[s].right
		}
	}
}

func (a *Arena[T]) height(s slot) int {
	if s == nilSlot {
		return 0
	}
	return 1 + max(a.height(a.nodes[s].left), a.height(a.nodes[s].right))
}
