/*
Package tripod implements an indexed, weight-balanced binary tree for
sequences.

Tripod trees do not order their elements by keys. The order of elements is
purely positional and results from insertions, splits and splices. Every node
carries the size of the subtree rooted at it, which lets clients address
elements by index and lets the tree be cut and re-joined at arbitrary
positions in logarithmic time.

	arena, _ := tripod.NewArena(tripod.Config[string]{})
	p, _ := arena.Exclusive()
	defer p.Release()
	tree := arena.NewTree()
	tree.PushBack(p, "world")
	tree.PushFront(p, "hello")

Nodes

Nodes of all trees created from one Arena live in a dense slice owned by the
arena. They reference each other (parent, left and right child) by slot index.
Slots are recycled through a free list; every recycling bumps a generation
counter for the slot, which lets cursors detect stale references.

Balance

Trees are kept in balance by the BB[α] weight criterion with α = 0.29. The
weight of a subtree is its size plus one, and for every node each child's
weight must be at least α times the node's weight. Rotations restore the
invariant after insertions and removals; joining two trees descends the
heavier one along its inner spine (Blelloch, Ferizovic, Sun: “Just Join for
Parallel Ordered Sets”, 2016). Splitting walks up from the split position and
joins the off-path subtrees, so splits and joins are both logarithmic.

Access Permits

Every operation has to present a Permit. A permit is either shared (any number
of them may be held, allowing read-only cursors and iterators) or exclusive
(exactly one, allowing mutation). Permits are acquired from the arena and never
block: a conflicting request fails with ErrPermitBusy. Trees meant to be
spliced into each other have to be created from the same arena.

Cursors

All navigation and mutation goes through cursors. A cursor's focus is either an
element or a gap between two elements (e.g., after the last element of a
tree). Tree methods like PushBack or SplitOff are convenience wrappers which
position a cursor and delegate to it.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package tripod

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tripod'
func tracer() tracing.Trace {
	return tracing.Select("tripod")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
