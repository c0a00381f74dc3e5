package tripod

/*
BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

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

import "fmt"

// Tree is an indexed sequence of elements of type T, organized as a weight
// balanced binary tree. The zero value is not usable; trees are created by
// their arena.
//
// All methods expect an access permit of the tree's arena. Mutating methods
// require an exclusive permit; presenting a wrong permit panics with a
// PermitError.
type Tree[T any] struct {
	arena *Arena[T]
	root  slot
}

// NewTree creates an empty tree.
func (a *Arena[T]) NewTree() *Tree[T] {
	return &Tree[T]{arena: a}
}

// Singleton creates a tree with one element.
func (a *Arena[T]) Singleton(p *Permit[T], value T) *Tree[T] {
	p.check(a, true)
	return &Tree[T]{arena: a, root: a.alloc(value)}
}

// FromSlice creates a perfectly balanced tree holding the values in order.
func (a *Arena[T]) FromSlice(p *Permit[T], values []T) *Tree[T] {
	p.check(a, true)
	var build func(lo, hi int) slot
	build = func(lo, hi int) slot {
		if lo >= hi {
			return nilSlot
		}
		m := lo + (hi-lo)/2
		n := a.alloc(values[m])
		return a.link(n, build(lo, m), build(m+1, hi))
	}
	return &Tree[T]{arena: a, root: build(0, len(values))}
}

// Arena returns the arena t belongs to.
func (t *Tree[T]) Arena() *Arena[T] {
	return t.arena
}

// --- Read access -----------------------------------------------------------

// IsEmpty reports whether t has no elements.
func (t *Tree[T]) IsEmpty(p *Permit[T]) bool {
	p.check(t.arena, false)
	return t.root == nilSlot
}

// Len returns the number of elements in t.
func (t *Tree[T]) Len(p *Permit[T]) int {
	p.check(t.arena, false)
	return t.arena.size(t.root)
}

// Height returns the number of nodes on the longest path from the root to a
// leaf.
func (t *Tree[T]) Height(p *Permit[T]) int {
	p.check(t.arena, false)
	return t.arena.height(t.root)
}

// Front returns the first element of t.
func (t *Tree[T]) Front(p *Permit[T]) (T, bool) {
	return t.CursorFront(p).Current()
}

// Back returns the last element of t.
func (t *Tree[T]) Back(p *Permit[T]) (T, bool) {
	return t.CursorBack(p).Current()
}

// At returns the element at position i. For positions outside [0, Len), At
// returns false.
func (t *Tree[T]) At(p *Permit[T], i int) (T, bool) {
	c := t.Cursor(p)
	if i >= t.Len(p) || !c.MoveTo(i) {
		var zero T
		return zero, false
	}
	return c.Current()
}

// Slice returns the elements of t, in order.
func (t *Tree[T]) Slice(p *Permit[T]) []T {
	s := make([]T, 0, t.Len(p))
	for v := range t.Values(p) {
		s = append(s, v)
	}
	return s
}

// Cursor returns a read cursor focused on the root of t.
func (t *Tree[T]) Cursor(p *Permit[T]) *Cursor[T] {
	c := newCursor(t, p)
	return &c
}

// CursorFront returns a read cursor focused on the front element of t.
func (t *Tree[T]) CursorFront(p *Permit[T]) *Cursor[T] {
	c := t.Cursor(p)
	c.MoveToFront()
	return c
}

// CursorBack returns a read cursor focused on the back element of t.
func (t *Tree[T]) CursorBack(p *Permit[T]) *Cursor[T] {
	c := t.Cursor(p)
	c.MoveToBack()
	return c
}

// --- Mutation --------------------------------------------------------------

// CursorMut returns a mutable cursor focused on the root of t.
func (t *Tree[T]) CursorMut(p *Permit[T]) *CursorMut[T] {
	p.check(t.arena, true)
	return &CursorMut[T]{Cursor: newCursor(t, p)}
}

// CursorFrontMut returns a mutable cursor focused on the front element of t.
func (t *Tree[T]) CursorFrontMut(p *Permit[T]) *CursorMut[T] {
	c := t.CursorMut(p)
	c.MoveToFront()
	return c
}

// CursorBackMut returns a mutable cursor focused on the back element of t.
func (t *Tree[T]) CursorBackMut(p *Permit[T]) *CursorMut[T] {
	c := t.CursorMut(p)
	c.MoveToBack()
	return c
}

// PushFront inserts value as the new front element.
func (t *Tree[T]) PushFront(p *Permit[T], value T) {
	t.CursorFrontMut(p).InsertBefore(value)
}

// PushBack inserts value as the new back element.
func (t *Tree[T]) PushBack(p *Permit[T], value T) {
	t.CursorBackMut(p).InsertAfter(value)
}

// PopFront removes the front element and returns it.
func (t *Tree[T]) PopFront(p *Permit[T]) (T, bool) {
	return t.CursorFrontMut(p).RemoveCurrent()
}

// PopBack removes the back element and returns it.
func (t *Tree[T]) PopBack(p *Permit[T]) (T, bool) {
	return t.CursorBackMut(p).RemoveCurrent()
}

// Set replaces the element at position i and returns the old value.
func (t *Tree[T]) Set(p *Permit[T], i int, value T) (T, error) {
	c, err := t.cursorAt(p, i, false)
	if err != nil {
		var zero T
		return zero, err
	}
	old, _ := c.SetCurrent(value)
	return old, nil
}

// InsertAt inserts value at position i, which may be equal to Len to append.
func (t *Tree[T]) InsertAt(p *Permit[T], i int, value T) error {
	c, err := t.cursorAt(p, i, true)
	if err != nil {
		return err
	}
	c.InsertBefore(value)
	return nil
}

// RemoveAt removes the element at position i and returns it.
func (t *Tree[T]) RemoveAt(p *Permit[T], i int) (T, error) {
	c, err := t.cursorAt(p, i, false)
	if err != nil {
		var zero T
		return zero, err
	}
	v, _ := c.RemoveCurrent()
	return v, nil
}

func (t *Tree[T]) cursorAt(p *Permit[T], i int, gapOK bool) (*CursorMut[T], error) {
	c := t.CursorMut(p)
	n := t.Len(p)
	if i < 0 || i > n || i == n && !gapOK {
		return nil, fmt.Errorf("%w: position %d, length %d", ErrIndexOutOfBounds, i, n)
	}
	c.MoveTo(i)
	return c, nil
}

// Append moves all elements of other to the end of t. other is left empty.
// Both trees have to belong to the same arena.
func (t *Tree[T]) Append(p *Permit[T], other *Tree[T]) error {
	return t.CursorBackMut(p).SpliceAfter(other)
}

// Prepend moves all elements of other to the front of t. other is left empty.
// Both trees have to belong to the same arena.
func (t *Tree[T]) Prepend(p *Permit[T], other *Tree[T]) error {
	return t.CursorFrontMut(p).SpliceBefore(other)
}

// SplitOff cuts t at position at and returns the elements [at, Len) as a new
// tree of the same arena. t keeps the elements [0, at).
func (t *Tree[T]) SplitOff(p *Permit[T], at int) (*Tree[T], error) {
	c, err := t.cursorAt(p, at, true)
	if err != nil {
		return nil, err
	}
	return c.SplitBefore(), nil
}

// Split cuts the elements [from, to) out of t and returns them as a new tree
// of the same arena. t keeps the elements before from, followed by the
// elements from position to onward.
func (t *Tree[T]) Split(p *Permit[T], from, to int) (*Tree[T], error) {
	n := t.Len(p)
	if from < 0 || from > to || to > n {
		return nil, fmt.Errorf("%w: range [%d, %d), length %d", ErrIndexOutOfBounds, from, to, n)
	}
	tail, err := t.SplitOff(p, to)
	if err != nil {
		return nil, err
	}
	mid, err := t.SplitOff(p, from)
	if err != nil {
		return nil, err
	}
	if err := t.Append(p, tail); err != nil {
		return nil, err
	}
	return mid, nil
}

// Clear removes all elements from t. If the arena is configured with a
// Release function, it is called for every element, in order.
//
// If Release panics, t is left partially released and must not be used
// any more.
func (t *Tree[T]) Clear(p *Permit[T]) {
	p.check(t.arena, true)
	a := t.arena
	release := a.cfg.Release
	n := a.size(t.root)
	s := t.root
	t.root = nilSlot
	// Walk in-order, freeing each node as soon as its left part is gone.
	// A node's right subtree takes its place, so no stack is needed.
	for s != nilSlot {
		if l := a.nodes[s].left; l != nilSlot {
			s = l
			continue
		}
		h := a.deploy(s)
		up, r := a.nodes[s].up, a.nodes[s].right
		a.replaceChild(up, s, r)
		a.isolate(s)
		a.retract(h)
		v := a.free(s)
		if release != nil {
			release(v)
		}
		if r != nilSlot {
			s = r
		} else {
			s = up
		}
	}
	tracer().Debugf("tripod: cleared %d elements", n)
}
