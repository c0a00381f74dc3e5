package tripod

import "iter"

// Iter is a forward iterator over the elements of a tree, optionally bounded
// to a range of positions. An iterator cannot be restarted.
//
//	it := tree.Iter(p)
//	for v, ok := it.Next(); ok; v, ok = it.Next() {
//	    …
//	}
type Iter[T any] struct {
	cursor Cursor[T]
	pos    int
	end    int
}

// Iter returns an iterator over all elements of t.
func (t *Tree[T]) Iter(p *Permit[T]) *Iter[T] {
	return t.IterRange(p, 0, t.Len(p))
}

// IterRange returns an iterator over the elements at positions [from, to).
// The range is clamped to the tree's extent; an empty or inverted range
// yields no elements.
func (t *Tree[T]) IterRange(p *Permit[T], from, to int) *Iter[T] {
	n := t.Len(p)
	from, to = max(from, 0), min(to, n)
	it := &Iter[T]{cursor: newCursor(t, p), pos: from, end: to}
	if from < to {
		it.cursor.seek(from)
	}
	return it
}

// Next returns the next element. If the iteration is exhausted, Next returns
// false.
func (it *Iter[T]) Next() (T, bool) {
	if it.pos >= it.end {
		var zero T
		return zero, false
	}
	v, ok := it.cursor.Current()
	assert(ok, "tripod: iterator fell off its tree")
	it.pos++
	if it.pos < it.end {
		it.cursor.MoveNext()
	}
	return v, true
}

// Index returns the position of the element the next call to Next will
// return.
func (it *Iter[T]) Index() int {
	return it.pos
}

// All returns an iterator over positions and values of t, in order.
func (t *Tree[T]) All(p *Permit[T]) iter.Seq2[int, T] {
	return t.Range(p, 0, t.Len(p))
}

// Range returns an iterator over positions and values of t in [from, to),
// clamped like IterRange.
func (t *Tree[T]) Range(p *Permit[T], from, to int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := t.IterRange(p, from, to)
		for {
			i := it.Index()
			v, ok := it.Next()
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of t, in order.
func (t *Tree[T]) Values(p *Permit[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := t.Iter(p)
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
