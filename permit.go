package tripod

import (
	"sync/atomic"
)

// Permit is a capability to access the trees of an arena.
//
// A shared permit allows reading: any number of shared permits may be held at
// the same time, and any number of read cursors and iterators may be active
// under them. An exclusive permit allows mutation; while it is held, no other
// permit of the arena is granted.
//
// Permits are not re-entrant. A permit has to be released when the client is
// done with it, after which it must not be used any more.
type Permit[T any] struct {
	arena     *Arena[T]
	exclusive bool
	released  atomic.Bool
}

// Shared acquires a permit for read access. It never blocks: if an exclusive
// permit is currently held, ErrPermitBusy is returned.
func (a *Arena[T]) Shared() (*Permit[T], error) {
	if !a.guard.TryRLock() {
		return nil, ErrPermitBusy
	}
	return &Permit[T]{arena: a}, nil
}

// Exclusive acquires a permit for read and write access. It never blocks: if
// any other permit is currently held, ErrPermitBusy is returned.
func (a *Arena[T]) Exclusive() (*Permit[T], error) {
	if !a.guard.TryLock() {
		return nil, ErrPermitBusy
	}
	return &Permit[T]{arena: a, exclusive: true}, nil
}

// Exclusive reports whether p allows mutation.
func (p *Permit[T]) Exclusive() bool {
	return p.exclusive
}

// Release gives the permit back to its arena. Releasing a permit more than
// once has no effect.
func (p *Permit[T]) Release() {
	if p == nil || !p.released.CompareAndSwap(false, true) {
		return
	}
	if p.exclusive {
		p.arena.guard.Unlock()
	} else {
		p.arena.guard.RUnlock()
	}
}

// check panics with a PermitError if p may not be used for an operation on
// arena a. write tells if the operation will mutate.
func (p *Permit[T]) check(a *Arena[T], write bool) {
	switch {
	case p == nil:
		panic(PermitError("tripod: nil permit"))
	case p.arena != a:
		panic(PermitError("tripod: permit belongs to a different arena"))
	case p.released.Load():
		panic(PermitError("tripod: permit has been released"))
	case write && !p.exclusive:
		panic(PermitError("tripod: mutation requires an exclusive permit"))
	}
}
