package tripod

import (
	"errors"
	"testing"
)

func TestPermitExclusion(t *testing.T) {
	a, err := NewArena(Config[int]{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r1, err := a.Shared()
	if err != nil {
		t.Fatalf("expected first shared permit, got %v", err)
	}
	r2, err := a.Shared()
	if err != nil {
		t.Fatalf("expected second shared permit, got %v", err)
	}
	if _, err := a.Exclusive(); !errors.Is(err, ErrPermitBusy) {
		t.Fatalf("expected ErrPermitBusy while readers are active, got %v", err)
	}
	r1.Release()
	r1.Release() // no effect
	if _, err := a.Exclusive(); !errors.Is(err, ErrPermitBusy) {
		t.Fatalf("expected ErrPermitBusy while one reader is active, got %v", err)
	}
	r2.Release()
	w, err := a.Exclusive()
	if err != nil {
		t.Fatalf("expected exclusive permit, got %v", err)
	}
	if !w.Exclusive() {
		t.Fatalf("expected permit to be exclusive")
	}
	if _, err := a.Shared(); !errors.Is(err, ErrPermitBusy) {
		t.Fatalf("expected ErrPermitBusy for reader while writer is active, got %v", err)
	}
	w.Release()
	if _, err := a.Shared(); err != nil {
		t.Fatalf("expected shared permit after writer released, got %v", err)
	}
}

func TestPermitMisusePanics(t *testing.T) {
	a, p := newIntArena(t)
	tree := a.FromSlice(p, seq(0, 5))
	other, _ := NewArena(Config[int]{})
	foreign, err := other.Exclusive()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer foreign.Release()
	mustPermitPanic(t, "foreign permit", func() { tree.Len(foreign) })
	mustPermitPanic(t, "nil permit", func() { tree.Len(nil) })
	p.Release()
	mustPermitPanic(t, "released permit", func() { tree.Len(p) })
	r, err := a.Shared()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer r.Release()
	if tree.Len(r) != 5 {
		t.Fatalf("expected reader to see 5 elements")
	}
	mustPermitPanic(t, "mutation with shared permit", func() { tree.PushBack(r, 9) })
	mustPermitPanic(t, "mutable cursor with shared permit", func() { tree.CursorMut(r) })
}
