package textseq

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/tripod"
	"github.com/npillmayer/uax/grapheme"
)

// Kind is the type of an edit.
type Kind int8

// Kinds of edits.
const (
	Inserted Kind = iota
	Deleted
)

func (k Kind) String() string {
	if k == Inserted {
		return "inserted"
	}
	return "deleted"
}

// Change describes an edit of a buffer. Pos and Len are counted in grapheme
// clusters.
type Change struct {
	Kind Kind
	Pos  int
	Len  int
}

// group holds the arena shared by a buffer and all its siblings. Every
// operation on a buffer of the group holds mu while it uses its permit.
type group struct {
	mu    sync.Mutex
	arena *tripod.Arena[string]
}

// Buffer is a text buffer holding a sequence of grapheme clusters.
// Buffers are safe for concurrent use.
type Buffer struct {
	grp  *group
	text *tripod.Tree[string]
	subs struct {
		sync.Mutex
		cast   *caster.Caster // created by the first Subscribe
		closed bool
	}
}

// New creates an empty buffer.
func New() *Buffer {
	a, err := tripod.NewArena(tripod.Config[string]{})
	if err != nil { // cannot happen for the default configuration
		panic(err)
	}
	return newBuffer(&group{arena: a}, nil)
}

// FromString creates a buffer holding s.
func FromString(s string) *Buffer {
	b := New()
	if s != "" {
		b.grp.mu.Lock()
		defer b.grp.mu.Unlock()
		b.edit(func(p *tripod.Permit[string]) {
			b.text = b.grp.arena.FromSlice(p, clusters(s))
		})
	}
	return b
}

func newBuffer(grp *group, text *tripod.Tree[string]) *Buffer {
	if text == nil {
		text = grp.arena.NewTree()
	}
	return &Buffer{grp: grp, text: text}
}

// NewSibling creates an empty buffer sharing the storage of b. Text may be
// pasted between siblings without copying.
func (b *Buffer) NewSibling() *Buffer {
	return newBuffer(b.grp, nil)
}

// Siblings reports whether b and other share their storage.
func (b *Buffer) Siblings(other *Buffer) bool {
	return other != nil && b.grp == other.grp
}

// edit runs fn with an exclusive permit. The group's mutex must be held.
func (b *Buffer) edit(fn func(p *tripod.Permit[string])) {
	p, err := b.grp.arena.Exclusive()
	if err != nil { // mu guards every permit of the arena
		panic(err)
	}
	defer p.Release()
	fn(p)
}

func (b *Buffer) read(fn func(p *tripod.Permit[string])) {
	b.grp.mu.Lock()
	defer b.grp.mu.Unlock()
	p, err := b.grp.arena.Shared()
	if err != nil {
		panic(err)
	}
	defer p.Release()
	fn(p)
}

// Len returns the number of grapheme clusters in b.
func (b *Buffer) Len() (n int) {
	b.read(func(p *tripod.Permit[string]) {
		n = b.text.Len(p)
	})
	return
}

// String returns the text of b.
func (b *Buffer) String() string {
	var sb strings.Builder
	b.read(func(p *tripod.Permit[string]) {
		for g := range b.text.Values(p) {
			sb.WriteString(g)
		}
	})
	return sb.String()
}

// At returns the grapheme cluster at position pos.
func (b *Buffer) At(pos int) (g string, err error) {
	b.read(func(p *tripod.Permit[string]) {
		var ok bool
		if g, ok = b.text.At(p, pos); !ok {
			err = fmt.Errorf("%w: position %d in text of length %d",
				tripod.ErrIndexOutOfBounds, pos, b.text.Len(p))
		}
	})
	return
}

// Report returns n grapheme clusters of text, starting at position pos.
func (b *Buffer) Report(pos, n int) (s string, err error) {
	b.read(func(p *tripod.Permit[string]) {
		if err = checkSpan(pos, n, b.text.Len(p)); err != nil {
			return
		}
		var sb strings.Builder
		for _, g := range b.text.Range(p, pos, pos+n) {
			sb.WriteString(g)
		}
		s = sb.String()
	})
	return
}

// Insert inserts s at position pos.
func (b *Buffer) Insert(pos int, s string) error {
	gs := clusters(s)
	b.grp.mu.Lock()
	var err error
	b.edit(func(p *tripod.Permit[string]) {
		err = b.insert(p, pos, gs)
	})
	b.grp.mu.Unlock()
	if err == nil && len(gs) > 0 {
		b.publish(Change{Kind: Inserted, Pos: pos, Len: len(gs)})
	}
	return err
}

// AppendString appends s at the end of b.
func (b *Buffer) AppendString(s string) error {
	gs := clusters(s)
	b.grp.mu.Lock()
	var pos int
	var err error
	b.edit(func(p *tripod.Permit[string]) {
		pos = b.text.Len(p)
		err = b.insert(p, pos, gs)
	})
	b.grp.mu.Unlock()
	if err == nil && len(gs) > 0 {
		b.publish(Change{Kind: Inserted, Pos: pos, Len: len(gs)})
	}
	return err
}

func (b *Buffer) insert(p *tripod.Permit[string], pos int, gs []string) error {
	if pos < 0 || pos > b.text.Len(p) {
		return fmt.Errorf("%w: insert at %d into text of length %d",
			tripod.ErrIndexOutOfBounds, pos, b.text.Len(p))
	}
	if len(gs) == 0 {
		return nil
	}
	c := b.text.CursorMut(p)
	c.MoveToRoot()
	c.MoveTo(pos)
	return c.SpliceBefore(b.grp.arena.FromSlice(p, gs))
}

// Delete removes n grapheme clusters, starting at position pos.
func (b *Buffer) Delete(pos, n int) error {
	b.grp.mu.Lock()
	var err error
	b.edit(func(p *tripod.Permit[string]) {
		var cut *tripod.Tree[string]
		if cut, err = b.cut(p, pos, n); err == nil {
			cut.Clear(p)
		}
	})
	b.grp.mu.Unlock()
	if err == nil && n > 0 {
		b.publish(Change{Kind: Deleted, Pos: pos, Len: n})
	}
	return err
}

// Cut removes n grapheme clusters, starting at position pos, and returns them
// as a sibling buffer of b.
func (b *Buffer) Cut(pos, n int) (*Buffer, error) {
	b.grp.mu.Lock()
	var cut *tripod.Tree[string]
	var err error
	b.edit(func(p *tripod.Permit[string]) {
		cut, err = b.cut(p, pos, n)
	})
	b.grp.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if n > 0 {
		b.publish(Change{Kind: Deleted, Pos: pos, Len: n})
	}
	return newBuffer(b.grp, cut), nil
}

func (b *Buffer) cut(p *tripod.Permit[string], pos, n int) (*tripod.Tree[string], error) {
	if err := checkSpan(pos, n, b.text.Len(p)); err != nil {
		return nil, err
	}
	return b.text.Split(p, pos, pos+n)
}

// Paste moves the complete text of other into b at position pos. other has
// to be a sibling of b and is empty afterwards.
func (b *Buffer) Paste(pos int, other *Buffer) error {
	return b.paste(other, func(*tripod.Permit[string]) int { return pos })
}

// Append moves the complete text of other to the end of b. other has to be a
// sibling of b and is empty afterwards.
func (b *Buffer) Append(other *Buffer) error {
	return b.paste(other, b.text.Len)
}

// paste moves the text of other into b at the position where returns. where
// is called with the group's mutex held.
func (b *Buffer) paste(other *Buffer, where func(*tripod.Permit[string]) int) error {
	if other == b {
		return tripod.ErrSelfSplice
	}
	if !b.Siblings(other) {
		return fmt.Errorf("%w: cannot paste text from a buffer which is not a sibling",
			tripod.ErrForeignArena)
	}
	b.grp.mu.Lock()
	var pos, n int
	var err error
	b.edit(func(p *tripod.Permit[string]) {
		pos = where(p)
		if pos < 0 || pos > b.text.Len(p) {
			err = fmt.Errorf("%w: paste at %d into text of length %d",
				tripod.ErrIndexOutOfBounds, pos, b.text.Len(p))
			return
		}
		n = other.text.Len(p)
		c := b.text.CursorMut(p)
		c.MoveToRoot()
		c.MoveTo(pos)
		err = c.SpliceBefore(other.text)
	})
	b.grp.mu.Unlock()
	if err != nil || n == 0 {
		return err
	}
	tracer().Debugf("pasted %d clusters at %d", n, pos)
	other.publish(Change{Kind: Deleted, Pos: 0, Len: n})
	b.publish(Change{Kind: Inserted, Pos: pos, Len: n})
	return nil
}

// Subscribe registers for notifications about edits of b. Changes are
// delivered in the order in which the edits happened; capacity is the
// buffer size of the returned channel. The channel is closed when ctx is done
// or when b is closed. If b is already closed, Subscribe returns false.
func (b *Buffer) Subscribe(ctx context.Context, capacity uint) (<-chan Change, bool) {
	b.subs.Lock()
	if b.subs.closed {
		b.subs.Unlock()
		return nil, false
	}
	if b.subs.cast == nil {
		b.subs.cast = caster.New(context.Background())
	}
	sub, ok := b.subs.cast.Sub(ctx, capacity)
	b.subs.Unlock()
	if !ok {
		return nil, false
	}
	changes := make(chan Change, capacity)
	go func() {
		defer close(changes)
		for msg := range sub {
			c, ok := msg.(Change)
			if !ok {
				continue
			}
			select {
			case changes <- c:
			case <-ctx.Done():
				return
			}
		}
	}()
	return changes, true
}

// Close ends all subscriptions to b. b's text is still accessible after Close,
// but edits are no longer published.
func (b *Buffer) Close() {
	b.subs.Lock()
	defer b.subs.Unlock()
	if b.subs.closed {
		return
	}
	b.subs.closed = true
	if b.subs.cast != nil {
		b.subs.cast.Close()
	}
}

// publish sends c to the subscribers of b, if there are any.
func (b *Buffer) publish(c Change) {
	b.subs.Lock()
	defer b.subs.Unlock()
	if b.subs.cast != nil && !b.subs.closed {
		b.subs.cast.Pub(c)
	}
}

// --- Helpers ---------------------------------------------------------------

var setupGraphemes sync.Once

// clusters splits s into grapheme clusters.
func clusters(s string) []string {
	if s == "" {
		return nil
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	gs := make([]string, gstr.Len())
	for i := range gs {
		gs[i] = gstr.Nth(i)
	}
	return gs
}

func checkSpan(pos, n, length int) error {
	if pos < 0 || n < 0 || pos+n > length {
		return fmt.Errorf("%w: span %d…%d in text of length %d",
			tripod.ErrIndexOutOfBounds, pos, pos+n, length)
	}
	return nil
}
