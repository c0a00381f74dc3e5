package textseq

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/tripod"
)

// Span is a range of grapheme clusters inside a buffer.
type Span struct {
	Pos int
	Len int
}

// Words scans the clusters [from, to) of b for words, i.e. maximal runs of
// non-space clusters. It returns the word spans together with a sibling
// buffer which holds all the words concatenated in logical order, omitting
// the separators.
func (b *Buffer) Words(from, to int) ([]Span, *Buffer, error) {
	var spans []Span
	var words []string
	var err error
	b.read(func(p *tripod.Permit[string]) {
		if err = checkSpan(from, to-from, b.text.Len(p)); err != nil {
			return
		}
		start := -1
		for i, g := range b.text.Range(p, from, to) {
			if isSpace(g) {
				if start >= 0 {
					spans = append(spans, Span{Pos: start, Len: i - start})
					start = -1
				}
				continue
			}
			if start < 0 {
				start = i
			}
			words = append(words, g)
		}
		if start >= 0 {
			spans = append(spans, Span{Pos: start, Len: to - start})
		}
	})
	if err != nil {
		return nil, nil, err
	}
	materialized := b.NewSibling()
	if len(words) > 0 {
		b.grp.mu.Lock()
		materialized.edit(func(p *tripod.Permit[string]) {
			materialized.text = b.grp.arena.FromSlice(p, words)
		})
		b.grp.mu.Unlock()
	}
	return spans, materialized, nil
}

// isSpace tells if a grapheme cluster starts with a white space character.
func isSpace(g string) bool {
	r, _ := utf8.DecodeRuneInString(g)
	return unicode.IsSpace(r)
}
