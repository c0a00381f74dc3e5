package textseq

import (
	"io"
	"strings"

	"github.com/npillmayer/tripod"
)

// Reader returns a reader for the bytes of b. Edits of b while reading
// shift the reader's position, which is counted in grapheme clusters.
func (b *Buffer) Reader() io.Reader {
	return &bufferReader{buf: b}
}

type bufferReader struct {
	buf     *Buffer
	cursor  int    // next cluster to report
	pending string // bytes reported but not yet read
}

func (br *bufferReader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if br.pending == "" {
		var l int
		if br.pending, l = br.buf.reportUpTo(br.cursor, len(p)); l == 0 {
			return 0, io.EOF
		}
		br.cursor += l
	}
	n = copy(p, br.pending)
	br.pending = br.pending[n:]
	return n, nil
}

// reportUpTo returns at most n grapheme clusters of text, starting at position
// pos, together with their count.
func (b *Buffer) reportUpTo(pos, n int) (s string, count int) {
	b.read(func(p *tripod.Permit[string]) {
		if pos < 0 || pos >= b.text.Len(p) {
			return
		}
		var sb strings.Builder
		for _, g := range b.text.Range(p, pos, pos+n) {
			sb.WriteString(g)
			count++
		}
		s = sb.String()
	})
	return
}
