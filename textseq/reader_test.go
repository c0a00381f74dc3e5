package textseq

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestReader(t *testing.T) {
	text := strings.Repeat("Grüße aus Wien 👍🏽. ", 20)
	b := FromString(text)
	defer b.Close()
	content, err := io.ReadAll(b.Reader())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(content) != text {
		t.Errorf("read text differs from buffer content: %q", content)
	}
	if err := iotest.TestReader(b.Reader(), []byte(text)); err != nil {
		t.Errorf("reader does not behave: %v", err)
	}
}

func TestReaderSmallReads(t *testing.T) {
	b := FromString("äöü")
	defer b.Close()
	r := b.Reader()
	p := make([]byte, 1)
	var got []byte
	for {
		n, err := r.Read(p)
		got = append(got, p[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if string(got) != "äöü" {
		t.Errorf("expected to read 'äöü' byte by byte, got %q", got)
	}
}

func TestReaderWhileTextShrinks(t *testing.T) {
	b := FromString(strings.Repeat("xyz", 300))
	defer b.Close()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for b.Len() > 0 {
			_ = b.Delete(0, min(7, b.Len()))
		}
	}()
	r := b.Reader()
	p := make([]byte, 5)
	for {
		_, err := r.Read(p)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("expected only io.EOF from a shrinking text, got %v", err)
		}
	}
	<-done
	if _, err := r.Read(p); err != io.EOF {
		t.Fatalf("expected io.EOF after text is gone, got %v", err)
	}
}
