package textfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tripod/textseq"
)

const lorem = "Lorem ipsum dolor sit amet, «consectetur» adipiscing elit.\n" +
	"Über grüne Wiesen gehen – schöne Grüße!\n" +
	"Combining: éäô, emoji: 👍🏽 and 🇦🇹.\n"

func writeFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "text.txt")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write test file: %v", err)
	}
	return name
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tripod")
	defer teardown()
	//
	name := writeFile(t, lorem)
	buf, err := Load(name, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer buf.Close()
	if buf.String() != lorem {
		t.Errorf("loaded text differs from file content:\n%s", buf.String())
	}
}

func TestLoadSmallFragments(t *testing.T) {
	content := strings.Repeat(lorem, 3)
	name := writeFile(t, content)
	expected := textseq.FromString(content)
	defer expected.Close()
	for _, size := range []int64{1, 2, 3, 5, 7, 64} {
		buf, err := Load(name, size)
		if err != nil {
			t.Fatalf("fragment size %d: unexpected error: %v", size, err)
		}
		if buf.String() != content {
			t.Errorf("fragment size %d: loaded text differs from file content", size)
		}
		if buf.Len() != expected.Len() {
			t.Errorf("fragment size %d: expected %d grapheme clusters, have %d",
				size, expected.Len(), buf.Len())
		}
		buf.Close()
	}
}

func TestLoadEmptyFile(t *testing.T) {
	buf, err := Load(writeFile(t, ""), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected empty buffer, has %d clusters", buf.Len())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(t.TempDir(), 0); !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular for directory, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt"), 0); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist for missing file, got %v", err)
	}
}

func TestFragmentSize(t *testing.T) {
	cases := []struct{ size, frag int64 }{
		{0, 1}, {10, 10}, {100, 64}, {5000, 256}, {50000, 512}, {500000, twoKb}, {5 * oneMb, sixKb},
	}
	for _, c := range cases {
		if f := fragmentSize(c.size); f != c.frag {
			t.Errorf("fragmentSize(%d) = %d, expected %d", c.size, f, c.frag)
		}
	}
}
