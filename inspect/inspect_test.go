package inspect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tripod"
)

func intTree(t *testing.T, n int) (*tripod.Tree[int], *tripod.Permit[int]) {
	t.Helper()
	a, err := tripod.NewArena(tripod.Config[int]{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err := a.Exclusive()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(p.Release)
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}
	return a.FromSlice(p, values), p
}

func TestConsoleOutline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tripod")
	defer teardown()
	//
	tree, p := intTree(t, 7)
	var buf bytes.Buffer
	if err := Print(NewConsole(false), &buf, p, tree, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `4 [7]
  L 2 [3]
    L 1 [1]
    R 3 [1]
  R 6 [3]
    L 5 [1]
    R 7 [1]
`
	if buf.String() != expected {
		t.Errorf("unexpected outline:\n%s", buf.String())
	}
}

func TestConsolePadding(t *testing.T) {
	tree, p := intTree(t, 2)
	con := NewConsole(false)
	con.Indent = 1
	con.LabelWidth = 4
	var buf bytes.Buffer
	err := Print(con, &buf, p, tree, func(v int) string {
		return strings.Repeat("x", v)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if lines[0] != "xx   [2]" {
		t.Errorf("expected padded root label, got %q", lines[0])
	}
	if lines[1] != " L x    [1]" {
		t.Errorf("expected padded child label, got %q", lines[1])
	}
}

func TestConsoleColors(t *testing.T) {
	tree, p := intTree(t, 3)
	var buf bytes.Buffer
	if err := Print(NewConsole(true), &buf, p, tree, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected escape sequences in colored output, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "!") {
		t.Errorf("expected no balance violations to be flagged")
	}
}

func TestConsoleEmptyTree(t *testing.T) {
	tree, p := intTree(t, 0)
	var buf bytes.Buffer
	if err := Print(nil, &buf, p, tree, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "(empty)\n" {
		t.Errorf("unexpected output for empty tree: %q", buf.String())
	}
}

func TestHTMLOutline(t *testing.T) {
	tree, p := intTree(t, 3)
	var buf bytes.Buffer
	if err := HTML(&buf, p, tree, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `<ul><li><span class="node" data-size="3">2</span>` +
		`<ul><li data-side="left"><span class="node" data-size="1">1</span></li>` +
		`<li data-side="right"><span class="node" data-size="1">3</span></li></ul>` +
		`</li></ul>`
	if buf.String() != expected {
		t.Errorf("unexpected HTML outline:\n%s", buf.String())
	}
}

func TestHTMLEscapesLabels(t *testing.T) {
	a, err := tripod.NewArena(tripod.Config[string]{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q, err := a.Exclusive()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer q.Release()
	tree := a.Singleton(q, "<a&b>")
	var buf bytes.Buffer
	if err := HTML(&buf, q, tree, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "&lt;a&amp;b&gt;") {
		t.Errorf("expected label to be escaped, got %s", buf.String())
	}
}
