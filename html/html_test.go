package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestTextFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tripod")
	defer teardown()
	//
	input := `<p>Hello <b>World</b>!</p><p>Second<br>line</p><script>alert(1)</script>`
	buf, err := TextFromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer buf.Close()
	expected := "Hello World!\nSecond\nline\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestInnerText(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><body><div id="x">a<span>b</span>c</div></body></html>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var div *html.Node
	var find func(n *html.Node)
	find = func(n *html.Node) {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == "x" {
				div = n
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(doc)
	if div == nil {
		t.Fatalf("test document has no element with id 'x'")
	}
	buf, err := InnerText(div)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "abc\n" {
		t.Errorf("expected inner text 'abc', got %q", buf.String())
	}
	if _, err := InnerText(nil); !errors.Is(err, ErrNoNode) {
		t.Errorf("expected ErrNoNode, got %v", err)
	}
}
