/*
Package html extracts the text of HTML fragments into text buffers.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package html

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tripod/textseq"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoNode is returned for nil input nodes.
var ErrNoNode = errors.New("html: node is nil")

// tracer writes to trace with key 'tripod'
func tracer() tracing.Trace {
	return tracing.Select("tripod")
}

// InnerText creates a text buffer for the textual content of an HTML element
// and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents. Block-level elements and <br>
// start a new line; the content of <script> and <style> is dropped.
func InnerText(n *html.Node) (*textseq.Buffer, error) {
	if n == nil {
		return nil, ErrNoNode
	}
	col := &collector{buf: textseq.New()}
	col.collect(n)
	return col.buf, col.err
}

// TextFromHTML creates a text buffer from the textual content of an HTML
// fragment. It does no interpretation of layout and styling, but extracts the
// pure text.
func TextFromHTML(input io.Reader) (*textseq.Buffer, error) {
	nodes, err := html.ParseFragment(input, &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, err
	}
	col := &collector{buf: textseq.New()}
	for _, n := range nodes {
		col.collect(n)
	}
	tracer().Debugf("extracted %d grapheme clusters from %d HTML nodes", col.buf.Len(), len(nodes))
	return col.buf, col.err
}

type collector struct {
	buf  *textseq.Buffer
	eol  bool // last text appended ends a line
	some bool // any text appended
	err  error
}

func (col *collector) collect(n *html.Node) {
	if col.err != nil {
		return
	}
	switch n.Type {
	case html.TextNode:
		col.append(n.Data)
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Template:
			return
		case atom.Br:
			col.append("\n")
			return
		}
	}
	block := n.Type == html.ElementNode && isBlock(n.DataAtom)
	if block {
		col.newline()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		col.collect(c)
	}
	if block {
		col.newline()
	}
}

func (col *collector) newline() {
	if col.some && !col.eol {
		col.append("\n")
	}
}

func (col *collector) append(s string) {
	if s == "" || col.err != nil {
		return
	}
	col.err = col.buf.AppendString(s)
	col.some = true
	col.eol = strings.HasSuffix(s, "\n")
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Li, atom.Ul, atom.Ol, atom.Pre, atom.Blockquote,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Table, atom.Tr, atom.Section, atom.Article, atom.Header, atom.Footer:
		return true
	}
	return false
}
