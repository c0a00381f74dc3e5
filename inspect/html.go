package inspect

/*
BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/tripod"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes an outline of tree to w as nested unordered lists. Every node
// is a list item holding a span with the node's label; the span carries the
// subtree size as attribute data-size, and nodes violating the balance
// criterion get an additional class "unbalanced". Child items are tagged with
// data-side "left" or "right".
//
// label formats an element for display; if it is nil, elements are formatted
// with fmt.Sprint. p may be a shared permit.
func HTML[T any](w io.Writer, p *tripod.Permit[T], tree *tripod.Tree[T], label func(T) string) error {
	if label == nil {
		label = func(v T) string { return fmt.Sprint(v) }
	}
	ul := element(atom.Ul)
	c := tree.Cursor(p)
	c.MoveToRoot()
	if !c.IsGap() {
		ul.AppendChild(outlineItem(c, "", label))
	}
	return html.Render(w, ul)
}

func outlineItem[T any](c *tripod.Cursor[T], side string, label func(T) string) *html.Node {
	li := element(atom.Li)
	if side != "" {
		li.Attr = append(li.Attr, html.Attribute{Key: "data-side", Val: side})
	}
	v, _ := c.Current()
	i := c.Index()
	from, to := c.Range()
	class := "node"
	if !tripod.Balanced(i-from, to-i-1) {
		class = "node unbalanced"
	}
	span := element(atom.Span,
		html.Attribute{Key: "class", Val: class},
		html.Attribute{Key: "data-size", Val: strconv.Itoa(to - from)})
	span.AppendChild(&html.Node{Type: html.TextNode, Data: label(v)})
	li.AppendChild(span)
	var children *html.Node
	moves := []struct {
		side string
		move func() bool
	}{
		{"left", c.MoveLeft},
		{"right", c.MoveRight},
	}
	for _, m := range moves {
		if !m.move() {
			continue
		}
		if children == nil {
			children = element(atom.Ul)
			li.AppendChild(children)
		}
		children.AppendChild(outlineItem(c, m.side, label))
		c.MoveUp()
	}
	return li
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
		Attr:     attrs,
	}
}
