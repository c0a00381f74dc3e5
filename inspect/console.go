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
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/tripod"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Mark classifies the parts of an outline line which may be colored.
type Mark int

// Parts of an outline line.
const (
	SideMark       Mark = iota // "L" or "R" in front of a child
	SizeMark                   // subtree size
	UnbalancedMark             // flag for nodes violating the balance criterion
)

// Console prints tree outlines to a fixed-width output device.
type Console struct {
	Indent     int            // number of spaces per tree level
	LabelWidth int            // labels are padded to this many en; 0 switches padding off
	Context    *uax11.Context // for measuring the display width of labels
	colors     map[Mark]*color.Color
}

var setupGraphemes sync.Once

// NewConsole creates a console outliner. If colored is false, no escape
// sequences are written, regardless of the output device.
func NewConsole(colored bool) *Console {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	con := &Console{
		Indent:  2,
		Context: uax11.LatinContext,
		colors:  makeDefaultPalette(),
	}
	for _, c := range con.colors {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return con
}

func makeDefaultPalette() map[Mark]*color.Color {
	return map[Mark]*color.Color{
		SideMark:       color.New(color.Faint),
		SizeMark:       color.New(color.FgBlue),
		UnbalancedMark: color.New(color.FgRed, color.Bold),
	}
}

// ConsoleFromTerminal creates a console outliner for stdout. Colors are
// switched on if stdout is a terminal, and labels are padded to a width
// derived from the terminal's width.
func ConsoleFromTerminal() *Console {
	fd := int(os.Stdout.Fd())
	isTerm := term.IsTerminal(fd)
	con := NewConsole(isTerm)
	con.Context = uax11.ContextFromEnvironment()
	if isTerm {
		if w, _, err := term.GetSize(fd); err == nil {
			con.LabelWidth = max(4, min(w/4, 24))
		}
	}
	tracer().Debugf("console outline: terminal=%v, label width %d", isTerm, con.LabelWidth)
	return con
}

// SetColor replaces the color for a part of outline lines.
func (con *Console) SetColor(m Mark, c *color.Color) {
	con.colors[m] = c
}

// Print writes an outline of tree to w, one line per node in pre-order.
// label formats an element for display; if it is nil, elements are
// formatted with fmt.Sprint.
//
// p may be a shared permit.
func Print[T any](con *Console, w io.Writer, p *tripod.Permit[T], tree *tripod.Tree[T], label func(T) string) error {
	if con == nil {
		con = NewConsole(false)
	}
	if label == nil {
		label = func(v T) string { return fmt.Sprint(v) }
	}
	c := tree.Cursor(p)
	c.MoveToRoot()
	if c.IsGap() {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	pr := &outliner[T]{con: con, w: w, label: label}
	pr.outline(c, 0, "")
	return pr.err
}

type outliner[T any] struct {
	con   *Console
	w     io.Writer
	label func(T) string
	err   error // first write error
}

// outline prints the subtree at the focus of c and returns with the focus
// where it started.
func (pr *outliner[T]) outline(c *tripod.Cursor[T], depth int, side string) {
	v, _ := c.Current()
	i := c.Index()
	from, to := c.Range()
	pr.line(depth, side, pr.label(v), to-from, tripod.Balanced(i-from, to-i-1))
	if c.MoveLeft() {
		pr.outline(c, depth+1, "L")
		c.MoveUp()
	}
	if c.MoveRight() {
		pr.outline(c, depth+1, "R")
		c.MoveUp()
	}
}

func (pr *outliner[T]) line(depth int, side, label string, size int, balanced bool) {
	pr.write(strings.Repeat(" ", depth*pr.con.Indent))
	if side != "" {
		pr.paint(SideMark, side)
		pr.write(" ")
	}
	pr.write(label)
	if pad := pr.con.LabelWidth - pr.con.width(label); pad > 0 {
		pr.write(strings.Repeat(" ", pad))
	}
	pr.write(" ")
	pr.paint(SizeMark, fmt.Sprintf("[%d]", size))
	if !balanced {
		pr.write(" ")
		pr.paint(UnbalancedMark, "!")
	}
	pr.write("\n")
}

func (con *Console) width(s string) int {
	if s == "" {
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), con.Context)
}

func (pr *outliner[T]) write(s string) {
	if pr.err == nil {
		_, pr.err = io.WriteString(pr.w, s)
	}
}

func (pr *outliner[T]) paint(m Mark, s string) {
	if pr.err != nil {
		return
	}
	if c, ok := pr.con.colors[m]; ok && c != nil {
		_, pr.err = c.Fprint(pr.w, s)
		return
	}
	pr.write(s)
}
