package tripod

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are labelled with their value and their
// subtree size; empty child slots are drawn as small circles.
func Tree2Dot[T any](p *Permit[T], t *Tree[T], w io.Writer) error {
	p.check(t.arena, false)
	a := t.arena
	var nodelist, edgelist strings.Builder
	nilid := 0
	var walk func(s slot, pos int)
	walk = func(s slot, pos int) {
		nd := &a.nodes[s]
		i := pos + a.size(nd.left)
		styles := nodeDotStyles(Balanced(a.size(nd.left), a.size(nd.right)))
		label := fmt.Sprintf("%v\\n%d @%d", escapeLabel(nd.value), nd.size, i)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", s, label, styles)
		for _, c := range [...]slot{nd.left, nd.right} {
			if c == nilSlot {
				nilid--
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", s, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", s, c)
		}
		if nd.left != nilSlot {
			walk(nd.left, pos)
		}
		if nd.right != nilSlot {
			walk(nd.right, i+1)
		}
	}
	if t.root != nilSlot {
		walk(t.root, 0)
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func escapeLabel(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\"", "\\\"")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(balanced bool) string {
	s := ",style=filled,shape=box"
	if balanced {
		s += ",fillcolor=\"#a3d7e4\""
	} else {
		s += ",fillcolor=\"#ff6600\""
	}
	return s
}
