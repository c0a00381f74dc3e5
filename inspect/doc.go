/*
Package inspect renders tripod trees for humans.

Two renderers are provided: a console outline, which prints one line per
node, indented by depth and colored if the output is a terminal, and an HTML
outline made of nested lists. Both show the size of every subtree and flag
nodes violating the weight balance, which makes them useful when debugging
clients that build trees in unusual orders.

	con := inspect.ConsoleFromTerminal()
	inspect.Print(con, os.Stdout, p, tree, nil)

For GraphViz output refer to tripod.Tree2Dot.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package inspect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tripod'
func tracer() tracing.Trace {
	return tracing.Select("tripod")
}
