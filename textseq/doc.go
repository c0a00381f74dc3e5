/*
Package textseq implements text buffers on top of tripod trees.

A Buffer stores text as a sequence of grapheme clusters (user-perceived
characters, as segmented by UAX #29), one cluster per tree element. Positions
and lengths in the API are counted in grapheme clusters, not in bytes or
runes. Editing a buffer is logarithmic in its length.

Buffers created from each other via NewSibling or Cut share a common tripod
arena, which lets Paste move text between them by splicing trees instead of
copying clusters.

Clients may subscribe to a buffer to be notified of every edit:

	changes, _ := buf.Subscribe(ctx, 16)
	go func() {
		for c := range changes {
			fmt.Printf("%s %d…%d\n", c.Kind, c.Pos, c.Pos+c.Len)
		}
	}()

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textseq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tripod'
func tracer() tracing.Trace {
	return tracing.Select("tripod")
}
