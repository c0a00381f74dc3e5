/*
Package textfile provides API helpers to load UTF-8 text files as text
buffers.

Files are read in fragments by a bounded asynchronous prefetch pipeline,
while the API stays synchronous: Load returns when the complete file has
been segmented into grapheme clusters and stored in a textseq.Buffer.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tripod'
func tracer() tracing.Trace {
	return tracing.Select("tripod")
}
