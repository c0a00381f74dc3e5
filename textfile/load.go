package textfile

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
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/tripod/textseq"
	"github.com/npillmayer/uax/grapheme"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// prefetch is the number of fragments read ahead of segmentation.
const prefetch = 4

// ErrNotRegular is returned when trying to load something other than a
// regular file.
var ErrNotRegular = errors.New("textfile: not a regular file")

// fragment is a chunk of a file's content.
type fragment struct {
	data []byte
	pos  int64 // start position within the file
	err  error
}

// textFile represents an OS file which will be loaded into a buffer.
type textFile struct {
	path string
	info os.FileInfo
	file *os.File
}

var setupGraphemes sync.Once

// Load reads a file, which must be a UTF-8 text file, into a text buffer.
// Clients may indicate a recommended fragment length; 0 lets Load choose a
// default derived from the file size.
func Load(name string, fragSize int64) (*textseq.Buffer, error) {
	tf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	if fragSize <= 0 || fragSize > tenKb {
		fragSize = fragmentSize(tf.info.Size())
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	buf := textseq.New()
	done := make(chan struct{})
	defer close(done)
	var carry []byte // incomplete grapheme cluster at the end of the previous fragment
	for frag := range startLoading(tf, fragSize, done) {
		if frag.err != nil {
			return nil, fmt.Errorf("loading text fragment at %d of %s: %w", frag.pos, tf.path, frag.err)
		}
		carry = append(carry, frag.data...)
		last := frag.pos+int64(len(frag.data)) >= tf.info.Size()
		if !last {
			carry, err = appendComplete(buf, carry)
		} else {
			err = buf.AppendString(string(carry))
			carry = nil
		}
		if err != nil {
			return nil, err
		}
	}
	tracer().Debugf("loaded %s: %d bytes, %d grapheme clusters", tf.path, tf.info.Size(), buf.Len())
	return buf, nil
}

// fragmentSize is the default fragment length for a file of the given size.
func fragmentSize(size int64) int64 {
	switch {
	case size < 64:
		return max(size, 1)
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &textFile{path: name, info: fi, file: file}, nil
}

// startLoading reads the fragments of tf in the background. Reading stops
// after the last fragment, after the first error, or when done is closed.
func startLoading(tf *textFile, fragSize int64, done <-chan struct{}) <-chan fragment {
	ch := make(chan fragment, prefetch)
	go func() {
		defer close(ch)
		size := tf.info.Size()
		for pos := int64(0); pos < size; pos += fragSize {
			data := make([]byte, min(fragSize, size-pos))
			cnt, err := tf.file.ReadAt(data, pos)
			if err == io.EOF && cnt == len(data) {
				err = nil
			} else if err == nil && cnt < len(data) {
				err = io.ErrUnexpectedEOF
			}
			select {
			case ch <- fragment{data: data[:cnt], pos: pos, err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}

// appendComplete appends all but the last grapheme cluster of text to buf.
// The last cluster and any incomplete UTF-8 sequence at the end of text may
// continue in the next fragment and are returned as the new carry.
func appendComplete(buf *textseq.Buffer, text []byte) ([]byte, error) {
	cut := len(text)
	for i := 1; i <= utf8.UTFMax && i <= len(text); i++ {
		if utf8.RuneStart(text[len(text)-i]) {
			if !utf8.FullRune(text[len(text)-i:]) {
				cut = len(text) - i
			}
			break
		}
	}
	if cut == 0 {
		return text, nil
	}
	gstr := grapheme.StringFromString(string(text[:cut]))
	if gstr.Len() <= 1 {
		return text, nil
	}
	cut -= len(gstr.Nth(gstr.Len() - 1))
	if err := buf.AppendString(string(text[:cut])); err != nil {
		return nil, err
	}
	return append([]byte(nil), text[cut:]...), nil
}
