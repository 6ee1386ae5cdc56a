// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
)

// writer accumulates generated source line by line. Output is passed
// through gofmt, so only the nesting of lines matters, not their exact
// spacing.
type writer struct {
	buf    bytes.Buffer
	indent int
}

func (w *writer) line(s string) {
	if s != "" {
		w.buf.WriteString(strings.Repeat("\t", w.indent))
		w.buf.WriteString(s)
	}
	w.buf.WriteByte('\n')
}

func (w *writer) linef(format string, a ...any) {
	w.line(fmt.Sprintf(format, a...))
}

func (w *writer) blank() {
	w.buf.WriteByte('\n')
}

// block writes open, runs body one level deeper, then writes close.
func (w *writer) block(open string, body func(), close string) {
	w.line(open)
	w.indent += 1
	body()
	w.indent -= 1
	w.line(close)
}

func (w *writer) source(name string) ([]byte, error) {
	src, err := format.Source(w.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: generated source for %s is invalid: %w", name, err)
	}
	return src, nil
}
