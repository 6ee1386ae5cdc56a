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

// Package msgtext renders dynamic messages as indented, human-readable
// text, one field per line:
//
//	stamp = 1700000000.000000500
//	position = {
//		x = 1.5
//		y = -2
//	}
//	data = [0x01, 0x02]
//	names = [
//		"a"
//		"b"
//	]
package msgtext

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.genmsg.dev/genmsg"
	"go.genmsg.dev/genmsg/compiler"
	"go.genmsg.dev/genmsg/dynamic"
)

func Encode(msg *dynamic.Message) string {
	var buf strings.Builder
	EncodeTo(msg, &buf)
	return buf.String()
}

func EncodeTo(msg *dynamic.Message, w io.Writer) error {
	e := encoder{w: w}
	e.visitMessage(msg)
	return e.err
}

type encoder struct {
	w      io.Writer
	indent int
	err    error
}

func (e *encoder) line(s string) {
	if e.err != nil {
		return
	}
	if indent := strings.Repeat("\t", e.indent); indent != "" {
		if _, err := io.WriteString(e.w, indent); err != nil {
			e.err = err
			return
		}
	}
	if _, err := io.WriteString(e.w, s); err != nil {
		e.err = err
		return
	}
	if _, err := io.WriteString(e.w, "\n"); err != nil {
		e.err = err
		return
	}
}

func (e *encoder) linef(format string, a ...any) {
	e.line(fmt.Sprintf(format, a...))
}

func (e *encoder) visitMessage(msg *dynamic.Message) {
	for ii, field := range msg.Type.Fields {
		if e.err != nil {
			return
		}
		e.visitField(field.Name, field.Category, msg.Values[ii])
	}
}

func (e *encoder) visitField(name string, cat *compiler.Category, value any) {
	if scalar := fmtScalar(value); scalar != "" {
		e.linef("%s = %s", name, scalar)
		return
	}

	switch value := value.(type) {
	case *dynamic.Message:
		e.linef("%s = {", name)
		e.indent += 1
		e.visitMessage(value)
		e.indent -= 1
		e.line("}")
		return
	case []any:
		e.visitArray(name, cat, value)
		return
	}

	panic(fmt.Sprintf("visitField: unhandled value %v (%T)", value, value))
}

// visitArray prints byte arrays on one line in hex and every other array
// with one element per line.
func (e *encoder) visitArray(name string, cat *compiler.Category, elems []any) {
	if len(elems) == 0 {
		e.linef("%s = []", name)
		return
	}
	if cat != nil && cat.Elem != nil && cat.Elem.Kind == compiler.Kind_INT && cat.Elem.Width == 1 && !cat.Elem.Signed {
		var buf strings.Builder
		for ii, b := range elems {
			if ii != 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "0x%02X", b)
		}
		e.linef("%s = [%s]", name, buf.String())
		return
	}

	e.linef("%s = [", name)
	e.indent += 1
	for _, elem := range elems {
		if scalar := fmtScalar(elem); scalar != "" {
			e.line(scalar)
			continue
		}
		if msg, ok := elem.(*dynamic.Message); ok {
			e.line("{")
			e.indent += 1
			e.visitMessage(msg)
			e.indent -= 1
			e.line("}")
			continue
		}
		panic(fmt.Sprintf("visitArray: unhandled element %v (%T)", elem, elem))
	}
	e.indent -= 1
	e.line("]")
}

func fmtScalar(value any) string {
	switch value := value.(type) {
	case bool:
		return strconv.FormatBool(value)
	case uint8:
		return strconv.FormatUint(uint64(value), 10)
	case uint16:
		return strconv.FormatUint(uint64(value), 10)
	case uint32:
		return strconv.FormatUint(uint64(value), 10)
	case uint64:
		return strconv.FormatUint(value, 10)
	case int8:
		return strconv.FormatInt(int64(value), 10)
	case int16:
		return strconv.FormatInt(int64(value), 10)
	case int32:
		return strconv.FormatInt(int64(value), 10)
	case int64:
		return strconv.FormatInt(value, 10)
	case float32:
		return strconv.FormatFloat(float64(value), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	case string:
		return quote(value)
	case genmsg.Time:
		return value.String()
	case genmsg.Duration:
		return value.String()
	}
	return ""
}

func quote(text string) string {
	var buf strings.Builder
	buf.WriteByte('"')
	for _, c := range text {
		if c == '\\' || c == '"' {
			buf.WriteByte('\\')
			buf.WriteRune(c)
			continue
		}
		if c == '\t' {
			buf.WriteString("\\t")
			continue
		}
		if c == '\n' {
			buf.WriteString("\\n")
			continue
		}
		if c < 0x20 || c == 0x7F {
			fmt.Fprintf(&buf, "\\x%02X", c)
			continue
		}
		buf.WriteRune(c)
	}
	buf.WriteByte('"')
	return buf.String()
}
