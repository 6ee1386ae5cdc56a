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
	"go.genmsg.dev/genmsg/compiler"
)

// writeSerialize emits the Serialize method. Each field appends to the one
// Encoder passed in, in declaration order; nested types append through
// their own Serialize.
func (f *fileCtx) writeSerialize(w *writer, msg *compiler.Message, names []string) {
	w.linef("// Serialize appends the wire encoding of m to enc and returns enc.")
	w.block("func (m *"+msg.Name+") Serialize(enc *msgbin.Encoder) *msgbin.Encoder {", func() {
		for ii, field := range msg.Fields {
			f.writeSerializeField(w, field, "m."+names[ii])
		}
		w.line("return enc")
	}, "}")
}

func (f *fileCtx) writeSerializeField(w *writer, field *compiler.Field, ref string) {
	cat := field.Category
	if cat.HasLength() && cat.Kind != compiler.Kind_STRING {
		w.linef("// Serialize the length for message field [%s]", field.Name)
		w.linef("enc.Length(len(%s))", ref)
	}
	w.linef("// Serialize message field [%s]", field.Name)
	switch cat.Kind {
	case compiler.Kind_FIXED_ARRAY, compiler.Kind_VARIABLE_ARRAY:
		if compiler.TypedArrayHint(cat.Elem.Scalar) != "" {
			if cat.Kind == compiler.Kind_FIXED_ARRAY {
				w.linef("msgbin.AppendSlice(enc, %s[:])", ref)
			} else {
				w.linef("msgbin.AppendSlice(enc, %s)", ref)
			}
			return
		}
		w.block("for ii := range "+ref+" {", func() {
			f.writeSerializeScalar(w, cat.Elem, ref+"[ii]")
		}, "}")
	case compiler.Kind_COMPLEX_ARRAY:
		w.block("for ii := range "+ref+" {", func() {
			f.writeSerializeScalar(w, cat.Elem, ref+"[ii]")
		}, "}")
	default:
		f.writeSerializeScalar(w, cat, ref)
	}
}

func (f *fileCtx) writeSerializeScalar(w *writer, cat *compiler.Category, ref string) {
	switch cat.Kind {
	case compiler.Kind_TIME, compiler.Kind_COMPLEX:
		w.linef("%s.Serialize(enc)", ref)
	default:
		w.linef("enc.%s(%s)", codecMethod(cat.Scalar), ref)
	}
}
