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

// writeDeserialize emits the Deserialize method, the mirror of
// writeSerialize: the same fields in the same order, each consuming
// exactly the bytes its Serialize step produced.
func (f *fileCtx) writeDeserialize(w *writer, msg *compiler.Message, names []string) {
	w.linef("// Deserialize decodes m from the front of dec, leaving dec positioned")
	w.linef("// after the last byte of m.")
	w.block("func (m *"+msg.Name+") Deserialize(dec *msgbin.Decoder) error {", func() {
		if len(msg.Fields) == 0 {
			w.line("return nil")
			return
		}
		w.line("var err error")
		for _, field := range msg.Fields {
			if field.Category.HasLength() && field.Category.Kind != compiler.Kind_STRING {
				w.line("var n int")
				break
			}
		}
		for ii, field := range msg.Fields {
			f.writeDeserializeField(w, field, "m."+names[ii])
		}
		w.line("return nil")
	}, "}")
}

func (f *fileCtx) writeDeserializeField(w *writer, field *compiler.Field, ref string) {
	cat := field.Category
	if cat.HasLength() && cat.Kind != compiler.Kind_STRING {
		w.linef("// Deserialize array length for message field [%s]", field.Name)
		writeCheck(w, "n, err = dec.Length()")
	}
	w.linef("// Deserialize message field [%s]", field.Name)
	switch cat.Kind {
	case compiler.Kind_FIXED_ARRAY:
		if compiler.TypedArrayHint(cat.Elem.Scalar) != "" {
			writeCheck(w, "err = msgbin.ReadArray(dec, "+ref+"[:])")
			return
		}
		w.block("for ii := range "+ref+" {", func() {
			f.writeDeserializeScalar(w, cat.Elem, ref+"[ii]")
		}, "}")
	case compiler.Kind_VARIABLE_ARRAY:
		if hint := compiler.TypedArrayHint(cat.Elem.Scalar); hint != "" {
			writeCheck(w, ref+", err = msgbin.ReadSlice["+hint+"](dec, n)")
			return
		}
		f.writeDeserializeAppend(w, cat, ref)
	case compiler.Kind_COMPLEX_ARRAY:
		if cat.Len > 0 {
			w.block("for ii := range "+ref+" {", func() {
				f.writeDeserializeScalar(w, cat.Elem, ref+"[ii]")
			}, "}")
			return
		}
		f.writeDeserializeAppend(w, cat, ref)
	default:
		f.writeDeserializeScalar(w, cat, ref)
	}
}

// writeDeserializeAppend decodes n elements of a variable-length array.
// The slice grows as elements are decoded, so a corrupt count fails on
// the buffer running out rather than on a huge allocation.
func (f *fileCtx) writeDeserializeAppend(w *writer, cat *compiler.Category, ref string) {
	elemType := f.typeRef(cat.Elem)
	w.linef("%s = make(%s, 0, dec.Capacity(n))", ref, f.typeRef(cat))
	w.block("for range n {", func() {
		w.linef("var val %s", elemType)
		f.writeDeserializeScalar(w, cat.Elem, "val")
		w.linef("%s = append(%s, val)", ref, ref)
	}, "}")
}

func (f *fileCtx) writeDeserializeScalar(w *writer, cat *compiler.Category, ref string) {
	switch cat.Kind {
	case compiler.Kind_TIME, compiler.Kind_COMPLEX:
		writeCheck(w, "err = "+ref+".Deserialize(dec)")
	default:
		writeCheck(w, ref+", err = dec."+codecMethod(cat.Scalar)+"()")
	}
}

func writeCheck(w *writer, stmt string) {
	w.block("if "+stmt+"; err != nil {", func() {
		w.line("return err")
	}, "}")
}
