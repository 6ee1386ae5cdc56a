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
	"context"
	"fmt"
	"strconv"

	"go.genmsg.dev/genmsg/compiler"
	"go.genmsg.dev/genmsg/msgspec"
)

// RenderMessage compiles spec and renders its Go source file without
// writing anything.
func (g *Generator) RenderMessage(ctx context.Context, spec *msgspec.MessageSpec) (*Artifact, error) {
	msg, warnings, err := g.compile(spec)
	if err != nil {
		return nil, err
	}
	f := newFileCtx(g, spec.Package, msgDir)
	if err := f.addDeps(msg.Deps); err != nil {
		return nil, err
	}
	desc, err := g.opts.definitions.Describe(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("codegen: describe %s: %w", msg.FullName(), err)
	}

	w := &writer{}
	writeFileHeader(w, spec.FullName(), spec.Package, msgDir)
	f.writeImports(w)
	w.blank()
	f.writeComponent(w, msg, desc)

	src, err := w.source(msg.Name)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Name:     msg.Name,
		Source:   src,
		Warnings: warnings,
	}, nil
}

func writeFileHeader(w *writer, source, pkg, goPkg string) {
	w.line(generatedHeader)
	w.linef("// source: %s (in-package %s.%s)", source, pkg, goPkg)
	w.blank()
	w.linef("package %s", goPkg)
	w.blank()
}

// writeComponent emits one container type with its constructor, codecs,
// metadata and constants.
func (f *fileCtx) writeComponent(w *writer, msg *compiler.Message, desc Description) {
	names := goFieldNames(msg.Fields)

	w.linef("// %s is the %s message.", msg.Name, msg.FullName())
	w.block("type "+msg.Name+" struct {", func() {
		for ii, field := range msg.Fields {
			w.linef("%s %s", names[ii], f.typeRef(field.Category))
		}
	}, "}")
	w.blank()
	w.linef("var _ genmsg.Message = (*%s)(nil)", msg.Name)
	w.blank()

	w.linef("// New%s returns a %s with every field set to its default.", msg.Name, msg.Name)
	w.block("func New"+msg.Name+"() *"+msg.Name+" {", func() {
		if len(msg.Fields) == 0 {
			w.linef("return &%s{}", msg.Name)
			return
		}
		w.block("return &"+msg.Name+"{", func() {
			for ii, field := range msg.Fields {
				w.linef("%s: %s,", names[ii], f.defaultExpr(field.Default))
			}
		}, "}")
	}, "}")
	w.blank()

	f.writeSerialize(w, msg, names)
	w.blank()
	f.writeDeserialize(w, msg, names)
	w.blank()
	writeMetadata(w, msg, desc)

	if len(msg.Constants) > 0 {
		w.blank()
		writeConstants(w, msg)
	}
}

func writeMetadata(w *writer, msg *compiler.Message, desc Description) {
	w.linef("// Datatype returns %q.", msg.FullName())
	w.block("func (*"+msg.Name+") Datatype() string {", func() {
		w.linef("return %q", msg.FullName())
	}, "}")
	w.blank()
	w.block("func (*"+msg.Name+") MD5Sum() string {", func() {
		w.linef("return %q", desc.MD5Sum)
	}, "}")
	w.blank()
	w.block("func (*"+msg.Name+") MessageDefinition() string {", func() {
		w.linef("return %s", strconv.Quote(desc.Definition))
	}, "}")
}

func writeConstants(w *writer, msg *compiler.Message) {
	w.block("const (", func() {
		for _, constant := range msg.Constants {
			value := constant.Value
			if constant.Category.Kind == compiler.Kind_STRING {
				value = strconv.Quote(value)
			}
			w.linef(
				"%s_%s %s = %s",
				msg.Name,
				constant.Name,
				goScalar(constant.Category.Scalar),
				value,
			)
		}
	}, ")")
}
