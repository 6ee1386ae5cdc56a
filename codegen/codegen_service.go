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

	"go.genmsg.dev/genmsg/compiler"
	"go.genmsg.dev/genmsg/msgspec"
)

// RenderService compiles both halves of spec and renders them, with the
// composite service value, into one Go source file.
//
// The response is resolved starting from the request's dependencies, so a
// type used by both halves is imported once.
func (g *Generator) RenderService(ctx context.Context, spec *msgspec.ServiceSpec) (*Artifact, error) {
	request, warnings, err := g.compile(
		&spec.Request,
		compiler.WithName(spec.ShortName+"Request"),
	)
	if err != nil {
		return nil, err
	}
	response, responseWarnings, err := g.compile(
		&spec.Response,
		compiler.WithName(spec.ShortName+"Response"),
		compiler.WithDependencies(request.Deps),
	)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, responseWarnings...)

	f := newFileCtx(g, spec.Package(), srvDir)
	if err := f.addDeps(response.Deps); err != nil {
		return nil, err
	}

	w := &writer{}
	writeFileHeader(w, spec.FullName(), spec.Package(), srvDir)
	f.writeImports(w)
	w.blank()
	for _, half := range []*compiler.Message{request, response} {
		desc, err := g.opts.definitions.Describe(ctx, half)
		if err != nil {
			return nil, fmt.Errorf("codegen: describe %s: %w", half.FullName(), err)
		}
		f.writeComponent(w, half, desc)
		w.blank()
	}
	writeServiceValue(w, spec, request, response)

	src, err := w.source(spec.ShortName)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Name:     spec.ShortName,
		Source:   src,
		Warnings: warnings,
	}, nil
}

func writeServiceValue(w *writer, spec *msgspec.ServiceSpec, request, response *compiler.Message) {
	w.linef("// %s is the %s service.", spec.ShortName, spec.FullName())
	w.block("var "+spec.ShortName+" = genmsg.Service{", func() {
		w.linef("Datatype: %q,", spec.FullName())
		w.linef("NewRequest: func() genmsg.Message { return New%s() },", request.Name)
		w.linef("NewResponse: func() genmsg.Message { return New%s() },", response.Name)
	}, "}")
}
