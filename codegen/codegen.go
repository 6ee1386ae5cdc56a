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

// Package codegen turns compiled message and service schemas into Go source
// files, and maintains the generated index files that let other code
// discover them.
//
// Generated files are laid out per package:
//
//	<pkg>/genmsg_index.go        aggregate of msg and srv
//	<pkg>/msg/genmsg_index.go    Messages registry
//	<pkg>/msg/<Name>.go          one message
//	<pkg>/srv/genmsg_index.go    Services registry
//	<pkg>/srv/<Name>.go          one service (request and response)
package codegen

import (
	"context"
	"errors"
	"path"

	"github.com/rs/zerolog"

	"go.genmsg.dev/genmsg/compiler"
	"go.genmsg.dev/genmsg/msgspec"
)

const (
	runtimeImportPath = "go.genmsg.dev/genmsg"
	msgbinImportPath  = "go.genmsg.dev/genmsg/encoding/msgbin"

	msgDir    = "msg"
	srvDir    = "srv"
	indexFile = "genmsg_index.go"

	generatedHeader = "// Code generated by genmsg. DO NOT EDIT."
)

type GenerateOption interface {
	apply(*GenerateOptions)
}

type generateOption func(*GenerateOptions)

func (f generateOption) apply(opts *GenerateOptions) { f(opts) }

type GenerateOptions struct {
	roots               []compiler.SearchRoot
	importPath          string
	defaultImportPrefix string
	definitions         Definitions
	logger              zerolog.Logger
}

// WithSearchRoots sets the ordered roots searched for the packages of
// referenced message types.
func WithSearchRoots(roots ...compiler.SearchRoot) GenerateOption {
	return generateOption(func(opts *GenerateOptions) {
		opts.roots = roots
	})
}

// WithImportPath sets the Go import path of the package directory being
// generated, for example "example.com/gen/demo". Its msg and srv
// subdirectories are importable below it.
func WithImportPath(importPath string) GenerateOption {
	return generateOption(func(opts *GenerateOptions) {
		opts.importPath = importPath
	})
}

// WithDefaultImportPrefix sets the prefix used to import packages that no
// search root contains. It defaults to the parent of the import path.
func WithDefaultImportPrefix(prefix string) GenerateOption {
	return generateOption(func(opts *GenerateOptions) {
		opts.defaultImportPrefix = prefix
	})
}

// WithDefinitions sets the provider of checksums and definition texts.
func WithDefinitions(definitions Definitions) GenerateOption {
	return generateOption(func(opts *GenerateOptions) {
		opts.definitions = definitions
	})
}

func WithLogger(logger zerolog.Logger) GenerateOption {
	return generateOption(func(opts *GenerateOptions) {
		opts.logger = logger
	})
}

type Generator struct {
	opts GenerateOptions
}

func New(opts ...GenerateOption) *Generator {
	g := &Generator{
		opts: GenerateOptions{
			definitions: Placeholder(),
			logger:      zerolog.Nop(),
		},
	}
	for _, opt := range opts {
		opt.apply(&g.opts)
	}
	if g.opts.defaultImportPrefix == "" && g.opts.importPath != "" {
		g.opts.defaultImportPrefix = path.Dir(g.opts.importPath)
	}
	return g
}

// Artifact is one rendered source file.
type Artifact struct {
	// Name is the emitted type name, which is also the file's base name.
	Name     string
	Source   []byte
	Warnings []*compiler.Warning
	// Path is set once the artifact has been written.
	Path string
}

// Description is the metadata attached to a generated type that depends on
// a canonical form of its schema.
type Description struct {
	MD5Sum     string
	Definition string
}

// Definitions computes descriptions of compiled messages.
type Definitions interface {
	Describe(ctx context.Context, msg *compiler.Message) (Description, error)
}

// PlaceholderMD5Sum is the checksum reported by the placeholder provider.
const PlaceholderMD5Sum = "*"

type placeholder struct{}

// Placeholder returns a Definitions that describes every message with
// PlaceholderMD5Sum and an empty definition.
func Placeholder() Definitions {
	return placeholder{}
}

func (placeholder) Describe(context.Context, *compiler.Message) (Description, error) {
	return Description{MD5Sum: PlaceholderMD5Sum}, nil
}

func (g *Generator) compile(
	spec *msgspec.MessageSpec,
	opts ...compiler.CompileOption,
) (*compiler.Message, []*compiler.Warning, error) {
	opts = append(opts, compiler.WithSearchRoots(g.opts.roots...))
	result := compiler.Compile(spec, opts...)
	for _, warn := range result.Warnings {
		g.opts.logger.Warn().
			Uint32("code", warn.Code()).
			Str("type", spec.FullName()).
			Msg(warn.Message())
	}
	if len(result.Errors) > 0 {
		errs := make([]error, len(result.Errors))
		for ii, err := range result.Errors {
			errs[ii] = err
		}
		return nil, result.Warnings, errors.Join(errs...)
	}
	return result.Message, result.Warnings, nil
}
