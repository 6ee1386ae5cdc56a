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

// Package compiler classifies the fields of a message schema and resolves
// the message types it depends on, producing the input of the code
// generators.
package compiler

import (
	"math"
	"strconv"
	"strings"

	"go.genmsg.dev/genmsg/msgspec"
)

type CompileOption interface {
	apply(*CompileOptions)
}

type compileOption func(*CompileOptions)

func (f compileOption) apply(opts *CompileOptions) { f(opts) }

type CompileOptions struct {
	roots []SearchRoot
	deps  *Dependencies
	name  string
}

// WithSearchRoots sets the ordered roots searched for external packages.
func WithSearchRoots(roots ...SearchRoot) CompileOption {
	return compileOption(func(opts *CompileOptions) {
		opts.roots = roots
	})
}

// WithDependencies seeds dependency resolution with a set produced by an
// earlier compilation, so types it already found are not recorded again.
func WithDependencies(deps *Dependencies) CompileOption {
	return compileOption(func(opts *CompileOptions) {
		opts.deps = deps
	})
}

// WithName overrides the emitted type name, which defaults to the
// message's short name.
func WithName(name string) CompileOption {
	return compileOption(func(opts *CompileOptions) {
		opts.name = name
	})
}

// Message is a compiled message: every field classified, every default
// computed, every dependency resolved.
type Message struct {
	Spec      *msgspec.MessageSpec
	Package   string
	ShortName string
	// Name is the emitted type name.
	Name      string
	Fields    []*Field
	Constants []*Constant
	Deps      *Dependencies
}

// FullName returns the canonical "package/Name" type name.
func (m *Message) FullName() string {
	return m.Package + "/" + m.Name
}

type Field struct {
	Name     string
	Spec     msgspec.FieldSpec
	Category *Category
	Default  Default
}

type Constant struct {
	// Name is upper-cased.
	Name     string
	Type     string
	Category *Category
	// Value is the canonical literal: decimal integers, shortest
	// round-tripping floats, "true" / "false", or the raw string.
	Value string
}

type CompileResult struct {
	Message *Message

	Errors   []*Error
	Warnings []*Warning
}

func Compile(spec *msgspec.MessageSpec, opts ...CompileOption) CompileResult {
	return NewCompileOptions(opts...).Compile(spec)
}

func NewCompileOptions(opts ...CompileOption) *CompileOptions {
	compileOptions := &CompileOptions{}
	for _, opt := range opts {
		opt.apply(compileOptions)
	}
	return compileOptions
}

func (opts *CompileOptions) Compile(spec *msgspec.MessageSpec) CompileResult {
	c := compiler{
		opts: opts,
		spec: spec,
	}
	msg := c.compileMessage()
	if len(c.errors) > 0 {
		return CompileResult{
			Errors:   c.errors,
			Warnings: c.warnings,
		}
	}
	return CompileResult{
		Message:  msg,
		Warnings: c.warnings,
	}
}

type compiler struct {
	opts     *CompileOptions
	spec     *msgspec.MessageSpec
	errors   []*Error
	warnings []*Warning
}

func (c *compiler) err(err error) {
	c.errors = append(c.errors, err.(*Error))
}

func (c *compiler) compileMessage() *Message {
	spec := c.spec
	name := spec.ShortName
	if c.opts.name != "" {
		name = c.opts.name
	}
	if !isIdent(spec.Package) {
		c.err(errInvalidName("package", spec.Package))
	}
	if !isIdent(name) {
		c.err(errInvalidName("message", name))
	} else if _, reserved := reservedNames[name]; reserved {
		c.err(errReservedName(name))
	} else if isConstructorName(name) {
		c.err(errConstructorName(name))
	}

	msg := &Message{
		Spec:      spec,
		Package:   spec.Package,
		ShortName: spec.ShortName,
		Name:      name,
	}

	seen := make(map[string]struct{}, len(spec.Fields))
	for ii := range spec.Fields {
		fieldSpec := spec.Fields[ii]
		if !isIdent(fieldSpec.Name) {
			c.err(errInvalidName("field", fieldSpec.Name))
			continue
		}
		if _, dup := seen[fieldSpec.Name]; dup {
			c.err(errDuplicateField(spec.FullName(), fieldSpec.Name))
			continue
		}
		seen[fieldSpec.Name] = struct{}{}

		cat, err := Classify(&fieldSpec)
		if err != nil {
			c.err(err)
			continue
		}
		if cat.IsComplex() && !(isIdent(cat.Package) && isIdent(cat.Name)) {
			c.err(errMalformedTypeRef(fieldSpec.Name, fieldSpec.BaseType))
			continue
		}
		msg.Fields = append(msg.Fields, &Field{
			Name:     fieldSpec.Name,
			Spec:     fieldSpec,
			Category: cat,
			Default:  defaultFor(cat, spec.Package),
		})
	}

	seenConsts := make(map[string]struct{}, len(spec.Constants))
	for _, constSpec := range spec.Constants {
		constant, err := compileConstant(constSpec)
		if err != nil {
			c.err(err)
			continue
		}
		if _, dup := seenConsts[constant.Name]; dup {
			c.err(errDuplicateConstant(spec.FullName(), constant.Name))
			continue
		}
		seenConsts[constant.Name] = struct{}{}
		msg.Constants = append(msg.Constants, constant)
	}

	resolver := &Resolver{Roots: c.opts.roots}
	deps, warnings := resolver.Resolve(spec, c.opts.deps)
	msg.Deps = deps
	c.warnings = append(c.warnings, warnings...)
	return msg
}

// reservedNames are package-level identifiers of the generated index files.
var reservedNames = map[string]struct{}{
	"Messages": {},
	"Services": {},
}

// isConstructorName reports whether a message type named name would collide
// with the NewX constructor of a message X in the same package. Messages are
// generated one at a time, so the name is rejected whether or not X exists.
func isConstructorName(name string) bool {
	rest, ok := strings.CutPrefix(name, "New")
	return ok && rest != "" && 'A' <= rest[0] && rest[0] <= 'Z'
}

func compileConstant(spec msgspec.Constant) (*Constant, error) {
	if !isIdent(spec.Name) {
		return nil, errInvalidName("constant", spec.Name)
	}
	cat, ok := builtinCategories[spec.Type]
	if !ok || cat.Kind == Kind_TIME {
		return nil, errConstantType(spec.Name, spec.Type)
	}
	constant := &Constant{
		Name:     strings.ToUpper(spec.Name),
		Type:     spec.Type,
		Category: &cat,
	}
	value := strings.TrimSpace(spec.Value)
	switch cat.Kind {
	case Kind_STRING:
		constant.Value = spec.Value
	case Kind_BOOL:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, errConstantValue(spec.Name, spec.Type, spec.Value)
		}
		constant.Value = strconv.FormatBool(b)
	case Kind_FLOAT:
		f, err := strconv.ParseFloat(value, cat.Width*8)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, errConstantValue(spec.Name, spec.Type, spec.Value)
		}
		constant.Value = strconv.FormatFloat(f, 'g', -1, cat.Width*8)
	case Kind_INT:
		if cat.Signed {
			n, err := strconv.ParseInt(value, 0, cat.Width*8)
			if err != nil {
				return nil, errConstantValue(spec.Name, spec.Type, spec.Value)
			}
			constant.Value = strconv.FormatInt(n, 10)
		} else {
			n, err := strconv.ParseUint(value, 0, cat.Width*8)
			if err != nil {
				return nil, errConstantValue(spec.Name, spec.Type, spec.Value)
			}
			constant.Value = strconv.FormatUint(n, 10)
		}
	default:
		panic("unreachable")
	}
	return constant, nil
}

func isIdent(name string) bool {
	if name == "" {
		return false
	}
	for ii, c := range name {
		switch {
		case c == '_':
		case 'a' <= c && c <= 'z':
		case 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && ii > 0:
		default:
			return false
		}
	}
	return true
}
