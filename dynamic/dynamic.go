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

// Package dynamic encodes and decodes messages straight from their
// schemas, without generated code. Values use the same classification and
// the same wire format as generated types, so the two are interchangeable
// on the wire.
//
// Field values are represented as:
//
//	int8 ... uint64, float32, float64, bool, string   the matching Go type
//	byte, char                                        uint8
//	time, duration                                    genmsg.Time, genmsg.Duration
//	nested message                                    *Message
//	array                                             []any
package dynamic

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"go.genmsg.dev/genmsg/compiler"
	"go.genmsg.dev/genmsg/msgspec"
)

// MaxDepth bounds the nesting of messages built or decoded by a Registry.
const MaxDepth = 64

// MaxEmptyElements bounds the decoded length of an array whose element type
// has no encoded bytes, such as a message with no fields.
const MaxEmptyElements = 1 << 16

// Registry holds compiled message types by full name.
type Registry struct {
	messages map[string]*compiler.Message
}

func NewRegistry() *Registry {
	return &Registry{
		messages: make(map[string]*compiler.Message),
	}
}

// AddMessage compiles spec and registers it as "package/ShortName".
func (r *Registry) AddMessage(spec *msgspec.MessageSpec) error {
	return r.add(spec)
}

// AddService registers the two halves of spec as "package/NameRequest"
// and "package/NameResponse".
func (r *Registry) AddService(spec *msgspec.ServiceSpec) error {
	if err := r.add(&spec.Request, compiler.WithName(spec.ShortName+"Request")); err != nil {
		return err
	}
	return r.add(&spec.Response, compiler.WithName(spec.ShortName+"Response"))
}

func (r *Registry) add(spec *msgspec.MessageSpec, opts ...compiler.CompileOption) error {
	result := compiler.Compile(spec, opts...)
	if len(result.Errors) > 0 {
		errs := make([]error, len(result.Errors))
		for ii, err := range result.Errors {
			errs[ii] = err
		}
		return fmt.Errorf("dynamic: compile %s: %w", spec.FullName(), errors.Join(errs...))
	}
	r.messages[result.Message.FullName()] = result.Message
	return nil
}

func (r *Registry) Lookup(typeName string) (*compiler.Message, bool) {
	msg, ok := r.messages[typeName]
	return msg, ok
}

// Types returns the registered type names in sorted order.
func (r *Registry) Types() []string {
	return slices.Sorted(maps.Keys(r.messages))
}

func (r *Registry) lookup(typeName string) (*compiler.Message, error) {
	msg, ok := r.messages[typeName]
	if !ok {
		return nil, fmt.Errorf("unknown message type %q", typeName)
	}
	return msg, nil
}

// Message is a decoded or constructed message value.
type Message struct {
	Type *compiler.Message
	// Values holds one value per field of Type, in field order.
	Values []any
}

func (m *Message) Datatype() string {
	return m.Type.FullName()
}

func (m *Message) fieldIndex(name string) int {
	for ii, field := range m.Type.Fields {
		if field.Name == name {
			return ii
		}
	}
	return -1
}

// Get returns the value of the named field.
func (m *Message) Get(name string) (any, bool) {
	ii := m.fieldIndex(name)
	if ii < 0 {
		return nil, false
	}
	return m.Values[ii], true
}

// Set replaces the value of the named field. The value is checked against
// the field's category.
func (m *Message) Set(name string, value any) error {
	ii := m.fieldIndex(name)
	if ii < 0 {
		return fmt.Errorf("dynamic: %s has no field %q", m.Datatype(), name)
	}
	if err := check(m.Type.Fields[ii].Category, value); err != nil {
		return fmt.Errorf("dynamic: %s.%s: %w", m.Datatype(), name, err)
	}
	m.Values[ii] = value
	return nil
}

// check validates the shape of value without descending into nested
// messages, whose fields are checked when they are encoded.
func check(cat *compiler.Category, value any) error {
	switch cat.Kind {
	case compiler.Kind_COMPLEX:
		msg, ok := value.(*Message)
		if !ok {
			return fmt.Errorf("want *dynamic.Message, got %T", value)
		}
		if msg.Datatype() != cat.FullName() {
			return fmt.Errorf("want message %s, got %s", cat.FullName(), msg.Datatype())
		}
		return nil
	case compiler.Kind_FIXED_ARRAY, compiler.Kind_VARIABLE_ARRAY, compiler.Kind_COMPLEX_ARRAY:
		elems, ok := value.([]any)
		if !ok {
			return fmt.Errorf("want []any, got %T", value)
		}
		if cat.Len > 0 && len(elems) != cat.Len {
			return fmt.Errorf("want %d elements, got %d", cat.Len, len(elems))
		}
		for ii, elem := range elems {
			if err := check(cat.Elem, elem); err != nil {
				return fmt.Errorf("[%d]: %w", ii, err)
			}
		}
		return nil
	}
	want := zeroScalar(cat)
	if reflect.TypeOf(want) != reflect.TypeOf(value) {
		return fmt.Errorf("want %T, got %T", want, value)
	}
	return nil
}
