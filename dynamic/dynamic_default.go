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

package dynamic

import (
	"fmt"

	"go.genmsg.dev/genmsg"
	"go.genmsg.dev/genmsg/compiler"
)

// New returns a message of the named type with every field set to its
// default, following the same rules as generated constructors.
func (r *Registry) New(typeName string) (*Message, error) {
	msg, err := r.newMessage(typeName, 0)
	if err != nil {
		return nil, fmt.Errorf("dynamic: new %s: %w", typeName, err)
	}
	return msg, nil
}

func (r *Registry) newMessage(typeName string, depth int) (*Message, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("defaults nest deeper than %d messages", MaxDepth)
	}
	msgType, err := r.lookup(typeName)
	if err != nil {
		return nil, err
	}
	msg := &Message{
		Type:   msgType,
		Values: make([]any, len(msgType.Fields)),
	}
	for ii, field := range msgType.Fields {
		value, err := r.defaultValue(field.Default, depth)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field.Name, err)
		}
		msg.Values[ii] = value
	}
	return msg, nil
}

func (r *Registry) defaultValue(def compiler.Default, depth int) (any, error) {
	cat := def.Category
	switch cat.Kind {
	case compiler.Kind_COMPLEX:
		return r.newMessage(cat.FullName(), depth+1)
	case compiler.Kind_VARIABLE_ARRAY:
		return []any{}, nil
	case compiler.Kind_FIXED_ARRAY, compiler.Kind_COMPLEX_ARRAY:
		elems := make([]any, len(def.Elems))
		for ii, elemDef := range def.Elems {
			elem, err := r.defaultValue(elemDef, depth)
			if err != nil {
				return nil, err
			}
			elems[ii] = elem
		}
		return elems, nil
	}
	return zeroScalar(cat), nil
}

func zeroScalar(cat *compiler.Category) any {
	switch cat.Scalar {
	case "bool":
		return false
	case "int8":
		return int8(0)
	case "uint8", "byte", "char":
		return uint8(0)
	case "int16":
		return int16(0)
	case "uint16":
		return uint16(0)
	case "int32":
		return int32(0)
	case "uint32":
		return uint32(0)
	case "int64":
		return int64(0)
	case "uint64":
		return uint64(0)
	case "float32":
		return float32(0)
	case "float64":
		return float64(0)
	case "string":
		return ""
	case "time":
		return genmsg.Time{}
	case "duration":
		return genmsg.Duration{}
	}
	panic(fmt.Sprintf("zeroScalar: unhandled scalar %q", cat.Scalar))
}
