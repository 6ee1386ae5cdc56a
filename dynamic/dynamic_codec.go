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
	"go.genmsg.dev/genmsg/encoding/msgbin"
)

// Encode appends the wire encoding of msg to enc.
func (r *Registry) Encode(enc *msgbin.Encoder, msg *Message) error {
	if err := r.encodeMessage(enc, msg, 0); err != nil {
		return fmt.Errorf("dynamic: encode %s: %w", msg.Datatype(), err)
	}
	if err := enc.Err(); err != nil {
		return fmt.Errorf("dynamic: encode %s: %w", msg.Datatype(), err)
	}
	return nil
}

// Marshal returns the wire encoding of msg.
func (r *Registry) Marshal(msg *Message) ([]byte, error) {
	enc := msgbin.NewEncoder(64)
	if err := r.Encode(enc, msg); err != nil {
		return nil, err
	}
	return enc.Bytes(), nil
}

// Decode reads a message of the named type from the front of dec.
func (r *Registry) Decode(dec *msgbin.Decoder, typeName string) (*Message, error) {
	msgType, err := r.lookup(typeName)
	if err != nil {
		return nil, fmt.Errorf("dynamic: decode: %w", err)
	}
	msg, err := r.decodeMessage(dec, msgType, 0)
	if err != nil {
		return nil, fmt.Errorf("dynamic: decode %s: %w", typeName, err)
	}
	return msg, nil
}

// Unmarshal decodes a message of the named type from the front of buf and
// returns the bytes that follow it.
func (r *Registry) Unmarshal(typeName string, buf []byte) (*Message, []byte, error) {
	dec := msgbin.NewDecoder(buf)
	msg, err := r.Decode(dec, typeName)
	if err != nil {
		return nil, nil, err
	}
	return msg, dec.Remaining(), nil
}

func (r *Registry) encodeMessage(enc *msgbin.Encoder, msg *Message, depth int) error {
	if depth > MaxDepth {
		return fmt.Errorf("messages nest deeper than %d", MaxDepth)
	}
	if len(msg.Values) != len(msg.Type.Fields) {
		return fmt.Errorf("have %d values for %d fields", len(msg.Values), len(msg.Type.Fields))
	}
	for ii, field := range msg.Type.Fields {
		if err := r.encodeValue(enc, field.Category, msg.Values[ii], depth); err != nil {
			return fmt.Errorf("%s: %w", field.Name, err)
		}
	}
	return nil
}

func (r *Registry) encodeValue(enc *msgbin.Encoder, cat *compiler.Category, value any, depth int) error {
	switch cat.Kind {
	case compiler.Kind_COMPLEX:
		if err := check(cat, value); err != nil {
			return err
		}
		return r.encodeMessage(enc, value.(*Message), depth+1)
	case compiler.Kind_FIXED_ARRAY, compiler.Kind_VARIABLE_ARRAY, compiler.Kind_COMPLEX_ARRAY:
		elems, ok := value.([]any)
		if !ok {
			return fmt.Errorf("want []any, got %T", value)
		}
		if cat.HasLength() {
			enc.Length(len(elems))
		} else if len(elems) != cat.Len {
			return fmt.Errorf("want %d elements, got %d", cat.Len, len(elems))
		}
		for ii, elem := range elems {
			if err := r.encodeValue(enc, cat.Elem, elem, depth); err != nil {
				return fmt.Errorf("[%d]: %w", ii, err)
			}
		}
		return nil
	}

	if err := check(cat, value); err != nil {
		return err
	}
	switch value := value.(type) {
	case bool:
		enc.Bool(value)
	case int8:
		enc.Int8(value)
	case uint8:
		enc.Uint8(value)
	case int16:
		enc.Int16(value)
	case uint16:
		enc.Uint16(value)
	case int32:
		enc.Int32(value)
	case uint32:
		enc.Uint32(value)
	case int64:
		enc.Int64(value)
	case uint64:
		enc.Uint64(value)
	case float32:
		enc.Float32(value)
	case float64:
		enc.Float64(value)
	case string:
		enc.String(value)
	case genmsg.Time:
		value.Serialize(enc)
	case genmsg.Duration:
		value.Serialize(enc)
	}
	return nil
}

func (r *Registry) decodeMessage(dec *msgbin.Decoder, msgType *compiler.Message, depth int) (*Message, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("messages nest deeper than %d", MaxDepth)
	}
	msg := &Message{
		Type:   msgType,
		Values: make([]any, len(msgType.Fields)),
	}
	for ii, field := range msgType.Fields {
		value, err := r.decodeValue(dec, field.Category, depth)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field.Name, err)
		}
		msg.Values[ii] = value
	}
	return msg, nil
}

// isEmpty reports whether values of cat encode to zero bytes. A count read
// from the wire is the only bound on how many such values a decoder builds.
func (r *Registry) isEmpty(cat *compiler.Category, visiting map[string]bool) bool {
	switch cat.Kind {
	case compiler.Kind_FIXED_ARRAY, compiler.Kind_COMPLEX_ARRAY:
		if cat.HasLength() {
			return false
		}
		return cat.Len == 0 || r.isEmpty(cat.Elem, visiting)
	case compiler.Kind_COMPLEX:
		name := cat.FullName()
		msgType, err := r.lookup(name)
		if err != nil || visiting[name] {
			return false
		}
		if visiting == nil {
			visiting = make(map[string]bool)
		}
		visiting[name] = true
		defer delete(visiting, name)
		for _, field := range msgType.Fields {
			if !r.isEmpty(field.Category, visiting) {
				return false
			}
		}
		return true
	}
	return false
}

func (r *Registry) decodeValue(dec *msgbin.Decoder, cat *compiler.Category, depth int) (any, error) {
	switch cat.Kind {
	case compiler.Kind_COMPLEX:
		msgType, err := r.lookup(cat.FullName())
		if err != nil {
			return nil, err
		}
		return r.decodeMessage(dec, msgType, depth+1)
	case compiler.Kind_FIXED_ARRAY, compiler.Kind_VARIABLE_ARRAY, compiler.Kind_COMPLEX_ARRAY:
		n := cat.Len
		if cat.HasLength() {
			var err error
			if n, err = dec.Length(); err != nil {
				return nil, err
			}
		}
		if n > MaxEmptyElements && r.isEmpty(cat.Elem, nil) {
			return nil, fmt.Errorf("%d elements of %s exceed the limit of %d for types with no encoded bytes",
				n, cat.Elem.FullName(), MaxEmptyElements)
		}
		elems := make([]any, 0, dec.Capacity(n))
		for ii := range n {
			elem, err := r.decodeValue(dec, cat.Elem, depth)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", ii, err)
			}
			elems = append(elems, elem)
		}
		return elems, nil
	}

	switch cat.Scalar {
	case "bool":
		return dec.Bool()
	case "int8":
		return dec.Int8()
	case "uint8", "byte", "char":
		return dec.Uint8()
	case "int16":
		return dec.Int16()
	case "uint16":
		return dec.Uint16()
	case "int32":
		return dec.Int32()
	case "uint32":
		return dec.Uint32()
	case "int64":
		return dec.Int64()
	case "uint64":
		return dec.Uint64()
	case "float32":
		return dec.Float32()
	case "float64":
		return dec.Float64()
	case "string":
		return dec.String()
	case "time":
		var t genmsg.Time
		err := t.Deserialize(dec)
		return t, err
	case "duration":
		var d genmsg.Duration
		err := d.Deserialize(dec)
		return d, err
	}
	panic(fmt.Sprintf("decodeValue: unhandled scalar %q", cat.Scalar))
}
