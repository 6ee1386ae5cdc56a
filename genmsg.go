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

// Package genmsg is the runtime support for message types produced by the
// genmsg code generator.
package genmsg

import (
	"fmt"

	"go.genmsg.dev/genmsg/encoding/msgbin"
)

// Message is implemented by every generated message type and by every half
// of a generated service.
type Message interface {
	Serialize(enc *msgbin.Encoder) *msgbin.Encoder
	Deserialize(dec *msgbin.Decoder) error

	// Datatype returns the canonical "package/ShortName" type name.
	Datatype() string
	MD5Sum() string
	MessageDefinition() string
}

// Service pairs the request and response types of a generated service.
type Service struct {
	Datatype    string
	NewRequest  func() Message
	NewResponse func() Message
}

// Marshal returns the wire encoding of msg.
func Marshal(msg Message) ([]byte, error) {
	enc := msg.Serialize(msgbin.NewEncoder(64))
	if err := enc.Err(); err != nil {
		return nil, fmt.Errorf("genmsg: encode %s: %w", msg.Datatype(), err)
	}
	return enc.Bytes(), nil
}

// Unmarshal decodes msg from the front of buf and returns the bytes that
// follow it.
func Unmarshal(buf []byte, msg Message) ([]byte, error) {
	dec := msgbin.NewDecoder(buf)
	if err := msg.Deserialize(dec); err != nil {
		return nil, fmt.Errorf("genmsg: decode %s: %w", msg.Datatype(), err)
	}
	return dec.Remaining(), nil
}

// UnmarshalExact is like Unmarshal but fails if any bytes follow msg.
func UnmarshalExact(buf []byte, msg Message) error {
	rest, err := Unmarshal(buf, msg)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return fmt.Errorf("genmsg: decode %s: %d trailing bytes", msg.Datatype(), len(rest))
	}
	return nil
}
