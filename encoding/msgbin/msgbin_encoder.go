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

package msgbin

import (
	"encoding/binary"
	"math"
)

// Encoder is an append-only byte accumulator. One Encoder is owned by a
// single top-level encode call and is threaded by pointer through every
// field step, including the steps of nested messages.
//
// Encoding errors are sticky: the first one is kept and reported by Err,
// later writes are ignored.
type Encoder struct {
	buf []byte
	err error
}

// NewEncoder returns an Encoder with room for sizeHint bytes.
func NewEncoder(sizeHint int) *Encoder {
	return &Encoder{buf: make([]byte, 0, max(sizeHint, 0))}
}

// Bytes returns the accumulated encoding.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

func (e *Encoder) Len() int {
	return len(e.buf)
}

func (e *Encoder) Err() error {
	return e.err
}

// Reset discards the accumulated bytes and any error, keeping the storage.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
	e.err = nil
}

func (e *Encoder) Bool(v bool) {
	if v {
		e.Uint8(1)
	} else {
		e.Uint8(0)
	}
}

func (e *Encoder) Int8(v int8) {
	e.Uint8(uint8(v))
}

func (e *Encoder) Uint8(v uint8) {
	if e.err != nil {
		return
	}
	e.buf = append(e.buf, v)
}

func (e *Encoder) Int16(v int16) {
	e.Uint16(uint16(v))
}

func (e *Encoder) Uint16(v uint16) {
	if e.err != nil {
		return
	}
	e.buf = le.AppendUint16(e.buf, v)
}

func (e *Encoder) Int32(v int32) {
	e.Uint32(uint32(v))
}

func (e *Encoder) Uint32(v uint32) {
	if e.err != nil {
		return
	}
	e.buf = le.AppendUint32(e.buf, v)
}

func (e *Encoder) Int64(v int64) {
	e.Uint64(uint64(v))
}

func (e *Encoder) Uint64(v uint64) {
	if e.err != nil {
		return
	}
	e.buf = le.AppendUint64(e.buf, v)
}

func (e *Encoder) Float32(v float32) {
	e.Uint32(math.Float32bits(v))
}

func (e *Encoder) Float64(v float64) {
	e.Uint64(math.Float64bits(v))
}

// Length writes the uint32 count that precedes a string or a
// variable-length array.
func (e *Encoder) Length(n int) {
	if e.err != nil {
		return
	}
	if n < 0 || uint64(n) > MaxLength {
		e.err = errLengthOverflow(n)
		return
	}
	e.buf = le.AppendUint32(e.buf, uint32(n))
}

// String writes the byte length of v followed by its bytes, without a
// terminator.
func (e *Encoder) String(v string) {
	e.Length(len(v))
	if e.err != nil {
		return
	}
	e.buf = append(e.buf, v...)
}

// AppendSlice writes the elements of v back to back as one block. The
// output is identical to writing each element with its scalar method. No
// count is written; variable-length arrays call Length first.
func AppendSlice[T Fixed](e *Encoder, v []T) {
	if e.err != nil || len(v) == 0 {
		return
	}
	if bytes, ok := any(v).([]uint8); ok {
		e.buf = append(e.buf, bytes...)
		return
	}
	buf, err := binary.Append(e.buf, le, v)
	if err != nil {
		e.err = err
		return
	}
	e.buf = buf
}
