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

// Decoder is a view over the bytes not yet consumed. Each read takes its
// bytes from the front of the view; nested messages read through the same
// Decoder, so the remaining view after a nested read is where the
// enclosing message continues.
type Decoder struct {
	buf []byte
}

func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Remaining returns the unconsumed bytes.
func (d *Decoder) Remaining() []byte {
	return d.buf
}

// Len returns the number of unconsumed bytes.
func (d *Decoder) Len() int {
	return len(d.buf)
}

// Capacity bounds a decoded element count by the bytes left, for use as an
// allocation hint. A corrupt count cannot force a large allocation this
// way.
func (d *Decoder) Capacity(n int) int {
	return min(n, len(d.buf))
}

func (d *Decoder) next(n int) ([]byte, error) {
	if n > len(d.buf) {
		return nil, errShortBuffer(n, len(d.buf))
	}
	out := d.buf[:n:n]
	d.buf = d.buf[n:]
	return out, nil
}

// Bool reads one byte. Any non-zero byte is true, matching the bulk path.
func (d *Decoder) Bool() (bool, error) {
	v, err := d.Uint8()
	return v != 0, err
}

func (d *Decoder) Int8() (int8, error) {
	v, err := d.Uint8()
	return int8(v), err
}

func (d *Decoder) Uint8() (uint8, error) {
	buf, err := d.next(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (d *Decoder) Int16() (int16, error) {
	v, err := d.Uint16()
	return int16(v), err
}

func (d *Decoder) Uint16() (uint16, error) {
	buf, err := d.next(2)
	if err != nil {
		return 0, err
	}
	return le.Uint16(buf), nil
}

func (d *Decoder) Int32() (int32, error) {
	v, err := d.Uint32()
	return int32(v), err
}

func (d *Decoder) Uint32() (uint32, error) {
	buf, err := d.next(4)
	if err != nil {
		return 0, err
	}
	return le.Uint32(buf), nil
}

func (d *Decoder) Int64() (int64, error) {
	v, err := d.Uint64()
	return int64(v), err
}

func (d *Decoder) Uint64() (uint64, error) {
	buf, err := d.next(8)
	if err != nil {
		return 0, err
	}
	return le.Uint64(buf), nil
}

func (d *Decoder) Float32() (float32, error) {
	v, err := d.Uint32()
	return math.Float32frombits(v), err
}

func (d *Decoder) Float64() (float64, error) {
	v, err := d.Uint64()
	return math.Float64frombits(v), err
}

// Length reads the uint32 count that precedes a string or a variable-length
// array.
func (d *Decoder) Length() (int, error) {
	n, err := d.Uint32()
	return int(n), err
}

func (d *Decoder) String() (string, error) {
	n, err := d.Length()
	if err != nil {
		return "", err
	}
	buf, err := d.next(n)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// ReadSlice reads n elements written by AppendSlice. The element count must
// already have been consumed.
func ReadSlice[T Fixed](d *Decoder, n int) ([]T, error) {
	var zero T
	size := binary.Size(zero)
	if n < 0 || n > len(d.buf)/size {
		return nil, errShortBuffer(n*size, len(d.buf))
	}
	out := make([]T, n)
	if err := ReadArray(d, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadArray fills dst with len(dst) elements written by AppendSlice.
func ReadArray[T Fixed](d *Decoder, dst []T) error {
	if len(dst) == 0 {
		return nil
	}
	size := binary.Size(dst)
	buf, err := d.next(size)
	if err != nil {
		return err
	}
	if bytes, ok := any(dst).([]uint8); ok {
		copy(bytes, buf)
		return nil
	}
	_, err = binary.Decode(buf, le, dst)
	return err
}
