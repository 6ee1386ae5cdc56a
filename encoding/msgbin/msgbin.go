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

// Package msgbin implements the little-endian, length-prefixed binary wire
// format spoken by generated message types.
//
//	integers   little-endian, two's complement when signed
//	bool       one byte, 0 or 1
//	floats     IEEE-754, little-endian
//	string     uint32 byte length, then the raw bytes
//	time       uint32 seconds, then uint32 nanoseconds
//	T[N]       exactly N elements
//	T[]        uint32 element count, then the elements
//	message    fields inline, in declaration order
package msgbin

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// MaxLength is the largest string byte length or array element count that
// fits in a length prefix.
const MaxLength = math.MaxUint32

// Fixed is the set of element types that have a bulk array representation.
type Fixed interface {
	bool | int8 | uint8 | int16 | uint16 | int32 | uint32 | float32 | float64
}

func errShortBuffer(want, have int) error {
	return fmt.Errorf("msgbin: need %d bytes, %d remaining: %w", want, have, io.ErrUnexpectedEOF)
}

func errLengthOverflow(n int) error {
	return fmt.Errorf("msgbin: length %d exceeds the uint32 length prefix", n)
}

var le = binary.LittleEndian
