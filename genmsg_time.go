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

package genmsg

import (
	"fmt"
	"time"

	"go.genmsg.dev/genmsg/encoding/msgbin"
)

// Time is a point in time as seconds and nanoseconds since the Unix epoch.
type Time struct {
	Sec  uint32
	Nsec uint32
}

// NewTime converts t, truncating to the range of the wire representation.
func NewTime(t time.Time) Time {
	return Time{
		Sec:  uint32(t.Unix()),
		Nsec: uint32(t.Nanosecond()),
	}
}

func (t Time) Time() time.Time {
	return time.Unix(int64(t.Sec), int64(t.Nsec))
}

func (t Time) String() string {
	return fmt.Sprintf("%d.%09d", t.Sec, t.Nsec)
}

func (t *Time) Serialize(enc *msgbin.Encoder) *msgbin.Encoder {
	enc.Uint32(t.Sec)
	enc.Uint32(t.Nsec)
	return enc
}

func (t *Time) Deserialize(dec *msgbin.Decoder) error {
	var err error
	if t.Sec, err = dec.Uint32(); err != nil {
		return err
	}
	t.Nsec, err = dec.Uint32()
	return err
}

// Duration is a time span as seconds and nanoseconds.
type Duration struct {
	Sec  uint32
	Nsec uint32
}

// NewDuration converts d, which must not be negative.
func NewDuration(d time.Duration) Duration {
	return Duration{
		Sec:  uint32(d / time.Second),
		Nsec: uint32(d % time.Second),
	}
}

func (d Duration) Duration() time.Duration {
	return time.Duration(d.Sec)*time.Second + time.Duration(d.Nsec)
}

func (d Duration) String() string {
	return d.Duration().String()
}

func (d *Duration) Serialize(enc *msgbin.Encoder) *msgbin.Encoder {
	enc.Uint32(d.Sec)
	enc.Uint32(d.Nsec)
	return enc
}

func (d *Duration) Deserialize(dec *msgbin.Decoder) error {
	var err error
	if d.Sec, err = dec.Uint32(); err != nil {
		return err
	}
	d.Nsec, err = dec.Uint32()
	return err
}
