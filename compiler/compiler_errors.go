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

package compiler

import (
	"fmt"
	"strings"
)

// Error reports a schema the generator cannot compile. Well-formed schemas
// from the loader never produce one; an Error means the pipeline stops
// instead of emitting code with the wrong wire layout.
type Error struct {
	code    uint32
	message string
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	return fmt.Sprintf("E%d: %s", err.code, err.message)
}

func (err *Error) Code() uint32 {
	return err.code
}

func (err *Error) Message() string {
	return err.message
}

func errUnknownBuiltin(field, typeName string) error {
	return &Error{
		code:    3000,
		message: fmt.Sprintf("Field '%s' has unknown builtin type %q", field, typeName),
	}
}

func errMalformedTypeRef(field, typeName string) error {
	return &Error{
		code: 3001,
		message: fmt.Sprintf(
			"Field '%s' has malformed type reference %q (expected \"package/Name\")",
			field, typeName,
		),
	}
}

func errConstantType(name, typeName string) error {
	return &Error{
		code:    3002,
		message: fmt.Sprintf("Constant '%s' has unsupported type %q", name, typeName),
	}
}

func errConstantValue(name, typeName, value string) error {
	return &Error{
		code:    3003,
		message: fmt.Sprintf("Constant '%s' value %q is not a valid %s", name, value, typeName),
	}
}

func errDuplicateField(msg, field string) error {
	return &Error{
		code:    3004,
		message: fmt.Sprintf("Message %q declares field '%s' more than once", msg, field),
	}
}

func errInvalidName(what, name string) error {
	return &Error{
		code:    3005,
		message: fmt.Sprintf("Invalid %s name %q", what, name),
	}
}

func errDuplicateConstant(msg, name string) error {
	return &Error{
		code:    3006,
		message: fmt.Sprintf("Message %q declares constant '%s' more than once", msg, name),
	}
}

func errReservedName(name string) error {
	return &Error{
		code:    3007,
		message: fmt.Sprintf("Message name %q is reserved for the generated package index", name),
	}
}

func errConstructorName(name string) error {
	return &Error{
		code: 3008,
		message: fmt.Sprintf(
			"Message name %q has the form of the constructor generated for message %q",
			name, strings.TrimPrefix(name, "New"),
		),
	}
}
