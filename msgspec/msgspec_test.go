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

package msgspec_test

import (
	"testing"

	"go.genmsg.dev/genmsg/internal/testutil"
	"go.genmsg.dev/genmsg/msgspec"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		token string
		want  msgspec.FieldSpec
	}{
		{"float64", msgspec.FieldSpec{
			Name: "f", Type: "float64", IsBuiltin: true, BaseType: "float64",
		}},
		{"uint8[]", msgspec.FieldSpec{
			Name: "f", Type: "uint8[]", IsArray: true, IsBuiltin: true, BaseType: "uint8",
		}},
		{"string[4]", msgspec.FieldSpec{
			Name: "f", Type: "string[4]", IsArray: true, ArrayLen: 4, IsBuiltin: true, BaseType: "string",
		}},
		{"Point2D", msgspec.FieldSpec{
			Name: "f", Type: "Point2D", BaseType: "demo/Point2D",
		}},
		{"geometry_msgs/Pose[2]", msgspec.FieldSpec{
			Name: "f", Type: "geometry_msgs/Pose[2]", IsArray: true, ArrayLen: 2, BaseType: "geometry_msgs/Pose",
		}},
		{"Header", msgspec.FieldSpec{
			Name: "f", Type: "Header", BaseType: "std_msgs/Header",
		}},
	}
	for _, test := range tests {
		t.Run(test.token, func(t *testing.T) {
			got, err := msgspec.ParseField("demo", "f", test.token)
			testutil.AssertNoError(t, err)
			testutil.ExpectEq(t, test.want, got)
		})
	}
}

func TestParseField_Errors(t *testing.T) {
	for _, token := range []string{"", "uint8[", "uint8[x]", "uint8[0]", "uint8[-1]", "[3]"} {
		t.Run(token, func(t *testing.T) {
			_, err := msgspec.ParseField("demo", "f", token)
			testutil.ExpectError(t, err)
		})
	}
}

func TestFieldSpec_Element(t *testing.T) {
	field, err := msgspec.ParseField("demo", "f", "int32[3]")
	testutil.AssertNoError(t, err)
	testutil.ExpectTrue(t, field.IsFixedArray())

	elem := field.Element()
	testutil.ExpectFalse(t, elem.IsArray)
	testutil.ExpectEq(t, 0, elem.ArrayLen)
	testutil.ExpectEq(t, "int32", elem.Type)

	// The receiver is unchanged.
	testutil.ExpectEq(t, 3, field.ArrayLen)
}

func TestFieldSpec_SplitBaseType(t *testing.T) {
	field := msgspec.FieldSpec{BaseType: "geometry_msgs/Pose"}
	pkg, name, ok := field.SplitBaseType()
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, "geometry_msgs", pkg)
	testutil.ExpectEq(t, "Pose", name)

	field = msgspec.FieldSpec{BaseType: "Header"}
	pkg, name, ok = field.SplitBaseType()
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, "std_msgs", pkg)
	testutil.ExpectEq(t, "Header", name)

	for _, base := range []string{"Pose", "a/b/c", "/Pose", "pkg/"} {
		field = msgspec.FieldSpec{BaseType: base}
		_, _, ok = field.SplitBaseType()
		testutil.ExpectFalse(t, ok)
	}
}

func TestServiceSpec_Names(t *testing.T) {
	spec := &msgspec.ServiceSpec{
		ShortName: "AddTwoInts",
		Request:   msgspec.MessageSpec{Package: "demo", ShortName: "AddTwoIntsRequest"},
		Response:  msgspec.MessageSpec{Package: "demo", ShortName: "AddTwoIntsResponse"},
	}
	testutil.ExpectEq(t, "demo", spec.Package())
	testutil.ExpectEq(t, "demo/AddTwoInts", spec.FullName())
	testutil.ExpectEq(t, "demo/AddTwoIntsRequest", spec.Request.FullName())
}
