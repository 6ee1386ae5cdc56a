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

package compiler_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.genmsg.dev/genmsg/compiler"
	"go.genmsg.dev/genmsg/internal/testutil"
	"go.genmsg.dev/genmsg/msgspec"
)

func classify(t *testing.T, token string) *compiler.Category {
	t.Helper()
	field, err := msgspec.ParseField("demo", "f", token)
	testutil.AssertNoError(t, err)
	cat, err := compiler.Classify(&field)
	testutil.AssertNoError(t, err)
	return cat
}

func TestClassify(t *testing.T) {
	tests := []struct {
		token string
		kind  compiler.Kind
	}{
		{"int8", compiler.Kind_INT},
		{"uint64", compiler.Kind_INT},
		{"byte", compiler.Kind_INT},
		{"char", compiler.Kind_INT},
		{"bool", compiler.Kind_BOOL},
		{"float32", compiler.Kind_FLOAT},
		{"string", compiler.Kind_STRING},
		{"time", compiler.Kind_TIME},
		{"duration", compiler.Kind_TIME},
		{"int16[4]", compiler.Kind_FIXED_ARRAY},
		{"string[]", compiler.Kind_VARIABLE_ARRAY},
		{"time[]", compiler.Kind_VARIABLE_ARRAY},
		{"Point2D", compiler.Kind_COMPLEX},
		{"Header", compiler.Kind_COMPLEX},
		{"Point2D[]", compiler.Kind_COMPLEX_ARRAY},
		{"geometry_msgs/Pose[3]", compiler.Kind_COMPLEX_ARRAY},
	}
	for _, test := range tests {
		t.Run(test.token, func(t *testing.T) {
			testutil.ExpectEq(t, test.kind, classify(t, test.token).Kind)
		})
	}
}

func TestClassify_Widths(t *testing.T) {
	cat := classify(t, "int16")
	testutil.ExpectEq(t, 2, cat.Width)
	testutil.ExpectTrue(t, cat.Signed)

	cat = classify(t, "char")
	testutil.ExpectEq(t, 1, cat.Width)
	testutil.ExpectFalse(t, cat.Signed)

	testutil.ExpectEq(t, 8, classify(t, "float64").Width)
	testutil.ExpectEq(t, 4, classify(t, "float32").Width)

	width, ok := compiler.ByteWidth("duration")
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, 8, width)
	_, ok = compiler.ByteWidth("string")
	testutil.ExpectFalse(t, ok)
}

func TestClassify_Arrays(t *testing.T) {
	cat := classify(t, "int16[4]")
	testutil.ExpectEq(t, 4, cat.Len)
	testutil.ExpectEq(t, compiler.Kind_INT, cat.Elem.Kind)
	testutil.ExpectFalse(t, cat.HasLength())

	cat = classify(t, "Point2D[]")
	testutil.ExpectEq(t, "demo/Point2D", cat.FullName())
	testutil.ExpectEq(t, 0, cat.Len)
	testutil.ExpectTrue(t, cat.HasLength())
	testutil.ExpectEq(t, compiler.Kind_COMPLEX, cat.Elem.Kind)

	cat = classify(t, "geometry_msgs/Pose[3]")
	testutil.ExpectEq(t, "geometry_msgs", cat.Package)
	testutil.ExpectEq(t, 3, cat.Len)
	testutil.ExpectFalse(t, cat.HasLength())

	testutil.ExpectTrue(t, classify(t, "string").HasLength())
	testutil.ExpectTrue(t, classify(t, "uint8[]").HasLength())
}

func TestClassify_Errors(t *testing.T) {
	field := msgspec.FieldSpec{Name: "f", Type: "int128", IsBuiltin: true, BaseType: "int128"}
	_, err := compiler.Classify(&field)
	testutil.AssertError(t, err)
	testutil.ExpectEq(t, uint32(3000), err.(*compiler.Error).Code())

	field = msgspec.FieldSpec{Name: "f", Type: "a/b/c", BaseType: "a/b/c"}
	_, err = compiler.Classify(&field)
	testutil.AssertError(t, err)
	testutil.ExpectEq(t, uint32(3001), err.(*compiler.Error).Code())
}

func TestTypedArrayHint(t *testing.T) {
	testutil.ExpectEq(t, "uint8", compiler.TypedArrayHint("byte"))
	testutil.ExpectEq(t, "uint8", compiler.TypedArrayHint("char"))
	testutil.ExpectEq(t, "float64", compiler.TypedArrayHint("float64"))
	testutil.ExpectEq(t, "bool", compiler.TypedArrayHint("bool"))
	testutil.ExpectEq(t, "", compiler.TypedArrayHint("int64"))
	testutil.ExpectEq(t, "", compiler.TypedArrayHint("string"))
	testutil.ExpectEq(t, "", compiler.TypedArrayHint("time"))
}

func TestDefaultValue(t *testing.T) {
	field, err := msgspec.ParseField("demo", "corners", "Point2D[3]")
	testutil.AssertNoError(t, err)
	def, err := compiler.DefaultValue(&field, "demo")
	testutil.AssertNoError(t, err)
	testutil.ExpectTrue(t, def.Local)
	testutil.ExpectEq(t, 3, len(def.Elems))
	for _, elem := range def.Elems {
		testutil.ExpectEq(t, compiler.Kind_COMPLEX, elem.Category.Kind)
		testutil.ExpectTrue(t, elem.Local)
	}

	field, err = msgspec.ParseField("demo", "header", "Header")
	testutil.AssertNoError(t, err)
	def, err = compiler.DefaultValue(&field, "demo")
	testutil.AssertNoError(t, err)
	testutil.ExpectFalse(t, def.Local)

	field, err = msgspec.ParseField("demo", "samples", "float64[]")
	testutil.AssertNoError(t, err)
	def, err = compiler.DefaultValue(&field, "demo")
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 0, len(def.Elems))
}

func TestCompile(t *testing.T) {
	spec := testutil.MessageSpec(t, "demo", "Polygon",
		"Header header",
		"Point2D[] points",
		"string label",
		"uint8 TRIANGLE=3",
		"int32 min=-0x10",
		"float64 SCALE= 5e-1 ",
		"bool ENABLED=True",
		"string NAME= spaced ",
	)
	result := compiler.Compile(spec)
	testutil.ExpectEq(t, 0, len(result.Errors))
	msg := result.Message
	if msg == nil {
		t.Fatal("Compile returned no message")
	}

	testutil.ExpectEq(t, "demo/Polygon", msg.FullName())
	testutil.ExpectEq(t, 3, len(msg.Fields))
	testutil.ExpectEq(t, compiler.Kind_COMPLEX_ARRAY, msg.Fields[1].Category.Kind)

	values := map[string]string{}
	for _, constant := range msg.Constants {
		values[constant.Name] = constant.Value
	}
	testutil.ExpectDeepEq(t, map[string]string{
		"TRIANGLE": "3",
		"MIN":      "-16",
		"SCALE":    "0.5",
		"ENABLED":  "true",
		"NAME":     " spaced ",
	}, values)

	testutil.ExpectSliceEq(t, []string{"Point2D"}, msg.Deps.Local)
	testutil.ExpectEq(t, 1, len(msg.Deps.External))
	testutil.ExpectEq(t, "std_msgs", msg.Deps.External[0].Package)
	testutil.ExpectFalse(t, msg.Deps.External[0].Resolved())

	// std_msgs is not in any search root.
	testutil.ExpectEq(t, 1, len(result.Warnings))
	testutil.ExpectEq(t, uint32(4000), result.Warnings[0].Code())
}

func TestCompile_WithName(t *testing.T) {
	spec := testutil.MessageSpec(t, "demo", "AddTwoIntsRequest", "int64 a")
	result := compiler.Compile(spec, compiler.WithName("Sum"))
	testutil.ExpectEq(t, "Sum", result.Message.Name)
	testutil.ExpectEq(t, "AddTwoIntsRequest", result.Message.ShortName)
	testutil.ExpectEq(t, "demo/Sum", result.Message.FullName())
}

func expectErrorCodes(t *testing.T, result compiler.CompileResult, codes ...uint32) {
	t.Helper()
	if result.Message != nil {
		t.Error("Expected (result.Message == nil)")
	}
	var got []uint32
	for _, err := range result.Errors {
		got = append(got, err.Code())
	}
	testutil.ExpectSliceEq(t, codes, got)
}

func TestCompile_Errors(t *testing.T) {
	expectErrorCodes(t,
		compiler.Compile(testutil.MessageSpec(t, "demo", "Dup", "int8 a", "int16 a")),
		3004,
	)
	expectErrorCodes(t,
		compiler.Compile(testutil.MessageSpec(t, "demo", "Bad", "time T=0")),
		3002,
	)
	expectErrorCodes(t,
		compiler.Compile(testutil.MessageSpec(t, "demo", "Bad", "uint8 BIG=256", "bool B=maybe")),
		3003, 3003,
	)
	expectErrorCodes(t,
		compiler.Compile(testutil.MessageSpec(t, "demo", "Bad", "int8 A=1", "int8 a=2")),
		3006,
	)
	expectErrorCodes(t,
		compiler.Compile(testutil.MessageSpec(t, "demo", "Bad", "int8 not-a-name")),
		3005,
	)
	expectErrorCodes(t,
		compiler.Compile(testutil.MessageSpec(t, "demo", "Bad", "bad-pkg/Type field")),
		3001,
	)
}

func TestCompile_GeneratedNameClashes(t *testing.T) {
	expectErrorCodes(t,
		compiler.Compile(testutil.MessageSpec(t, "demo", "Messages", "int8 a")),
		3007,
	)
	expectErrorCodes(t,
		compiler.Compile(testutil.MessageSpec(t, "demo", "Services")),
		3007,
	)
	expectErrorCodes(t,
		compiler.Compile(testutil.MessageSpec(t, "demo", "NewFoo", "int8 a")),
		3008,
	)
	expectErrorCodes(t,
		compiler.Compile(testutil.MessageSpec(t, "demo", "Reset"), compiler.WithName("NewResetRequest")),
		3008,
	)

	result := compiler.Compile(testutil.MessageSpec(t, "demo", "NewFoo"))
	testutil.ExpectMatch(t, `^E3008: .*"NewFoo".*"Foo"`, result.Errors[0].Error())

	for _, name := range []string{"New", "News", "Newton", "Renew", "Message"} {
		result := compiler.Compile(testutil.MessageSpec(t, "demo", name, "int8 a"))
		testutil.ExpectEq(t, 0, len(result.Errors))
	}
}

func TestCompile_MutualReferences(t *testing.T) {
	tree := compiler.Compile(testutil.MessageSpec(t, "demo", "Tree", "string label", "Node[] children"))
	node := compiler.Compile(testutil.MessageSpec(t, "demo", "Node", "uint32 weight", "Tree[] subtrees"))
	testutil.ExpectEq(t, 0, len(tree.Errors))
	testutil.ExpectEq(t, 0, len(node.Errors))
	testutil.ExpectSliceEq(t, []string{"Node"}, tree.Message.Deps.Local)
	testutil.ExpectSliceEq(t, []string{"Tree"}, node.Message.Deps.Local)

	// Elements of variable-length arrays are not constructed eagerly.
	testutil.ExpectEq(t, 0, len(tree.Message.Fields[1].Default.Elems))
}

func TestError_String(t *testing.T) {
	result := compiler.Compile(testutil.MessageSpec(t, "demo", "Dup", "int8 a", "int8 a"))
	testutil.ExpectEq(t, 1, len(result.Errors))
	testutil.ExpectMatch(t, `^E3004: Message "demo/Dup" declares field 'a' more than once$`, result.Errors[0].Error())
}

func TestResolver_SearchRoots(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	testutil.AssertNoError(t, os.Mkdir(filepath.Join(second, "geometry_msgs"), 0o755))
	testutil.AssertNoError(t, os.Mkdir(filepath.Join(second, "std_msgs"), 0o755))
	testutil.AssertNoError(t, os.Mkdir(filepath.Join(first, "std_msgs"), 0o755))

	resolver := &compiler.Resolver{Roots: []compiler.SearchRoot{
		{Dir: first, ImportPrefix: "example.com/first"},
		{Dir: second, ImportPrefix: "example.com/second"},
	}}
	spec := testutil.MessageSpec(t, "demo", "Scene",
		"geometry_msgs/Pose pose",
		"Header header",
		"geometry_msgs/Pose[] poses",
		"std_msgs/Header[2] headers",
		"Point2D a",
		"Point2D[] b",
		"Polygon c",
	)
	deps, warnings := resolver.Resolve(spec, nil)
	testutil.ExpectEq(t, 0, len(warnings))

	testutil.ExpectEq(t, 2, len(deps.External))
	testutil.ExpectEq(t, "geometry_msgs", deps.External[0].Package)
	testutil.ExpectEq(t, "example.com/second", deps.External[0].Root.ImportPrefix)
	testutil.ExpectEq(t, "std_msgs", deps.External[1].Package)
	testutil.ExpectEq(t, "example.com/first", deps.External[1].Root.ImportPrefix)
	testutil.ExpectSliceEq(t, []string{"Point2D", "Polygon"}, deps.Local)
}

func TestResolver_Seed(t *testing.T) {
	resolver := &compiler.Resolver{}
	request := testutil.MessageSpec(t, "demo", "GetRequest", "geometry_msgs/Pose pose", "Point2D p")
	response := testutil.MessageSpec(t, "demo", "GetResponse", "geometry_msgs/Pose pose", "Point2D p", "nav_msgs/Path path")

	requestDeps, warnings := resolver.Resolve(request, nil)
	testutil.ExpectEq(t, 1, len(warnings))

	responseDeps, warnings := resolver.Resolve(response, requestDeps)
	// Only the package new to the response is reported.
	testutil.ExpectEq(t, 1, len(warnings))
	testutil.ExpectMatch(t, `nav_msgs`, warnings[0].Message())

	testutil.ExpectEq(t, 2, len(responseDeps.External))
	testutil.ExpectSliceEq(t, []string{"Point2D"}, responseDeps.Local)

	// The seed is not modified.
	testutil.ExpectEq(t, 1, len(requestDeps.External))
}
