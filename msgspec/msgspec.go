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

// Package msgspec holds the structured form of message and service schemas
// as produced by a schema loader. Values of these types are treated as
// read-only by every later stage of the pipeline.
package msgspec

import (
	"fmt"
	"strconv"
	"strings"
)

// HeaderType is the fully qualified type that the bare name "Header" refers
// to in any package.
const HeaderType = "std_msgs/Header"

var builtinTypes = map[string]struct{}{
	"bool":     {},
	"int8":     {},
	"uint8":    {},
	"int16":    {},
	"uint16":   {},
	"int32":    {},
	"uint32":   {},
	"int64":    {},
	"uint64":   {},
	"float32":  {},
	"float64":  {},
	"string":   {},
	"time":     {},
	"duration": {},
	"byte":     {},
	"char":     {},
}

// IsBuiltinType reports whether name is one of the scalar type keywords.
func IsBuiltinType(name string) bool {
	_, ok := builtinTypes[name]
	return ok
}

type FieldSpec struct {
	Name string
	// Type is the declared type token, including any array suffix.
	Type    string
	IsArray bool
	// ArrayLen is the fixed element count of an array field, or zero for a
	// variable-length array.
	ArrayLen  int
	IsBuiltin bool
	// BaseType is a scalar keyword for builtin fields, otherwise a
	// "package/TypeName" reference.
	BaseType string
}

func (f *FieldSpec) IsFixedArray() bool {
	return f.IsArray && f.ArrayLen > 0
}

// Element returns a copy of f describing a single array element.
func (f FieldSpec) Element() FieldSpec {
	f.IsArray = false
	f.ArrayLen = 0
	f.Type = f.BaseType
	return f
}

// SplitBaseType splits a complex base type into its package and short name.
func (f *FieldSpec) SplitBaseType() (pkg, name string, ok bool) {
	base := f.BaseType
	if base == "Header" {
		base = HeaderType
	}
	pkg, name, ok = strings.Cut(base, "/")
	if !ok || pkg == "" || name == "" || strings.Contains(name, "/") {
		return "", "", false
	}
	return pkg, name, true
}

type Constant struct {
	Name  string
	Type  string
	Value string
}

type MessageSpec struct {
	Package   string
	ShortName string
	// Fields are in wire order.
	Fields    []FieldSpec
	Constants []Constant
}

func (s *MessageSpec) FullName() string {
	return s.Package + "/" + s.ShortName
}

type ServiceSpec struct {
	ShortName string
	Request   MessageSpec
	Response  MessageSpec
}

func (s *ServiceSpec) Package() string {
	return s.Request.Package
}

func (s *ServiceSpec) FullName() string {
	return s.Package() + "/" + s.ShortName
}

// ParseField builds a FieldSpec from a field name and a declared type token
// such as "float64", "uint8[]", "Point[4]" or "geometry_msgs/Pose". Bare
// complex names are qualified with pkg, except "Header".
func ParseField(pkg, name, token string) (FieldSpec, error) {
	field := FieldSpec{
		Name: name,
		Type: token,
	}
	base := token
	if open := strings.IndexByte(token, '['); open >= 0 {
		if !strings.HasSuffix(token, "]") {
			return FieldSpec{}, fmt.Errorf("field %q: malformed array type %q", name, token)
		}
		field.IsArray = true
		base = token[:open]
		if size := token[open+1 : len(token)-1]; size != "" {
			n, err := strconv.Atoi(size)
			if err != nil || n <= 0 {
				return FieldSpec{}, fmt.Errorf("field %q: invalid array length %q", name, size)
			}
			field.ArrayLen = n
		}
	}
	if base == "" {
		return FieldSpec{}, fmt.Errorf("field %q: empty type", name)
	}

	switch {
	case IsBuiltinType(base):
		field.IsBuiltin = true
		field.BaseType = base
	case base == "Header":
		field.BaseType = HeaderType
	case strings.Contains(base, "/"):
		field.BaseType = base
	default:
		field.BaseType = pkg + "/" + base
	}
	return field, nil
}
