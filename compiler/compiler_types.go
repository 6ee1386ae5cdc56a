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
	"go.genmsg.dev/genmsg/msgspec"
)

// Kind is the closed set of wire behaviours a field can have.
type Kind uint8

const (
	Kind_UNKNOWN Kind = iota
	Kind_INT
	Kind_BOOL
	Kind_FLOAT
	Kind_STRING
	Kind_TIME
	Kind_FIXED_ARRAY
	Kind_VARIABLE_ARRAY
	Kind_COMPLEX
	Kind_COMPLEX_ARRAY
)

func (k Kind) String() string {
	switch k {
	case Kind_INT:
		return "int"
	case Kind_BOOL:
		return "bool"
	case Kind_FLOAT:
		return "float"
	case Kind_STRING:
		return "string"
	case Kind_TIME:
		return "time"
	case Kind_FIXED_ARRAY:
		return "fixed_array"
	case Kind_VARIABLE_ARRAY:
		return "variable_array"
	case Kind_COMPLEX:
		return "complex"
	case Kind_COMPLEX_ARRAY:
		return "complex_array"
	}
	return "unknown"
}

// Category is the classification of one field. Which members are
// meaningful depends on Kind:
//
//	INT             Scalar, Width, Signed
//	BOOL            Scalar, Width
//	FLOAT           Scalar, Width
//	STRING          Scalar
//	TIME            Scalar ("time" or "duration"), Width
//	FIXED_ARRAY     Elem, Len
//	VARIABLE_ARRAY  Elem
//	COMPLEX         Package, Name
//	COMPLEX_ARRAY   Package, Name, Elem, Len (zero when variable-length)
type Category struct {
	Kind    Kind
	Scalar  string
	Width   int
	Signed  bool
	Len     int
	Elem    *Category
	Package string
	Name    string
}

func (c *Category) IsArray() bool {
	switch c.Kind {
	case Kind_FIXED_ARRAY, Kind_VARIABLE_ARRAY, Kind_COMPLEX_ARRAY:
		return true
	}
	return false
}

// HasLength reports whether the encoding of c starts with a uint32 count.
func (c *Category) HasLength() bool {
	switch c.Kind {
	case Kind_STRING, Kind_VARIABLE_ARRAY:
		return true
	case Kind_COMPLEX_ARRAY:
		return c.Len == 0
	}
	return false
}

func (c *Category) IsComplex() bool {
	return c.Kind == Kind_COMPLEX || c.Kind == Kind_COMPLEX_ARRAY
}

// FullName returns "package/Name" for complex categories.
func (c *Category) FullName() string {
	return c.Package + "/" + c.Name
}

var builtinCategories = map[string]Category{
	"bool":     {Kind: Kind_BOOL, Scalar: "bool", Width: 1},
	"int8":     {Kind: Kind_INT, Scalar: "int8", Width: 1, Signed: true},
	"uint8":    {Kind: Kind_INT, Scalar: "uint8", Width: 1},
	"byte":     {Kind: Kind_INT, Scalar: "byte", Width: 1},
	"char":     {Kind: Kind_INT, Scalar: "char", Width: 1},
	"int16":    {Kind: Kind_INT, Scalar: "int16", Width: 2, Signed: true},
	"uint16":   {Kind: Kind_INT, Scalar: "uint16", Width: 2},
	"int32":    {Kind: Kind_INT, Scalar: "int32", Width: 4, Signed: true},
	"uint32":   {Kind: Kind_INT, Scalar: "uint32", Width: 4},
	"int64":    {Kind: Kind_INT, Scalar: "int64", Width: 8, Signed: true},
	"uint64":   {Kind: Kind_INT, Scalar: "uint64", Width: 8},
	"float32":  {Kind: Kind_FLOAT, Scalar: "float32", Width: 4},
	"float64":  {Kind: Kind_FLOAT, Scalar: "float64", Width: 8},
	"string":   {Kind: Kind_STRING, Scalar: "string"},
	"time":     {Kind: Kind_TIME, Scalar: "time", Width: 8},
	"duration": {Kind: Kind_TIME, Scalar: "duration", Width: 8},
}

// Classify computes the category of a field.
func Classify(field *msgspec.FieldSpec) (*Category, error) {
	if field.IsArray {
		elemField := field.Element()
		elem, err := Classify(&elemField)
		if err != nil {
			return nil, err
		}
		if elem.Kind == Kind_COMPLEX {
			return &Category{
				Kind:    Kind_COMPLEX_ARRAY,
				Package: elem.Package,
				Name:    elem.Name,
				Elem:    elem,
				Len:     field.ArrayLen,
			}, nil
		}
		if field.ArrayLen > 0 {
			return &Category{
				Kind: Kind_FIXED_ARRAY,
				Elem: elem,
				Len:  field.ArrayLen,
			}, nil
		}
		return &Category{
			Kind: Kind_VARIABLE_ARRAY,
			Elem: elem,
		}, nil
	}

	if field.IsBuiltin {
		cat, ok := builtinCategories[field.BaseType]
		if !ok {
			return nil, errUnknownBuiltin(field.Name, field.BaseType)
		}
		return &cat, nil
	}

	pkg, name, ok := field.SplitBaseType()
	if !ok {
		return nil, errMalformedTypeRef(field.Name, field.BaseType)
	}
	return &Category{
		Kind:    Kind_COMPLEX,
		Package: pkg,
		Name:    name,
	}, nil
}

// ByteWidth returns the fixed encoded width of a scalar type keyword. It
// reports false for strings and complex types.
func ByteWidth(scalar string) (int, bool) {
	cat, ok := builtinCategories[scalar]
	if !ok || cat.Width == 0 {
		return 0, false
	}
	return cat.Width, true
}

// TypedArrayHint names the bulk element representation of arrays of the
// given scalar type, or returns "" if arrays of that type are encoded
// element by element. The hint never changes the encoded bytes.
func TypedArrayHint(scalar string) string {
	switch scalar {
	case "int8", "uint8", "int16", "uint16", "int32", "uint32",
		"float32", "float64", "bool":
		return scalar
	case "byte", "char":
		return "uint8"
	}
	return ""
}

// Default describes the initial value of a field. For fixed-length arrays
// Elems holds one independently computed default per element; for
// variable-length arrays it is empty.
type Default struct {
	Category *Category
	Elems    []Default
	// Local is set for complex defaults whose type belongs to the owning
	// package.
	Local bool
}

// DefaultValue computes the default of a field owned by a message in
// package owningPackage.
func DefaultValue(field *msgspec.FieldSpec, owningPackage string) (Default, error) {
	cat, err := Classify(field)
	if err != nil {
		return Default{}, err
	}
	return defaultFor(cat, owningPackage), nil
}

func defaultFor(cat *Category, owningPackage string) Default {
	def := Default{Category: cat}
	switch cat.Kind {
	case Kind_COMPLEX:
		def.Local = cat.Package == owningPackage
	case Kind_FIXED_ARRAY, Kind_COMPLEX_ARRAY:
		def.Local = cat.IsComplex() && cat.Package == owningPackage
		if cat.Len > 0 {
			def.Elems = make([]Default, cat.Len)
			for ii := range def.Elems {
				def.Elems[ii] = defaultFor(cat.Elem, owningPackage)
			}
		}
	}
	return def
}
