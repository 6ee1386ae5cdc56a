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

// Package schemafile loads message and service schemas from descriptor
// files in YAML, JSON or JSONC (JSON with comments and trailing commas).
//
// A descriptor holds the schemas of one package:
//
//	package: demo
//	messages:
//	  - name: Point2D
//	    fields:
//	      - {name: x, type: float64}
//	      - {name: y, type: float64}
//	    constants:
//	      - {name: ORIGIN, type: string, value: "0,0"}
//	services:
//	  - name: AddTwoInts
//	    request:
//	      fields: [{name: a, type: int64}, {name: b, type: int64}]
//	    response:
//	      fields: [{name: sum, type: int64}]
//
// Field types use the schema type syntax: "uint8[]", "Point2D[4]",
// "geometry_msgs/Pose", "Header".
package schemafile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"go.genmsg.dev/genmsg/msgspec"
)

type Format uint8

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatJSON
	FormatJSONC
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatJSONC:
		return "jsonc"
	}
	return "unknown"
}

// FormatOf picks a format from a file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".jsonc":
		return FormatJSONC
	}
	return FormatUnknown
}

// Schema is the content of one descriptor.
type Schema struct {
	Package  string
	Messages []*msgspec.MessageSpec
	Services []*msgspec.ServiceSpec
}

// Load reads a descriptor, choosing the format from the file extension.
func Load(path string) (*Schema, error) {
	format := FormatOf(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("schemafile: %s: unrecognized extension", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemafile: %w", err)
	}
	schema, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("schemafile: %s: %w", path, err)
	}
	return schema, nil
}

// Parse decodes a descriptor of the given format.
func Parse(data []byte, format Format) (*Schema, error) {
	var file fileDesc
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	case FormatJSONC:
		data = jsonc.ToJSON(data)
		fallthrough
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %s", format)
	}
	return file.schema()
}

type fileDesc struct {
	Package  string        `yaml:"package" json:"package"`
	Messages []messageDesc `yaml:"messages" json:"messages"`
	Services []serviceDesc `yaml:"services" json:"services"`
}

type messageDesc struct {
	Name      string         `yaml:"name" json:"name"`
	Fields    []fieldDesc    `yaml:"fields" json:"fields"`
	Constants []constantDesc `yaml:"constants" json:"constants"`
}

type serviceDesc struct {
	Name     string      `yaml:"name" json:"name"`
	Request  messageDesc `yaml:"request" json:"request"`
	Response messageDesc `yaml:"response" json:"response"`
}

type fieldDesc struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}

type constantDesc struct {
	Name  string  `yaml:"name" json:"name"`
	Type  string  `yaml:"type" json:"type"`
	Value literal `yaml:"value" json:"value"`
}

// literal keeps the source text of a scalar value, so that constants such
// as 0x10 or 1e-3 reach the compiler exactly as written.
type literal string

func (l *literal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: constant value must be a scalar", node.Line)
	}
	*l = literal(node.Value)
	return nil
}

func (l *literal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = literal(s)
		return nil
	}
	if len(data) == 0 || data[0] == '{' || data[0] == '[' || string(data) == "null" {
		return fmt.Errorf("constant value must be a scalar, got %s", data)
	}
	*l = literal(data)
	return nil
}

func (f *fileDesc) schema() (*Schema, error) {
	if f.Package == "" {
		return nil, fmt.Errorf("missing package name")
	}
	schema := &Schema{Package: f.Package}
	for ii := range f.Messages {
		desc := &f.Messages[ii]
		if desc.Name == "" {
			return nil, fmt.Errorf("messages[%d]: missing name", ii)
		}
		spec, err := desc.spec(f.Package, desc.Name)
		if err != nil {
			return nil, err
		}
		schema.Messages = append(schema.Messages, spec)
	}
	for ii := range f.Services {
		desc := &f.Services[ii]
		if desc.Name == "" {
			return nil, fmt.Errorf("services[%d]: missing name", ii)
		}
		request, err := desc.Request.spec(f.Package, desc.Name+"Request")
		if err != nil {
			return nil, err
		}
		response, err := desc.Response.spec(f.Package, desc.Name+"Response")
		if err != nil {
			return nil, err
		}
		schema.Services = append(schema.Services, &msgspec.ServiceSpec{
			ShortName: desc.Name,
			Request:   *request,
			Response:  *response,
		})
	}
	return schema, nil
}

func (m *messageDesc) spec(pkg, name string) (*msgspec.MessageSpec, error) {
	spec := &msgspec.MessageSpec{
		Package:   pkg,
		ShortName: name,
	}
	for _, field := range m.Fields {
		fieldSpec, err := msgspec.ParseField(pkg, field.Name, field.Type)
		if err != nil {
			return nil, fmt.Errorf("%s/%s: %w", pkg, name, err)
		}
		spec.Fields = append(spec.Fields, fieldSpec)
	}
	for _, constant := range m.Constants {
		spec.Constants = append(spec.Constants, msgspec.Constant{
			Name:  constant.Name,
			Type:  constant.Type,
			Value: string(constant.Value),
		})
	}
	return spec, nil
}
