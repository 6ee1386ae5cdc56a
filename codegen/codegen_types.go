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

package codegen

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.genmsg.dev/genmsg/compiler"
)

// fileCtx tracks what one generated file refers to, so that types are
// spelled consistently with the file's imports.
type fileCtx struct {
	g *Generator
	// pkg is the schema package the file belongs to.
	pkg string
	// goPkg is the Go package clause of the file: msgDir or srvDir.
	goPkg   string
	imports map[string]string
}

func newFileCtx(g *Generator, pkg, goPkg string) *fileCtx {
	return &fileCtx{
		g:     g,
		pkg:   pkg,
		goPkg: goPkg,
		imports: map[string]string{
			runtimeImportPath: "",
			msgbinImportPath:  "",
		},
	}
}

// addDeps imports the packages holding the types in deps. Messages refer to
// types of their own package directly; services import the sibling msg
// package, never the package aggregate, which imports the service package.
func (f *fileCtx) addDeps(deps *compiler.Dependencies) error {
	if f.goPkg == srvDir && len(deps.Local) > 0 {
		if f.g.opts.importPath == "" {
			return fmt.Errorf(
				"codegen: an import path is required for services that use messages of package %q",
				f.pkg,
			)
		}
		f.imports[f.g.opts.importPath+"/"+msgDir] = ""
	}
	for _, ext := range deps.External {
		f.imports[f.g.externalImportPath(ext)] = importAlias(ext.Package)
	}
	return nil
}

func (g *Generator) externalImportPath(ext *compiler.ExternalPackage) string {
	prefix := g.opts.defaultImportPrefix
	if ext.Resolved() && ext.Root.ImportPrefix != "" {
		prefix = ext.Root.ImportPrefix
	}
	if prefix == "" {
		return ext.Package + "/" + msgDir
	}
	return prefix + "/" + ext.Package + "/" + msgDir
}

// importAlias names the import of an external package after the package,
// avoiding the identifiers the generated code already uses.
func importAlias(pkg string) string {
	switch pkg {
	case "genmsg", "msgbin", msgDir, srvDir, "m", "enc", "dec", "err", "n", "ii", "val":
		return pkg + "_pkg"
	}
	return pkg
}

func (f *fileCtx) writeImports(w *writer) {
	paths := slices.Sorted(maps.Keys(f.imports))
	w.block("import (", func() {
		for _, importPath := range paths {
			if alias := f.imports[importPath]; alias != "" {
				w.linef("%s %q", alias, importPath)
			} else {
				w.linef("%q", importPath)
			}
		}
	}, ")")
}

// qualified spells a name declared by package pkg's generated messages.
func (f *fileCtx) qualified(pkg, name string) string {
	if pkg == f.pkg {
		if f.goPkg == srvDir {
			return msgDir + "." + name
		}
		return name
	}
	return importAlias(pkg) + "." + name
}

func (f *fileCtx) typeRef(cat *compiler.Category) string {
	switch cat.Kind {
	case compiler.Kind_INT, compiler.Kind_BOOL, compiler.Kind_FLOAT, compiler.Kind_STRING:
		return goScalar(cat.Scalar)
	case compiler.Kind_TIME:
		if cat.Scalar == "duration" {
			return "genmsg.Duration"
		}
		return "genmsg.Time"
	case compiler.Kind_FIXED_ARRAY:
		return fmt.Sprintf("[%d]%s", cat.Len, f.typeRef(cat.Elem))
	case compiler.Kind_VARIABLE_ARRAY:
		return "[]" + f.typeRef(cat.Elem)
	case compiler.Kind_COMPLEX:
		return f.qualified(cat.Package, cat.Name)
	case compiler.Kind_COMPLEX_ARRAY:
		if cat.Len > 0 {
			return fmt.Sprintf("[%d]%s", cat.Len, f.typeRef(cat.Elem))
		}
		return "[]" + f.typeRef(cat.Elem)
	}
	panic("unreachable")
}

// defaultExpr renders a default value. Scalar elements of fixed-length
// arrays are left to the array's zero value, which gives each element its
// own default; time and message elements are constructed one by one.
func (f *fileCtx) defaultExpr(def compiler.Default) string {
	cat := def.Category
	switch cat.Kind {
	case compiler.Kind_INT:
		return "0"
	case compiler.Kind_FLOAT:
		return "0.0"
	case compiler.Kind_BOOL:
		return "false"
	case compiler.Kind_STRING:
		return `""`
	case compiler.Kind_TIME:
		return f.typeRef(cat) + "{Sec: 0, Nsec: 0}"
	case compiler.Kind_COMPLEX:
		return "*" + f.qualified(cat.Package, "New"+cat.Name) + "()"
	case compiler.Kind_VARIABLE_ARRAY:
		return f.typeRef(cat) + "{}"
	case compiler.Kind_FIXED_ARRAY, compiler.Kind_COMPLEX_ARRAY:
		if cat.Len == 0 || !needsConstruction(cat.Elem) {
			return f.typeRef(cat) + "{}"
		}
		elems := make([]string, len(def.Elems))
		for ii, elem := range def.Elems {
			elems[ii] = f.defaultExpr(elem)
		}
		return f.typeRef(cat) + "{" + strings.Join(elems, ", ") + "}"
	}
	panic("unreachable")
}

func needsConstruction(cat *compiler.Category) bool {
	return cat.Kind == compiler.Kind_TIME || cat.Kind == compiler.Kind_COMPLEX
}

func goScalar(scalar string) string {
	switch scalar {
	case "byte", "char":
		return "uint8"
	}
	return scalar
}

// codecMethod names the Encoder and Decoder methods for a scalar type.
func codecMethod(scalar string) string {
	switch scalar {
	case "bool":
		return "Bool"
	case "int8":
		return "Int8"
	case "uint8", "byte", "char":
		return "Uint8"
	case "int16":
		return "Int16"
	case "uint16":
		return "Uint16"
	case "int32":
		return "Int32"
	case "uint32":
		return "Uint32"
	case "int64":
		return "Int64"
	case "uint64":
		return "Uint64"
	case "float32":
		return "Float32"
	case "float64":
		return "Float64"
	case "string":
		return "String"
	}
	panic(fmt.Sprintf("codecMethod: unhandled scalar %q", scalar))
}

var methodNames = map[string]struct{}{
	"Serialize":         {},
	"Deserialize":       {},
	"Datatype":          {},
	"MD5Sum":            {},
	"MessageDefinition": {},
}

// goFieldNames returns the exported Go name of each field. Names that
// would collide with a method or an earlier field get trailing
// underscores.
func goFieldNames(fields []*compiler.Field) []string {
	taken := maps.Clone(methodNames)
	names := make([]string, len(fields))
	for ii, field := range fields {
		name := goName(field.Name)
		for {
			if _, conflict := taken[name]; !conflict {
				break
			}
			name += "_"
		}
		taken[name] = struct{}{}
		names[ii] = name
	}
	return names
}

// goName converts a schema field name such as "frame_id" to "FrameId".
func goName(name string) string {
	var buf strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		buf.WriteString(strings.ToUpper(part[:1]))
		buf.WriteString(part[1:])
	}
	if buf.Len() == 0 {
		return "X_"
	}
	out := buf.String()
	if out[0] >= '0' && out[0] <= '9' {
		return "X" + out
	}
	return out
}
