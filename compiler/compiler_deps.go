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
	"os"
	"path/filepath"
	"slices"

	"go.genmsg.dev/genmsg/msgspec"
)

// SearchRoot is a directory that may contain generated packages, one
// subdirectory per package, together with the import path prefix under
// which those subdirectories are importable.
type SearchRoot struct {
	Dir          string
	ImportPrefix string
}

// ExternalPackage is a referenced package other than the message's own.
type ExternalPackage struct {
	Package string
	// Root is the first search root containing the package, or nil if no
	// root contained it.
	Root *SearchRoot
}

func (p *ExternalPackage) Resolved() bool {
	return p.Root != nil
}

// Dependencies are the message types referenced by one compilation unit.
// Both lists are deduplicated and kept in order of first use.
type Dependencies struct {
	External []*ExternalPackage
	// Local holds the short names of referenced types in the message's own
	// package.
	Local []string
}

func NewDependencies() *Dependencies {
	return &Dependencies{}
}

func (d *Dependencies) Clone() *Dependencies {
	if d == nil {
		return NewDependencies()
	}
	return &Dependencies{
		External: slices.Clone(d.External),
		Local:    slices.Clone(d.Local),
	}
}

func (d *Dependencies) ExternalPackage(pkg string) (*ExternalPackage, bool) {
	for _, ext := range d.External {
		if ext.Package == pkg {
			return ext, true
		}
	}
	return nil, false
}

func (d *Dependencies) HasLocal(name string) bool {
	return slices.Contains(d.Local, name)
}

// Resolver locates the packages referenced by a message.
type Resolver struct {
	Roots []SearchRoot
}

// FindPackage returns the first root whose <Dir>/<pkg> exists.
func (r *Resolver) FindPackage(pkg string) (*SearchRoot, bool) {
	for ii := range r.Roots {
		root := &r.Roots[ii]
		if _, err := os.Stat(filepath.Join(root.Dir, pkg)); err == nil {
			return root, true
		}
	}
	return nil, false
}

// Resolve walks the fields of spec in declaration order and records each
// referenced type not already present in seed. The seed is not modified;
// the returned set contains the seed's entries followed by new ones, so it
// can seed a further pass.
//
// A package missing from every search root is not an error: it is recorded
// as unresolved and reported as a warning, leaving its resolution to the
// environment that builds the generated code.
func (r *Resolver) Resolve(
	spec *msgspec.MessageSpec,
	seed *Dependencies,
) (*Dependencies, []*Warning) {
	deps := seed.Clone()
	var warnings []*Warning
	for ii := range spec.Fields {
		field := &spec.Fields[ii]
		if field.IsBuiltin {
			continue
		}
		pkg, name, ok := field.SplitBaseType()
		if !ok {
			// Reported by Classify.
			continue
		}
		if _, found := deps.ExternalPackage(pkg); found {
			continue
		}
		if pkg == spec.Package {
			if !deps.HasLocal(name) {
				deps.Local = append(deps.Local, name)
			}
			continue
		}
		root, found := r.FindPackage(pkg)
		if !found {
			warnings = append(warnings, warnPackageNotFound(pkg, pkg+"/"+name))
		}
		deps.External = append(deps.External, &ExternalPackage{
			Package: pkg,
			Root:    root,
		})
	}
	return deps, warnings
}
