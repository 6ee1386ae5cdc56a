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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// The index files are a pure function of the directory listing, so every
// generation rewrites them in full. When several generators write to one
// package at the same time an index may miss a sibling written
// concurrently; running RebuildIndex after the batch makes it complete.

// WriteMessageIndex rewrites the Messages registry of a message directory.
func (g *Generator) WriteMessageIndex(dir string) error {
	names, err := listArtifacts(dir)
	if err != nil {
		return err
	}
	w := &writer{}
	w.line(generatedHeader)
	w.blank()
	w.linef("package %s", msgDir)
	w.blank()
	w.linef("import %q", runtimeImportPath)
	w.blank()
	w.line("// Messages maps the short name of every message in this package to its")
	w.line("// constructor.")
	w.block("var Messages = map[string]func() genmsg.Message{", func() {
		for _, name := range names {
			w.linef("%q: func() genmsg.Message { return New%s() },", name, name)
		}
	}, "}")
	src, err := w.source(filepath.Join(dir, indexFile))
	if err != nil {
		return err
	}
	return g.writeFile(filepath.Join(dir, indexFile), src)
}

// WriteServiceIndex rewrites the Services registry of a service directory.
func (g *Generator) WriteServiceIndex(dir string) error {
	names, err := listArtifacts(dir)
	if err != nil {
		return err
	}
	w := &writer{}
	w.line(generatedHeader)
	w.blank()
	w.linef("package %s", srvDir)
	w.blank()
	w.linef("import %q", runtimeImportPath)
	w.blank()
	w.line("// Services maps the short name of every service in this package to its")
	w.line("// request and response types.")
	w.block("var Services = map[string]*genmsg.Service{", func() {
		for _, name := range names {
			w.linef("%q: &%s,", name, name)
		}
	}, "}")
	src, err := w.source(filepath.Join(dir, indexFile))
	if err != nil {
		return err
	}
	return g.writeFile(filepath.Join(dir, indexFile), src)
}

// WritePackageIndex rewrites the aggregate index of a package directory,
// re-exporting whichever of the message and service registries exist.
func (g *Generator) WritePackageIndex(pkgDir string) error {
	if g.opts.importPath == "" {
		return fmt.Errorf("codegen: an import path is required to write the package index of %s", pkgDir)
	}
	hasMsg, err := fileExists(filepath.Join(pkgDir, msgDir, indexFile))
	if err != nil {
		return err
	}
	hasSrv, err := fileExists(filepath.Join(pkgDir, srvDir, indexFile))
	if err != nil {
		return err
	}

	w := &writer{}
	w.line(generatedHeader)
	w.blank()
	w.linef("package %s", goPackageName(g.opts.importPath))
	if hasMsg || hasSrv {
		w.blank()
		w.block("import (", func() {
			if hasMsg {
				w.linef("%q", g.opts.importPath+"/"+msgDir)
			}
			if hasSrv {
				w.linef("%q", g.opts.importPath+"/"+srvDir)
			}
		}, ")")
	}
	if hasMsg {
		w.blank()
		w.line("// Messages maps the short name of every message in this package to its")
		w.line("// constructor.")
		w.line("var Messages = msg.Messages")
	}
	if hasSrv {
		w.blank()
		w.line("// Services maps the short name of every service in this package to its")
		w.line("// request and response types.")
		w.line("var Services = srv.Services")
	}
	src, err := w.source(filepath.Join(pkgDir, indexFile))
	if err != nil {
		return err
	}
	return g.writeFile(filepath.Join(pkgDir, indexFile), src)
}

// RebuildIndex rewrites every index of a package directory from the files
// currently present.
func (g *Generator) RebuildIndex(pkgDir string) error {
	for _, sub := range []struct {
		dir   string
		write func(string) error
	}{
		{msgDir, g.WriteMessageIndex},
		{srvDir, g.WriteServiceIndex},
	} {
		dir := filepath.Join(pkgDir, sub.dir)
		info, err := os.Stat(dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("codegen: %w", err)
		}
		if !info.IsDir() {
			continue
		}
		if err := sub.write(dir); err != nil {
			return err
		}
	}
	return g.WritePackageIndex(pkgDir)
}

// listArtifacts returns the type names of the generated files in dir, in
// sorted order. A missing directory has no artifacts.
func listArtifacts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("codegen: list %s: %w", dir, err)
	}
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() || name == indexFile {
			continue
		}
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".go"))
	}
	return names, nil
}

func fileExists(name string) (bool, error) {
	_, err := os.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("codegen: %w", err)
}

// goPackageName derives a package clause from the last element of an
// import path.
func goPackageName(importPath string) string {
	name := []byte(path.Base(importPath))
	for ii, c := range name {
		isLetter := c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
		isDigit := '0' <= c && c <= '9'
		if !isLetter && !(isDigit && ii > 0) {
			name[ii] = '_'
		}
	}
	return string(name)
}
