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

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"go.genmsg.dev/genmsg/codegen"
	"go.genmsg.dev/genmsg/compiler"
	"go.genmsg.dev/genmsg/definitions/wasmdef"
)

// config is the content of the --config file. Every entry is optional.
//
//	import_prefix: example.com/gen
//	output_root: ./gen
//	definition_plugin: ./defs.wasm
//	search_roots:
//	  - {dir: ./gen, import_prefix: example.com/gen}
//	  - {dir: ./vendor-gen, import_prefix: example.com/vendor}
type config struct {
	// ImportPrefix is joined with a package name to form its import path
	// when --import-path is not given.
	ImportPrefix string `yaml:"import_prefix"`
	// OutputRoot holds one directory per package when -o is not given.
	OutputRoot       string         `yaml:"output_root"`
	DefinitionPlugin string         `yaml:"definition_plugin"`
	SearchRoots      []configSearch `yaml:"search_roots"`
}

type configSearch struct {
	Dir          string `yaml:"dir"`
	ImportPrefix string `yaml:"import_prefix"`
}

func loadConfig(configPath string) (*config, error) {
	cfg := &config{}
	if configPath == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	// Relative paths in the file are relative to the file.
	base := filepath.Dir(configPath)
	cfg.OutputRoot = resolvePath(base, cfg.OutputRoot)
	cfg.DefinitionPlugin = resolvePath(base, cfg.DefinitionPlugin)
	for ii := range cfg.SearchRoots {
		cfg.SearchRoots[ii].Dir = resolvePath(base, cfg.SearchRoots[ii].Dir)
	}
	return cfg, nil
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// generatorFlags are the flags of every command that writes generated
// code.
type generatorFlags struct {
	outDir           string
	importPath       string
	importPrefix     string
	searchRoots      []string
	definitionPlugin string
}

func (f *generatorFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.outDir, "output", "o", "", "output directory")
	flags.StringVar(&f.importPath, "import-path", "", "Go import path of the generated package directory")
	flags.StringVar(&f.importPrefix, "import-prefix", "", "import path prefix of packages not found in any search root")
	flags.StringArrayVar(&f.searchRoots, "search-root", nil, "DIR=IMPORT_PREFIX searched for referenced packages, in order (repeatable)")
	flags.StringVar(&f.definitionPlugin, "definition-plugin", "", "WebAssembly plugin computing checksums and definition texts")
}

// searchRootList returns the roots given by flag, then those of the
// config file.
func (f *generatorFlags) searchRootList(cfg *config) ([]compiler.SearchRoot, error) {
	var roots []compiler.SearchRoot
	for _, arg := range f.searchRoots {
		dir, prefix, _ := strings.Cut(arg, "=")
		if dir == "" {
			return nil, fmt.Errorf("invalid --search-root %q: empty directory", arg)
		}
		roots = append(roots, compiler.SearchRoot{Dir: dir, ImportPrefix: prefix})
	}
	for _, root := range cfg.SearchRoots {
		roots = append(roots, compiler.SearchRoot{Dir: root.Dir, ImportPrefix: root.ImportPrefix})
	}
	return roots, nil
}

func (f *generatorFlags) resolveImportPath(cfg *config, pkg string) string {
	if f.importPath != "" {
		return f.importPath
	}
	if prefix := f.prefix(cfg); prefix != "" {
		return path.Join(prefix, pkg)
	}
	return ""
}

func (f *generatorFlags) prefix(cfg *config) string {
	if f.importPrefix != "" {
		return f.importPrefix
	}
	return cfg.ImportPrefix
}

func (f *generatorFlags) resolveOutDir(cfg *config, pkg, kind string) (string, error) {
	if f.outDir != "" {
		return f.outDir, nil
	}
	if cfg.OutputRoot != "" {
		return filepath.Join(cfg.OutputRoot, pkg, kind), nil
	}
	return "", fmt.Errorf("no output directory specified (set --output= or output_root in the config file)")
}

// generator builds a Generator for package pkg. The returned function
// releases the definitions plugin, if any.
func (f *generatorFlags) generator(
	ctx context.Context,
	g *globals,
	pkg string,
) (*codegen.Generator, func(), error) {
	roots, err := f.searchRootList(g.cfg)
	if err != nil {
		return nil, nil, err
	}
	opts := []codegen.GenerateOption{
		codegen.WithSearchRoots(roots...),
		codegen.WithImportPath(f.resolveImportPath(g.cfg, pkg)),
		codegen.WithDefaultImportPrefix(f.prefix(g.cfg)),
		codegen.WithLogger(g.log),
	}

	release := func() {}
	pluginPath := f.definitionPlugin
	if pluginPath == "" {
		pluginPath = g.cfg.DefinitionPlugin
	}
	if pluginPath != "" {
		provider, err := wasmdef.Load(ctx, pluginPath)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, codegen.WithDefinitions(provider))
		release = func() { provider.Close(ctx) }
	}
	return codegen.New(opts...), release, nil
}
