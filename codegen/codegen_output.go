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
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.genmsg.dev/genmsg/msgspec"
)

// GenerateMessage renders spec into <outDir>/<Name>.go, then rebuilds the
// message index of outDir and the package index of its parent.
func (g *Generator) GenerateMessage(
	ctx context.Context,
	spec *msgspec.MessageSpec,
	outDir string,
) (*Artifact, error) {
	artifact, err := g.RenderMessage(ctx, spec)
	if err != nil {
		return nil, err
	}
	if err := g.writeArtifact(artifact, outDir); err != nil {
		return nil, err
	}
	if err := g.WriteMessageIndex(outDir); err != nil {
		return nil, err
	}
	if err := g.WritePackageIndex(filepath.Dir(outDir)); err != nil {
		return nil, err
	}
	return artifact, nil
}

// GenerateService renders spec into <outDir>/<Name>.go. The service index
// and package index are rebuilt once, after the file holding both halves
// has been written.
func (g *Generator) GenerateService(
	ctx context.Context,
	spec *msgspec.ServiceSpec,
	outDir string,
) (*Artifact, error) {
	artifact, err := g.RenderService(ctx, spec)
	if err != nil {
		return nil, err
	}
	if err := g.writeArtifact(artifact, outDir); err != nil {
		return nil, err
	}
	if err := g.WriteServiceIndex(outDir); err != nil {
		return nil, err
	}
	if err := g.WritePackageIndex(filepath.Dir(outDir)); err != nil {
		return nil, err
	}
	return artifact, nil
}

func (g *Generator) writeArtifact(artifact *Artifact, outDir string) error {
	outPath := filepath.Join(outDir, artifact.Name+".go")
	if err := g.writeFile(outPath, artifact.Source); err != nil {
		return err
	}
	artifact.Path = outPath
	return nil
}

// writeFile creates the parent directory if needed and replaces the file.
// Another generator creating the same directory concurrently is not an
// error.
func (g *Generator) writeFile(outPath string, content []byte) error {
	if err := ensureDir(filepath.Dir(outPath)); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, content, 0o644); err != nil {
		return fmt.Errorf("codegen: write %s: %w", outPath, err)
	}
	g.opts.logger.Debug().
		Str("path", outPath).
		Int("bytes", len(content)).
		Msg("wrote generated file")
	return nil
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("codegen: create directory %s: %w", dir, err)
	}
	return nil
}
