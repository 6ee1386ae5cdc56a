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
	"context"

	"github.com/spf13/pflag"

	"go.genmsg.dev/genmsg/codegen"
	"go.genmsg.dev/genmsg/schemafile"
)

const (
	kindMessage = "msg"
	kindService = "srv"
)

// cmdGenerate is both "genmsg msg" and "genmsg srv".
type cmdGenerate struct {
	*globals
	kind string
	gen  generatorFlags
}

func (cmd *cmdGenerate) help() *commandHelp {
	if cmd.kind == kindService {
		return &commandHelp{
			usage:   "srv [options] SCHEMA_FILE...",
			summary: "Generate Go code for the services of schema descriptors",
		}
	}
	return &commandHelp{
		usage:   "msg [options] SCHEMA_FILE...",
		summary: "Generate Go code for the messages of schema descriptors",
	}
}

func (cmd *cmdGenerate) flags(flags *pflag.FlagSet) {
	cmd.gen.register(flags)
}

func (cmd *cmdGenerate) run(ctx context.Context, argv []string) int {
	if len(argv) < 1 {
		cmd.log.Error().Msgf("usage: genmsg %s", cmd.help().usage)
		return 1
	}
	for _, schemaPath := range argv {
		schema, err := schemafile.Load(schemaPath)
		if err != nil {
			cmd.log.Error().Err(err).Send()
			return 1
		}
		if err := cmd.generate(ctx, schema); err != nil {
			cmd.log.Error().Err(err).Str("schema", schemaPath).Send()
			return 1
		}
	}
	return 0
}

func (cmd *cmdGenerate) generate(ctx context.Context, schema *schemafile.Schema) error {
	outDir, err := cmd.gen.resolveOutDir(cmd.cfg, schema.Package, cmd.kind)
	if err != nil {
		return err
	}
	generator, release, err := cmd.gen.generator(ctx, cmd.globals, schema.Package)
	if err != nil {
		return err
	}
	defer release()

	var artifacts []*codegen.Artifact
	if cmd.kind == kindService {
		for _, spec := range schema.Services {
			artifact, err := generator.GenerateService(ctx, spec, outDir)
			if err != nil {
				return err
			}
			artifacts = append(artifacts, artifact)
		}
	} else {
		for _, spec := range schema.Messages {
			artifact, err := generator.GenerateMessage(ctx, spec, outDir)
			if err != nil {
				return err
			}
			artifacts = append(artifacts, artifact)
		}
	}
	for _, artifact := range artifacts {
		cmd.log.Info().
			Str("path", artifact.Path).
			Int("warnings", len(artifact.Warnings)).
			Msg("generated")
	}
	return nil
}
