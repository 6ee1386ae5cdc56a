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
	"path/filepath"

	"github.com/spf13/pflag"
)

// cmdIndex rebuilds the indices of a package directory. Run it once after
// generating a package from several concurrent processes.
type cmdIndex struct {
	*globals
	gen generatorFlags
}

func (*cmdIndex) help() *commandHelp {
	return &commandHelp{
		usage:   "index [options] PACKAGE_DIR...",
		summary: "Rebuild the index files of generated package directories",
	}
}

func (cmd *cmdIndex) flags(flags *pflag.FlagSet) {
	flags.StringVar(&cmd.gen.importPath, "import-path", "", "Go import path of the package directory")
	flags.StringVar(&cmd.gen.importPrefix, "import-prefix", "", "import path prefix joined with the directory name when --import-path is not set")
}

func (cmd *cmdIndex) run(ctx context.Context, argv []string) int {
	if len(argv) < 1 {
		cmd.log.Error().Msgf("usage: genmsg %s", cmd.help().usage)
		return 1
	}
	if len(argv) > 1 && cmd.gen.importPath != "" {
		cmd.log.Error().Msg("--import-path names a single package directory; use --import-prefix")
		return 1
	}
	for _, pkgDir := range argv {
		generator, release, err := cmd.gen.generator(ctx, cmd.globals, filepath.Base(filepath.Clean(pkgDir)))
		if err != nil {
			cmd.log.Error().Err(err).Send()
			return 1
		}
		err = generator.RebuildIndex(pkgDir)
		release()
		if err != nil {
			cmd.log.Error().Err(err).Str("dir", pkgDir).Send()
			return 1
		}
		cmd.log.Info().Str("dir", pkgDir).Msg("rebuilt index")
	}
	return 0
}
