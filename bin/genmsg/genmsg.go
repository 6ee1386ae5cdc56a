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

// Command genmsg generates Go message types from schema descriptors and
// inspects binary messages.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type command interface {
	help() *commandHelp
	flags(flags *pflag.FlagSet)
	run(ctx context.Context, argv []string) int
}

type commandHelp struct {
	usage   string
	summary string
}

// globals are the options shared by every command.
type globals struct {
	configPath string
	verbose    bool

	log    zerolog.Logger
	cfg    *config
	stdout io.Writer
}

func (g *globals) register(flags *pflag.FlagSet) {
	flags.StringVar(&g.configPath, "config", "", "YAML file with search roots, import prefix and output root")
	flags.BoolVarP(&g.verbose, "verbose", "v", false, "log every file written")
}

// setup prepares the logger and loads the config file. It runs after flag
// parsing, before any command.
func (g *globals) setup() error {
	level := zerolog.InfoLevel
	if g.verbose {
		level = zerolog.DebugLevel
	}
	g.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	cfg, err := loadConfig(g.configPath)
	if err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

func main() {
	ctx := context.Background()
	g := &globals{stdout: os.Stdout}

	genmsgCmd := &cobra.Command{
		Use: "genmsg [options] COMMAND",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	genmsgCmd.RunE = func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(os.Stderr, genmsgCmd.UsageString())
		os.Exit(1)
		return nil
	}
	genmsgCmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return g.setup()
	}
	g.register(genmsgCmd.PersistentFlags())

	commands := []command{
		&cmdGenerate{globals: g, kind: kindMessage},
		&cmdGenerate{globals: g, kind: kindService},
		&cmdIndex{globals: g},
		&cmdDecode{globals: g},
		&cmdEncode{globals: g},
	}
	for _, cmd := range commands {
		help := cmd.help()
		cobraCmd := &cobra.Command{
			Use:   help.usage,
			Short: help.summary,
			RunE: func(_ *cobra.Command, args []string) error {
				os.Exit(cmd.run(ctx, args))
				return nil
			},
		}
		genmsgCmd.AddCommand(cobraCmd)
		cmd.flags(cobraCmd.Flags())
	}

	if _, err := genmsgCmd.ExecuteC(); err != nil {
		os.Exit(1)
	}
}
