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
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"go.genmsg.dev/genmsg/dynamic"
	"go.genmsg.dev/genmsg/encoding/msgtext"
	"go.genmsg.dev/genmsg/schemafile"
)

// loadRegistry registers every message and service half described by the
// schema files.
func loadRegistry(schemaPaths []string) (*dynamic.Registry, error) {
	registry := dynamic.NewRegistry()
	for _, schemaPath := range schemaPaths {
		schema, err := schemafile.Load(schemaPath)
		if err != nil {
			return nil, err
		}
		for _, spec := range schema.Messages {
			if err := registry.AddMessage(spec); err != nil {
				return nil, err
			}
		}
		for _, spec := range schema.Services {
			if err := registry.AddService(spec); err != nil {
				return nil, err
			}
		}
	}
	return registry, nil
}

type cmdDecode struct {
	*globals
	typeName  string
	inputPath string
	hexInput  bool
}

func (*cmdDecode) help() *commandHelp {
	return &commandHelp{
		usage:   "decode --type PKG/NAME [options] SCHEMA_FILE...",
		summary: "Decode a binary message and print it as text",
	}
}

func (cmd *cmdDecode) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.typeName, "type", "t", "", "message type, e.g. demo/Point2D")
	flags.StringVarP(&cmd.inputPath, "input", "i", "", "file holding the message (default stdin)")
	flags.BoolVar(&cmd.hexInput, "hex", false, "input is hex encoded")
}

func (cmd *cmdDecode) run(ctx context.Context, argv []string) int {
	if cmd.typeName == "" || len(argv) < 1 {
		cmd.log.Error().Msgf("usage: genmsg %s", cmd.help().usage)
		return 1
	}
	registry, err := loadRegistry(argv)
	if err != nil {
		cmd.log.Error().Err(err).Send()
		return 1
	}

	input, err := cmd.readInput()
	if err != nil {
		cmd.log.Error().Err(err).Send()
		return 1
	}
	msg, rest, err := registry.Unmarshal(cmd.typeName, input)
	if err != nil {
		cmd.log.Error().Err(err).Send()
		return 1
	}
	if len(rest) > 0 {
		cmd.log.Warn().Int("bytes", len(rest)).Msg("trailing bytes after message")
	}
	if err := msgtext.EncodeTo(msg, cmd.stdout); err != nil {
		cmd.log.Error().Err(err).Send()
		return 1
	}
	return 0
}

func (cmd *cmdDecode) readInput() ([]byte, error) {
	var input []byte
	var err error
	if cmd.inputPath == "" {
		input, err = io.ReadAll(os.Stdin)
	} else {
		input, err = os.ReadFile(cmd.inputPath)
	}
	if err != nil {
		return nil, err
	}
	if !cmd.hexInput {
		return input, nil
	}
	input = bytes.Join(bytes.Fields(input), nil)
	decoded := make([]byte, hex.DecodedLen(len(input)))
	if _, err := hex.Decode(decoded, input); err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return decoded, nil
}

type cmdEncode struct {
	*globals
	typeName string
}

func (*cmdEncode) help() *commandHelp {
	return &commandHelp{
		usage:   "encode --type PKG/NAME SCHEMA_FILE...",
		summary: "Print the hex encoding of a message with default field values",
	}
}

func (cmd *cmdEncode) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.typeName, "type", "t", "", "message type, e.g. demo/Point2D")
}

func (cmd *cmdEncode) run(ctx context.Context, argv []string) int {
	if cmd.typeName == "" || len(argv) < 1 {
		cmd.log.Error().Msgf("usage: genmsg %s", cmd.help().usage)
		return 1
	}
	registry, err := loadRegistry(argv)
	if err != nil {
		cmd.log.Error().Err(err).Send()
		return 1
	}
	msg, err := registry.New(cmd.typeName)
	if err != nil {
		cmd.log.Error().Err(err).Send()
		return 1
	}
	buf, err := registry.Marshal(msg)
	if err != nil {
		cmd.log.Error().Err(err).Send()
		return 1
	}
	fmt.Fprintln(cmd.stdout, hex.EncodeToString(buf))
	return 0
}
