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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"go.genmsg.dev/genmsg/internal/testutil"
)

const (
	stdMsgsSchema = "../../internal/testmsgs/testdata/std_msgs.yaml"
	demoSchema    = "../../internal/testmsgs/testdata/demo.yaml"
)

func testGlobals(t *testing.T) (*globals, *bytes.Buffer) {
	t.Helper()
	stdout := &bytes.Buffer{}
	return &globals{
		log: zerolog.Nop(),
		cfg: &config{
			ImportPrefix: "example.com/gen",
			OutputRoot:   t.TempDir(),
		},
		stdout: stdout,
	}, stdout
}

func expectFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		if _, err := os.Stat(filepath.Join(root, name)); err != nil {
			t.Errorf("Expected %s to exist: %v", name, err)
		}
	}
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	g, _ := testGlobals(t)
	root := g.cfg.OutputRoot

	msgCmd := &cmdGenerate{globals: g, kind: kindMessage}
	testutil.ExpectEq(t, 0, msgCmd.run(ctx, []string{stdMsgsSchema, demoSchema}))
	expectFiles(t, root,
		"std_msgs/msg/Header.go",
		"std_msgs/msg/genmsg_index.go",
		"std_msgs/genmsg_index.go",
		"demo/msg/Point2D.go",
		"demo/msg/Tree.go",
		"demo/msg/Node.go",
		"demo/msg/genmsg_index.go",
		"demo/genmsg_index.go",
	)

	srvCmd := &cmdGenerate{globals: g, kind: kindService}
	testutil.ExpectEq(t, 0, srvCmd.run(ctx, []string{demoSchema}))
	expectFiles(t, root,
		"demo/srv/AddTwoInts.go",
		"demo/srv/Centroid.go",
		"demo/srv/genmsg_index.go",
	)

	tree, err := os.ReadFile(filepath.Join(root, "demo/msg/Tree.go"))
	testutil.AssertNoError(t, err)
	testutil.ExpectMatch(t, `Children\s+\[\]Node`, string(tree))

	polygon, err := os.ReadFile(filepath.Join(root, "demo/msg/Polygon.go"))
	testutil.AssertNoError(t, err)
	testutil.ExpectMatch(t, `"example.com/gen/std_msgs/msg"`, string(polygon))

	index, err := os.ReadFile(filepath.Join(root, "demo/genmsg_index.go"))
	testutil.AssertNoError(t, err)
	testutil.ExpectMatch(t, `"example.com/gen/demo/msg"`, string(index))
	testutil.ExpectMatch(t, `"example.com/gen/demo/srv"`, string(index))
}

func TestGenerate_Errors(t *testing.T) {
	ctx := context.Background()
	g, _ := testGlobals(t)
	cmd := &cmdGenerate{globals: g, kind: kindMessage}

	testutil.ExpectEq(t, 1, cmd.run(ctx, nil))
	testutil.ExpectEq(t, 1, cmd.run(ctx, []string{filepath.Join(t.TempDir(), "missing.yaml")}))

	g.cfg.OutputRoot = ""
	testutil.ExpectEq(t, 1, cmd.run(ctx, []string{demoSchema}))

	cmd.gen.outDir = t.TempDir()
	cmd.gen.definitionPlugin = filepath.Join(t.TempDir(), "missing.wasm")
	testutil.ExpectEq(t, 1, cmd.run(ctx, []string{demoSchema}))
}

func TestIndex(t *testing.T) {
	ctx := context.Background()
	g, _ := testGlobals(t)
	root := g.cfg.OutputRoot

	gen := &cmdGenerate{globals: g, kind: kindMessage}
	testutil.ExpectEq(t, 0, gen.run(ctx, []string{demoSchema}))
	pkgDir := filepath.Join(root, "demo")
	testutil.AssertNoError(t, os.Remove(filepath.Join(pkgDir, "msg", "genmsg_index.go")))
	testutil.AssertNoError(t, os.Remove(filepath.Join(pkgDir, "genmsg_index.go")))

	cmd := &cmdIndex{globals: g}
	testutil.ExpectEq(t, 0, cmd.run(ctx, []string{pkgDir}))
	expectFiles(t, pkgDir, "msg/genmsg_index.go", "genmsg_index.go")

	index, err := os.ReadFile(filepath.Join(pkgDir, "msg", "genmsg_index.go"))
	testutil.AssertNoError(t, err)
	testutil.ExpectMatch(t, `"Tree":\s+func\(\) genmsg.Message \{ return NewTree\(\) \}`, string(index))

	testutil.ExpectEq(t, 1, cmd.run(ctx, nil))
	cmd.gen.importPath = "example.com/gen/demo"
	testutil.ExpectEq(t, 1, cmd.run(ctx, []string{pkgDir, pkgDir}))
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input")
	testutil.AssertNoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDecode(t *testing.T) {
	ctx := context.Background()
	g, stdout := testGlobals(t)
	schemas := []string{stdMsgsSchema, demoSchema}

	cmd := &cmdDecode{
		globals:   g,
		typeName:  "demo/Point2D",
		inputPath: writeInput(t, "00000000 0000f03f\n00000000 000004c0\n"),
		hexInput:  true,
	}
	testutil.ExpectEq(t, 0, cmd.run(ctx, schemas))
	testutil.ExpectNoDiff(t, "x = 1\ny = -2.5\n", stdout.String())

	// Trailing bytes are reported but do not fail the command.
	stdout.Reset()
	cmd.inputPath = writeInput(t, "00000000 0000f03f 00000000 000004c0 ff")
	testutil.ExpectEq(t, 0, cmd.run(ctx, schemas))
	testutil.ExpectNoDiff(t, "x = 1\ny = -2.5\n", stdout.String())

	stdout.Reset()
	cmd.typeName = "demo/AddTwoIntsRequest"
	cmd.hexInput = false
	cmd.inputPath = writeInput(t, string([]byte{
		2, 0, 0, 0, 0, 0, 0, 0,
		0xFD, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}))
	testutil.ExpectEq(t, 0, cmd.run(ctx, schemas))
	testutil.ExpectNoDiff(t, "a = 2\nb = -3\n", stdout.String())
}

func TestDecode_Errors(t *testing.T) {
	ctx := context.Background()
	g, stdout := testGlobals(t)
	schemas := []string{stdMsgsSchema, demoSchema}
	input := writeInput(t, "0000")

	for _, tc := range []struct {
		name string
		cmd  *cmdDecode
		argv []string
	}{
		{"missing type", &cmdDecode{globals: g, inputPath: input}, schemas},
		{"missing schema", &cmdDecode{globals: g, typeName: "demo/Point2D", inputPath: input}, nil},
		{"unknown type", &cmdDecode{globals: g, typeName: "demo/Nope", inputPath: input, hexInput: true}, schemas},
		{"invalid hex", &cmdDecode{globals: g, typeName: "demo/Point2D", inputPath: writeInput(t, "zz"), hexInput: true}, schemas},
		{"truncated", &cmdDecode{globals: g, typeName: "demo/Point2D", inputPath: input, hexInput: true}, schemas},
		{"missing input", &cmdDecode{globals: g, typeName: "demo/Point2D", inputPath: filepath.Join(t.TempDir(), "nope")}, schemas},
	} {
		t.Run(tc.name, func(t *testing.T) {
			testutil.ExpectEq(t, 1, tc.cmd.run(ctx, tc.argv))
		})
	}
	testutil.ExpectEq(t, "", stdout.String())
}

func TestEncode(t *testing.T) {
	ctx := context.Background()
	g, stdout := testGlobals(t)
	schemas := []string{stdMsgsSchema, demoSchema}

	cmd := &cmdEncode{globals: g, typeName: "demo/Point2D"}
	testutil.ExpectEq(t, 0, cmd.run(ctx, schemas))
	testutil.ExpectEq(t, "00000000000000000000000000000000\n", stdout.String())

	stdout.Reset()
	cmd.typeName = "demo/Tree"
	testutil.ExpectEq(t, 0, cmd.run(ctx, schemas))
	testutil.ExpectEq(t, "0000000000000000\n", stdout.String())

	cmd.typeName = "demo/Nope"
	testutil.ExpectEq(t, 1, cmd.run(ctx, schemas))
	cmd.typeName = ""
	testutil.ExpectEq(t, 1, cmd.run(ctx, schemas))
}
