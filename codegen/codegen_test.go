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

package codegen_test

import (
	"bytes"
	"context"
	"errors"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"unicode"

	"github.com/rs/zerolog"

	"go.genmsg.dev/genmsg/codegen"
	"go.genmsg.dev/genmsg/compiler"
	"go.genmsg.dev/genmsg/internal/testutil"
	"go.genmsg.dev/genmsg/schemafile"
)

const (
	testmsgsDir    = "../internal/testmsgs"
	testmsgsPrefix = "go.genmsg.dev/genmsg/internal/testmsgs"
)

func loadSchema(t *testing.T, name string) *schemafile.Schema {
	t.Helper()
	schema, err := schemafile.Load(filepath.Join(testmsgsDir, "testdata", name))
	testutil.AssertNoError(t, err)
	return schema
}

// generateTestmsgs regenerates the checked-in test packages under outDir.
func generateTestmsgs(t *testing.T, outDir string) {
	t.Helper()
	ctx := context.Background()

	std := loadSchema(t, "std_msgs.yaml")
	gen := codegen.New(codegen.WithImportPath(testmsgsPrefix + "/std_msgs"))
	for _, spec := range std.Messages {
		_, err := gen.GenerateMessage(ctx, spec, filepath.Join(outDir, "std_msgs", "msg"))
		testutil.AssertNoError(t, err)
	}

	demo := loadSchema(t, "demo.yaml")
	gen = codegen.New(
		codegen.WithImportPath(testmsgsPrefix+"/demo"),
		codegen.WithSearchRoots(compiler.SearchRoot{Dir: outDir, ImportPrefix: testmsgsPrefix}),
	)
	for _, spec := range demo.Messages {
		artifact, err := gen.GenerateMessage(ctx, spec, filepath.Join(outDir, "demo", "msg"))
		testutil.AssertNoError(t, err)
		testutil.ExpectEq(t, 0, len(artifact.Warnings))
	}
	for _, spec := range demo.Services {
		_, err := gen.GenerateService(ctx, spec, filepath.Join(outDir, "demo", "srv"))
		testutil.AssertNoError(t, err)
	}
}

func listGoFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && d.Name() == "testdata" {
			return filepath.SkipDir
		}
		if !d.IsDir() && strings.HasSuffix(path, ".go") {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	testutil.AssertNoError(t, err)
	slices.Sort(files)
	return files
}

func stripSpace(src []byte) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, string(src))
}

func TestGenerate_Testmsgs(t *testing.T) {
	outDir := t.TempDir()
	generateTestmsgs(t, outDir)

	want := listGoFiles(t, testmsgsDir)
	want = slices.DeleteFunc(want, func(name string) bool {
		return name == "testmsgs.go"
	})
	testutil.ExpectSliceEq(t, want, listGoFiles(t, outDir))

	for _, name := range want {
		wantSrc, err := os.ReadFile(filepath.Join(testmsgsDir, name))
		testutil.AssertNoError(t, err)
		gotSrc, err := os.ReadFile(filepath.Join(outDir, name))
		testutil.AssertNoError(t, err)

		// Layout is gofmt's, so only the token text is compared.
		if stripSpace(wantSrc) != stripSpace(gotSrc) {
			t.Errorf("%s differs from the checked-in copy", name)
			testutil.ExpectNoDiff(t, string(wantSrc), string(gotSrc))
		}
	}
}

func TestRenderMessage_Deterministic(t *testing.T) {
	ctx := context.Background()
	demo := loadSchema(t, "demo.yaml")
	gen := codegen.New(codegen.WithImportPath(testmsgsPrefix + "/demo"))
	for _, spec := range demo.Messages {
		first, err := gen.RenderMessage(ctx, spec)
		testutil.AssertNoError(t, err)
		second, err := gen.RenderMessage(ctx, spec)
		testutil.AssertNoError(t, err)
		testutil.ExpectBytesEq(t, first.Source, second.Source)
	}
}

func TestRenderMessage_Parses(t *testing.T) {
	spec := testutil.MessageSpec(t, "demo", "Everything",
		"bool flag",
		"char[4] code",
		"duration[3] waits",
		"geometry_msgs/Pose[2] poses",
		"Header header",
		"Point2D[] points",
		"string[] names",
		"int64 LIMIT=9223372036854775807",
		"string GREETING=say \"hi\"",
	)
	gen := codegen.New(codegen.WithImportPath("example.com/gen/demo"))
	artifact, err := gen.RenderMessage(context.Background(), spec)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "Everything", artifact.Name)
	testutil.ExpectEq(t, "", artifact.Path)

	// Both external packages are unresolved.
	testutil.ExpectEq(t, 2, len(artifact.Warnings))

	file, err := parser.ParseFile(token.NewFileSet(), "Everything.go", artifact.Source, parser.ParseComments)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "msg", file.Name.Name)

	var imports []string
	for _, spec := range file.Imports {
		imports = append(imports, spec.Path.Value)
	}
	testutil.ExpectSliceEq(t, []string{
		`"example.com/gen/geometry_msgs/msg"`,
		`"example.com/gen/std_msgs/msg"`,
		`"go.genmsg.dev/genmsg"`,
		`"go.genmsg.dev/genmsg/encoding/msgbin"`,
	}, imports)

	src := string(artifact.Source)
	for _, want := range []string{
		`Code\s+\[4\]uint8\n`,
		`Waits\s+\[3\]genmsg\.Duration\n`,
		`Poses\s+\[2\]geometry_msgs\.Pose\n`,
		`\[2\]geometry_msgs\.Pose\{\*geometry_msgs\.NewPose\(\), \*geometry_msgs\.NewPose\(\)\}`,
		`\[3\]genmsg\.Duration\{(genmsg\.Duration\{Sec: 0, Nsec: 0\}(, )?){3}\}`,
		`\*std_msgs\.NewHeader\(\)`,
		`msgbin\.ReadArray\(dec, m\.Code\[:\]\)`,
		`Everything_LIMIT\s+int64\s+= 9223372036854775807\n`,
		`Everything_GREETING\s+string\s+= "say \\"hi\\""\n`,
	} {
		testutil.ExpectMatch(t, want, src)
	}
}

func TestRenderMessage_Empty(t *testing.T) {
	spec := testutil.MessageSpec(t, "demo", "Empty")
	artifact, err := codegen.New().RenderMessage(context.Background(), spec)
	testutil.AssertNoError(t, err)

	src := string(artifact.Source)
	testutil.ExpectTrue(t, strings.Contains(src, "return &Empty{}"))
	testutil.ExpectFalse(t, strings.Contains(src, "var err error"))
}

func TestRenderMessage_FieldNames(t *testing.T) {
	spec := testutil.MessageSpec(t, "demo", "Names",
		"int8 datatype",
		"int8 x",
		"int8 X",
		"int8 frame_id",
	)
	artifact, err := codegen.New().RenderMessage(context.Background(), spec)
	testutil.AssertNoError(t, err)

	src := string(artifact.Source)
	for _, want := range []string{
		`Datatype_\s+int8\n`,
		`\tX\s+int8\n`,
		`\tX_\s+int8\n`,
		`FrameId\s+int8\n`,
		`// Serialize message field \[frame_id\]`,
	} {
		testutil.ExpectMatch(t, want, src)
	}
}

func TestRenderMessage_ImportAlias(t *testing.T) {
	spec := testutil.MessageSpec(t, "demo", "Wrapper", "msg/Thing thing", "err/Code code")
	gen := codegen.New(codegen.WithImportPath("example.com/gen/demo"))
	artifact, err := gen.RenderMessage(context.Background(), spec)
	testutil.AssertNoError(t, err)

	src := string(artifact.Source)
	testutil.ExpectTrue(t, strings.Contains(src, `msg_pkg "example.com/gen/msg/msg"`))
	testutil.ExpectTrue(t, strings.Contains(src, `err_pkg "example.com/gen/err/msg"`))
	testutil.ExpectMatch(t, `Thing\s+msg_pkg\.Thing\n`, src)
}

func TestRenderMessage_CompileError(t *testing.T) {
	spec := testutil.MessageSpec(t, "demo", "Dup", "int8 a", "int8 a")
	_, err := codegen.New().RenderMessage(context.Background(), spec)
	testutil.ExpectErrorMatch(t, `^E3004: `, err)
}

type stubDefinitions struct{}

func (stubDefinitions) Describe(_ context.Context, msg *compiler.Message) (codegen.Description, error) {
	if msg.Name == "Broken" {
		return codegen.Description{}, errors.New("no definition")
	}
	return codegen.Description{
		MD5Sum:     "0123456789abcdef",
		Definition: "int8 a\n",
	}, nil
}

func TestRenderMessage_Definitions(t *testing.T) {
	gen := codegen.New(codegen.WithDefinitions(stubDefinitions{}))
	artifact, err := gen.RenderMessage(context.Background(), testutil.MessageSpec(t, "demo", "A", "int8 a"))
	testutil.AssertNoError(t, err)

	src := string(artifact.Source)
	testutil.ExpectTrue(t, strings.Contains(src, `return "0123456789abcdef"`))
	testutil.ExpectTrue(t, strings.Contains(src, `return "int8 a\n"`))

	_, err = gen.RenderMessage(context.Background(), testutil.MessageSpec(t, "demo", "Broken", "int8 a"))
	testutil.ExpectErrorMatch(t, `describe demo/Broken: no definition`, err)
}

func TestRenderService_ImportsSiblingMessages(t *testing.T) {
	spec := testutil.ServiceSpec(t, "demo", "Move",
		"Point2D target",
		"---",
		"Point2D reached",
		"Header header",
	)
	_, err := codegen.New().RenderService(context.Background(), spec)
	testutil.ExpectErrorMatch(t, `import path is required`, err)

	gen := codegen.New(codegen.WithImportPath("example.com/gen/demo"))
	artifact, err := gen.RenderService(context.Background(), spec)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "Move", artifact.Name)

	src := string(artifact.Source)
	for _, want := range []string{
		`package srv\n`,
		`\t"example.com/gen/demo/msg"\n`,
		`std_msgs "example.com/gen/std_msgs/msg"`,
		`Target\s+msg\.Point2D\n`,
		`\*msg\.NewPoint2D\(\)`,
		`type MoveRequest struct`,
		`type MoveResponse struct`,
		`Datatype:\s+"demo/Move",`,
	} {
		testutil.ExpectMatch(t, want, src)
	}
	testutil.ExpectFalse(t, strings.Contains(src, `"example.com/gen/demo"`))

	// Only the response refers to std_msgs.
	testutil.ExpectEq(t, 1, len(artifact.Warnings))
}

func TestGenerateMessage_Logging(t *testing.T) {
	var logs bytes.Buffer
	gen := codegen.New(
		codegen.WithImportPath("example.com/gen/demo"),
		codegen.WithLogger(zerolog.New(&logs).Level(zerolog.DebugLevel)),
	)
	outDir := filepath.Join(t.TempDir(), "demo", "msg")
	spec := testutil.MessageSpec(t, "demo", "Stamped", "Header header")
	artifact, err := gen.GenerateMessage(context.Background(), spec, outDir)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, filepath.Join(outDir, "Stamped.go"), artifact.Path)

	text := logs.String()
	testutil.ExpectTrue(t, strings.Contains(text, `"code":4000`))
	testutil.ExpectTrue(t, strings.Contains(text, `"level":"warn"`))
	testutil.ExpectTrue(t, strings.Contains(text, "wrote generated file"))
}

func TestGenerateMessage_ExistingDirectory(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "demo", "msg")
	testutil.AssertNoError(t, os.MkdirAll(outDir, 0o755))

	gen := codegen.New(codegen.WithImportPath("example.com/gen/demo"))
	_, err := gen.GenerateMessage(context.Background(), testutil.MessageSpec(t, "demo", "A", "int8 a"), outDir)
	testutil.AssertNoError(t, err)
}

func TestGenerateMessage_RequiresImportPath(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "demo", "msg")
	_, err := codegen.New().GenerateMessage(context.Background(), testutil.MessageSpec(t, "demo", "A", "int8 a"), outDir)
	testutil.ExpectErrorMatch(t, `import path is required`, err)
}

func TestRebuildIndex(t *testing.T) {
	ctx := context.Background()
	pkgDir := filepath.Join(t.TempDir(), "demo")
	gen := codegen.New(codegen.WithImportPath("example.com/gen/demo"))
	for _, name := range []string{"A", "B", "C"} {
		_, err := gen.GenerateMessage(ctx, testutil.MessageSpec(t, "demo", name, "int8 a"), filepath.Join(pkgDir, "msg"))
		testutil.AssertNoError(t, err)
	}

	index, err := os.ReadFile(filepath.Join(pkgDir, "msg", "genmsg_index.go"))
	testutil.AssertNoError(t, err)
	testutil.ExpectTrue(t, strings.Contains(string(index), `"B": func() genmsg.Message { return NewB() },`))

	testutil.AssertNoError(t, os.Remove(filepath.Join(pkgDir, "msg", "B.go")))
	testutil.AssertNoError(t, os.WriteFile(filepath.Join(pkgDir, "msg", "A_test.go"), nil, 0o644))
	testutil.AssertNoError(t, gen.RebuildIndex(pkgDir))

	index, err = os.ReadFile(filepath.Join(pkgDir, "msg", "genmsg_index.go"))
	testutil.AssertNoError(t, err)
	testutil.ExpectFalse(t, strings.Contains(string(index), "NewB"))
	testutil.ExpectFalse(t, strings.Contains(string(index), "A_test"))
	testutil.ExpectTrue(t, strings.Contains(string(index), "NewC"))

	aggregate, err := os.ReadFile(filepath.Join(pkgDir, "genmsg_index.go"))
	testutil.AssertNoError(t, err)
	testutil.ExpectTrue(t, strings.Contains(string(aggregate), "var Messages = msg.Messages"))
	testutil.ExpectFalse(t, strings.Contains(string(aggregate), "Services"))
}
