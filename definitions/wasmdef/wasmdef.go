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

// Package wasmdef computes message checksums and definition texts by
// calling a WebAssembly plugin.
//
// The plugin exports its linear memory and two functions:
//
//	genmsg_definitions_allocate(size i32) -> ptr i32
//	genmsg_definitions_describe(request_ptr i32, request_len i32, response_ptr_ptr i32) -> rc i32
//
// The request is a JSON document describing one compiled message. The
// plugin stores the address of its response at response_ptr_ptr; the
// response is a little-endian uint32 length followed by a JSON document
// {"md5sum": ..., "definition": ..., "error": ...}. A non-zero rc means
// the plugin failed and "error" says why.
package wasmdef

import (
	"context"
	"fmt"
	"os"
	"sync"

	json "github.com/goccy/go-json"
	wasm "github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"go.genmsg.dev/genmsg/codegen"
	"go.genmsg.dev/genmsg/compiler"
)

const (
	exportMemory   = "memory"
	exportAllocate = "genmsg_definitions_allocate"
	exportDescribe = "genmsg_definitions_describe"

	memoryLimitPages = 16384
)

// Provider is a codegen.Definitions backed by one plugin instance. Calls
// are serialized.
type Provider struct {
	mu       sync.Mutex
	runtime  wasm.Runtime
	module   api.Module
	memory   api.Memory
	allocate api.Function
	describe api.Function
}

var _ codegen.Definitions = (*Provider)(nil)

// Load reads and instantiates the plugin at path.
func Load(ctx context.Context, path string) (*Provider, error) {
	pluginBin, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wasmdef: %w", err)
	}
	return New(ctx, pluginBin)
}

// New instantiates a plugin from its compiled bytes.
func New(ctx context.Context, pluginBin []byte) (*Provider, error) {
	runtimeConfig := wasm.NewRuntimeConfigInterpreter()
	runtimeConfig = runtimeConfig.WithMemoryLimitPages(memoryLimitPages)
	runtime := wasm.NewRuntimeWithConfig(ctx, runtimeConfig)

	p, err := instantiate(ctx, runtime, pluginBin)
	if err != nil {
		runtime.Close(ctx)
		return nil, fmt.Errorf("wasmdef: %w", err)
	}
	return p, nil
}

func instantiate(ctx context.Context, runtime wasm.Runtime, pluginBin []byte) (*Provider, error) {
	if _, err := wasi_snapshot_preview1.Instantiate(ctx, runtime); err != nil {
		return nil, err
	}
	pluginExe, err := runtime.CompileModule(ctx, pluginBin)
	if err != nil {
		return nil, err
	}
	moduleConfig := wasm.NewModuleConfig().WithStartFunctions("_initialize")
	plugin, err := runtime.InstantiateModule(ctx, pluginExe, moduleConfig)
	if err != nil {
		return nil, err
	}
	memory := plugin.ExportedMemory(exportMemory)
	if memory == nil {
		return nil, fmt.Errorf("plugin does not export its memory")
	}
	p := &Provider{
		runtime:  runtime,
		module:   plugin,
		memory:   memory,
		allocate: plugin.ExportedFunction(exportAllocate),
		describe: plugin.ExportedFunction(exportDescribe),
	}
	if p.allocate == nil {
		return nil, fmt.Errorf("plugin does not export %s", exportAllocate)
	}
	if p.describe == nil {
		return nil, fmt.Errorf("plugin does not export %s", exportDescribe)
	}
	return p, nil
}

func (p *Provider) Close(ctx context.Context) error {
	return p.runtime.Close(ctx)
}

type request struct {
	Package   string            `json:"package"`
	Name      string            `json:"name"`
	Fields    []requestField    `json:"fields"`
	Constants []requestConstant `json:"constants"`
}

type requestField struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type requestConstant struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

type response struct {
	MD5Sum     string `json:"md5sum"`
	Definition string `json:"definition"`
	Error      string `json:"error"`
}

func newRequest(msg *compiler.Message) *request {
	req := &request{
		Package:   msg.Package,
		Name:      msg.Name,
		Fields:    make([]requestField, len(msg.Fields)),
		Constants: make([]requestConstant, len(msg.Constants)),
	}
	for ii, field := range msg.Fields {
		req.Fields[ii] = requestField{Name: field.Name, Type: field.Spec.Type}
	}
	for ii, constant := range msg.Constants {
		req.Constants[ii] = requestConstant{
			Name:  constant.Name,
			Type:  constant.Type,
			Value: constant.Value,
		}
	}
	return req
}

// Describe sends msg to the plugin and returns its description.
func (p *Provider) Describe(ctx context.Context, msg *compiler.Message) (codegen.Description, error) {
	requestBuf, err := json.Marshal(newRequest(msg))
	if err != nil {
		return codegen.Description{}, fmt.Errorf("wasmdef: %w", err)
	}

	p.mu.Lock()
	responseBuf, rc, err := p.call(ctx, requestBuf)
	p.mu.Unlock()
	if err != nil {
		return codegen.Description{}, fmt.Errorf("wasmdef: describe %s: %w", msg.FullName(), err)
	}

	var resp response
	if err := json.Unmarshal(responseBuf, &resp); err != nil {
		return codegen.Description{}, fmt.Errorf("wasmdef: describe %s: invalid response: %w", msg.FullName(), err)
	}
	if rc != 0 {
		return codegen.Description{}, fmt.Errorf("wasmdef: describe %s: plugin error: %s", msg.FullName(), resp.Error)
	}
	return codegen.Description{
		MD5Sum:     resp.MD5Sum,
		Definition: resp.Definition,
	}, nil
}

func (p *Provider) call(ctx context.Context, requestBuf []byte) ([]byte, uint32, error) {
	mem := p.memory

	results, err := p.allocate.Call(ctx, uint64(len(requestBuf)))
	if err != nil {
		return nil, 0, err
	}
	requestPtr := uint32(results[0])
	if !mem.Write(requestPtr, requestBuf) {
		return nil, 0, fmt.Errorf("request of %d bytes does not fit at 0x%X", len(requestBuf), requestPtr)
	}

	results, err = p.allocate.Call(ctx, 4)
	if err != nil {
		return nil, 0, err
	}
	responsePtrPtr := uint32(results[0])

	results, err = p.describe.Call(ctx, uint64(requestPtr), uint64(len(requestBuf)), uint64(responsePtrPtr))
	if err != nil {
		return nil, 0, err
	}
	rc := uint32(results[0])

	responsePtr, ok := mem.ReadUint32Le(responsePtrPtr)
	if !ok {
		return nil, 0, fmt.Errorf("failed to read response address")
	}
	responseLen, ok := mem.ReadUint32Le(responsePtr)
	if !ok {
		return nil, 0, fmt.Errorf("failed to read response length")
	}
	responseBuf, ok := mem.Read(responsePtr+4, responseLen)
	if !ok {
		return nil, 0, fmt.Errorf("failed to read response")
	}
	return responseBuf, rc, nil
}
