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

package testutil

import (
	"strings"
	"testing"

	"go.genmsg.dev/genmsg/msgspec"
)

// MessageSpec builds a message schema from field declarations written as
// "TYPE NAME", e.g. "float64[3] position", and constant declarations
// written as "TYPE NAME=VALUE".
func MessageSpec(t *testing.T, pkg, name string, decls ...string) *msgspec.MessageSpec {
	t.Helper()
	spec := &msgspec.MessageSpec{
		Package:   pkg,
		ShortName: name,
	}
	for _, decl := range decls {
		token, rest, ok := strings.Cut(decl, " ")
		if !ok {
			t.Fatalf("malformed declaration %q", decl)
		}
		if constName, value, isConst := strings.Cut(rest, "="); isConst {
			spec.Constants = append(spec.Constants, msgspec.Constant{
				Name:  constName,
				Type:  token,
				Value: value,
			})
			continue
		}
		field, err := msgspec.ParseField(pkg, rest, token)
		if err != nil {
			t.Fatal(err)
		}
		spec.Fields = append(spec.Fields, field)
	}
	return spec
}

// ServiceSpec builds a service schema. The request and response
// declarations are separated by "---".
func ServiceSpec(t *testing.T, pkg, name string, decls ...string) *msgspec.ServiceSpec {
	t.Helper()
	split := len(decls)
	for ii, decl := range decls {
		if decl == "---" {
			split = ii
			break
		}
	}
	if split == len(decls) {
		t.Fatalf("service %s/%s has no \"---\" separator", pkg, name)
	}
	return &msgspec.ServiceSpec{
		ShortName: name,
		Request:   *MessageSpec(t, pkg, name+"Request", decls[:split]...),
		Response:  *MessageSpec(t, pkg, name+"Response", decls[split+1:]...),
	}
}
