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

// Package testmsgs holds generated message packages used by tests. The
// packages are regenerated from the descriptors in testdata.
package testmsgs

//go:generate go run go.genmsg.dev/genmsg/bin/genmsg msg --import-path go.genmsg.dev/genmsg/internal/testmsgs/std_msgs -o std_msgs/msg testdata/std_msgs.yaml
//go:generate go run go.genmsg.dev/genmsg/bin/genmsg msg --import-path go.genmsg.dev/genmsg/internal/testmsgs/demo --search-root .=go.genmsg.dev/genmsg/internal/testmsgs -o demo/msg testdata/demo.yaml
//go:generate go run go.genmsg.dev/genmsg/bin/genmsg srv --import-path go.genmsg.dev/genmsg/internal/testmsgs/demo --search-root .=go.genmsg.dev/genmsg/internal/testmsgs -o demo/srv testdata/demo.yaml
