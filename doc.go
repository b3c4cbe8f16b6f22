// Copyright (c) 2026 Filament Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package filament is a toolkit for building RPC clients and servers from
// small, composable parts.
//
// Three abstractions carry the whole design. A Future (package future) is a
// read-only handle for a value or error that is not available yet, with a
// combinator algebra for sequencing and aggregation. A Service (package
// service) is a single asynchronous operation from a request to a Future of
// a response; clients invoke Services and servers implement them. A Filter
// (package filter) wraps a Service with cross-cutting behavior such as
// timeouts, retries, authentication, and observability, yielding a new
// Service.
//
// This package provides the builders that assemble those parts. A
// ClientBuilder composes a codec, a transport, and a filter stack into a
// Service; a ServerBuilder binds a Service behind the same kind of pipeline
// to a listening address. Builders have value semantics: every setter
// returns a modified copy, and a final Build or Serve call validates that
// all required options are present before anything runs.
//
// Wire protocols are deliberately absent. Codecs (package codec) and
// transports (package transport) are pluggable collaborators; the inproc
// transport serves tests and same-process wiring.
package filament
