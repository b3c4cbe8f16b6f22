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

// Package transport defines the byte-level boundary that real wire
// protocols implement.
//
// The core ships no wire protocol: connection management, pooling, and load
// balancing belong to RoundTripper and Listener implementations. The inproc
// subpackage provides a process-local implementation for tests and
// same-process wiring.
package transport

import (
	"context"

	"github.com/filamentio/filament/future"
)

// Handler serves one encoded request, returning the encoded response.
type Handler func(ctx context.Context, req []byte) *future.Future[[]byte]

// RoundTripper delivers an encoded request to the given address and returns
// the encoded response. Implementations must not block: RoundTrip returns
// immediately with a possibly pending Future.
type RoundTripper interface {
	RoundTrip(ctx context.Context, addr string, req []byte) *future.Future[[]byte]
}

// Listener binds a Handler to an address, returning a handle that releases
// the binding.
type Listener interface {
	Listen(addr string, h Handler) (Stopper, error)
}

// Stopper releases a bound address. Stop is idempotent.
type Stopper interface {
	Stop() error
}
