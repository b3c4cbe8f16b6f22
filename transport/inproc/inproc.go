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

// Package inproc provides a process-local transport: a registry mapping
// addresses to handlers, with requests served on their own goroutines.
//
// It is not a wire protocol. It exists so that clients, servers, and filter
// pipelines can be exercised end to end in one process; real transports
// implement the same transport interfaces.
package inproc

import (
	"context"
	"fmt"
	"sync"

	"github.com/filamentio/filament/filamenterrors"
	"github.com/filamentio/filament/future"
	"github.com/filamentio/filament/transport"
)

// Transport is an in-process address registry implementing both
// transport.RoundTripper and transport.Listener.
type Transport struct {
	mu       sync.RWMutex
	handlers map[string]transport.Handler
}

var (
	_ transport.RoundTripper = (*Transport)(nil)
	_ transport.Listener     = (*Transport)(nil)
)

// New returns an empty in-process transport.
func New() *Transport {
	return &Transport{handlers: make(map[string]transport.Handler)}
}

var shared = New()

// Shared returns the process-wide transport instance, the default for
// builders that are not given an explicit transport.
func Shared() *Transport {
	return shared
}

// RoundTrip dispatches the request to the handler bound to addr on a new
// goroutine. An unbound address yields an unavailable error.
func (t *Transport) RoundTrip(ctx context.Context, addr string, req []byte) *future.Future[[]byte] {
	t.mu.RLock()
	h, ok := t.handlers[addr]
	t.mu.RUnlock()
	if !ok {
		return future.Exception[[]byte](filamenterrors.UnavailableErrorf("no server bound to %q", addr))
	}

	out, p := future.New[[]byte]()
	go func() {
		h(ctx, req).Respond(func(r future.Result[[]byte]) {
			p.Complete(r)
		})
	}()
	return out
}

// Listen binds h to addr. Binding an address twice is an error.
func (t *Transport) Listen(addr string, h transport.Handler) (transport.Stopper, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.handlers[addr]; ok {
		return nil, fmt.Errorf("address %q is already bound", addr)
	}
	t.handlers[addr] = h
	return &binding{t: t, addr: addr}, nil
}

type binding struct {
	t    *Transport
	addr string

	once sync.Once
}

// Stop releases the binding. It is idempotent.
func (b *binding) Stop() error {
	b.once.Do(func() {
		b.t.mu.Lock()
		delete(b.t.handlers, b.addr)
		b.t.mu.Unlock()
	})
	return nil
}
