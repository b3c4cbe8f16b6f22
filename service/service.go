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

// Package service defines the unit of RPC work: a function from one request
// to one deferred response.
//
// Clients and servers are symmetric users of the same abstraction. A client
// obtains a Service from a builder and invokes it per request; a server
// implements the Service contract directly. Proxies compose by invoking an
// inner Service and transforming its Future with future.Map and
// future.FlatMap.
package service

import (
	"context"

	"github.com/filamentio/filament/future"
)

// Service is a single asynchronous operation from Req to Rep.
//
// Apply must not block: it returns immediately with a possibly pending
// Future. Implementations that fail synchronously should return an
// already-failed Future rather than panic, so that callers observe every
// outcome through the same channel.
type Service[Req, Rep any] interface {
	Apply(ctx context.Context, req Req) *future.Future[Rep]
}

// Func adapts a function to the Service interface.
type Func[Req, Rep any] func(ctx context.Context, req Req) *future.Future[Rep]

// Apply calls the underlying function.
func (f Func[Req, Rep]) Apply(ctx context.Context, req Req) *future.Future[Rep] {
	return f(ctx, req)
}

// Const returns a Service that answers every request with rep.
func Const[Req, Rep any](rep Rep) Service[Req, Rep] {
	return Func[Req, Rep](func(context.Context, Req) *future.Future[Rep] {
		return future.Value(rep)
	})
}

// Fail returns a Service that answers every request with err.
func Fail[Req, Rep any](err error) Service[Req, Rep] {
	return Func[Req, Rep](func(context.Context, Req) *future.Future[Rep] {
		return future.Exception[Rep](err)
	})
}
