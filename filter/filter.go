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

// Package filter provides composable request/response transformers that wrap
// services with cross-cutting behavior such as timeouts, retries,
// authentication, and observability, without modifying the wrapped service.
package filter

import (
	"context"

	"github.com/filamentio/filament/future"
	"github.com/filamentio/filament/service"
)

// Filter intercepts both directions of a call to a Service. The four type
// parameters are, in order: the request type the filter accepts, the
// response type it produces for its caller, the request type it passes to
// the next service, and the response type it receives back.
//
// A filter that does not translate types has ReqIn = ReqOut and
// RepOut = RepIn; constructors for such filters live in this package
// (Timeout, Retry, and friends).
type Filter[ReqIn, RepOut, ReqOut, RepIn any] interface {
	Apply(ctx context.Context, req ReqIn, next service.Service[ReqOut, RepIn]) *future.Future[RepOut]
}

// Func adapts a function to the Filter interface.
type Func[ReqIn, RepOut, ReqOut, RepIn any] func(ctx context.Context, req ReqIn, next service.Service[ReqOut, RepIn]) *future.Future[RepOut]

// Apply calls the underlying function.
func (f Func[ReqIn, RepOut, ReqOut, RepIn]) Apply(ctx context.Context, req ReqIn, next service.Service[ReqOut, RepIn]) *future.Future[RepOut] {
	return f(ctx, req, next)
}

// AndThen chains two filters left to right: outer sees the request first and
// the response last. The middle request/response types of the two filters
// are a single pair of type parameters, so a chain with mismatched middle
// types does not compile; no mismatch can survive to request time.
func AndThen[ReqIn, RepOut, ReqMid, RepMid, ReqOut, RepIn any](
	outer Filter[ReqIn, RepOut, ReqMid, RepMid],
	inner Filter[ReqMid, RepMid, ReqOut, RepIn],
) Filter[ReqIn, RepOut, ReqOut, RepIn] {
	return Func[ReqIn, RepOut, ReqOut, RepIn](func(ctx context.Context, req ReqIn, next service.Service[ReqOut, RepIn]) *future.Future[RepOut] {
		return outer.Apply(ctx, req, service.Func[ReqMid, RepMid](func(ctx context.Context, mid ReqMid) *future.Future[RepMid] {
			return inner.Apply(ctx, mid, next)
		}))
	})
}

// Apply terminates a filter chain with a Service, yielding a new Service
// whose request and response types are the chain's outermost types.
func Apply[ReqIn, RepOut, ReqOut, RepIn any](
	f Filter[ReqIn, RepOut, ReqOut, RepIn],
	svc service.Service[ReqOut, RepIn],
) service.Service[ReqIn, RepOut] {
	return service.Func[ReqIn, RepOut](func(ctx context.Context, req ReqIn) *future.Future[RepOut] {
		return f.Apply(ctx, req, svc)
	})
}

// Identity is the unit of composition: it forwards requests and responses
// unchanged.
func Identity[Req, Rep any]() Filter[Req, Rep, Req, Rep] {
	return Func[Req, Rep, Req, Rep](func(ctx context.Context, req Req, next service.Service[Req, Rep]) *future.Future[Rep] {
		return next.Apply(ctx, req)
	})
}

// Chain combines a series of same-typed filters into a single filter,
// applied in the order given: the first filter sees a request first.
func Chain[Req, Rep any](filters ...Filter[Req, Rep, Req, Rep]) Filter[Req, Rep, Req, Rep] {
	switch len(filters) {
	case 0:
		return Identity[Req, Rep]()
	case 1:
		return filters[0]
	}
	return Func[Req, Rep, Req, Rep](func(ctx context.Context, req Req, next service.Service[Req, Rep]) *future.Future[Rep] {
		return chainExec[Req, Rep]{chain: filters, final: next}.Apply(ctx, req)
	})
}

// chainExec adapts a series of filters into a Service. It is scoped to a
// single call and is not thread-safe.
type chainExec[Req, Rep any] struct {
	chain []Filter[Req, Rep, Req, Rep]
	final service.Service[Req, Rep]
}

func (x chainExec[Req, Rep]) Apply(ctx context.Context, req Req) *future.Future[Rep] {
	if len(x.chain) == 0 {
		return x.final.Apply(ctx, req)
	}
	next := x.chain[0]
	x.chain = x.chain[1:]
	return next.Apply(ctx, req, x)
}
