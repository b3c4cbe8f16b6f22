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

package filament

import (
	"context"

	"go.uber.org/atomic"

	"github.com/filamentio/filament/filamenterrors"
	"github.com/filamentio/filament/filter"
	"github.com/filamentio/filament/future"
	"github.com/filamentio/filament/service"
)

// concurrencyLimit returns a filter that fails requests with a
// resource-exhausted error once max requests are in flight. It never
// queues: Apply stays non-blocking.
func concurrencyLimit[Req, Rep any](max int) filter.Filter[Req, Rep, Req, Rep] {
	inflight := atomic.NewInt64(0)
	return filter.Func[Req, Rep, Req, Rep](func(ctx context.Context, req Req, next service.Service[Req, Rep]) *future.Future[Rep] {
		if inflight.Inc() > int64(max) {
			inflight.Dec()
			return future.Exception[Rep](filamenterrors.ResourceExhaustedErrorf("concurrent request limit of %d reached", max))
		}
		f := next.Apply(ctx, req)
		f.Respond(func(future.Result[Rep]) {
			inflight.Dec()
		})
		return f
	})
}
