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

package filter

import (
	"context"

	"github.com/filamentio/filament/backoff"
	"github.com/filamentio/filament/clock"
	"github.com/filamentio/filament/filamenterrors"
	"github.com/filamentio/filament/future"
	"github.com/filamentio/filament/service"
)

// RetryableFunc decides whether a failed attempt may be retried.
type RetryableFunc func(error) bool

// DefaultRetryable retries unavailable and deadline-exceeded failures, the
// two codes that indicate a transient condition rather than a broken
// request.
func DefaultRetryable(err error) bool {
	return filamenterrors.IsUnavailable(err) || filamenterrors.IsDeadlineExceeded(err)
}

// Retry returns a filter that re-invokes the inner service on retryable
// failures, waiting per the backoff strategy between attempts. maxAttempts
// counts the initial call: Retry(c, s, 3, r) makes at most three calls.
// Waits are scheduled on the clock, never by blocking the caller.
//
// The first non-retryable failure, the first success, or the exhaustion of
// attempts settles the returned Future with that attempt's outcome.
func Retry[Req, Rep any](c clock.Clock, strategy backoff.Strategy, maxAttempts int, retryable RetryableFunc) Filter[Req, Rep, Req, Rep] {
	if retryable == nil {
		retryable = DefaultRetryable
	}
	return Func[Req, Rep, Req, Rep](func(ctx context.Context, req Req, next service.Service[Req, Rep]) *future.Future[Rep] {
		out, p := future.New[Rep]()
		b := strategy.Backoff()

		var attempt func(n uint)
		attempt = func(n uint) {
			next.Apply(ctx, req).Respond(func(r future.Result[Rep]) {
				err := r.Err()
				if err == nil || int(n)+1 >= maxAttempts || !retryable(err) || ctx.Err() != nil {
					p.Complete(r)
					return
				}
				c.AfterFunc(b.Duration(n), func() {
					attempt(n + 1)
				})
			})
		}
		attempt(0)
		return out
	})
}
