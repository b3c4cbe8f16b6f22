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
	"time"

	"github.com/filamentio/filament/clock"
	"github.com/filamentio/filament/filamenterrors"
	"github.com/filamentio/filament/future"
	"github.com/filamentio/filament/service"
)

// Timeout returns a filter that races the inner call against a timer. If the
// timer wins, the caller observes a deadline-exceeded failure; the late
// outcome of the inner call is discarded, not cancelled.
func Timeout[Req, Rep any](c clock.Clock, d time.Duration) Filter[Req, Rep, Req, Rep] {
	return Func[Req, Rep, Req, Rep](func(ctx context.Context, req Req, next service.Service[Req, Rep]) *future.Future[Rep] {
		return next.Apply(ctx, req).Within(c, d, func() future.Result[Rep] {
			return future.Throw[Rep](filamenterrors.DeadlineExceededErrorf("call did not complete within %v", d))
		})
	})
}
