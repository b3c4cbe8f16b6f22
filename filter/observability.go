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

	"github.com/uber-go/tally"
	"go.uber.org/zap"

	"github.com/filamentio/filament/future"
	"github.com/filamentio/filament/service"
)

// Logging returns a filter that emits a structured log line per call
// outcome. Successes log at debug level, failures at error level, both with
// the observed latency.
func Logging[Req, Rep any](logger *zap.Logger, name string) Filter[Req, Rep, Req, Rep] {
	logger = logger.With(zap.String("service", name))
	return Func[Req, Rep, Req, Rep](func(ctx context.Context, req Req, next service.Service[Req, Rep]) *future.Future[Rep] {
		start := time.Now()
		return next.Apply(ctx, req).
			OnSuccess(func(Rep) {
				logger.Debug("call succeeded", zap.Duration("latency", time.Since(start)))
			}).
			OnFailure(func(err error) {
				logger.Error("call failed", zap.Duration("latency", time.Since(start)), zap.Error(err))
			})
	})
}

// Stats returns a filter that counts calls, successes, and failures, and
// times call latency on the given scope.
func Stats[Req, Rep any](scope tally.Scope) Filter[Req, Rep, Req, Rep] {
	var (
		calls     = scope.Counter("calls")
		successes = scope.Counter("successes")
		failures  = scope.Counter("failures")
		latency   = scope.Timer("latency")
	)
	return Func[Req, Rep, Req, Rep](func(ctx context.Context, req Req, next service.Service[Req, Rep]) *future.Future[Rep] {
		calls.Inc(1)
		sw := latency.Start()
		return next.Apply(ctx, req).
			OnSuccess(func(Rep) {
				sw.Stop()
				successes.Inc(1)
			}).
			OnFailure(func(error) {
				sw.Stop()
				failures.Inc(1)
			})
	})
}
