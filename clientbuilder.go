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
	"fmt"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/uber-go/tally"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/filamentio/filament/backoff"
	"github.com/filamentio/filament/clock"
	"github.com/filamentio/filament/codec"
	"github.com/filamentio/filament/filamenterrors"
	"github.com/filamentio/filament/filter"
	"github.com/filamentio/filament/future"
	"github.com/filamentio/filament/service"
	"github.com/filamentio/filament/transport"
	"github.com/filamentio/filament/transport/inproc"
)

// ClientBuilder accumulates client configuration and assembles it into a
// Service on Build.
//
// Builders are values: every setter returns a modified copy and never
// mutates the receiver, so partially configured builders can be shared and
// forked safely. Dest, Codec, and HostConnectionLimit are required; Build
// fails with an error naming each missing option. Configuration problems
// surface at Build time only, never at request time.
type ClientBuilder[Req, Rep any] struct {
	name      string
	dest      []string
	cdc       codec.Codec[Req, Rep]
	connLimit int
	timeout   time.Duration
	retries   int
	retryable filter.RetryableFunc
	strategy  backoff.Strategy
	logger    *zap.Logger
	scope     tally.Scope
	tracer    opentracing.Tracer
	rt        transport.RoundTripper
	clk       clock.Clock
}

// NewClient begins a client configuration.
func NewClient[Req, Rep any](name string) ClientBuilder[Req, Rep] {
	return ClientBuilder[Req, Rep]{name: name}
}

// Dest sets the destination host set. Requests rotate through the hosts
// round-robin; anything smarter is the job of a RoundTripper
// implementation.
func (b ClientBuilder[Req, Rep]) Dest(addrs ...string) ClientBuilder[Req, Rep] {
	b.dest = append([]string(nil), addrs...)
	return b
}

// Codec sets the codec translating typed requests and responses to wire
// payloads.
func (b ClientBuilder[Req, Rep]) Codec(c codec.Codec[Req, Rep]) ClientBuilder[Req, Rep] {
	b.cdc = c
	return b
}

// HostConnectionLimit caps concurrent in-flight requests per destination
// host. Requests beyond the cap fail immediately with a resource-exhausted
// error rather than queueing.
func (b ClientBuilder[Req, Rep]) HostConnectionLimit(n int) ClientBuilder[Req, Rep] {
	b.connLimit = n
	return b
}

// RequestTimeout bounds each request attempt. Zero, the default, means no
// timeout.
func (b ClientBuilder[Req, Rep]) RequestTimeout(d time.Duration) ClientBuilder[Req, Rep] {
	b.timeout = d
	return b
}

// Retries sets how many times a retryable failure is retried after the
// initial attempt. Zero, the default, disables retries.
func (b ClientBuilder[Req, Rep]) Retries(n int) ClientBuilder[Req, Rep] {
	b.retries = n
	return b
}

// Retryable overrides which failures count as retryable. The default
// retries unavailable and deadline-exceeded failures.
func (b ClientBuilder[Req, Rep]) Retryable(fn filter.RetryableFunc) ClientBuilder[Req, Rep] {
	b.retryable = fn
	return b
}

// Backoff sets the wait strategy between retry attempts. The default is an
// exponential backoff with full jitter.
func (b ClientBuilder[Req, Rep]) Backoff(s backoff.Strategy) ClientBuilder[Req, Rep] {
	b.strategy = s
	return b
}

// Logger enables structured per-call logging. By default no logs are
// emitted.
func (b ClientBuilder[Req, Rep]) Logger(logger *zap.Logger) ClientBuilder[Req, Rep] {
	b.logger = logger
	return b
}

// Metrics enables call counters and latency timers on the given scope. By
// default no metrics are collected.
func (b ClientBuilder[Req, Rep]) Metrics(scope tally.Scope) ClientBuilder[Req, Rep] {
	b.scope = scope
	return b
}

// Tracer enables a span per call. By default no spans are created.
func (b ClientBuilder[Req, Rep]) Tracer(tracer opentracing.Tracer) ClientBuilder[Req, Rep] {
	b.tracer = tracer
	return b
}

// RoundTripper sets the transport that carries encoded requests. The
// default is the shared in-process transport.
func (b ClientBuilder[Req, Rep]) RoundTripper(rt transport.RoundTripper) ClientBuilder[Req, Rep] {
	b.rt = rt
	return b
}

// Clock overrides the time source used by timeouts and retries, for tests.
func (b ClientBuilder[Req, Rep]) Clock(c clock.Clock) ClientBuilder[Req, Rep] {
	b.clk = c
	return b
}

// Build validates the configuration and assembles the client Service:
// codec, transport, and the configured filters composed into one pipeline.
func (b ClientBuilder[Req, Rep]) Build() (service.Service[Req, Rep], error) {
	var err error
	if len(b.dest) == 0 {
		err = multierr.Append(err, fmt.Errorf("missing required option %q", "dest"))
	}
	if b.cdc == nil {
		err = multierr.Append(err, fmt.Errorf("missing required option %q", "codec"))
	}
	if b.connLimit <= 0 {
		err = multierr.Append(err, fmt.Errorf("missing required option %q", "hostConnectionLimit"))
	}
	if err != nil {
		return nil, err
	}

	clk := b.clk
	if clk == nil {
		clk = clock.NewReal()
	}
	rt := b.rt
	if rt == nil {
		rt = inproc.Shared()
	}
	strategy := b.strategy
	if strategy == nil {
		strategy, err = backoff.NewExponential()
		if err != nil {
			return nil, err
		}
	}

	cdc, dest := b.cdc, b.dest
	nextHost := atomic.NewUint64(0)
	base := service.Func[Req, Rep](func(ctx context.Context, req Req) *future.Future[Rep] {
		payload, encErr := cdc.EncodeRequest(req)
		if encErr != nil {
			return future.Exception[Rep](filamenterrors.InvalidArgumentErrorf("encode request: %v", encErr))
		}
		addr := dest[(nextHost.Inc()-1)%uint64(len(dest))]
		return future.Map(rt.RoundTrip(ctx, addr, payload), func(raw []byte) (Rep, error) {
			rep, decErr := cdc.DecodeResponse(raw)
			if decErr != nil {
				var zero Rep
				return zero, filamenterrors.InvalidArgumentErrorf("decode response: %v", decErr)
			}
			return rep, nil
		})
	})

	// Outermost first: observability wraps everything, the concurrency gate
	// sits immediately above the transport so retries and timeouts are
	// accounted per attempt.
	var filters []filter.Filter[Req, Rep, Req, Rep]
	if b.logger != nil {
		filters = append(filters, filter.Logging[Req, Rep](b.logger, b.name))
	}
	if b.scope != nil {
		filters = append(filters, filter.Stats[Req, Rep](b.scope))
	}
	if b.tracer != nil {
		filters = append(filters, filter.Tracing[Req, Rep](b.tracer, b.name))
	}
	if b.retries > 0 {
		filters = append(filters, filter.Retry[Req, Rep](clk, strategy, b.retries+1, b.retryable))
	}
	if b.timeout > 0 {
		filters = append(filters, filter.Timeout[Req, Rep](clk, b.timeout))
	}
	filters = append(filters, concurrencyLimit[Req, Rep](b.connLimit*len(b.dest)))

	return filter.Apply(filter.Chain(filters...), base), nil
}
