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

	"github.com/uber-go/tally"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/filamentio/filament/codec"
	"github.com/filamentio/filament/filamenterrors"
	"github.com/filamentio/filament/filter"
	"github.com/filamentio/filament/future"
	"github.com/filamentio/filament/service"
	"github.com/filamentio/filament/transport"
	"github.com/filamentio/filament/transport/inproc"
)

// ServerBuilder accumulates server configuration; Serve binds a Service to
// the configured address.
//
// Like ClientBuilder it has value semantics: setters return modified copies.
// Name, BindTo, and Codec are required; Serve fails with an error naming
// each missing option before anything is bound.
type ServerBuilder[Req, Rep any] struct {
	name          string
	bind          string
	cdc           codec.Codec[Req, Rep]
	maxConcurrent int
	logger        *zap.Logger
	scope         tally.Scope
	listener      transport.Listener
}

// NewServer begins a server configuration.
func NewServer[Req, Rep any]() ServerBuilder[Req, Rep] {
	return ServerBuilder[Req, Rep]{}
}

// Name sets the name under which the server identifies itself, used in logs
// and metrics.
func (b ServerBuilder[Req, Rep]) Name(name string) ServerBuilder[Req, Rep] {
	b.name = name
	return b
}

// BindTo sets the address the server listens on. Its format is interpreted
// by the configured Listener.
func (b ServerBuilder[Req, Rep]) BindTo(addr string) ServerBuilder[Req, Rep] {
	b.bind = addr
	return b
}

// Codec sets the codec translating wire payloads to typed requests and
// responses.
func (b ServerBuilder[Req, Rep]) Codec(c codec.Codec[Req, Rep]) ServerBuilder[Req, Rep] {
	b.cdc = c
	return b
}

// MaxConcurrentRequests caps requests served concurrently. Requests beyond
// the cap fail with a resource-exhausted error. Zero, the default, means no
// cap.
func (b ServerBuilder[Req, Rep]) MaxConcurrentRequests(n int) ServerBuilder[Req, Rep] {
	b.maxConcurrent = n
	return b
}

// Logger enables structured per-request logging. By default no logs are
// emitted.
func (b ServerBuilder[Req, Rep]) Logger(logger *zap.Logger) ServerBuilder[Req, Rep] {
	b.logger = logger
	return b
}

// Metrics enables request counters and latency timers on the given scope.
func (b ServerBuilder[Req, Rep]) Metrics(scope tally.Scope) ServerBuilder[Req, Rep] {
	b.scope = scope
	return b
}

// Listener sets the transport that accepts encoded requests. The default is
// the shared in-process transport.
func (b ServerBuilder[Req, Rep]) Listener(l transport.Listener) ServerBuilder[Req, Rep] {
	b.listener = l
	return b
}

// Serve validates the configuration, wraps svc with the configured filters,
// and binds the resulting pipeline to the configured address. The returned
// Server is the handle for the running endpoint.
func (b ServerBuilder[Req, Rep]) Serve(svc service.Service[Req, Rep]) (*Server, error) {
	var err error
	if b.name == "" {
		err = multierr.Append(err, fmt.Errorf("missing required option %q", "name"))
	}
	if b.bind == "" {
		err = multierr.Append(err, fmt.Errorf("missing required option %q", "bind"))
	}
	if b.cdc == nil {
		err = multierr.Append(err, fmt.Errorf("missing required option %q", "codec"))
	}
	if err != nil {
		return nil, err
	}

	listener := b.listener
	if listener == nil {
		listener = inproc.Shared()
	}
	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("server", b.name))

	var filters []filter.Filter[Req, Rep, Req, Rep]
	if b.logger != nil {
		filters = append(filters, filter.Logging[Req, Rep](b.logger, b.name))
	}
	if b.scope != nil {
		filters = append(filters, filter.Stats[Req, Rep](b.scope))
	}
	if b.maxConcurrent > 0 {
		filters = append(filters, concurrencyLimit[Req, Rep](b.maxConcurrent))
	}
	pipeline := filter.Apply(filter.Chain(filters...), svc)

	cdc := b.cdc
	handler := transport.Handler(func(ctx context.Context, data []byte) *future.Future[[]byte] {
		req, decErr := cdc.DecodeRequest(data)
		if decErr != nil {
			return future.Exception[[]byte](filamenterrors.InvalidArgumentErrorf("decode request: %v", decErr))
		}
		return future.Map(pipeline.Apply(ctx, req), func(rep Rep) ([]byte, error) {
			return cdc.EncodeResponse(rep)
		})
	})

	stopper, err := listener.Listen(b.bind, handler)
	if err != nil {
		return nil, err
	}
	logger.Info("server listening", zap.String("addr", b.bind))
	return &Server{
		name:    b.name,
		addr:    b.bind,
		stopper: stopper,
		logger:  logger,
	}, nil
}
