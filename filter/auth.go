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

	"github.com/filamentio/filament/filamenterrors"
	"github.com/filamentio/filament/future"
	"github.com/filamentio/filament/service"
)

// Authenticator resolves a request's credentials to an authorized form of
// the request, typically by consulting an external identity service. A
// failed Future denies the request.
type Authenticator[Req any] func(ctx context.Context, req Req) *future.Future[Req]

// Authenticate returns a filter that performs a sequential
// credentials-to-identity lookup before the inner call. On success the inner
// service receives the authorized request; on failure the caller observes an
// unauthenticated error and the inner service is never invoked.
func Authenticate[Req, Rep any](auth Authenticator[Req]) Filter[Req, Rep, Req, Rep] {
	return Func[Req, Rep, Req, Rep](func(ctx context.Context, req Req, next service.Service[Req, Rep]) *future.Future[Rep] {
		checked := auth(ctx, req).Rescue(func(err error) future.Result[Req] {
			if filamenterrors.IsStatus(err) {
				return future.Throw[Req](err)
			}
			return future.Throw[Req](filamenterrors.UnauthenticatedErrorf("authentication failed: %v", err))
		})
		return future.FlatMap(checked, func(authorized Req) *future.Future[Rep] {
			return next.Apply(ctx, authorized)
		})
	})
}
