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

package future

import (
	"errors"

	"go.uber.org/atomic"
)

// Map returns a Future holding fn applied to f's value. A failure of f is
// propagated untouched without invoking fn; an error returned by fn becomes
// the failure of the returned Future.
//
// Map is a package-level function rather than a method because Go methods
// cannot introduce type parameters.
func Map[T, U any](f *Future[T], fn func(T) (U, error)) *Future[U] {
	out, p := New[U]()
	f.Respond(func(r Result[T]) {
		v, err := r.Get()
		if err != nil {
			p.Failure(err)
			return
		}
		u, err := fn(v)
		if err != nil {
			p.Failure(err)
			return
		}
		p.Success(u)
	})
	return out
}

// FlatMap sequences two asynchronous operations: once f succeeds, fn is
// invoked with its value and the returned Future's eventual outcome is
// forwarded. A failure of f short-circuits without invoking fn.
//
// FlatMap is associative: FlatMap(FlatMap(a, f), g) behaves identically to
// FlatMap(a, func(x) { return FlatMap(f(x), g) }).
func FlatMap[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	out, p := New[U]()
	f.Respond(func(r Result[T]) {
		v, err := r.Get()
		if err != nil {
			p.Failure(err)
			return
		}
		fn(v).Respond(func(r2 Result[U]) {
			p.Complete(r2)
		})
	})
	return out
}

// Collect turns a slice of Futures into a Future of a slice, preserving
// input order. It fails as soon as any input fails, with that input's error.
// The remaining inputs keep settling on their own but their outcomes are not
// reflected here; Collect does not cancel them.
func Collect[T any](fs []*Future[T]) *Future[[]T] {
	if len(fs) == 0 {
		return Value([]T{})
	}
	out, p := New[[]T]()
	vals := make([]T, len(fs))
	remaining := atomic.NewInt64(int64(len(fs)))
	for i, f := range fs {
		i := i
		f.Respond(func(r Result[T]) {
			v, err := r.Get()
			if err != nil {
				p.Failure(err)
				return
			}
			vals[i] = v
			if remaining.Dec() == 0 {
				p.Success(vals)
			}
		})
	}
	return out
}

// Join waits for all Futures to succeed, discarding their values. Like
// Collect it fails fast on the first failure and cancels nothing.
func Join[T any](fs []*Future[T]) *Future[struct{}] {
	return Map(Collect(fs), func([]T) (struct{}, error) {
		return struct{}{}, nil
	})
}

// Selection is the outcome of Select: the first Result to arrive, success or
// failure, along with the inputs that had not settled first, in their
// original relative order.
type Selection[T any] struct {
	Result    Result[T]
	Remaining []*Future[T]
}

// Select settles as soon as the first input settles, yielding that input's
// Result and the remaining Futures. The losers are not cancelled; they keep
// settling on their own.
func Select[T any](fs []*Future[T]) *Future[Selection[T]] {
	if len(fs) == 0 {
		return Exception[Selection[T]](errors.New("future: Select over no futures"))
	}
	out, p := New[Selection[T]]()
	won := atomic.NewBool(false)
	for i, f := range fs {
		i := i
		f.Respond(func(r Result[T]) {
			if !won.CAS(false, true) {
				return
			}
			remaining := make([]*Future[T], 0, len(fs)-1)
			remaining = append(remaining, fs[:i]...)
			remaining = append(remaining, fs[i+1:]...)
			p.Success(Selection[T]{Result: r, Remaining: remaining})
		})
	}
	return out
}
