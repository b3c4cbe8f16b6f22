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
	"context"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/filamentio/filament/clock"
)

// Future is a read-only handle for a value or error that may not be
// available yet.
//
// A Future is settled exactly once through its Promise. Observers register
// continuations with Respond (or the derived combinators) and may share the
// Future freely: once settled, the result is immutable and safe to read from
// any goroutine.
//
// Continuations registered before settlement run exactly once, in
// registration order, on the goroutine that settles the Promise.
// Continuations registered after settlement run immediately on the
// registering goroutine. Continuations must not block; settlement may happen
// on an I/O or timer goroutine.
type Future[T any] struct {
	settled *atomic.Bool

	mu      sync.Mutex
	result  Result[T]
	waiters []func(Result[T])

	done chan struct{}
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		settled: atomic.NewBool(false),
		done:    make(chan struct{}),
	}
}

// New creates an unsettled Future along with the Promise that settles it.
// The Promise is the sole writable handle; hand out the Future to consumers
// and keep the Promise on the producing side.
func New[T any]() (*Future[T], *Promise[T]) {
	f := newFuture[T]()
	return f, &Promise[T]{f: f}
}

// Const returns a Future that is already settled with the given Result.
func Const[T any](r Result[T]) *Future[T] {
	f := newFuture[T]()
	f.settled.Store(true)
	f.result = r
	close(f.done)
	return f
}

// Value returns a Future that has already succeeded with val.
func Value[T any](val T) *Future[T] {
	return Const(Return(val))
}

// Exception returns a Future that has already failed with err.
func Exception[T any](err error) *Future[T] {
	return Const(Throw[T](err))
}

// Respond registers fn to run with the Future's Result once it settles. If
// the Future is already settled, fn runs immediately on the calling
// goroutine.
func (f *Future[T]) Respond(fn func(Result[T])) {
	f.mu.Lock()
	if !f.settled.Load() {
		f.waiters = append(f.waiters, fn)
		f.mu.Unlock()
		return
	}
	r := f.result
	f.mu.Unlock()
	fn(r)
}

// OnSuccess registers fn to run with the Future's value if it succeeds. It
// returns the receiver for chaining.
func (f *Future[T]) OnSuccess(fn func(T)) *Future[T] {
	f.Respond(func(r Result[T]) {
		if v, err := r.Get(); err == nil {
			fn(v)
		}
	})
	return f
}

// OnFailure registers fn to run with the Future's error if it fails. It
// returns the receiver for chaining.
func (f *Future[T]) OnFailure(fn func(error)) *Future[T] {
	f.Respond(func(r Result[T]) {
		if err := r.Err(); err != nil {
			fn(err)
		}
	})
	return f
}

// Poll returns the Future's Result without blocking. The second return is
// false while the Future is still pending.
func (f *Future[T]) Poll() (Result[T], bool) {
	if !f.settled.Load() {
		return Result[T]{}, false
	}
	f.mu.Lock()
	r := f.result
	f.mu.Unlock()
	return r, true
}

// Await blocks until the Future settles or ctx is done, whichever happens
// first. It bridges the asynchronous world to synchronous call sites (edges
// of a program, tests); code inside a pipeline should compose with Map and
// FlatMap instead.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		v, err := f.result.Get()
		return v, err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Rescue converts a failure into a new Result, leaving successes untouched.
// This is the opt-in error handling point for a pipeline: failures propagate
// through Map and FlatMap automatically until a Rescue intervenes.
func (f *Future[T]) Rescue(fn func(error) Result[T]) *Future[T] {
	out, p := New[T]()
	f.Respond(func(r Result[T]) {
		if err := r.Err(); err != nil {
			p.Complete(fn(err))
			return
		}
		p.Complete(r)
	})
	return out
}

// RescueWith is like Rescue but the recovery may itself be asynchronous.
func (f *Future[T]) RescueWith(fn func(error) *Future[T]) *Future[T] {
	out, p := New[T]()
	f.Respond(func(r Result[T]) {
		if err := r.Err(); err != nil {
			fn(err).Respond(func(r2 Result[T]) { p.Complete(r2) })
			return
		}
		p.Complete(r)
	})
	return out
}

// Within returns a Future that carries the receiver's outcome if it settles
// within d on the given clock, and the outcome of onExpire otherwise.
// Exactly one of the two outcomes is ever observed; the loser is discarded.
// The underlying operation is not cancelled when the timer wins, the
// returned Future merely stops listening to it.
func (f *Future[T]) Within(c clock.Clock, d time.Duration, onExpire func() Result[T]) *Future[T] {
	out, p := New[T]()
	timer := c.AfterFunc(d, func() {
		p.Complete(onExpire())
	})
	f.Respond(func(r Result[T]) {
		if p.Complete(r) {
			timer.Stop()
		}
	})
	return out
}

func (f *Future[T]) complete(r Result[T]) bool {
	f.mu.Lock()
	if f.settled.Load() {
		f.mu.Unlock()
		return false
	}
	f.result = r
	f.settled.Store(true)
	waiters := f.waiters
	f.waiters = nil
	f.mu.Unlock()

	close(f.done)
	// Run continuations with no locks held so that a continuation may
	// register further continuations, even on this same Future.
	for _, w := range waiters {
		w(r)
	}
	return true
}
