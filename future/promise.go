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

// Promise is the writable side of a Future: the exclusive capability to
// settle it, exactly once.
//
// The first settlement wins. Later attempts return false and have no
// observable effect; continuations never fire twice.
type Promise[T any] struct {
	f *Future[T]
}

// Future returns the read-only Future settled by this Promise.
func (p *Promise[T]) Future() *Future[T] {
	return p.f
}

// Complete settles the Future with the given Result, reporting whether this
// call was the one that settled it.
func (p *Promise[T]) Complete(r Result[T]) bool {
	return p.f.complete(r)
}

// Success settles the Future with a value.
func (p *Promise[T]) Success(val T) bool {
	return p.Complete(Return(val))
}

// Failure settles the Future with an error.
func (p *Promise[T]) Failure(err error) bool {
	return p.Complete(Throw[T](err))
}
