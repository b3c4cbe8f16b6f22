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

// Result is the settled outcome of an operation: either a value or an error,
// never both.
type Result[T any] struct {
	val T
	err error
}

// Return builds a successful Result carrying val.
func Return[T any](val T) Result[T] {
	return Result[T]{val: val}
}

// Throw builds a failed Result carrying err. It panics if err is nil, since
// a nil error would make the Result indistinguishable from a success.
func Throw[T any](err error) Result[T] {
	if err == nil {
		panic("future: Throw called with nil error")
	}
	return Result[T]{err: err}
}

// Get returns the value and error of the Result, following the usual Go
// convention: exactly one of the two is meaningful.
func (r Result[T]) Get() (T, error) {
	return r.val, r.err
}

// Err returns the Result's error, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// IsSuccess reports whether the Result carries a value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}
