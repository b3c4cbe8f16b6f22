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

// Package backoff provides wait strategies for retry loops, balancing quick
// recovery against denial of service as a failure mode.
package backoff

import "time"

// Strategy is a factory for backoff algorithms. Each backoff instance may
// capture some state, typically a random number generator, so strategies
// hand out an independent instance per call site.
type Strategy interface {
	Backoff() Backoff
}

// Backoff determines how long to wait after a number of attempts to perform
// some action. Instances are intended for use from a single goroutine and
// need not be thread-safe.
type Backoff interface {
	Duration(attempts uint) time.Duration
}

// None is a Strategy that never waits between attempts.
var None Strategy = noneStrategy{}

type noneStrategy struct{}

func (noneStrategy) Backoff() Backoff { return noneBackoff{} }

type noneBackoff struct{}

func (noneBackoff) Duration(uint) time.Duration { return 0 }
