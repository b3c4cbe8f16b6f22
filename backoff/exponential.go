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

package backoff

import (
	"errors"
	"math/rand"
	"time"

	"go.uber.org/multierr"
)

// ExponentialOption defines options that can be applied to an exponential
// backoff strategy.
type ExponentialOption func(*exponentialOptions)

// exponentialOptions are the configuration options for an exponential
// backoff.
type exponentialOptions struct {
	base, min, max time.Duration
	newRand        func() *rand.Rand
}

func (e exponentialOptions) validate() (err error) {
	if e.base <= 0 {
		err = multierr.Append(err, errors.New("exponential backoff base must be greater than zero"))
	}
	if e.min < 0 {
		err = multierr.Append(err, errors.New("exponential backoff min must be non-negative"))
	}
	if e.max < 0 {
		err = multierr.Append(err, errors.New("exponential backoff max must be non-negative"))
	}
	if e.max < e.min {
		err = multierr.Append(err, errors.New("exponential backoff max must be greater than or equal to min"))
	}
	return err
}

var defaultExponentialOpts = exponentialOptions{
	base: 10 * time.Millisecond,
	max:  time.Minute,
	newRand: func() *rand.Rand {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	},
}

// Base sets the first backoff duration; attempt n may wait up to base*2^n.
func Base(t time.Duration) ExponentialOption {
	return func(options *exponentialOptions) {
		options.base = t
	}
}

// Max sets the absolute maximum duration an exponential backoff will return.
func Max(t time.Duration) ExponentialOption {
	return func(options *exponentialOptions) {
		options.max = t
	}
}

// Min sets the absolute minimum duration an exponential backoff will return.
func Min(t time.Duration) ExponentialOption {
	return func(options *exponentialOptions) {
		options.min = t
	}
}

// newRand overrides the random number generator source, for tests.
func newRand(f func() *rand.Rand) ExponentialOption {
	return func(options *exponentialOptions) {
		options.newRand = f
	}
}

// ExponentialStrategy is a full-jitter exponential backoff strategy: each
// duration is drawn uniformly from [min, min(max, base*2^attempt)].
type ExponentialStrategy struct {
	opts exponentialOptions
}

var _ Strategy = (*ExponentialStrategy)(nil)

// NewExponential returns a new exponential backoff strategy.
func NewExponential(opts ...ExponentialOption) (*ExponentialStrategy, error) {
	options := defaultExponentialOpts
	for _, opt := range opts {
		opt(&options)
	}
	if err := options.validate(); err != nil {
		return nil, err
	}
	return &ExponentialStrategy{opts: options}, nil
}

// Backoff returns an exponential backoff instance with its own random
// number generator.
func (e *ExponentialStrategy) Backoff() Backoff {
	return &exponentialBackoff{
		opts: e.opts,
		rand: e.opts.newRand(),
	}
}

type exponentialBackoff struct {
	opts exponentialOptions
	rand *rand.Rand
}

// Duration returns the duration to wait after the given number of attempts.
func (e *exponentialBackoff) Duration(attempts uint) time.Duration {
	spread := e.opts.base.Nanoseconds() << attempts
	// Detect overflow from the shift.
	if spread <= 0 || spread > e.opts.max.Nanoseconds() {
		spread = e.opts.max.Nanoseconds()
	}
	if spread <= e.opts.min.Nanoseconds() {
		return e.opts.min
	}
	jitter := e.rand.Int63n(spread - e.opts.min.Nanoseconds() + 1)
	return e.opts.min + time.Duration(jitter)
}
