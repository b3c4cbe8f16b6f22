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
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExponentialValidation(t *testing.T) {
	tests := []struct {
		msg        string
		opts       []ExponentialOption
		wantErrors []string
	}{
		{
			msg:        "invalid base",
			opts:       []ExponentialOption{Base(0)},
			wantErrors: []string{"exponential backoff base must be greater than zero"},
		},
		{
			msg:        "invalid min",
			opts:       []ExponentialOption{Min(-time.Second)},
			wantErrors: []string{"exponential backoff min must be non-negative"},
		},
		{
			msg:  "invalid max and min",
			opts: []ExponentialOption{Min(-time.Second), Max(-time.Second)},
			wantErrors: []string{
				"exponential backoff min must be non-negative",
				"exponential backoff max must be non-negative",
			},
		},
		{
			msg:        "max less than min",
			opts:       []ExponentialOption{Min(time.Second), Max(time.Millisecond)},
			wantErrors: []string{"exponential backoff max must be greater than or equal to min"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			_, err := NewExponential(tt.opts...)
			require.Error(t, err)
			for _, want := range tt.wantErrors {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestExponentialDuration(t *testing.T) {
	fixedRand := func() *rand.Rand { return rand.New(rand.NewSource(1)) }

	strategy, err := NewExponential(
		Base(time.Millisecond),
		Max(100*time.Millisecond),
		newRand(fixedRand),
	)
	require.NoError(t, err)

	b := strategy.Backoff()
	for attempt := uint(0); attempt < 20; attempt++ {
		d := b.Duration(attempt)
		ceiling := time.Millisecond << attempt
		if ceiling <= 0 || ceiling > 100*time.Millisecond {
			ceiling = 100 * time.Millisecond
		}
		assert.GreaterOrEqual(t, int64(d), int64(0), "attempt %d", attempt)
		assert.LessOrEqual(t, int64(d), int64(ceiling), "attempt %d", attempt)
	}
}

func TestExponentialMinClamp(t *testing.T) {
	strategy, err := NewExponential(
		Base(time.Millisecond),
		Min(50*time.Millisecond),
		Max(time.Second),
	)
	require.NoError(t, err)

	b := strategy.Backoff()
	assert.Equal(t, 50*time.Millisecond, b.Duration(0),
		"durations below min collapse to min")
}

func TestNone(t *testing.T) {
	assert.Equal(t, time.Duration(0), None.Backoff().Duration(3))
}
