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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filamentio/filament/clock"
	"github.com/filamentio/filament/filamenterrors"
	"github.com/filamentio/filament/future"
	"github.com/filamentio/filament/service"
)

func TestTimeoutTimerWins(t *testing.T) {
	fc := clock.NewFake()
	var p *future.Promise[string]
	slow := service.Func[string, string](func(context.Context, string) *future.Future[string] {
		var f *future.Future[string]
		f, p = future.New[string]()
		return f
	})

	svc := Apply(Timeout[string, string](fc, time.Second), slow)
	f := svc.Apply(context.Background(), "req")

	_, ok := f.Poll()
	assert.False(t, ok)

	fc.Add(time.Second)
	err := settled(t, f).Err()
	require.Error(t, err)
	assert.True(t, filamenterrors.IsDeadlineExceeded(err))

	// The inner call's late success is never observed by the caller.
	p.Success("too late")
	assert.True(t, filamenterrors.IsDeadlineExceeded(settled(t, f).Err()))
}

func TestTimeoutInnerWins(t *testing.T) {
	fc := clock.NewFake()
	svc := Apply(Timeout[string, string](fc, time.Second), service.Const[string, string]("fast"))

	f := svc.Apply(context.Background(), "req")
	v, err := settled(t, f).Get()
	require.NoError(t, err)
	assert.Equal(t, "fast", v)

	// Advancing past the deadline changes nothing.
	fc.Add(2 * time.Second)
	v, _ = settled(t, f).Get()
	assert.Equal(t, "fast", v)
}
