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

package clock

import (
	"sync"
	"time"
)

// FakeClock is a Clock that only moves forward when Add is called. It is
// preferable to a real clock when testing time-based functionality.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

var _ Clock = (*FakeClock)(nil)

// NewFake returns an instance of a fake clock. The current time of the fake
// clock on initialization is the Unix epoch.
func NewFake() *FakeClock {
	return &FakeClock{now: time.Unix(0, 0)}
}

// Now returns the current time on the fake clock.
func (fc *FakeClock) Now() time.Time {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.now
}

// Add moves the current time of the fake clock forward by the duration,
// firing pending timers in chronological order. Timer functions run on the
// calling goroutine with no locks held, so they may themselves set new
// timers.
func (fc *FakeClock) Add(d time.Duration) {
	fc.mu.Lock()
	end := fc.now.Add(d)
	for {
		t := fc.popDueLocked(end)
		if t == nil {
			break
		}
		if fc.now.Before(t.when) {
			fc.now = t.when
		}
		fc.mu.Unlock()
		t.fire()
		fc.mu.Lock()
	}
	if fc.now.Before(end) {
		fc.now = end
	}
	fc.mu.Unlock()
}

// After produces a channel that will emit the time after a duration passes.
func (fc *FakeClock) After(d time.Duration) <-chan time.Time {
	return fc.Timer(d).C()
}

// AfterFunc waits for the duration to elapse and then executes a function.
// A Timer is returned that can be stopped.
func (fc *FakeClock) AfterFunc(d time.Duration, f func()) Timer {
	return fc.newTimer(d, f)
}

// Timer produces a timer that will emit a time some duration after now.
func (fc *FakeClock) Timer(d time.Duration) Timer {
	return fc.newTimer(d, nil)
}

func (fc *FakeClock) newTimer(d time.Duration, f func()) *fakeTimer {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	t := &fakeTimer{
		fc:   fc,
		when: fc.now.Add(d),
		fn:   f,
		ch:   make(chan time.Time, 1),
	}
	fc.timers = append(fc.timers, t)
	return t
}

// popDueLocked removes and returns the earliest live timer due at or before
// end, or nil if there is none.
func (fc *FakeClock) popDueLocked(end time.Time) *fakeTimer {
	idx := -1
	for i, t := range fc.timers {
		if t.stopped || t.when.After(end) {
			continue
		}
		if idx == -1 || t.when.Before(fc.timers[idx].when) {
			idx = i
		}
	}
	if idx == -1 {
		return nil
	}
	t := fc.timers[idx]
	fc.timers = append(fc.timers[:idx], fc.timers[idx+1:]...)
	return t
}

type fakeTimer struct {
	fc      *FakeClock
	when    time.Time
	fn      func()
	ch      chan time.Time
	stopped bool
	fired   bool
}

func (t *fakeTimer) C() <-chan time.Time { return t.ch }

// Stop prevents the timer from firing, reporting whether it was stopped
// before firing.
func (t *fakeTimer) Stop() bool {
	t.fc.mu.Lock()
	defer t.fc.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func (t *fakeTimer) fire() {
	t.fc.mu.Lock()
	if t.stopped {
		t.fc.mu.Unlock()
		return
	}
	t.fired = true
	fn := t.fn
	t.fc.mu.Unlock()

	if fn != nil {
		fn()
		return
	}
	select {
	case t.ch <- t.when:
	default:
	}
}
