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

// Package clock provides a pluggable source of time.
//
// Components that race work against timers accept a Clock so that tests can
// substitute a fake, programmatically advanced clock for the real one.
package clock

import "time"

// Clock represents a source of current time and timers.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After produces a channel that will emit the time after a duration
	// passes.
	After(d time.Duration) <-chan time.Time

	// AfterFunc waits for the duration to elapse and then executes a
	// function. A Timer is returned that can be stopped.
	AfterFunc(d time.Duration, f func()) Timer

	// Timer produces a timer that will emit a time some duration after now.
	Timer(d time.Duration) Timer
}

// Timer represents a single event, analogous to time.Timer.
type Timer interface {
	// C returns the channel on which the timer's expiry is delivered.
	C() <-chan time.Time

	// Stop prevents the timer from firing, reporting whether it was stopped
	// before firing.
	Stop() bool
}
