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

package filamenterrors

import "strconv"

// Code represents the type of error for an RPC call.
//
// Sometimes multiple error codes may apply. Implementations should choose
// the most specific error code that applies. For example, prefer
// CodeUnauthenticated over CodeInvalidArgument if the request is rejected
// for missing credentials.
type Code int

const (
	// CodeOK means no error; returned on success.
	CodeOK Code = 0

	// CodeUnknown means an unknown error. Errors raised by APIs
	// that do not return enough error information may be converted to
	// this error.
	CodeUnknown Code = 2

	// CodeInvalidArgument indicates a client specified an invalid argument,
	// including a payload the configured codec could not handle.
	CodeInvalidArgument Code = 3

	// CodeDeadlineExceeded means an operation did not complete within its
	// allotted duration.
	CodeDeadlineExceeded Code = 4

	// CodeNotFound means some requested entity was not found.
	CodeNotFound Code = 5

	// CodeResourceExhausted indicates some resource has been exhausted, such
	// as a per-client concurrency limit.
	CodeResourceExhausted Code = 8

	// CodeUnauthenticated indicates the request does not have valid
	// authentication credentials for the operation.
	CodeUnauthenticated Code = 16

	// CodeInternal means an invariant expected by the underlying
	// system has been broken.
	CodeInternal Code = 13

	// CodeUnavailable indicates the service is currently unavailable.
	// This is most likely a transient condition and the call may be retried
	// with a backoff.
	CodeUnavailable Code = 14
)

// String returns the string representation of the Code.
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeUnknown:
		return "unknown"
	case CodeInvalidArgument:
		return "invalid-argument"
	case CodeDeadlineExceeded:
		return "deadline-exceeded"
	case CodeNotFound:
		return "not-found"
	case CodeResourceExhausted:
		return "resource-exhausted"
	case CodeUnauthenticated:
		return "unauthenticated"
	case CodeInternal:
		return "internal"
	case CodeUnavailable:
		return "unavailable"
	default:
		return strconv.Itoa(int(c))
	}
}
