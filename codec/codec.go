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

// Package codec defines the encoding boundary between typed services and
// byte-oriented transports.
//
// A codec is an external collaborator: the core never interprets payload
// bytes itself. Implementations for specific wire formats plug in through
// this interface; jsoncodec and rawcodec ship with the module.
package codec

// Codec translates typed requests and responses to and from their wire
// payloads. Implementations must be safe for concurrent use.
type Codec[Req, Rep any] interface {
	// Name identifies the codec in configuration, e.g. "json".
	Name() string

	EncodeRequest(req Req) ([]byte, error)
	DecodeRequest(data []byte) (Req, error)

	EncodeResponse(rep Rep) ([]byte, error)
	DecodeResponse(data []byte) (Rep, error)
}
