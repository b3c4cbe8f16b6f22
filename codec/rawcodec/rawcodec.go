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

// Package rawcodec implements a pass-through codec for services that speak
// raw bytes.
package rawcodec

import "github.com/filamentio/filament/codec"

// Name is the name with which this codec registers in configuration.
const Name = "raw"

// New returns a codec that passes request and response bytes through
// unchanged.
func New() codec.Codec[[]byte, []byte] {
	return rawCodec{}
}

type rawCodec struct{}

func (rawCodec) Name() string { return Name }

func (rawCodec) EncodeRequest(req []byte) ([]byte, error) { return req, nil }

func (rawCodec) DecodeRequest(data []byte) ([]byte, error) { return data, nil }

func (rawCodec) EncodeResponse(rep []byte) ([]byte, error) { return rep, nil }

func (rawCodec) DecodeResponse(data []byte) ([]byte, error) { return data, nil }
