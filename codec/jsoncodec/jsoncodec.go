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

// Package jsoncodec implements a JSON codec for arbitrary request and
// response types.
package jsoncodec

import (
	"encoding/json"

	"github.com/filamentio/filament/codec"
)

// Name is the name with which this codec registers in configuration.
const Name = "json"

// New returns a codec that marshals requests and responses as JSON.
func New[Req, Rep any]() codec.Codec[Req, Rep] {
	return jsonCodec[Req, Rep]{}
}

type jsonCodec[Req, Rep any] struct{}

func (jsonCodec[Req, Rep]) Name() string { return Name }

func (jsonCodec[Req, Rep]) EncodeRequest(req Req) ([]byte, error) {
	return json.Marshal(req)
}

func (jsonCodec[Req, Rep]) DecodeRequest(data []byte) (Req, error) {
	var req Req
	err := json.Unmarshal(data, &req)
	return req, err
}

func (jsonCodec[Req, Rep]) EncodeResponse(rep Rep) ([]byte, error) {
	return json.Marshal(rep)
}

func (jsonCodec[Req, Rep]) DecodeResponse(data []byte) (Rep, error) {
	var rep Rep
	err := json.Unmarshal(data, &rep)
	return rep, err
}
