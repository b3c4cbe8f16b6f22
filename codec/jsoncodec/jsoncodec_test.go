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

package jsoncodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type getRequest struct {
	Key string `json:"key"`
}

type getResponse struct {
	Value string `json:"value"`
}

func TestJSONCodec(t *testing.T) {
	c := New[getRequest, getResponse]()
	assert.Equal(t, "json", c.Name())

	data, err := c.EncodeRequest(getRequest{Key: "k1"})
	require.NoError(t, err)
	req, err := c.DecodeRequest(data)
	require.NoError(t, err)
	assert.Equal(t, "k1", req.Key)

	data, err = c.EncodeResponse(getResponse{Value: "v1"})
	require.NoError(t, err)
	rep, err := c.DecodeResponse(data)
	require.NoError(t, err)
	assert.Equal(t, "v1", rep.Value)
}

func TestJSONCodecMalformedPayload(t *testing.T) {
	c := New[getRequest, getResponse]()

	_, err := c.DecodeRequest([]byte("{not json"))
	assert.Error(t, err)

	_, err = c.DecodeResponse([]byte("{not json"))
	assert.Error(t, err)
}
