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

package filament_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filamentio/filament"
	"github.com/filamentio/filament/codec/jsoncodec"
	"github.com/filamentio/filament/filamenterrors"
	"github.com/filamentio/filament/transport/inproc"
)

func TestServerServeValidation(t *testing.T) {
	t.Run("everything missing", func(t *testing.T) {
		_, err := filament.NewServer[getRequest, getResponse]().Serve(kvService(nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `missing required option "name"`)
		assert.Contains(t, err.Error(), `missing required option "bind"`)
		assert.Contains(t, err.Error(), `missing required option "codec"`)
	})

	t.Run("only bind missing", func(t *testing.T) {
		_, err := filament.NewServer[getRequest, getResponse]().
			Name("kv").
			Codec(jsoncodec.New[getRequest, getResponse]()).
			Serve(kvService(nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `missing required option "bind"`)
		assert.NotContains(t, err.Error(), `"name"`)
	})
}

func TestServerStop(t *testing.T) {
	tr := inproc.New()
	cdc := jsoncodec.New[getRequest, getResponse]()

	server, err := filament.NewServer[getRequest, getResponse]().
		Name("kv").
		BindTo("kv-stop").
		Codec(cdc).
		Listener(tr).
		Serve(kvService(map[string]string{"k": "v"}))
	require.NoError(t, err)
	assert.Equal(t, "kv", server.Name())
	assert.Equal(t, "kv-stop", server.Addr())

	client, err := filament.NewClient[getRequest, getResponse]("kv").
		Dest("kv-stop").
		Codec(cdc).
		HostConnectionLimit(1).
		RoundTripper(tr).
		Build()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = client.Apply(ctx, getRequest{Key: "k"}).Await(ctx)
	require.NoError(t, err)

	require.NoError(t, server.Stop())
	require.NoError(t, server.Stop(), "stop is idempotent")

	_, err = client.Apply(ctx, getRequest{Key: "k"}).Await(ctx)
	require.Error(t, err, "a stopped server accepts no new requests")
	assert.True(t, filamenterrors.IsUnavailable(err))
}

func TestServerRejectsUndecodablePayload(t *testing.T) {
	tr := inproc.New()

	server, err := filament.NewServer[getRequest, getResponse]().
		Name("kv").
		BindTo("kv-decode").
		Codec(jsoncodec.New[getRequest, getResponse]()).
		Listener(tr).
		Serve(kvService(nil))
	require.NoError(t, err)
	defer server.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = tr.RoundTrip(ctx, "kv-decode", []byte("{not json")).Await(ctx)
	require.Error(t, err)
	assert.True(t, filamenterrors.IsInvalidArgument(err))
}
