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
	"github.com/filamentio/filament/future"
	"github.com/filamentio/filament/service"
	"github.com/filamentio/filament/transport/inproc"
)

type getRequest struct {
	Key string `json:"key"`
}

type getResponse struct {
	Value string `json:"value"`
}

func kvService(data map[string]string) service.Service[getRequest, getResponse] {
	return service.Func[getRequest, getResponse](func(_ context.Context, req getRequest) *future.Future[getResponse] {
		v, ok := data[req.Key]
		if !ok {
			return future.Exception[getResponse](filamenterrors.NotFoundErrorf("no value for key %q", req.Key))
		}
		return future.Value(getResponse{Value: v})
	})
}

func TestClientBuildValidation(t *testing.T) {
	t.Run("everything missing", func(t *testing.T) {
		_, err := filament.NewClient[getRequest, getResponse]("kv").Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `missing required option "dest"`)
		assert.Contains(t, err.Error(), `missing required option "codec"`)
		assert.Contains(t, err.Error(), `missing required option "hostConnectionLimit"`)
	})

	t.Run("only codec missing", func(t *testing.T) {
		_, err := filament.NewClient[getRequest, getResponse]("kv").
			Dest("kv-validation").
			HostConnectionLimit(1).
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `missing required option "codec"`)
		assert.NotContains(t, err.Error(), `"dest"`)
		assert.NotContains(t, err.Error(), `"hostConnectionLimit"`)
	})

	t.Run("all present", func(t *testing.T) {
		svc, err := filament.NewClient[getRequest, getResponse]("kv").
			Dest("kv-validation").
			Codec(jsoncodec.New[getRequest, getResponse]()).
			HostConnectionLimit(1).
			Build()
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestClientBuilderValueSemantics(t *testing.T) {
	base := filament.NewClient[getRequest, getResponse]("kv").
		Dest("kv-values").
		HostConnectionLimit(1)

	// Forking the builder must not leak options between forks.
	withCodec := base.Codec(jsoncodec.New[getRequest, getResponse]())

	_, err := base.Build()
	require.Error(t, err, "the original builder remains without a codec")
	assert.Contains(t, err.Error(), `"codec"`)

	_, err = withCodec.Build()
	require.NoError(t, err)
}

func TestClientServerRoundTrip(t *testing.T) {
	tr := inproc.New()
	cdc := jsoncodec.New[getRequest, getResponse]()

	server, err := filament.NewServer[getRequest, getResponse]().
		Name("kv").
		BindTo("kv-e2e").
		Codec(cdc).
		Listener(tr).
		Serve(kvService(map[string]string{"planet": "mars"}))
	require.NoError(t, err)
	defer func() { assert.NoError(t, server.Stop()) }()

	client, err := filament.NewClient[getRequest, getResponse]("kv").
		Dest("kv-e2e").
		Codec(cdc).
		HostConnectionLimit(8).
		RoundTripper(tr).
		Build()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rep, err := client.Apply(ctx, getRequest{Key: "planet"}).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mars", rep.Value)

	_, err = client.Apply(ctx, getRequest{Key: "missing"}).Await(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no value for key")
}

func TestClientConcurrencyLimit(t *testing.T) {
	tr := inproc.New()
	cdc := jsoncodec.New[getRequest, getResponse]()

	release := make(chan struct{})
	blocked := service.Func[getRequest, getResponse](func(context.Context, getRequest) *future.Future[getResponse] {
		f, p := future.New[getResponse]()
		go func() {
			<-release
			p.Success(getResponse{Value: "done"})
		}()
		return f
	})

	server, err := filament.NewServer[getRequest, getResponse]().
		Name("slow").
		BindTo("kv-limit").
		Codec(cdc).
		Listener(tr).
		Serve(blocked)
	require.NoError(t, err)
	defer func() { assert.NoError(t, server.Stop()) }()

	client, err := filament.NewClient[getRequest, getResponse]("kv").
		Dest("kv-limit").
		Codec(cdc).
		HostConnectionLimit(1).
		RoundTripper(tr).
		Build()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	first := client.Apply(ctx, getRequest{Key: "a"})

	_, err = client.Apply(ctx, getRequest{Key: "b"}).Await(ctx)
	require.Error(t, err, "a second in-flight request exceeds the limit")
	assert.True(t, filamenterrors.IsResourceExhausted(err))

	close(release)
	rep, err := first.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "done", rep.Value)
}

func TestClientRoundRobin(t *testing.T) {
	tr := inproc.New()
	cdc := jsoncodec.New[getRequest, getResponse]()

	serveEchoing := func(addr string) *filament.Server {
		srv, err := filament.NewServer[getRequest, getResponse]().
			Name(addr).
			BindTo(addr).
			Codec(cdc).
			Listener(tr).
			Serve(service.Const[getRequest, getResponse](getResponse{Value: addr}))
		require.NoError(t, err)
		return srv
	}
	a := serveEchoing("host-a")
	defer a.Stop()
	b := serveEchoing("host-b")
	defer b.Stop()

	client, err := filament.NewClient[getRequest, getResponse]("kv").
		Dest("host-a", "host-b").
		Codec(cdc).
		HostConnectionLimit(4).
		RoundTripper(tr).
		Build()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hosts := make(map[string]int)
	for i := 0; i < 4; i++ {
		rep, err := client.Apply(ctx, getRequest{}).Await(ctx)
		require.NoError(t, err)
		hosts[rep.Value]++
	}
	assert.Equal(t, map[string]int{"host-a": 2, "host-b": 2}, hosts,
		"requests rotate through the destination set")
}

func TestClientBadPayloadSurfacesTypedError(t *testing.T) {
	tr := inproc.New()

	// A server speaking a different shape than the client expects.
	_, err := tr.Listen("kv-garbage", func(context.Context, []byte) *future.Future[[]byte] {
		return future.Value([]byte("{not json"))
	})
	require.NoError(t, err)

	client, err := filament.NewClient[getRequest, getResponse]("kv").
		Dest("kv-garbage").
		Codec(jsoncodec.New[getRequest, getResponse]()).
		HostConnectionLimit(1).
		RoundTripper(tr).
		Build()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = client.Apply(ctx, getRequest{Key: "x"}).Await(ctx)
	require.Error(t, err)
	assert.True(t, filamenterrors.IsInvalidArgument(err))
}

func TestClientRetriesThroughTransport(t *testing.T) {
	tr := inproc.New()
	cdc := jsoncodec.New[getRequest, getResponse]()

	// No server bound: every attempt fails with an unavailable error, which
	// the default retryable predicate retries until attempts run out.
	client, err := filament.NewClient[getRequest, getResponse]("kv").
		Dest("kv-absent").
		Codec(cdc).
		HostConnectionLimit(4).
		Retries(2).
		RoundTripper(tr).
		Build()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = client.Apply(ctx, getRequest{Key: "x"}).Await(ctx)
	require.Error(t, err)
	assert.True(t, filamenterrors.IsUnavailable(err))
}
