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
	"fmt"
	"time"

	"github.com/filamentio/filament"
	"github.com/filamentio/filament/codec/jsoncodec"
	"github.com/filamentio/filament/future"
	"github.com/filamentio/filament/service"
	"github.com/filamentio/filament/transport/inproc"
)

type greetRequest struct {
	Name string `json:"name"`
}

type greetResponse struct {
	Message string `json:"message"`
}

func Example() {
	tr := inproc.New()
	cdc := jsoncodec.New[greetRequest, greetResponse]()

	greeter := service.Func[greetRequest, greetResponse](
		func(_ context.Context, req greetRequest) *future.Future[greetResponse] {
			return future.Value(greetResponse{
				Message: "Hello, " + req.Name + "!",
			})
		})

	server, err := filament.NewServer[greetRequest, greetResponse]().
		Name("greeter").
		BindTo("greeter-main").
		Codec(cdc).
		Listener(tr).
		Serve(greeter)
	if err != nil {
		panic(err)
	}
	defer server.Stop()

	client, err := filament.NewClient[greetRequest, greetResponse]("greeter").
		Dest("greeter-main").
		Codec(cdc).
		HostConnectionLimit(4).
		RequestTimeout(time.Second).
		RoundTripper(tr).
		Build()
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rep, err := client.Apply(ctx, greetRequest{Name: "world"}).Await(ctx)
	if err != nil {
		panic(err)
	}
	fmt.Println(rep.Message)
	// Output: Hello, world!
}
