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

package filament

import (
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/filamentio/filament/transport"
)

// Server is the opaque handle for a bound endpoint, returned by
// ServerBuilder.Serve.
type Server struct {
	name    string
	addr    string
	stopper transport.Stopper
	logger  *zap.Logger
	stopped atomic.Bool
}

// Name returns the server's configured name.
func (s *Server) Name() string { return s.name }

// Addr returns the address the server is bound to.
func (s *Server) Addr() string { return s.addr }

// Stop releases the server's binding. No new requests are accepted after
// Stop returns; requests already in flight settle on their own. Stop is
// idempotent.
func (s *Server) Stop() error {
	if !s.stopped.CAS(false, true) {
		return nil
	}
	err := s.stopper.Stop()
	s.logger.Info("server stopped", zap.String("addr", s.addr), zap.Error(err))
	return err
}
