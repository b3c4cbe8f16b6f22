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

// Package filamentconfig materializes client and server builders from
// configuration data: YAML documents or raw attribute maps.
//
// Codecs register by name on a Configurator; configuration then refers to
// them with the "codec" attribute. Unrecognized attributes are rejected when
// the configuration is read; missing required options remain the builders'
// responsibility and surface at Build or Serve time.
package filamentconfig

import (
	"fmt"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v2"

	"github.com/filamentio/filament"
	"github.com/filamentio/filament/codec"
)

// Configurator builds clients and servers for one request/response type
// pair from configuration data.
type Configurator[Req, Rep any] struct {
	codecs map[string]codec.Codec[Req, Rep]
}

// New returns an empty Configurator.
func New[Req, Rep any]() *Configurator[Req, Rep] {
	return &Configurator[Req, Rep]{
		codecs: make(map[string]codec.Codec[Req, Rep]),
	}
}

// RegisterCodec makes the codec available to configuration under its name.
// Registering the same name twice is an error.
func (c *Configurator[Req, Rep]) RegisterCodec(cd codec.Codec[Req, Rep]) error {
	name := cd.Name()
	if name == "" {
		return fmt.Errorf("codec name is required")
	}
	if _, ok := c.codecs[name]; ok {
		return fmt.Errorf("codec %q is already registered", name)
	}
	c.codecs[name] = cd
	return nil
}

// MustRegisterCodec is like RegisterCodec but panics on error, for
// registration at program start.
func (c *Configurator[Req, Rep]) MustRegisterCodec(cd codec.Codec[Req, Rep]) {
	if err := c.RegisterCodec(cd); err != nil {
		panic(err.Error())
	}
}

type clientConfig struct {
	Dest                []string      `config:"dest"`
	Codec               string        `config:"codec"`
	HostConnectionLimit int           `config:"hostConnectionLimit"`
	RequestTimeout      time.Duration `config:"requestTimeout"`
	Retries             int           `config:"retries"`
}

var _clientKeys = map[string]struct{}{
	"dest":                {},
	"codec":               {},
	"hostConnectionLimit": {},
	"requestTimeout":      {},
	"retries":             {},
}

type serverConfig struct {
	Name                  string `config:"name"`
	Bind                  string `config:"bind"`
	Codec                 string `config:"codec"`
	MaxConcurrentRequests int    `config:"maxConcurrentRequests"`
}

var _serverKeys = map[string]struct{}{
	"name":                  {},
	"bind":                  {},
	"codec":                 {},
	"maxConcurrentRequests": {},
}

// NewClient reads a client configuration from the attribute map and returns
// the corresponding builder. The builder may be customized further before
// Build.
func (c *Configurator[Req, Rep]) NewClient(name string, attrs AttributeMap) (filament.ClientBuilder[Req, Rep], error) {
	b := filament.NewClient[Req, Rep](name)
	if unknown := attrs.Unrecognized(_clientKeys); len(unknown) > 0 {
		return b, fmt.Errorf("unrecognized attributes in client config: %s", strings.Join(unknown, ", "))
	}

	var cfg clientConfig
	if err := attrs.Decode(&cfg); err != nil {
		return b, fmt.Errorf("failed to decode client config: %v", err)
	}

	if len(cfg.Dest) > 0 {
		b = b.Dest(cfg.Dest...)
	}
	if cfg.Codec != "" {
		cd, ok := c.codecs[cfg.Codec]
		if !ok {
			return b, fmt.Errorf("unknown codec %q", cfg.Codec)
		}
		b = b.Codec(cd)
	}
	if cfg.HostConnectionLimit > 0 {
		b = b.HostConnectionLimit(cfg.HostConnectionLimit)
	}
	if cfg.RequestTimeout > 0 {
		b = b.RequestTimeout(cfg.RequestTimeout)
	}
	if cfg.Retries > 0 {
		b = b.Retries(cfg.Retries)
	}
	return b, nil
}

// LoadClientYAML reads a client configuration from a YAML document.
func (c *Configurator[Req, Rep]) LoadClientYAML(name string, data []byte) (filament.ClientBuilder[Req, Rep], error) {
	attrs, err := unmarshalAttrs(data)
	if err != nil {
		return filament.NewClient[Req, Rep](name), err
	}
	return c.NewClient(name, attrs)
}

// NewServer reads a server configuration from the attribute map and returns
// the corresponding builder.
func (c *Configurator[Req, Rep]) NewServer(attrs AttributeMap) (filament.ServerBuilder[Req, Rep], error) {
	b := filament.NewServer[Req, Rep]()
	if unknown := attrs.Unrecognized(_serverKeys); len(unknown) > 0 {
		return b, fmt.Errorf("unrecognized attributes in server config: %s", strings.Join(unknown, ", "))
	}

	var cfg serverConfig
	if err := attrs.Decode(&cfg); err != nil {
		return b, fmt.Errorf("failed to decode server config: %v", err)
	}

	if cfg.Name != "" {
		b = b.Name(cfg.Name)
	}
	if cfg.Bind != "" {
		b = b.BindTo(cfg.Bind)
	}
	if cfg.Codec != "" {
		cd, ok := c.codecs[cfg.Codec]
		if !ok {
			return b, fmt.Errorf("unknown codec %q", cfg.Codec)
		}
		b = b.Codec(cd)
	}
	if cfg.MaxConcurrentRequests > 0 {
		b = b.MaxConcurrentRequests(cfg.MaxConcurrentRequests)
	}
	return b, nil
}

// LoadServerYAML reads a server configuration from a YAML document.
func (c *Configurator[Req, Rep]) LoadServerYAML(data []byte) (filament.ServerBuilder[Req, Rep], error) {
	attrs, err := unmarshalAttrs(data)
	if err != nil {
		return filament.NewServer[Req, Rep](), err
	}
	return c.NewServer(attrs)
}

func unmarshalAttrs(data []byte) (AttributeMap, error) {
	var attrs AttributeMap
	if err := yaml.Unmarshal(data, &attrs); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %v", err)
	}
	return attrs, nil
}
