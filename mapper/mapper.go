/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"fmt"

	"dirpx.dev/exc/apis"
	"dirpx.dev/exc/code"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained instance — no shared references
// to global state or caller-provided structures remain.
//
// Build process:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply caller-provided options (overrides, fallbacks).
//  3. Validate every override's code.
//  4. Freeze all maps into mapper-owned copies.
//
// Errors indicate an override registered for an invalid code.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = v
	}

	for _, opt := range opts {
		opt(b)
	}

	for c := range b.httpOverride {
		if err := code.Validate(c); err != nil {
			return nil, fmt.Errorf("mapper: invalid code %q in HTTP override: %w", c, err)
		}
	}
	for c := range b.grpcOverride {
		if err := code.Validate(c); err != nil {
			return nil, fmt.Errorf("mapper: invalid code %q in gRPC override: %w", c, err)
		}
	}

	return &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// Must is the panic-on-error variant of New, for package-level mapper
// variables built from constant options.
func Must(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// builder accumulates option state before freezing.
type builder struct {
	httpDefaults map[code.Code]int
	grpcDefaults map[code.Code]codes.Code
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code
	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[code.Code]int),
		grpcDefaults: make(map[code.Code]codes.Code),
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]codes.Code),
		fallbackHTTP: fallbackHTTP,
		fallbackGRPC: fallbackGRPC,
	}
}

// mapper is the frozen snapshot. All maps are mapper-owned copies and are
// never mutated after New returns, which is what makes the type safe for
// concurrent use without locking.
type mapper struct {
	httpDefault  map[code.Code]int
	grpcDefault  map[code.Code]codes.Code
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code
	fallbackHTTP int
	fallbackGRPC codes.Code
}

var _ apis.Mapper = (*mapper)(nil)

// HTTPStatus resolves the HTTP status for c: override, then default, then
// fallback.
func (m *mapper) HTTPStatus(c code.Code) int {
	if v, ok := m.httpOverride[c]; ok {
		return v
	}
	if v, ok := m.httpDefault[c]; ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCStatus resolves the gRPC status for c: override, then default, then
// fallback.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both transports in one call.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{HTTP: m.HTTPStatus(c), GRPC: m.GRPCStatus(c)}
}

// Explain describes which rule layer matched for c, for debugging mapper
// configuration.
func (m *mapper) Explain(c code.Code) string {
	layer := func(http, grpc bool) string {
		switch {
		case http && grpc:
			return "http+grpc"
		case http:
			return "http"
		case grpc:
			return "grpc"
		default:
			return ""
		}
	}

	_, ho := m.httpOverride[c]
	_, go2 := m.grpcOverride[c]
	if l := layer(ho, go2); l != "" {
		return fmt.Sprintf("code %q: override (%s)", c, l)
	}

	_, hd := m.httpDefault[c]
	_, gd := m.grpcDefault[c]
	if l := layer(hd, gd); l != "" {
		return fmt.Sprintf("code %q: default (%s)", c, l)
	}

	return fmt.Sprintf("code %q: fallback (%d / %s)", c, m.fallbackHTTP, m.fallbackGRPC)
}

// freezeHTTP makes a mapper-owned copy of an HTTP table.
func freezeHTTP(src map[code.Code]int) map[code.Code]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC makes a mapper-owned copy of a gRPC table.
func freezeGRPC(src map[code.Code]codes.Code) map[code.Code]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]codes.Code, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
