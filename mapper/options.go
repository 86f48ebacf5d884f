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
	"dirpx.dev/exc/code"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into an
// immutable Mapper.
type Option func(*builder)

// WithHTTPOverride registers an exact HTTP status for the given code.
// Overrides take precedence over the library defaults.
func WithHTTPOverride(c code.Code, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride registers an exact gRPC status for the given code.
// Overrides take precedence over the library defaults.
func WithGRPCOverride(c code.Code, grpc codes.Code) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithHTTPFallback replaces the HTTP status used for codes with neither an
// override nor a default (500 unless configured).
func WithHTTPFallback(http int) Option {
	return func(b *builder) { b.fallbackHTTP = http }
}

// WithGRPCFallback replaces the gRPC status used for codes with neither an
// override nor a default (codes.Unknown unless configured).
func WithGRPCFallback(grpc codes.Code) Option {
	return func(b *builder) { b.fallbackGRPC = grpc }
}
