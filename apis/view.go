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

package apis

// ExceptionView is a minimal, serializable representation of an exception.
//
// This is *not* the concrete type used internally — it is the shape that we
// are comfortable exposing over the wire or logging. Keeping it here (in
// apis) allows both the HTTP and gRPC adapters to share the same struct.
type ExceptionView struct {
	// Code is the canonical exception code, e.g. "not_found", "conflict".
	//
	// Producers SHOULD store only normalized, validated codes here.
	Code string `json:"code"`

	// Reason is the optional human-friendly explanation.
	Reason string `json:"reason,omitempty"`

	// Data is the payload attached by the raising site, if any. Producers
	// are responsible for only exposing values that survive JSON encoding
	// and are safe to disclose.
	Data any `json:"data,omitempty"`
}

// ExceptionDescriptor is a flat, transport-friendly description of an
// exception together with its resolved transport statuses.
//
// It is intended for structured logging, tracing, or message bus
// propagation — places that want both the logical classification and the
// concrete HTTP/gRPC projection in one record.
type ExceptionDescriptor struct {
	// Code is the canonical exception code.
	Code string `json:"code"`

	// Reason is the optional human-friendly explanation.
	Reason string `json:"reason,omitempty"`

	// HTTPStatus is the HTTP status resolved for this code. A value of 0
	// means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status code (as integer) resolved for this code.
	// A value of 0 means "not resolved" (0 is gRPC OK, which an exception
	// never maps to).
	GRPCCode int `json:"grpc_code,omitempty"`
}
