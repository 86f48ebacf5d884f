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

// Package adapter converts exc exceptions into the transport-neutral view
// types defined in apis.
package adapter

import (
	"dirpx.dev/exc"
	"dirpx.dev/exc/apis"
)

// ToView converts an exception into a public ExceptionView.
//
// This function performs no automatic redaction or filtering; it exposes
// exactly what the exception contains, including the attached data. It is up
// to the caller or API layer to decide whether to redact sensitive fields.
func ToView(e *exc.Exception) apis.ExceptionView {
	if e == nil {
		return apis.ExceptionView{}
	}
	return apis.ExceptionView{
		Code:   string(e.Code),
		Reason: e.Reason,
		Data:   e.Data,
	}
}

// ToDescriptor converts an exception together with its resolved transport
// status into a portable ExceptionDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the logical code/reason and the concrete
// transport statuses (HTTP and gRPC).
func ToDescriptor(e *exc.Exception, st apis.Status) apis.ExceptionDescriptor {
	if e == nil {
		return apis.ExceptionDescriptor{}
	}
	return apis.ExceptionDescriptor{
		Code:       string(e.Code),
		Reason:     e.Reason,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
}
