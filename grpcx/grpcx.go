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

// Package grpcx maps exceptions that escape a handler to gRPC statuses.
//
// Exceptions that cross a process boundary have, by definition, left the
// in-process catch/classify discipline; this adapter is the boundary's
// translation of "an exception escaped" into the wire's vocabulary. The
// classification survives as an errdetails.ErrorInfo detail so clients can
// rebuild their own allow-list handling on the far side.
package grpcx

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	"google.golang.org/genproto/googleapis/rpc/errdetails"

	"dirpx.dev/exc"
	"dirpx.dev/exc/apis"
)

// Domain identifies this library in errdetails.ErrorInfo records.
const Domain = "exc.dirpx.dev"

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// exc errors into gRPC statuses.
//
// Mapping policy:
//   - *exc.Exception (matched anywhere in the chain via errors.As): status
//     resolved through the provided mapper, with an ErrorInfo detail
//     carrying the code, reason and stringified data;
//   - *exc.EscalationError: codes.Internal — an escalation is a program
//     defect and must not look like a classified, client-actionable status;
//   - anything else: returned as-is, untouched.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var ex *exc.Exception
		if errors.As(err, &ex) {
			return nil, statusFromException(m, ex)
		}

		var esc *exc.EscalationError
		if errors.As(err, &esc) {
			return nil, gstatus.New(gcodes.Internal, esc.Error()).Err()
		}

		// Not ours — pass through unchanged.
		return nil, err
	}
}

// statusFromException builds the wire status for an escaped exception.
func statusFromException(m apis.Mapper, ex *exc.Exception) error {
	base := gstatus.New(m.GRPCStatus(ex.Code), ex.Error())

	detail := &errdetails.ErrorInfo{
		Reason: string(ex.Code),
		Domain: Domain,
	}
	if ex.Reason != "" || ex.Data != nil {
		detail.Metadata = map[string]string{}
		if ex.Reason != "" {
			detail.Metadata["reason"] = ex.Reason
		}
		if ex.Data != nil {
			detail.Metadata["data"] = fmt.Sprint(ex.Data)
		}
	}

	// Try to attach the detail. If it fails — return base.
	if anyDetail, err := anypb.New(detail); err == nil {
		if with, err := base.WithDetails(anyDetail); err == nil {
			return with.Err()
		}
	}
	return base.Err()
}

// ExtractErrorInfo pulls the errdetails.ErrorInfo out of a gRPC error, if
// one produced by this package is present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return info, true
		}
	}
	return nil, false
}
