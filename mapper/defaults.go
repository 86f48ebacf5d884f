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
	"net/http"

	"dirpx.dev/exc/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for the
// well-known exception codes. These are only defaults: callers are expected
// to override them at the boundary where HTTP is actually produced when a
// different policy is required.
var defaultHTTP = map[code.Code]int{
	// 5xx — server / dependency / transient issues.
	code.Internal:    http.StatusInternalServerError, // Generic internal failure; do not expose internal details.
	code.Unavailable: http.StatusServiceUnavailable,  // A required dependency is temporarily unreachable.
	code.Timeout:     http.StatusGatewayTimeout,      // Operation exceeded the time budget.
	code.Canceled:    http.StatusRequestTimeout,      // Canceled by the caller; integrators may switch to 499.

	// 4xx — client / protocol / resource issues.
	code.Invalid:     http.StatusBadRequest, // Malformed input, validation errors, contract violation.
	code.Missing:     http.StatusBadRequest, // Required field/parameter/resource reference is missing.
	code.Unsupported: http.StatusBadRequest, // Known but unsupported operation/content/option.
	code.Expired:     http.StatusGone,       // Resource or token has expired.

	code.NotFound: http.StatusNotFound, // Target resource does not exist (or is not visible to the caller).

	// Conflicts and concurrency.
	code.AlreadyExists: http.StatusConflict, // Resource creation clash — it already exists.
	code.Conflict:      http.StatusConflict, // General conflicting update/action.

	// AuthN / AuthZ.
	code.Unauthenticated:  http.StatusUnauthorized, // No/invalid credentials — caller must authenticate.
	code.PermissionDenied: http.StatusForbidden,    // Caller is authenticated but not allowed to act.

	// Rate limiting.
	code.RateLimited: http.StatusTooManyRequests, // Client hit a rate limit.
}

// defaultGRPC defines the library's built-in gRPC mappings for the
// well-known exception codes, chosen to align with canonical gRPC status
// semantics while preserving the higher-level meanings from exc/code.
var defaultGRPC = map[code.Code]codes.Code{
	// Internal / server-side / unexpected.
	code.Internal:    codes.Internal,
	code.Unavailable: codes.Unavailable,
	code.Timeout:     codes.DeadlineExceeded,
	code.Canceled:    codes.Canceled,

	// Input / protocol.
	code.Invalid:     codes.InvalidArgument,
	code.Missing:     codes.InvalidArgument,
	code.Unsupported: codes.InvalidArgument,
	code.Expired:     codes.FailedPrecondition,

	// Resource state.
	code.NotFound:      codes.NotFound,
	code.AlreadyExists: codes.AlreadyExists,
	code.Conflict:      codes.Aborted,

	// AuthN / AuthZ.
	code.Unauthenticated:  codes.Unauthenticated,
	code.PermissionDenied: codes.PermissionDenied,

	// Rate limiting.
	code.RateLimited: codes.ResourceExhausted,
}

// Fallbacks used when a code has neither an override nor a default.
// Unknown classifications are server-side problems by definition.
const (
	fallbackHTTP = http.StatusInternalServerError
	fallbackGRPC = codes.Unknown
)
