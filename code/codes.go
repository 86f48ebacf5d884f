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

package code

// Well-known exception codes.
//
// The library does not restrict exceptions to this set — any string passing
// validation is a usable code, and allow-lists match on exact strings — but
// these constants cover the classifications most wrapped functions raise, and
// the mapper package ships transport defaults for all of them.

// Core / generic domain codes
const (
	// Internal indicates an internal, non-classified failure. Use this as
	// the fallback when no more specific domain code applies. The root cause
	// is typically attached as the exception's cause.
	//
	// Can be mapped to an HTTP 500.
	Internal Code = "internal"

	// Invalid indicates that an input value, entity, or payload violates
	// a structural or semantic invariant.
	//
	// Can be mapped to an HTTP 400.
	Invalid Code = "invalid"

	// Missing indicates that a required value or structure is absent: a
	// field, parameter, or related object is empty, nil, or not supplied.
	//
	// Can be mapped to an HTTP 400.
	Missing Code = "missing"

	// Unsupported indicates that the requested operation, value, or feature
	// is not supported in the current runtime or policy.
	//
	// Can be mapped to an HTTP 400 or 501 depending on policy.
	Unsupported Code = "unsupported"
)

// Runtime / operation control codes
const (
	// Unavailable indicates that a required downstream dependency or
	// service is temporarily unreachable.
	//
	// Can be mapped to an HTTP 503.
	Unavailable Code = "unavailable"

	// Timeout indicates that the operation could not complete within the
	// allotted time budget.
	//
	// Can be mapped to an HTTP 504.
	Timeout Code = "timeout"

	// Canceled indicates that the operation was explicitly canceled by the
	// caller or by context propagation.
	//
	// Can be mapped to an HTTP 499 (client closed request) or 408 depending
	// on policy.
	Canceled Code = "canceled"

	// RateLimited indicates that the caller exceeded the allowed request or
	// action rate in the current time window.
	//
	// Can be mapped to an HTTP 429.
	RateLimited Code = "rate_limited"
)

// Resource / state / concurrency codes
const (
	// NotFound indicates that the requested entity does not exist in the
	// current scope or storage.
	//
	// Can be mapped to an HTTP 404.
	NotFound Code = "not_found"

	// AlreadyExists indicates that the target entity cannot be created
	// because an entity with the same primary identity already exists.
	//
	// Can be mapped to an HTTP 409.
	AlreadyExists Code = "already_exists"

	// Conflict indicates a domain-state conflict or uniqueness violation:
	// version mismatches, concurrent updates, collisions that are not
	// strictly "already exists" cases.
	//
	// Can be mapped to an HTTP 409.
	Conflict Code = "conflict"

	// Expired indicates that the target object is no longer valid due to
	// time-based expiration: challenges, confirmation links, one-time
	// tokens, or any entity with a TTL.
	//
	// Can be mapped to an HTTP 410 or 400 depending on policy.
	Expired Code = "expired"
)

// Authentication / authorization codes
const (
	// Unauthenticated indicates that the caller is not authenticated or the
	// authentication context could not be established.
	//
	// Can be mapped to an HTTP 401.
	Unauthenticated Code = "unauthenticated"

	// PermissionDenied indicates that the caller is authenticated but does
	// not have sufficient privileges to perform the target operation.
	//
	// Can be mapped to an HTTP 403.
	PermissionDenied Code = "permission_denied"
)
