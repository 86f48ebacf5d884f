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

// CodedError represents an error that is classified into a well-defined,
// machine-readable exception *code*.
//
// Codes are intended to be stable and enumerable. They are the values that
// appear in allow-lists and the primary input for transport adapters
// deciding which status to return to a client.
//
// Implementations are expected to return a *canonicalized* code string —
// normalized to the format enforced by the exc/code package (lowercase,
// underscores, length limits). Adapters should treat unknown or empty codes
// as internal errors.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable exception code.
	//
	// The returned value MUST be non-empty, MUST already be normalized, and
	// MUST NOT be the reserved success sentinel. Callers should not try to
	// "fix" the value here — if it's invalid, handle it as an internal
	// error at the boundary.
	ErrorCode() string
}

// ReasonedError represents an error that provides a human-readable reason in
// addition to its code.
//
// While the code answers "what kind of failure is this?" for machines, the
// reason answers "what actually went wrong?" for people reading logs or
// API responses.
//
// Having a separate interface lets code degrade gracefully: when an error
// provides no reason, the caller can still act on the code.
type ReasonedError interface {
	error

	// ErrorReason returns the human-readable reason.
	//
	// The returned value MAY be empty. Callers should be prepared to handle
	// the empty case.
	ErrorReason() string
}

// DataError represents an error carrying an arbitrary payload attached by
// the raising site.
//
// The payload is opaque to the exc core and to adapters; it exists so a
// catcher matching on the code can recover site-specific context (an id,
// a partial result, a retry hint) without string parsing.
type DataError interface {
	error

	// ErrorData returns the attached payload. May return nil.
	ErrorData() any
}
