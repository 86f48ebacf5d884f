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

package exc

import (
	"errors"
	"fmt"

	"dirpx.dev/exc/code"
)

// ErrReservedCode is returned by New when the requested code is the success
// sentinel. The sentinel marks the success variant of a Maybe's internal
// slot, so an Exception carrying it would be indistinguishable from success.
var ErrReservedCode = errors.New(`exc: code "ok" is reserved for the success variant`)

// Exception is a classified, recoverable failure value.
//
// It carries:
//   - Code: machine-readable classification used for allow-list matching
//     (required, never the reserved success sentinel);
//   - Reason: optional human-oriented description of what went wrong;
//   - Data: arbitrary attached payload, opaque to this library;
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// An Exception is immutable after construction: the WithX helpers return a
// shallow copy, so instances can be safely shared across goroutines.
// Classification is by Code string only — identity and equality of Exception
// values carry no meaning.
type Exception struct {
	// Code is the primary classification, e.g. "not_found", "conflict".
	// Must be a normalized code from exc/code and never code.Ok.
	Code code.Code

	// Reason is a human-readable explanation. May be empty when the Code is
	// descriptive enough.
	Reason string

	// Data is an optional payload attached by the raising site and carried
	// to whoever catches the exception. The library never inspects it.
	Data any

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for debugging in lower layers.
	Cause error
}

// New constructs an Exception with the given code.
//
// Usage:
//
//	return exc.New(code.NotFound, exc.WithReasonOption("user row absent"),
//	    exc.WithDataOption(userID))
//
// It fails with ErrReservedCode when c is the success sentinel and with
// code.ErrCodeInvalid when c does not validate. All provided options are
// applied in order.
func New(c code.Code, opts ...Option) (*Exception, error) {
	if c == code.Ok {
		return nil, ErrReservedCode
	}
	if err := code.Validate(c); err != nil {
		return nil, err
	}
	e := &Exception{Code: c}
	for _, opt := range opts {
		e = opt(e)
	}
	return e, nil
}

// MustNew is the panic-on-error variant of New. It is useful for raising
// exceptions inline where the code is a package constant and cannot fail
// validation.
func MustNew(c code.Code, opts ...Option) *Exception {
	e, err := New(c, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code>
//
// or, when Reason is present:
//
//	<code>: <reason>
func (e *Exception) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Reason)
	}
	return string(e.Code)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Exception) Unwrap() error { return e.Cause }

// ErrorCode returns the classification code as a string.
// It implements apis.CodedError.
func (e *Exception) ErrorCode() string { return string(e.Code) }

// ErrorReason returns the human-readable reason, possibly empty.
// It implements apis.ReasonedError.
func (e *Exception) ErrorReason() string { return e.Reason }

// ErrorData returns the attached payload, possibly nil.
// It implements apis.DataError.
func (e *Exception) ErrorData() any { return e.Data }

// WithReason returns a shallow copy of e with the given reason set.
// The original exception is not modified.
func (e *Exception) WithReason(r string) *Exception {
	cp := *e
	cp.Reason = r
	return &cp
}

// WithData returns a shallow copy of e with the given payload attached.
// The original exception is not modified.
func (e *Exception) WithData(d any) *Exception {
	cp := *e
	cp.Data = d
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, the original exception is returned unchanged.
func (e *Exception) WithCause(err error) *Exception {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
