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
	"sync/atomic"

	"dirpx.dev/exc/code"
	"dirpx.dev/exc/internal/leakcheck"
)

// Maybe is a single-use container holding either a success value of type T
// or an Exception. It defers the decision of "is this success or a named
// exception" until the caller consumes it with Extract or Unwrap.
//
// The internal slot tags its variant with a code: the reserved sentinel
// code.Ok marks success, anything else is the stored exception's code. The
// sentinel is what keeps "an *Exception stored as the failure" and "an
// *Exception that happens to be the success value" from ever being confused.
//
// Every Maybe is registered with the process-wide leak detector at creation
// and deregistered by its first (and only) extraction. Extraction is
// one-shot: a second Extract or Unwrap panics with a *ContractError.
type Maybe[T any] struct {
	// used enforces single consumption. First Extract moves it 0→1;
	// any later attempt observes a value above 1 and fails loudly.
	used atomic.Uintptr

	// slotCode is code.Ok for the success variant, the exception's code
	// otherwise.
	slotCode code.Code

	val T
	exc *Exception

	// reg is the leak detector registration handle.
	reg uint64
}

// Success wraps a value produced by normal completion into a Maybe and
// registers it with the leak detector, recording the caller as the
// diagnostic call site.
func Success[T any](v T) *Maybe[T] {
	return newSuccess(v, captureCallSite(1))
}

// Failure wraps a classified failure into a Maybe and registers it with the
// leak detector, recording the caller as the diagnostic call site.
// A nil exception is a contract violation.
func Failure[T any](e *Exception) *Maybe[T] {
	return newFailure[T](e, captureCallSite(1))
}

func newSuccess[T any](v T, diag string) *Maybe[T] {
	m := &Maybe[T]{slotCode: code.Ok, val: v}
	m.reg = leakcheck.Register(m, diag)
	return m
}

func newFailure[T any](e *Exception, diag string) *Maybe[T] {
	if e == nil {
		violate("Failure with a nil exception")
	}
	m := &Maybe[T]{slotCode: e.Code, exc: e}
	m.reg = leakcheck.Register(m, diag)
	return m
}

// Extract performs the one-time read of the slot. It returns either the
// success value (with a nil exception) or the stored exception (with the
// zero value), and deregisters the Maybe from the leak detector as a side
// effect regardless of which variant is stored.
//
// Extracting twice, or extracting a nil Maybe, panics with a *ContractError.
func (m *Maybe[T]) Extract() (T, *Exception) {
	if m == nil {
		violate("extract of a nil Maybe")
	}
	if m.used.Add(1) != 1 {
		violate("deferred result extracted twice")
	}
	leakcheck.Unregister(m.reg)

	v, e := m.val, m.exc

	// Clear the slot so the consumed container roots neither the payload
	// nor the exception.
	var zero T
	m.val = zero
	m.exc = nil

	if m.slotCode == code.Ok {
		return v, nil
	}
	return v, e
}

// Unwrap consumes the Maybe against the caller's allow-list.
//
// Resolution:
//   - success: the value is returned with a nil error;
//   - stored exception whose code is in allowed: the *Exception itself is
//     returned as the error, unchanged — match it with errors.As and inspect
//     Code, Reason, Data;
//   - stored exception whose code is NOT in allowed (including the empty
//     allow-list): an *EscalationError embedding the original code and
//     reason is returned instead, signaling a contract violation.
//
// Note the default asymmetry with Wrap: an empty allow-list here declares
// "this call site handles nothing", whereas Wrap's empty allow-list means
// "defer everything".
func (m *Maybe[T]) Unwrap(allowed ...code.Code) (T, error) {
	v, e := m.Extract()
	if e == nil {
		return v, nil
	}
	var zero T
	if e.Code.In(allowed) {
		return zero, e
	}
	return zero, escalate(e)
}

// Unwrap is the package-level spelling of (*Maybe).Unwrap for call sites
// that prefer the operation-first form.
func Unwrap[T any](m *Maybe[T], allowed ...code.Code) (T, error) {
	return m.Unwrap(allowed...)
}

// SetLeakSink replaces the destination for leak diagnostics and returns the
// previous one. Passing nil restores the default, which writes a warning to
// stderr. The sink may be invoked concurrently from the runtime's cleanup
// goroutine.
func SetLeakSink(fn func(diag string)) (prev func(diag string)) {
	return (func(diag string))(leakcheck.SetSink(leakcheck.Sink(fn)))
}
