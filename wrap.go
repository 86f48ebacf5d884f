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
	"reflect"

	"dirpx.dev/exc/code"
)

// Wrap adapts a synchronous function so that classified failures come back
// deferred instead of raised.
//
// The returned function:
//   - invokes fn, capturing the call site first so a later leak diagnostic
//     points at the caller;
//   - on a nil error, returns a success Maybe;
//   - on an error that is not an Exception (per errors.As), passes the error
//     through completely unchanged — this mechanism only intercepts
//     classified failures;
//   - on an Exception whose code is allowed, returns a failure Maybe holding
//     it, to be resolved by Unwrap;
//   - on an Exception whose code is NOT allowed, returns an *EscalationError
//     immediately — the wrap-time enforcement point, distinct from (and in
//     addition to) the one inside Unwrap.
//
// An empty allow-list means "unrestricted": every Exception is deferred.
// Declaring codes turns the list into a contract the wrapped function must
// stay within.
//
// Wrap fails at wrap time, before any invocation, when fn's result type is
// itself a deferred computation (a *Pending or a channel): such functions
// are asynchronous in shape and must use WrapAsync. The violation panics
// with a *ContractError, as does a nil fn.
func Wrap[T any](fn func() (T, error), allowed ...code.Code) func() (*Maybe[T], error) {
	if fn == nil {
		violate("Wrap of a nil function")
	}
	if t := reflect.TypeFor[T](); isDeferredShape(t) {
		violate(fmt.Sprintf("Wrap of an asynchronous function (result type %v); use WrapAsync", t))
	}

	return func() (*Maybe[T], error) {
		diag := captureCallSite(1)
		v, err := fn()
		return classify(v, err, allowed, diag)
	}
}

// classify applies the shared Wrap/WrapAsync resolution table to an invoke
// result.
func classify[T any](v T, err error, allowed []code.Code, diag string) (*Maybe[T], error) {
	if err == nil {
		return newSuccess(v, diag), nil
	}
	var ex *Exception
	if !errors.As(err, &ex) {
		// Unclassified errors are never intercepted or deferred.
		return nil, err
	}
	if len(allowed) > 0 && !ex.Code.In(allowed) {
		return nil, escalate(ex)
	}
	return newFailure[T](ex, diag), nil
}

// deferredComputation marks result types that resolve later rather than
// holding a value now. *Pending implements it; channels are recognized by
// kind in isDeferredShape.
type deferredComputation interface {
	deferredResult()
}

var deferredComputationType = reflect.TypeFor[deferredComputation]()

// isDeferredShape reports whether t is an asynchronous result shape: a
// pending computation or a bare channel.
func isDeferredShape(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Chan {
		return true
	}
	return t.Implements(deferredComputationType)
}
