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
	"fmt"

	"dirpx.dev/exc/code"
)

// EscalationError is the fatal error produced when an Exception's code is
// not in the allow-list declared for it — either the allow-list given to
// Wrap/WrapAsync or the one given to Unwrap.
//
// It is deliberately NOT an Exception: errors.As with an **Exception target
// never matches it, so it cannot be caught and silently handled by the same
// mechanism it guards. It signals a program defect — an exception escaped a
// call site that did not declare it — and is meant to propagate.
//
// Code and Reason echo the original exception for debugging; the attached
// data and cause are dropped on purpose so the escalation cannot be used as
// a covert delivery channel for the classified failure.
type EscalationError struct {
	// Code is the code of the exception that escaped.
	Code code.Code

	// Reason is the human-readable reason of the exception that escaped,
	// possibly empty.
	Reason string
}

// Error implements the built-in error interface. The message embeds the
// original code and reason so logs identify the violated contract.
func (e *EscalationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Reason != "" {
		return fmt.Sprintf("exc: undeclared exception escaped: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("exc: undeclared exception escaped: %s", e.Code)
}

// escalate converts a classified exception into its fatal, unclassified
// form. Both enforcement points (wrap time and unwrap time) funnel through
// here so the observable escalation shape is identical.
func escalate(e *Exception) *EscalationError {
	return &EscalationError{Code: e.Code, Reason: e.Reason}
}
