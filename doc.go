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

// Package exc implements an explicit-exception discipline on top of Go's
// ordinary error values.
//
// A function signature alone does not say which classified failures a
// function may produce. exc makes that contract explicit and enforced:
//
//   - Exception is a classified, recoverable failure value carrying a
//     machine-readable code (see the code package), an optional
//     human-readable reason, and arbitrary attached data.
//   - Maybe is a single-use container that holds either a success value or
//     an Exception, deferring the "is this success or a named exception"
//     decision until the caller explicitly unwraps it.
//   - Unwrap consumes a Maybe against a caller-declared allow-list of
//     exception codes: success returns the value, an allowed exception is
//     returned as the error for the caller to match with errors.As, and a
//     disallowed exception escalates to an EscalationError — a deliberately
//     unclassified, fatal error signaling a contract violation.
//   - Wrap and WrapAsync adapt ordinary functions so that classified
//     failures always come back as a Maybe while every other error passes
//     through untouched.
//
// Every live Maybe is tracked by a process-wide leak detector. A Maybe that
// becomes unreachable without having been extracted produces a warning on
// the diagnostic sink (stderr by default, replaceable via SetLeakSink),
// carrying the call site that created it. Tracking is weak — it never keeps
// a Maybe alive — and the warning is a best-effort debugging aid whose
// timing is decided by the garbage collector.
//
// Misusing the API itself (wrapping an asynchronous-shaped function with
// Wrap, unwrapping a nil Maybe, extracting twice) is a programming error and
// panics with a *ContractError rather than returning a catchable error.
package exc
