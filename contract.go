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

// ContractError reports misuse of the exc API itself: wrapping an
// asynchronous-shaped function with Wrap, unwrapping a nil Maybe, or
// extracting a Maybe twice.
//
// These are programming errors, not runtime conditions, so they are
// delivered by panic at the offending call site rather than returned as
// catchable errors.
type ContractError struct {
	// Violation describes what the caller did wrong.
	Violation string
}

// Error implements the built-in error interface.
func (e *ContractError) Error() string {
	return "exc: contract violation: " + e.Violation
}

// violate panics with a ContractError carrying the given description.
func violate(v string) {
	panic(&ContractError{Violation: v})
}
