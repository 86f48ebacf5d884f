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

// Package code provides parsing, normalization and validation for exc
// exception codes.
//
// A "code" is the machine-readable classification of an exception, such as
// "not_found", "conflict" or "timeout". Codes are the values that appear in
// allow-lists: a call site declares which codes it is prepared to handle, and
// the enforcement layer compares a raised exception's code against that
// declaration. Codes are meant to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON payloads and allow-list literals.
//
// IMPORTANT: Empty codes ("") are NOT allowed. Every exception MUST have a
// non-empty code.
//
// The code "ok" is syntactically valid but reserved: the library uses it
// internally to mark the success variant of a deferred result's slot, so an
// Exception can never carry it. Constructing one fails with
// exc.ErrReservedCode.
//
// This package defines the canonical representation and the functions that
// convert arbitrary user input to that canonical form.
package code
