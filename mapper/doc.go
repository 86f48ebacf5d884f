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

// Package mapper builds immutable code→status mappers for the transport
// adapters.
//
// A mapper resolves an exception code to an HTTP status and a gRPC status
// code. Resolution order is:
//
//  1. per-code override (registered via options);
//  2. library default for the well-known codes in exc/code;
//  3. configured fallback (500 / codes.Unknown unless overridden).
//
// Mappers are frozen at build time: New copies every table into
// mapper-owned maps, so later mutations to caller-owned state cannot affect
// a built mapper, and a built mapper is safe for concurrent use without
// locking.
package mapper
