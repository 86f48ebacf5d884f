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

// Package apis defines the public Go-level contracts for exc exception
// handling at process boundaries.
//
// The goal of this package is to provide *small, composable* interfaces that
// transport adapters (HTTP, gRPC) and logging code can depend on without
// importing the concrete Exception implementation.
//
// In other words: this package is the "surface" that boundary code targets.
// exc.Exception implements these interfaces, but adapters should not rely on
// the concrete type where an interface suffices.
//
// This package must remain lightweight: interfaces, the status mapper
// contract, and very small view types only.
package apis
