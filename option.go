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

// Option is a functional option for constructing or transforming an
// Exception. It always takes an *Exception and returns a (possibly new)
// *Exception.
type Option func(*Exception) *Exception

// WithReasonOption sets the human-readable reason on the exception being
// constructed. Intended to be used with New(...).
func WithReasonOption(r string) Option {
	return func(e *Exception) *Exception {
		return e.WithReason(r)
	}
}

// WithDataOption attaches an arbitrary payload on construction.
// Intended to be used with New(...).
func WithDataOption(d any) Option {
	return func(e *Exception) *Exception {
		return e.WithData(d)
	}
}

// WithCauseOption attaches an underlying cause on construction.
// Intended to be used with New(...).
func WithCauseOption(err error) Option {
	return func(e *Exception) *Exception {
		return e.WithCause(err)
	}
}
