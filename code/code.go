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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is the canonical, validated representation of an exception code.
//
// It is defined as a separate type (not just string) so that allow-lists and
// exception constructors can explicitly declare which values they expect and
// to avoid accidental mixing of raw user input with normalized values.
//
// IMPORTANT: Empty codes ("") are NOT allowed. Every exception MUST have a
// non-empty code.
type Code string

// MinLength and MaxLength define the allowed length range for a canonical
// exc code.
const (
	// MinLength is the minimum length for a valid code.
	// Two characters is the floor because the reserved success sentinel
	// ("ok") must itself be representable as a code value.
	MinLength = 2

	// MaxLength is the maximum length for a valid code.
	// 64 characters is enough for descriptive codes like "too_many_attempts"
	// while still preventing unbounded or accidental long strings.
	MaxLength = 64
)

const (
	// codeFmt is the canonical regular expression used to validate exception
	// codes.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[a-z] - first character must be a lowercase ASCII letter;
	//	[a-z0-9_]{1,63} - the remaining characters may be lowercase letters,
	//	                  digits or underscore; the quantifier {1,63} makes
	//	                  the total length 2..64 characters (1 + 1..63);
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {1,63} is tied to MinLength / MaxLength
	// above. If you change MinLength / MaxLength, adjust this pattern as well.
	codeFmt = `^[a-z][a-z0-9_]{1,63}$`
)

var (
	// codeRe is the compiled regular expression used at runtime to validate
	// that a string is a canonical exc code.
	//
	// Precompiled so that repeated validations (allow-list construction,
	// unwrap hot paths) do not pay the compilation cost over and over.
	//
	// Examples of valid codes:
	//   - "not_found"
	//   - "timeout"
	//   - "conflict"
	//
	// Examples of invalid codes:
	//   - "NotFound"    (uppercase)
	//   - "not-found"   (dash instead of underscore)
	//   - "x"           (too short)
	//   - "1notvalid"   (does not start with a letter)
	codeRe = regexp.MustCompile(codeFmt)
)

var (
	// ErrCodeInvalid is returned when a value cannot be parsed or validated
	// as an exc code.
	ErrCodeInvalid = errors.New("exc: invalid code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Ok is the reserved success sentinel.
//
// It marks the success variant inside a deferred result's internal slot and
// is exactly what keeps "an Exception stored as the failure" distinguishable
// from "an Exception happens to be the success value". It validates as a
// code shape, but an Exception can never be constructed with it.
const Ok Code = "ok"

// Empty is the zero-value code. It is never valid: unlike reasons, codes are
// mandatory everywhere they appear.
var Empty Code = ""

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Code value.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical code form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' with '_';
//
// It does NOT guarantee that the result is valid — callers should still call
// Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Code is valid.
// The empty code ("") is considered invalid.
func Validate(c Code) error {
	return validate(string(c))
}

// String returns the canonical string representation of the code.
func (c Code) String() string {
	return string(c)
}

// In reports whether c is a member of the given allow-list.
//
// An empty allow-list matches nothing; membership is by exact string
// comparison on the canonical form.
func (c Code) In(allowed []Code) bool {
	for _, a := range allowed {
		if c == a {
			return true
		}
	}
	return false
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// validate is a helper that checks whether the provided string is a valid code.
func validate(s string) error {
	if !codeRe.MatchString(s) {
		return ErrCodeInvalid
	}
	return nil
}
