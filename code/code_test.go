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
	"encoding"
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  internal  ", "internal"},
		{"to lower", "InVaLiD", "invalid"},
		{"dash to underscore", "not-found", "not_found"},
		{"mixed", "  ALREADY-EXISTS  ", "already_exists"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Code
	}{
		{"simple", "internal", Code("internal")},
		{"with spaces", "  not_found  ", Code("not_found")},
		{"upper", "CONFLICT", Code("conflict")},
		{"dash", "already-exists", Code("already_exists")},
		{"min length", "ok", Code("ok")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "a"},
		{"starts with digit", "1invalid"},
		{"contains dash after normalize", "x-"},
		{"only dash", "-"},
		{"too long", "a_very_long_code_that_is_definitely_more_than_sixty_four_characters_long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if !errors.Is(err, ErrCodeInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrCodeInvalid", tt.in, err)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []Code{
		"internal",
		"not_found",
		"already_exists",
		Ok,
	}
	for _, c := range valid {
		if err := Validate(c); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", c, err)
		}
	}

	invalid := []Code{
		"",          // empty
		"a",         // too short
		"Invalid",   // uppercase
		"not-found", // dash
	}
	for _, c := range invalid {
		if err := Validate(c); err == nil {
			t.Fatalf("Validate(%q) expected error", c)
		}
	}
}

func TestIn(t *testing.T) {
	allowed := []Code{NotFound, Conflict}

	if !NotFound.In(allowed) {
		t.Fatal("NotFound must be in allow-list")
	}
	if Timeout.In(allowed) {
		t.Fatal("Timeout must not be in allow-list")
	}
	if NotFound.In(nil) {
		t.Fatal("empty allow-list must match nothing")
	}
}

func TestOkIsReservedButWellFormed(t *testing.T) {
	// The sentinel must be a valid code shape: it is stored in the same
	// slot as real codes. Reservation is enforced by the exc package at
	// Exception construction, not here.
	if err := Validate(Ok); err != nil {
		t.Fatalf("Validate(Ok) unexpected error: %v", err)
	}
}

func TestTextMarshaling(t *testing.T) {
	var (
		_ encoding.TextMarshaler   = Code("x_")
		_ encoding.TextUnmarshaler = new(Code)
	)

	b, err := NotFound.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(b) != "not_found" {
		t.Fatalf("MarshalText = %q, want %q", b, "not_found")
	}

	if _, err := Code("Bad-Code!").MarshalText(); err == nil {
		t.Fatal("MarshalText of invalid code must fail")
	}

	var c Code
	if err := c.UnmarshalText([]byte("  Already-Exists ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if c != AlreadyExists {
		t.Fatalf("UnmarshalText = %q, want %q", c, AlreadyExists)
	}

	if err := c.UnmarshalText([]byte("!")); err == nil {
		t.Fatal("UnmarshalText of invalid text must fail")
	}
}
