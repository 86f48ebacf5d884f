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
	"strings"
	"testing"

	"dirpx.dev/exc/apis"
	"dirpx.dev/exc/code"
)

// Exception must satisfy the boundary contracts in apis.
var (
	_ apis.CodedError    = (*Exception)(nil)
	_ apis.ReasonedError = (*Exception)(nil)
	_ apis.DataError     = (*Exception)(nil)
)

func TestException_Basics(t *testing.T) {
	e, err := New(code.NotFound,
		WithReasonOption("user row absent"),
		WithDataOption("user-42"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if e.Code != code.NotFound {
		t.Fatal("code mismatch")
	}
	if e.Reason != "user row absent" {
		t.Fatal("reason mismatch")
	}
	if e.Data != "user-42" {
		t.Fatal("data mismatch")
	}

	s := e.Error()
	for _, sub := range []string{"not_found", "user row absent"} {
		if !strings.Contains(s, sub) {
			t.Fatalf("Error() missing %q in %q", sub, s)
		}
	}

	if got := e.ErrorCode(); got != "not_found" {
		t.Fatalf("ErrorCode() = %q", got)
	}
	if got := e.ErrorReason(); got != "user row absent" {
		t.Fatalf("ErrorReason() = %q", got)
	}
	if got := e.ErrorData(); got != "user-42" {
		t.Fatalf("ErrorData() = %v", got)
	}
}

func TestException_ErrorWithoutReason(t *testing.T) {
	e := MustNew(code.Timeout)
	if got := e.Error(); got != "timeout" {
		t.Fatalf("Error() = %q, want %q", got, "timeout")
	}
}

func TestException_ReservedCode(t *testing.T) {
	e, err := New(code.Ok)
	if err == nil {
		t.Fatalf("New(code.Ok) = %v, want error", e)
	}
	if !errors.Is(err, ErrReservedCode) {
		t.Fatalf("New(code.Ok) error = %v, want ErrReservedCode", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("MustNew(code.Ok) must panic")
		}
	}()
	MustNew(code.Ok)
}

func TestException_InvalidCode(t *testing.T) {
	_, err := New(code.Code("Not A Code"))
	if !errors.Is(err, code.ErrCodeInvalid) {
		t.Fatalf("New with malformed code error = %v, want ErrCodeInvalid", err)
	}
}

func TestException_Immutability_CopyOnWrite(t *testing.T) {
	e1 := MustNew(code.Invalid, WithReasonOption("bad"))
	e2 := e1.WithData(42)
	e3 := e2.WithReason("worse")

	if e1.Data != nil {
		t.Fatal("original mutated by WithData")
	}
	if e2.Reason != "bad" || e3.Reason != "worse" {
		t.Fatal("WithReason copy semantics broken")
	}
	if e3.Data != 42 {
		t.Fatal("WithReason dropped data")
	}
}

func TestException_WithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	e := MustNew(code.Internal, WithCauseOption(root))
	if !errors.Is(e, root) {
		t.Fatal("errors.Is must reach the cause")
	}
	if e.WithCause(nil) != e {
		t.Fatal("WithCause(nil) must return the receiver unchanged")
	}
}
