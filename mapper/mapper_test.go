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

package mapper

import (
	"net/http"
	"strings"
	"testing"

	"dirpx.dev/exc/code"
	"google.golang.org/grpc/codes"
)

func TestDefaults(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		name     string
		code     code.Code
		wantHTTP int
		wantGRPC codes.Code
	}{
		{"not_found", code.NotFound, http.StatusNotFound, codes.NotFound},
		{"invalid", code.Invalid, http.StatusBadRequest, codes.InvalidArgument},
		{"conflict", code.Conflict, http.StatusConflict, codes.Aborted},
		{"timeout", code.Timeout, http.StatusGatewayTimeout, codes.DeadlineExceeded},
		{"internal", code.Internal, http.StatusInternalServerError, codes.Internal},
		{"permission_denied", code.PermissionDenied, http.StatusForbidden, codes.PermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := m.Status(tt.code)
			if st.HTTP != tt.wantHTTP {
				t.Fatalf("HTTP = %d, want %d", st.HTTP, tt.wantHTTP)
			}
			if st.GRPC != tt.wantGRPC {
				t.Fatalf("GRPC = %v, want %v", st.GRPC, tt.wantGRPC)
			}
		})
	}
}

func TestOverridesBeatDefaults(t *testing.T) {
	m, err := New(
		WithHTTPOverride(code.NotFound, http.StatusGone),
		WithGRPCOverride(code.NotFound, codes.FailedPrecondition),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := m.HTTPStatus(code.NotFound); got != http.StatusGone {
		t.Fatalf("HTTPStatus = %d, want %d", got, http.StatusGone)
	}
	if got := m.GRPCStatus(code.NotFound); got != codes.FailedPrecondition {
		t.Fatalf("GRPCStatus = %v, want %v", got, codes.FailedPrecondition)
	}

	// Other codes untouched.
	if got := m.HTTPStatus(code.Conflict); got != http.StatusConflict {
		t.Fatalf("unrelated code affected: %d", got)
	}
}

func TestFallbacks(t *testing.T) {
	custom := code.MustParse("frobnicate_failed")

	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(custom); got != http.StatusInternalServerError {
		t.Fatalf("default HTTP fallback = %d", got)
	}
	if got := m.GRPCStatus(custom); got != codes.Unknown {
		t.Fatalf("default gRPC fallback = %v", got)
	}

	m, err = New(
		WithHTTPFallback(http.StatusTeapot),
		WithGRPCFallback(codes.DataLoss),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(custom); got != http.StatusTeapot {
		t.Fatalf("configured HTTP fallback = %d", got)
	}
	if got := m.GRPCStatus(custom); got != codes.DataLoss {
		t.Fatalf("configured gRPC fallback = %v", got)
	}
}

func TestInvalidOverrideCode(t *testing.T) {
	_, err := New(WithHTTPOverride(code.Code("Not Valid"), http.StatusTeapot))
	if err == nil {
		t.Fatal("New must reject overrides for invalid codes")
	}
}

func TestExplain(t *testing.T) {
	m := Must(WithHTTPOverride(code.NotFound, http.StatusGone))

	tests := []struct {
		name string
		code code.Code
		want string
	}{
		{"override layer", code.NotFound, "override"},
		{"default layer", code.Conflict, "default"},
		{"fallback layer", code.MustParse("mystery"), "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Explain(tt.code); !strings.Contains(got, tt.want) {
				t.Fatalf("Explain(%q) = %q, want mention of %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestMustPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Must with invalid option must panic")
		}
	}()
	Must(WithGRPCOverride(code.Code(""), codes.Internal))
}
