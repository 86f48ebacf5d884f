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

// Package httpx writes exceptions that escape a handler as HTTP error
// responses, resolving the status through an apis.Mapper and serializing
// the shared apis.ExceptionView as the JSON body.
package httpx

import (
	"encoding/json"
	"net/http"

	"dirpx.dev/exc"
	"dirpx.dev/exc/adapter"
	"dirpx.dev/exc/apis"
)

// Writer is a thin adapter that knows how to turn an exc error into an HTTP
// response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes the exception as an apis.ExceptionView JSON body with the
// status resolved via the Mapper.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the exception (including the attached data) is exposed as-is.
// Higher-level handlers should apply policies if needed.
func (w Writer) Write(rw http.ResponseWriter, e *exc.Exception) {
	if e == nil {
		return
	}

	view := adapter.ToView(e)

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(w.Mapper.HTTPStatus(e.Code))

	b, err := json.Marshal(view)
	if err != nil {
		// The attached data did not survive JSON encoding; fall back to the
		// code-and-reason-only view rather than sending a broken body.
		view.Data = nil
		b, _ = json.Marshal(view)
	}
	_, _ = rw.Write(b)
}

// WriteEscalation reports a contract violation as a plain 500.
//
// Escalations deliberately do not go through the mapper: an undeclared
// exception reaching the HTTP boundary is a program defect, not a
// client-actionable condition, so the body carries only the defect message.
func (w Writer) WriteEscalation(rw http.ResponseWriter, esc *exc.EscalationError) {
	if esc == nil {
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusInternalServerError)

	b, _ := json.Marshal(map[string]string{"error": esc.Error()})
	_, _ = rw.Write(b)
}
