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
	"fmt"
	"runtime"
	"strings"
)

// callSiteMaxDepth bounds the captured stack. Leak diagnostics only need
// enough context to locate the abandoning call site; deep traces just bloat
// the registry.
const callSiteMaxDepth = 16

// captureCallSite renders the current call stack to text, skipping 'skip'
// frames on top of the internal ones.
//
// The text is rendered eagerly: the leak registry must hold a plain string,
// never program-counter slices, so that nothing captured here can root the
// tracked Maybe or its payload.
//
// Skip accounting:
//   - +1 for runtime.Callers itself
//   - +1 for captureCallSite
//
// so skip=0 places the first recorded frame at the caller of
// captureCallSite, and constructors pass skip=1 to point at *their* caller.
func captureCallSite(skip int) string {
	pc := make([]uintptr, callSiteMaxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return "(no call site recorded)"
	}

	frames := runtime.CallersFrames(pc[:n])
	var b strings.Builder
	for {
		fr, more := frames.Next()
		fmt.Fprintf(&b, "\tat %s (%s:%d)\n", fr.Function, fr.File, fr.Line)
		if !more {
			break
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
