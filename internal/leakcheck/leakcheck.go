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

// Package leakcheck tracks single-use containers that may be abandoned
// without being consumed.
//
// The registry is a weak association from a container's identity to a
// diagnostic string (typically a rendered call stack). Registration never
// extends the container's lifetime: the runtime is free to reclaim a
// registered container at any point, and when it does so while the
// registration is still live, the diagnostic sink is invoked exactly once
// for it, asynchronously, on the runtime's cleanup goroutine. A container
// that was unregistered first never fires, even if reclaimed much later.
//
// This is a best-effort debugging aid. The firing time is decided by the
// garbage collector and must not be used for control flow.
package leakcheck

import (
	"log"
	"os"
	"runtime"
	"sync"
)

// Sink receives one diagnostic per leaked registration.
//
// A Sink must be safe for concurrent use: it is invoked from the runtime's
// cleanup goroutine, outside any user call stack.
type Sink func(diag string)

// registry is the process-wide detector state.
//
// Entries are keyed by a registration id rather than by the tracked pointer
// so that the cleanup closure never references the container itself — a
// cleanup that kept its own object reachable would never run.
type registry struct {
	mu      sync.Mutex
	nextID  uint64
	entries map[uint64]string
	sink    Sink
}

// std returns the process-wide registry, initialized on first use and never
// torn down.
var std = sync.OnceValue(func() *registry {
	return &registry{
		entries: make(map[uint64]string),
		sink:    defaultSink,
	}
})

// defaultSink writes the diagnostic to stderr at warning level.
var defaultSink Sink = func(diag string) {
	warnLogger.Printf("warning: deferred result was garbage collected without being unwrapped\n%s", diag)
}

var warnLogger = log.New(os.Stderr, "exc: ", log.LstdFlags)

// Register weakly associates ptr's identity with the diagnostic text.
//
// The association does not prevent ptr from being garbage collected. If the
// runtime reclaims ptr while the registration is still present, the current
// sink receives diag exactly once. The returned id is the handle for
// Unregister.
func Register[T any](ptr *T, diag string) uint64 {
	r := std()

	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.entries[id] = diag
	r.mu.Unlock()

	// The cleanup closure captures only the registration id. Capturing ptr
	// would root it forever and the cleanup would never fire.
	runtime.AddCleanup(ptr, func(id uint64) {
		if d, ok := std().take(id); ok {
			std().currentSink()(d)
		}
	}, id)

	return id
}

// Unregister removes the association for id. It is idempotent: removing an
// id that was already removed (or already fired) is a no-op.
func Unregister(id uint64) {
	std().take(id)
}

// SetSink replaces the diagnostic sink and returns the previous one.
// Passing nil restores the default stderr sink.
func SetSink(s Sink) Sink {
	r := std()
	if s == nil {
		s = defaultSink
	}
	r.mu.Lock()
	prev := r.sink
	r.sink = s
	r.mu.Unlock()
	return prev
}

// take removes and returns the entry for id. The second result reports
// whether the entry was still present, which is what makes the fire-once
// guarantee hold between Unregister and the reclamation cleanup.
func (r *registry) take(id uint64) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.entries[id]
	if ok {
		delete(r.entries, id)
	}
	return d, ok
}

// currentSink snapshots the sink under the lock so the actual write happens
// outside it. The cleanup goroutine must never invoke user code while
// holding the registry mutex.
func (r *registry) currentSink() Sink {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sink
}

// Pending reports the number of live registrations. Test helper.
func Pending() int {
	r := std()
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
