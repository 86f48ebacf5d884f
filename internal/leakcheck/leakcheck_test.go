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

package leakcheck

import (
	"runtime"
	"testing"
	"time"
)

// register allocates a tracked object in its own frame so the object is
// unreachable once this function returns.
//
//go:noinline
func register(diag string) uint64 {
	p := new(int)
	return Register(p, diag)
}

// forceCleanups runs the collector enough times for pending cleanups to be
// queued, then lets the cleanup goroutine drain.
func forceCleanups() {
	for range 3 {
		runtime.GC()
	}
}

func collect(ch <-chan string, wait time.Duration) []string {
	var got []string
	deadline := time.After(wait)
	for {
		select {
		case d := <-ch:
			got = append(got, d)
		case <-deadline:
			return got
		}
	}
}

func TestAbandonedRegistrationFires(t *testing.T) {
	ch := make(chan string, 8)
	prev := SetSink(func(d string) { ch <- d })
	defer SetSink(prev)

	register("diag: abandoned")

	forceCleanups()

	select {
	case d := <-ch:
		if d != "diag: abandoned" {
			t.Fatalf("sink got %q, want %q", d, "diag: abandoned")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("sink did not fire for abandoned registration")
	}

	// Exactly once: a second collection cycle must not re-fire.
	forceCleanups()
	if extra := collect(ch, 100*time.Millisecond); len(extra) != 0 {
		t.Fatalf("sink fired again: %q", extra)
	}
}

func TestUnregisteredNeverFires(t *testing.T) {
	ch := make(chan string, 8)
	prev := SetSink(func(d string) { ch <- d })
	defer SetSink(prev)

	id := register("diag: consumed")
	Unregister(id)

	forceCleanups()

	if got := collect(ch, 200*time.Millisecond); len(got) != 0 {
		t.Fatalf("sink fired for unregistered id: %q", got)
	}
}

func TestUnregisterIdempotent(t *testing.T) {
	p := new(int)
	id := Register(p, "diag")
	Unregister(id)
	Unregister(id) // second removal is a no-op
	Unregister(id + 1000)
	runtime.KeepAlive(p)
}

func TestRegistrationDoesNotExtendLifetime(t *testing.T) {
	before := Pending()

	const n = 16
	for range n {
		register("diag: lifetime")
	}
	if got := Pending() - before; got != n {
		t.Fatalf("pending = %d, want %d", got, n)
	}

	// All n objects are unreachable; their entries must drain as the
	// collector reclaims them (a strong reference in the registry would
	// keep Pending at n forever).
	deadline := time.Now().Add(5 * time.Second)
	for Pending() > before {
		if time.Now().After(deadline) {
			t.Fatalf("registry still holds %d entries, weak tracking failed", Pending()-before)
		}
		forceCleanups()
		time.Sleep(10 * time.Millisecond)
	}
}

func TestSetSinkRestoresDefault(t *testing.T) {
	custom := func(string) {}
	prev := SetSink(custom)
	defer SetSink(prev)

	// nil restores the default sink rather than installing a nil func.
	SetSink(nil)
	r := std()
	if r.currentSink() == nil {
		t.Fatal("SetSink(nil) must restore the default sink")
	}
}
