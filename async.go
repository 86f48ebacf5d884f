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
	"context"

	"dirpx.dev/exc/code"
)

// Pending is a deferred computation of a Maybe: the result of calling a
// WrapAsync-adapted function. It resolves after the underlying call
// completes, applying the same classification as Wrap at that point.
type Pending[T any] struct {
	done  chan struct{}
	maybe *Maybe[T]
	err   error
}

// Done returns a channel that is closed when the computation has resolved.
func (p *Pending[T]) Done() <-chan struct{} { return p.done }

// Wait blocks until the computation resolves and returns the deferred
// result, exactly as the Wrap-adapted equivalent would have: a Maybe on
// success or deferred exception, a pass-through error or *EscalationError
// otherwise. Wait may be called any number of times; every call observes
// the same resolution, and consumption rules apply to the Maybe, not to
// Wait itself.
func (p *Pending[T]) Wait() (*Maybe[T], error) {
	<-p.done
	return p.maybe, p.err
}

// deferredResult marks Pending as an asynchronous result shape so Wrap can
// reject functions returning one.
func (*Pending[T]) deferredResult() {}

// WrapAsync adapts a function whose work completes asynchronously.
//
// The contract is identical to Wrap except that no result-shape check is
// performed and the classification happens after the underlying call
// completes: the returned function starts fn and immediately hands back a
// *Pending that resolves to the classified result.
//
// The context is passed to fn untouched; the wrapper itself provides no
// cancellation — once invoked, a wrapped call runs to resolution.
func WrapAsync[T any](fn func(context.Context) (T, error), allowed ...code.Code) func(context.Context) *Pending[T] {
	if fn == nil {
		violate("WrapAsync of a nil function")
	}

	return func(ctx context.Context) *Pending[T] {
		// Capture before starting the call: a leak diagnostic must point at
		// the invoking site, not at the resolution goroutine.
		diag := captureCallSite(1)
		p := &Pending[T]{done: make(chan struct{})}
		go func() {
			defer close(p.done)
			v, err := fn(ctx)
			p.maybe, p.err = classify(v, err, allowed, diag)
		}()
		return p
	}
}
