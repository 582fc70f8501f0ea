// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Dispatcher runs message handlers on their own goroutines, bounded by a
// maximum concurrency, decoupling slow application handling from the
// strictly sequential Poll loop.
type Dispatcher struct {
	sem *semaphore.Weighted
	max int64
}

// NewDispatcher returns a Dispatcher that runs at most maxConcurrent
// handlers at once.
func NewDispatcher(maxConcurrent int64) *Dispatcher {
	return &Dispatcher{sem: semaphore.NewWeighted(maxConcurrent), max: maxConcurrent}
}

// Dispatch copies payload (which aliases the framer's reused buffer and
// is only valid until the next Poll call) and runs handle(kind, copy) on
// its own goroutine once a slot is free. It blocks until a slot opens or
// ctx is canceled.
func (d *Dispatcher) Dispatch(ctx context.Context, kind Kind, payload []byte, handle func(Kind, []byte)) error {
	if err := d.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	go func() {
		defer d.sem.Release(1)
		handle(kind, cp)
	}()
	return nil
}

// Wait blocks until every in-flight handler has returned, by acquiring
// the dispatcher's full weight and immediately releasing it.
func (d *Dispatcher) Wait(ctx context.Context) error {
	if err := d.sem.Acquire(ctx, d.max); err != nil {
		return err
	}
	d.sem.Release(d.max)
	return nil
}
