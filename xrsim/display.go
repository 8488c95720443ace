// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xrsim

import (
	"context"
	"time"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// signalCapacity bounds the refreshes waiting for the dispatch goroutine.
// A display never queues more than a few frames ahead.
const signalCapacity = 4

// Run delivers a display refresh every interval until ctx ends, and
// returns ctx.Err().
//
// Refreshes are produced by the clock's ticker on a separate goroutine and
// handed over through a bounded lock-free SPSC queue; a refresh that finds
// the queue full is dropped, as a display drops a frame that misses vsync.
// Callbacks run on the calling goroutine, which waits on the empty queue
// with iox.Backoff.
func (rt *Runtime) Run(ctx context.Context, interval time.Duration) error {
	var signals lfq.SPSC[time.Time]
	signals.Init(signalCapacity)

	ticker := rt.clock.NewTicker(interval)
	defer ticker.Stop()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.Chan():
				if err := signals.Enqueue(&t); err != nil {
					rt.dropped.Add(1)
				}
			}
		}
	}()

	var bo iox.Backoff
	for {
		if _, err := signals.Dequeue(); err == nil {
			rt.Tick()
			bo.Reset()
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		bo.Wait()
	}
}
