// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xr_test

import (
	"testing"
	"time"

	"code.hybscloud.com/xr"
	"code.hybscloud.com/xr/xrsim"
	"github.com/jonboulle/clockwork"
)

type harness struct {
	clock *clockwork.FakeClock
	rt    *xrsim.Runtime
	gl    *xrsim.Recorder
	app   *xr.App
}

func newHarness(tb testing.TB, opts ...xr.Option) *harness {
	tb.Helper()
	clock := clockwork.NewFakeClock()
	h := &harness{
		clock: clock,
		rt:    xrsim.NewRuntime(clock),
		gl:    xrsim.NewRecorder(),
	}
	app, err := xr.New(h.rt, xrsim.Surfaces(h.gl), opts...)
	if err != nil {
		tb.Fatalf("New: %v", err)
	}
	h.app = app
	return h
}

// negotiate drives a negotiation to completion by polling, advancing the
// fake clock past the host latency whenever it would block.
func (h *harness) negotiate(tb testing.TB) (xr.Outcome, error) {
	tb.Helper()
	neg, err := h.app.BeginNegotiation()
	if err != nil {
		tb.Fatalf("BeginNegotiation: %v", err)
	}
	for range 16 {
		o, err := neg.Poll()
		if neg.Done() {
			return o, err
		}
		h.clock.Advance(h.rt.Latency)
	}
	tb.Fatal("negotiation did not complete")
	return xr.Outcome{}, nil
}

// ready negotiates a session and starts rendering.
func (h *harness) ready(tb testing.TB) *xrsim.Session {
	tb.Helper()
	o, err := h.negotiate(tb)
	if err != nil || o.Status != xr.StatusReady {
		tb.Fatalf("negotiate: status %v, err %v", o.Status, err)
	}
	if err := h.app.StartRendering(); err != nil {
		tb.Fatalf("StartRendering: %v", err)
	}
	h.gl.Reset()
	return h.rt.Session()
}

// tick advances the clock by one 90 Hz refresh and delivers it.
func (h *harness) tick() int {
	h.clock.Advance(11 * time.Millisecond)
	return h.rt.Tick()
}

// ops returns the recorded graphics ops, in order.
func ops(gl *xrsim.Recorder) []string {
	var out []string
	for _, c := range gl.Calls() {
		out = append(out, c.Op)
	}
	return out
}
