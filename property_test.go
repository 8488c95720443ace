// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xr_test

import (
	"testing"
	"testing/quick"
	"time"

	"code.hybscloud.com/xr"
	"code.hybscloud.com/xr/xrsim"
)

// Whatever the tracking state does tick to tick, the loop stays armed,
// clears on every tick and draws both eyes exactly on the tracked ones.
func TestLoopPoseSequenceProperty(t *testing.T) {
	f := func(tracked []bool) bool {
		if len(tracked) > 64 {
			tracked = tracked[:64]
		}
		h := newHarness(t)
		s := h.ready(t)
		rig := h.rt.Poses
		var i int
		h.rt.Poses = func(ts float64) (*xr.ViewerPose, bool) {
			if !tracked[i] {
				return nil, false
			}
			return rig(ts)
		}

		want := 0
		for i = range tracked {
			if h.tick() != 1 {
				return false
			}
			if tracked[i] {
				want += 2
			}
		}
		st := h.app.Loop().Stats()
		return h.gl.Count(xrsim.OpClear) == len(tracked) &&
			h.gl.Count(xrsim.OpDrawArrays) == want &&
			st.Drawn+st.PoseLost == uint64(len(tracked)) &&
			s.Registered() == 1 &&
			s.Requests() == len(tracked)+1
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

// Latency never changes what is requested or in which order; only when.
func TestNegotiationLatencyProperty(t *testing.T) {
	f := func(ms uint8) bool {
		h := newHarness(t)
		h.rt.Latency = time.Duration(ms) * time.Millisecond
		o, err := h.negotiate(t)
		if err != nil || o.Status != xr.StatusReady {
			return false
		}
		calls := h.rt.Calls()
		return len(calls) == 4 &&
			calls[0] == xrsim.CallQuery &&
			calls[1] == xrsim.CallSession &&
			calls[2] == xrsim.CallBind &&
			calls[3] == xrsim.CallReferenceSpace
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}
