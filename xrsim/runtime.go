// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xrsim

import (
	"errors"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/xr"
	"github.com/jonboulle/clockwork"
)

// ErrForeignSession is returned when a session from another runtime is
// passed to a Runtime.
var ErrForeignSession = errors.New("xrsim: session does not belong to this runtime")

// Host call names recorded by Runtime.Calls.
const (
	CallQuery          = "query"
	CallSession        = "session"
	CallBind           = "bind"
	CallReferenceSpace = "reference-space"
)

// Runtime is a scripted XR host. The zero value is not usable; create one
// with NewRuntime. Fields may be changed between requests.
type Runtime struct {
	// Supported is the capability query answer.
	Supported bool
	// QueryErr, SessionErr, BindErr and SpaceErr fail the matching request.
	QueryErr   error
	SessionErr error
	BindErr    error
	SpaceErr   error
	// Latency delays every asynchronous answer, measured on the clock.
	Latency time.Duration
	// Poses supplies the viewer pose for each delivered frame.
	Poses PoseSource
	// Width and Height size the render target of a bound session.
	Width, Height int32

	clock   clockwork.Clock
	start   time.Time
	calls   []string
	session *Session
	dropped atomix.Uint32
}

// NewRuntime returns a runtime supporting every mode, answering without
// latency and tracking a standing stereo viewer.
func NewRuntime(clock clockwork.Clock) *Runtime {
	return &Runtime{
		Supported: true,
		Poses:     StereoRig(0.064, 1.6),
		Width:     2048,
		Height:    1024,
		clock:     clock,
		start:     clock.Now(),
	}
}

// Calls returns the host requests received so far, in order.
func (rt *Runtime) Calls() []string {
	return append([]string(nil), rt.calls...)
}

// Session returns the most recently granted session, or nil.
func (rt *Runtime) Session() *Session {
	return rt.session
}

// Dropped returns how many display refreshes Run dropped because the
// dispatch goroutine fell behind.
func (rt *Runtime) Dropped() uint32 {
	return rt.dropped.Load()
}

// IsSessionSupported implements xr.Runtime.
func (rt *Runtime) IsSessionSupported(mode xr.SessionMode) xr.Pending[bool] {
	rt.calls = append(rt.calls, CallQuery)
	return after(rt, rt.Supported, rt.QueryErr)
}

// RequestSession implements xr.Runtime.
func (rt *Runtime) RequestSession(mode xr.SessionMode, init xr.SessionInit) xr.Pending[xr.Session] {
	rt.calls = append(rt.calls, CallSession)
	if rt.SessionErr != nil {
		return after[xr.Session](rt, nil, rt.SessionErr)
	}
	s := newSession(rt, mode, init)
	rt.session = s
	return after[xr.Session](rt, s, nil)
}

// NewRenderTarget implements xr.Runtime. The returned layer splits its
// framebuffer side by side, left eye first.
func (rt *Runtime) NewRenderTarget(s xr.Session, gfx xr.GraphicsContext) (xr.RenderTarget, error) {
	rt.calls = append(rt.calls, CallBind)
	if rt.BindErr != nil {
		return nil, rt.BindErr
	}
	ss, ok := s.(*Session)
	if !ok || ss.rt != rt {
		return nil, ErrForeignSession
	}
	return &Layer{fb: xr.Framebuffer(ss.serial), Width: rt.Width, Height: rt.Height}, nil
}

// Tick delivers one display refresh to the callbacks registered on the
// current session, in registration order, and returns how many ran.
// Callbacks registered during the refresh wait for the next one.
func (rt *Runtime) Tick() int {
	s := rt.session
	if s == nil || s.ended {
		return 0
	}
	ts := float64(rt.clock.Since(rt.start)) / float64(time.Millisecond)
	return s.dispatch(ts)
}

// pending is a host answer available once the clock reaches readyAt.
type pending[T any] struct {
	clock   clockwork.Clock
	readyAt time.Time
	value   T
	err     error
}

func after[T any](rt *Runtime, v T, err error) *pending[T] {
	return &pending[T]{clock: rt.clock, readyAt: rt.clock.Now().Add(rt.Latency), value: v, err: err}
}

// Poll implements xr.Pending.
func (p *pending[T]) Poll() (T, error) {
	if p.clock.Now().Before(p.readyAt) {
		var zero T
		return zero, iox.ErrWouldBlock
	}
	return p.value, p.err
}
