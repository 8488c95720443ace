// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xrsim

import (
	"errors"
	"slices"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/xr"
)

var (
	// ErrSessionEnded is returned by requests on an ended session.
	ErrSessionEnded = errors.New("xrsim: session ended")
	// ErrFeatureNotGranted is returned for a bounded-floor reference space
	// when the session was requested without the "bounded-floor" feature.
	ErrFeatureNotGranted = errors.New("xrsim: feature not granted")
)

// sessions numbers sessions across runtimes.
var sessions atomix.Uint32

// Session is a simulated live session.
type Session struct {
	rt        *Runtime
	serial    uint32
	mode      xr.SessionMode
	features  []string
	target    xr.RenderTarget
	ended     bool
	next      xr.TickHandle
	order     []xr.TickHandle
	callbacks map[xr.TickHandle]xr.FrameCallback
	requests  int
}

func newSession(rt *Runtime, mode xr.SessionMode, init xr.SessionInit) *Session {
	return &Session{
		rt:        rt,
		serial:    sessions.Add(1),
		mode:      mode,
		features:  append([]string(nil), init.OptionalFeatures...),
		callbacks: make(map[xr.TickHandle]xr.FrameCallback),
	}
}

// Mode returns the mode the session was granted in.
func (s *Session) Mode() xr.SessionMode {
	return s.mode
}

// Features returns the optional features granted with the session.
func (s *Session) Features() []string {
	return append([]string(nil), s.features...)
}

// UpdateRenderState implements xr.Session.
func (s *Session) UpdateRenderState(target xr.RenderTarget) error {
	if s.ended {
		return ErrSessionEnded
	}
	s.target = target
	return nil
}

// RenderTarget implements xr.Session.
func (s *Session) RenderTarget() xr.RenderTarget {
	return s.target
}

// DetachRenderTarget removes the active render target, breaking the host
// contract the frame loop relies on.
func (s *Session) DetachRenderTarget() {
	s.target = nil
}

// RequestReferenceSpace implements xr.Session.
func (s *Session) RequestReferenceSpace(kind xr.ReferenceSpaceKind) xr.Pending[xr.ReferenceSpace] {
	rt := s.rt
	rt.calls = append(rt.calls, CallReferenceSpace)
	switch {
	case s.ended:
		return after[xr.ReferenceSpace](rt, nil, ErrSessionEnded)
	case rt.SpaceErr != nil:
		return after[xr.ReferenceSpace](rt, nil, rt.SpaceErr)
	case kind == xr.SpaceBoundedFloor && !slices.Contains(s.features, xr.SpaceBoundedFloor.String()):
		return after[xr.ReferenceSpace](rt, nil, ErrFeatureNotGranted)
	}
	return after[xr.ReferenceSpace](rt, &Space{kind: kind, session: s}, nil)
}

// RequestAnimationFrame implements xr.Session.
func (s *Session) RequestAnimationFrame(cb xr.FrameCallback) xr.TickHandle {
	if s.ended {
		return 0
	}
	s.requests++
	s.next++
	s.order = append(s.order, s.next)
	s.callbacks[s.next] = cb
	return s.next
}

// CancelAnimationFrame implements xr.Session.
func (s *Session) CancelAnimationFrame(h xr.TickHandle) {
	delete(s.callbacks, h)
}

// Requests returns how many animation frames were requested.
func (s *Session) Requests() int {
	return s.requests
}

// Registered returns how many animation frame callbacks are pending.
func (s *Session) Registered() int {
	return len(s.callbacks)
}

// End implements xr.Session. Pending callbacks are dropped and no frame
// is delivered afterwards.
func (s *Session) End() {
	s.ended = true
	s.order = nil
	clear(s.callbacks)
}

// Ended reports whether the session has ended.
func (s *Session) Ended() bool {
	return s.ended
}

func (s *Session) dispatch(ts float64) int {
	due := s.order
	s.order = nil
	f := &Frame{session: s, timestamp: ts}
	n := 0
	for _, h := range due {
		cb, ok := s.callbacks[h]
		if !ok {
			continue
		}
		delete(s.callbacks, h)
		cb(ts, f)
		n++
	}
	return n
}

// Space is a reference space granted by a Session.
type Space struct {
	kind    xr.ReferenceSpaceKind
	session *Session
}

// Kind implements xr.ReferenceSpace.
func (sp *Space) Kind() xr.ReferenceSpaceKind {
	return sp.kind
}

// Frame is the per-refresh state delivered to callbacks.
type Frame struct {
	session   *Session
	timestamp float64
}

// Session implements xr.Frame.
func (f *Frame) Session() xr.Session {
	return f.session
}

// ViewerPose implements xr.Frame. It reports false for a space of another
// session or when the runtime's pose source has lost tracking.
func (f *Frame) ViewerPose(space xr.ReferenceSpace) (*xr.ViewerPose, bool) {
	sp, ok := space.(*Space)
	if !ok || sp.session != f.session || f.session.rt.Poses == nil {
		return nil, false
	}
	return f.session.rt.Poses(f.timestamp)
}
