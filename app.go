// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xr

import "fmt"

// App drives one XR session from negotiation through rendering.
// It is not safe for concurrent use; call it from the host's dispatch
// goroutine.
type App struct {
	rt    Runtime
	gl    GraphicsContext
	opts  options
	state SessionState
	neg   *Negotiation
	loop  *FrameLoop
}

// New creates the drawing surface through surfaces and returns an App that
// negotiates with rt.
func New(rt Runtime, surfaces SurfaceFactory, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	gl, err := surfaces(o.stereo)
	if err != nil {
		return nil, fmt.Errorf("xr: create render surface: %w", err)
	}
	return &App{rt: rt, gl: gl, opts: o}, nil
}

// BeginNegotiation starts negotiating a session. Only one negotiation may
// be in flight, and none once a session is ready.
func (a *App) BeginNegotiation() (*Negotiation, error) {
	if _, ok := a.state.Ready(); ok {
		return nil, ErrSessionActive
	}
	if a.neg != nil && !a.neg.Done() {
		return nil, ErrNegotiationInFlight
	}
	Logger().Info("xr: starting negotiation", "mode", a.opts.mode)
	next := newNegotiation(a.rt, a.gl, &a.state, a.opts.mode, SessionInit{
		OptionalFeatures: a.opts.features,
	})
	if a.neg != nil {
		a.neg.reap()
		next.orphan = a.neg.orphan
	}
	a.neg = next
	return a.neg, nil
}

// StartRendering performs the one-time GPU setup and starts the frame loop
// on the ready session. Before negotiation has completed it does nothing
// and returns ErrNotReady. A *ShaderError is returned after the loop has
// started.
func (a *App) StartRendering() error {
	ready, ok := a.state.Ready()
	if !ok {
		Logger().Info("xr: rendering not started, no session ready")
		return ErrNotReady
	}
	var setupErr error
	if a.loop == nil {
		a.loop, setupErr = NewFrameLoop(a.gl, &a.state)
	}
	a.loop.Start(ready.Session)
	return setupErr
}

// StopRendering cancels the pending tick registration, if any.
func (a *App) StopRendering() {
	if a.loop != nil {
		a.loop.Stop()
	}
}

// State returns the shared session state.
func (a *App) State() *SessionState {
	return &a.state
}

// Loop returns the frame loop, or nil before StartRendering succeeded once.
func (a *App) Loop() *FrameLoop {
	return a.loop
}
