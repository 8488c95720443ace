// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xr

// loopState is Stopped or Running(handle).
type loopState struct {
	running bool
	session Session
	handle  TickHandle
}

// LoopStats counts what the frame loop did since it was created.
type LoopStats struct {
	Ticks     uint64 // callbacks that belonged to the running loop
	Drawn     uint64 // ticks that drew every view
	NotReady  uint64 // ticks skipped because no session was committed
	PoseLost  uint64 // ticks skipped because tracking was lost
	Stale     uint64 // callbacks ignored after Stop or from another session
	DrawCalls uint64
}

// FrameLoop renders the scene once per eye on every display tick.
//
// The loop re-arms first: the next tick is registered before any drawing,
// so a tick that fails partway still leaves the loop scheduled. It runs
// until Stop withdraws the pending registration or the host ends the
// session. All methods must be called from the host's dispatch goroutine.
type FrameLoop struct {
	gl    GraphicsContext
	state *SessionState
	res   *RenderResources
	cur   loopState
	stats LoopStats
	last  float64
}

// NewFrameLoop performs the one-time GPU setup for gl and returns a stopped
// loop reading the session from state. A *ShaderError is returned with a
// usable loop: a broken shader degrades rendering but does not stop it.
func NewFrameLoop(gl GraphicsContext, state *SessionState) (*FrameLoop, error) {
	res, err := setupResources(gl)
	return &FrameLoop{gl: gl, state: state, res: res}, err
}

// Resources returns the GPU objects created by NewFrameLoop.
func (l *FrameLoop) Resources() *RenderResources {
	return l.res
}

// Start arms the loop on s. Starting a running loop does nothing.
func (l *FrameLoop) Start(s Session) {
	if l.cur.running {
		return
	}
	l.cur = loopState{running: true, session: s}
	l.arm(s)
	if l.cur.running {
		Logger().Info("xr: frame loop started")
	}
}

// Stop withdraws the pending tick registration. Work of a tick already in
// progress completes.
func (l *FrameLoop) Stop() {
	if !l.cur.running {
		return
	}
	l.cur.session.CancelAnimationFrame(l.cur.handle)
	l.cur = loopState{}
	Logger().Info("xr: frame loop stopped")
}

// Running reports whether a tick registration is pending.
func (l *FrameLoop) Running() bool {
	return l.cur.running
}

// Stats returns the loop counters.
func (l *FrameLoop) Stats() LoopStats {
	return l.stats
}

func (l *FrameLoop) arm(s Session) {
	h := s.RequestAnimationFrame(l.Tick)
	if h == 0 {
		l.cur = loopState{}
		Logger().Info("xr: session ended, frame loop stopped")
		return
	}
	l.cur.handle = h
}

// Tick is the FrameCallback the loop registers with the session.
func (l *FrameLoop) Tick(timestamp float64, frame Frame) {
	s := frame.Session()
	if !l.cur.running || s != l.cur.session {
		l.stats.Stale++
		Logger().Debug("xr: stale frame callback ignored", "timestamp", timestamp)
		return
	}
	l.arm(s)
	l.stats.Ticks++
	if l.stats.Ticks > 1 && timestamp <= l.last {
		Logger().Debug("xr: frame timestamp not increasing", "timestamp", timestamp, "previous", l.last)
	}
	l.last = timestamp

	ready, ok := l.state.Ready()
	if !ok || ready.Session != s {
		l.stats.NotReady++
		return
	}
	target := s.RenderTarget()
	if target == nil {
		panic("xr: active session has no render target")
	}

	gl := l.gl
	gl.BindFramebuffer(target.Framebuffer())
	gl.ClearColor(clearColor)
	gl.ClearColorBuffer()

	pose, ok := frame.ViewerPose(ready.Space)
	if !ok {
		l.stats.PoseLost++
		return
	}

	res := l.res
	gl.UniformMatrix4fv(res.Model, modelMatrix)
	for i := range pose.Views {
		view := &pose.Views[i]
		vp, ok := target.Viewport(view)
		if !ok {
			panic("xr: render target has no viewport for view")
		}
		gl.Viewport(vp)
		gl.UniformMatrix4fv(res.Projection, view.Projection)
		gl.UniformMatrix4fv(res.View, view.Transform.Inverse().Matrix())
		gl.DrawArrays(res.Primitive.Topology, 0, res.Count)
		l.stats.DrawCalls++
	}
	l.stats.Drawn++
}
