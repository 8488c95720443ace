// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xr

import (
	"code.hybscloud.com/kont"
)

// QuerySupport is the effect operation for the capability query.
// Perform(QuerySupport{Mode: m}) resumes with Right(supported) or Left(host error).
type QuerySupport struct {
	kont.Phantom[kont.Either[error, bool]]
	Mode SessionMode
}

// DispatchHost handles QuerySupport against the host runtime.
// Non-blocking: returns iox.ErrWouldBlock until the host answers.
func (op QuerySupport) DispatchHost(ctx *hostContext) (kont.Resumed, error) {
	return await(ctx, func() Pending[bool] {
		return ctx.rt.IsSessionSupported(op.Mode)
	})
}

// RequestSession is the effect operation for the session request.
// Perform(RequestSession{...}) resumes with the granted session or the host error.
type RequestSession struct {
	kont.Phantom[kont.Either[error, Session]]
	Mode SessionMode
	Init SessionInit
}

// DispatchHost handles RequestSession against the host runtime.
// Non-blocking: returns iox.ErrWouldBlock until the host grants or refuses.
// A granted session is recorded so a negotiation that later fails can end it.
func (op RequestSession) DispatchHost(ctx *hostContext) (kont.Resumed, error) {
	v, err := await(ctx, func() Pending[Session] {
		return ctx.rt.RequestSession(op.Mode, op.Init)
	})
	if r, ok := v.(kont.Either[error, Session]); ok {
		ctx.granted, _ = r.GetRight()
	}
	return v, err
}

// BindRenderTarget is the effect operation that binds the caller's graphics
// context to the session and installs it as the active render target.
type BindRenderTarget struct {
	kont.Phantom[kont.Either[error, RenderTarget]]
	Session Session
}

// DispatchHost handles BindRenderTarget. Binding is synchronous and never blocks.
func (op BindRenderTarget) DispatchHost(ctx *hostContext) (kont.Resumed, error) {
	target, err := ctx.rt.NewRenderTarget(op.Session, ctx.gfx)
	if err == nil {
		err = op.Session.UpdateRenderState(target)
	}
	if err != nil {
		return kont.Left[error, RenderTarget](err), nil
	}
	return kont.Right[error](target), nil
}

// RequestReferenceSpace is the effect operation for the reference space request.
type RequestReferenceSpace struct {
	kont.Phantom[kont.Either[error, ReferenceSpace]]
	Session Session
	Kind    ReferenceSpaceKind
}

// DispatchHost handles RequestReferenceSpace against the live session.
// Non-blocking: returns iox.ErrWouldBlock until the session answers.
func (op RequestReferenceSpace) DispatchHost(ctx *hostContext) (kont.Resumed, error) {
	return await(ctx, func() Pending[ReferenceSpace] {
		return op.Session.RequestReferenceSpace(op.Kind)
	})
}

// Commit is the effect operation publishing a ready session to shared state.
// It is the only write to SessionState and runs last.
type Commit struct {
	kont.Phantom[struct{}]
	Ready *ReadySession
}

// DispatchHost handles Commit. Never blocks.
func (op Commit) DispatchHost(ctx *hostContext) (kont.Resumed, error) {
	ctx.state.commit(op.Ready)
	ctx.granted = nil
	return struct{}{}, nil
}
