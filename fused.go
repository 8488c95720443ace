// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xr

import (
	"code.hybscloud.com/kont"
)

// QueryBind asks whether mode is supported and passes the answer to f.
// Fuses Perform(QuerySupport{}) + Bind + failure short-circuit.
func QueryBind[B any](mode SessionMode, f func(bool) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(QuerySupport{Mode: mode}), func(r kont.Either[error, bool]) kont.Eff[B] {
		return orThrow(StepQuery, r, f)
	})
}

// RequestSessionBind requests a session and passes it to f.
// Fuses Perform(RequestSession{}) + Bind + failure short-circuit.
func RequestSessionBind[B any](mode SessionMode, init SessionInit, f func(Session) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(RequestSession{Mode: mode, Init: init}), func(r kont.Either[error, Session]) kont.Eff[B] {
		return orThrow(StepSession, r, f)
	})
}

// BindTargetBind installs a render target on s and passes it to f.
// Fuses Perform(BindRenderTarget{}) + Bind + failure short-circuit.
func BindTargetBind[B any](s Session, f func(RenderTarget) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(BindRenderTarget{Session: s}), func(r kont.Either[error, RenderTarget]) kont.Eff[B] {
		return orThrow(StepRenderTarget, r, f)
	})
}

// ReferenceSpaceBind requests a reference space of kind from s and passes it to f.
// Fuses Perform(RequestReferenceSpace{}) + Bind + failure short-circuit.
func ReferenceSpaceBind[B any](s Session, kind ReferenceSpaceKind, f func(ReferenceSpace) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(RequestReferenceSpace{Session: s, Kind: kind}), func(r kont.Either[error, ReferenceSpace]) kont.Eff[B] {
		return orThrow(StepReferenceSpace, r, f)
	})
}

// CommitDone publishes r and finishes with a Ready outcome.
// Fuses Perform(Commit{}) + Then + Pure.
func CommitDone(r *ReadySession) kont.Eff[Outcome] {
	return kont.Then(kont.Perform(Commit{Ready: r}), kont.Pure(Outcome{Status: StatusReady, Session: r}))
}

// orThrow continues with f on Right and throws a *NegotiationError on Left.
func orThrow[T, B any](step Step, r kont.Either[error, T], f func(T) kont.Eff[B]) kont.Eff[B] {
	if err, ok := r.GetLeft(); ok {
		return kont.ThrowError[error, B](&NegotiationError{Step: step, Err: err})
	}
	v, _ := r.GetRight()
	return f(v)
}
