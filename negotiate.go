// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xr

import (
	"context"
	"fmt"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Status is the kind of a negotiation outcome.
type Status uint8

const (
	// StatusReady means a session and reference space were committed.
	StatusReady Status = iota + 1
	// StatusUnsupported means the host declined the mode. It is a normal
	// negative answer, not a failure.
	StatusUnsupported
	// StatusFailed means a host request failed; Outcome.Err says which.
	StatusFailed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusUnsupported:
		return "unsupported"
	case StatusFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Outcome is the result of a negotiation.
type Outcome struct {
	Status  Status
	Session *ReadySession
	Err     error
}

// Protocol returns the negotiation protocol for mode:
// capability query, session request, render target binding, bounded-floor
// reference space request, commit. Each step starts only after the
// previous one has completed. A negative capability answer finishes with
// StatusUnsupported; a host failure throws a *NegotiationError and nothing
// is committed.
func Protocol(mode SessionMode, init SessionInit) kont.Eff[Outcome] {
	return QueryBind(mode, func(supported bool) kont.Eff[Outcome] {
		if !supported {
			return kont.Pure(Outcome{Status: StatusUnsupported})
		}
		return RequestSessionBind(mode, init, func(s Session) kont.Eff[Outcome] {
			return BindTargetBind(s, func(RenderTarget) kont.Eff[Outcome] {
				return ReferenceSpaceBind(s, SpaceBoundedFloor, func(space ReferenceSpace) kont.Eff[Outcome] {
					return CommitDone(newReadySession(mode, s, space))
				})
			})
		})
	})
}

// Negotiation is an in-flight negotiation. It is advanced by Poll from the
// host's dispatch goroutine, or by Wait.
//
// A negotiation that fails or is abandoned after the host granted a session
// ends that session. When the session request itself is still pending on
// abandon, the session is ended as soon as the host answers; a later
// negotiation from the same App keeps reaping it.
type Negotiation struct {
	ctx     hostContext
	mode    SessionMode
	result  kont.Either[error, Outcome]
	susp    *kont.Suspension[kont.Either[error, Outcome]]
	done    bool
	outcome Outcome
	orphan  Pending[Session]
}

func newNegotiation(rt Runtime, gfx GraphicsContext, state *SessionState, mode SessionMode, init SessionInit) *Negotiation {
	n := &Negotiation{
		ctx:  hostContext{rt: rt, gfx: gfx, state: state},
		mode: mode,
	}
	protocol := kont.ExprMap(kont.Reify(Protocol(mode, init)), func(o Outcome) kont.Either[error, Outcome] {
		return kont.Right[error](o)
	})
	n.settle(kont.StepExpr(protocol))
	return n
}

// Poll advances the negotiation as far as the host allows without blocking.
// It returns iox.ErrWouldBlock while a host request is pending. Once done it
// returns the outcome, with Outcome.Err as the error for StatusFailed, on
// every call.
func (n *Negotiation) Poll() (Outcome, error) {
	n.reap()
	for !n.done {
		switch op := n.susp.Op().(type) {
		case hostDispatcher:
			v, err := op.DispatchHost(&n.ctx)
			if err != nil {
				return Outcome{}, err
			}
			n.settle(n.susp.Resume(v))
		case errorDispatcher:
			var ectx kont.ErrorContext[error]
			v, _ := op.DispatchError(&ectx)
			if ectx.HasErr {
				n.susp.Discard()
				n.settle(kont.Left[error, Outcome](ectx.Err), nil)
				continue
			}
			n.settle(n.susp.Resume(v))
		default:
			panic("xr: negotiation suspended on an unknown effect")
		}
	}
	return n.outcome, n.outcome.Err
}

// Wait polls until the negotiation completes or ctx ends, backing off
// between polls with iox.Backoff. When ctx ends first the negotiation is
// abandoned: it fails with an error wrapping ErrAbandoned and ctx.Err(),
// and never commits.
func (n *Negotiation) Wait(ctx context.Context) (Outcome, error) {
	var bo iox.Backoff
	for {
		o, err := n.Poll()
		if !iox.IsWouldBlock(err) {
			return o, err
		}
		select {
		case <-ctx.Done():
			n.abandon(ctx.Err())
			return n.outcome, n.outcome.Err
		default:
		}
		bo.Wait()
	}
}

// Done reports whether the negotiation has an outcome.
func (n *Negotiation) Done() bool {
	return n.done
}

func (n *Negotiation) settle(result kont.Either[error, Outcome], next *kont.Suspension[kont.Either[error, Outcome]]) {
	n.result, n.susp = result, next
	if next == nil {
		n.finish()
	}
}

func (n *Negotiation) finish() {
	n.done = true
	if err, ok := n.result.GetLeft(); ok {
		n.outcome = Outcome{Status: StatusFailed, Err: err}
		Logger().Warn("xr: negotiation failed", "mode", n.mode, "err", err)
		n.release()
		return
	}
	n.outcome, _ = n.result.GetRight()
	switch n.outcome.Status {
	case StatusReady:
		sessionLogger(n.outcome.Session).Info("xr: session ready", "mode", n.mode)
	case StatusUnsupported:
		Logger().Info("xr: session mode not supported", "mode", n.mode)
	}
}

func (n *Negotiation) abandon(cause error) {
	if n.susp != nil {
		n.susp.Discard()
		n.susp = nil
	}
	if p, ok := n.ctx.pending.(Pending[Session]); ok {
		n.orphan = p
	}
	n.ctx.pending = nil
	n.done = true
	n.outcome = Outcome{Status: StatusFailed, Err: fmt.Errorf("%w: %w", ErrAbandoned, cause)}
	Logger().Warn("xr: negotiation abandoned", "mode", n.mode, "err", cause)
	n.release()
	n.reap()
}

// release ends the session granted to a negotiation that did not commit it.
func (n *Negotiation) release() {
	if s := n.ctx.granted; s != nil {
		n.ctx.granted = nil
		s.End()
		Logger().Info("xr: uncommitted session ended", "mode", n.mode)
	}
}

// reap ends the session of an abandoned session request once the host
// has answered it.
func (n *Negotiation) reap() {
	if n.orphan == nil {
		return
	}
	s, err := n.orphan.Poll()
	if iox.IsWouldBlock(err) {
		return
	}
	n.orphan = nil
	if err == nil && s != nil {
		s.End()
		Logger().Info("xr: abandoned session ended", "mode", n.mode)
	}
}
