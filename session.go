// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xr

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"github.com/google/uuid"
)

// hostContext holds the host collaborators a single negotiation dispatches
// against. Operations run strictly in order, so at most one host request
// is ever pending.
type hostContext struct {
	rt      Runtime
	gfx     GraphicsContext
	state   *SessionState
	pending any
	granted Session
}

// hostDispatcher is the structural interface for negotiation operations.
// DispatchHost is non-blocking: it returns iox.ErrWouldBlock while the
// host runtime has not answered the pending request.
type hostDispatcher interface {
	DispatchHost(ctx *hostContext) (kont.Resumed, error)
}

// errorDispatcher is the structural interface of kont's error effects.
type errorDispatcher interface {
	DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
}

// await issues the request started by start on first dispatch and polls it
// on every dispatch after that. Host failures resume the protocol with a
// Left value; only iox.ErrWouldBlock is returned as an error.
func await[T any](ctx *hostContext, start func() Pending[T]) (kont.Resumed, error) {
	p, ok := ctx.pending.(Pending[T])
	if !ok {
		p = start()
		ctx.pending = p
	}
	v, err := p.Poll()
	if iox.IsWouldBlock(err) {
		return nil, err
	}
	ctx.pending = nil
	if err != nil {
		return kont.Left[error, T](err), nil
	}
	return kont.Right[error](v), nil
}

// Serial numbers committed sessions in commit order, starting at 1.
type Serial uint32

var serials atomix.Uint32

// ReadySession is a granted session together with its reference space.
// The two are published as one value and are never observed apart.
type ReadySession struct {
	Serial  Serial
	ID      uuid.UUID
	Mode    SessionMode
	Session Session
	Space   ReferenceSpace
}

func newReadySession(mode SessionMode, s Session, space ReferenceSpace) *ReadySession {
	return &ReadySession{
		Serial:  Serial(serials.Add(1)),
		ID:      uuid.New(),
		Mode:    mode,
		Session: s,
		Space:   space,
	}
}

// SessionState is the cell shared between negotiation (sole writer, once)
// and the frame loop (reader on every tick). The zero value is not ready.
type SessionState struct {
	ready atomic.Pointer[ReadySession]
}

// Ready returns the committed session, or false if negotiation has not
// completed successfully.
func (s *SessionState) Ready() (*ReadySession, bool) {
	r := s.ready.Load()
	return r, r != nil
}

// commit publishes r. It is called once per successful negotiation.
func (s *SessionState) commit(r *ReadySession) {
	if !s.ready.CompareAndSwap(nil, r) {
		panic("xr: session state committed twice")
	}
}
