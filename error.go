// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xr

import (
	"errors"
	"strings"
)

var (
	// ErrCapabilityQuery is returned when the host fails to answer the
	// capability query. A negative answer is not an error.
	ErrCapabilityQuery = errors.New("xr: capability query failed")
	// ErrSessionRequestFailed is returned when the host refuses a session.
	ErrSessionRequestFailed = errors.New("xr: session request failed")
	// ErrRenderTargetBindFailed is returned when the graphics context
	// cannot be installed as the session's render target.
	ErrRenderTargetBindFailed = errors.New("xr: render target bind failed")
	// ErrReferenceSpaceUnavailable is returned when the session cannot
	// provide the requested reference space.
	ErrReferenceSpaceUnavailable = errors.New("xr: reference space unavailable")

	// ErrNegotiationInFlight is returned by BeginNegotiation while an
	// earlier negotiation has not completed.
	ErrNegotiationInFlight = errors.New("xr: negotiation already in flight")
	// ErrSessionActive is returned by BeginNegotiation once a session is ready.
	ErrSessionActive = errors.New("xr: session already active")
	// ErrAbandoned is wrapped by the failure of a negotiation whose
	// caller stopped waiting for it.
	ErrAbandoned = errors.New("xr: negotiation abandoned")
	// ErrNotReady is returned by StartRendering before a session is ready.
	ErrNotReady = errors.New("xr: session not ready")
)

// Step identifies the negotiation step that failed.
type Step uint8

const (
	StepQuery Step = iota
	StepSession
	StepRenderTarget
	StepReferenceSpace
)

// String returns the step name used in diagnostics.
func (s Step) String() string {
	switch s {
	case StepQuery:
		return "capability-query"
	case StepSession:
		return "session-request"
	case StepRenderTarget:
		return "render-target"
	case StepReferenceSpace:
		return "reference-space"
	default:
		return "unknown"
	}
}

func (s Step) sentinel() error {
	switch s {
	case StepQuery:
		return ErrCapabilityQuery
	case StepSession:
		return ErrSessionRequestFailed
	case StepRenderTarget:
		return ErrRenderTargetBindFailed
	default:
		return ErrReferenceSpaceUnavailable
	}
}

// NegotiationError is a hard negotiation failure at Step.
// errors.Is matches both the step's sentinel and the host error.
type NegotiationError struct {
	Step Step
	Err  error
}

func (e *NegotiationError) Error() string {
	return e.Step.sentinel().Error() + ": " + e.Err.Error()
}

func (e *NegotiationError) Unwrap() []error {
	return []error{e.Step.sentinel(), e.Err}
}

// StageLog is the compile log of one shader stage.
type StageLog struct {
	Stage ShaderStage
	Log   string
}

// ShaderError reports a program that failed to link, with the link log and
// the compile log of every stage that failed to compile.
type ShaderError struct {
	LinkLog string
	Stages  []StageLog
}

func (e *ShaderError) Error() string {
	var b strings.Builder
	b.WriteString("xr: program link failed: ")
	b.WriteString(oneLine(e.LinkLog))
	for _, s := range e.Stages {
		b.WriteString("; ")
		b.WriteString(s.Stage.String())
		b.WriteString(" compile failed: ")
		b.WriteString(oneLine(s.Log))
	}
	return b.String()
}

// oneLine folds a multi-line info log into a single diagnostic line.
func oneLine(log string) string {
	return strings.Join(strings.Fields(log), " ")
}
