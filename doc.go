// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package xr drives an immersive stereo rendering session against a
// device-provided XR runtime.
//
// # Architecture
//
//   - Negotiation: a protocol of algebraic effects on [code.hybscloud.com/kont]:
//     capability query, session request, render target binding, reference
//     space request and commit, strictly in that order.
//   - Non-blocking: host requests are [Pending] values; dispatch returns
//     [code.hybscloud.com/iox.ErrWouldBlock] until the host answers, so a
//     negotiation advances one effect at a time from the host's event loop.
//   - Shared state: [SessionState] publishes the session and its reference
//     space once, as a single value.
//   - Rendering: [FrameLoop] re-arms itself on every display tick and draws
//     the scene once per eye into that eye's viewport.
//
// # Error Handling
//
// A negative capability answer is [StatusUnsupported], not an error. Host
// request failures are [*NegotiationError] values matching one of
// [ErrCapabilityQuery], [ErrSessionRequestFailed], [ErrRenderTargetBindFailed]
// or [ErrReferenceSpaceUnavailable]. Shader diagnostics are reported as
// [*ShaderError] while rendering continues. Lost tracking skips one tick.
// Host contract violations panic.
//
// # Example
//
//	app, err := xr.New(rt, surfaces)
//	if err != nil {
//		return err
//	}
//	neg, _ := app.BeginNegotiation()
//	outcome, err := neg.Wait(ctx)
//	if err != nil || outcome.Status != xr.StatusReady {
//		return err
//	}
//	if err := app.StartRendering(); err != nil {
//		log.Print(err) // shader diagnostics, rendering continues
//	}
package xr
