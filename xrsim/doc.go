// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package xrsim is a deterministic simulated XR host for [code.hybscloud.com/xr].
//
// A [Runtime] answers capability queries, grants sessions and reference
// spaces after a configurable latency measured on a
// [github.com/jonboulle/clockwork.Clock], and delivers display refreshes
// either one at a time ([Runtime.Tick]) or from a clock ticker
// ([Runtime.Run]). Every step can be scripted to fail. A [Recorder] is a
// graphics context that records the calls it receives.
package xrsim
