// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xr

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards all records. Enabled
// reports false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the diagnostic sink for xr and xrsim.
// By default xr produces no log output. Pass nil to restore that.
//
// Log levels used by xr:
//   - [slog.LevelDebug]: per-tick anomalies (stale callbacks, timestamps)
//   - [slog.LevelInfo]: lifecycle (negotiation outcome, loop start and stop)
//   - [slog.LevelWarn]: degraded operation (shader diagnostics, lost attributes)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// sessionLogger returns the logger scoped to r.
func sessionLogger(r *ReadySession) *slog.Logger {
	return Logger().With("session_id", r.ID.String(), "serial", r.Serial)
}
