// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command xrdemo runs a stereo session against the simulated host for a
// fixed duration and logs what the frame loop did.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"code.hybscloud.com/xr"
	"code.hybscloud.com/xr/xrsim"
	"github.com/jonboulle/clockwork"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(2)
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat)
	xr.SetLogger(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("xrdemo failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rt := xrsim.NewRuntime(clockwork.NewRealClock())
	rt.Latency = cfg.Latency
	gl := xrsim.NewRecorder()

	app, err := xr.New(rt, xrsim.Surfaces(gl),
		xr.WithMode(cfg.Mode),
		xr.WithOptionalFeatures(cfg.Features...),
	)
	if err != nil {
		return err
	}

	neg, err := app.BeginNegotiation()
	if err != nil {
		return err
	}
	nctx, cancel := context.WithTimeout(ctx, cfg.NegotiateTimeout)
	outcome, err := neg.Wait(nctx)
	cancel()
	if err != nil {
		return err
	}
	if outcome.Status != xr.StatusReady {
		logger.Info("no immersive session available", "status", outcome.Status)
		return nil
	}

	var shaderErr *xr.ShaderError
	if err := app.StartRendering(); errors.As(err, &shaderErr) {
		logger.Warn("rendering degraded", "err", err)
	} else if err != nil {
		return err
	}

	rctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()
	err = rt.Run(rctx, cfg.Refresh)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return err
	}
	app.StopRendering()

	st := app.Loop().Stats()
	logger.Info("session finished",
		"ticks", st.Ticks,
		"drawn", st.Drawn,
		"pose_lost", st.PoseLost,
		"draw_calls", st.DrawCalls,
		"dropped_refreshes", rt.Dropped(),
	)
	return nil
}

func newLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(h)
}
