// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"code.hybscloud.com/xr"
	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type config struct {
	ModeName         string        `env:"XR_MODE" default:"immersive-vr"`
	Features         []string      `env:"XR_FEATURES" default:"bounded-floor"`
	Refresh          time.Duration `env:"XR_REFRESH" default:"11ms"`
	Duration         time.Duration `env:"XR_DURATION" default:"2s"`
	NegotiateTimeout time.Duration `env:"XR_NEGOTIATE_TIMEOUT" default:"5s"`
	Latency          time.Duration `env:"XR_HOST_LATENCY" default:"20ms"`
	LogLevel         string        `env:"LOG_LEVEL" default:"info"`
	LogFormat        string        `env:"LOG_FORMAT" default:"text"`

	Mode xr.SessionMode
}

func loadConfig() (*config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	var cfg config
	if err := env.Load(&cfg, &env.Options{SliceSep: ","}); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *config) error {
	switch cfg.ModeName {
	case "inline":
		cfg.Mode = xr.ModeInline
	case "immersive-vr":
		cfg.Mode = xr.ModeImmersiveVR
	case "immersive-ar":
		cfg.Mode = xr.ModeImmersiveAR
	default:
		return fmt.Errorf("XR_MODE must be inline, immersive-vr or immersive-ar, got %q", cfg.ModeName)
	}
	if cfg.Refresh <= 0 {
		return errors.New("XR_REFRESH must be positive")
	}
	return nil
}
