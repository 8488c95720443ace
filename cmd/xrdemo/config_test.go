// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"testing"
	"time"

	"code.hybscloud.com/xr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultValues(t *testing.T) {
	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, xr.ModeImmersiveVR, cfg.Mode)
	assert.Equal(t, []string{"bounded-floor"}, cfg.Features)
	assert.Equal(t, 11*time.Millisecond, cfg.Refresh)
	assert.Equal(t, 2*time.Second, cfg.Duration)
	assert.Equal(t, 5*time.Second, cfg.NegotiateTimeout)
	assert.Equal(t, 20*time.Millisecond, cfg.Latency)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadConfig_CustomValues(t *testing.T) {
	t.Setenv("XR_MODE", "immersive-ar")
	t.Setenv("XR_FEATURES", "bounded-floor,hand-tracking")
	t.Setenv("XR_REFRESH", "8ms")
	t.Setenv("XR_HOST_LATENCY", "0s")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, xr.ModeImmersiveAR, cfg.Mode)
	assert.Equal(t, []string{"bounded-floor", "hand-tracking"}, cfg.Features)
	assert.Equal(t, 8*time.Millisecond, cfg.Refresh)
	assert.Equal(t, time.Duration(0), cfg.Latency)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"unknown mode", "XR_MODE", "immersive-xr", `XR_MODE must be inline, immersive-vr or immersive-ar, got "immersive-xr"`},
		{"zero refresh", "XR_REFRESH", "0s", "XR_REFRESH must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := loadConfig()
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestLoadConfig_MalformedDuration(t *testing.T) {
	t.Setenv("XR_DURATION", "two seconds")

	_, err := loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load environment variables")
}

func TestNewLogger(t *testing.T) {
	logger := newLogger("debug", "json")
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))
	assert.False(t, newLogger("warn", "text").Enabled(t.Context(), slog.LevelInfo))
}
