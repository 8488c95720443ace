// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xr

// Option configures an App during creation.
//
// Example:
//
//	app, err := xr.New(rt, surfaces,
//		xr.WithMode(xr.ModeImmersiveAR),
//		xr.WithOptionalFeatures("bounded-floor", "hand-tracking"),
//	)
type Option func(*options)

type options struct {
	mode     SessionMode
	features []string
	stereo   bool
}

func defaultOptions() options {
	return options{
		mode:     ModeImmersiveVR,
		features: []string{"bounded-floor"},
		stereo:   true,
	}
}

// WithMode sets the session mode requested during negotiation.
// The default is ModeImmersiveVR.
func WithMode(m SessionMode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithOptionalFeatures replaces the optional features declared with the
// session request. The default declares "bounded-floor".
func WithOptionalFeatures(features ...string) Option {
	return func(o *options) {
		o.features = append([]string(nil), features...)
	}
}

// WithStereo sets whether the drawing surface is created compatible with
// session render targets. The default is true.
func WithStereo(stereo bool) Option {
	return func(o *options) {
		o.stereo = stereo
	}
}
