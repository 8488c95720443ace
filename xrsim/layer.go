// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xrsim

import "code.hybscloud.com/xr"

// Layer is a render target whose framebuffer holds one viewport per eye,
// side by side, left eye first.
type Layer struct {
	fb            xr.Framebuffer
	Width, Height int32
}

// Framebuffer implements xr.RenderTarget.
func (l *Layer) Framebuffer() xr.Framebuffer {
	return l.fb
}

// Viewport implements xr.RenderTarget.
func (l *Layer) Viewport(view *xr.View) (xr.Viewport, bool) {
	if view.Index < 0 || view.Index > 1 {
		return xr.Viewport{}, false
	}
	half := l.Width / 2
	return xr.Viewport{X: int32(view.Index) * half, Y: 0, Width: half, Height: l.Height}, true
}
