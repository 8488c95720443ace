// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xrsim

import (
	"math"

	"code.hybscloud.com/xr"
	"golang.org/x/image/math/f32"
)

// PoseSource returns the viewer pose at timestamp, or false when tracking
// is lost.
type PoseSource func(timestamp float64) (*xr.ViewerPose, bool)

// StereoRig returns a pose source for a viewer standing still with eyes at
// height and ipd apart, each with a square 90° field of view. Each eye is
// placed by composing the head pose with its offset along the head's x axis.
func StereoRig(ipd, height float32) PoseSource {
	proj := xr.Perspective(math.Pi/2, 1, 0.1, 100)
	head := xr.RigidTransform{Position: f32.Vec3{0, height, 0}}
	eye := func(e xr.Eye, i int, dx float32) xr.View {
		offset := xr.RigidTransform{Position: f32.Vec3{dx, 0, 0}}
		world := head.Matrix().Mul(offset.Matrix())
		return xr.View{
			Eye:        e,
			Index:      i,
			Projection: proj,
			Transform: xr.RigidTransform{
				Position:    world.Apply(f32.Vec3{}),
				Orientation: head.Orientation,
			},
		}
	}
	views := []xr.View{
		eye(xr.EyeLeft, 0, -ipd/2),
		eye(xr.EyeRight, 1, ipd/2),
	}
	return func(float64) (*xr.ViewerPose, bool) {
		return &xr.ViewerPose{
			Transform: head,
			Views:     append([]xr.View(nil), views...),
		}, true
	}
}
