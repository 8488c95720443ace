// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xr

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Mat4 is a 4x4 matrix in column major order, as uploaded to uniforms.
//
// m[4*c + r] is the element in the r'th row and c'th column.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scale returns a uniform scale by s about the origin.
func Scale(s float32) Mat4 {
	return Mat4{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns a right-handed perspective projection with a
// vertical field of view of fovY radians, mapping depth to [-1, 1].
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := float32(1 / math.Tan(float64(fovY)/2))
	nf := 1 / (near - far)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// Mul returns m × n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for c := range 4 {
		for r := range 4 {
			var sum float32
			for k := range 4 {
				sum += m[4*k+r] * n[4*c+k]
			}
			out[4*c+r] = sum
		}
	}
	return out
}

// Apply transforms the point p by m.
func (m Mat4) Apply(p f32.Vec3) f32.Vec3 {
	var out f32.Vec3
	for r := range 3 {
		out[r] = m[r]*p[0] + m[4+r]*p[1] + m[8+r]*p[2] + m[12+r]
	}
	return out
}

// RigidTransform is a rotation followed by a translation.
// Orientation is a unit quaternion (x, y, z, w); the zero value is the identity.
type RigidTransform struct {
	Position    f32.Vec3
	Orientation f32.Vec4
}

func (t RigidTransform) quat() f32.Vec4 {
	if t.Orientation == (f32.Vec4{}) {
		return f32.Vec4{0, 0, 0, 1}
	}
	return t.Orientation
}

// Matrix returns the column major matrix of t.
func (t RigidTransform) Matrix() Mat4 {
	q := t.quat()
	x, y, z, w := q[0], q[1], q[2], q[3]
	p := t.Position
	return Mat4{
		1 - 2*(y*y+z*z), 2 * (x*y + w*z), 2 * (x*z - w*y), 0,
		2 * (x*y - w*z), 1 - 2*(x*x+z*z), 2 * (y*z + w*x), 0,
		2 * (x*z + w*y), 2 * (y*z - w*x), 1 - 2*(x*x+y*y), 0,
		p[0], p[1], p[2], 1,
	}
}

// Inverse returns the transform undoing t. For a view's pose this is the
// view matrix source.
func (t RigidTransform) Inverse() RigidTransform {
	q := t.quat()
	inv := f32.Vec4{-q[0], -q[1], -q[2], q[3]}
	p := rotate(inv, t.Position)
	return RigidTransform{
		Position:    f32.Vec3{-p[0], -p[1], -p[2]},
		Orientation: inv,
	}
}

// rotate applies the unit quaternion q to v: v + 2w(u×v) + 2u×(u×v).
func rotate(q f32.Vec4, v f32.Vec3) f32.Vec3 {
	u := f32.Vec3{q[0], q[1], q[2]}
	t := cross(u, v)
	t = f32.Vec3{2 * t[0], 2 * t[1], 2 * t[2]}
	c := cross(u, t)
	return f32.Vec3{
		v[0] + q[3]*t[0] + c[0],
		v[1] + q[3]*t[1] + c[1],
		v[2] + q[3]*t[2] + c[2],
	}
}

func cross(a, b f32.Vec3) f32.Vec3 {
	return f32.Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
