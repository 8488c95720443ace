// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xr

// SessionMode selects the kind of session requested from the host runtime.
type SessionMode uint8

const (
	// ModeInline renders into the page without exclusive display access.
	ModeInline SessionMode = iota
	// ModeImmersiveVR takes exclusive access to a head-mounted display.
	ModeImmersiveVR
	// ModeImmersiveAR blends rendering with the physical environment.
	ModeImmersiveAR
)

// String returns the host runtime name of the mode.
func (m SessionMode) String() string {
	switch m {
	case ModeInline:
		return "inline"
	case ModeImmersiveVR:
		return "immersive-vr"
	case ModeImmersiveAR:
		return "immersive-ar"
	default:
		return "unknown"
	}
}

// ReferenceSpaceKind names a spatial frame poses can be expressed in.
type ReferenceSpaceKind uint8

const (
	SpaceViewer ReferenceSpaceKind = iota
	SpaceLocal
	SpaceLocalFloor
	SpaceBoundedFloor
	SpaceUnbounded
)

// String returns the host runtime name of the reference space kind.
func (k ReferenceSpaceKind) String() string {
	switch k {
	case SpaceViewer:
		return "viewer"
	case SpaceLocal:
		return "local"
	case SpaceLocalFloor:
		return "local-floor"
	case SpaceBoundedFloor:
		return "bounded-floor"
	case SpaceUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// SessionInit carries the options of a session request.
// Optional features are granted when available and never fail the request.
type SessionInit struct {
	OptionalFeatures []string
}

// Pending is an asynchronous host runtime request.
//
// Poll is non-blocking: it returns iox.ErrWouldBlock until the host has
// answered, then the result (or the host's error) on every later call.
type Pending[T any] interface {
	Poll() (T, error)
}

// Runtime is the device-provided XR runtime.
type Runtime interface {
	// IsSessionSupported asks whether mode can be granted on this device.
	IsSessionSupported(mode SessionMode) Pending[bool]
	// RequestSession requests a live session in mode.
	RequestSession(mode SessionMode, init SessionInit) Pending[Session]
	// NewRenderTarget constructs a render target bound to gfx for s.
	NewRenderTarget(s Session, gfx GraphicsContext) (RenderTarget, error)
}

// Session is a live host session. Exactly one is active at a time.
type Session interface {
	// UpdateRenderState installs target as the session's active render target.
	UpdateRenderState(target RenderTarget) error
	// RenderTarget returns the active render target, or nil if none is installed.
	RenderTarget() RenderTarget
	// RequestReferenceSpace requests a spatial frame of the given kind.
	RequestReferenceSpace(kind ReferenceSpaceKind) Pending[ReferenceSpace]
	// RequestAnimationFrame registers cb for the next display refresh.
	// A zero handle means the session has ended and nothing was registered.
	RequestAnimationFrame(cb FrameCallback) TickHandle
	// CancelAnimationFrame withdraws a pending registration.
	CancelAnimationFrame(h TickHandle)
	// End ends the session. Pending registrations are dropped and no
	// frame is delivered afterwards.
	End()
}

// ReferenceSpace is a spatial frame granted by a session.
type ReferenceSpace interface {
	Kind() ReferenceSpaceKind
}

// Framebuffer identifies a host-owned framebuffer. Zero is the default framebuffer.
type Framebuffer uint32

// Viewport is a pixel rectangle inside a framebuffer.
type Viewport struct {
	X, Y          int32
	Width, Height int32
}

// RenderTarget exposes the framebuffer and the per-view viewports of a session.
type RenderTarget interface {
	Framebuffer() Framebuffer
	// Viewport returns the sub-rectangle view renders into.
	Viewport(view *View) (Viewport, bool)
}

// Eye identifies which eye a view is rendered for.
type Eye uint8

const (
	EyeNone Eye = iota
	EyeLeft
	EyeRight
)

// View is one eye's projection and pose for the current tick.
type View struct {
	Eye        Eye
	Index      int
	Projection Mat4
	Transform  RigidTransform
}

// ViewerPose is the viewer's pose for the current tick, with one view per eye.
// Stereo hosts deliver the left view at index 0 and the right view at index 1.
type ViewerPose struct {
	Transform RigidTransform
	Views     []View
}

// Frame is the per-tick state handed to a FrameCallback. It is valid only
// for the duration of the callback.
type Frame interface {
	Session() Session
	// ViewerPose returns the viewer pose in space, or false when tracking is lost.
	ViewerPose(space ReferenceSpace) (*ViewerPose, bool)
}

// FrameCallback is invoked once per display refresh with a monotonically
// increasing timestamp in milliseconds.
type FrameCallback func(timestamp float64, frame Frame)

// TickHandle identifies a pending animation frame registration.
type TickHandle uint32
