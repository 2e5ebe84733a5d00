package magma

import "golang.org/x/image/math/f32"

// CameraRecord describes the per-frame view: window size, camera position,
// and camera zoom. The renderer produces one record per frame, before any
// object's vertices are processed, and shares it across every object drawn
// in that frame.
type CameraRecord struct {
	// WindowSize is the surface size in pixels. Both axes must be non-zero;
	// a zero axis is a renderer bug and yields non-finite output.
	WindowSize [2]uint32

	// Position is the camera's world-space position.
	Position f32.Vec2

	// Scale zooms and stretches the whole view. Components must be
	// non-zero. A negative component mirrors the view on that axis.
	Scale f32.Vec2
}

// DefaultCamera returns the degenerate camera for a window of the given
// pixel size: origin position, unit scale. Under it, world units are
// pixels, centered on the window origin and normalized by the window size.
// This is the record to use when no camera system is active.
func DefaultCamera(width, height uint32) CameraRecord {
	return CameraRecord{
		WindowSize: [2]uint32{width, height},
		Scale:      f32.Vec2{1, 1},
	}
}

// Project maps a world-space position to homogeneous clip space.
//
//	clip.xy = (world - Position) / (WindowSize * Scale)
//
// with depth fixed at 0 and w fixed at 1. Shifting both the world position
// and the camera position by the same vector leaves the result unchanged.
//
// Zero WindowSize or Scale components are caller-contract violations; the
// resulting Inf/NaN propagates instead of being clamped, so a
// misconfigured renderer fails visibly rather than silently.
func (c *CameraRecord) Project(world f32.Vec2) f32.Vec4 {
	rel := div(sub(world, c.Position), mul(dimsToVec(c.WindowSize), c.Scale))
	return f32.Vec4{rel[0], rel[1], 0, 1}
}
