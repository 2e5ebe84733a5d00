package magma

import "golang.org/x/image/math/f32"

// Convention selects the local-vertex coordinate range of the shared quad.
//
// The resolver and the texture-coordinate passthrough must agree on the
// convention a given quad uses; the two ranges are not interchangeable.
// The convention is fixed per pipeline, not per object.
type Convention int

const (
	// UnitSquare places local vertices in [0,1] per axis, origin at the
	// quad's bottom-left corner. Texture coordinates are the local vertex
	// itself, clamped.
	UnitSquare Convention = iota

	// Centered places local vertices in [-0.5,0.5] per axis, origin at the
	// quad's center. Texture coordinates are the local vertex shifted by
	// (0.5, 0.5).
	Centered
)

// String returns the convention name.
func (c Convention) String() string {
	switch c {
	case UnitSquare:
		return "UnitSquare"
	case Centered:
		return "Centered"
	default:
		return "Unknown"
	}
}

// QuadCorners returns the four corners of the shared unit quad in the given
// convention, in the engine's fixed winding: bottom-left, top-left,
// top-right, bottom-right.
func QuadCorners(c Convention) [4]f32.Vec2 {
	if c == Centered {
		return [4]f32.Vec2{
			{-0.5, -0.5},
			{-0.5, 0.5},
			{0.5, 0.5},
			{0.5, -0.5},
		}
	}
	return [4]f32.Vec2{
		{0, 0},
		{0, 1},
		{1, 1},
		{1, 0},
	}
}

// QuadIndices returns the shared two-triangle index list for the quad.
// Every object in the engine draws with this same list.
func QuadIndices() []uint16 {
	return []uint16{0, 1, 2, 2, 3, 0}
}
