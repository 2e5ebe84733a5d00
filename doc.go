// Package magma implements the vertex-transform stage of the magma 2D engine.
//
// # Overview
//
// magma draws every object as the same shared unit quad: four corner
// vertices placed, scaled, and projected per object, per frame. This
// package is the CPU-side model of that stage. It owns the transform math
// (local quad corner -> world position -> normalized clip space), the
// color and texture-coordinate passthrough to the fragment stage, and the
// GPU data contracts the host renderer uploads: uniform byte layouts,
// vertex buffer layout, and bind group layout entries.
//
// The surrounding engine (window/surface management, pipeline setup,
// resource binding, texture loading, fragment shading, draw submission)
// is the host's business and is not modeled here.
//
// # Quick Start
//
//	import "github.com/Meziu/magma"
//
//	cfg := magma.Config{
//	    Sprite:      true,
//	    HasCamera:   true,
//	    ColorSource: magma.ColorStatic,
//	    Convention:  magma.UnitSquare,
//	}
//
//	sprite := magma.PlacementRecord{
//	    Color:           f32.Vec4{1, 1, 1, 1},
//	    Scale:           f32.Vec2{1, 1},
//	    PixelDimensions: [2]uint32{32, 32},
//	}
//	camera := magma.DefaultCamera(800, 600)
//
//	for _, corner := range magma.QuadCorners(magma.UnitSquare) {
//	    out := cfg.Transform(corner, &sprite, &camera, f32.Vec4{})
//	    // out.ClipPosition, out.Color, out.TexCoords
//	}
//
// The same Config also produces the GPU-side twin of the math: a WGSL
// vertex shader generated from the configuration (see Config.WGSL), so the
// CPU model and the shader cannot drift apart.
//
// # Coordinate Systems
//
// Local space is the shared unit quad, in one of two conventions
// (UnitSquare: [0,1] per axis; Centered: [-0.5,0.5] per axis). World space
// is the shared scene coordinate system; with the degenerate camera, world
// units are pixels centered on the window origin. Clip space is [-1,1] per
// axis with w fixed at 1 and depth fixed at 0 (the stage is purely 2D).
//
// # Purity
//
// The per-vertex transform is a pure, stateless, branch-light computation
// with no failure modes. Malformed inputs (zero window size, zero camera
// scale) are caller-contract violations and propagate as non-finite values
// rather than being clamped or reported.
package magma

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
