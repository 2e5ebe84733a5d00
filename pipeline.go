package magma

import "golang.org/x/image/math/f32"

// ColorSource selects where the fragment stage's color comes from.
type ColorSource int

const (
	// ColorStatic copies the object's PlacementRecord color: one color for
	// the whole quad. This is what sprites and flat primitives use.
	ColorStatic ColorSource = iota

	// ColorPerVertex copies a per-vertex color attribute supplied alongside
	// the local vertex, for quads with a color gradient across corners.
	ColorPerVertex
)

// String returns the color source name.
func (s ColorSource) String() string {
	switch s {
	case ColorStatic:
		return "Static"
	case ColorPerVertex:
		return "PerVertex"
	default:
		return "Unknown"
	}
}

// Config fixes the shape of one pipeline's vertex stage. All fields are
// chosen once at pipeline configuration time and never vary per object;
// the same Config drives both the CPU transform (Transform) and the
// generated shader (WGSL).
type Config struct {
	// Sprite marks a pipeline that draws textured quads: its placement
	// records carry pixel dimensions, its bind group includes the texture
	// and sampler, and its shader applies pixel sizing. Primitive
	// pipelines leave it false.
	Sprite bool

	// HasCamera enables camera projection. Without it the resolved world
	// position is written to clip space unchanged, which is the earliest
	// form of the stage and the right one for pipelines that pre-normalize
	// their placements.
	HasCamera bool

	// ColorSource selects static object color or a per-vertex attribute.
	ColorSource ColorSource

	// Convention is the local-vertex range of the quad this pipeline draws.
	Convention Convention

	// FlipY flips the texture-coordinate V axis, for targets that sample
	// with the origin at the top of the texture rather than the bottom.
	FlipY bool

	// NegateY negates clip-space Y, for targets whose clip space is
	// y-down (Vulkan) rather than y-up (OpenGL).
	NegateY bool
}

// VertexOutput is the stage's complete per-vertex result, handed to the
// next pipeline stage. Field meaning and component counts are a
// compile-time contract with that stage.
type VertexOutput struct {
	// ClipPosition is the homogeneous clip-space position, w fixed at 1,
	// depth fixed at 0.
	ClipPosition f32.Vec4

	// Color is the RGBA color passed through for the fragment stage.
	Color f32.Vec4

	// TexCoords is the texture-sampling coordinate derived from the local
	// vertex, in [0,1] per axis.
	TexCoords f32.Vec2
}

// Transform runs the full stage for one vertex: placement resolve, optional
// camera projection, and the color / texture-coordinate passthrough.
//
// vertexColor is only consulted under ColorPerVertex; static pipelines
// may pass the zero value. camera may be nil when HasCamera is false.
//
// Transform is pure and stateless: it may be called for any number of
// vertices concurrently with no ordering between them.
func (cfg Config) Transform(local f32.Vec2, placement *PlacementRecord, camera *CameraRecord, vertexColor f32.Vec4) VertexOutput {
	var out VertexOutput

	world := placement.Resolve(local)
	if cfg.HasCamera {
		out.ClipPosition = camera.Project(world)
	} else {
		out.ClipPosition = f32.Vec4{world[0], world[1], 0, 1}
	}
	if cfg.NegateY {
		out.ClipPosition[1] = -out.ClipPosition[1]
	}

	if cfg.ColorSource == ColorPerVertex {
		out.Color = vertexColor
	} else {
		out.Color = placement.Color
	}

	out.TexCoords = cfg.texCoords(local)
	return out
}

// texCoords derives the texture-sampling coordinate from a local vertex
// under the pipeline's convention and flip setting.
func (cfg Config) texCoords(local f32.Vec2) f32.Vec2 {
	var tc f32.Vec2
	if cfg.Convention == Centered {
		tc = add(local, f32.Vec2{0.5, 0.5})
	} else {
		tc = clamp01(local)
	}
	if cfg.FlipY {
		tc[1] = 1 - tc[1]
	}
	return tc
}
