package magma

import "golang.org/x/image/math/f32"

// PlacementRecord describes where and how one drawable object appears.
// It is owned by the object and rewritten whenever the object moves,
// scales, or recolors; this stage only reads it.
//
// Invariants (caller contract, not checked here): Scale components are
// non-negative; PixelDimensions, when set, are positive on both axes.
type PlacementRecord struct {
	// Color is the object's static RGBA color, passed through to the
	// fragment stage verbatim when the pipeline uses ColorStatic.
	Color f32.Vec4

	// Position is the object's world-space position: the location of the
	// quad's local origin after placement.
	Position f32.Vec2

	// Scale stretches the quad around its local origin. For sprites
	// (PixelDimensions set) it multiplies the native pixel size, so unit
	// scale draws the sprite at its source resolution in world units.
	// Zero scale collapses the object to a point; that is accepted.
	Scale f32.Vec2

	// PixelDimensions is the source texture size in pixels. The zero value
	// marks a primitive: the local vertex is then interpreted directly in
	// Scale units with no pixel sizing. Sprite dimensions are positive, so
	// the zero value is unambiguous.
	PixelDimensions [2]uint32
}

// IsSprite reports whether the record carries source pixel dimensions.
func (p *PlacementRecord) IsSprite() bool {
	return p.PixelDimensions != [2]uint32{}
}

// Resolve maps a local quad vertex to world space.
//
// Primitive path: world = Position + local*Scale.
// Sprite path: world = Position + (PixelDimensions*local)*Scale.
func (p *PlacementRecord) Resolve(local f32.Vec2) f32.Vec2 {
	if p.IsSprite() {
		local = mul(dimsToVec(p.PixelDimensions), local)
	}
	return add(p.Position, mul(local, p.Scale))
}
