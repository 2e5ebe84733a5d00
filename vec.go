package magma

import "golang.org/x/image/math/f32"

// Vector helpers over the x/image float32 vector types. The transform is
// axis-aligned by construction, so componentwise arithmetic is all the
// stage ever needs; there is deliberately no matrix type here.

// add returns the componentwise sum of two vectors.
func add(a, b f32.Vec2) f32.Vec2 {
	return f32.Vec2{a[0] + b[0], a[1] + b[1]}
}

// sub returns the componentwise difference of two vectors.
func sub(a, b f32.Vec2) f32.Vec2 {
	return f32.Vec2{a[0] - b[0], a[1] - b[1]}
}

// mul returns the componentwise (Hadamard) product of two vectors.
func mul(a, b f32.Vec2) f32.Vec2 {
	return f32.Vec2{a[0] * b[0], a[1] * b[1]}
}

// div returns the componentwise quotient of two vectors.
// Division by zero propagates per IEEE 754; the caller contract rules it out.
func div(a, b f32.Vec2) f32.Vec2 {
	return f32.Vec2{a[0] / b[0], a[1] / b[1]}
}

// clamp01 clamps both components to [0, 1].
func clamp01(v f32.Vec2) f32.Vec2 {
	return f32.Vec2{clampf(v[0], 0, 1), clampf(v[1], 0, 1)}
}

func clampf(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// dimsToVec converts an unsigned pixel-dimension pair to float components.
func dimsToVec(d [2]uint32) f32.Vec2 {
	return f32.Vec2{float32(d[0]), float32(d[1])}
}
