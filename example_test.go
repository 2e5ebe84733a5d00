package magma_test

import (
	"fmt"

	"github.com/Meziu/magma"
	"golang.org/x/image/math/f32"
)

// ExampleConfig_Transform places a 32x32 sprite at double scale and
// projects its far corner through the default camera.
func ExampleConfig_Transform() {
	cfg := magma.Config{
		Sprite:      true,
		HasCamera:   true,
		ColorSource: magma.ColorStatic,
		Convention:  magma.UnitSquare,
	}

	sprite := magma.PlacementRecord{
		Color:           f32.Vec4{1, 1, 1, 1},
		Scale:           f32.Vec2{2, 2},
		PixelDimensions: [2]uint32{32, 32},
	}
	camera := magma.DefaultCamera(800, 600)

	out := cfg.Transform(f32.Vec2{1, 1}, &sprite, &camera, f32.Vec4{})
	fmt.Printf("clip x=%.2f y=%.4f uv=%v\n", out.ClipPosition[0], out.ClipPosition[1], out.TexCoords)
	// Output: clip x=0.08 y=0.1067 uv=[1 1]
}

// ExampleCameraRecord_Project shows the world-to-clip mapping under the
// degenerate camera: world units are pixels, normalized by the window.
func ExampleCameraRecord_Project() {
	camera := magma.DefaultCamera(800, 600)
	fmt.Println(camera.Project(f32.Vec2{400, 300}))
	fmt.Println(camera.Project(f32.Vec2{-400, -300}))
	// Output:
	// [0.5 0.5 0 1]
	// [-0.5 -0.5 0 1]
}
