// Command magmademo runs the magma vertex-transform stage on a sample
// sprite and prints the results, then compiles the matching shader.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/Meziu/magma"
	"golang.org/x/image/math/f32"
)

func main() {
	var (
		width   = flag.Uint("width", 800, "window width in pixels")
		height  = flag.Uint("height", 600, "window height in pixels")
		sprite  = flag.Bool("sprite", true, "transform a sprite (false for a primitive)")
		flipY   = flag.Bool("flip-y", false, "flip the texture V axis")
		verbose = flag.Bool("v", false, "enable debug logging")
		shader  = flag.String("shader", "", "write the generated WGSL to this file instead of stdout")
	)
	flag.Parse()

	if *verbose {
		magma.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := magma.Config{
		Sprite:      *sprite,
		HasCamera:   true,
		ColorSource: magma.ColorStatic,
		Convention:  magma.UnitSquare,
		FlipY:       *flipY,
	}

	placement := magma.PlacementRecord{
		Color:    f32.Vec4{1, 1, 1, 1},
		Position: f32.Vec2{64, 64},
		Scale:    f32.Vec2{2, 2},
	}
	if *sprite {
		placement.PixelDimensions = [2]uint32{32, 32}
	}
	camera := magma.DefaultCamera(uint32(*width), uint32(*height))

	fmt.Printf("window %dx%d, placement %+v\n\n", *width, *height, placement)
	for i, corner := range magma.QuadCorners(cfg.Convention) {
		out := cfg.Transform(corner, &placement, &camera, f32.Vec4{})
		fmt.Printf("corner %d local=%v clip=%v uv=%v\n", i, corner, out.ClipPosition, out.TexCoords)
	}

	source := cfg.WGSL()
	if *shader != "" {
		if err := os.WriteFile(*shader, []byte(source), 0o644); err != nil {
			log.Fatalf("Failed to write shader: %v", err)
		}
		log.Printf("Shader written to %s", *shader)
	} else {
		fmt.Printf("\n%s", source)
	}

	spirv, err := cfg.CompileSPIRV()
	if err != nil {
		log.Fatalf("Failed to compile shader: %v", err)
	}
	log.Printf("Shader compiled: %d bytes of SPIR-V", len(spirv))
}
