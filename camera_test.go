package magma

import (
	"math"
	"testing"

	"golang.org/x/image/math/f32"
)

func TestDefaultCamera(t *testing.T) {
	c := DefaultCamera(800, 600)
	if c.WindowSize != [2]uint32{800, 600} {
		t.Errorf("WindowSize = %v, want [800 600]", c.WindowSize)
	}
	if c.Position != (f32.Vec2{0, 0}) {
		t.Errorf("Position = %v, want origin", c.Position)
	}
	if c.Scale != (f32.Vec2{1, 1}) {
		t.Errorf("Scale = %v, want unit", c.Scale)
	}
}

func TestCameraRecord_Project(t *testing.T) {
	tests := []struct {
		name   string
		camera CameraRecord
		world  f32.Vec2
		want   f32.Vec4
	}{
		{
			// Half the window size lands at half of clip space.
			"round trip positive",
			DefaultCamera(800, 600),
			f32.Vec2{400, 300},
			f32.Vec4{0.5, 0.5, 0, 1},
		},
		{
			"round trip negative",
			DefaultCamera(800, 600),
			f32.Vec2{-400, -300},
			f32.Vec4{-0.5, -0.5, 0, 1},
		},
		{
			"origin maps to center",
			DefaultCamera(800, 600),
			f32.Vec2{0, 0},
			f32.Vec4{0, 0, 0, 1},
		},
		{
			"camera position recenters",
			CameraRecord{WindowSize: [2]uint32{800, 600}, Position: f32.Vec2{400, 300}, Scale: f32.Vec2{1, 1}},
			f32.Vec2{400, 300},
			f32.Vec4{0, 0, 0, 1},
		},
		{
			// Zooming out by 2 halves the clip-space extent of everything.
			"camera scale zooms",
			CameraRecord{WindowSize: [2]uint32{800, 600}, Scale: f32.Vec2{2, 2}},
			f32.Vec2{400, 300},
			f32.Vec4{0.25, 0.25, 0, 1},
		},
		{
			// A negative scale component mirrors the view on that axis.
			"negative scale mirrors",
			CameraRecord{WindowSize: [2]uint32{800, 600}, Scale: f32.Vec2{-1, 1}},
			f32.Vec2{400, 300},
			f32.Vec4{-0.5, 0.5, 0, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.camera.Project(tt.world)
			if got != tt.want {
				t.Errorf("Project(%v) = %v, want %v", tt.world, got, tt.want)
			}
		})
	}
}

// Shifting the world position and the camera position by the same vector
// leaves the projection unchanged.
func TestCameraRecord_Project_TranslationEquivariant(t *testing.T) {
	shifts := []f32.Vec2{{0, 0}, {100, -50}, {-3.25, 7.75}, {1e4, 1e4}}
	world := f32.Vec2{123, -456}

	base := CameraRecord{WindowSize: [2]uint32{800, 600}, Position: f32.Vec2{10, 20}, Scale: f32.Vec2{2, 0.5}}
	want := base.Project(world)

	for _, d := range shifts {
		shifted := base
		shifted.Position = add(shifted.Position, d)
		got := shifted.Project(add(world, d))
		if !vec4Near(got, want, 1e-4) {
			t.Errorf("shift %v: Project = %v, want %v", d, got, want)
		}
	}
}

// Contract violations are not guarded: a zero window axis or zero camera
// scale must surface as a non-finite component, not get clamped away.
func TestCameraRecord_Project_ContractViolations(t *testing.T) {
	tests := []struct {
		name   string
		camera CameraRecord
	}{
		{"zero window width", CameraRecord{WindowSize: [2]uint32{0, 600}, Scale: f32.Vec2{1, 1}}},
		{"zero camera scale", CameraRecord{WindowSize: [2]uint32{800, 600}, Scale: f32.Vec2{0, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.camera.Project(f32.Vec2{100, 100})
			x := float64(got[0])
			if !math.IsInf(x, 0) && !math.IsNaN(x) {
				t.Errorf("Project with %s = %v, want non-finite x", tt.name, got)
			}
		})
	}
}

func TestCameraRecord_Project_FixedDepthAndW(t *testing.T) {
	c := CameraRecord{WindowSize: [2]uint32{1024, 768}, Position: f32.Vec2{-3, 9}, Scale: f32.Vec2{1.5, 1.5}}
	for _, world := range []f32.Vec2{{0, 0}, {512, -384}, {-1, 1}} {
		got := c.Project(world)
		if got[2] != 0 || got[3] != 1 {
			t.Errorf("Project(%v) = %v, want z=0 w=1", world, got)
		}
	}
}

func vec4Near(a, b f32.Vec4, eps float32) bool {
	for i := range a {
		d := a[i] - b[i]
		if d < -eps || d > eps {
			return false
		}
	}
	return true
}
