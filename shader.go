package magma

import (
	"fmt"
	"strings"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// The GPU-side twin of the transform. The vertex shader is generated from
// the same Config that drives Transform, so the CPU model and the shader
// implement identical math and cannot drift apart. The fragment stage is
// the host's: sprite pipelines sample the bound texture, primitive
// pipelines typically just return the interpolated color.

// WGSL returns the complete WGSL source of this pipeline's vertex stage.
//
// The uniform structs match the byte layouts in layout.go field for field,
// and the binding numbers match BindGroupLayoutEntries. The module
// declares only the vertex entry point vs_main; the host links its own
// fragment entry against the VertexOutput struct.
func (cfg Config) WGSL() string {
	var b strings.Builder

	b.WriteString(`struct ObjectData {
    color: vec4<f32>,
    position: vec4<f32>,
    scale: vec4<f32>,
    pixel_dimensions: vec4<u32>,
}

`)
	if cfg.HasCamera {
		b.WriteString(`struct FrameData {
    window_size: vec4<u32>,
    camera_position: vec4<f32>,
    camera_scale: vec4<f32>,
}

`)
	}

	fmt.Fprintf(&b, "@group(0) @binding(%d) var<uniform> object: ObjectData;\n", bindingObjectUniform)
	if cfg.HasCamera {
		fmt.Fprintf(&b, "@group(0) @binding(%d) var<uniform> frame: FrameData;\n", bindingFrameUniform)
	}

	b.WriteString(`
struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) color: vec4<f32>,
    @location(1) tex_coords: vec2<f32>,
}

@vertex
fn vs_main(
    @location(0) vert_pos: vec2<f32>,
`)
	if cfg.ColorSource == ColorPerVertex {
		b.WriteString("    @location(1) color: vec4<f32>,\n")
	}
	b.WriteString(") -> VertexOutput {\n")

	// Placement resolve.
	if cfg.Sprite {
		b.WriteString(`    let sized_x = f32(object.pixel_dimensions.x) * vert_pos.x;
    let sized_y = f32(object.pixel_dimensions.y) * vert_pos.y;
    let world_x = object.position.x + sized_x * object.scale.x;
    let world_y = object.position.y + sized_y * object.scale.y;
`)
	} else {
		b.WriteString(`    let world_x = object.position.x + vert_pos.x * object.scale.x;
    let world_y = object.position.y + vert_pos.y * object.scale.y;
`)
	}

	// Camera projection.
	clipX, clipY := "world_x", "world_y"
	if cfg.HasCamera {
		b.WriteString(`    let rel_x = (world_x - frame.camera_position.x) / (f32(frame.window_size.x) * frame.camera_scale.x);
    let rel_y = (world_y - frame.camera_position.y) / (f32(frame.window_size.y) * frame.camera_scale.y);
`)
		clipX, clipY = "rel_x", "rel_y"
	}
	if cfg.NegateY {
		clipY = "-" + clipY
	}

	// Texture coordinates.
	if cfg.Convention == Centered {
		b.WriteString(`    let tc_x = vert_pos.x + 0.5;
    let tc_y = vert_pos.y + 0.5;
`)
	} else {
		b.WriteString(`    let tc_x = clamp(vert_pos.x, 0.0, 1.0);
    let tc_y = clamp(vert_pos.y, 0.0, 1.0);
`)
	}

	tcY := "tc_y"
	if cfg.FlipY {
		tcY = "1.0 - tc_y"
	}
	colorExpr := "object.color"
	if cfg.ColorSource == ColorPerVertex {
		colorExpr = "color"
	}

	b.WriteString("\n    var out: VertexOutput;\n")
	fmt.Fprintf(&b, "    out.clip_position = vec4<f32>(%s, %s, 0.0, 1.0);\n", clipX, clipY)
	fmt.Fprintf(&b, "    out.color = %s;\n", colorExpr)
	fmt.Fprintf(&b, "    out.tex_coords = vec2<f32>(tc_x, %s);\n", tcY)
	b.WriteString("    return out;\n}\n")

	return b.String()
}

// CompileSPIRV compiles the generated vertex shader to SPIR-V. A compile
// error here means the generator produced invalid WGSL for this Config,
// which is a bug in this package rather than in the caller's data.
func (cfg Config) CompileSPIRV() ([]byte, error) {
	source := cfg.WGSL()
	spirv, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("compile vertex shader: %w", err)
	}
	Logger().Debug("compiled vertex shader",
		"sprite", cfg.Sprite,
		"camera", cfg.HasCamera,
		"spirv_bytes", len(spirv))
	return spirv, nil
}

// ShaderModuleDescriptor returns a descriptor the host can pass straight
// to its device's CreateShaderModule.
func (cfg Config) ShaderModuleDescriptor(label string) *hal.ShaderModuleDescriptor {
	return &hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{WGSL: cfg.WGSL()},
	}
}
