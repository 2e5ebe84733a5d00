package magma

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// GPU binding layout for the stage. This file is the serialization
// boundary of the data model: records are plain 2D values everywhere else
// and grow their 4D padding only here, to satisfy the uniform alignment
// rules of the host binding layer.

// ObjectUniformSize is the byte size of the per-object uniform buffer.
// Layout (std140, 16-byte aligned fields):
//
//	color            (vec4<f32>)  = 16 bytes
//	position         (vec4<f32>)  = 16 bytes (xy + zero padding)
//	scale            (vec4<f32>)  = 16 bytes (xy + zero padding)
//	pixel_dimensions (vec4<u32>)  = 16 bytes (xy + zero padding)
//
// Total = 64 bytes.
const ObjectUniformSize = 64

// FrameUniformSize is the byte size of the per-frame uniform buffer.
// Layout:
//
//	window_size     (vec4<u32>) = 16 bytes (xy + zero padding)
//	camera_position (vec4<f32>) = 16 bytes (xy + zero padding)
//	camera_scale    (vec4<f32>) = 16 bytes (xy + zero padding)
//
// Total = 48 bytes.
const FrameUniformSize = 48

// VertexStride is the byte stride of the position-only vertex stream:
// one vec2<f32> local coordinate.
const VertexStride = 8

// ColoredVertexStride is the byte stride of the per-vertex-color stream:
// vec2<f32> local coordinate + vec4<f32> color.
const ColoredVertexStride = 24

// OutputStride is the byte stride of one encoded VertexOutput, for hosts
// that pre-transform on the CPU and feed a passthrough shader:
// clip position (vec4<f32>) + color (vec4<f32>) + tex coords (vec2<f32>).
const OutputStride = 40

// Uniform bind group numbering, shared by BindGroupLayoutEntries and the
// generated shader. Texture and sampler occupy the low bindings only on
// sprite pipelines; the uniform bindings stay fixed either way.
const (
	bindingTexture       = 0
	bindingSampler       = 1
	bindingObjectUniform = 2
	bindingFrameUniform  = 3
)

// EncodeUniform writes the record's 64-byte uniform image into buf.
// The host calls this each time the object's data is flushed to the GPU.
// buf must be at least ObjectUniformSize bytes.
func (p *PlacementRecord) EncodeUniform(buf []byte) {
	putF32(buf[0:], p.Color[0])
	putF32(buf[4:], p.Color[1])
	putF32(buf[8:], p.Color[2])
	putF32(buf[12:], p.Color[3])
	putF32(buf[16:], p.Position[0])
	putF32(buf[20:], p.Position[1])
	putF32(buf[24:], 0)
	putF32(buf[28:], 0)
	putF32(buf[32:], p.Scale[0])
	putF32(buf[36:], p.Scale[1])
	putF32(buf[40:], 0)
	putF32(buf[44:], 0)
	binary.LittleEndian.PutUint32(buf[48:], p.PixelDimensions[0])
	binary.LittleEndian.PutUint32(buf[52:], p.PixelDimensions[1])
	binary.LittleEndian.PutUint32(buf[56:], 0)
	binary.LittleEndian.PutUint32(buf[60:], 0)
}

// AppendUniform appends the record's uniform image to dst and returns the
// extended slice.
func (p *PlacementRecord) AppendUniform(dst []byte) []byte {
	var buf [ObjectUniformSize]byte
	p.EncodeUniform(buf[:])
	return append(dst, buf[:]...)
}

// EncodeUniform writes the record's 48-byte uniform image into buf.
// The renderer calls this once per frame, before any object is drawn.
// buf must be at least FrameUniformSize bytes.
func (c *CameraRecord) EncodeUniform(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:], c.WindowSize[0])
	binary.LittleEndian.PutUint32(buf[4:], c.WindowSize[1])
	binary.LittleEndian.PutUint32(buf[8:], 0)
	binary.LittleEndian.PutUint32(buf[12:], 0)
	putF32(buf[16:], c.Position[0])
	putF32(buf[20:], c.Position[1])
	putF32(buf[24:], 0)
	putF32(buf[28:], 0)
	putF32(buf[32:], c.Scale[0])
	putF32(buf[36:], c.Scale[1])
	putF32(buf[40:], 0)
	putF32(buf[44:], 0)
}

// Encode writes the output's 40-byte wire image into buf.
// buf must be at least OutputStride bytes.
func (o *VertexOutput) Encode(buf []byte) {
	putF32(buf[0:], o.ClipPosition[0])
	putF32(buf[4:], o.ClipPosition[1])
	putF32(buf[8:], o.ClipPosition[2])
	putF32(buf[12:], o.ClipPosition[3])
	putF32(buf[16:], o.Color[0])
	putF32(buf[20:], o.Color[1])
	putF32(buf[24:], o.Color[2])
	putF32(buf[28:], o.Color[3])
	putF32(buf[32:], o.TexCoords[0])
	putF32(buf[36:], o.TexCoords[1])
}

// VertexBufferLayout returns the vertex buffer layout of this pipeline's
// local-vertex stream (logical slot 0): the local coordinate at shader
// location 0 and, under ColorPerVertex, the color attribute at location 1.
func (cfg Config) VertexBufferLayout() []gputypes.VertexBufferLayout {
	if cfg.ColorSource == ColorPerVertex {
		return []gputypes.VertexBufferLayout{
			{
				ArrayStride: ColoredVertexStride,
				StepMode:    gputypes.VertexStepModeVertex,
				Attributes: []gputypes.VertexAttribute{
					{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // local position
					{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1}, // color
				},
			},
		}
	}
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // local position
			},
		},
	}
}

// BindGroupLayoutEntries returns the bind group layout of the stage's
// read-only inputs: the per-object uniform (logical slot 1), the per-frame
// uniform (logical slot 2), and, for sprite pipelines, the texture and
// sampler the fragment stage samples from. The order mirrors the engine's
// descriptor set build order.
func (cfg Config) BindGroupLayoutEntries() []gputypes.BindGroupLayoutEntry {
	uniforms := []gputypes.BindGroupLayoutEntry{
		{
			Binding:    bindingObjectUniform,
			Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
		{
			Binding:    bindingFrameUniform,
			Visibility: gputypes.ShaderStageVertex,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
	}
	if !cfg.Sprite {
		return uniforms
	}
	entries := []gputypes.BindGroupLayoutEntry{
		{
			Binding:    bindingTexture,
			Visibility: gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeFloat,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
		},
		{
			Binding:    bindingSampler,
			Visibility: gputypes.ShaderStageFragment,
			Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
		},
	}
	return append(entries, uniforms...)
}

// EncodeQuadVertices returns a ready-to-upload vertex buffer holding the
// four corners of the shared quad in the given convention. Draw it with
// QuadIndices.
func EncodeQuadVertices(c Convention) []byte {
	corners := QuadCorners(c)
	buf := make([]byte, len(corners)*VertexStride)
	offset := 0
	for _, corner := range corners {
		putF32(buf[offset:], corner[0])
		putF32(buf[offset+4:], corner[1])
		offset += VertexStride
	}
	return buf
}

// EncodeColoredQuadVertices returns a vertex buffer for the per-vertex
// color stream: each corner carries its own RGBA color, in corner order.
func EncodeColoredQuadVertices(c Convention, colors [4]f32.Vec4) []byte {
	corners := QuadCorners(c)
	buf := make([]byte, len(corners)*ColoredVertexStride)
	offset := 0
	for i, corner := range corners {
		putF32(buf[offset:], corner[0])
		putF32(buf[offset+4:], corner[1])
		putF32(buf[offset+8:], colors[i][0])
		putF32(buf[offset+12:], colors[i][1])
		putF32(buf[offset+16:], colors[i][2])
		putF32(buf[offset+20:], colors[i][3])
		offset += ColoredVertexStride
	}
	return buf
}

func putF32(buf []byte, v float32) {
	binary.LittleEndian.PutUint32(buf[:4], math.Float32bits(v))
}
