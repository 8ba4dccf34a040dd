package hui

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
)

// rectangleStride is the byte stride per rectangle instance.
// Layout per instance (matches RectangleInput in rect.wgsl, 16-byte aligned):
//
//	mvp           (mat4x4<f32>) = 64 bytes (locations 1-4, one vec4 per column)
//	fill_color    (vec4<f32>)   = 16 bytes (location 5)
//	border_color  (vec4<f32>)   = 16 bytes (location 6)
//	corner_radii  (vec4<f32>)   = 16 bytes (location 7)
//	shadow_color  (vec4<f32>)   = 16 bytes (location 8)
//	half_size     (vec2<f32>)   = 8 bytes  (location 9)
//	border_size   (f32)         = 4 bytes  (location 10)
//	shadow_spread (f32)         = 4 bytes  (location 11)
//	shadow_offset (vec2<f32>)   = 8 bytes  (location 12)
//	shadow_blur   (f32)         = 4 bytes  (location 13)
//	padding       (f32)         = 4 bytes
//
// Total = 160 bytes per instance.
const rectangleStride = 160

// quadVertexStride is the byte stride per vertex of the unit quad.
// Layout: position (vec3<f32>) = 12 bytes (location 0).
const quadVertexStride = 12

// quadIndexCount is the number of indices drawn per rectangle instance
// (two triangles).
const quadIndexCount = 6

// Rectangle is a single styled rectangle instance. All fields are uploaded
// to the GPU verbatim; colors are straight (non-premultiplied) RGBA in
// [0, 1], sizes and radii are in the same units as the MVP transform maps
// from.
//
// The MVP transform positions a unit quad spanning [-1, 1] on both axes;
// HalfSize carries the rectangle's half extents so the fragment shader can
// evaluate the rounded-corner and shadow distance fields in local units.
type Rectangle struct {
	// MVP is the model-view-projection transform for the unit quad.
	MVP mgl32.Mat4

	// FillColor is the interior color.
	FillColor [4]float32

	// BorderColor is the border ring color.
	BorderColor [4]float32

	// CornerRadii holds per-corner radii: top-left, top-right,
	// bottom-left, bottom-right.
	CornerRadii [4]float32

	// ShadowColor is the drop shadow color.
	ShadowColor [4]float32

	// HalfSize is half the rectangle extent on each axis, in local units.
	HalfSize [2]float32

	// BorderSize is the border thickness, in local units.
	BorderSize float32

	// ShadowSpread expands the shadow silhouette before blurring.
	ShadowSpread float32

	// ShadowOffset shifts the shadow relative to the rectangle.
	ShadowOffset [2]float32

	// ShadowBlur is the blur radius of the shadow edge.
	ShadowBlur float32
}

// putRectangle serializes a rectangle instance into buf at offset 0.
// buf must be at least rectangleStride bytes.
func putRectangle(buf []byte, r *Rectangle) {
	off := 0
	for _, v := range r.MVP {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
		off += 4
	}
	for _, quad := range [4][4]float32{r.FillColor, r.BorderColor, r.CornerRadii, r.ShadowColor} {
		for _, v := range quad {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
			off += 4
		}
	}
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(r.HalfSize[0]))
	off += 4
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(r.HalfSize[1]))
	off += 4
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(r.BorderSize))
	off += 4
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(r.ShadowSpread))
	off += 4
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(r.ShadowOffset[0]))
	off += 4
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(r.ShadowOffset[1]))
	off += 4
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(r.ShadowBlur))
	// Trailing 4 padding bytes remain zero.
}

// quadVertexData returns the serialized unit quad vertices.
// Corner order: top-left, bottom-left, top-right, bottom-right.
func quadVertexData() []byte {
	vertices := [4][3]float32{
		{-1, 1, 0},
		{-1, -1, 0},
		{1, 1, 0},
		{1, -1, 0},
	}
	data := make([]byte, len(vertices)*quadVertexStride)
	off := 0
	for _, v := range vertices {
		binary.LittleEndian.PutUint32(data[off:], math.Float32bits(v[0]))
		binary.LittleEndian.PutUint32(data[off+4:], math.Float32bits(v[1]))
		binary.LittleEndian.PutUint32(data[off+8:], math.Float32bits(v[2]))
		off += quadVertexStride
	}
	return data
}

// quadIndexData returns the serialized uint16 indices for the unit quad
// (two counter-clockwise triangles).
func quadIndexData() []byte {
	indices := [quadIndexCount]uint16{1, 0, 2, 1, 3, 2}
	data := make([]byte, len(indices)*2)
	for i, idx := range indices {
		binary.LittleEndian.PutUint16(data[i*2:], idx)
	}
	return data
}

// quadVertexLayout returns the per-vertex buffer layout for the unit quad.
// Matches VertexInput in rect.wgsl: location 0 = position (vec3<f32>).
func quadVertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: quadVertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0}, // position
		},
	}
}

// rectangleInstanceLayout returns the per-instance buffer layout.
// Matches RectangleInput in rect.wgsl, locations 1-13.
func rectangleInstanceLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: rectangleStride,
		StepMode:    gputypes.VertexStepModeInstance,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 1},    // mvp column 0
			{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2},   // mvp column 1
			{Format: gputypes.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 3},   // mvp column 2
			{Format: gputypes.VertexFormatFloat32x4, Offset: 48, ShaderLocation: 4},   // mvp column 3
			{Format: gputypes.VertexFormatFloat32x4, Offset: 64, ShaderLocation: 5},   // fill_color
			{Format: gputypes.VertexFormatFloat32x4, Offset: 80, ShaderLocation: 6},   // border_color
			{Format: gputypes.VertexFormatFloat32x4, Offset: 96, ShaderLocation: 7},   // corner_radii
			{Format: gputypes.VertexFormatFloat32x4, Offset: 112, ShaderLocation: 8},  // shadow_color
			{Format: gputypes.VertexFormatFloat32x2, Offset: 128, ShaderLocation: 9},  // half_size
			{Format: gputypes.VertexFormatFloat32, Offset: 136, ShaderLocation: 10},   // border_size
			{Format: gputypes.VertexFormatFloat32, Offset: 140, ShaderLocation: 11},   // shadow_spread
			{Format: gputypes.VertexFormatFloat32x2, Offset: 144, ShaderLocation: 12}, // shadow_offset
			{Format: gputypes.VertexFormatFloat32, Offset: 152, ShaderLocation: 13},   // shadow_blur
		},
	}
}
