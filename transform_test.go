package hui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const transformEpsilon = 1e-5

func vec4Near(a, b mgl32.Vec4) bool {
	for i := range 4 {
		d := a[i] - b[i]
		if d < -transformEpsilon || d > transformEpsilon {
			return false
		}
	}
	return true
}

func TestBuildTransformHalfExtents(t *testing.T) {
	tests := []struct {
		name string
		size mgl32.Vec2
		want mgl32.Vec2
	}{
		{"square", mgl32.Vec2{100, 100}, mgl32.Vec2{50, 50}},
		{"wide", mgl32.Vec2{200, 50}, mgl32.Vec2{100, 25}},
		{"zero", mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, half := BuildTransform(mgl32.Ident4(), tt.size, mgl32.Vec2{0, 0})
			if half != tt.want {
				t.Errorf("half = %v, want %v", half, tt.want)
			}
		})
	}
}

func TestBuildTransformCornerRoundTrip(t *testing.T) {
	// With an identity view-projection, the unit quad corners must land
	// exactly on the rectangle's corners in world units.
	size := mgl32.Vec2{80, 40}
	position := mgl32.Vec2{10, 20}
	mvp, _ := BuildTransform(mgl32.Ident4(), size, position)

	tests := []struct {
		name   string
		corner mgl32.Vec4 // unit quad corner
		want   mgl32.Vec4 // world position
	}{
		{"min", mgl32.Vec4{-1, -1, 0, 1}, mgl32.Vec4{10, 20, 0, 1}},
		{"max", mgl32.Vec4{1, 1, 0, 1}, mgl32.Vec4{90, 60, 0, 1}},
		{"center", mgl32.Vec4{0, 0, 0, 1}, mgl32.Vec4{50, 40, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mvp.Mul4x1(tt.corner)
			if !vec4Near(got, tt.want) {
				t.Errorf("corner %v mapped to %v, want %v", tt.corner, got, tt.want)
			}
		})
	}
}

func TestBuildTransformAppliesViewProjection(t *testing.T) {
	// An orthographic projection over [0,800]x[0,600] must map the
	// rectangle's center into clip space.
	vp := mgl32.Ortho(0, 800, 600, 0, -1, 1)
	mvp, _ := BuildTransform(vp, mgl32.Vec2{100, 100}, mgl32.Vec2{350, 250})

	// Rectangle center is (400, 300) -- the middle of the viewport, which
	// is clip-space origin.
	got := mvp.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !vec4Near(got, mgl32.Vec4{0, 0, 0, 1}) {
		t.Errorf("center mapped to %v, want clip origin", got)
	}
}
