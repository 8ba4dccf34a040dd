package hui

import "github.com/go-gl/mathgl/mgl32"

// BuildTransform computes the MVP matrix and half extents for a rectangle
// occupying the axis-aligned box at position with the given size, both in
// view-projection space units. position is the rectangle's minimum corner.
//
// The rectangle pipeline draws a unit quad spanning [-1, 1]; the model
// matrix scales it to the half extents and translates it to the
// rectangle's center, then the caller's view-projection maps it to clip
// space.
func BuildTransform(viewProjection mgl32.Mat4, size, position mgl32.Vec2) (mvp mgl32.Mat4, half mgl32.Vec2) {
	half = size.Mul(0.5)
	center := position.Add(half)
	model := mgl32.Translate3D(center.X(), center.Y(), 0).
		Mul4(mgl32.Scale3D(half.X(), half.Y(), 1))
	return viewProjection.Mul4(model), half
}
