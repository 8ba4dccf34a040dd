package hui

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Block errors.
var (
	// ErrBlockPositioned is returned when Position is called twice on the
	// same Block.
	ErrBlockPositioned = errors.New("hui: block already positioned")

	// ErrBlockDetached is returned when operating on a PositionedBlock
	// whose rectangle no longer exists (Destroy was called, or the
	// rectangle was removed through the host directly).
	ErrBlockDetached = errors.New("hui: block rectangle no longer exists")
)

// BlockHost is the rectangle surface Block widgets render through.
// *Renderer satisfies it; tests can substitute a fake.
type BlockHost interface {
	AddRectangle(Rectangle) (RectangleID, error)
	Rectangle(RectangleID) *Rectangle
	RemoveRectangle(RectangleID) (Rectangle, bool)
}

var _ BlockHost = (*Renderer)(nil)

// Style describes a block's visual appearance, everything about the
// rectangle except its placement.
type Style struct {
	FillColor   [4]float32
	BorderColor [4]float32

	// CornerRadii holds per-corner radii: top-left, top-right,
	// bottom-left, bottom-right.
	CornerRadii [4]float32

	BorderSize float32

	ShadowColor  [4]float32
	ShadowSpread float32
	ShadowOffset [2]float32
	ShadowBlur   float32
}

// apply writes the style fields onto a rectangle, leaving placement
// (MVP, HalfSize) untouched.
func (s Style) apply(r *Rectangle) {
	r.FillColor = s.FillColor
	r.BorderColor = s.BorderColor
	r.CornerRadii = s.CornerRadii
	r.BorderSize = s.BorderSize
	r.ShadowColor = s.ShadowColor
	r.ShadowSpread = s.ShadowSpread
	r.ShadowOffset = s.ShadowOffset
	r.ShadowBlur = s.ShadowBlur
}

// Block is a styled rectangle widget that has not been placed yet. It
// holds no GPU-side state; nothing is drawn until Position is called,
// which converts it into a PositionedBlock.
//
// The split into two types makes misuse unrepresentable at the API
// surface: geometry setters exist only on PositionedBlock, and a Block
// can only be positioned once.
type Block struct {
	host       BlockHost
	style      Style
	positioned bool
}

// NewBlock creates an unpositioned block rendering through host.
func NewBlock(host BlockHost, style Style) *Block {
	return &Block{host: host, style: style}
}

// Position places the block, adding its rectangle to the host, and
// returns the positioned form. size and position are in view-projection
// units; position is the block's minimum corner.
//
// The Block is consumed: calling Position again returns
// ErrBlockPositioned.
func (b *Block) Position(size, position mgl32.Vec2, viewProjection mgl32.Mat4) (*PositionedBlock, error) {
	if b.positioned {
		return nil, ErrBlockPositioned
	}

	mvp, half := BuildTransform(viewProjection, size, position)
	rect := Rectangle{
		MVP:      mvp,
		HalfSize: [2]float32{half.X(), half.Y()},
	}
	b.style.apply(&rect)

	id, err := b.host.AddRectangle(rect)
	if err != nil {
		return nil, fmt.Errorf("position block: %w", err)
	}
	b.positioned = true

	return &PositionedBlock{
		host:           b.host,
		id:             id,
		style:          b.style,
		size:           size,
		position:       position,
		viewProjection: viewProjection,
	}, nil
}

// PositionedBlock is a block that owns a live rectangle in its host.
// Geometry and style setters mutate the rectangle in place; Destroy
// removes it.
type PositionedBlock struct {
	host  BlockHost
	id    RectangleID
	style Style

	size           mgl32.Vec2
	position       mgl32.Vec2
	viewProjection mgl32.Mat4
}

// ID returns the underlying rectangle ID.
func (pb *PositionedBlock) ID() RectangleID { return pb.id }

// Size returns the block's current size.
func (pb *PositionedBlock) Size() mgl32.Vec2 { return pb.size }

// Position returns the block's current minimum corner.
func (pb *PositionedBlock) Position() mgl32.Vec2 { return pb.position }

// Style returns the block's current style.
func (pb *PositionedBlock) Style() Style { return pb.style }

// SetSize resizes the block in place.
func (pb *PositionedBlock) SetSize(size mgl32.Vec2) error {
	return pb.SetSizeAndPosition(size, pb.position)
}

// SetPosition moves the block in place.
func (pb *PositionedBlock) SetPosition(position mgl32.Vec2) error {
	return pb.SetSizeAndPosition(pb.size, position)
}

// SetSizeAndPosition updates both geometry parameters with a single
// rectangle mutation.
func (pb *PositionedBlock) SetSizeAndPosition(size, position mgl32.Vec2) error {
	rect := pb.host.Rectangle(pb.id)
	if rect == nil {
		return ErrBlockDetached
	}
	mvp, half := BuildTransform(pb.viewProjection, size, position)
	rect.MVP = mvp
	rect.HalfSize = [2]float32{half.X(), half.Y()}
	pb.size = size
	pb.position = position
	return nil
}

// SetViewProjection replaces the view-projection transform, recomputing
// the rectangle's MVP for the current geometry. Call this when the
// camera or surface projection changes.
func (pb *PositionedBlock) SetViewProjection(viewProjection mgl32.Mat4) error {
	pb.viewProjection = viewProjection
	return pb.SetSizeAndPosition(pb.size, pb.position)
}

// SetStyle replaces the block's visual style, leaving geometry untouched.
func (pb *PositionedBlock) SetStyle(style Style) error {
	rect := pb.host.Rectangle(pb.id)
	if rect == nil {
		return ErrBlockDetached
	}
	style.apply(rect)
	pb.style = style
	return nil
}

// Destroy removes the block's rectangle from the host. Safe to call
// multiple times; only the first call removes anything.
func (pb *PositionedBlock) Destroy() {
	if !pb.id.Valid() {
		return
	}
	pb.host.RemoveRectangle(pb.id)
	pb.id = RectangleID{}
}
