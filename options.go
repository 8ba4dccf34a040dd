package hui

import "github.com/gogpu/gputypes"

// defaultMaxRectangles is the default instance ceiling.
const defaultMaxRectangles = 1024

// SurfaceConfig describes the surface the Renderer composites onto.
// Width and Height are in pixels; Format must match the surface texture
// format (typically BGRA8Unorm).
type SurfaceConfig struct {
	Width  uint32
	Height uint32
	Format gputypes.TextureFormat
}

// ColorOps configures the offscreen color attachment of the rectangle pass.
type ColorOps struct {
	// Load selects LoadOpClear or LoadOpLoad at the start of the pass.
	Load gputypes.LoadOp

	// Store selects StoreOpStore or StoreOpDiscard at the end of the pass.
	Store gputypes.StoreOp

	// Clear is the clear color used when Load is LoadOpClear.
	Clear gputypes.Color
}

// DepthOps configures the optional depth attachment of the rectangle pass.
// Supplying DepthOps via WithDepthOps enables the depth target; without it
// the rectangle pass runs with no depth attachment.
type DepthOps struct {
	Load  gputypes.LoadOp
	Store gputypes.StoreOp
	Clear float32
}

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := hui.NewRenderer(device, queue, cfg,
//	    hui.WithMaxRectangles(4096),
//	    hui.WithColorOps(hui.ColorOps{
//	        Load:  gputypes.LoadOpClear,
//	        Store: gputypes.StoreOpStore,
//	        Clear: gputypes.Color{R: 1, G: 1, B: 1, A: 1},
//	    }),
//	)
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	colorOps      ColorOps
	depthOps      *DepthOps
	maxRectangles int
}

// defaultRendererOptions returns the default renderer options:
// clear to transparent black, no depth target, 1024 instances.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		colorOps: ColorOps{
			Load:  gputypes.LoadOpClear,
			Store: gputypes.StoreOpStore,
			Clear: gputypes.Color{R: 0, G: 0, B: 0, A: 0},
		},
		maxRectangles: defaultMaxRectangles,
	}
}

// WithColorOps sets the load/store operations for the offscreen color
// attachment.
func WithColorOps(ops ColorOps) Option {
	return func(o *rendererOptions) {
		o.colorOps = ops
	}
}

// WithDepthOps enables the depth target and sets its load/store operations.
func WithDepthOps(ops DepthOps) Option {
	return func(o *rendererOptions) {
		o.depthOps = &ops
	}
}

// WithMaxRectangles sets the fixed instance ceiling. The instance buffer
// is allocated once at this size; AddRectangle fails with
// ErrRectangleCapacity once the ceiling is reached. Values below 1 fall
// back to the default.
func WithMaxRectangles(n int) Option {
	return func(o *rendererOptions) {
		if n > 0 {
			o.maxRectangles = n
		}
	}
}
