package hui

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Renderer errors.
var (
	// ErrNilDevice is returned when NewRenderer is called without a device.
	ErrNilDevice = errors.New("hui: device is nil")

	// ErrNilQueue is returned when NewRenderer is called without a queue.
	ErrNilQueue = errors.New("hui: queue is nil")

	// ErrNilSurfaceView is returned when Render is called without a
	// surface view.
	ErrNilSurfaceView = errors.New("hui: surface view is nil")
)

// Renderer draws styled rectangles into an offscreen texture and
// composites that texture onto the caller's surface.
//
// The offscreen rectangle pass only runs when the instance set changed
// since the last frame (or after a resize); the composite pass runs every
// frame. This keeps a static UI nearly free on the GPU while still
// producing a full surface image each frame.
//
// Renderer is not safe for concurrent use.
type Renderer struct {
	device hal.Device
	queue  hal.Queue

	config SurfaceConfig
	opts   rendererOptions

	store     *rectangleStore
	target    *renderTarget
	rects     *rectanglePass
	composite *compositePass

	// redrawRequired forces the offscreen pass independently of store
	// dirtiness. Starts true so the first frame always draws, and is set
	// again on resize (the recreated offscreen texture is undefined).
	redrawRequired bool
}

// NewRenderer creates a renderer targeting surfaces of the given
// configuration. Zero dimensions are clamped to 1. The device and queue
// are retained for the renderer's lifetime.
func NewRenderer(device hal.Device, queue hal.Queue, config SurfaceConfig, opts ...Option) (*Renderer, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}

	options := defaultRendererOptions()
	for _, opt := range opts {
		opt(&options)
	}

	config.Width = max(config.Width, 1)
	config.Height = max(config.Height, 1)

	r := &Renderer{
		device:         device,
		queue:          queue,
		config:         config,
		opts:           options,
		store:          newRectangleStore(options.maxRectangles),
		redrawRequired: true,
	}

	r.target = newRenderTarget(device, config.Format, options.depthOps != nil)
	if err := r.target.ensure(config.Width, config.Height); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("create render target: %w", err)
	}

	rects, err := newRectanglePass(device, queue, config.Format, options.depthOps != nil, options.maxRectangles)
	if err != nil {
		r.Destroy()
		return nil, err
	}
	r.rects = rects

	composite, err := newCompositePass(device, config.Format)
	if err != nil {
		r.Destroy()
		return nil, err
	}
	r.composite = composite

	if err := r.composite.rebind(r.target.colorView); err != nil {
		r.Destroy()
		return nil, err
	}

	Logger().Info("hui: renderer created",
		"width", config.Width, "height", config.Height,
		"format", config.Format, "max_rectangles", options.maxRectangles)
	return r, nil
}

// AddRectangle inserts a rectangle and returns its ID. Returns
// ErrRectangleCapacity once the fixed instance ceiling is reached.
func (r *Renderer) AddRectangle(rect Rectangle) (RectangleID, error) {
	return r.store.add(rect)
}

// Rectangle returns a mutable pointer to the rectangle with the given ID,
// or nil if the ID is stale. The pointer stays valid until the rectangle
// is removed or the renderer is destroyed.
//
// Because the caller may mutate through the pointer, the next frame
// re-encodes the full instance buffer even if nothing is written. Use
// PeekRectangle for read-only access.
func (r *Renderer) Rectangle(id RectangleID) *Rectangle {
	return r.store.get(id)
}

// PeekRectangle returns a copy of the rectangle with the given ID without
// marking anything dirty.
func (r *Renderer) PeekRectangle(id RectangleID) (Rectangle, bool) {
	return r.store.peek(id)
}

// RemoveRectangle deletes the rectangle with the given ID and returns the
// removed value. The ID is invalid forever afterward, even if its slot is
// reused.
func (r *Renderer) RemoveRectangle(id RectangleID) (Rectangle, bool) {
	return r.store.remove(id)
}

// Len returns the number of live rectangles.
func (r *Renderer) Len() int { return r.store.len() }

// Capacity returns the fixed instance ceiling.
func (r *Renderer) Capacity() int { return r.store.capacity() }

// Resize recreates the offscreen textures for the new surface dimensions
// and forces a redraw on the next frame. Zero dimensions are clamped to 1.
// A resize to the current dimensions is a no-op.
func (r *Renderer) Resize(width, height uint32) error {
	width = max(width, 1)
	height = max(height, 1)
	if width == r.config.Width && height == r.config.Height {
		return nil
	}

	if err := r.target.ensure(width, height); err != nil {
		return fmt.Errorf("resize render target: %w", err)
	}
	if err := r.composite.rebind(r.target.colorView); err != nil {
		return err
	}

	r.config.Width = width
	r.config.Height = height
	r.redrawRequired = true

	Logger().Info("hui: renderer resized", "width", width, "height", height)
	return nil
}

// Size returns the current surface dimensions.
func (r *Renderer) Size() (uint32, uint32) {
	return r.config.Width, r.config.Height
}

// Render records this frame's passes into the caller's command encoder.
// The encoder must be in the encoding state (BeginEncoding called);
// submission remains the caller's responsibility.
//
// Two passes are recorded:
//
//  1. Offscreen rectangle pass, only when something changed since the
//     last frame: color/depth operations follow the renderer's options,
//     then all live rectangles are drawn in one instanced call.
//  2. Composite pass, every frame: the offscreen texture is blitted onto
//     surfaceView with Load/Store, leaving other surface content intact.
func (r *Renderer) Render(encoder hal.CommandEncoder, surfaceView hal.TextureView) error {
	if surfaceView == nil {
		return ErrNilSurfaceView
	}

	if r.redrawRequired || r.store.dirty() != dirtyClean {
		// Queue writes must land before the pass is encoded. A failed
		// write leaves the store dirty, so the next Render retries.
		if err := r.rects.upload(r.store); err != nil {
			return err
		}

		desc := &hal.RenderPassDescriptor{
			Label: "hui_rect_pass",
			ColorAttachments: []hal.RenderPassColorAttachment{
				{
					View:       r.target.colorView,
					LoadOp:     r.opts.colorOps.Load,
					StoreOp:    r.opts.colorOps.Store,
					ClearValue: r.opts.colorOps.Clear,
				},
			},
		}
		if r.opts.depthOps != nil {
			desc.DepthStencilAttachment = &hal.RenderPassDepthStencilAttachment{
				View:            r.target.depthView,
				DepthLoadOp:     r.opts.depthOps.Load,
				DepthStoreOp:    r.opts.depthOps.Store,
				DepthClearValue: r.opts.depthOps.Clear,
			}
		}

		rp := encoder.BeginRenderPass(desc)
		r.rects.record(rp, r.store.len())
		rp.End()

		r.redrawRequired = false
	}

	// Composite runs unconditionally: the surface is transient, the
	// offscreen texture is not.
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "hui_composite_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:    surfaceView,
				LoadOp:  gputypes.LoadOpLoad,
				StoreOp: gputypes.StoreOpStore,
			},
		},
	})
	r.composite.record(rp)
	rp.End()

	return nil
}

// Destroy releases all GPU resources. Safe to call multiple times or on a
// partially constructed renderer.
func (r *Renderer) Destroy() {
	if r.composite != nil {
		r.composite.destroy()
		r.composite = nil
	}
	if r.rects != nil {
		r.rects.destroy()
		r.rects = nil
	}
	if r.target != nil {
		r.target.destroyTextures()
		r.target = nil
	}
}
