package hui

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// renderTarget owns the offscreen textures the rectangle pass draws into:
// a color texture in the surface format (sampled by the composite pass)
// and, when depth is enabled, a Depth32Float depth texture.
type renderTarget struct {
	device hal.Device

	colorTex  hal.Texture
	colorView hal.TextureView

	depthTex  hal.Texture
	depthView hal.TextureView

	format    gputypes.TextureFormat
	withDepth bool

	width, height uint32
}

// newRenderTarget creates a target with no textures allocated; call
// ensure with the surface dimensions before rendering.
func newRenderTarget(device hal.Device, format gputypes.TextureFormat, withDepth bool) *renderTarget {
	return &renderTarget{
		device:    device,
		format:    format,
		withDepth: withDepth,
	}
}

// ensure creates or recreates the textures if the requested dimensions
// differ from the current size. If dimensions match, this is a no-op.
// On resize, existing textures are destroyed before creating new ones.
// Partially created resources are cleaned up on error.
func (rt *renderTarget) ensure(width, height uint32) error {
	if rt.width == width && rt.height == height && rt.colorTex != nil {
		return nil
	}

	rt.destroyTextures()

	size := hal.Extent3D{
		Width:              width,
		Height:             height,
		DepthOrArrayLayers: 1,
	}

	// Offscreen color texture: rendered by the rectangle pass, sampled by
	// the composite pass.
	colorTex, err := rt.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "hui_offscreen_color",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        rt.format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageTextureBinding,
	})
	if err != nil {
		return fmt.Errorf("create offscreen color texture: %w", err)
	}
	rt.colorTex = colorTex

	colorView, err := rt.device.CreateTextureView(colorTex, &hal.TextureViewDescriptor{
		Label:         "hui_offscreen_color_view",
		Format:        rt.format,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		rt.destroyTextures()
		return fmt.Errorf("create offscreen color view: %w", err)
	}
	rt.colorView = colorView

	if rt.withDepth {
		depthTex, err := rt.device.CreateTexture(&hal.TextureDescriptor{
			Label:         "hui_offscreen_depth",
			Size:          size,
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     gputypes.TextureDimension2D,
			Format:        gputypes.TextureFormatDepth32Float,
			Usage:         gputypes.TextureUsageRenderAttachment,
		})
		if err != nil {
			rt.destroyTextures()
			return fmt.Errorf("create offscreen depth texture: %w", err)
		}
		rt.depthTex = depthTex

		depthView, err := rt.device.CreateTextureView(depthTex, &hal.TextureViewDescriptor{
			Label:         "hui_offscreen_depth_view",
			Format:        gputypes.TextureFormatDepth32Float,
			Dimension:     gputypes.TextureViewDimension2D,
			Aspect:        gputypes.TextureAspectAll,
			MipLevelCount: 1,
		})
		if err != nil {
			rt.destroyTextures()
			return fmt.Errorf("create offscreen depth view: %w", err)
		}
		rt.depthView = depthView
	}

	rt.width = width
	rt.height = height
	return nil
}

// destroyTextures releases all texture views and textures, resetting
// dimensions to zero. Each resource is nil-checked to support partial
// cleanup.
func (rt *renderTarget) destroyTextures() {
	if rt.depthView != nil {
		rt.device.DestroyTextureView(rt.depthView)
		rt.depthView = nil
	}
	if rt.depthTex != nil {
		rt.device.DestroyTexture(rt.depthTex)
		rt.depthTex = nil
	}
	if rt.colorView != nil {
		rt.device.DestroyTextureView(rt.colorView)
		rt.colorView = nil
	}
	if rt.colorTex != nil {
		rt.device.DestroyTexture(rt.colorTex)
		rt.colorTex = nil
	}
	rt.width = 0
	rt.height = 0
}

// size returns the current texture dimensions. Returns (0, 0) if textures
// have not been allocated.
func (rt *renderTarget) size() (uint32, uint32) {
	return rt.width, rt.height
}
