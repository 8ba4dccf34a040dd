package hui

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Embedded composite shader source.
//
//go:embed shaders/composite.wgsl
var compositeShaderSource string

// compositePass blits the offscreen color texture onto the surface with a
// single full-screen triangle. The bind group references the offscreen
// view directly, so it must be recreated (rebind) whenever the offscreen
// texture is recreated on resize.
type compositePass struct {
	device hal.Device

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline
	sampler    hal.Sampler

	bindGroup hal.BindGroup
}

// newCompositePass creates the composite pipeline and sampler. The bind
// group is not created until rebind is called with the offscreen view.
func newCompositePass(device hal.Device, format gputypes.TextureFormat) (*compositePass, error) {
	if compositeShaderSource == "" {
		return nil, fmt.Errorf("composite shader: %w", ErrShaderSourceEmpty)
	}

	c := &compositePass{device: device}

	shader, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "composite_shader",
		Source: hal.ShaderSource{WGSL: compositeShaderSource},
	})
	if err != nil {
		return nil, fmt.Errorf("compile composite shader: %w", err)
	}
	c.shader = shader

	// Bind group layout:
	//   Binding 0: offscreen color texture (texture_2d, fragment)
	//   Binding 1: sampler (fragment)
	bindLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "composite_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		c.destroy()
		return nil, fmt.Errorf("create composite bind layout: %w", err)
	}
	c.bindLayout = bindLayout

	pipeLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "composite_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{c.bindLayout},
	})
	if err != nil {
		c.destroy()
		return nil, fmt.Errorf("create composite pipeline layout: %w", err)
	}
	c.pipeLayout = pipeLayout

	// Nearest sampling: the offscreen texture always matches the surface
	// size, so the blit is 1:1.
	sampler, err := device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "composite_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeNearest,
		MinFilter:    gputypes.FilterModeNearest,
		MipmapFilter: gputypes.FilterModeNearest,
	})
	if err != nil {
		c.destroy()
		return nil, fmt.Errorf("create composite sampler: %w", err)
	}
	c.sampler = sampler

	// Alpha-over onto the surface: transparent offscreen texels must not
	// clobber surface content loaded with LoadOpLoad.
	blend := alphaOverBlend()

	pipeline, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "composite_pipeline",
		Layout: c.pipeLayout,
		Vertex: hal.VertexState{
			Module:     c.shader,
			EntryPoint: "vs_main",
			Buffers:    []gputypes.VertexBufferLayout{},
		},
		Fragment: &hal.FragmentState{
			Module:     c.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    format,
					Blend:     &blend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		c.destroy()
		return nil, fmt.Errorf("create composite pipeline: %w", err)
	}
	c.pipeline = pipeline

	Logger().Debug("hui: composite pipeline created", "format", format)
	return c, nil
}

// rebind recreates the bind group against a new offscreen color view.
// Called at creation and after every resize.
func (c *compositePass) rebind(offscreenView hal.TextureView) error {
	if c.bindGroup != nil {
		c.device.DestroyBindGroup(c.bindGroup)
		c.bindGroup = nil
	}

	bindGroup, err := c.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "composite_bind",
		Layout: c.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.TextureViewBinding{
				TextureView: offscreenView.NativeHandle(),
			}},
			{Binding: 1, Resource: gputypes.SamplerBinding{
				Sampler: c.sampler.NativeHandle(),
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("create composite bind group: %w", err)
	}
	c.bindGroup = bindGroup
	return nil
}

// record encodes the full-screen blit into an open render pass.
func (c *compositePass) record(rp hal.RenderPassEncoder) {
	rp.SetPipeline(c.pipeline)
	rp.SetBindGroup(0, c.bindGroup, nil)
	rp.Draw(3, 1, 0, 0)
}

// destroy releases all GPU resources in reverse creation order. Safe to
// call multiple times or on a partially constructed pass.
func (c *compositePass) destroy() {
	if c.device == nil {
		return
	}
	if c.bindGroup != nil {
		c.device.DestroyBindGroup(c.bindGroup)
		c.bindGroup = nil
	}
	if c.pipeline != nil {
		c.device.DestroyRenderPipeline(c.pipeline)
		c.pipeline = nil
	}
	if c.sampler != nil {
		c.device.DestroySampler(c.sampler)
		c.sampler = nil
	}
	if c.pipeLayout != nil {
		c.device.DestroyPipelineLayout(c.pipeLayout)
		c.pipeLayout = nil
	}
	if c.bindLayout != nil {
		c.device.DestroyBindGroupLayout(c.bindLayout)
		c.bindLayout = nil
	}
	if c.shader != nil {
		c.device.DestroyShaderModule(c.shader)
		c.shader = nil
	}
}
