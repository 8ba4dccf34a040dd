package hui

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Embedded rectangle shader source.
//
//go:embed shaders/rect.wgsl
var rectShaderSource string

// ErrShaderSourceEmpty is returned when an embedded shader is missing
// (build-time issue).
var ErrShaderSourceEmpty = errors.New("hui: embedded shader source is empty")

// rectanglePass owns the instanced rectangle render pipeline and its
// buffers: the shared unit quad (vertex + index) and the instance buffer
// sized for the store's fixed capacity. All rectangle data rides in vertex
// attributes, so the pipeline has no bind groups.
type rectanglePass struct {
	device hal.Device
	queue  hal.Queue

	shader     hal.ShaderModule
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline

	quadBuf     hal.Buffer
	indexBuf    hal.Buffer
	instanceBuf hal.Buffer
}

// newRectanglePass creates the rectangle pipeline and buffers. format is
// the offscreen color target format; withDepth adds a Depth32Float depth
// state matching the renderer's depth attachment. capacity fixes the
// instance buffer size.
func newRectanglePass(
	device hal.Device, queue hal.Queue,
	format gputypes.TextureFormat, withDepth bool, capacity int,
) (*rectanglePass, error) {
	if rectShaderSource == "" {
		return nil, fmt.Errorf("rect shader: %w", ErrShaderSourceEmpty)
	}

	p := &rectanglePass{device: device, queue: queue}

	shader, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "rect_shader",
		Source: hal.ShaderSource{WGSL: rectShaderSource},
	})
	if err != nil {
		return nil, fmt.Errorf("compile rect shader: %w", err)
	}
	p.shader = shader

	pipeLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "rect_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{},
	})
	if err != nil {
		p.destroy()
		return nil, fmt.Errorf("create rect pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	blend := alphaOverBlend()

	desc := &hal.RenderPipelineDescriptor{
		Label:  "rect_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers: []gputypes.VertexBufferLayout{
				quadVertexLayout(),
				rectangleInstanceLayout(),
			},
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
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
	}
	if withDepth {
		desc.DepthStencil = &hal.DepthStencilState{
			Format:            gputypes.TextureFormatDepth32Float,
			DepthWriteEnabled: true,
			DepthCompare:      gputypes.CompareFunctionLess,
			StencilFront: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionAlways,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
			StencilBack: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionAlways,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
			StencilReadMask:  0x00,
			StencilWriteMask: 0x00,
		}
	}

	pipeline, err := device.CreateRenderPipeline(desc)
	if err != nil {
		p.destroy()
		return nil, fmt.Errorf("create rect pipeline: %w", err)
	}
	p.pipeline = pipeline

	quadBuf, err := createAndUploadBuffer(device, queue, "rect_quad_verts",
		quadVertexData(), gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		p.destroy()
		return nil, err
	}
	p.quadBuf = quadBuf

	indexBuf, err := createAndUploadBuffer(device, queue, "rect_quad_indices",
		quadIndexData(), gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
	if err != nil {
		p.destroy()
		return nil, err
	}
	p.indexBuf = indexBuf

	instanceBuf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "rect_instances",
		Size:  uint64(capacity) * rectangleStride,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		p.destroy()
		return nil, fmt.Errorf("create rect_instances: %w", err)
	}
	p.instanceBuf = instanceBuf

	Logger().Debug("hui: rectangle pipeline created",
		"format", format, "depth", withDepth, "capacity", capacity)
	return p, nil
}

// upload writes the store's staged instance bytes to the instance buffer
// if anything changed, and marks the store clean. Must be called before
// the render pass begins so the queue write lands ahead of the draw.
//
// On a failed write the store stays dirty, so the next frame retries the
// upload instead of drawing from stale instance data.
func (p *rectanglePass) upload(store *rectangleStore) error {
	if store.dirty() == dirtyClean {
		return nil
	}
	data := store.encode()
	if len(data) > 0 {
		if err := p.queue.WriteBuffer(p.instanceBuf, 0, data); err != nil {
			return fmt.Errorf("upload rect instances: %w", err)
		}
		Logger().Debug("hui: instance buffer uploaded", "bytes", len(data))
	}
	store.reset()
	return nil
}

// record encodes the instanced rectangle draw into an open render pass.
// No-op when the store is empty.
func (p *rectanglePass) record(rp hal.RenderPassEncoder, instanceCount int) {
	if instanceCount == 0 {
		return
	}
	rp.SetPipeline(p.pipeline)
	rp.SetVertexBuffer(0, p.quadBuf, 0)
	rp.SetVertexBuffer(1, p.instanceBuf, 0)
	rp.SetIndexBuffer(p.indexBuf, gputypes.IndexFormatUint16, 0)
	rp.DrawIndexed(quadIndexCount, uint32(instanceCount), 0, 0, 0) //nolint:gosec // instanceCount bounded by store capacity
}

// destroy releases all GPU resources in reverse creation order. Safe to
// call multiple times or on a partially constructed pass.
func (p *rectanglePass) destroy() {
	if p.device == nil {
		return
	}
	if p.instanceBuf != nil {
		p.device.DestroyBuffer(p.instanceBuf)
		p.instanceBuf = nil
	}
	if p.indexBuf != nil {
		p.device.DestroyBuffer(p.indexBuf)
		p.indexBuf = nil
	}
	if p.quadBuf != nil {
		p.device.DestroyBuffer(p.quadBuf)
		p.quadBuf = nil
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// alphaOverBlend returns the alpha-over blend state for straight-alpha
// colors. Both the rectangle pipeline and the composite pipeline use it,
// so transparent offscreen texels leave previously loaded surface content
// intact.
func alphaOverBlend() gputypes.BlendState {
	return gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorSrcAlpha,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
	}
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func createAndUploadBuffer(
	device hal.Device, queue hal.Queue,
	label string, data []byte, usage gputypes.BufferUsage,
) (hal.Buffer, error) {
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	if err := queue.WriteBuffer(buf, 0, data); err != nil {
		device.DestroyBuffer(buf)
		return nil, fmt.Errorf("upload %s: %w", label, err)
	}
	return buf, nil
}
