// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/imframe"
	"github.com/gogpu/imframe/ui"
)

// projectionSize is the byte size of the projection uniform (mat4x4<f32>).
const projectionSize = 64

// uiVertexLayout matches VertexInput in ui.wgsl and the ui.Vertex layout:
//
//	location 0: position (vec2<f32>)
//	location 1: uv       (vec2<f32>)
//	location 2: color    (unorm8x4)
func uiVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: ui.VertexSize,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
				{Format: gputypes.VertexFormatUnorm8x4, Offset: 16, ShaderLocation: 2},
			},
		},
	}
}

// pipelineCache owns the UI shader, layouts and sampler, and one render
// pipeline per target format.
type pipelineCache struct {
	device hal.Device

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	sampler    hal.Sampler

	pipelines map[gputypes.TextureFormat]hal.RenderPipeline
}

func newPipelineCache(device hal.Device) (*pipelineCache, error) {
	c := &pipelineCache{device: device, pipelines: map[gputypes.TextureFormat]hal.RenderPipeline{}}
	if err := c.init(); err != nil {
		c.destroy()
		return nil, err
	}
	return c, nil
}

func (c *pipelineCache) init() error {
	code, err := compileShader(uiShaderWGSL)
	if err != nil {
		return err
	}
	shader, err := c.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "imframe_ui_shader",
		Source: hal.ShaderSource{SPIRV: code},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create UI shader: %w", err)
	}
	c.shader = shader

	// Binding 0: projection, 1: texture, 2: sampler.
	bindLayout, err := c.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "imframe_ui_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create UI bind group layout: %w", err)
	}
	c.bindLayout = bindLayout

	pipeLayout, err := c.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "imframe_ui_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{c.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create UI pipeline layout: %w", err)
	}
	c.pipeLayout = pipeLayout

	sampler, err := c.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "imframe_ui_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create UI sampler: %w", err)
	}
	c.sampler = sampler
	return nil
}

// forFormat returns the pipeline rendering to format, creating it on
// first use.
func (c *pipelineCache) forFormat(format gputypes.TextureFormat) (hal.RenderPipeline, error) {
	if p, ok := c.pipelines[format]; ok {
		return p, nil
	}

	premulBlend := gputypes.BlendStatePremultiplied()
	p, err := c.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  fmt.Sprintf("imframe_ui_pipeline_%v", format),
		Layout: c.pipeLayout,
		Vertex: hal.VertexState{
			Module:     c.shader,
			EntryPoint: "vs_main",
			Buffers:    uiVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     c.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    format,
					Blend:     &premulBlend,
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
		return nil, fmt.Errorf("wgpu: create UI pipeline for %v: %w", format, err)
	}
	c.pipelines[format] = p
	imframe.Logger().Debug("wgpu: UI pipeline created", "format", fmt.Sprint(format))
	return p, nil
}

// destroy releases all pipeline resources in reverse creation order.
func (c *pipelineCache) destroy() {
	for format, p := range c.pipelines {
		c.device.DestroyRenderPipeline(p)
		delete(c.pipelines, format)
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
