// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/imframe/render"
	"github.com/gogpu/imframe/surface"
	"github.com/gogpu/imframe/ui"
)

var errEncoderDone = errors.New("wgpu: encoder already finished or discarded")

type commandEncoder struct {
	backend *Backend
	encoder hal.CommandEncoder
	label   string
	done    bool
}

// BeginRenderPass starts a pass on target with the UI pipeline, geometry
// and projection bound.
func (e *commandEncoder) BeginRenderPass(target surface.Image, clear gputypes.Color) (render.RenderPass, error) {
	if e.done {
		return nil, errEncoderDone
	}
	rt, ok := target.(renderTarget)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrForeignImage, target)
	}
	pipeline, err := e.backend.pipelines.forFormat(rt.Format())
	if err != nil {
		return nil, err
	}

	rp := e.encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: e.label + "_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       rt.renderView(),
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: clear,
		}},
	})
	rp.SetPipeline(pipeline)
	if e.backend.vertices.buf != nil {
		rp.SetVertexBuffer(0, e.backend.vertices.buf, 0)
	}
	if e.backend.indices.buf != nil {
		rp.SetIndexBuffer(e.backend.indices.buf, gputypes.IndexFormatUint16, 0)
	}
	return &renderPass{backend: e.backend, pass: rp}, nil
}

func (e *commandEncoder) Finish() (render.CommandBuffer, error) {
	if e.done {
		return nil, errEncoderDone
	}
	e.done = true
	buf, err := e.encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("wgpu: end encoding %s: %w", e.label, err)
	}
	return &commandBuffer{backend: e.backend, buf: buf, label: e.label}, nil
}

func (e *commandEncoder) Discard() {
	if e.done {
		return
	}
	e.done = true
	e.encoder.DiscardEncoding()
}

type commandBuffer struct {
	backend *Backend
	buf     hal.CommandBuffer
	label   string
}

func (c *commandBuffer) Label() string { return c.label }

type renderPass struct {
	backend *Backend
	pass    hal.RenderPassEncoder
	ended   bool
}

func (p *renderPass) SetViewport(x, y, width, height float32) {
	p.pass.SetViewport(x, y, width, height, 0, 1)
}

func (p *renderPass) SetScissorRect(r render.ScissorRect) {
	p.pass.SetScissorRect(r.X, r.Y, r.Width, r.Height)
}

func (p *renderPass) SetTexture(id ui.TextureID) error {
	t, ok := p.backend.textures[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTexture, id)
	}
	p.pass.SetBindGroup(0, t.group, nil)
	return nil
}

func (p *renderPass) DrawIndexed(indexCount, firstIndex uint32, baseVertex int32) {
	p.pass.DrawIndexed(indexCount, 1, firstIndex, baseVertex, 0)
}

func (p *renderPass) End() error {
	if p.ended {
		return nil
	}
	p.ended = true
	p.pass.End()
	return nil
}
