// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/imframe"
	"github.com/gogpu/imframe/render"
	"github.com/gogpu/imframe/surface"
	"github.com/gogpu/imframe/ui"
)

// Backend errors.
var (
	// ErrUnknownTexture is returned by RenderPass.SetTexture for a texture
	// id that was never uploaded.
	ErrUnknownTexture = errors.New("wgpu: unknown texture")

	// ErrForeignImage is returned by BeginRenderPass for an image not
	// produced by this package.
	ErrForeignImage = errors.New("wgpu: image is not a wgpu render target")

	// ErrForeignCommandBuffer is returned by Submit for a command buffer
	// not produced by this backend.
	ErrForeignCommandBuffer = errors.New("wgpu: foreign command buffer")

	// ErrGPUTimeout is returned by Submit when the GPU did not finish the
	// frame within SubmitTimeout.
	ErrGPUTimeout = errors.New("wgpu: timed out waiting for GPU")

	// ErrDestroyed is returned after Destroy.
	ErrDestroyed = errors.New("wgpu: backend destroyed")
)

// SubmitTimeout bounds the wait for a submitted frame.
const SubmitTimeout = 5 * time.Second

// completionPoll is the interval between completion checks while waiting
// for a submission.
const completionPoll = 100 * time.Microsecond

// renderTarget is a surface.Image this package can render to.
type renderTarget interface {
	surface.Image
	renderView() hal.TextureView
}

// Backend implements render.Backend on a HAL device.
type Backend struct {
	device hal.Device
	queue  hal.Queue

	pipelines  *pipelineCache
	vertices   dynamicBuffer
	indices    dynamicBuffer
	projection hal.Buffer

	textures map[ui.TextureID]*boundTexture

	// submission is the index of the last submitted frame.
	submission uint64

	destroyed bool
}

var _ render.Backend = (*Backend)(nil)

// NewBackend creates the UI pipeline resources on d.
func NewBackend(d *Device) (*Backend, error) {
	b := &Backend{
		device:   d.device,
		queue:    d.queue,
		vertices: dynamicBuffer{label: "imframe_vertices", usage: gputypes.BufferUsageVertex},
		indices:  dynamicBuffer{label: "imframe_indices", usage: gputypes.BufferUsageIndex},
		textures: map[ui.TextureID]*boundTexture{},
	}

	pipelines, err := newPipelineCache(b.device)
	if err != nil {
		return nil, err
	}
	b.pipelines = pipelines

	b.projection, err = b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "imframe_projection",
		Size:  projectionSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		b.Destroy()
		return nil, fmt.Errorf("wgpu: create projection buffer: %w", err)
	}
	return b, nil
}

// UploadFontAtlas implements render.Backend. A texture of the same size is
// rewritten in place; otherwise it is recreated with a new bind group.
func (b *Backend) UploadFontAtlas(atlas *ui.FontAtlas) error {
	return b.UploadTexture(ui.FontTexture, uint32(atlas.Width), uint32(atlas.Height), atlas.Pixels) //nolint:gosec // validated by the submitter
}

// UploadTexture creates or updates the RGBA8 texture bound as id. pixels
// holds width*height*4 bytes.
func (b *Backend) UploadTexture(id ui.TextureID, width, height uint32, pixels []byte) error {
	if b.destroyed {
		return ErrDestroyed
	}
	if width == 0 || height == 0 || len(pixels) != int(width)*int(height)*4 {
		return fmt.Errorf("wgpu: texture %d: %dx%d with %d bytes", id, width, height, len(pixels))
	}

	t := b.textures[id]
	if t == nil || t.width != width || t.height != height {
		nt, err := b.createBoundTexture(id, width, height)
		if err != nil {
			return err
		}
		if t != nil {
			t.destroy(b.device)
		}
		b.textures[id] = nt
		t = nt
	}
	return writeRGBA(b.queue, t.texture, width, height, pixels)
}

func (b *Backend) createBoundTexture(id ui.TextureID, width, height uint32) (*boundTexture, error) {
	label := fmt.Sprintf("imframe_texture_%d", id)
	tex, view, err := createTexture(b.device, label, width, height,
		gputypes.TextureUsageTextureBinding|gputypes.TextureUsageCopyDst, gputypes.TextureFormatRGBA8Unorm)
	if err != nil {
		return nil, err
	}

	group, err := b.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  label + "_bind",
		Layout: b.pipelines.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: b.projection.NativeHandle(), Offset: 0, Size: projectionSize,
			}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{TextureView: view.NativeHandle()}},
			{Binding: 2, Resource: gputypes.SamplerBinding{Sampler: b.pipelines.sampler.NativeHandle()}},
		},
	})
	if err != nil {
		b.device.DestroyTextureView(view)
		b.device.DestroyTexture(tex)
		return nil, fmt.Errorf("wgpu: create bind group for texture %d: %w", id, err)
	}
	return &boundTexture{width: width, height: height, texture: tex, view: view, group: group}, nil
}

// WriteGeometry implements render.Backend.
func (b *Backend) WriteGeometry(lists []ui.DrawList) error {
	if b.destroyed {
		return ErrDestroyed
	}
	vertices, indices := packGeometry(lists)
	if err := b.vertices.write(b.device, b.queue, vertices); err != nil {
		return err
	}
	return b.indices.write(b.device, b.queue, indices)
}

// WriteProjection implements render.Backend.
func (b *Backend) WriteProjection(m render.Projection) error {
	if b.destroyed {
		return ErrDestroyed
	}
	if err := b.queue.WriteBuffer(b.projection, 0, packProjection(m)); err != nil {
		return fmt.Errorf("wgpu: write projection: %w", err)
	}
	return nil
}

// CreateCommandEncoder implements render.Backend.
func (b *Backend) CreateCommandEncoder(label string) (render.CommandEncoder, error) {
	if b.destroyed {
		return nil, ErrDestroyed
	}
	enc, err := b.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: label})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create command encoder: %w", err)
	}
	if err := enc.BeginEncoding(label); err != nil {
		return nil, fmt.Errorf("wgpu: begin encoding: %w", err)
	}
	return &commandEncoder{backend: b, encoder: enc, label: label}, nil
}

// Submit implements render.Backend. It waits until the queue reports the
// frame as completed, so buffers rewritten next frame are no longer in use.
func (b *Backend) Submit(cb render.CommandBuffer) error {
	if b.destroyed {
		return ErrDestroyed
	}
	c, ok := cb.(*commandBuffer)
	if !ok || c.backend != b {
		return ErrForeignCommandBuffer
	}
	defer b.device.FreeCommandBuffer(c.buf)

	index, err := b.queue.Submit([]hal.CommandBuffer{c.buf})
	if err != nil {
		return fmt.Errorf("wgpu: submit %s: %w", c.label, err)
	}
	b.submission = index
	if err := b.wait(index); err != nil {
		return fmt.Errorf("%w: %s", err, c.label)
	}
	return nil
}

// wait blocks until the queue reports submission index as completed.
func (b *Backend) wait(index uint64) error {
	deadline := time.Now().Add(SubmitTimeout)
	for b.queue.PollCompleted() < index {
		if time.Now().After(deadline) {
			return ErrGPUTimeout
		}
		time.Sleep(completionPoll)
	}
	return nil
}

// Destroy implements render.Backend. It is safe to call more than once.
func (b *Backend) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true

	for id, t := range b.textures {
		t.destroy(b.device)
		delete(b.textures, id)
	}
	b.vertices.destroy(b.device)
	b.indices.destroy(b.device)
	if b.projection != nil {
		b.device.DestroyBuffer(b.projection)
		b.projection = nil
	}
	if b.pipelines != nil {
		b.pipelines.destroy()
	}
	imframe.Logger().Debug("wgpu: backend destroyed")
}
