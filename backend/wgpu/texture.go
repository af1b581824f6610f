// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// boundTexture is a sampled texture with its bind group.
type boundTexture struct {
	width, height uint32
	texture       hal.Texture
	view          hal.TextureView
	group         hal.BindGroup
}

func (t *boundTexture) destroy(device hal.Device) {
	if t.group != nil {
		device.DestroyBindGroup(t.group)
	}
	if t.view != nil {
		device.DestroyTextureView(t.view)
	}
	if t.texture != nil {
		device.DestroyTexture(t.texture)
	}
}

// createTexture allocates an RGBA8 texture and its view.
func createTexture(device hal.Device, label string, width, height uint32, usage gputypes.TextureUsage, format gputypes.TextureFormat) (hal.Texture, hal.TextureView, error) {
	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         usage,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("wgpu: create texture %s: %w", label, err)
	}
	view, err := createView(device, label+"_view", tex, format)
	if err != nil {
		device.DestroyTexture(tex)
		return nil, nil, err
	}
	return tex, view, nil
}

func createView(device hal.Device, label string, tex hal.Texture, format gputypes.TextureFormat) (hal.TextureView, error) {
	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label,
		Format:        format,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create view %s: %w", label, err)
	}
	return view, nil
}

// writeRGBA uploads tightly packed RGBA8 pixels to the whole texture.
func writeRGBA(queue hal.Queue, tex hal.Texture, width, height uint32, pixels []byte) error {
	err := queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		pixels,
		&hal.ImageDataLayout{Offset: 0, BytesPerRow: width * 4, RowsPerImage: height},
		&hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
	)
	if err != nil {
		return fmt.Errorf("wgpu: write texture %dx%d: %w", width, height, err)
	}
	return nil
}

// Offscreen is a texture-backed render target. It implements
// surface.Image and can be rendered to by Backend.
type Offscreen struct {
	device  hal.Device
	width   uint32
	height  uint32
	format  gputypes.TextureFormat
	texture hal.Texture
	view    hal.TextureView
}

// NewOffscreen creates a width by height render target.
func NewOffscreen(d *Device, width, height uint32, format gputypes.TextureFormat) (*Offscreen, error) {
	tex, view, err := createTexture(d.device, "imframe_offscreen", width, height,
		gputypes.TextureUsageRenderAttachment|gputypes.TextureUsageCopySrc, format)
	if err != nil {
		return nil, err
	}
	return &Offscreen{device: d.device, width: width, height: height, format: format, texture: tex, view: view}, nil
}

func (o *Offscreen) Width() uint32                  { return o.width }
func (o *Offscreen) Height() uint32                 { return o.height }
func (o *Offscreen) Format() gputypes.TextureFormat { return o.format }

func (o *Offscreen) renderView() hal.TextureView { return o.view }

// Destroy releases the texture.
func (o *Offscreen) Destroy() {
	if o.view != nil {
		o.device.DestroyTextureView(o.view)
		o.view = nil
	}
	if o.texture != nil {
		o.device.DestroyTexture(o.texture)
		o.texture = nil
	}
}
