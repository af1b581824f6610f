// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/imframe"
	"github.com/gogpu/imframe/surface"
)

var errNotConfigured = errors.New("wgpu: surface not configured")

// Surface is a HAL presentation surface. It implements surface.Target.
type Surface struct {
	device  *Device
	surface hal.Surface
	caps    *hal.SurfaceCapabilities
	config  surface.Configuration

	configured bool
	released   bool
}

var _ surface.Target = (*Surface)(nil)

// NewSurface creates a surface for a native window. display and window
// are the platform handles (for example the X11 display and window, or 0
// and the HWND on Windows).
func (d *Device) NewSurface(display, window uintptr) (*Surface, error) {
	if d.instance == nil || d.adapter == nil {
		return nil, ErrNoInstance
	}
	s, err := d.instance.CreateSurface(display, window)
	if err != nil {
		return nil, fmt.Errorf("wgpu: create surface: %w", err)
	}
	return &Surface{device: d, surface: s, caps: d.adapter.SurfaceCapabilities(s)}, nil
}

// Formats returns the formats the adapter can present to this surface.
func (s *Surface) Formats() []gputypes.TextureFormat {
	if s.caps == nil {
		return nil
	}
	return s.caps.Formats
}

// PresentModes returns the present modes the adapter supports for this
// surface.
func (s *Surface) PresentModes() []surface.PresentMode {
	if s.caps == nil {
		return []surface.PresentMode{surface.PresentModeFifo}
	}
	modes := make([]surface.PresentMode, 0, len(s.caps.PresentModes))
	for _, m := range s.caps.PresentModes {
		if pm, ok := presentModeFromHAL(m); ok {
			modes = append(modes, pm)
		}
	}
	return modes
}

// Configure implements surface.Target.
func (s *Surface) Configure(cfg surface.Configuration) error {
	if s.released {
		return surface.ErrReleased
	}
	err := s.surface.Configure(s.device.device, &hal.SurfaceConfiguration{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Format:      cfg.Format,
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: presentModeToHAL(cfg.PresentMode),
		AlphaMode:   alphaModeToHAL(cfg.AlphaMode),
	})
	if err != nil {
		s.configured = false
		return err
	}
	s.config = cfg
	s.configured = true
	s.device.format = cfg.Format
	return nil
}

// Acquire implements surface.Target.
func (s *Surface) Acquire() (surface.Image, error) {
	if !s.configured {
		return nil, errNotConfigured
	}
	acquired, err := s.surface.AcquireTexture(nil)
	if err != nil {
		return nil, err
	}
	if acquired.Suboptimal {
		imframe.Logger().Debug("wgpu: suboptimal surface image", "config", s.config.String())
	}
	view, err := createView(s.device.device, "imframe_surface_view", acquired.Texture, s.config.Format)
	if err != nil {
		s.surface.DiscardTexture(acquired.Texture)
		return nil, err
	}
	return &surfaceImage{
		texture: acquired.Texture,
		view:    view,
		width:   s.config.Width,
		height:  s.config.Height,
		format:  s.config.Format,
	}, nil
}

// Present implements surface.Target.
func (s *Surface) Present(img surface.Image) error {
	si, ok := img.(*surfaceImage)
	if !ok {
		return fmt.Errorf("%w: %T", ErrForeignImage, img)
	}
	s.device.device.DestroyTextureView(si.view)
	return s.device.queue.Present(s.surface, si.texture, nil)
}

// Discard implements surface.Target.
func (s *Surface) Discard(img surface.Image) {
	si, ok := img.(*surfaceImage)
	if !ok {
		return
	}
	s.device.device.DestroyTextureView(si.view)
	s.surface.DiscardTexture(si.texture)
}

// Release implements surface.Target.
func (s *Surface) Release() {
	if s.released {
		return
	}
	s.released = true
	if s.configured {
		s.surface.Unconfigure(s.device.device)
	}
	s.surface.Destroy()
}

type surfaceImage struct {
	texture       hal.SurfaceTexture
	view          hal.TextureView
	width, height uint32
	format        gputypes.TextureFormat
}

func (i *surfaceImage) Width() uint32                  { return i.width }
func (i *surfaceImage) Height() uint32                 { return i.height }
func (i *surfaceImage) Format() gputypes.TextureFormat { return i.format }
func (i *surfaceImage) renderView() hal.TextureView    { return i.view }

func presentModeToHAL(m surface.PresentMode) hal.PresentMode {
	switch m {
	case surface.PresentModeFifoRelaxed:
		return hal.PresentModeFifoRelaxed
	case surface.PresentModeMailbox:
		return hal.PresentModeMailbox
	case surface.PresentModeImmediate:
		return hal.PresentModeImmediate
	default:
		return hal.PresentModeFifo
	}
}

func presentModeFromHAL(m hal.PresentMode) (surface.PresentMode, bool) {
	switch m {
	case hal.PresentModeFifo:
		return surface.PresentModeFifo, true
	case hal.PresentModeFifoRelaxed:
		return surface.PresentModeFifoRelaxed, true
	case hal.PresentModeMailbox:
		return surface.PresentModeMailbox, true
	case hal.PresentModeImmediate:
		return surface.PresentModeImmediate, true
	}
	return 0, false
}

func alphaModeToHAL(a surface.AlphaMode) hal.CompositeAlphaMode {
	switch a {
	case surface.AlphaModePremultiplied:
		return hal.CompositeAlphaModePremultiplied
	case surface.AlphaModePostmultiplied:
		return hal.CompositeAlphaModeUnpremultiplied
	case surface.AlphaModeInherit:
		return hal.CompositeAlphaModeInherit
	default:
		return hal.CompositeAlphaModeOpaque
	}
}
