// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/imframe/window"
)

// PresentMode controls how acquired images are queued for display.
type PresentMode int

const (
	// PresentModeFifo waits for vertical blank. Always supported.
	PresentModeFifo PresentMode = iota
	// PresentModeFifoRelaxed is Fifo that tears when a frame is late.
	PresentModeFifoRelaxed
	// PresentModeMailbox replaces the queued image without tearing.
	PresentModeMailbox
	// PresentModeImmediate presents without waiting and may tear.
	PresentModeImmediate
)

// String returns the present mode name.
func (p PresentMode) String() string {
	switch p {
	case PresentModeFifo:
		return "Fifo"
	case PresentModeFifoRelaxed:
		return "FifoRelaxed"
	case PresentModeMailbox:
		return "Mailbox"
	case PresentModeImmediate:
		return "Immediate"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// AlphaMode controls how the compositor treats the alpha channel.
type AlphaMode int

const (
	// AlphaModeAuto lets the platform pick Opaque or Inherit.
	AlphaModeAuto AlphaMode = iota
	// AlphaModeOpaque ignores alpha.
	AlphaModeOpaque
	// AlphaModePremultiplied expects premultiplied color.
	AlphaModePremultiplied
	// AlphaModePostmultiplied expects straight color.
	AlphaModePostmultiplied
	// AlphaModeInherit uses the platform's native handling.
	AlphaModeInherit
)

// String returns the alpha mode name.
func (a AlphaMode) String() string {
	switch a {
	case AlphaModeAuto:
		return "Auto"
	case AlphaModeOpaque:
		return "Opaque"
	case AlphaModePremultiplied:
		return "Premultiplied"
	case AlphaModePostmultiplied:
		return "Postmultiplied"
	case AlphaModeInherit:
		return "Inherit"
	default:
		return fmt.Sprintf("Unknown(%d)", int(a))
	}
}

// Configuration is a complete surface configuration. It is replaced
// wholesale, never mutated in place.
type Configuration struct {
	Format      gputypes.TextureFormat
	Width       uint32
	Height      uint32
	PresentMode PresentMode
	AlphaMode   AlphaMode
}

// Size returns the configured size.
func (c Configuration) Size() window.Size {
	return window.Size{Width: c.Width, Height: c.Height}
}

// WithSize returns a copy of c sized for s.
func (c Configuration) WithSize(s window.Size) Configuration {
	c.Width = s.Width
	c.Height = s.Height
	return c
}

// String returns a compact description for logs.
func (c Configuration) String() string {
	return fmt.Sprintf("%dx%d format=%v present=%v alpha=%v",
		c.Width, c.Height, c.Format, c.PresentMode, c.AlphaMode)
}

// preferredFormats lists the formats the UI pipeline can render to, in
// order of preference.
var preferredFormats = []gputypes.TextureFormat{
	gputypes.TextureFormatBGRA8Unorm,
	gputypes.TextureFormatRGBA8Unorm,
	gputypes.TextureFormatBGRA8UnormSrgb,
	gputypes.TextureFormatRGBA8UnormSrgb,
}

// ChooseFormat picks the first preferred format the platform supports.
// It returns ErrNoCompatibleFormat when there is none; this is fatal at
// startup.
func ChooseFormat(supported []gputypes.TextureFormat) (gputypes.TextureFormat, error) {
	for _, want := range preferredFormats {
		for _, have := range supported {
			if have == want {
				return want, nil
			}
		}
	}
	return gputypes.TextureFormatUndefined, fmt.Errorf("%w: platform offers %v", ErrNoCompatibleFormat, supported)
}

// ChoosePresentMode returns Fifo when vsync is requested, otherwise the
// first of Mailbox, Immediate supported by the platform, falling back to
// Fifo.
func ChoosePresentMode(vsync bool, supported []PresentMode) PresentMode {
	if vsync {
		return PresentModeFifo
	}
	for _, want := range []PresentMode{PresentModeMailbox, PresentModeImmediate} {
		for _, have := range supported {
			if have == want {
				return want
			}
		}
	}
	return PresentModeFifo
}
