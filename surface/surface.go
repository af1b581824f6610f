// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "github.com/gogpu/gputypes"

// Target is the platform presentation surface.
//
// Implementations wrap a GPU surface (see backend/wgpu). Every error from
// Acquire is treated as a dropped frame by the Manager.
type Target interface {
	// Configure applies a complete configuration. It replaces any previous
	// configuration wholesale.
	Configure(cfg Configuration) error

	// Acquire returns the next presentable image.
	Acquire() (Image, error)

	// Present hands an acquired image back to the platform for display.
	Present(img Image) error

	// Discard hands an acquired image back without displaying it.
	Discard(img Image)

	// Release destroys the surface. It is called once.
	Release()
}

// Image is a presentable surface image. It is valid only within the tick
// that acquired it.
type Image interface {
	// Width returns the image width in pixels.
	Width() uint32

	// Height returns the image height in pixels.
	Height() uint32

	// Format returns the pixel format of the image view.
	Format() gputypes.TextureFormat
}
