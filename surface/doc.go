// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface owns the presentation surface configuration.
//
// Manager sits between the frame driver and a platform Target (a WebGPU
// surface in production, a stub in tests). It guarantees that the stored
// Configuration always matches the last observed window size before an
// image is acquired, and classifies acquisition failures:
//
//   - ErrDropped: the platform could not produce an image this tick
//     (surface lost, outdated, timeout). Transient; skip the tick.
//   - ErrSuspended / ErrInvalidSize: the window has a zero dimension
//     (minimized). Nothing is configured or acquired until a valid size.
//   - ErrStaleConfiguration: the configuration no longer matches the
//     window. Diagnosed instead of presenting stretched output.
//
// # Usage
//
//	m := surface.NewManager(target, surface.Configuration{
//	    Format:      gputypes.TextureFormatBGRA8Unorm,
//	    PresentMode: surface.PresentModeFifo,
//	    AlphaMode:   surface.AlphaModeOpaque,
//	})
//	if _, err := m.Configure(window.Size{Width: 800, Height: 600}); err != nil {
//	    return err
//	}
//
//	img, err := m.Acquire()
//	if errors.Is(err, surface.ErrDropped) {
//	    return nil // skip this tick
//	}
//	// ... render into img ...
//	return m.Present(img)
//
// # Thread Safety
//
// Manager is NOT safe for concurrent use. It is owned by the frame driver.
package surface
