// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu renders UI frames with the gogpu HAL.
//
// The package provides three pieces that plug into the frame driver:
//
//   - Device opens (or borrows) a HAL device and queue. It implements
//     io.Closer, render.HalProvider and gpucontext.DeviceProvider, so it
//     can be shared with other gogpu libraries.
//   - Surface wraps a HAL presentation surface and implements
//     surface.Target.
//   - Backend implements render.Backend: one textured, premultiplied-alpha
//     triangle pipeline per target format, growable vertex and index
//     buffers, a projection uniform and one bind group per texture.
//
// The UI shader is written in WGSL and compiled to SPIR-V with naga when
// the pipeline is first needed.
//
// # Offscreen rendering
//
// NewOffscreen creates a texture-backed surface.Image. It can be passed to
// Submitter.Submit in place of a surface image, which is how the tests in
// this package drive the backend on the noop HAL.
package wgpu
