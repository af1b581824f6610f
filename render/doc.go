// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render turns UI FrameCommands into GPU work.
//
// A Submitter records exactly one command buffer per frame into a Backend:
//
//  1. upload the font atlas, when it changed
//  2. upload the frame's vertices, indices and projection
//  3. begin a render pass that clears the target to the clear color
//  4. draw every batch in the order the UI toolkit emitted it, each with
//     its scissor rectangle in framebuffer pixels
//  5. end the pass, finish the encoder and submit
//
// Any failure aborts the frame: the encoder is discarded, nothing is
// submitted, and the error is returned as a *RenderError. The caller must
// not present the target after a failed Submit.
//
// # Backends
//
// Backend is the GPU collaborator. The backend/wgpu package implements it
// on top of github.com/gogpu/wgpu/hal. Hosts that already own a device can
// hand it over as a DeviceHandle.
package render
