// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/imframe/surface"
	"github.com/gogpu/imframe/ui"
)

// Backend is the GPU device the Submitter records into.
//
// Geometry written with WriteGeometry is laid out list after list in one
// vertex and one index buffer; RenderPass.DrawIndexed addresses it with
// global offsets.
type Backend interface {
	// UploadFontAtlas replaces the font texture bound as ui.FontTexture.
	UploadFontAtlas(atlas *ui.FontAtlas) error

	// WriteGeometry uploads the vertices and indices of all lists.
	WriteGeometry(lists []ui.DrawList) error

	// WriteProjection uploads the display-to-clip-space matrix.
	WriteProjection(m Projection) error

	// CreateCommandEncoder starts recording a command buffer.
	CreateCommandEncoder(label string) (CommandEncoder, error)

	// Submit queues a finished command buffer for execution.
	Submit(cb CommandBuffer) error

	// Destroy releases all device resources owned by the backend.
	Destroy()
}

// CommandEncoder records one command buffer.
type CommandEncoder interface {
	// BeginRenderPass starts a pass on target that clears it to clear.
	// The pass has the UI pipeline, geometry and projection bound.
	BeginRenderPass(target surface.Image, clear gputypes.Color) (RenderPass, error)

	// Finish ends recording and returns the command buffer.
	Finish() (CommandBuffer, error)

	// Discard abandons the recording. It is a no-op after Finish.
	Discard()
}

// CommandBuffer is a finished recording ready for Backend.Submit.
type CommandBuffer interface {
	Label() string
}

// RenderPass records draw commands.
type RenderPass interface {
	SetViewport(x, y, width, height float32)
	SetScissorRect(r ScissorRect)
	SetTexture(id ui.TextureID) error
	DrawIndexed(indexCount, firstIndex uint32, baseVertex int32)
	End() error
}
