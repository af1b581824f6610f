// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ui

import "github.com/gogpu/imframe/window"

// TextureID identifies a texture referenced by a DrawBatch.
type TextureID uint64

// FontTexture is the texture id the session assigns to the font atlas.
const FontTexture TextureID = 1

// Vertex is one UI vertex. The layout matches the toolkit's vertex buffer:
// position, texture coordinate, packed RGBA8 color.
type Vertex struct {
	Pos [2]float32
	UV  [2]float32
	Col uint32
}

// VertexSize is the size of Vertex in bytes.
const VertexSize = 20

// Rect is an axis-aligned rectangle in display coordinates.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.MaxX <= r.MinX || r.MaxY <= r.MinY }

// DrawBatch is a run of indexed triangles sharing a clip rectangle and a
// texture.
type DrawBatch struct {
	// ClipRect is the scissor rectangle in display coordinates.
	ClipRect Rect
	// Texture is the texture sampled by the batch.
	Texture TextureID
	// IndexOffset is the first index of the batch in its list.
	IndexOffset uint32
	// ElementCount is the number of indices drawn.
	ElementCount uint32
	// VertexOffset is added to every index of the batch.
	VertexOffset uint32
}

// DrawList is one toolkit draw list. Batches are kept in emission order.
type DrawList struct {
	Vertices []Vertex
	Indices  []uint16
	Batches  []DrawBatch
}

// FontAtlas is an RGBA8 font texture produced by the toolkit.
type FontAtlas struct {
	Width, Height int
	// Pixels holds Width*Height*4 bytes, row-major, no padding.
	Pixels []byte
	// Scale is the content scale the atlas was rasterized for.
	Scale float64
}

// Valid reports whether the pixel slice matches the dimensions.
func (a *FontAtlas) Valid() bool {
	return a != nil && a.Width > 0 && a.Height > 0 && len(a.Pixels) == a.Width*a.Height*4
}

// FrameCommands is the draw output of one frame.
//
// FrameCommands is single-use: the renderer calls Consume before reading it
// and a second Consume fails with ErrCommandsConsumed.
type FrameCommands struct {
	// Frame is the index of the frame that produced the commands.
	Frame uint64

	// Lists are the draw lists in the order the toolkit emitted them.
	Lists []DrawList

	// DisplayPos and DisplaySize describe the visible area in display
	// (logical) coordinates.
	DisplayPos  [2]float32
	DisplaySize [2]float32

	// FramebufferScale converts display coordinates to framebuffer pixels.
	FramebufferScale [2]float32

	// Cursor is the cursor shape the toolkit requests.
	Cursor window.Cursor

	// FontAtlas is set when the font texture changed and must be uploaded
	// before drawing.
	FontAtlas *FontAtlas

	consumed bool
}

// Consume marks the commands as used.
func (c *FrameCommands) Consume() error {
	if c.consumed {
		return ErrCommandsConsumed
	}
	c.consumed = true
	return nil
}

// Consumed reports whether Consume has been called.
func (c *FrameCommands) Consumed() bool { return c.consumed }

// Counts returns the total number of vertices and indices over all lists.
func (c *FrameCommands) Counts() (vertices, indices int) {
	for i := range c.Lists {
		vertices += len(c.Lists[i].Vertices)
		indices += len(c.Lists[i].Indices)
	}
	return vertices, indices
}

// FramebufferSize returns the display size in framebuffer pixels.
func (c *FrameCommands) FramebufferSize() (width, height float32) {
	return c.DisplaySize[0] * c.FramebufferScale[0], c.DisplaySize[1] * c.FramebufferScale[1]
}
