// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imgui

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/gogpu/imframe"
	"github.com/gogpu/imframe/ui"
)

// vertexLayout is the byte layout of one ImGui vertex.
type vertexLayout struct {
	size, pos, uv, col int
}

// defaultLayout is the layout ui.Vertex mirrors.
var defaultLayout = vertexLayout{size: ui.VertexSize, pos: 0, uv: 8, col: 16}

func currentLayout() vertexLayout {
	size, pos, uv, col := imgui.VertexBufferLayout()
	return vertexLayout{size: size, pos: pos, uv: uv, col: col}
}

func checkLayout() error {
	if l := currentLayout(); l != defaultLayout {
		return fmt.Errorf("%w: vertex layout %+v", ErrUnsupportedLayout, l)
	}
	if n := imgui.IndexBufferLayout(); n != 2 {
		return fmt.Errorf("%w: %d-byte indices", ErrUnsupportedLayout, n)
	}
	return nil
}

// castBytes views size bytes of C memory at ptr. The result must be copied
// before ImGui starts the next frame.
func castBytes(ptr unsafe.Pointer, size int) []byte {
	if ptr == nil || size <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(ptr), size)
}

func decodeVertices(raw []byte, l vertexLayout) []ui.Vertex {
	n := len(raw) / l.size
	out := make([]ui.Vertex, n)
	for i := range out {
		v := raw[i*l.size : (i+1)*l.size]
		out[i] = ui.Vertex{
			Pos: [2]float32{f32(v[l.pos:]), f32(v[l.pos+4:])},
			UV:  [2]float32{f32(v[l.uv:]), f32(v[l.uv+4:])},
			Col: binary.LittleEndian.Uint32(v[l.col:]),
		}
	}
	return out
}

func f32(b []byte) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b)) }

func decodeIndices(raw []byte) []uint16 {
	out := make([]uint16, len(raw)/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(raw[i*2:])
	}
	return out
}

// command is the part of an ImGui draw command the converter reads.
type command struct {
	clip     imgui.Vec4
	texture  ui.TextureID
	elements int
	callback bool
}

// buildBatches turns ImGui commands into batches. Index offsets accumulate
// in command order; commands with user callbacks are skipped.
func buildBatches(cmds []command) []ui.DrawBatch {
	batches := make([]ui.DrawBatch, 0, len(cmds))
	offset := 0
	for _, c := range cmds {
		if c.callback {
			imframe.Logger().Debug("imgui: user callback ignored")
			offset += c.elements
			continue
		}
		batches = append(batches, ui.DrawBatch{
			ClipRect:     ui.Rect{MinX: c.clip.X, MinY: c.clip.Y, MaxX: c.clip.Z, MaxY: c.clip.W},
			Texture:      c.texture,
			IndexOffset:  uint32(offset),
			ElementCount: uint32(c.elements),
		})
		offset += c.elements
	}
	return batches
}

// convertList copies one ImGui draw list into Go memory.
func convertList(list imgui.DrawList, l vertexLayout) ui.DrawList {
	vptr, vsize := list.VertexBuffer()
	iptr, isize := list.IndexBuffer()

	cmds := list.Commands()
	conv := make([]command, len(cmds))
	for i, c := range cmds {
		conv[i] = command{
			clip:     c.ClipRect(),
			texture:  ui.TextureID(c.TextureID()),
			elements: c.ElementCount(),
			callback: c.HasUserCallback(),
		}
	}
	return ui.DrawList{
		Vertices: decodeVertices(castBytes(vptr, vsize), l),
		Indices:  decodeIndices(castBytes(iptr, isize)),
		Batches:  buildBatches(conv),
	}
}
