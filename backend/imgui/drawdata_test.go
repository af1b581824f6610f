// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imgui

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/gogpu/imframe/ui"
)

func putVertex(b []byte, v ui.Vertex) []byte {
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v.Pos[0]))
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v.Pos[1]))
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v.UV[0]))
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v.UV[1]))
	return binary.LittleEndian.AppendUint32(b, v.Col)
}

func TestDecodeVertices(t *testing.T) {
	want := []ui.Vertex{
		{Pos: [2]float32{1, 2}, UV: [2]float32{0.25, 0.5}, Col: 0xff00ff00},
		{Pos: [2]float32{-3.5, 100}, UV: [2]float32{1, 0}, Col: 0x12345678},
	}
	var raw []byte
	for _, v := range want {
		raw = putVertex(raw, v)
	}
	// A trailing partial vertex is ignored.
	raw = append(raw, 0, 0, 0)

	got := decodeVertices(raw, defaultLayout)
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vertex %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDecodeVerticesCustomLayout(t *testing.T) {
	// Color first, then uv, then position.
	l := vertexLayout{size: 20, pos: 12, uv: 4, col: 0}
	var raw []byte
	raw = binary.LittleEndian.AppendUint32(raw, 0xaabbccdd)
	raw = binary.LittleEndian.AppendUint32(raw, math.Float32bits(0.5))
	raw = binary.LittleEndian.AppendUint32(raw, math.Float32bits(0.75))
	raw = binary.LittleEndian.AppendUint32(raw, math.Float32bits(10))
	raw = binary.LittleEndian.AppendUint32(raw, math.Float32bits(20))

	got := decodeVertices(raw, l)
	want := ui.Vertex{Pos: [2]float32{10, 20}, UV: [2]float32{0.5, 0.75}, Col: 0xaabbccdd}
	if len(got) != 1 || got[0] != want {
		t.Errorf("got %+v, want [%+v]", got, want)
	}
}

func TestDecodeIndices(t *testing.T) {
	raw := []byte{1, 0, 2, 0, 0xff, 0xff, 7}
	got := decodeIndices(raw)
	want := []uint16{1, 2, 0xffff}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestBuildBatchesAccumulatesOffsets(t *testing.T) {
	cmds := []command{
		{clip: imgui.Vec4{X: 0, Y: 0, Z: 100, W: 50}, texture: ui.FontTexture, elements: 6},
		{callback: true, elements: 3},
		{clip: imgui.Vec4{X: 10, Y: 10, Z: 20, W: 20}, texture: 7, elements: 12},
	}
	got := buildBatches(cmds)
	if len(got) != 2 {
		t.Fatalf("batches = %d, want 2", len(got))
	}
	if got[0].IndexOffset != 0 || got[0].ElementCount != 6 || got[0].Texture != ui.FontTexture {
		t.Errorf("batch 0 = %+v", got[0])
	}
	if got[0].ClipRect != (ui.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 50}) {
		t.Errorf("batch 0 clip = %+v", got[0].ClipRect)
	}
	if got[1].IndexOffset != 9 || got[1].ElementCount != 12 || got[1].Texture != 7 {
		t.Errorf("batch 1 = %+v, want offset 9 count 12 texture 7", got[1])
	}
}

func TestCastBytesNil(t *testing.T) {
	if b := castBytes(nil, 16); b != nil {
		t.Errorf("castBytes(nil) = %v", b)
	}
}
