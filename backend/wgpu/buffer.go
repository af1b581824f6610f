// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/imframe"
	"github.com/gogpu/imframe/ui"
)

// minBufferSize is the smallest allocation of a dynamic buffer.
const minBufferSize = 4096

// dynamicBuffer is a GPU buffer rewritten every frame. It grows to the
// next power of two when the data no longer fits and never shrinks.
type dynamicBuffer struct {
	label string
	usage gputypes.BufferUsage
	buf   hal.Buffer
	size  uint64
}

// capacity returns the allocation size needed for n bytes.
func capacity(n int) uint64 {
	c := uint64(minBufferSize)
	for c < uint64(n) {
		c <<= 1
	}
	return c
}

// align4 pads data to a multiple of four bytes, as queue writes require.
func align4(data []byte) []byte {
	if r := len(data) % 4; r != 0 {
		data = append(data, make([]byte, 4-r)...)
	}
	return data
}

func (b *dynamicBuffer) write(device hal.Device, queue hal.Queue, data []byte) error {
	data = align4(data)
	if uint64(len(data)) > b.size {
		size := capacity(len(data))
		buf, err := device.CreateBuffer(&hal.BufferDescriptor{
			Label: b.label,
			Size:  size,
			Usage: b.usage | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("wgpu: grow %s to %d bytes: %w", b.label, size, err)
		}
		if b.buf != nil {
			device.DestroyBuffer(b.buf)
		}
		imframe.Logger().Debug("wgpu: buffer grown", "buffer", b.label, "from", b.size, "to", size)
		b.buf, b.size = buf, size
	}
	if len(data) > 0 {
		if err := queue.WriteBuffer(b.buf, 0, data); err != nil {
			return fmt.Errorf("wgpu: write %s: %w", b.label, err)
		}
	}
	return nil
}

func (b *dynamicBuffer) destroy(device hal.Device) {
	if b.buf != nil {
		device.DestroyBuffer(b.buf)
		b.buf, b.size = nil, 0
	}
}

// packGeometry lays the lists out back to back as little-endian vertex and
// index bytes.
func packGeometry(lists []ui.DrawList) (vertices, indices []byte) {
	var nv, ni int
	for i := range lists {
		nv += len(lists[i].Vertices)
		ni += len(lists[i].Indices)
	}
	vertices = make([]byte, 0, nv*ui.VertexSize)
	indices = make([]byte, 0, ni*2)
	for i := range lists {
		for _, v := range lists[i].Vertices {
			vertices = binary.LittleEndian.AppendUint32(vertices, math.Float32bits(v.Pos[0]))
			vertices = binary.LittleEndian.AppendUint32(vertices, math.Float32bits(v.Pos[1]))
			vertices = binary.LittleEndian.AppendUint32(vertices, math.Float32bits(v.UV[0]))
			vertices = binary.LittleEndian.AppendUint32(vertices, math.Float32bits(v.UV[1]))
			vertices = binary.LittleEndian.AppendUint32(vertices, v.Col)
		}
		for _, idx := range lists[i].Indices {
			indices = binary.LittleEndian.AppendUint16(indices, idx)
		}
	}
	return vertices, indices
}

// packProjection encodes a column-major matrix for the uniform buffer.
func packProjection(m [16]float32) []byte {
	out := make([]byte, 0, projectionSize)
	for _, f := range m {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(f))
	}
	return out
}
