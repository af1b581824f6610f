// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/gogpu/imframe/ui"
)

// Projection is a column-major 4x4 matrix.
type Projection [16]float32

// Ortho returns the orthographic projection mapping the display rectangle
// at pos with the given size to clip space, y pointing down.
func Ortho(pos, size [2]float32) Projection {
	l, r := pos[0], pos[0]+size[0]
	t, b := pos[1], pos[1]+size[1]
	if r == l || b == t {
		return Projection{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	}
	return Projection{
		2 / (r - l), 0, 0, 0,
		0, 2 / (t - b), 0, 0,
		0, 0, 0.5, 0,
		(r + l) / (l - r), (t + b) / (b - t), 0.5, 1,
	}
}

// Apply transforms the point (x, y, 0, 1) and returns clip-space x and y.
func (m Projection) Apply(x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

// ScissorRect is a scissor rectangle in framebuffer pixels.
type ScissorRect struct {
	X, Y, Width, Height uint32
}

// Scissor converts a clip rectangle in display coordinates to framebuffer
// pixels, clamped to a width by height framebuffer. It reports false when
// nothing of the rectangle is visible.
func Scissor(clip ui.Rect, pos, scale [2]float32, width, height uint32) (ScissorRect, bool) {
	minX := clampf((clip.MinX-pos[0])*scale[0], float32(width))
	minY := clampf((clip.MinY-pos[1])*scale[1], float32(height))
	maxX := clampf((clip.MaxX-pos[0])*scale[0], float32(width))
	maxY := clampf((clip.MaxY-pos[1])*scale[1], float32(height))
	if maxX <= minX || maxY <= minY {
		return ScissorRect{}, false
	}
	x0, y0 := uint32(math.Floor(float64(minX))), uint32(math.Floor(float64(minY)))
	x1, y1 := uint32(math.Ceil(float64(maxX))), uint32(math.Ceil(float64(maxY)))
	return ScissorRect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

func clampf(v, hi float32) float32 {
	if !(v > 0) {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
