// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ui

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource is a TrueType or OpenType font blob and the size, in logical
// pixels, the toolkit renders it at.
type FontSource struct {
	Data []byte
	Size float32
}

// DefaultFontSource returns Go Regular at the given size.
func DefaultFontSource(size float32) FontSource {
	return FontSource{Data: goregular.TTF, Size: size}
}

// FontMetrics describes the UI font in logical pixels.
//
// Metrics are measured on the face rasterized at PixelSize and divided by
// Scale, so they stay consistent when the content scale changes.
type FontMetrics struct {
	// Family is the font family name, if the font declares one.
	Family string
	// Size is the logical font size.
	Size float32
	// Scale is the content scale the metrics were measured at.
	Scale float64
	// PixelSize is Size*Scale, the size of the rasterized atlas glyphs.
	PixelSize float32
	// Ascent and Descent are distances above and below the baseline.
	Ascent, Descent float32
	// LineHeight is the recommended baseline-to-baseline distance.
	LineHeight float32
}

// parsedFont is a validated font blob.
type parsedFont struct {
	src    FontSource
	otf    *opentype.Font
	family string
}

// parseFont validates src with both font stacks the session relies on:
// go-text for the blob structure and x/image for metrics.
func parseFont(src FontSource) (*parsedFont, error) {
	if len(src.Data) == 0 {
		return nil, fmt.Errorf("%w: empty font data", ErrInvalidFont)
	}
	if !(src.Size > 0) {
		return nil, fmt.Errorf("%w: size %v", ErrInvalidFont, src.Size)
	}
	if _, err := gotext.ParseTTF(bytes.NewReader(src.Data)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	otf, err := opentype.Parse(src.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	family, err := otf.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		family = ""
	}
	return &parsedFont{src: src, otf: otf, family: family}, nil
}

// metrics measures the font at the given content scale.
func (p *parsedFont) metrics(scale float64) (FontMetrics, error) {
	px := float64(p.src.Size) * scale
	face, err := opentype.NewFace(p.otf, &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return FontMetrics{}, fmt.Errorf("ui: font face at %.1fpx: %w", px, err)
	}
	defer func() {
		_ = face.Close()
	}()

	m := face.Metrics()
	return FontMetrics{
		Family:     p.family,
		Size:       p.src.Size,
		Scale:      scale,
		PixelSize:  float32(px),
		Ascent:     toLogical(m.Ascent, scale),
		Descent:    toLogical(m.Descent, scale),
		LineHeight: toLogical(m.Height, scale),
	}, nil
}

func toLogical(v fixed.Int26_6, scale float64) float32 {
	return float32(float64(v) / 64 / scale)
}
