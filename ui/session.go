// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ui

import (
	"fmt"
	"time"

	"github.com/gogpu/imframe"
	"github.com/gogpu/imframe/input"
	"github.com/gogpu/imframe/window"
)

// Session owns the toolkit context and the frame timing state across
// frames. It is used from a single goroutine.
type Session struct {
	toolkit Toolkit
	font    *parsedFont

	scale   float64
	metrics FontMetrics
	atlas   *FontAtlas // built but not yet handed to the renderer

	timing Timing
	size   window.Size
	frame  *Frame
	closed bool
}

// NewSession validates src, builds the initial font atlas and returns a
// session driving tk.
func NewSession(tk Toolkit, src FontSource) (*Session, error) {
	f, err := parseFont(src)
	if err != nil {
		return nil, err
	}
	s := &Session{toolkit: tk, font: f}
	if err := s.rescale(1); err != nil {
		return nil, err
	}
	imframe.Logger().Info("ui: session started",
		"font", f.family, "size", src.Size)
	return s, nil
}

// rescale rebuilds the atlas and metrics for a new content scale.
func (s *Session) rescale(scale float64) error {
	metrics, err := s.font.metrics(scale)
	if err != nil {
		return err
	}
	atlas, err := s.toolkit.BuildFontAtlas(s.font.src, scale)
	if err != nil {
		return fmt.Errorf("ui: build font atlas at scale %v: %w", scale, err)
	}
	if atlas != nil {
		atlas.Scale = scale
	}
	s.scale = scale
	s.metrics = metrics
	s.atlas = atlas
	return nil
}

// SetDisplaySize sets the framebuffer size of the next frames.
func (s *Session) SetDisplaySize(size window.Size) { s.size = size }

// BeginFrame starts a frame with the input snapshot in, timed at now.
//
// The snapshot is copied; changes made to the caller's state during the
// frame are not observed.
func (s *Session) BeginFrame(in input.State, now time.Time) (*Frame, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	if s.frame != nil {
		return nil, ErrFrameInProgress
	}

	scale := in.ScaleFactor
	if !(scale > 0) {
		scale = 1
	}
	if scale != s.scale {
		if err := s.rescale(scale); err != nil {
			return nil, err
		}
		imframe.Logger().Info("ui: font rescaled",
			"scale", scale, "pixel_size", s.metrics.PixelSize)
	}

	snapshot := in.Clone()
	delta := s.timing.Advance(now)
	s.toolkit.NewFrame(FrameInput{
		Input:            snapshot,
		Delta:            delta,
		DisplaySize:      [2]float32{float32(float64(s.size.Width) / scale), float32(float64(s.size.Height) / scale)},
		FramebufferScale: float32(scale),
		FontGlobalScale:  float32(1 / scale),
	})

	s.frame = &Frame{
		session: s,
		index:   s.timing.Frames(),
		input:   snapshot,
		delta:   delta,
		metrics: s.metrics,
	}
	return s.frame, nil
}

// EndFrame finishes f and returns its draw output.
//
// Panels left open are closed first. The frame is ended even when the
// toolkit fails to render.
func (s *Session) EndFrame(f *Frame) (*FrameCommands, error) {
	if f == nil || f.session != s {
		return nil, ErrForeignFrame
	}
	if f.ended {
		return nil, ErrFrameEnded
	}
	if f.depth > 0 {
		imframe.Logger().Warn("ui: panels left open", "count", f.depth, "frame", f.index)
		for ; f.depth > 0; f.depth-- {
			s.toolkit.End()
		}
	}
	f.ended = true
	s.frame = nil

	cmds, err := s.toolkit.Render()
	if err != nil {
		return nil, fmt.Errorf("ui: render frame %d: %w", f.index, err)
	}
	if cmds == nil {
		cmds = &FrameCommands{}
	}
	cmds.Frame = f.index
	cmds.Cursor = s.toolkit.MouseCursor()
	if s.atlas != nil {
		cmds.FontAtlas = s.atlas
		s.atlas = nil
	}
	return cmds, nil
}

// Timing returns a copy of the frame timing state.
func (s *Session) Timing() Timing { return s.timing }

// FontMetrics returns the metrics at the current content scale.
func (s *Session) FontMetrics() FontMetrics { return s.metrics }

// Close destroys the toolkit context. It is safe to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.frame != nil {
		s.frame.ended = true
		s.frame = nil
	}
	s.toolkit.Destroy()
	imframe.Logger().Info("ui: session closed", "frames", s.timing.Frames())
}
