// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/imframe"
	"github.com/gogpu/imframe/surface"
	"github.com/gogpu/imframe/ui"
)

// Stats counts submitter activity.
type Stats struct {
	// Submitted is the number of command buffers submitted.
	Submitted uint64
	// Failed is the number of Submit calls that returned an error.
	Failed uint64
	// Batches is the number of draw calls recorded.
	Batches uint64
	// Culled is the number of batches skipped for an empty scissor.
	Culled uint64
	// AtlasUploads is the number of font atlas uploads.
	AtlasUploads uint64
}

// Submitter records UI frames into a Backend.
//
// Submitter is NOT safe for concurrent use.
type Submitter struct {
	backend Backend
	clear   gputypes.Color

	// atlas is a font atlas that still has to be uploaded, kept when the
	// frame that carried it failed.
	atlas  *ui.FontAtlas
	stats  Stats
	closed bool
}

// NewSubmitter returns a submitter that clears every frame to clear.
func NewSubmitter(backend Backend, clear gputypes.Color) *Submitter {
	return &Submitter{backend: backend, clear: clear}
}

// Submit records and submits one command buffer drawing cmds into target.
//
// cmds is consumed even when Submit fails. On failure nothing has been
// submitted and the returned error is a *RenderError.
func (s *Submitter) Submit(cmds *ui.FrameCommands, target surface.Image) error {
	var frame uint64
	if cmds != nil {
		frame = cmds.Frame
	}
	err := s.submit(cmds, target)
	if err != nil {
		s.stats.Failed++
		imframe.Logger().Warn("render: frame failed", "frame", frame, "error", err)
		return err
	}
	s.stats.Submitted++
	return nil
}

func (s *Submitter) submit(cmds *ui.FrameCommands, target surface.Image) error {
	fail := func(stage Stage, err error) error {
		var frame uint64
		if cmds != nil {
			frame = cmds.Frame
		}
		return &RenderError{Frame: frame, Stage: stage, Err: err}
	}

	switch {
	case s.closed:
		return fail(StagePrepare, ErrClosed)
	case cmds == nil:
		return fail(StagePrepare, ErrNilCommands)
	case target == nil:
		return fail(StagePrepare, ErrNilTarget)
	}
	if err := cmds.Consume(); err != nil {
		return fail(StagePrepare, err)
	}

	if cmds.FontAtlas != nil {
		s.atlas = cmds.FontAtlas
	}
	if s.atlas != nil {
		if !s.atlas.Valid() {
			return fail(StageAtlas, fmt.Errorf("font atlas %dx%d with %d bytes",
				s.atlas.Width, s.atlas.Height, len(s.atlas.Pixels)))
		}
		if err := s.backend.UploadFontAtlas(s.atlas); err != nil {
			return fail(StageAtlas, err)
		}
		s.stats.AtlasUploads++
		s.atlas = nil
	}

	if v, i := cmds.Counts(); v > 0 && i > 0 {
		if err := s.backend.WriteGeometry(cmds.Lists); err != nil {
			return fail(StageGeometry, err)
		}
	}
	if err := s.backend.WriteProjection(Ortho(cmds.DisplayPos, cmds.DisplaySize)); err != nil {
		return fail(StageGeometry, err)
	}

	enc, err := s.backend.CreateCommandEncoder(fmt.Sprintf("imframe_frame_%d", cmds.Frame))
	if err != nil {
		return fail(StageEncode, err)
	}
	pass, err := enc.BeginRenderPass(target, s.clear)
	if err != nil {
		enc.Discard()
		return fail(StagePass, err)
	}
	if err := s.record(pass, cmds, target.Width(), target.Height()); err != nil {
		_ = pass.End()
		enc.Discard()
		return fail(StageDraw, err)
	}
	if err := pass.End(); err != nil {
		enc.Discard()
		return fail(StagePass, err)
	}
	cb, err := enc.Finish()
	if err != nil {
		enc.Discard()
		return fail(StageFinish, err)
	}
	if err := s.backend.Submit(cb); err != nil {
		return fail(StageSubmit, err)
	}
	return nil
}

// record draws every batch of cmds in emission order.
func (s *Submitter) record(pass RenderPass, cmds *ui.FrameCommands, width, height uint32) error {
	pass.SetViewport(0, 0, float32(width), float32(height))

	scale := cmds.FramebufferScale
	if scale[0] <= 0 || scale[1] <= 0 {
		scale = [2]float32{1, 1}
	}

	bound := ui.TextureID(0)
	var indexBase, vertexBase uint32
	for li := range cmds.Lists {
		list := &cmds.Lists[li]
		for _, b := range list.Batches {
			if b.ElementCount == 0 {
				continue
			}
			rect, ok := Scissor(b.ClipRect, cmds.DisplayPos, scale, width, height)
			if !ok {
				s.stats.Culled++
				continue
			}
			if b.Texture != bound {
				if err := pass.SetTexture(b.Texture); err != nil {
					return fmt.Errorf("list %d: %w", li, err)
				}
				bound = b.Texture
			}
			pass.SetScissorRect(rect)
			pass.DrawIndexed(b.ElementCount, indexBase+b.IndexOffset, int32(vertexBase+b.VertexOffset)) //nolint:gosec // vertex counts fit int32
			s.stats.Batches++
		}
		indexBase += uint32(len(list.Indices))   //nolint:gosec // bounded by the toolkit
		vertexBase += uint32(len(list.Vertices)) //nolint:gosec // bounded by the toolkit
	}
	return nil
}

// Stats returns the submitter counters.
func (s *Submitter) Stats() Stats { return s.stats }

// Close destroys the backend. It is safe to call more than once.
func (s *Submitter) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.backend.Destroy()
}
