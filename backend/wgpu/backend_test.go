// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/imframe/render"
	"github.com/gogpu/imframe/surface"
	"github.com/gogpu/imframe/ui"
)

// newNoopDevice opens a device on the noop HAL.
func newNoopDevice(t *testing.T) *Device {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	d, err := openOn(instance, gputypes.Backend(0))
	if err != nil {
		instance.Destroy()
		t.Fatalf("openOn failed: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func newNoopBackend(t *testing.T) (*Device, *Backend) {
	t.Helper()
	d := newNoopDevice(t)
	b, err := NewBackend(d)
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	t.Cleanup(b.Destroy)
	return d, b
}

func testAtlas(w, h int) *ui.FontAtlas {
	return &ui.FontAtlas{Width: w, Height: h, Pixels: make([]byte, w*h*4), Scale: 1}
}

func quadCommands() *ui.FrameCommands {
	return &ui.FrameCommands{
		Frame: 1,
		Lists: []ui.DrawList{{
			Vertices: []ui.Vertex{
				{Pos: [2]float32{0, 0}}, {Pos: [2]float32{10, 0}},
				{Pos: [2]float32{10, 10}}, {Pos: [2]float32{0, 10}},
			},
			Indices: []uint16{0, 1, 2, 0, 2, 3},
			Batches: []ui.DrawBatch{{
				ClipRect:     ui.Rect{MaxX: 64, MaxY: 64},
				Texture:      ui.FontTexture,
				ElementCount: 6,
			}},
		}},
		DisplaySize:      [2]float32{64, 64},
		FramebufferScale: [2]float32{1, 1},
		FontAtlas:        testAtlas(8, 8),
	}
}

func TestBackendRendersOffscreen(t *testing.T) {
	d, b := newNoopBackend(t)
	target, err := NewOffscreen(d, 64, 64, gputypes.TextureFormatBGRA8Unorm)
	if err != nil {
		t.Fatalf("NewOffscreen: %v", err)
	}
	defer target.Destroy()

	s := render.NewSubmitter(b, gputypes.Color{A: 1})
	if err := s.Submit(quadCommands(), target); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	st := s.Stats()
	if st.Submitted != 1 || st.AtlasUploads != 1 || st.Batches != 1 {
		t.Errorf("stats = %+v", st)
	}
	if len(b.pipelines.pipelines) != 1 {
		t.Errorf("pipelines = %d, want 1", len(b.pipelines.pipelines))
	}
	if b.submission != 1 {
		t.Errorf("submission = %d, want 1", b.submission)
	}

	// A second frame reuses the pipeline and buffers.
	cmds := quadCommands()
	cmds.FontAtlas = nil
	vbuf := b.vertices.buf
	if err := s.Submit(cmds, target); err != nil {
		t.Fatalf("second Submit: %v", err)
	}
	if b.vertices.buf != vbuf {
		t.Error("vertex buffer reallocated for a frame of the same size")
	}
	if b.submission != 2 {
		t.Errorf("submission = %d after second frame, want 2", b.submission)
	}
	if len(b.pipelines.pipelines) != 1 {
		t.Errorf("pipelines = %d after second frame, want 1", len(b.pipelines.pipelines))
	}
}

func TestBackendPipelinePerFormat(t *testing.T) {
	d, b := newNoopBackend(t)
	s := render.NewSubmitter(b, gputypes.Color{})
	for _, format := range []gputypes.TextureFormat{gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatRGBA8Unorm} {
		target, err := NewOffscreen(d, 32, 32, format)
		if err != nil {
			t.Fatalf("NewOffscreen(%v): %v", format, err)
		}
		if err := s.Submit(quadCommands(), target); err != nil {
			t.Fatalf("Submit(%v): %v", format, err)
		}
		target.Destroy()
	}
	if len(b.pipelines.pipelines) != 2 {
		t.Errorf("pipelines = %d, want 2", len(b.pipelines.pipelines))
	}
}

func TestBackendUploadTexture(t *testing.T) {
	_, b := newNoopBackend(t)

	if err := b.UploadFontAtlas(testAtlas(16, 16)); err != nil {
		t.Fatalf("UploadFontAtlas: %v", err)
	}
	first := b.textures[ui.FontTexture]

	if err := b.UploadFontAtlas(testAtlas(16, 16)); err != nil {
		t.Fatalf("second UploadFontAtlas: %v", err)
	}
	if b.textures[ui.FontTexture] != first {
		t.Error("same-size upload recreated the texture")
	}

	if err := b.UploadFontAtlas(testAtlas(32, 16)); err != nil {
		t.Fatalf("resized UploadFontAtlas: %v", err)
	}
	if got := b.textures[ui.FontTexture]; got == first || got.width != 32 {
		t.Errorf("resized upload kept the old texture (width %d)", got.width)
	}

	if err := b.UploadTexture(7, 2, 2, make([]byte, 3)); err == nil {
		t.Error("UploadTexture accepted a short pixel slice")
	}
}

func TestBackendGeometryGrows(t *testing.T) {
	_, b := newNoopBackend(t)
	big := ui.DrawList{Vertices: make([]ui.Vertex, minBufferSize), Indices: make([]uint16, 3)}
	if err := b.WriteGeometry([]ui.DrawList{big}); err != nil {
		t.Fatalf("WriteGeometry: %v", err)
	}
	if want := capacity(minBufferSize * ui.VertexSize); b.vertices.size != want {
		t.Errorf("vertex buffer size = %d, want %d", b.vertices.size, want)
	}
	if b.indices.size != minBufferSize {
		t.Errorf("index buffer size = %d, want %d", b.indices.size, minBufferSize)
	}
}

func TestBackendUnknownTexture(t *testing.T) {
	d, b := newNoopBackend(t)
	target, err := NewOffscreen(d, 16, 16, gputypes.TextureFormatBGRA8Unorm)
	if err != nil {
		t.Fatalf("NewOffscreen: %v", err)
	}
	defer target.Destroy()

	cmds := quadCommands()
	cmds.Lists[0].Batches[0].Texture = 42
	err = render.NewSubmitter(b, gputypes.Color{}).Submit(cmds, target)
	if !errors.Is(err, ErrUnknownTexture) {
		t.Errorf("Submit = %v, want ErrUnknownTexture", err)
	}
}

type foreignImage struct{}

func (foreignImage) Width() uint32                  { return 1 }
func (foreignImage) Height() uint32                 { return 1 }
func (foreignImage) Format() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }

func TestBackendForeignImage(t *testing.T) {
	_, b := newNoopBackend(t)
	enc, err := b.CreateCommandEncoder("test")
	if err != nil {
		t.Fatalf("CreateCommandEncoder: %v", err)
	}
	defer enc.Discard()
	if _, err := enc.BeginRenderPass(foreignImage{}, gputypes.Color{}); !errors.Is(err, ErrForeignImage) {
		t.Errorf("BeginRenderPass = %v, want ErrForeignImage", err)
	}
}

type otherBuffer struct{}

func (otherBuffer) Label() string { return "other" }

func TestBackendForeignCommandBuffer(t *testing.T) {
	_, b := newNoopBackend(t)
	if err := b.Submit(otherBuffer{}); !errors.Is(err, ErrForeignCommandBuffer) {
		t.Errorf("Submit = %v, want ErrForeignCommandBuffer", err)
	}
}

func TestBackendDestroy(t *testing.T) {
	d := newNoopDevice(t)
	b, err := NewBackend(d)
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	b.Destroy()
	b.Destroy()
	if err := b.WriteGeometry(nil); !errors.Is(err, ErrDestroyed) {
		t.Errorf("WriteGeometry after Destroy = %v", err)
	}
	if _, err := b.CreateCommandEncoder("x"); !errors.Is(err, ErrDestroyed) {
		t.Errorf("CreateCommandEncoder after Destroy = %v", err)
	}
}

func TestPresentModeRoundTrip(t *testing.T) {
	for _, m := range []surface.PresentMode{
		surface.PresentModeFifo, surface.PresentModeFifoRelaxed,
		surface.PresentModeMailbox, surface.PresentModeImmediate,
	} {
		got, ok := presentModeFromHAL(presentModeToHAL(m))
		if !ok || got != m {
			t.Errorf("round trip %v = %v, %v", m, got, ok)
		}
	}
}
