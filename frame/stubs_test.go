// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frame

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/imframe/render"
	"github.com/gogpu/imframe/surface"
	"github.com/gogpu/imframe/ui"
	"github.com/gogpu/imframe/window"
)

// harness wires a Driver to stub collaborators that share one call log.
type harness struct {
	log         []string
	transitions []string

	win     *stubWindow
	target  *stubTarget
	toolkit *stubToolkit
	backend *stubBackend
	driver  *Driver
	layouts int
}

func (h *harness) logf(format string, args ...any) {
	h.log = append(h.log, fmt.Sprintf(format, args...))
}

// count returns how many log entries start with prefix.
func (h *harness) count(prefix string) int {
	n := 0
	for _, l := range h.log {
		if strings.HasPrefix(l, prefix) {
			n++
		}
	}
	return n
}

// index returns the position of the first log entry starting with prefix.
func (h *harness) index(prefix string) int {
	for i, l := range h.log {
		if strings.HasPrefix(l, prefix) {
			return i
		}
	}
	return -1
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := &harness{}
	h.win = &stubWindow{h: h, size: window.Size{Width: 640, Height: 480}, scale: 1}
	h.target = &stubTarget{h: h}
	h.toolkit = &stubToolkit{h: h, cursor: window.CursorArrow}
	h.backend = &stubBackend{h: h}

	session, err := ui.NewSession(h.toolkit, ui.DefaultFontSource(13))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	surfaces := surface.NewManager(h.target, surface.Configuration{
		Format:      gputypes.TextureFormatBGRA8Unorm,
		PresentMode: surface.PresentModeFifo,
	})
	submitter := render.NewSubmitter(h.backend, gputypes.Color{A: 1})

	layout := LayoutFunc(func(f *ui.Frame) {
		h.layouts++
		if f.Window("Hello", ui.WindowOptions{}) {
			f.Text("Hello world!")
		}
		f.End()
	})

	base := []Option{
		WithTransitionHook(func(from, to State) {
			h.transitions = append(h.transitions, from.String()+"->"+to.String())
		}),
		WithDevice(stubDevice{h: h}),
		WithClock(func() time.Time { return time.Unix(0, 0).Add(time.Duration(h.layouts) * 16 * time.Millisecond) }),
	}
	d, err := New(h.win, surfaces, session, submitter, layout, append(base, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.driver = d
	h.log = h.log[:0]
	return h
}

// stubWindow replays scripted event batches. A requested redraw is
// delivered at the end of the next poll.
type stubWindow struct {
	h       *harness
	size    window.Size
	scale   float64
	batches [][]window.Event

	redrawPending bool
	cursors       []window.Cursor

	// idle is called when a poll has nothing to deliver.
	idle func()
}

func (w *stubWindow) PollEvents(time.Duration) []window.Event {
	var evs []window.Event
	if len(w.batches) > 0 {
		evs = w.batches[0]
		w.batches = w.batches[1:]
	}
	if w.redrawPending {
		w.redrawPending = false
		evs = append(evs, window.RedrawRequested{})
	}
	if len(evs) == 0 && w.idle != nil {
		w.idle()
	}
	return evs
}

func (w *stubWindow) RequestRedraw() {
	w.h.logf("request redraw")
	w.redrawPending = true
}

func (w *stubWindow) SetCursor(c window.Cursor) {
	w.h.logf("cursor %v", c)
	w.cursors = append(w.cursors, c)
}

func (w *stubWindow) Size() window.Size    { return w.size }
func (w *stubWindow) ScaleFactor() float64 { return w.scale }
func (w *stubWindow) Close()               { w.h.logf("window close") }

func (w *stubWindow) push(evs ...window.Event) { w.batches = append(w.batches, evs) }

type stubImage struct{ w, h uint32 }

func (i *stubImage) Width() uint32                  { return i.w }
func (i *stubImage) Height() uint32                 { return i.h }
func (i *stubImage) Format() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }

type stubTarget struct {
	h           *harness
	cfg         surface.Configuration
	acquireErrs []error
}

func (s *stubTarget) Configure(cfg surface.Configuration) error {
	s.h.logf("configure %dx%d", cfg.Width, cfg.Height)
	s.cfg = cfg
	return nil
}

func (s *stubTarget) Acquire() (surface.Image, error) {
	s.h.logf("acquire")
	if len(s.acquireErrs) > 0 {
		err := s.acquireErrs[0]
		s.acquireErrs = s.acquireErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &stubImage{w: s.cfg.Width, h: s.cfg.Height}, nil
}

func (s *stubTarget) Present(surface.Image) error {
	s.h.logf("present")
	return nil
}

func (s *stubTarget) Discard(surface.Image) { s.h.logf("discard") }
func (s *stubTarget) Release()              { s.h.logf("surface release") }

var errOutdated = errors.New("surface outdated")

type stubToolkit struct {
	h      *harness
	cursor window.Cursor
	keys   []bool // KeyA state seen by each NewFrame
}

func (t *stubToolkit) NewFrame(in ui.FrameInput) {
	t.h.logf("new frame")
	t.keys = append(t.keys, in.Input.KeyDown(window.KeyA))
}

func (t *stubToolkit) Begin(string, ui.WindowOptions) bool                 { return true }
func (t *stubToolkit) End()                                                {}
func (t *stubToolkit) Text(string)                                         {}
func (t *stubToolkit) TextColored(gputypes.Color, string)                  {}
func (t *stubToolkit) Button(string) bool                                  { return false }
func (t *stubToolkit) Checkbox(string, *bool) bool                         { return false }
func (t *stubToolkit) SliderFloat(string, *float32, float32, float32) bool { return false }
func (t *stubToolkit) Separator()                                          {}
func (t *stubToolkit) SameLine()                                           {}
func (t *stubToolkit) ShowDemoWindow(*bool)                                {}
func (t *stubToolkit) MouseCursor() window.Cursor                          { return t.cursor }

func (t *stubToolkit) Render() (*ui.FrameCommands, error) {
	t.h.logf("ui render")
	return &ui.FrameCommands{
		Lists: []ui.DrawList{{
			Vertices: make([]ui.Vertex, 4),
			Indices:  []uint16{0, 1, 2, 2, 3, 0},
			Batches:  []ui.DrawBatch{{ClipRect: ui.Rect{MaxX: 100, MaxY: 100}, Texture: ui.FontTexture, ElementCount: 6}},
		}},
		DisplaySize:      [2]float32{640, 480},
		FramebufferScale: [2]float32{1, 1},
	}, nil
}

func (t *stubToolkit) BuildFontAtlas(src ui.FontSource, _ float64) (*ui.FontAtlas, error) {
	return &ui.FontAtlas{Width: 1, Height: 1, Pixels: make([]byte, 4)}, nil
}

func (t *stubToolkit) Destroy() { t.h.logf("session destroy") }

type stubBackend struct {
	h          *harness
	textureErr error
}

func (b *stubBackend) UploadFontAtlas(*ui.FontAtlas) error     { return nil }
func (b *stubBackend) WriteGeometry([]ui.DrawList) error       { return nil }
func (b *stubBackend) WriteProjection(render.Projection) error { return nil }
func (b *stubBackend) Destroy()                                { b.h.logf("backend destroy") }

func (b *stubBackend) CreateCommandEncoder(label string) (render.CommandEncoder, error) {
	return &stubEncoder{b: b}, nil
}

func (b *stubBackend) Submit(render.CommandBuffer) error {
	b.h.logf("submit")
	return nil
}

type stubEncoder struct{ b *stubBackend }

func (e *stubEncoder) BeginRenderPass(surface.Image, gputypes.Color) (render.RenderPass, error) {
	e.b.h.logf("begin pass")
	return &stubPass{b: e.b}, nil
}

func (e *stubEncoder) Finish() (render.CommandBuffer, error) { return stubBuffer{}, nil }
func (e *stubEncoder) Discard()                              { e.b.h.logf("encoder discard") }

type stubBuffer struct{}

func (stubBuffer) Label() string { return "frame" }

type stubPass struct{ b *stubBackend }

func (p *stubPass) SetViewport(float32, float32, float32, float32) {}
func (p *stubPass) SetScissorRect(render.ScissorRect)              {}
func (p *stubPass) SetTexture(ui.TextureID) error                  { return p.b.textureErr }
func (p *stubPass) DrawIndexed(uint32, uint32, int32)              {}
func (p *stubPass) End() error                                     { return nil }

type stubDevice struct{ h *harness }

func (d stubDevice) Close() error {
	d.h.logf("device close")
	return nil
}

// tick runs one tick with a background context.
func (h *harness) tick(t *testing.T) {
	t.Helper()
	if err := h.driver.Tick(context.Background()); err != nil {
		t.Fatalf("Tick: %v", err)
	}
}
