// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glfw

import (
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/imframe"
	"github.com/gogpu/imframe/window"
)

// Window is a GLFW window. It implements frame.Window.
type Window struct {
	w       *glfw.Window
	queue   []window.Event
	redraw  bool
	cursors map[glfw.StandardCursor]*glfw.Cursor
	hidden  bool
	closed  bool
}

// New initializes GLFW and opens a window sized and titled from cfg.
func New(cfg imframe.Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw: init: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw: create window: %w", err)
	}

	gw := &Window{w: w, cursors: map[glfw.StandardCursor]*glfw.Cursor{}}
	gw.installCallbacks()

	fw, fh := w.GetFramebufferSize()
	imframe.Logger().Info("glfw: window created",
		"title", cfg.Title, "framebuffer", fmt.Sprintf("%dx%d", fw, fh), "scale", gw.ScaleFactor())
	return gw, nil
}

func (g *Window) emit(ev window.Event) { g.queue = append(g.queue, ev) }

// installCallbacks translates GLFW callbacks into queued events.
func (g *Window) installCallbacks() {
	g.w.SetCloseCallback(func(*glfw.Window) { g.emit(window.CloseRequested{}) })
	g.w.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		g.emit(window.Resized{Size: sizeOf(w, h)})
	})
	g.w.SetRefreshCallback(func(*glfw.Window) { g.redraw = true })
	g.w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		sx, sy := g.pixelRatio()
		g.emit(window.CursorMoved{X: x * sx, Y: y * sy})
	})
	g.w.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if btn, ok := translateButton(b); ok {
			g.emit(window.MouseInput{Button: btn, State: translateAction(action)})
		}
	})
	g.w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		g.emit(window.MouseWheel{DX: xoff, DY: yoff})
	})
	g.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == window.KeyUnknown {
			return
		}
		g.emit(window.KeyboardInput{Key: k, State: translateAction(action), Modifiers: translateMods(mods)})
	})
	g.w.SetCharCallback(func(_ *glfw.Window, char rune) {
		g.emit(window.ReceivedCharacter{Char: char})
	})
	g.w.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		g.emit(window.Focused{Focused: focused})
	})
	g.w.SetContentScaleCallback(func(_ *glfw.Window, x, _ float32) {
		g.emit(window.ScaleFactorChanged{Scale: float64(x)})
	})
}

// pixelRatio converts screen coordinates to framebuffer pixels.
func (g *Window) pixelRatio() (float64, float64) {
	ww, wh := g.w.GetSize()
	fw, fh := g.w.GetFramebufferSize()
	if ww <= 0 || wh <= 0 {
		return 1, 1
	}
	return float64(fw) / float64(ww), float64(fh) / float64(wh)
}

// PollEvents implements frame.Window. It returns immediately when a redraw
// is pending and otherwise waits up to timeout for an event. The batch
// ends with RedrawRequested, if one was pending, and AboutToWait.
func (g *Window) PollEvents(timeout time.Duration) []window.Event {
	if g.closed {
		return nil
	}
	if g.redraw {
		glfw.PollEvents()
	} else {
		glfw.WaitEventsTimeout(timeout.Seconds())
	}

	events := g.queue
	g.queue = nil
	if g.redraw {
		g.redraw = false
		events = append(events, window.RedrawRequested{})
	}
	return append(events, window.AboutToWait{})
}

// RequestRedraw implements frame.Window.
func (g *Window) RequestRedraw() {
	g.redraw = true
	glfw.PostEmptyEvent()
}

// SetCursor implements frame.Window.
func (g *Window) SetCursor(c window.Cursor) {
	if c == window.CursorHidden {
		g.w.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
		g.hidden = true
		return
	}
	if g.hidden {
		g.w.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		g.hidden = false
	}
	shape := standardCursor(c)
	cur, ok := g.cursors[shape]
	if !ok {
		cur = glfw.CreateStandardCursor(shape)
		g.cursors[shape] = cur
	}
	g.w.SetCursor(cur)
}

// Size implements frame.Window.
func (g *Window) Size() window.Size {
	return sizeOf(g.w.GetFramebufferSize())
}

// ScaleFactor implements frame.Window.
func (g *Window) ScaleFactor() float64 {
	x, _ := g.w.GetContentScale()
	if x <= 0 {
		return 1
	}
	return float64(x)
}

// Close implements frame.Window. It destroys the window and terminates
// GLFW.
func (g *Window) Close() {
	if g.closed {
		return
	}
	g.closed = true
	for shape, cur := range g.cursors {
		cur.Destroy()
		delete(g.cursors, shape)
	}
	g.w.Destroy()
	glfw.Terminate()
}

func sizeOf(w, h int) window.Size {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return window.Size{Width: uint32(w), Height: uint32(h)} //nolint:gosec // clamped above
}
