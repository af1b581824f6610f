// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frame

import (
	"time"

	"github.com/gogpu/imframe/ui"
	"github.com/gogpu/imframe/window"
)

// Window is the platform window the driver pumps events from.
type Window interface {
	// PollEvents returns the events that arrived, waiting at most timeout
	// for the first one.
	PollEvents(timeout time.Duration) []window.Event

	// RequestRedraw asks for a window.RedrawRequested event.
	RequestRedraw()

	// SetCursor changes the cursor shape over the window.
	SetCursor(c window.Cursor)

	// Size returns the framebuffer size in pixels.
	Size() window.Size

	// ScaleFactor returns the content scale.
	ScaleFactor() float64

	// Close destroys the window.
	Close()
}

// Layout declares the UI of one frame.
type Layout interface {
	Layout(f *ui.Frame)
}

// LayoutFunc adapts a function to Layout.
type LayoutFunc func(f *ui.Frame)

// Layout calls fn(f).
func (fn LayoutFunc) Layout(f *ui.Frame) { fn(f) }
