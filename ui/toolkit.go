// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ui

import (
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/imframe/input"
	"github.com/gogpu/imframe/window"
)

// FrameInput is everything the toolkit needs to start a frame.
type FrameInput struct {
	// Input is the input snapshot for this frame.
	Input input.State
	// Delta is the time since the previous frame. Always positive.
	Delta time.Duration
	// DisplaySize is the visible area in logical pixels.
	DisplaySize [2]float32
	// FramebufferScale converts logical to framebuffer pixels.
	FramebufferScale float32
	// FontGlobalScale is applied to the atlas font so that text rasterized
	// at Size*scale renders at Size logical pixels.
	FontGlobalScale float32
}

// WindowFlags adjust the behavior of a panel.
type WindowFlags uint32

// Panel flags.
const (
	WindowNoTitleBar WindowFlags = 1 << iota
	WindowNoResize
	WindowNoMove
	WindowNoCollapse
	WindowAlwaysAutoResize
)

// WindowOptions configure a panel declared with Frame.Window.
type WindowOptions struct {
	// Open, when non-nil, adds a close button that clears *Open.
	Open *bool
	// Pos and Size set the initial placement in logical pixels. Zero
	// values leave placement to the toolkit.
	Pos, Size [2]float32
	Flags     WindowFlags
}

// Toolkit is an immediate-mode UI toolkit.
//
// Widget methods are only called between NewFrame and Render. A Toolkit
// owns global state and is used from a single goroutine.
type Toolkit interface {
	// NewFrame starts a frame.
	NewFrame(in FrameInput)

	// Begin opens a panel and reports whether its content is visible.
	// Every Begin is matched by End.
	Begin(title string, opts WindowOptions) bool
	End()

	Text(text string)
	TextColored(c gputypes.Color, text string)
	Button(label string) bool
	Checkbox(label string, v *bool) bool
	SliderFloat(label string, v *float32, lo, hi float32) bool
	Separator()
	SameLine()
	ShowDemoWindow(open *bool)

	// Render finishes the frame and returns its draw output.
	Render() (*FrameCommands, error)

	// MouseCursor returns the cursor shape requested by the last frame.
	MouseCursor() window.Cursor

	// BuildFontAtlas replaces the toolkit font with src rasterized at
	// src.Size*scale and returns the new atlas.
	BuildFontAtlas(src FontSource, scale float64) (*FontAtlas, error)

	// Destroy releases the toolkit context.
	Destroy()
}
