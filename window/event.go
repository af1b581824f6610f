// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package window

import "fmt"

// Size is a window or framebuffer size in physical pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// IsZero reports whether either dimension is zero, as happens while the
// window is minimized.
func (s Size) IsZero() bool { return s.Width == 0 || s.Height == 0 }

// String returns the size as WxH.
func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// Event is a platform event. The set of implementations is closed.
type Event interface{ isEvent() }

// Resized reports a new framebuffer size.
type Resized struct{ Size Size }

// CloseRequested reports that the user asked to close the window.
type CloseRequested struct{}

// KeyboardInput reports a key transition.
type KeyboardInput struct {
	Key       Key
	State     KeyState
	Modifiers Modifiers
}

// RedrawRequested is the redraw signal that starts frame production.
type RedrawRequested struct{}

// AboutToWait is emitted once the platform queue is drained.
type AboutToWait struct{}

// CursorMoved reports the pointer position in physical pixels.
type CursorMoved struct{ X, Y float64 }

// MouseInput reports a pointer button transition.
type MouseInput struct {
	Button MouseButton
	State  KeyState
}

// MouseWheel reports a scroll delta in lines.
type MouseWheel struct{ DX, DY float64 }

// Focused reports a focus change.
type Focused struct{ Focused bool }

// ScaleFactorChanged reports a new content scale (DPI) factor.
type ScaleFactorChanged struct{ Scale float64 }

// ReceivedCharacter reports text input.
type ReceivedCharacter struct{ Char rune }

func (Resized) isEvent()            {}
func (CloseRequested) isEvent()     {}
func (KeyboardInput) isEvent()      {}
func (RedrawRequested) isEvent()    {}
func (AboutToWait) isEvent()        {}
func (CursorMoved) isEvent()        {}
func (MouseInput) isEvent()         {}
func (MouseWheel) isEvent()         {}
func (Focused) isEvent()            {}
func (ScaleFactorChanged) isEvent() {}
func (ReceivedCharacter) isEvent()  {}
