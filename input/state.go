// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"maps"

	"github.com/gogpu/imframe/window"
)

// Point is a pointer position in physical pixels.
type Point struct {
	X, Y float64
}

// State is the input state for one tick.
type State struct {
	// Pointer is the last reported pointer position.
	Pointer Point
	// PointerValid is false until the pointer has entered the window and
	// after focus is lost.
	PointerValid bool
	// Buttons holds the held state of each pointer button.
	Buttons [window.MouseButtonCount]bool
	// Keys holds the keys currently held down.
	Keys map[window.Key]bool
	// Modifiers holds the modifier keys currently held.
	Modifiers window.Modifiers
	// Focused reports whether the window has keyboard focus.
	Focused bool
	// ScaleFactor is the content scale of the window. Always positive.
	ScaleFactor float64
	// WheelX and WheelY accumulate scroll since the last ResetFrame.
	WheelX, WheelY float64
	// Text accumulates typed text since the last ResetFrame.
	Text string
}

// KeyDown reports whether k is held.
func (s State) KeyDown(k window.Key) bool { return s.Keys[k] }

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := s
	c.Keys = maps.Clone(s.Keys)
	if c.Keys == nil {
		c.Keys = map[window.Key]bool{}
	}
	return c
}
