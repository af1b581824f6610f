// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/imframe"
	"github.com/gogpu/imframe/window"
)

// Action is a control-flow request produced while handling an event.
type Action int

const (
	// ActionNone means the event only updated state.
	ActionNone Action = iota
	// ActionExit asks the frame driver to terminate.
	ActionExit
)

// String returns the action name.
func (a Action) String() string {
	if a == ActionExit {
		return "Exit"
	}
	return "None"
}

// Bridge owns the persistent input State.
//
// Bridge is NOT safe for concurrent use. Events and snapshots are handled
// on the frame driver's goroutine.
type Bridge struct {
	state State
	text  strings.Builder
}

// NewBridge returns a bridge for a focused window at scale 1.
func NewBridge() *Bridge {
	return &Bridge{state: State{
		Keys:        map[window.Key]bool{},
		Focused:     true,
		ScaleFactor: 1,
	}}
}

// SetScaleFactor sets the initial content scale reported by the window.
// Non-positive values are ignored.
func (b *Bridge) SetScaleFactor(scale float64) {
	if scale > 0 {
		b.state.ScaleFactor = scale
	}
}

// HandleEvent applies ev to the input state.
//
// It returns ActionExit for CloseRequested and for Escape while the window
// has focus. Events the bridge does not track are ignored.
func (b *Bridge) HandleEvent(ev window.Event) Action {
	switch e := ev.(type) {
	case window.CursorMoved:
		b.state.Pointer = Point{X: e.X, Y: e.Y}
		b.state.PointerValid = true

	case window.MouseInput:
		if e.Button >= 0 && e.Button < window.MouseButtonCount {
			b.state.Buttons[e.Button] = e.State == window.Pressed
		}

	case window.MouseWheel:
		b.state.WheelX += e.DX
		b.state.WheelY += e.DY

	case window.KeyboardInput:
		return b.handleKey(e)

	case window.ReceivedCharacter:
		if b.state.Focused && e.Char >= 0x20 && e.Char != 0x7f {
			b.text.WriteRune(e.Char)
		}

	case window.Focused:
		b.state.Focused = e.Focused
		if !e.Focused {
			b.clearHeld()
		}

	case window.ScaleFactorChanged:
		if e.Scale > 0 && e.Scale != b.state.ScaleFactor {
			imframe.Logger().Info("input: scale factor changed",
				"from", b.state.ScaleFactor, "to", e.Scale)
			b.state.ScaleFactor = e.Scale
		}

	case window.CloseRequested:
		return ActionExit
	}
	return ActionNone
}

func (b *Bridge) handleKey(e window.KeyboardInput) Action {
	down := e.State == window.Pressed
	if e.Key != window.KeyUnknown {
		if down {
			b.state.Keys[e.Key] = true
		} else {
			delete(b.state.Keys, e.Key)
		}
	}
	b.state.Modifiers = e.Modifiers

	if e.Key == window.KeyEscape && b.state.Focused {
		imframe.Logger().Debug("input: escape", "state", e.State.String())
		return ActionExit
	}
	return ActionNone
}

// clearHeld releases every held key, button and modifier so nothing stays
// stuck while another window has focus.
func (b *Bridge) clearHeld() {
	clear(b.state.Keys)
	b.state.Buttons = [window.MouseButtonCount]bool{}
	b.state.Modifiers = 0
	b.state.PointerValid = false
}

// Snapshot returns an immutable copy of the current state, including text
// typed since the last ResetFrame in NFC form.
func (b *Bridge) Snapshot() State {
	s := b.state.Clone()
	s.Text = norm.NFC.String(b.text.String())
	return s
}

// ResetFrame clears the per-frame accumulators (wheel and text). Call it
// after the tick's snapshot has been taken.
func (b *Bridge) ResetFrame() {
	b.state.WheelX, b.state.WheelY = 0, 0
	b.text.Reset()
}
