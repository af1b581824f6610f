// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/imframe/window"
)

var keys = map[glfw.Key]window.Key{
	glfw.KeyTab:          window.KeyTab,
	glfw.KeyLeft:         window.KeyLeft,
	glfw.KeyRight:        window.KeyRight,
	glfw.KeyUp:           window.KeyUp,
	glfw.KeyDown:         window.KeyDown,
	glfw.KeyPageUp:       window.KeyPageUp,
	glfw.KeyPageDown:     window.KeyPageDown,
	glfw.KeyHome:         window.KeyHome,
	glfw.KeyEnd:          window.KeyEnd,
	glfw.KeyInsert:       window.KeyInsert,
	glfw.KeyDelete:       window.KeyDelete,
	glfw.KeyBackspace:    window.KeyBackspace,
	glfw.KeySpace:        window.KeySpace,
	glfw.KeyEnter:        window.KeyEnter,
	glfw.KeyKPEnter:      window.KeyEnter,
	glfw.KeyEscape:       window.KeyEscape,
	glfw.KeyA:            window.KeyA,
	glfw.KeyC:            window.KeyC,
	glfw.KeyV:            window.KeyV,
	glfw.KeyX:            window.KeyX,
	glfw.KeyY:            window.KeyY,
	glfw.KeyZ:            window.KeyZ,
	glfw.KeyLeftShift:    window.KeyLeftShift,
	glfw.KeyRightShift:   window.KeyRightShift,
	glfw.KeyLeftControl:  window.KeyLeftControl,
	glfw.KeyRightControl: window.KeyRightControl,
	glfw.KeyLeftAlt:      window.KeyLeftAlt,
	glfw.KeyRightAlt:     window.KeyRightAlt,
	glfw.KeyLeftSuper:    window.KeyLeftSuper,
	glfw.KeyRightSuper:   window.KeyRightSuper,
}

func translateKey(k glfw.Key) window.Key {
	if key, ok := keys[k]; ok {
		return key
	}
	return window.KeyUnknown
}

func translateMods(m glfw.ModifierKey) window.Modifiers {
	var out window.Modifiers
	if m&glfw.ModShift != 0 {
		out |= window.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= window.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= window.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= window.ModSuper
	}
	return out
}

// translateAction maps Press and Repeat to Pressed.
func translateAction(a glfw.Action) window.KeyState {
	if a == glfw.Release {
		return window.Released
	}
	return window.Pressed
}

func translateButton(b glfw.MouseButton) (window.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return window.MouseLeft, true
	case glfw.MouseButtonRight:
		return window.MouseRight, true
	case glfw.MouseButtonMiddle:
		return window.MouseMiddle, true
	case glfw.MouseButton4:
		return window.MouseButton4, true
	case glfw.MouseButton5:
		return window.MouseButton5, true
	}
	return 0, false
}

// standardCursor picks the closest GLFW 3.3 standard cursor. GLFW 3.3 has
// no diagonal resize or not-allowed shapes; those fall back to the arrow.
func standardCursor(c window.Cursor) glfw.StandardCursor {
	switch c {
	case window.CursorTextInput:
		return glfw.IBeamCursor
	case window.CursorResizeAll:
		return glfw.CrosshairCursor
	case window.CursorResizeNS:
		return glfw.VResizeCursor
	case window.CursorResizeEW:
		return glfw.HResizeCursor
	case window.CursorHand:
		return glfw.HandCursor
	default:
		return glfw.ArrowCursor
	}
}
