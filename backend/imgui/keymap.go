// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imgui

import (
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/gogpu/imframe/ui"
	"github.com/gogpu/imframe/window"
)

// keyMap lists the ImGui navigation keys and the window keys that drive
// them. The native key index handed to ImGui is int(window.Key).
var keyMap = []struct {
	imgui int
	key   window.Key
}{
	{imgui.KeyTab, window.KeyTab},
	{imgui.KeyLeftArrow, window.KeyLeft},
	{imgui.KeyRightArrow, window.KeyRight},
	{imgui.KeyUpArrow, window.KeyUp},
	{imgui.KeyDownArrow, window.KeyDown},
	{imgui.KeyPageUp, window.KeyPageUp},
	{imgui.KeyPageDown, window.KeyPageDown},
	{imgui.KeyHome, window.KeyHome},
	{imgui.KeyEnd, window.KeyEnd},
	{imgui.KeyInsert, window.KeyInsert},
	{imgui.KeyDelete, window.KeyDelete},
	{imgui.KeyBackspace, window.KeyBackspace},
	{imgui.KeySpace, window.KeySpace},
	{imgui.KeyEnter, window.KeyEnter},
	{imgui.KeyEscape, window.KeyEscape},
	{imgui.KeyA, window.KeyA},
	{imgui.KeyC, window.KeyC},
	{imgui.KeyV, window.KeyV},
	{imgui.KeyX, window.KeyX},
	{imgui.KeyY, window.KeyY},
	{imgui.KeyZ, window.KeyZ},
}

// cursors maps ImGui mouse cursor ids, offset by one so that
// ImGuiMouseCursor_None (-1) is index 0.
var cursors = [...]window.Cursor{
	window.CursorHidden,
	window.CursorArrow,
	window.CursorTextInput,
	window.CursorResizeAll,
	window.CursorResizeNS,
	window.CursorResizeEW,
	window.CursorResizeNESW,
	window.CursorResizeNWSE,
	window.CursorHand,
	window.CursorNotAllowed,
}

// cursorFromID converts an ImGui cursor id. Unknown ids fall back to the
// arrow.
func cursorFromID(id int) window.Cursor {
	if id < -1 || id+1 >= len(cursors) {
		return window.CursorArrow
	}
	return cursors[id+1]
}

func windowFlags(f ui.WindowFlags) imgui.WindowFlags {
	var out imgui.WindowFlags
	if f&ui.WindowNoTitleBar != 0 {
		out |= imgui.WindowFlagsNoTitleBar
	}
	if f&ui.WindowNoResize != 0 {
		out |= imgui.WindowFlagsNoResize
	}
	if f&ui.WindowNoMove != 0 {
		out |= imgui.WindowFlagsNoMove
	}
	if f&ui.WindowNoCollapse != 0 {
		out |= imgui.WindowFlagsNoCollapse
	}
	if f&ui.WindowAlwaysAutoResize != 0 {
		out |= imgui.WindowFlagsAlwaysAutoResize
	}
	return out
}
