// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imgui

import (
	"testing"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/gogpu/imframe/ui"
	"github.com/gogpu/imframe/window"
)

func TestCursorFromID(t *testing.T) {
	tests := []struct {
		id   int
		want window.Cursor
	}{
		{-1, window.CursorHidden},
		{0, window.CursorArrow},
		{1, window.CursorTextInput},
		{4, window.CursorResizeEW},
		{7, window.CursorHand},
		{8, window.CursorNotAllowed},
		{9, window.CursorArrow},
		{-5, window.CursorArrow},
	}
	for _, tt := range tests {
		if got := cursorFromID(tt.id); got != tt.want {
			t.Errorf("cursorFromID(%d) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestKeyMapDistinct(t *testing.T) {
	seenImgui := map[int]bool{}
	seenKey := map[window.Key]bool{}
	for _, m := range keyMap {
		if seenImgui[m.imgui] {
			t.Errorf("imgui key %d mapped twice", m.imgui)
		}
		if seenKey[m.key] {
			t.Errorf("window key %v mapped twice", m.key)
		}
		if m.key <= window.KeyUnknown || m.key >= window.KeyCount {
			t.Errorf("window key %v out of range", m.key)
		}
		seenImgui[m.imgui] = true
		seenKey[m.key] = true
	}
}

func TestWindowFlags(t *testing.T) {
	got := windowFlags(ui.WindowNoTitleBar | ui.WindowAlwaysAutoResize)
	want := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsAlwaysAutoResize
	if got != want {
		t.Errorf("windowFlags = %v, want %v", got, want)
	}
	if windowFlags(0) != 0 {
		t.Error("windowFlags(0) != 0")
	}
}
