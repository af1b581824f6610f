// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"testing"

	"github.com/gogpu/imframe/window"
)

type stubCursorSetter struct {
	calls []window.Cursor
}

func (s *stubCursorSetter) SetCursor(c window.Cursor) { s.calls = append(s.calls, c) }

func TestCursorTrackerForwardsOnlyChanges(t *testing.T) {
	var tracker CursorTracker
	platform := &stubCursorSetter{}

	if tracker.Last() != window.CursorUnset {
		t.Fatalf("initial Last() = %v", tracker.Last())
	}

	frames := []window.Cursor{
		window.CursorArrow,
		window.CursorArrow,
		window.CursorTextInput,
		window.CursorTextInput,
		window.CursorArrow,
	}
	for _, c := range frames {
		tracker.Update(c, platform)
	}

	want := []window.Cursor{window.CursorArrow, window.CursorTextInput, window.CursorArrow}
	if len(platform.calls) != len(want) {
		t.Fatalf("platform calls = %v, want %v", platform.calls, want)
	}
	for i := range want {
		if platform.calls[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, platform.calls[i], want[i])
		}
	}
	if tracker.Updates() != 3 {
		t.Errorf("Updates() = %d", tracker.Updates())
	}
}

func TestCursorTrackerUnsetRequestIsNoop(t *testing.T) {
	var tracker CursorTracker
	platform := &stubCursorSetter{}
	if tracker.Update(window.CursorUnset, platform) {
		t.Error("Update(CursorUnset) forwarded on a fresh tracker")
	}
	if len(platform.calls) != 0 {
		t.Errorf("calls = %v", platform.calls)
	}
}
