// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import "github.com/gogpu/imframe/window"

// CursorSetter is implemented by windows that can change the cursor shape.
type CursorSetter interface {
	SetCursor(c window.Cursor)
}

// CursorTracker remembers the last cursor shape forwarded to the platform.
// The zero value starts at window.CursorUnset.
type CursorTracker struct {
	last    window.Cursor
	started bool
	updates int
}

// Update forwards c to the platform if it differs from the last forwarded
// shape and reports whether a call was made.
func (t *CursorTracker) Update(c window.Cursor, platform CursorSetter) bool {
	if t.Last() == c {
		return false
	}
	platform.SetCursor(c)
	t.last = c
	t.started = true
	t.updates++
	return true
}

// Last returns the last forwarded shape, or window.CursorUnset.
func (t *CursorTracker) Last() window.Cursor {
	if !t.started {
		return window.CursorUnset
	}
	return t.last
}

// Updates returns the number of platform calls made.
func (t *CursorTracker) Updates() int { return t.updates }
