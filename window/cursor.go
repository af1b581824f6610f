// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package window

// Cursor is a mouse cursor shape requested by the UI.
type Cursor int

// Cursor shapes.
const (
	// CursorUnset is the initial value before the UI has requested a shape.
	CursorUnset Cursor = iota - 2
	// CursorHidden hides the cursor.
	CursorHidden
	CursorArrow
	CursorTextInput
	CursorResizeAll
	CursorResizeNS
	CursorResizeEW
	CursorResizeNESW
	CursorResizeNWSE
	CursorHand
	CursorNotAllowed
)

var cursorNames = map[Cursor]string{
	CursorUnset:      "Unset",
	CursorHidden:     "Hidden",
	CursorArrow:      "Arrow",
	CursorTextInput:  "TextInput",
	CursorResizeAll:  "ResizeAll",
	CursorResizeNS:   "ResizeNS",
	CursorResizeEW:   "ResizeEW",
	CursorResizeNESW: "ResizeNESW",
	CursorResizeNWSE: "ResizeNWSE",
	CursorHand:       "Hand",
	CursorNotAllowed: "NotAllowed",
}

// String returns the cursor name.
func (c Cursor) String() string {
	if s, ok := cursorNames[c]; ok {
		return s
	}
	return "Unknown"
}
