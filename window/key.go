// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package window

// Key identifies a physical key. Only keys the UI toolkit maps are named.
type Key int

// Named keys.
const (
	KeyUnknown Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper

	// KeyCount is the number of named keys.
	KeyCount
)

var keyNames = [KeyCount]string{
	"Unknown", "Tab", "Left", "Right", "Up", "Down", "PageUp", "PageDown",
	"Home", "End", "Insert", "Delete", "Backspace", "Space", "Enter", "Escape",
	"A", "C", "V", "X", "Y", "Z",
	"LeftShift", "RightShift", "LeftControl", "RightControl",
	"LeftAlt", "RightAlt", "LeftSuper", "RightSuper",
}

// String returns the key name.
func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// KeyState is the state reported with a key or button transition.
type KeyState int

const (
	// Released means the key or button went up.
	Released KeyState = iota
	// Pressed means the key or button went down.
	Pressed
)

// String returns "Pressed" or "Released".
func (s KeyState) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

// Modifier bits.
const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Has reports whether all bits in m are set.
func (m Modifiers) Has(bits Modifiers) bool { return m&bits == bits }

// MouseButton identifies a pointer button.
type MouseButton int

// Pointer buttons. The first three match the UI toolkit's button indices.
const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseButton4
	MouseButton5

	// MouseButtonCount is the number of tracked buttons.
	MouseButtonCount
)
