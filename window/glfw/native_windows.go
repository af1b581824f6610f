// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package glfw

import "unsafe"

// NativeHandles returns 0 and the HWND for surface creation.
func (g *Window) NativeHandles() (display, win uintptr) {
	return 0, uintptr(unsafe.Pointer(g.w.GetWin32Window()))
}
