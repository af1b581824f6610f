// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux && wayland

package glfw

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// NativeHandles returns the Wayland display and surface for surface
// creation.
func (g *Window) NativeHandles() (display, win uintptr) {
	return uintptr(unsafe.Pointer(glfw.GetWaylandDisplay())), uintptr(unsafe.Pointer(g.w.GetWaylandWindow()))
}
