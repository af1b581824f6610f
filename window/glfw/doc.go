// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glfw is a GLFW window for the frame driver.
//
// The window is created without a client API; rendering goes through a GPU
// surface built from NativeHandles. GLFW callbacks are translated into
// window events and queued until the driver calls PollEvents.
//
// GLFW must be used from the main OS thread. Call runtime.LockOSThread in
// an init function of the main package before New.
package glfw
