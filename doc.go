// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package imframe drives an immediate-mode UI toolkit against a GPU-backed
// presentation surface, one frame per display refresh.
//
// # Overview
//
// imframe is the orchestration layer that binds three external systems
// together: a window (event source), a WebGPU device and surface
// (gogpu/wgpu), and an immediate-mode UI toolkit (Dear ImGui via
// imgui-go). It does not draw widgets, rasterize fonts or author shaders
// beyond the single textured-triangle pipeline the UI draw lists need.
//
// # Packages
//
//   - window: platform event vocabulary (resize, keys, pointer, focus, scale)
//   - surface: Surface Manager, owns the surface configuration
//   - input: Input Bridge, owns the persistent input state and cursor tracking
//   - ui: UI Session, frame timing and the per-frame builder
//   - render: Render Submitter, turns FrameCommands into one command buffer
//   - frame: Frame Driver, the per-tick state machine
//
// Adapters for the concrete collaborators live in window/glfw,
// backend/wgpu and backend/imgui.
//
// # Frame lifecycle
//
//	Idle -> AwaitingRedraw -> Acquiring -> Building -> Submitting -> Presenting -> Idle
//
// A dropped acquisition or a failed submission returns the driver to Idle
// for that tick. Close and Escape move it to Terminated from any state.
//
// # Logging
//
// imframe is silent by default. Call SetLogger to enable diagnostics.
package imframe

// Version is the current version of the module.
const Version = "0.1.0"
