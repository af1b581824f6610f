// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package imgui implements ui.Toolkit on top of Dear ImGui through
// github.com/inkyblackness/imgui-go.
//
// The toolkit owns one ImGui context. Input arrives as a per-frame snapshot
// (ui.FrameInput) and is replayed into the ImGui IO block before NewFrame;
// draw data is copied out of ImGui memory into ui.DrawList values at
// Render, so nothing returned by the toolkit aliases C memory.
//
// ImGui must be built with 16-bit indices and its default vertex layout
// (position, uv, packed color: 20 bytes). New checks both.
package imgui
