// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ui drives an immediate-mode UI toolkit once per displayed frame.
//
// A Session owns the long-lived toolkit context, the frame timing state and
// the font used by the toolkit. Each tick the caller opens a Frame with
// BeginFrame, declares panels through the Frame's builder methods and
// closes it with EndFrame, which returns the FrameCommands the renderer
// consumes exactly once:
//
//	f, err := session.BeginFrame(bridge.Snapshot(), time.Now())
//	if err != nil {
//	    return err
//	}
//	if f.Window("Hello", ui.WindowOptions{}) {
//	    f.Text("Hello world!")
//	}
//	f.End()
//	cmds, err := session.EndFrame(f)
//
// The toolkit itself is reached through the Toolkit interface. The
// backend/imgui package provides the Dear ImGui implementation.
package ui
