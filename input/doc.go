// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package input translates platform events into the persistent input state
// the UI toolkit reads each frame.
//
// Bridge is the single writer of State. The frame driver takes one
// Snapshot per tick, before the UI frame begins, so the UI never observes
// a half-updated state. CursorTracker forwards cursor shape requests to
// the platform only when the shape changes.
package input
