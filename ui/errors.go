// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ui

import "errors"

// Sentinel errors for session and frame misuse.
var (
	// ErrFrameInProgress is returned by BeginFrame when the previous frame
	// has not been ended.
	ErrFrameInProgress = errors.New("ui: frame already in progress")

	// ErrFrameEnded is returned by EndFrame for a frame that was already
	// ended.
	ErrFrameEnded = errors.New("ui: frame already ended")

	// ErrForeignFrame is returned by EndFrame for a frame opened by another
	// session, or a nil frame.
	ErrForeignFrame = errors.New("ui: frame does not belong to this session")

	// ErrCommandsConsumed is returned when FrameCommands are consumed a
	// second time.
	ErrCommandsConsumed = errors.New("ui: frame commands already consumed")

	// ErrInvalidFont is returned when the font blob cannot be parsed or the
	// font size is not positive.
	ErrInvalidFont = errors.New("ui: invalid font")

	// ErrSessionClosed is returned by BeginFrame after Close.
	ErrSessionClosed = errors.New("ui: session closed")
)
