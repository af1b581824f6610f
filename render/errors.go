// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNilCommands is returned when Submit is called without commands.
	ErrNilCommands = errors.New("render: nil frame commands")

	// ErrNilTarget is returned when Submit is called without a target.
	ErrNilTarget = errors.New("render: nil target")

	// ErrClosed is returned by Submit after Close.
	ErrClosed = errors.New("render: submitter closed")
)

// Stage identifies the step of a submission that failed.
type Stage int

// Submission stages, in execution order.
const (
	StagePrepare Stage = iota
	StageAtlas
	StageGeometry
	StageEncode
	StagePass
	StageDraw
	StageFinish
	StageSubmit
)

var stageNames = [...]string{
	StagePrepare:  "prepare",
	StageAtlas:    "atlas",
	StageGeometry: "geometry",
	StageEncode:   "encode",
	StagePass:     "pass",
	StageDraw:     "draw",
	StageFinish:   "finish",
	StageSubmit:   "submit",
}

// String returns the stage name.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// RenderError reports a failed submission. The frame it belongs to must
// not be presented.
type RenderError struct {
	Frame uint64
	Stage Stage
	Err   error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("render: frame %d: %s: %v", e.Frame, e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *RenderError) Unwrap() error { return e.Err }
