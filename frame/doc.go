// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package frame drives the per-frame loop of an immediate-mode UI window.
//
// A Driver owns every per-tick mutable field and moves through an explicit
// state machine:
//
//	Idle -> AwaitingRedraw -> Acquiring -> Building -> Submitting -> Presenting -> Idle
//
// A dropped surface image sends Acquiring back to Idle, a render failure
// sends Submitting back to Idle, and an exit signal (window close, Escape,
// context cancellation) moves any state to Terminated. Ticks never overlap.
//
// Typical use, on the goroutine locked to the main OS thread:
//
//	d, err := frame.New(win, surfaces, session, submitter, frame.LayoutFunc(draw),
//	    frame.WithConfig(cfg))
//	if err != nil {
//	    return err
//	}
//	defer d.Close()
//	return d.Run(ctx)
package frame
