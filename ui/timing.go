// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ui

import "time"

const (
	// FirstFrameDelta is the delta reported for the first frame, when no
	// previous frame exists to measure against.
	FirstFrameDelta = time.Second / 60

	// MinDelta is the smallest delta ever reported. Zero or negative
	// elapsed time (a clock that stood still or went backwards) is clamped
	// to it, since toolkits divide by the delta.
	MinDelta = time.Microsecond
)

// Timing is the frame timing state. It is advanced exactly once per frame.
// The zero value is ready to use.
type Timing struct {
	last        time.Time
	delta       time.Duration
	accumulated time.Duration
	frames      uint64
}

// Advance records a frame starting at now and returns its delta.
func (t *Timing) Advance(now time.Time) time.Duration {
	d := FirstFrameDelta
	if t.frames > 0 {
		d = now.Sub(t.last)
		if d < MinDelta {
			d = MinDelta
		}
	}
	t.last = now
	t.delta = d
	t.accumulated += d
	t.frames++
	return d
}

// Delta returns the delta of the most recent frame.
func (t Timing) Delta() time.Duration { return t.delta }

// Accumulated returns the sum of all deltas so far.
func (t Timing) Accumulated() time.Duration { return t.accumulated }

// Frames returns the number of frames advanced.
func (t Timing) Frames() uint64 { return t.frames }
