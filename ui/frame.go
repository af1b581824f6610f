// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ui

import (
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/imframe"
	"github.com/gogpu/imframe/input"
)

// Frame is the builder for one UI frame. It is returned by
// Session.BeginFrame and is valid until Session.EndFrame.
//
// Calls made after EndFrame are ignored and counted by Misuse.
type Frame struct {
	session *Session
	index   uint64
	input   input.State
	delta   time.Duration
	metrics FontMetrics

	depth  int
	ended  bool
	misuse int
}

// live reports whether widget calls are accepted and counts the ones that
// are not.
func (f *Frame) live(call string) bool {
	if !f.ended {
		return true
	}
	f.misuse++
	imframe.Logger().Debug("ui: call on ended frame", "call", call, "frame", f.index)
	return false
}

// Index returns the frame number, starting at 1.
func (f *Frame) Index() uint64 { return f.index }

// Delta returns the time since the previous frame.
func (f *Frame) Delta() time.Duration { return f.delta }

// Input returns the input snapshot the frame was started with.
func (f *Frame) Input() input.State { return f.input }

// FontMetrics returns the UI font metrics at the frame's content scale.
func (f *Frame) FontMetrics() FontMetrics { return f.metrics }

// Misuse returns the number of calls made after the frame ended.
func (f *Frame) Misuse() int { return f.misuse }

// Window opens a panel and reports whether its content is visible.
// End must be called whatever Window returns.
func (f *Frame) Window(title string, opts WindowOptions) bool {
	if !f.live("Window") {
		return false
	}
	f.depth++
	return f.session.toolkit.Begin(title, opts)
}

// End closes the panel opened by the matching Window call.
func (f *Frame) End() {
	if !f.live("End") {
		return
	}
	if f.depth == 0 {
		f.misuse++
		imframe.Logger().Debug("ui: End without Window", "frame", f.index)
		return
	}
	f.depth--
	f.session.toolkit.End()
}

// Text adds a line of text.
func (f *Frame) Text(text string) {
	if f.live("Text") {
		f.session.toolkit.Text(text)
	}
}

// TextColored adds a line of text in color c.
func (f *Frame) TextColored(c gputypes.Color, text string) {
	if f.live("TextColored") {
		f.session.toolkit.TextColored(c, text)
	}
}

// Button adds a button and reports whether it was clicked this frame.
func (f *Frame) Button(label string) bool {
	return f.live("Button") && f.session.toolkit.Button(label)
}

// Checkbox adds a checkbox bound to v and reports whether it changed.
func (f *Frame) Checkbox(label string, v *bool) bool {
	return f.live("Checkbox") && f.session.toolkit.Checkbox(label, v)
}

// SliderFloat adds a slider bound to v and reports whether it changed.
func (f *Frame) SliderFloat(label string, v *float32, lo, hi float32) bool {
	return f.live("SliderFloat") && f.session.toolkit.SliderFloat(label, v, lo, hi)
}

// Separator adds a horizontal rule.
func (f *Frame) Separator() {
	if f.live("Separator") {
		f.session.toolkit.Separator()
	}
}

// SameLine places the next widget on the current line.
func (f *Frame) SameLine() {
	if f.live("SameLine") {
		f.session.toolkit.SameLine()
	}
}

// ShowDemoWindow shows the toolkit's demo panel while *open is true.
func (f *Frame) ShowDemoWindow(open *bool) {
	if f.live("ShowDemoWindow") && (open == nil || *open) {
		f.session.toolkit.ShowDemoWindow(open)
	}
}
