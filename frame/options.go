// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frame

import (
	"io"
	"time"

	"github.com/gogpu/imframe"
)

// Option configures a Driver.
type Option func(*Driver)

// WithConfig applies the poll interval and drop limit of cfg.
func WithConfig(cfg imframe.Config) Option {
	return func(d *Driver) {
		if cfg.PollInterval > 0 {
			d.pollInterval = cfg.PollInterval
		}
		if cfg.MaxConsecutiveDrops > 0 {
			d.maxDrops = cfg.MaxConsecutiveDrops
		}
	}
}

// WithPollInterval bounds how long one event poll may block.
func WithPollInterval(interval time.Duration) Option {
	return func(d *Driver) {
		if interval > 0 {
			d.pollInterval = interval
		}
	}
}

// WithMaxConsecutiveDrops sets how many dropped frames in a row trigger a
// surface resync with the window size.
func WithMaxConsecutiveDrops(n int) Option {
	return func(d *Driver) {
		if n > 0 {
			d.maxDrops = n
		}
	}
}

// WithTransitionHook registers fn to be called on every state change.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(d *Driver) { d.hook = fn }
}

// WithClock replaces time.Now as the frame clock.
func WithClock(now func() time.Time) Option {
	return func(d *Driver) {
		if now != nil {
			d.now = now
		}
	}
}

// WithDevice registers the GPU device to close after the surface and
// before the window.
func WithDevice(device io.Closer) Option {
	return func(d *Driver) { d.device = device }
}
