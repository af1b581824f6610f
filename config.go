// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imframe

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("imframe: invalid config")

// Config holds application-level settings for a windowed UI frame loop.
//
// Use DefaultConfig and the With* methods to derive a configuration:
//
//	cfg := imframe.DefaultConfig().
//	    WithTitle("imgui-wgpu").
//	    WithSize(1280, 720)
type Config struct {
	// Title is the window title.
	Title string

	// Width and Height are the initial window size in screen coordinates.
	Width  int
	Height int

	// VSync selects FIFO presentation. When false the surface prefers
	// mailbox or immediate presentation if the platform supports it.
	VSync bool

	// ClearColor is the color the render pass clears the target to before
	// drawing UI batches.
	ClearColor gputypes.Color

	// FontSize is the base font size in logical pixels. The atlas is built
	// at FontSize * scale factor.
	FontSize float32

	// PollInterval bounds how long event polling may block before the
	// driver re-checks for a redraw.
	PollInterval time.Duration

	// MaxConsecutiveDrops is the number of consecutive dropped acquisitions
	// after which the driver forces a surface reconfigure. Zero keeps the
	// driver default.
	MaxConsecutiveDrops int
}

// DefaultConfig returns the configuration used by the demo application.
func DefaultConfig() Config {
	return Config{
		Title:               "imframe",
		Width:               1280,
		Height:              720,
		VSync:               true,
		ClearColor:          gputypes.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0},
		FontSize:            13,
		PollInterval:        16 * time.Millisecond,
		MaxConsecutiveDrops: 8,
	}
}

// WithTitle returns a copy of c with the window title set.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithSize returns a copy of c with the initial window size set.
func (c Config) WithSize(width, height int) Config {
	c.Width = width
	c.Height = height
	return c
}

// WithVSync returns a copy of c with vertical sync enabled or disabled.
func (c Config) WithVSync(on bool) Config {
	c.VSync = on
	return c
}

// WithClearColor returns a copy of c with the render pass clear color set.
func (c Config) WithClearColor(col gputypes.Color) Config {
	c.ClearColor = col
	return c
}

// WithFontSize returns a copy of c with the base font size set.
func (c Config) WithFontSize(size float32) Config {
	c.FontSize = size
	return c
}

// WithPollInterval returns a copy of c with the event poll interval set.
func (c Config) WithPollInterval(d time.Duration) Config {
	c.PollInterval = d
	return c
}

// WithMaxConsecutiveDrops returns a copy of c with the drop threshold set.
func (c Config) WithMaxConsecutiveDrops(n int) Config {
	c.MaxConsecutiveDrops = n
	return c
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.FontSize <= 0:
		return fmt.Errorf("%w: font size %v", ErrInvalidConfig, c.FontSize)
	case c.PollInterval <= 0:
		return fmt.Errorf("%w: poll interval %v", ErrInvalidConfig, c.PollInterval)
	case c.MaxConsecutiveDrops < 0:
		return fmt.Errorf("%w: max consecutive drops %d", ErrInvalidConfig, c.MaxConsecutiveDrops)
	}
	return nil
}
