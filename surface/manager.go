// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"

	"github.com/gogpu/imframe"
	"github.com/gogpu/imframe/window"
)

// Stats counts Manager activity since creation.
type Stats struct {
	// Configures is the number of configurations sent to the platform.
	Configures int
	// Acquired is the number of images handed out.
	Acquired int
	// Dropped is the number of failed acquisitions.
	Dropped int
	// Presented is the number of images presented.
	Presented int
	// Discarded is the number of images handed back without display.
	Discarded int
}

// Manager owns the surface configuration and the acquire/present cycle.
type Manager struct {
	target Target

	// base carries format, present mode and alpha mode; its size fields
	// are ignored.
	base Configuration

	current    Configuration
	configured bool

	// observed is the last window size reported via Configure or Resize.
	observed window.Size

	// dirty forces the next Acquire to re-send the configuration, set after
	// a dropped frame or a failed configure.
	dirty bool

	outstanding Image
	released    bool
	stats       Stats
}

// NewManager creates a manager for target. The size fields of base are
// ignored; call Configure with the window size before the first Acquire.
func NewManager(target Target, base Configuration) *Manager {
	base.Width, base.Height = 0, 0
	return &Manager{target: target, base: base}
}

// Configure builds the configuration for size and applies it to the
// platform. It is idempotent: when the resulting configuration equals the
// current one, nothing is sent again.
//
// A zero width or height returns ErrInvalidSize and leaves the platform
// untouched; acquisition is suspended until a valid size is configured.
func (m *Manager) Configure(size window.Size) (Configuration, error) {
	if m.released {
		return Configuration{}, ErrReleased
	}
	m.observed = size
	if size.IsZero() {
		return m.current, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	cfg := m.base.WithSize(size)
	if m.configured && !m.dirty && cfg == m.current {
		return m.current, nil
	}

	if err := m.target.Configure(cfg); err != nil {
		m.dirty = true
		return m.current, fmt.Errorf("surface: configure %v: %w", cfg, err)
	}
	m.current = cfg
	m.configured = true
	m.dirty = false
	m.stats.Configures++
	imframe.Logger().Info("surface: configured", "config", cfg.String())
	return cfg, nil
}

// Resize records a window resize and reconfigures before any later
// Acquire. A zero size suspends acquisition and is not an error.
func (m *Manager) Resize(size window.Size) error {
	if m.released {
		return ErrReleased
	}
	if size.IsZero() {
		m.observed = size
		imframe.Logger().Debug("surface: suspended", "size", size.String())
		return nil
	}
	_, err := m.Configure(size)
	return err
}

// Invalidate forces the next Acquire to re-send the configuration even if
// the size has not changed.
func (m *Manager) Invalidate() {
	m.dirty = true
}

// Check reports whether the stored configuration matches the last
// observed window size.
func (m *Manager) Check() error {
	switch {
	case m.released:
		return ErrReleased
	case m.observed.IsZero():
		return ErrSuspended
	case !m.configured:
		return ErrNotConfigured
	case m.current.Size() != m.observed:
		return fmt.Errorf("%w: configured %v, window %v",
			ErrStaleConfiguration, m.current.Size(), m.observed)
	}
	return nil
}

// Acquire returns the next presentable image.
//
// A pending reconfiguration (after a resize, a failed configure or a
// previous drop) is applied first. Platform failures return an error
// wrapping ErrDropped; the caller must skip the rest of the tick.
func (m *Manager) Acquire() (Image, error) {
	if m.released {
		return nil, ErrReleased
	}
	if m.outstanding != nil {
		return nil, ErrImageOutstanding
	}
	if m.observed.IsZero() {
		return nil, ErrSuspended
	}
	if m.dirty || (m.configured && m.current.Size() != m.observed) {
		if _, err := m.Configure(m.observed); err != nil {
			return nil, err
		}
	}
	if err := m.Check(); err != nil {
		return nil, err
	}

	img, err := m.target.Acquire()
	if err != nil {
		m.dirty = true
		m.stats.Dropped++
		return nil, fmt.Errorf("%w: %w", ErrDropped, err)
	}
	if img.Width() != m.current.Width || img.Height() != m.current.Height {
		m.target.Discard(img)
		m.dirty = true
		m.stats.Discarded++
		return nil, fmt.Errorf("%w: image %dx%d, configured %v",
			ErrStaleConfiguration, img.Width(), img.Height(), m.current.Size())
	}
	m.outstanding = img
	m.stats.Acquired++
	return img, nil
}

// Present hands img back to the platform for display. img is invalid
// afterwards, whether or not Present succeeds.
func (m *Manager) Present(img Image) error {
	if err := m.release(img); err != nil {
		return err
	}
	if err := m.target.Present(img); err != nil {
		m.dirty = true
		return fmt.Errorf("surface: present: %w", err)
	}
	m.stats.Presented++
	return nil
}

// Discard hands img back without displaying it. Use it when a tick is
// abandoned after a successful Acquire.
func (m *Manager) Discard(img Image) error {
	if err := m.release(img); err != nil {
		return err
	}
	m.target.Discard(img)
	m.stats.Discarded++
	return nil
}

func (m *Manager) release(img Image) error {
	if m.released {
		return ErrReleased
	}
	if img == nil || m.outstanding == nil || img != m.outstanding {
		return ErrImageReleased
	}
	m.outstanding = nil
	return nil
}

// Current returns the configuration last applied to the platform.
func (m *Manager) Current() Configuration { return m.current }

// Observed returns the last observed window size.
func (m *Manager) Observed() window.Size { return m.observed }

// Stats returns activity counters.
func (m *Manager) Stats() Stats { return m.stats }

// Release discards any outstanding image and destroys the platform
// surface. Release is idempotent.
func (m *Manager) Release() {
	if m.released {
		return
	}
	if m.outstanding != nil {
		m.target.Discard(m.outstanding)
		m.outstanding = nil
		m.stats.Discarded++
	}
	m.target.Release()
	m.released = true
}
