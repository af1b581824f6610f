// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "errors"

// Surface errors.
var (
	// ErrDropped is returned by Acquire when the platform could not produce
	// an image this tick. The underlying platform error is wrapped.
	ErrDropped = errors.New("surface: frame dropped")

	// ErrInvalidSize is returned by Configure for a zero width or height.
	ErrInvalidSize = errors.New("surface: invalid size")

	// ErrSuspended is returned by Acquire while the observed window size
	// has a zero dimension.
	ErrSuspended = errors.New("surface: suspended until a valid size is reported")

	// ErrStaleConfiguration is returned by Acquire when the stored
	// configuration does not match the last observed window size.
	ErrStaleConfiguration = errors.New("surface: stale configuration")

	// ErrNotConfigured is returned by Acquire before the first successful
	// Configure.
	ErrNotConfigured = errors.New("surface: not configured")

	// ErrImageOutstanding is returned by Acquire while a previously acquired
	// image has been neither presented nor discarded.
	ErrImageOutstanding = errors.New("surface: previous image still outstanding")

	// ErrImageReleased is returned when an image is presented or discarded
	// after it was already handed back, or was never acquired here.
	ErrImageReleased = errors.New("surface: image already released")

	// ErrNoCompatibleFormat is returned by ChooseFormat when none of the
	// platform formats can be rendered to.
	ErrNoCompatibleFormat = errors.New("surface: no compatible surface format")

	// ErrReleased is returned by every operation after Release.
	ErrReleased = errors.New("surface: manager released")
)
