// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gpucontext"

// DeviceHandle provides GPU device access from the host application.
//
// A host that already owns a device (for example a gogpu.App) passes its
// DeviceHandle to the backend instead of letting it open a second device.
// DeviceHandle is an alias for gpucontext.DeviceProvider.
type DeviceHandle = gpucontext.DeviceProvider

// HalProvider is implemented by device handles that expose the underlying
// HAL device and queue. HalDevice returns a hal.Device and HalQueue a
// hal.Queue; they are typed any so this package does not depend on a
// particular HAL.
type HalProvider interface {
	HalDevice() any
	HalQueue() any
}
