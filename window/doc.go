// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package window defines the platform event vocabulary consumed by the
// frame driver and the input bridge.
//
// The types here are platform-neutral. A concrete window adapter (see
// window/glfw) translates native callbacks into these events and queues
// them until the driver polls.
package window
