// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !android && !js

package wgpu

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

func TestVulkanBackendRegistered(t *testing.T) {
	if _, ok := hal.GetBackend(gputypes.BackendVulkan); !ok {
		t.Fatalf("Vulkan backend not registered, available: %v", hal.AvailableBackends())
	}
}
