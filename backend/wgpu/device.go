// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/imframe"
	"github.com/gogpu/imframe/render"
)

// Device errors.
var (
	// ErrBackendUnavailable is returned by OpenDevice when the requested
	// HAL backend is not compiled in or not supported by the platform.
	ErrBackendUnavailable = errors.New("wgpu: backend not available")

	// ErrNoAdapter is returned by OpenDevice when no GPU adapter exists.
	ErrNoAdapter = errors.New("wgpu: no GPU adapters found")

	// ErrNotHalProvider is returned by FromHandle for a device handle that
	// does not expose a HAL device and queue.
	ErrNotHalProvider = errors.New("wgpu: device handle does not expose a HAL device")

	// ErrNoInstance is returned by NewSurface on a borrowed device.
	ErrNoInstance = errors.New("wgpu: device has no instance to create surfaces from")
)

// GPUInfo contains information about the selected GPU.
type GPUInfo struct {
	// Name is the GPU name (e.g., "NVIDIA GeForce RTX 3080").
	Name string
	// Vendor is the GPU vendor.
	Vendor string
	// DeviceType is the type of GPU (discrete, integrated, etc.).
	DeviceType gputypes.DeviceType
	// Backend is the graphics API in use.
	Backend gputypes.Backend
	// Driver is the driver version string.
	Driver string
}

// String returns a human-readable description of the GPU.
func (g GPUInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", g.Name, g.DeviceType, g.Backend)
}

// Device is a HAL device and queue.
//
// A Device opened with OpenDevice owns its instance and device and
// destroys them on Close. A Device created with FromHandle or FromHAL
// borrows them and Close is a no-op.
type Device struct {
	instance hal.Instance
	adapter  hal.Adapter
	device   hal.Device
	queue    hal.Queue
	info     GPUInfo
	owned    bool
	closed   bool

	// format is the format of the last configured surface.
	format gputypes.TextureFormat
}

var (
	_ render.DeviceHandle = (*Device)(nil)
	_ render.HalProvider  = (*Device)(nil)
)

// OpenDevice creates an instance of backend, picks a GPU adapter
// (discrete or integrated first) and opens a device on it.
func OpenDevice(backend gputypes.Backend) (*Device, error) {
	b, ok := hal.GetBackend(backend)
	if !ok {
		return nil, fmt.Errorf("%w: %v (registered: %v)", ErrBackendUnavailable, backend, hal.AvailableBackends())
	}
	instance, err := b.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create instance: %w", err)
	}
	d, err := openOn(instance, backend)
	if err != nil {
		instance.Destroy()
		return nil, err
	}
	return d, nil
}

func openOn(instance hal.Instance, backend gputypes.Backend) (*Device, error) {
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return nil, ErrNoAdapter
	}

	selected := &adapters[0]
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}

	open, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return nil, fmt.Errorf("wgpu: open device: %w", err)
	}

	d := &Device{
		instance: instance,
		adapter:  selected.Adapter,
		device:   open.Device,
		queue:    open.Queue,
		owned:    true,
		info: GPUInfo{
			Name:       selected.Info.Name,
			Vendor:     selected.Info.Vendor,
			DeviceType: selected.Info.DeviceType,
			Backend:    backend,
			Driver:     selected.Info.Driver,
		},
	}
	imframe.Logger().Info("wgpu: device opened", "gpu", d.info.String(), "driver", d.info.Driver)
	return d, nil
}

// FromHandle borrows the HAL device and queue of a host-owned device
// handle. A handle implementing render.HalProvider is asked for them
// first; otherwise Device and Queue must return a hal.Device and a
// hal.Queue.
func FromHandle(h render.DeviceHandle) (*Device, error) {
	if h == nil {
		return nil, ErrNotHalProvider
	}
	var dev, q any = h.Device(), h.Queue()
	if p, ok := h.(render.HalProvider); ok {
		dev, q = p.HalDevice(), p.HalQueue()
	}
	device, ok := dev.(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: device is %T", ErrNotHalProvider, dev)
	}
	queue, ok := q.(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: queue is %T", ErrNotHalProvider, q)
	}
	d := FromHAL(device, queue)
	d.info.Name = h.AdapterInfo().Name
	d.format = h.SurfaceFormat()
	return d, nil
}

// FromHAL borrows device and queue. Surfaces cannot be created on a
// borrowed device.
func FromHAL(device hal.Device, queue hal.Queue) *Device {
	return &Device{device: device, queue: queue}
}

// HalDevice returns the hal.Device.
func (d *Device) HalDevice() any { return d.device }

// HalQueue returns the hal.Queue.
func (d *Device) HalQueue() any { return d.queue }

// Info returns the adapter description. It is zero for borrowed devices.
func (d *Device) Info() GPUInfo { return d.info }

// Device implements gpucontext.DeviceProvider. It returns the hal.Device.
func (d *Device) Device() gpucontext.Device { return d.device }

// Queue implements gpucontext.DeviceProvider. It returns the hal.Queue.
func (d *Device) Queue() gpucontext.Queue { return d.queue }

// Adapter implements gpucontext.DeviceProvider. It is nil for borrowed
// devices.
func (d *Device) Adapter() gpucontext.Adapter {
	if d.adapter == nil {
		return nil
	}
	return d.adapter
}

// SurfaceFormat implements gpucontext.DeviceProvider. It is
// TextureFormatUndefined until a surface of this device is configured.
func (d *Device) SurfaceFormat() gputypes.TextureFormat { return d.format }

// AdapterInfo implements gpucontext.DeviceProvider.
func (d *Device) AdapterInfo() gpucontext.AdapterInfo {
	info := gpucontext.AdapterInfo{Name: d.info.Name, Type: gpucontext.AdapterTypeUnknown}
	switch d.info.DeviceType {
	case gputypes.DeviceTypeDiscreteGPU:
		info.Type = gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		info.Type = gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		info.Type = gpucontext.AdapterTypeSoftware
	}
	return info
}

// Close destroys an owned device and its instance. It is a no-op for a
// borrowed device and safe to call more than once.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if !d.owned {
		return nil
	}
	if d.device != nil {
		d.device.Destroy()
	}
	if d.instance != nil {
		d.instance.Destroy()
	}
	return nil
}
