package vkframe

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

// DeviceMemory maps to Vulkan DeviceMemory and can either be memory on the host or on the device
type DeviceMemory struct {
	Device         *Device
	VKDeviceMemory vk.DeviceMemory
	Size           uint64
	TypeIndex      uint32
	MapCount       int32
	Ptr            unsafe.Pointer
}

// IsMapped returns true if the device memory is currently mapped
func (d *DeviceMemory) IsMapped() bool {
	return atomic.LoadInt32(&d.MapCount) > 0
}

// Destroy frees this memory
func (d *DeviceMemory) Destroy() {
	d.Device.Driver.FreeMemory(d.Device.VKDevice, d.VKDeviceMemory)
}

// MapWithOffset will map the memory with a certain size and offset
func (d *DeviceMemory) MapWithOffset(size uint64, offset uint64) (unsafe.Pointer, error) {
	res, err := d.Device.Driver.MapMemory(d.Device.VKDevice, d.VKDeviceMemory, vk.DeviceSize(offset), vk.DeviceSize(size))
	if err != nil {
		return nil, err
	}
	atomic.AddInt32(&d.MapCount, 1)
	d.Ptr = res
	return res, nil
}

// Map will map the entirety of this memory
func (d *DeviceMemory) Map() (unsafe.Pointer, error) {
	return d.MapWithOffset(d.Size, 0)
}

// Unmap this memory
func (d *DeviceMemory) Unmap() {
	d.Ptr = nil
	d.Device.Driver.UnmapMemory(d.Device.VKDevice, d.VKDeviceMemory)
	atomic.AddInt32(&d.MapCount, -1)
}

// MapCopyUnmap will map this memory, copy the specified data to it and unmap
func (d *DeviceMemory) MapCopyUnmap(data []byte) error {
	if uint64(len(data)) > d.Size {
		return fmt.Errorf("copy of %d bytes into %d byte allocation", len(data), d.Size)
	}
	if len(data) == 0 {
		return nil
	}
	pm, err := d.MapWithOffset(uint64(len(data)), 0)
	if err != nil {
		return err
	}
	copy(unsafe.Slice((*byte)(pm), len(data)), data)
	d.Unmap()
	return nil
}

// Upload maps mem, copies data as its in-memory layout and unmaps again. T must be
// a fixed layout type without Go pointers.
func Upload[T any](mem *DeviceMemory, data []T) error {
	if len(data) == 0 {
		return nil
	}
	size := len(data) * int(unsafe.Sizeof(data[0]))
	return mem.MapCopyUnmap(unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), size))
}
