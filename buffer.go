package vkframe

import (
	vk "github.com/vulkan-go/vulkan"
)

// Buffer are used to map hunks of data that are then bound to resources used by the pipeline
// and command buffers to render data.
type Buffer struct {
	Device   *Device
	VKBuffer vk.Buffer
	Size     uint64
}

func (d *Device) CreateBufferWithOptions(sizeInBytes uint64, usage vk.BufferUsageFlags, sharing vk.SharingMode) (*Buffer, error) {

	bufferCreateInfo := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        vk.DeviceSize(sizeInBytes),
		Usage:       usage,
		SharingMode: sharing,
	}

	buffer, err := d.Driver.CreateBuffer(d.VKDevice, &bufferCreateInfo)
	if err != nil {
		return nil, err
	}

	return &Buffer{Device: d, VKBuffer: buffer, Size: sizeInBytes}, nil
}

func (b *Buffer) VKMemoryRequirements() vk.MemoryRequirements {
	return b.Device.Driver.GetBufferMemoryRequirements(b.Device.VKDevice, b.VKBuffer)
}

func (b *Buffer) Bind(memory *DeviceMemory, offset uint64) error {
	return b.Device.Driver.BindBufferMemory(b.Device.VKDevice, b.VKBuffer, memory.VKDeviceMemory, vk.DeviceSize(offset))
}

func (b *Buffer) Destroy() {
	b.Device.Driver.DestroyBuffer(b.Device.VKDevice, b.VKBuffer)
}
