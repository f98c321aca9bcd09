package vkframe

import (
	"fmt"

	gu "github.com/docker/go-units"
	vk "github.com/vulkan-go/vulkan"
)

type Device struct {
	Driver         Driver
	PhysicalDevice *PhysicalDevice
	VKDevice       vk.Device
}

func (d *Device) Destroy() {
	d.Driver.DestroyDevice(d.VKDevice)
}

func (d *Device) String() string {
	return fmt.Sprintf("{ PhysicalDevice: %s }", d.PhysicalDevice)
}

// WaitIdle blocks until every queue of the device is idle.
func (d *Device) WaitIdle() error {
	return d.Driver.DeviceWaitIdle(d.VKDevice)
}

func (d *Device) GetQueue(qf *QueueFamily) *Queue {
	return &Queue{
		Device:      d,
		QueueFamily: qf,
		VKQueue:     d.Driver.GetDeviceQueue(d.VKDevice, uint32(qf.Index), 0),
	}
}

// Allocate allocates req.Size bytes from the first memory type compatible with req
// that carries every flag in props. The reported size may exceed the logical size of
// the resource because of alignment.
func (d *Device) Allocate(req vk.MemoryRequirements, props vk.MemoryPropertyFlags) (*DeviceMemory, error) {
	index, err := d.PhysicalDevice.FindMemoryType(req, props)
	if err != nil {
		return nil, err
	}

	allocateInfo := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  req.Size,
		MemoryTypeIndex: index,
	}

	memory, err := d.Driver.AllocateMemory(d.VKDevice, &allocateInfo)
	if err != nil {
		return nil, err
	}

	Logger().Debug("allocated device memory",
		"size", gu.BytesSize(float64(req.Size)),
		"type", index)

	return &DeviceMemory{
		Device:         d,
		VKDeviceMemory: memory,
		Size:           uint64(req.Size),
		TypeIndex:      index,
	}, nil
}
