package vkframe

import (
	vk "github.com/vulkan-go/vulkan"
)

type CommandPool struct {
	Device        *Device
	QueueFamily   *QueueFamily
	VKCommandPool vk.CommandPool
}

// Destroy destroys the pool, which also frees every buffer allocated from it.
func (c *CommandPool) Destroy() {
	c.Device.Driver.DestroyCommandPool(c.Device.VKDevice, c.VKCommandPool)
}

// AllocateBuffers allocates count primary command buffers.
func (c *CommandPool) AllocateBuffers(count int) ([]*CommandBuffer, error) {

	var commandBufferAllocateInfo = vk.CommandBufferAllocateInfo{}
	commandBufferAllocateInfo.SType = vk.StructureTypeCommandBufferAllocateInfo
	commandBufferAllocateInfo.CommandPool = c.VKCommandPool
	commandBufferAllocateInfo.Level = vk.CommandBufferLevelPrimary
	commandBufferAllocateInfo.CommandBufferCount = uint32(count)

	cmdBuffers, err := c.Device.Driver.AllocateCommandBuffers(c.Device.VKDevice, &commandBufferAllocateInfo)
	if err != nil {
		return nil, err
	}

	ret := make([]*CommandBuffer, len(cmdBuffers))
	for i := range ret {
		ret[i] = &CommandBuffer{Driver: c.Device.Driver, VKCommandBuffer: cmdBuffers[i]}
	}

	return ret, nil
}

// CreateCommandPool creates a pool whose buffers can be reset individually.
func (d *Device) CreateCommandPool(q *QueueFamily) (*CommandPool, error) {
	var commandPoolCreateInfo = vk.CommandPoolCreateInfo{}
	commandPoolCreateInfo.SType = vk.StructureTypeCommandPoolCreateInfo
	commandPoolCreateInfo.Flags = vk.CommandPoolCreateFlags(vk.CommandPoolCreateResetCommandBufferBit)
	commandPoolCreateInfo.QueueFamilyIndex = uint32(q.Index)

	commandPool, err := d.Driver.CreateCommandPool(d.VKDevice, &commandPoolCreateInfo)
	if err != nil {
		return nil, err
	}

	return &CommandPool{Device: d, QueueFamily: q, VKCommandPool: commandPool}, nil
}
