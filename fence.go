package vkframe

import (
	vk "github.com/vulkan-go/vulkan"
)

// VKCreateFence creates a fence, optionally already signaled so the first wait on
// it returns immediately.
func (d *Device) VKCreateFence(signaled bool) (vk.Fence, error) {
	var fenceCreateInfo = vk.FenceCreateInfo{}
	fenceCreateInfo.SType = vk.StructureTypeFenceCreateInfo
	if signaled {
		fenceCreateInfo.Flags = vk.FenceCreateFlags(vk.FenceCreateSignaledBit)
	}
	return d.Driver.CreateFence(d.VKDevice, &fenceCreateInfo)
}

func (d *Device) VKDestroyFence(f vk.Fence) {
	d.Driver.DestroyFence(d.VKDevice, f)
}

// WaitForFence blocks without a timeout until f is signaled.
func (d *Device) WaitForFence(f vk.Fence) error {
	return d.Driver.WaitForFences(d.VKDevice, []vk.Fence{f}, true, vk.MaxUint64)
}

func (d *Device) ResetFence(f vk.Fence) error {
	return d.Driver.ResetFences(d.VKDevice, []vk.Fence{f})
}
