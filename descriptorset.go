package vkframe

import (
	vk "github.com/vulkan-go/vulkan"
)

// DescriptorSet is a binding of resources to a descriptor, per a specific DescriptorSetLayout
type DescriptorSet struct {
	Device               *Device
	DescriptorPool       *DescriptorPool
	VKDescriptorSet      vk.DescriptorSet
	VKWriteDiscriptorSet []vk.WriteDescriptorSet
}

// AddBuffer queues a write of size bytes of b starting at offset to dstBinding.
// Nothing changes until Write.
func (du *DescriptorSet) AddBuffer(dstBinding int, dtype vk.DescriptorType, b *Buffer, offset, size uint64) *DescriptorSet {
	du.VKWriteDiscriptorSet = append(du.VKWriteDiscriptorSet, vk.WriteDescriptorSet{
		SType:           vk.StructureTypeWriteDescriptorSet,
		DstBinding:      uint32(dstBinding),
		DescriptorCount: 1,
		DescriptorType:  dtype,
		PBufferInfo: []vk.DescriptorBufferInfo{{
			Buffer: b.VKBuffer,
			Offset: vk.DeviceSize(offset),
			Range:  vk.DeviceSize(size),
		}},
	})
	return du
}

// Write applies the queued writes to the set.
func (du *DescriptorSet) Write() {
	if len(du.VKWriteDiscriptorSet) == 0 {
		return
	}
	for i := range du.VKWriteDiscriptorSet {
		du.VKWriteDiscriptorSet[i].DstSet = du.VKDescriptorSet
	}
	du.Device.Driver.UpdateDescriptorSets(du.Device.VKDevice, du.VKWriteDiscriptorSet)
	du.VKWriteDiscriptorSet = nil
}
