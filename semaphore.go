package vkframe

import (
	vk "github.com/vulkan-go/vulkan"
)

//VKCreateSemaphore creates a native vulkan semaphore object
func (d *Device) VKCreateSemaphore() (vk.Semaphore, error) {
	semaphoreCreateInfo := vk.SemaphoreCreateInfo{
		SType: vk.StructureTypeSemaphoreCreateInfo,
	}
	return d.Driver.CreateSemaphore(d.VKDevice, &semaphoreCreateInfo)
}

func (d *Device) VKDestroySemaphore(s vk.Semaphore) {
	d.Driver.DestroySemaphore(d.VKDevice, s)
}
