//go:build darwin

package vkframe

import (
	vk "github.com/vulkan-go/vulkan"
)

// MoltenVK is only enumerated when the application opts in to portability
// implementations.
var (
	portabilityInstanceExtensions = []string{
		"VK_KHR_portability_enumeration",
		"VK_KHR_get_physical_device_properties2",
	}
	// VK_INSTANCE_CREATE_ENUMERATE_PORTABILITY_BIT_KHR
	portabilityInstanceFlags = vk.InstanceCreateFlags(0x00000001)

	portabilityDeviceExtensions = []string{"VK_KHR_portability_subset"}
)
