//go:build !darwin

package vkframe

import (
	vk "github.com/vulkan-go/vulkan"
)

var (
	portabilityInstanceExtensions []string
	portabilityInstanceFlags      vk.InstanceCreateFlags
	portabilityDeviceExtensions   []string
)
