package vkframe

import (
	vk "github.com/vulkan-go/vulkan"
)

// FindMemoryTypeIndex returns the lowest memory type index whose bit is set in
// req.MemoryTypeBits and whose property flags contain every bit of flags. Only the
// first props.MemoryTypeCount entries are considered. It reports false when no
// type qualifies; there is no fallback to a weaker set of flags.
func FindMemoryTypeIndex(req vk.MemoryRequirements, props vk.PhysicalDeviceMemoryProperties, flags vk.MemoryPropertyFlags) (uint32, bool) {
	for i, t := range MemoryTypes(props) {
		if req.MemoryTypeBits&(1<<uint(i)) == 0 {
			continue
		}
		if t.PropertyFlags&flags == flags {
			return uint32(i), true
		}
	}
	return 0, false
}

// MemoryTypeSlice is the valid part of a device's memory type table, in index order.
type MemoryTypeSlice []vk.MemoryType

// MemoryTypes returns the valid prefix of the memory type table.
func MemoryTypes(props vk.PhysicalDeviceMemoryProperties) MemoryTypeSlice {
	n := props.MemoryTypeCount
	if n > uint32(len(props.MemoryTypes)) {
		n = uint32(len(props.MemoryTypes))
	}
	return MemoryTypeSlice(props.MemoryTypes[:n])
}

func (m MemoryTypeSlice) Filter(f func(properties vk.MemoryPropertyFlagBits) bool) MemoryTypeSlice {
	res := make(MemoryTypeSlice, 0)
	for i := 0; i < len(m); i++ {
		if f(vk.MemoryPropertyFlagBits(m[i].PropertyFlags)) {
			res = append(res, m[i])
		}
	}
	return res
}

func (m MemoryTypeSlice) NumDeviceLocal() int {
	return len(m.Filter(func(properties vk.MemoryPropertyFlagBits) bool {
		return properties&vk.MemoryPropertyDeviceLocalBit != 0
	}))
}

func (m MemoryTypeSlice) NumHostVisibleAndCoherent() int {
	want := vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit
	return len(m.Filter(func(properties vk.MemoryPropertyFlagBits) bool {
		return properties&want == want
	}))
}
