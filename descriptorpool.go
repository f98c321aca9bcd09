package vkframe

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// DescriptorPool hands out descriptor sets of the types it was sized for.
type DescriptorPool struct {
	Device               *Device
	VKDescriptorPool     vk.DescriptorPool
	VKDescriptorPoolSize []vk.DescriptorPoolSize
}

func (d *Device) NewDescriptorPool() *DescriptorPool {
	return &DescriptorPool{Device: d}
}

// AddPoolSize informs the descriptor pool how many of a certain descriptortype it will contain
func (d *DescriptorPool) AddPoolSize(dtype vk.DescriptorType, count int) *DescriptorPool {
	d.VKDescriptorPoolSize = append(d.VKDescriptorPoolSize, vk.DescriptorPoolSize{
		Type:            dtype,
		DescriptorCount: uint32(count),
	})
	return d
}

// CreateDescriptorPool creates the pool for at most maxSets sets.
func (d *Device) CreateDescriptorPool(pool *DescriptorPool, maxSets int) (*DescriptorPool, error) {
	info := &vk.DescriptorPoolCreateInfo{
		SType:         vk.StructureTypeDescriptorPoolCreateInfo,
		MaxSets:       uint32(maxSets),
		PoolSizeCount: uint32(len(pool.VKDescriptorPoolSize)),
		PPoolSizes:    pool.VKDescriptorPoolSize,
	}

	descriptorPool, err := d.Driver.CreateDescriptorPool(d.VKDevice, info)
	if err != nil {
		return nil, err
	}

	pool.Device = d
	pool.VKDescriptorPool = descriptorPool
	return pool, nil
}

// Allocate allocates one descriptor set per layout. Sets are released with the pool.
func (d *DescriptorPool) Allocate(layouts ...*DescriptorSetLayout) ([]*DescriptorSet, error) {
	dsl := make([]vk.DescriptorSetLayout, len(layouts))
	for i, l := range layouts {
		dsl[i] = l.VKDescriptorSetLayout
	}

	sets, err := d.Device.Driver.AllocateDescriptorSets(d.Device.VKDevice, &vk.DescriptorSetAllocateInfo{
		SType:              vk.StructureTypeDescriptorSetAllocateInfo,
		DescriptorPool:     d.VKDescriptorPool,
		DescriptorSetCount: uint32(len(dsl)),
		PSetLayouts:        dsl,
	})
	if err != nil {
		return nil, err
	}
	if len(sets) != len(layouts) {
		return nil, fmt.Errorf("allocated %d descriptor sets for %d layouts", len(sets), len(layouts))
	}

	ret := make([]*DescriptorSet, len(sets))
	for i, s := range sets {
		ret[i] = &DescriptorSet{Device: d.Device, DescriptorPool: d, VKDescriptorSet: s}
	}
	return ret, nil
}

func (d *DescriptorPool) Destroy() {
	d.Device.Driver.DestroyDescriptorPool(d.Device.VKDevice, d.VKDescriptorPool)
}
