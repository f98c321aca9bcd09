package vkframe

import (
	vk "github.com/vulkan-go/vulkan"
)

type PipelineLayout struct {
	Device           *Device
	VKPipelineLayout vk.PipelineLayout
}

func (p *PipelineLayout) Destroy() {
	p.Device.Driver.DestroyPipelineLayout(p.Device.VKDevice, p.VKPipelineLayout)
}

// CreatePipelineLayoutWithOptions creates a layout with setLayouts bound at sets
// 0..n-1 and exposing pushConstants.
func (d *Device) CreatePipelineLayoutWithOptions(setLayouts []*DescriptorSetLayout, pushConstants []vk.PushConstantRange) (*PipelineLayout, error) {
	vkSetLayouts := make([]vk.DescriptorSetLayout, len(setLayouts))
	for i, l := range setLayouts {
		vkSetLayouts[i] = l.VKDescriptorSetLayout
	}

	var pipelineLayoutCreateInfo = vk.PipelineLayoutCreateInfo{}
	pipelineLayoutCreateInfo.SType = vk.StructureTypePipelineLayoutCreateInfo
	pipelineLayoutCreateInfo.SetLayoutCount = uint32(len(vkSetLayouts))
	pipelineLayoutCreateInfo.PSetLayouts = vkSetLayouts
	pipelineLayoutCreateInfo.PushConstantRangeCount = uint32(len(pushConstants))
	pipelineLayoutCreateInfo.PPushConstantRanges = pushConstants

	pipelineLayout, err := d.Driver.CreatePipelineLayout(d.VKDevice, &pipelineLayoutCreateInfo)
	if err != nil {
		return nil, err
	}

	return &PipelineLayout{Device: d, VKPipelineLayout: pipelineLayout}, nil
}

// CreatePipelineLayoutWithPushConstants creates a layout without descriptor sets
// exposing pushConstants.
func (d *Device) CreatePipelineLayoutWithPushConstants(pushConstants []vk.PushConstantRange) (*PipelineLayout, error) {
	return d.CreatePipelineLayoutWithOptions(nil, pushConstants)
}

// CreatePipelineLayout creates a layout binding setLayouts, without push
// constants. With no arguments the layout is empty.
func (d *Device) CreatePipelineLayout(setLayouts ...*DescriptorSetLayout) (*PipelineLayout, error) {
	return d.CreatePipelineLayoutWithOptions(setLayouts, nil)
}
