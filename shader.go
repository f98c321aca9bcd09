package vkframe

import (
	vk "github.com/vulkan-go/vulkan"
)

// DefaultEntryPoint is the shader entry point used by the pipeline config helpers.
const DefaultEntryPoint = "main"

type ShaderModule struct {
	Device         *Device
	Description    string
	VKShaderModule vk.ShaderModule
}

// CreateShaderModule creates a shader module from SPIR-V words.
func (d *Device) CreateShaderModule(description string, code []uint32) (*ShaderModule, error) {
	module, err := d.Driver.CreateShaderModule(d.VKDevice, &vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint(len(code) * 4),
		PCode:    code,
	})
	if err != nil {
		return nil, err
	}

	return &ShaderModule{Device: d, Description: description, VKShaderModule: module}, nil
}

func (s *ShaderModule) VKPipelineShaderStageCreateInfo(stage vk.ShaderStageFlagBits, entryPoint string) vk.PipelineShaderStageCreateInfo {
	var shaderStageCreateInfo = vk.PipelineShaderStageCreateInfo{}
	shaderStageCreateInfo.SType = vk.StructureTypePipelineShaderStageCreateInfo
	shaderStageCreateInfo.Stage = stage
	shaderStageCreateInfo.Module = s.VKShaderModule
	shaderStageCreateInfo.PName = safeString(entryPoint)
	return shaderStageCreateInfo
}

func (s *ShaderModule) Destroy() {
	s.Device.Driver.DestroyShaderModule(s.Device.VKDevice, s.VKShaderModule)
}
