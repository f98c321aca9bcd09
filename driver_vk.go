package vkframe

import (
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

type vkDriver struct{}

// NewDriver returns a Driver that calls straight into the Vulkan loader. The loader
// must already be initialized, see window.Init.
func NewDriver() Driver {
	return vkDriver{}
}

func (vkDriver) CreateInstance(info *vk.InstanceCreateInfo) (vk.Instance, error) {
	var instance vk.Instance
	if err := vulkanError("vkCreateInstance", vk.CreateInstance(info, nil, &instance)); err != nil {
		return nil, err
	}
	if err := vk.InitInstance(instance); err != nil {
		vk.DestroyInstance(instance, nil)
		return nil, err
	}
	return instance, nil
}

func (vkDriver) DestroyInstance(instance vk.Instance) {
	vk.DestroyInstance(instance, nil)
}

func (vkDriver) CreateDebugReportCallback(instance vk.Instance, info *vk.DebugReportCallbackCreateInfo) (vk.DebugReportCallback, error) {
	var callback vk.DebugReportCallback
	err := vulkanError("vkCreateDebugReportCallbackEXT", vk.CreateDebugReportCallback(instance, info, nil, &callback))
	return callback, err
}

func (vkDriver) DestroyDebugReportCallback(instance vk.Instance, callback vk.DebugReportCallback) {
	vk.DestroyDebugReportCallback(instance, callback, nil)
}

func (vkDriver) DestroySurface(instance vk.Instance, surface vk.Surface) {
	vk.DestroySurface(instance, surface, nil)
}

func (vkDriver) EnumeratePhysicalDevices(instance vk.Instance) ([]vk.PhysicalDevice, error) {
	var count uint32
	err := enumerateError("vkEnumeratePhysicalDevices", vk.EnumeratePhysicalDevices(instance, &count, nil))
	if err != nil || count == 0 {
		return nil, err
	}
	devices := make([]vk.PhysicalDevice, count)
	err = enumerateError("vkEnumeratePhysicalDevices", vk.EnumeratePhysicalDevices(instance, &count, devices))
	if err != nil {
		return nil, err
	}
	return devices[:count], nil
}

func (vkDriver) GetPhysicalDeviceProperties(pd vk.PhysicalDevice) vk.PhysicalDeviceProperties {
	var props vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(pd, &props)
	props.Deref()
	props.Limits.Deref()
	return props
}

func (vkDriver) GetPhysicalDeviceFeatures(pd vk.PhysicalDevice) vk.PhysicalDeviceFeatures {
	var features vk.PhysicalDeviceFeatures
	vk.GetPhysicalDeviceFeatures(pd, &features)
	features.Deref()
	return features
}

func (vkDriver) GetPhysicalDeviceQueueFamilyProperties(pd vk.PhysicalDevice) []vk.QueueFamilyProperties {
	var count uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(pd, &count, nil)
	if count == 0 {
		return nil
	}
	families := make([]vk.QueueFamilyProperties, count)
	vk.GetPhysicalDeviceQueueFamilyProperties(pd, &count, families)
	for i := range families {
		families[i].Deref()
	}
	return families[:count]
}

func (vkDriver) GetPhysicalDeviceMemoryProperties(pd vk.PhysicalDevice) vk.PhysicalDeviceMemoryProperties {
	var props vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(pd, &props)
	props.Deref()
	for i := range props.MemoryTypes {
		props.MemoryTypes[i].Deref()
	}
	for i := range props.MemoryHeaps {
		props.MemoryHeaps[i].Deref()
	}
	return props
}

func (vkDriver) GetPhysicalDeviceSurfaceSupport(pd vk.PhysicalDevice, queueFamily uint32, surface vk.Surface) (bool, error) {
	var supported vk.Bool32
	err := vulkanError("vkGetPhysicalDeviceSurfaceSupportKHR", vk.GetPhysicalDeviceSurfaceSupport(pd, queueFamily, surface, &supported))
	return supported == vk.True, err
}

func (vkDriver) GetPhysicalDeviceSurfaceFormats(pd vk.PhysicalDevice, surface vk.Surface) ([]vk.SurfaceFormat, error) {
	var count uint32
	err := enumerateError("vkGetPhysicalDeviceSurfaceFormatsKHR", vk.GetPhysicalDeviceSurfaceFormats(pd, surface, &count, nil))
	if err != nil || count == 0 {
		return nil, err
	}
	formats := make([]vk.SurfaceFormat, count)
	err = enumerateError("vkGetPhysicalDeviceSurfaceFormatsKHR", vk.GetPhysicalDeviceSurfaceFormats(pd, surface, &count, formats))
	if err != nil {
		return nil, err
	}
	formats = formats[:count]
	for i := range formats {
		formats[i].Deref()
	}
	return formats, nil
}

func (vkDriver) GetPhysicalDeviceSurfaceCapabilities(pd vk.PhysicalDevice, surface vk.Surface) (vk.SurfaceCapabilities, error) {
	var caps vk.SurfaceCapabilities
	err := vulkanError("vkGetPhysicalDeviceSurfaceCapabilitiesKHR", vk.GetPhysicalDeviceSurfaceCapabilities(pd, surface, &caps))
	if err != nil {
		return caps, err
	}
	caps.Deref()
	caps.CurrentExtent.Deref()
	caps.MinImageExtent.Deref()
	caps.MaxImageExtent.Deref()
	return caps, nil
}

func (vkDriver) GetPhysicalDeviceSurfacePresentModes(pd vk.PhysicalDevice, surface vk.Surface) ([]vk.PresentMode, error) {
	var count uint32
	err := enumerateError("vkGetPhysicalDeviceSurfacePresentModesKHR", vk.GetPhysicalDeviceSurfacePresentModes(pd, surface, &count, nil))
	if err != nil || count == 0 {
		return nil, err
	}
	modes := make([]vk.PresentMode, count)
	err = enumerateError("vkGetPhysicalDeviceSurfacePresentModesKHR", vk.GetPhysicalDeviceSurfacePresentModes(pd, surface, &count, modes))
	return modes[:count], err
}

func (vkDriver) CreateDevice(pd vk.PhysicalDevice, info *vk.DeviceCreateInfo) (vk.Device, error) {
	var device vk.Device
	err := vulkanError("vkCreateDevice", vk.CreateDevice(pd, info, nil, &device))
	return device, err
}

func (vkDriver) DestroyDevice(device vk.Device) {
	vk.DestroyDevice(device, nil)
}

func (vkDriver) DeviceWaitIdle(device vk.Device) error {
	return vulkanError("vkDeviceWaitIdle", vk.DeviceWaitIdle(device))
}

func (vkDriver) GetDeviceQueue(device vk.Device, queueFamily, index uint32) vk.Queue {
	var queue vk.Queue
	vk.GetDeviceQueue(device, queueFamily, index, &queue)
	return queue
}

func (vkDriver) CreateSwapchain(device vk.Device, info *vk.SwapchainCreateInfo) (vk.Swapchain, error) {
	var swapchain vk.Swapchain
	err := vulkanError("vkCreateSwapchainKHR", vk.CreateSwapchain(device, info, nil, &swapchain))
	return swapchain, err
}

func (vkDriver) DestroySwapchain(device vk.Device, swapchain vk.Swapchain) {
	vk.DestroySwapchain(device, swapchain, nil)
}

func (vkDriver) GetSwapchainImages(device vk.Device, swapchain vk.Swapchain) ([]vk.Image, error) {
	var count uint32
	err := enumerateError("vkGetSwapchainImagesKHR", vk.GetSwapchainImages(device, swapchain, &count, nil))
	if err != nil {
		return nil, err
	}
	images := make([]vk.Image, count)
	err = enumerateError("vkGetSwapchainImagesKHR", vk.GetSwapchainImages(device, swapchain, &count, images))
	return images[:count], err
}

func (vkDriver) CreateCommandPool(device vk.Device, info *vk.CommandPoolCreateInfo) (vk.CommandPool, error) {
	var pool vk.CommandPool
	err := vulkanError("vkCreateCommandPool", vk.CreateCommandPool(device, info, nil, &pool))
	return pool, err
}

func (vkDriver) DestroyCommandPool(device vk.Device, pool vk.CommandPool) {
	vk.DestroyCommandPool(device, pool, nil)
}

func (vkDriver) AllocateCommandBuffers(device vk.Device, info *vk.CommandBufferAllocateInfo) ([]vk.CommandBuffer, error) {
	buffers := make([]vk.CommandBuffer, info.CommandBufferCount)
	err := vulkanError("vkAllocateCommandBuffers", vk.AllocateCommandBuffers(device, info, buffers))
	if err != nil {
		return nil, err
	}
	return buffers, nil
}

func (vkDriver) CreateImage(device vk.Device, info *vk.ImageCreateInfo) (vk.Image, error) {
	var image vk.Image
	err := vulkanError("vkCreateImage", vk.CreateImage(device, info, nil, &image))
	return image, err
}

func (vkDriver) DestroyImage(device vk.Device, image vk.Image) {
	vk.DestroyImage(device, image, nil)
}

func (vkDriver) GetImageMemoryRequirements(device vk.Device, image vk.Image) vk.MemoryRequirements {
	var req vk.MemoryRequirements
	vk.GetImageMemoryRequirements(device, image, &req)
	req.Deref()
	return req
}

func (vkDriver) BindImageMemory(device vk.Device, image vk.Image, memory vk.DeviceMemory, offset vk.DeviceSize) error {
	return vulkanError("vkBindImageMemory", vk.BindImageMemory(device, image, memory, offset))
}

func (vkDriver) CreateImageView(device vk.Device, info *vk.ImageViewCreateInfo) (vk.ImageView, error) {
	var view vk.ImageView
	err := vulkanError("vkCreateImageView", vk.CreateImageView(device, info, nil, &view))
	return view, err
}

func (vkDriver) DestroyImageView(device vk.Device, view vk.ImageView) {
	vk.DestroyImageView(device, view, nil)
}

func (vkDriver) CreateBuffer(device vk.Device, info *vk.BufferCreateInfo) (vk.Buffer, error) {
	var buffer vk.Buffer
	err := vulkanError("vkCreateBuffer", vk.CreateBuffer(device, info, nil, &buffer))
	return buffer, err
}

func (vkDriver) DestroyBuffer(device vk.Device, buffer vk.Buffer) {
	vk.DestroyBuffer(device, buffer, nil)
}

func (vkDriver) GetBufferMemoryRequirements(device vk.Device, buffer vk.Buffer) vk.MemoryRequirements {
	var req vk.MemoryRequirements
	vk.GetBufferMemoryRequirements(device, buffer, &req)
	req.Deref()
	return req
}

func (vkDriver) BindBufferMemory(device vk.Device, buffer vk.Buffer, memory vk.DeviceMemory, offset vk.DeviceSize) error {
	return vulkanError("vkBindBufferMemory", vk.BindBufferMemory(device, buffer, memory, offset))
}

func (vkDriver) AllocateMemory(device vk.Device, info *vk.MemoryAllocateInfo) (vk.DeviceMemory, error) {
	var memory vk.DeviceMemory
	err := vulkanError("vkAllocateMemory", vk.AllocateMemory(device, info, nil, &memory))
	return memory, err
}

func (vkDriver) FreeMemory(device vk.Device, memory vk.DeviceMemory) {
	vk.FreeMemory(device, memory, nil)
}

func (vkDriver) MapMemory(device vk.Device, memory vk.DeviceMemory, offset, size vk.DeviceSize) (unsafe.Pointer, error) {
	var ptr unsafe.Pointer
	err := vulkanError("vkMapMemory", vk.MapMemory(device, memory, offset, size, 0, &ptr))
	return ptr, err
}

func (vkDriver) UnmapMemory(device vk.Device, memory vk.DeviceMemory) {
	vk.UnmapMemory(device, memory)
}

func (vkDriver) CreateRenderPass(device vk.Device, info *vk.RenderPassCreateInfo) (vk.RenderPass, error) {
	var renderPass vk.RenderPass
	err := vulkanError("vkCreateRenderPass", vk.CreateRenderPass(device, info, nil, &renderPass))
	return renderPass, err
}

func (vkDriver) DestroyRenderPass(device vk.Device, renderPass vk.RenderPass) {
	vk.DestroyRenderPass(device, renderPass, nil)
}

func (vkDriver) CreateFramebuffer(device vk.Device, info *vk.FramebufferCreateInfo) (vk.Framebuffer, error) {
	var framebuffer vk.Framebuffer
	err := vulkanError("vkCreateFramebuffer", vk.CreateFramebuffer(device, info, nil, &framebuffer))
	return framebuffer, err
}

func (vkDriver) DestroyFramebuffer(device vk.Device, framebuffer vk.Framebuffer) {
	vk.DestroyFramebuffer(device, framebuffer, nil)
}

func (vkDriver) CreateShaderModule(device vk.Device, info *vk.ShaderModuleCreateInfo) (vk.ShaderModule, error) {
	var module vk.ShaderModule
	err := vulkanError("vkCreateShaderModule", vk.CreateShaderModule(device, info, nil, &module))
	return module, err
}

func (vkDriver) DestroyShaderModule(device vk.Device, module vk.ShaderModule) {
	vk.DestroyShaderModule(device, module, nil)
}

func (vkDriver) CreatePipelineLayout(device vk.Device, info *vk.PipelineLayoutCreateInfo) (vk.PipelineLayout, error) {
	var layout vk.PipelineLayout
	err := vulkanError("vkCreatePipelineLayout", vk.CreatePipelineLayout(device, info, nil, &layout))
	return layout, err
}

func (vkDriver) DestroyPipelineLayout(device vk.Device, layout vk.PipelineLayout) {
	vk.DestroyPipelineLayout(device, layout, nil)
}

func (vkDriver) CreateDescriptorSetLayout(device vk.Device, info *vk.DescriptorSetLayoutCreateInfo) (vk.DescriptorSetLayout, error) {
	var layout vk.DescriptorSetLayout
	err := vulkanError("vkCreateDescriptorSetLayout", vk.CreateDescriptorSetLayout(device, info, nil, &layout))
	return layout, err
}

func (vkDriver) DestroyDescriptorSetLayout(device vk.Device, layout vk.DescriptorSetLayout) {
	vk.DestroyDescriptorSetLayout(device, layout, nil)
}

func (vkDriver) CreateDescriptorPool(device vk.Device, info *vk.DescriptorPoolCreateInfo) (vk.DescriptorPool, error) {
	var pool vk.DescriptorPool
	err := vulkanError("vkCreateDescriptorPool", vk.CreateDescriptorPool(device, info, nil, &pool))
	return pool, err
}

func (vkDriver) DestroyDescriptorPool(device vk.Device, pool vk.DescriptorPool) {
	vk.DestroyDescriptorPool(device, pool, nil)
}

func (vkDriver) AllocateDescriptorSets(device vk.Device, info *vk.DescriptorSetAllocateInfo) ([]vk.DescriptorSet, error) {
	sets := make([]vk.DescriptorSet, info.DescriptorSetCount)
	if len(sets) == 0 {
		return nil, nil
	}
	err := vulkanError("vkAllocateDescriptorSets", vk.AllocateDescriptorSets(device, info, &sets[0]))
	return sets, err
}

func (vkDriver) UpdateDescriptorSets(device vk.Device, writes []vk.WriteDescriptorSet) {
	vk.UpdateDescriptorSets(device, uint32(len(writes)), writes, 0, nil)
}

func (vkDriver) CreatePipelineCache(device vk.Device, info *vk.PipelineCacheCreateInfo) (vk.PipelineCache, error) {
	var cache vk.PipelineCache
	err := vulkanError("vkCreatePipelineCache", vk.CreatePipelineCache(device, info, nil, &cache))
	return cache, err
}

func (vkDriver) DestroyPipelineCache(device vk.Device, cache vk.PipelineCache) {
	vk.DestroyPipelineCache(device, cache, nil)
}

func (vkDriver) CreateGraphicsPipelines(device vk.Device, cache vk.PipelineCache, infos []vk.GraphicsPipelineCreateInfo) ([]vk.Pipeline, error) {
	pipelines := make([]vk.Pipeline, len(infos))
	err := vulkanError("vkCreateGraphicsPipelines", vk.CreateGraphicsPipelines(device, cache, uint32(len(infos)), infos, nil, pipelines))
	if err != nil {
		return nil, err
	}
	return pipelines, nil
}

func (vkDriver) DestroyPipeline(device vk.Device, pipeline vk.Pipeline) {
	vk.DestroyPipeline(device, pipeline, nil)
}

func (vkDriver) CreateFence(device vk.Device, info *vk.FenceCreateInfo) (vk.Fence, error) {
	var fence vk.Fence
	err := vulkanError("vkCreateFence", vk.CreateFence(device, info, nil, &fence))
	return fence, err
}

func (vkDriver) DestroyFence(device vk.Device, fence vk.Fence) {
	vk.DestroyFence(device, fence, nil)
}

func (vkDriver) WaitForFences(device vk.Device, fences []vk.Fence, waitAll bool, timeout uint64) error {
	wait := vk.Bool32(vk.False)
	if waitAll {
		wait = vk.True
	}
	return vulkanError("vkWaitForFences", vk.WaitForFences(device, uint32(len(fences)), fences, wait, timeout))
}

func (vkDriver) ResetFences(device vk.Device, fences []vk.Fence) error {
	return vulkanError("vkResetFences", vk.ResetFences(device, uint32(len(fences)), fences))
}

func (vkDriver) CreateSemaphore(device vk.Device, info *vk.SemaphoreCreateInfo) (vk.Semaphore, error) {
	var semaphore vk.Semaphore
	err := vulkanError("vkCreateSemaphore", vk.CreateSemaphore(device, info, nil, &semaphore))
	return semaphore, err
}

func (vkDriver) DestroySemaphore(device vk.Device, semaphore vk.Semaphore) {
	vk.DestroySemaphore(device, semaphore, nil)
}

func (vkDriver) AcquireNextImage(device vk.Device, swapchain vk.Swapchain, timeout uint64, semaphore vk.Semaphore, fence vk.Fence) (uint32, error) {
	var index uint32
	err := presentError("vkAcquireNextImageKHR", vk.AcquireNextImage(device, swapchain, timeout, semaphore, fence, &index))
	return index, err
}

func (vkDriver) QueueSubmit(queue vk.Queue, submits []vk.SubmitInfo, fence vk.Fence) error {
	return vulkanError("vkQueueSubmit", vk.QueueSubmit(queue, uint32(len(submits)), submits, fence))
}

func (vkDriver) QueuePresent(queue vk.Queue, info *vk.PresentInfo) error {
	return presentError("vkQueuePresentKHR", vk.QueuePresent(queue, info))
}

func (vkDriver) QueueWaitIdle(queue vk.Queue) error {
	return vulkanError("vkQueueWaitIdle", vk.QueueWaitIdle(queue))
}

func (vkDriver) ResetCommandBuffer(cmd vk.CommandBuffer, flags vk.CommandBufferResetFlags) error {
	return vulkanError("vkResetCommandBuffer", vk.ResetCommandBuffer(cmd, flags))
}

func (vkDriver) BeginCommandBuffer(cmd vk.CommandBuffer, info *vk.CommandBufferBeginInfo) error {
	return vulkanError("vkBeginCommandBuffer", vk.BeginCommandBuffer(cmd, info))
}

func (vkDriver) EndCommandBuffer(cmd vk.CommandBuffer) error {
	return vulkanError("vkEndCommandBuffer", vk.EndCommandBuffer(cmd))
}

func (vkDriver) CmdPipelineBarrier(cmd vk.CommandBuffer, srcStage, dstStage vk.PipelineStageFlags, imageBarriers []vk.ImageMemoryBarrier) {
	vk.CmdPipelineBarrier(cmd, srcStage, dstStage, 0, 0, nil, 0, nil, uint32(len(imageBarriers)), imageBarriers)
}

func (vkDriver) CmdBeginRenderPass(cmd vk.CommandBuffer, info *vk.RenderPassBeginInfo, contents vk.SubpassContents) {
	vk.CmdBeginRenderPass(cmd, info, contents)
}

func (vkDriver) CmdEndRenderPass(cmd vk.CommandBuffer) {
	vk.CmdEndRenderPass(cmd)
}

func (vkDriver) CmdBindPipeline(cmd vk.CommandBuffer, bindPoint vk.PipelineBindPoint, pipeline vk.Pipeline) {
	vk.CmdBindPipeline(cmd, bindPoint, pipeline)
}

func (vkDriver) CmdBindDescriptorSets(cmd vk.CommandBuffer, bindPoint vk.PipelineBindPoint, layout vk.PipelineLayout, firstSet uint32, sets []vk.DescriptorSet) {
	vk.CmdBindDescriptorSets(cmd, bindPoint, layout, firstSet, uint32(len(sets)), sets, 0, nil)
}

func (vkDriver) CmdSetViewport(cmd vk.CommandBuffer, viewports []vk.Viewport) {
	vk.CmdSetViewport(cmd, 0, uint32(len(viewports)), viewports)
}

func (vkDriver) CmdSetScissor(cmd vk.CommandBuffer, scissors []vk.Rect2D) {
	vk.CmdSetScissor(cmd, 0, uint32(len(scissors)), scissors)
}

func (vkDriver) CmdBindVertexBuffers(cmd vk.CommandBuffer, buffers []vk.Buffer, offsets []vk.DeviceSize) {
	vk.CmdBindVertexBuffers(cmd, 0, uint32(len(buffers)), buffers, offsets)
}

func (vkDriver) CmdBindIndexBuffer(cmd vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, indexType vk.IndexType) {
	vk.CmdBindIndexBuffer(cmd, buffer, offset, indexType)
}

func (vkDriver) CmdDrawIndexed(cmd vk.CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	vk.CmdDrawIndexed(cmd, indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
}
