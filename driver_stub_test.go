package vkframe

import (
	"errors"
	"fmt"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

// stubCall is one driver entry point invocation. handle is the address of the object
// the call was about, zero when there is none. vk handles point at incomplete C types
// so they are compared by address, never with == on the handle itself.
type stubCall struct {
	op     string
	handle uintptr
}

// stubDriver is an in-memory Driver. It hands out unique fake handles, records
// every call in order and completes submitted work immediately.
type stubDriver struct {
	calls []stubCall
	// fail makes the named entry point return the given error.
	fail map[string]error

	physicalDevices int
	queueFamilies   []vk.QueueFamilyProperties
	presentSupport  bool
	formats         []vk.SurfaceFormat
	presentModes    []vk.PresentMode
	caps            vk.SurfaceCapabilities
	memProps        vk.PhysicalDeviceMemoryProperties
	memReq          vk.MemoryRequirements
	limits          vk.PhysicalDeviceLimits

	deviceInfo    *vk.DeviceCreateInfo
	instanceInfo  *vk.InstanceCreateInfo
	swapchainInfo *vk.SwapchainCreateInfo
	layoutInfo    *vk.PipelineLayoutCreateInfo
	barriers      []vk.ImageMemoryBarrier
	submits       []vk.SubmitInfo
	writes        []vk.WriteDescriptorSet

	fences     map[uintptr]bool
	memory     map[uintptr][]byte
	nextImage  uint32
	imageCount uint32
	// acquireResult and presentResult are the raw results the swapchain calls
	// report, converted the way the system driver converts them.
	acquireResult vk.Result
	presentResult vk.Result
}

func newStubDriver() *stubDriver {
	return &stubDriver{
		fail:            map[string]error{},
		physicalDevices: 1,
		queueFamilies: []vk.QueueFamilyProperties{{
			QueueFlags: vk.QueueFlags(vk.QueueGraphicsBit | vk.QueueComputeBit | vk.QueueTransferBit),
			QueueCount: 1,
		}},
		presentSupport: true,
		formats: []vk.SurfaceFormat{
			{Format: vk.FormatB8g8r8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear},
			{Format: vk.FormatR8g8b8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear},
		},
		presentModes: []vk.PresentMode{vk.PresentModeFifo, vk.PresentModeMailbox},
		caps: vk.SurfaceCapabilities{
			MinImageCount:       2,
			MaxImageCount:       0,
			CurrentExtent:       vk.Extent2D{Width: vk.MaxUint32, Height: vk.MaxUint32},
			SupportedTransforms: vk.SurfaceTransformFlags(vk.SurfaceTransformIdentityBit),
			CurrentTransform:    vk.SurfaceTransformIdentityBit,
		},
		memProps: memoryProps(deviceLocal, hostVisible|hostCoherent),
		memReq:   vk.MemoryRequirements{Size: 4096, Alignment: 256, MemoryTypeBits: 0x3},
		fences:   map[uintptr]bool{},
		memory:   map[uintptr][]byte{},
	}
}

var errStub = errors.New("stub failure")

// handleArena keeps every fake handle reachable so no two live handles share an
// address for the life of the test binary.
var handleArena []*uint64

func newHandle() unsafe.Pointer {
	p := new(uint64)
	handleArena = append(handleArena, p)
	return unsafe.Pointer(p)
}

func addr(handle unsafe.Pointer) uintptr {
	return uintptr(handle)
}

func (s *stubDriver) record(op string, handle unsafe.Pointer) error {
	s.calls = append(s.calls, stubCall{op: op, handle: addr(handle)})
	return s.fail[op]
}

// backing returns the host bytes behind an allocation.
func (s *stubDriver) backing(memory vk.DeviceMemory) []byte {
	return s.memory[addr(unsafe.Pointer(memory))]
}

func (s *stubDriver) ops() []string {
	ret := make([]string, len(s.calls))
	for i, c := range s.calls {
		ret[i] = c.op
	}
	return ret
}

// callsAfter returns the calls recorded after the last call to op.
func (s *stubDriver) callsAfter(op string) []stubCall {
	for i := len(s.calls) - 1; i >= 0; i-- {
		if s.calls[i].op == op {
			return s.calls[i+1:]
		}
	}
	return nil
}

func (s *stubDriver) count(op string, handle uintptr) int {
	n := 0
	for _, c := range s.calls {
		if c.op == op && c.handle == handle {
			n++
		}
	}
	return n
}

func (s *stubDriver) CreateInstance(info *vk.InstanceCreateInfo) (vk.Instance, error) {
	s.instanceInfo = info
	h := newHandle()
	return vk.Instance(h), s.record("CreateInstance", h)
}

func (s *stubDriver) DestroyInstance(instance vk.Instance) {
	s.record("DestroyInstance", unsafe.Pointer(instance))
}

func (s *stubDriver) CreateDebugReportCallback(instance vk.Instance, info *vk.DebugReportCallbackCreateInfo) (vk.DebugReportCallback, error) {
	h := newHandle()
	return vk.DebugReportCallback(h), s.record("CreateDebugReportCallback", h)
}

func (s *stubDriver) DestroyDebugReportCallback(instance vk.Instance, callback vk.DebugReportCallback) {
	s.record("DestroyDebugReportCallback", unsafe.Pointer(callback))
}

func (s *stubDriver) DestroySurface(instance vk.Instance, surface vk.Surface) {
	s.record("DestroySurface", unsafe.Pointer(surface))
}

func (s *stubDriver) EnumeratePhysicalDevices(instance vk.Instance) ([]vk.PhysicalDevice, error) {
	ret := make([]vk.PhysicalDevice, s.physicalDevices)
	for i := range ret {
		ret[i] = vk.PhysicalDevice(newHandle())
	}
	return ret, s.record("EnumeratePhysicalDevices", nil)
}

func (s *stubDriver) GetPhysicalDeviceProperties(pd vk.PhysicalDevice) vk.PhysicalDeviceProperties {
	var props vk.PhysicalDeviceProperties
	copy(props.DeviceName[:], "stub gpu")
	props.Limits = s.limits
	return props
}

func (s *stubDriver) GetPhysicalDeviceFeatures(pd vk.PhysicalDevice) vk.PhysicalDeviceFeatures {
	return vk.PhysicalDeviceFeatures{ShaderClipDistance: vk.True}
}

func (s *stubDriver) GetPhysicalDeviceQueueFamilyProperties(pd vk.PhysicalDevice) []vk.QueueFamilyProperties {
	return s.queueFamilies
}

func (s *stubDriver) GetPhysicalDeviceMemoryProperties(pd vk.PhysicalDevice) vk.PhysicalDeviceMemoryProperties {
	return s.memProps
}

func (s *stubDriver) GetPhysicalDeviceSurfaceSupport(pd vk.PhysicalDevice, queueFamily uint32, surface vk.Surface) (bool, error) {
	return s.presentSupport, s.fail["GetPhysicalDeviceSurfaceSupport"]
}

func (s *stubDriver) GetPhysicalDeviceSurfaceFormats(pd vk.PhysicalDevice, surface vk.Surface) ([]vk.SurfaceFormat, error) {
	return s.formats, s.fail["GetPhysicalDeviceSurfaceFormats"]
}

func (s *stubDriver) GetPhysicalDeviceSurfaceCapabilities(pd vk.PhysicalDevice, surface vk.Surface) (vk.SurfaceCapabilities, error) {
	return s.caps, s.fail["GetPhysicalDeviceSurfaceCapabilities"]
}

func (s *stubDriver) GetPhysicalDeviceSurfacePresentModes(pd vk.PhysicalDevice, surface vk.Surface) ([]vk.PresentMode, error) {
	return s.presentModes, s.fail["GetPhysicalDeviceSurfacePresentModes"]
}

func (s *stubDriver) CreateDevice(pd vk.PhysicalDevice, info *vk.DeviceCreateInfo) (vk.Device, error) {
	s.deviceInfo = info
	h := newHandle()
	return vk.Device(h), s.record("CreateDevice", h)
}

func (s *stubDriver) DestroyDevice(device vk.Device) {
	s.record("DestroyDevice", unsafe.Pointer(device))
}

func (s *stubDriver) DeviceWaitIdle(device vk.Device) error {
	return s.record("DeviceWaitIdle", unsafe.Pointer(device))
}

func (s *stubDriver) GetDeviceQueue(device vk.Device, queueFamily, index uint32) vk.Queue {
	return vk.Queue(newHandle())
}

func (s *stubDriver) CreateSwapchain(device vk.Device, info *vk.SwapchainCreateInfo) (vk.Swapchain, error) {
	s.swapchainInfo = info
	s.imageCount = info.MinImageCount
	h := newHandle()
	return vk.Swapchain(h), s.record("CreateSwapchain", h)
}

func (s *stubDriver) DestroySwapchain(device vk.Device, swapchain vk.Swapchain) {
	s.record("DestroySwapchain", unsafe.Pointer(swapchain))
}

func (s *stubDriver) GetSwapchainImages(device vk.Device, swapchain vk.Swapchain) ([]vk.Image, error) {
	ret := make([]vk.Image, s.imageCount)
	for i := range ret {
		ret[i] = vk.Image(newHandle())
	}
	return ret, s.record("GetSwapchainImages", unsafe.Pointer(swapchain))
}

func (s *stubDriver) CreateCommandPool(device vk.Device, info *vk.CommandPoolCreateInfo) (vk.CommandPool, error) {
	h := newHandle()
	return vk.CommandPool(h), s.record("CreateCommandPool", h)
}

func (s *stubDriver) DestroyCommandPool(device vk.Device, pool vk.CommandPool) {
	s.record("DestroyCommandPool", unsafe.Pointer(pool))
}

func (s *stubDriver) AllocateCommandBuffers(device vk.Device, info *vk.CommandBufferAllocateInfo) ([]vk.CommandBuffer, error) {
	ret := make([]vk.CommandBuffer, info.CommandBufferCount)
	for i := range ret {
		ret[i] = vk.CommandBuffer(newHandle())
	}
	return ret, s.record("AllocateCommandBuffers", unsafe.Pointer(info.CommandPool))
}

func (s *stubDriver) CreateImage(device vk.Device, info *vk.ImageCreateInfo) (vk.Image, error) {
	h := newHandle()
	return vk.Image(h), s.record("CreateImage", h)
}

func (s *stubDriver) DestroyImage(device vk.Device, image vk.Image) {
	s.record("DestroyImage", unsafe.Pointer(image))
}

func (s *stubDriver) GetImageMemoryRequirements(device vk.Device, image vk.Image) vk.MemoryRequirements {
	return s.memReq
}

func (s *stubDriver) BindImageMemory(device vk.Device, image vk.Image, memory vk.DeviceMemory, offset vk.DeviceSize) error {
	if offset != 0 {
		return fmt.Errorf("bind at offset %d", offset)
	}
	return s.record("BindImageMemory", unsafe.Pointer(image))
}

func (s *stubDriver) CreateImageView(device vk.Device, info *vk.ImageViewCreateInfo) (vk.ImageView, error) {
	h := newHandle()
	return vk.ImageView(h), s.record("CreateImageView", h)
}

func (s *stubDriver) DestroyImageView(device vk.Device, view vk.ImageView) {
	s.record("DestroyImageView", unsafe.Pointer(view))
}

func (s *stubDriver) CreateBuffer(device vk.Device, info *vk.BufferCreateInfo) (vk.Buffer, error) {
	h := newHandle()
	return vk.Buffer(h), s.record("CreateBuffer", h)
}

func (s *stubDriver) DestroyBuffer(device vk.Device, buffer vk.Buffer) {
	s.record("DestroyBuffer", unsafe.Pointer(buffer))
}

func (s *stubDriver) GetBufferMemoryRequirements(device vk.Device, buffer vk.Buffer) vk.MemoryRequirements {
	return s.memReq
}

func (s *stubDriver) BindBufferMemory(device vk.Device, buffer vk.Buffer, memory vk.DeviceMemory, offset vk.DeviceSize) error {
	if offset != 0 {
		return fmt.Errorf("bind at offset %d", offset)
	}
	return s.record("BindBufferMemory", unsafe.Pointer(buffer))
}

func (s *stubDriver) AllocateMemory(device vk.Device, info *vk.MemoryAllocateInfo) (vk.DeviceMemory, error) {
	h := newHandle()
	mem := vk.DeviceMemory(h)
	if err := s.record("AllocateMemory", h); err != nil {
		return mem, err
	}
	s.memory[addr(h)] = make([]byte, info.AllocationSize)
	return mem, nil
}

func (s *stubDriver) FreeMemory(device vk.Device, memory vk.DeviceMemory) {
	s.record("FreeMemory", unsafe.Pointer(memory))
}

func (s *stubDriver) MapMemory(device vk.Device, memory vk.DeviceMemory, offset, size vk.DeviceSize) (unsafe.Pointer, error) {
	if err := s.record("MapMemory", unsafe.Pointer(memory)); err != nil {
		return nil, err
	}
	backing := s.backing(memory)
	if uint64(offset)+uint64(size) > uint64(len(backing)) {
		return nil, fmt.Errorf("map of %d bytes at %d exceeds %d", size, offset, len(backing))
	}
	return unsafe.Pointer(&backing[offset]), nil
}

func (s *stubDriver) UnmapMemory(device vk.Device, memory vk.DeviceMemory) {
	s.record("UnmapMemory", unsafe.Pointer(memory))
}

func (s *stubDriver) CreateRenderPass(device vk.Device, info *vk.RenderPassCreateInfo) (vk.RenderPass, error) {
	h := newHandle()
	return vk.RenderPass(h), s.record("CreateRenderPass", h)
}

func (s *stubDriver) DestroyRenderPass(device vk.Device, renderPass vk.RenderPass) {
	s.record("DestroyRenderPass", unsafe.Pointer(renderPass))
}

func (s *stubDriver) CreateFramebuffer(device vk.Device, info *vk.FramebufferCreateInfo) (vk.Framebuffer, error) {
	h := newHandle()
	return vk.Framebuffer(h), s.record("CreateFramebuffer", h)
}

func (s *stubDriver) DestroyFramebuffer(device vk.Device, framebuffer vk.Framebuffer) {
	s.record("DestroyFramebuffer", unsafe.Pointer(framebuffer))
}

func (s *stubDriver) CreateShaderModule(device vk.Device, info *vk.ShaderModuleCreateInfo) (vk.ShaderModule, error) {
	h := newHandle()
	return vk.ShaderModule(h), s.record("CreateShaderModule", h)
}

func (s *stubDriver) DestroyShaderModule(device vk.Device, module vk.ShaderModule) {
	s.record("DestroyShaderModule", unsafe.Pointer(module))
}

func (s *stubDriver) CreatePipelineLayout(device vk.Device, info *vk.PipelineLayoutCreateInfo) (vk.PipelineLayout, error) {
	s.layoutInfo = info
	h := newHandle()
	return vk.PipelineLayout(h), s.record("CreatePipelineLayout", h)
}

func (s *stubDriver) DestroyPipelineLayout(device vk.Device, layout vk.PipelineLayout) {
	s.record("DestroyPipelineLayout", unsafe.Pointer(layout))
}

func (s *stubDriver) CreatePipelineCache(device vk.Device, info *vk.PipelineCacheCreateInfo) (vk.PipelineCache, error) {
	h := newHandle()
	return vk.PipelineCache(h), s.record("CreatePipelineCache", h)
}

func (s *stubDriver) DestroyPipelineCache(device vk.Device, cache vk.PipelineCache) {
	s.record("DestroyPipelineCache", unsafe.Pointer(cache))
}

func (s *stubDriver) CreateGraphicsPipelines(device vk.Device, cache vk.PipelineCache, infos []vk.GraphicsPipelineCreateInfo) ([]vk.Pipeline, error) {
	ret := make([]vk.Pipeline, len(infos))
	for i := range ret {
		ret[i] = vk.Pipeline(newHandle())
	}
	return ret, s.record("CreateGraphicsPipelines", unsafe.Pointer(cache))
}

func (s *stubDriver) DestroyPipeline(device vk.Device, pipeline vk.Pipeline) {
	s.record("DestroyPipeline", unsafe.Pointer(pipeline))
}

func (s *stubDriver) CreateDescriptorSetLayout(device vk.Device, info *vk.DescriptorSetLayoutCreateInfo) (vk.DescriptorSetLayout, error) {
	h := newHandle()
	return vk.DescriptorSetLayout(h), s.record("CreateDescriptorSetLayout", h)
}

func (s *stubDriver) DestroyDescriptorSetLayout(device vk.Device, layout vk.DescriptorSetLayout) {
	s.record("DestroyDescriptorSetLayout", unsafe.Pointer(layout))
}

func (s *stubDriver) CreateDescriptorPool(device vk.Device, info *vk.DescriptorPoolCreateInfo) (vk.DescriptorPool, error) {
	h := newHandle()
	return vk.DescriptorPool(h), s.record("CreateDescriptorPool", h)
}

func (s *stubDriver) DestroyDescriptorPool(device vk.Device, pool vk.DescriptorPool) {
	s.record("DestroyDescriptorPool", unsafe.Pointer(pool))
}

func (s *stubDriver) AllocateDescriptorSets(device vk.Device, info *vk.DescriptorSetAllocateInfo) ([]vk.DescriptorSet, error) {
	if err := s.record("AllocateDescriptorSets", unsafe.Pointer(info.DescriptorPool)); err != nil {
		return nil, err
	}
	ret := make([]vk.DescriptorSet, info.DescriptorSetCount)
	for i := range ret {
		ret[i] = vk.DescriptorSet(newHandle())
	}
	return ret, nil
}

func (s *stubDriver) UpdateDescriptorSets(device vk.Device, writes []vk.WriteDescriptorSet) {
	s.writes = append(s.writes, writes...)
	s.record("UpdateDescriptorSets", nil)
}

func (s *stubDriver) CreateFence(device vk.Device, info *vk.FenceCreateInfo) (vk.Fence, error) {
	h := newHandle()
	f := vk.Fence(h)
	if err := s.record("CreateFence", h); err != nil {
		return f, err
	}
	s.fences[addr(h)] = info.Flags&vk.FenceCreateFlags(vk.FenceCreateSignaledBit) != 0
	return f, nil
}

func (s *stubDriver) DestroyFence(device vk.Device, fence vk.Fence) {
	delete(s.fences, addr(unsafe.Pointer(fence)))
	s.record("DestroyFence", unsafe.Pointer(fence))
}

// WaitForFences fails instead of blocking forever on a fence nothing will signal.
func (s *stubDriver) WaitForFences(device vk.Device, fences []vk.Fence, waitAll bool, timeout uint64) error {
	for _, f := range fences {
		if err := s.record("WaitForFences", unsafe.Pointer(f)); err != nil {
			return err
		}
		signaled, ok := s.fences[addr(unsafe.Pointer(f))]
		if !ok {
			return errors.New("wait on unknown fence")
		}
		if !signaled {
			return errors.New("wait on unsignaled fence with no pending work would deadlock")
		}
	}
	return nil
}

func (s *stubDriver) ResetFences(device vk.Device, fences []vk.Fence) error {
	for _, f := range fences {
		if err := s.record("ResetFences", unsafe.Pointer(f)); err != nil {
			return err
		}
		s.fences[addr(unsafe.Pointer(f))] = false
	}
	return nil
}

func (s *stubDriver) CreateSemaphore(device vk.Device, info *vk.SemaphoreCreateInfo) (vk.Semaphore, error) {
	h := newHandle()
	return vk.Semaphore(h), s.record("CreateSemaphore", h)
}

func (s *stubDriver) DestroySemaphore(device vk.Device, semaphore vk.Semaphore) {
	s.record("DestroySemaphore", unsafe.Pointer(semaphore))
}

func (s *stubDriver) AcquireNextImage(device vk.Device, swapchain vk.Swapchain, timeout uint64, semaphore vk.Semaphore, fence vk.Fence) (uint32, error) {
	if err := s.record("AcquireNextImage", unsafe.Pointer(semaphore)); err != nil {
		return 0, err
	}
	if s.imageCount == 0 {
		return 0, errors.New("acquire without swapchain images")
	}
	index := s.nextImage % s.imageCount
	s.nextImage++
	return index, presentError("vkAcquireNextImageKHR", s.acquireResult)
}

// QueueSubmit completes the work at once: fence is signaled on return.
func (s *stubDriver) QueueSubmit(queue vk.Queue, submits []vk.SubmitInfo, fence vk.Fence) error {
	if err := s.record("QueueSubmit", unsafe.Pointer(fence)); err != nil {
		return err
	}
	s.submits = append(s.submits, submits...)
	if addr(unsafe.Pointer(fence)) != 0 {
		s.fences[addr(unsafe.Pointer(fence))] = true
	}
	return nil
}

func (s *stubDriver) QueuePresent(queue vk.Queue, info *vk.PresentInfo) error {
	var h unsafe.Pointer
	if len(info.PWaitSemaphores) > 0 {
		h = unsafe.Pointer(info.PWaitSemaphores[0])
	}
	if err := s.record("QueuePresent", h); err != nil {
		return err
	}
	return presentError("vkQueuePresentKHR", s.presentResult)
}

func (s *stubDriver) QueueWaitIdle(queue vk.Queue) error {
	return s.record("QueueWaitIdle", unsafe.Pointer(queue))
}

func (s *stubDriver) ResetCommandBuffer(cmd vk.CommandBuffer, flags vk.CommandBufferResetFlags) error {
	return s.record("ResetCommandBuffer", unsafe.Pointer(cmd))
}

func (s *stubDriver) BeginCommandBuffer(cmd vk.CommandBuffer, info *vk.CommandBufferBeginInfo) error {
	return s.record("BeginCommandBuffer", unsafe.Pointer(cmd))
}

func (s *stubDriver) EndCommandBuffer(cmd vk.CommandBuffer) error {
	return s.record("EndCommandBuffer", unsafe.Pointer(cmd))
}

func (s *stubDriver) CmdPipelineBarrier(cmd vk.CommandBuffer, srcStage, dstStage vk.PipelineStageFlags, imageBarriers []vk.ImageMemoryBarrier) {
	s.barriers = append(s.barriers, imageBarriers...)
	s.record("CmdPipelineBarrier", unsafe.Pointer(cmd))
}

func (s *stubDriver) CmdBeginRenderPass(cmd vk.CommandBuffer, info *vk.RenderPassBeginInfo, contents vk.SubpassContents) {
	s.record("CmdBeginRenderPass", unsafe.Pointer(info.Framebuffer))
}

func (s *stubDriver) CmdEndRenderPass(cmd vk.CommandBuffer) {
	s.record("CmdEndRenderPass", unsafe.Pointer(cmd))
}

func (s *stubDriver) CmdBindPipeline(cmd vk.CommandBuffer, bindPoint vk.PipelineBindPoint, pipeline vk.Pipeline) {
	s.record("CmdBindPipeline", unsafe.Pointer(pipeline))
}

func (s *stubDriver) CmdBindDescriptorSets(cmd vk.CommandBuffer, bindPoint vk.PipelineBindPoint, layout vk.PipelineLayout, firstSet uint32, sets []vk.DescriptorSet) {
	s.record("CmdBindDescriptorSets", unsafe.Pointer(sets[0]))
}

func (s *stubDriver) CmdSetViewport(cmd vk.CommandBuffer, viewports []vk.Viewport) {
	s.record("CmdSetViewport", unsafe.Pointer(cmd))
}

func (s *stubDriver) CmdSetScissor(cmd vk.CommandBuffer, scissors []vk.Rect2D) {
	s.record("CmdSetScissor", unsafe.Pointer(cmd))
}

func (s *stubDriver) CmdBindVertexBuffers(cmd vk.CommandBuffer, buffers []vk.Buffer, offsets []vk.DeviceSize) {
	s.record("CmdBindVertexBuffers", unsafe.Pointer(buffers[0]))
}

func (s *stubDriver) CmdBindIndexBuffer(cmd vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, indexType vk.IndexType) {
	s.record("CmdBindIndexBuffer", unsafe.Pointer(buffer))
}

func (s *stubDriver) CmdDrawIndexed(cmd vk.CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	s.record("CmdDrawIndexed", unsafe.Pointer(cmd))
}

// stubWindow is a Window whose events are scripted per poll. Surface creation and
// destruction are recorded on the driver so their order is observable.
type stubWindow struct {
	driver *stubDriver
	// width and height are the reported framebuffer size.
	width, height int
	polls         [][]Event
	pollCount int
	destroyed int
}

func (w *stubWindow) PollEvents() []Event {
	w.pollCount++
	if len(w.polls) == 0 {
		return nil
	}
	events := w.polls[0]
	w.polls = w.polls[1:]
	return events
}

func (w *stubWindow) RequiredInstanceExtensions() []string {
	return []string{"VK_KHR_surface"}
}

func (w *stubWindow) CreateSurface(instance vk.Instance) (vk.Surface, error) {
	h := newHandle()
	return vk.Surface(h), w.driver.record("CreateSurface", h)
}

func (w *stubWindow) FramebufferSize() (int, int) {
	return w.width, w.height
}

func (w *stubWindow) Destroy() {
	w.destroyed++
	w.driver.record("DestroyWindow", nil)
}

// newStubContext builds a context on a fresh stub for an 800x600 window.
func newStubContext(s *stubDriver) (*GraphicsContext, *stubWindow, error) {
	win := &stubWindow{driver: s, width: 800, height: 600}
	ctx, err := NewGraphicsContext(s, win, nil)
	return ctx, win, err
}
