package vkframe

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// DepthFormat is the format of the depth buffer.
const DepthFormat = vk.FormatD16Unorm

// GraphicsContext owns every device level object needed to render to a window:
// instance, device, surface, swapchain, depth buffer, command buffers and the
// synchronization primitives of the frame loop. There is one per application; it
// is passed explicitly to whatever needs device access.
//
// Everything is released by Destroy in the exact reverse order of creation.
type GraphicsContext struct {
	Options Options

	Driver        Driver
	Window        Window
	Instance      *Instance
	DebugCallback vk.DebugReportCallback
	Surface       vk.Surface

	PhysicalDevice *PhysicalDevice
	QueueFamily    *QueueFamily
	Device         *Device
	Queue          *Queue

	SurfaceFormat     vk.SurfaceFormat
	SurfaceResolution vk.Extent2D
	Swapchain         *Swapchain

	CommandPool        *CommandPool
	SetupCommandBuffer *CommandBuffer
	DrawCommandBuffer  *CommandBuffer

	PresentImages     []*Image
	PresentImageViews []*ImageView

	MemoryProperties vk.PhysicalDeviceMemoryProperties
	DepthImage       *Image
	DepthImageMemory *DeviceMemory
	DepthImageView   *ImageView

	DrawCommandsReuseFence  vk.Fence
	SetupCommandsReuseFence vk.Fence

	PresentCompleteSemaphore   vk.Semaphore
	RenderingCompleteSemaphore vk.Semaphore

	release   releaseStack
	destroyed bool
}

// NewGraphicsContext takes ownership of win and brings up a context rendering to
// it. When any step fails the device, if there is one, is waited on and
// everything created so far, win included, is released in reverse order. A
// system without a device that can both draw and present to win yields an error
// wrapping ErrNoSuitableDevice.
func NewGraphicsContext(driver Driver, win Window, opts *Options) (*GraphicsContext, error) {
	var o Options
	if opts != nil {
		o = *opts
	}

	c := &GraphicsContext{
		Options: o.withDefaults(),
		Driver:  driver,
		Window:  win,
	}
	c.release.push("window", win.Destroy)

	steps := []struct {
		name string
		fn   func() error
	}{
		{"create instance", c.createInstance},
		{"install debug callback", c.createDebugCallback},
		{"create surface", c.createSurface},
		{"select physical device", c.selectPhysicalDevice},
		{"create device", c.createDevice},
		{"query surface", c.querySurface},
		{"create swapchain", c.createSwapchain},
		{"create command buffers", c.createCommandBuffers},
		{"create present image views", c.createPresentImageViews},
		{"create depth image", c.createDepthImage},
		{"transition depth image", c.transitionDepthImage},
		{"create depth image view", c.createDepthImageView},
		{"create semaphores", c.createSemaphores},
	}

	for _, step := range steps {
		if err := step.fn(); err != nil {
			c.Destroy()
			return nil, fmt.Errorf("%s: %w", step.name, err)
		}
	}

	Logger().Info("graphics context ready",
		"device", c.PhysicalDevice.DeviceName,
		"queue", c.Queue.String(),
		"extent", fmt.Sprintf("%dx%d", c.SurfaceResolution.Width, c.SurfaceResolution.Height),
		"images", len(c.PresentImages))
	return c, nil
}

func (c *GraphicsContext) createInstance() error {
	app := &App{
		Name:       c.Options.AppName,
		EngineName: c.Options.EngineName,
		Version:    c.Options.AppVersion,
		APIVersion: c.Options.APIVersion,
	}
	for _, ext := range c.Window.RequiredInstanceExtensions() {
		app.EnableExtension(ext)
	}
	app.EnableExtension(DebugReportExtension)
	app.EnablePortability()
	if c.Options.EnableValidation {
		app.EnableLayer(ValidationLayer)
	}

	instance, err := app.CreateInstance(c.Driver)
	if err != nil {
		return err
	}
	c.Instance = instance
	c.release.push("instance", instance.Destroy)
	return nil
}

func (c *GraphicsContext) createDebugCallback() error {
	callback, err := c.Instance.SetDebugCallback(DefaultDebugCallback)
	if err != nil {
		return err
	}
	c.DebugCallback = callback
	c.release.push("debug callback", func() { c.Instance.DestroyDebugCallback(callback) })
	return nil
}

func (c *GraphicsContext) createSurface() error {
	surface, err := c.Window.CreateSurface(c.Instance.VKInstance)
	if err != nil {
		return err
	}
	c.Surface = surface
	c.release.push("surface", func() { c.Instance.DestroySurface(surface) })
	return nil
}

func (c *GraphicsContext) selectPhysicalDevice() error {
	devices, err := c.Instance.PhysicalDevices()
	if err != nil {
		return err
	}
	pd, qf, err := SelectPhysicalDevice(devices, c.Surface)
	if err != nil {
		return err
	}
	c.PhysicalDevice = pd
	c.QueueFamily = qf
	Logger().Info("selected physical device", "device", pd.DeviceName, "queue_family", qf.Index)
	return nil
}

func (c *GraphicsContext) createDevice() error {
	extensions := append([]string{SwapchainExtension}, portabilityDeviceExtensions...)
	features := vk.PhysicalDeviceFeatures{ShaderClipDistance: vk.True}

	device, err := c.PhysicalDevice.CreateLogicalDeviceWithOptions(QueueFamilySlice{c.QueueFamily}, &CreateDeviceOptions{
		EnabledExtensions: extensions,
		EnabledFeatures:   &features,
	})
	if err != nil {
		return err
	}
	c.Device = device
	c.Queue = device.GetQueue(c.QueueFamily)
	c.release.push("device", device.Destroy)
	return nil
}

func (c *GraphicsContext) querySurface() error {
	formats, err := c.PhysicalDevice.GetSurfaceFormats(c.Surface)
	if err != nil {
		return err
	}
	if len(formats) == 0 {
		return ErrNoSurfaceFormats
	}
	c.SurfaceFormat = formats[0]
	return nil
}

// requestedExtent is the window's framebuffer size, or the configured size while
// the window reports none.
func (c *GraphicsContext) requestedExtent() vk.Extent2D {
	w, h := c.Window.FramebufferSize()
	if w <= 0 || h <= 0 {
		w, h = c.Options.Width, c.Options.Height
	}
	return vk.Extent2D{Width: uint32(w), Height: uint32(h)}
}

func (c *GraphicsContext) createSwapchain() error {
	caps, err := c.PhysicalDevice.GetSurfaceCapabilities(c.Surface)
	if err != nil {
		return err
	}
	modes, err := c.PhysicalDevice.GetSurfacePresentModes(c.Surface)
	if err != nil {
		return err
	}

	c.SurfaceResolution = ChooseExtent(caps, c.requestedExtent())

	swapchain, err := c.Device.CreateSwapchain(c.Surface, &CreateSwapchainOptions{
		SurfaceFormat: c.SurfaceFormat,
		Extent:        c.SurfaceResolution,
		ImageCount:    DesiredImageCount(caps),
		PreTransform:  ChoosePreTransform(caps),
		PresentMode:   ChoosePresentMode(modes),
	})
	if err != nil {
		return err
	}
	c.Swapchain = swapchain
	c.release.push("swapchain", swapchain.Destroy)
	Logger().Debug("created swapchain", "images", swapchain.ImageCount, "format", swapchain.Format)
	return nil
}

func (c *GraphicsContext) createCommandBuffers() error {
	pool, err := c.Device.CreateCommandPool(c.QueueFamily)
	if err != nil {
		return err
	}
	c.CommandPool = pool
	c.release.push("command pool", pool.Destroy)

	buffers, err := pool.AllocateBuffers(2)
	if err != nil {
		return err
	}
	c.SetupCommandBuffer = buffers[0]
	c.DrawCommandBuffer = buffers[1]
	return nil
}

func (c *GraphicsContext) createPresentImageViews() error {
	images, err := c.Swapchain.GetImages()
	if err != nil {
		return err
	}
	c.PresentImages = images

	for _, image := range images {
		view, err := image.CreateImageView()
		if err != nil {
			return err
		}
		c.PresentImageViews = append(c.PresentImageViews, view)
		c.release.push("present image view", view.Destroy)
	}
	return nil
}

// createDepthImage creates the depth image and binds it to device local memory.
// There is no fallback to other memory: without a device local type the context
// cannot be created.
func (c *GraphicsContext) createDepthImage() error {
	c.MemoryProperties = c.PhysicalDevice.VKPhysicalDeviceMemoryProperties()

	image, err := c.Device.CreateImage(c.SurfaceResolution, DepthFormat, vk.ImageTilingOptimal,
		vk.ImageUsageFlags(vk.ImageUsageDepthStencilAttachmentBit))
	if err != nil {
		return err
	}
	c.DepthImage = image
	// memory, view and image go as one unit so the memory is freed first.
	c.release.push("depth image", c.destroyDepthImage)

	memory, err := c.Device.Allocate(image.GetMemoryRequirements(),
		vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit))
	if err != nil {
		return fmt.Errorf("depth image memory: %w", err)
	}
	c.DepthImageMemory = memory

	return image.Bind(memory, 0)
}

func (c *GraphicsContext) destroyDepthImage() {
	if c.DepthImageMemory != nil {
		c.DepthImageMemory.Destroy()
	}
	if c.DepthImageView != nil {
		c.DepthImageView.Destroy()
	}
	c.DepthImage.Destroy()
}

// transitionDepthImage creates the reuse fences and moves the depth image into
// the depth attachment layout on the setup command buffer.
func (c *GraphicsContext) transitionDepthImage() error {
	draw, err := c.Device.VKCreateFence(true)
	if err != nil {
		return err
	}
	setup, err := c.Device.VKCreateFence(true)
	if err != nil {
		c.Device.VKDestroyFence(draw)
		return err
	}
	c.DrawCommandsReuseFence = draw
	c.SetupCommandsReuseFence = setup
	c.release.push("fences", func() {
		c.Device.VKDestroyFence(draw)
		c.Device.VKDestroyFence(setup)
	})

	return RecordAndSubmit(c.Device, c.SetupCommandBuffer, c.SetupCommandsReuseFence, c.Queue,
		nil, nil, nil,
		func(device *Device, cmd *CommandBuffer) {
			cmd.CmdTransitionDepthImage(c.DepthImage)
		})
}

func (c *GraphicsContext) createDepthImageView() error {
	view, err := c.DepthImage.CreateImageViewWithAspectMask(vk.ImageAspectFlags(vk.ImageAspectDepthBit))
	if err != nil {
		return err
	}
	c.DepthImageView = view
	return nil
}

func (c *GraphicsContext) createSemaphores() error {
	presentComplete, err := c.Device.VKCreateSemaphore()
	if err != nil {
		return err
	}
	renderingComplete, err := c.Device.VKCreateSemaphore()
	if err != nil {
		c.Device.VKDestroySemaphore(presentComplete)
		return err
	}
	c.PresentCompleteSemaphore = presentComplete
	c.RenderingCompleteSemaphore = renderingComplete
	c.release.push("semaphores", func() {
		c.Device.VKDestroySemaphore(presentComplete)
		c.Device.VKDestroySemaphore(renderingComplete)
	})
	return nil
}

// Destroy waits for the device to go idle and releases everything in reverse
// creation order. Calling it again does nothing.
func (c *GraphicsContext) Destroy() error {
	if c.destroyed {
		return nil
	}
	c.destroyed = true

	var err error
	if c.Device != nil {
		err = c.Device.WaitIdle()
		if err != nil {
			Logger().Warn("device wait idle failed, releasing anyway", "err", err)
		}
	}
	c.release.unwind()
	return err
}

// RenderLoop runs RenderLoop on the context's window.
func (c *GraphicsContext) RenderLoop(callback func() error) error {
	return RenderLoop(c.Window, callback)
}
