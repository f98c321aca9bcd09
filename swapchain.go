package vkframe

import (
	vk "github.com/vulkan-go/vulkan"
)

type Swapchain struct {
	Extent      vk.Extent2D
	Format      vk.Format
	ImageCount  uint32
	Device      *Device
	VKSwapchain vk.Swapchain
}

func (s *Swapchain) Destroy() {
	s.Device.Driver.DestroySwapchain(s.Device.VKDevice, s.VKSwapchain)
}

// GetImages returns the presentable images owned by the swapchain. They are
// destroyed with the swapchain, never individually.
func (s *Swapchain) GetImages() ([]*Image, error) {
	swapchainImages, err := s.Device.Driver.GetSwapchainImages(s.Device.VKDevice, s.VKSwapchain)
	if err != nil {
		return nil, err
	}

	ret := make([]*Image, len(swapchainImages))
	for i := range swapchainImages {
		ret[i] = &Image{Device: s.Device, VKImage: swapchainImages[i], VKFormat: s.Format}
	}
	return ret, nil
}

// AcquireNextImage waits without timeout for the next presentable image and returns
// its index. signal is signaled once the image may be rendered to.
func (s *Swapchain) AcquireNextImage(signal vk.Semaphore) (uint32, error) {
	return s.Device.Driver.AcquireNextImage(s.Device.VKDevice, s.VKSwapchain, vk.MaxUint64, signal, vk.NullFence)
}

// DesiredImageCount asks for one image more than the minimum, clamped to the
// maximum when the surface reports one (a maximum of 0 means unbounded).
func DesiredImageCount(caps vk.SurfaceCapabilities) uint32 {
	n := caps.MinImageCount + 1
	if caps.MaxImageCount > 0 && n > caps.MaxImageCount {
		n = caps.MaxImageCount
	}
	return n
}

// ChooseExtent returns the surface's current extent, or requested when the surface
// leaves the extent to the swapchain.
func ChooseExtent(caps vk.SurfaceCapabilities, requested vk.Extent2D) vk.Extent2D {
	if caps.CurrentExtent.Width == vk.MaxUint32 {
		return requested
	}
	return caps.CurrentExtent
}

// ChoosePreTransform prefers the identity transform and falls back to the current
// one.
func ChoosePreTransform(caps vk.SurfaceCapabilities) vk.SurfaceTransformFlagBits {
	if caps.SupportedTransforms&vk.SurfaceTransformFlags(vk.SurfaceTransformIdentityBit) != 0 {
		return vk.SurfaceTransformIdentityBit
	}
	return caps.CurrentTransform
}

// ChoosePresentMode prefers mailbox and falls back to FIFO, which every
// implementation supports.
func ChoosePresentMode(modes VKPresentModes) vk.PresentMode {
	if len(modes.Filter(vk.PresentModeMailbox)) > 0 {
		return vk.PresentModeMailbox
	}
	return vk.PresentModeFifo
}

type CreateSwapchainOptions struct {
	SurfaceFormat vk.SurfaceFormat
	Extent        vk.Extent2D
	ImageCount    uint32
	PreTransform  vk.SurfaceTransformFlagBits
	PresentMode   vk.PresentMode
}

// CreateSwapchain creates an exclusive, clipped, opaque swapchain of color
// attachment images with a single array layer.
func (d *Device) CreateSwapchain(surface vk.Surface, options *CreateSwapchainOptions) (*Swapchain, error) {

	createInfo := &vk.SwapchainCreateInfo{
		SType:            vk.StructureTypeSwapchainCreateInfo,
		Surface:          surface,
		MinImageCount:    options.ImageCount,
		ImageFormat:      options.SurfaceFormat.Format,
		ImageColorSpace:  options.SurfaceFormat.ColorSpace,
		ImageExtent:      options.Extent,
		ImageUsage:       vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit),
		ImageSharingMode: vk.SharingModeExclusive,
		PreTransform:     options.PreTransform,
		CompositeAlpha:   vk.CompositeAlphaOpaqueBit,
		PresentMode:      options.PresentMode,
		Clipped:          vk.True,
		ImageArrayLayers: 1,
		OldSwapchain:     vk.NullSwapchain,
	}

	swapchain, err := d.Driver.CreateSwapchain(d.VKDevice, createInfo)
	if err != nil {
		return nil, err
	}

	return &Swapchain{
		Extent:      options.Extent,
		Format:      options.SurfaceFormat.Format,
		ImageCount:  options.ImageCount,
		Device:      d,
		VKSwapchain: swapchain,
	}, nil
}
