package vkframe

import (
	vk "github.com/vulkan-go/vulkan"
)

type Framebuffer struct {
	Device        *Device
	VKFramebuffer vk.Framebuffer
}

func (f *Framebuffer) Destroy() {
	f.Device.Driver.DestroyFramebuffer(f.Device.VKDevice, f.VKFramebuffer)
}

// CreateFramebuffers creates one framebuffer per present image view, in swapchain
// image order, with attachments [present view, depth view]. On failure the
// framebuffers created so far are destroyed.
func (c *GraphicsContext) CreateFramebuffers(renderPass *RenderPass) ([]*Framebuffer, error) {
	ret := make([]*Framebuffer, 0, len(c.PresentImageViews))
	for _, view := range c.PresentImageViews {
		attachments := []vk.ImageView{
			view.VKImageView,
			c.DepthImageView.VKImageView,
		}
		fbCreateInfo := vk.FramebufferCreateInfo{
			SType:           vk.StructureTypeFramebufferCreateInfo,
			RenderPass:      renderPass.VKRenderPass,
			Layers:          1,
			AttachmentCount: uint32(len(attachments)),
			PAttachments:    attachments,
			Width:           c.SurfaceResolution.Width,
			Height:          c.SurfaceResolution.Height,
		}
		framebuffer, err := c.Driver.CreateFramebuffer(c.Device.VKDevice, &fbCreateInfo)
		if err != nil {
			for _, fb := range ret {
				fb.Destroy()
			}
			return nil, err
		}
		ret = append(ret, &Framebuffer{Device: c.Device, VKFramebuffer: framebuffer})
	}
	return ret, nil
}
