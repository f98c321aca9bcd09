package vkframe

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// FrameRecordFunc records the draw commands for the swapchain image at imageIndex.
type FrameRecordFunc func(cmd *CommandBuffer, imageIndex uint32)

// Frame renders and presents one frame:
//
//  1. acquire the next swapchain image, signalling PresentCompleteSemaphore
//  2. RecordAndSubmit record on the draw command buffer and fence, waiting on
//     PresentCompleteSemaphore at color attachment output and signalling
//     RenderingCompleteSemaphore
//  3. present the image once RenderingCompleteSemaphore is signaled
//
// The setup command buffer and its fence are never touched.
func (c *GraphicsContext) Frame(record FrameRecordFunc) error {
	imageIndex, err := c.Swapchain.AcquireNextImage(c.PresentCompleteSemaphore)
	if err != nil {
		return fmt.Errorf("acquire next image: %w", err)
	}

	err = RecordAndSubmit(c.Device, c.DrawCommandBuffer, c.DrawCommandsReuseFence, c.Queue,
		[]vk.PipelineStageFlags{vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit)},
		[]vk.Semaphore{c.PresentCompleteSemaphore},
		[]vk.Semaphore{c.RenderingCompleteSemaphore},
		func(device *Device, cmd *CommandBuffer) {
			record(cmd, imageIndex)
		})
	if err != nil {
		return err
	}

	if err := c.Queue.Present(c.Swapchain, imageIndex, []vk.Semaphore{c.RenderingCompleteSemaphore}); err != nil {
		return fmt.Errorf("present image %d: %w", imageIndex, err)
	}
	return nil
}

// DrawCall is a single indexed draw of a full frame.
type DrawCall struct {
	RenderPass *RenderPass
	// Framebuffers holds one framebuffer per swapchain image, in image order.
	Framebuffers []*Framebuffer
	Pipeline     *GraphicsPipeline
	// DescriptorSets, when present, are bound at set 0 onwards of PipelineLayout
	// right after the pipeline.
	PipelineLayout *PipelineLayout
	DescriptorSets []*DescriptorSet

	VertexBuffer *Buffer
	IndexBuffer  *Buffer
	IndexType    vk.IndexType
	IndexCount   uint32

	ClearColor [4]float32
}

// DrawFrame renders call into the next swapchain image and presents it. Color is
// cleared to call.ClearColor, depth to 1 and stencil to 0.
func (c *GraphicsContext) DrawFrame(call *DrawCall) error {
	clearValues := make([]vk.ClearValue, 2)
	clearValues[0].SetColor(call.ClearColor[:])
	clearValues[1].SetDepthStencil(1, 0)

	viewport := FullViewport(c.SurfaceResolution)
	scissor := FullScissor(c.SurfaceResolution)

	if len(call.Framebuffers) != len(c.PresentImages) {
		return fmt.Errorf("%d framebuffers for %d swapchain images", len(call.Framebuffers), len(c.PresentImages))
	}
	if len(call.DescriptorSets) > 0 && call.PipelineLayout == nil {
		return fmt.Errorf("%d descriptor sets without a pipeline layout", len(call.DescriptorSets))
	}

	return c.Frame(func(cmd *CommandBuffer, imageIndex uint32) {
		cmd.CmdBeginRenderPass(&vk.RenderPassBeginInfo{
			SType:           vk.StructureTypeRenderPassBeginInfo,
			RenderPass:      call.RenderPass.VKRenderPass,
			Framebuffer:     call.Framebuffers[imageIndex].VKFramebuffer,
			RenderArea:      scissor,
			ClearValueCount: uint32(len(clearValues)),
			PClearValues:    clearValues,
		})
		cmd.CmdBindGraphicsPipeline(call.Pipeline.VKPipeline)
		if len(call.DescriptorSets) > 0 {
			cmd.CmdBindGraphicsDescriptorSets(call.PipelineLayout, call.DescriptorSets...)
		}
		cmd.CmdSetViewport(viewport)
		cmd.CmdSetScissor(scissor)
		cmd.CmdBindVertexBuffer(call.VertexBuffer)
		cmd.CmdBindIndexBuffer(call.IndexBuffer, call.IndexType)
		cmd.CmdDrawIndexed(call.IndexCount, 1, 0, 0, 1)
		cmd.CmdEndRenderPass()
	})
}
