package vkframe

import (
	vk "github.com/vulkan-go/vulkan"
)

// CommandBuffers describe a sequence of commands that will be executed
// upon being sent to a device queue. Only the commands needed to draw indexed
// geometry are wrapped; VK exposes the native handle for everything else.
type CommandBuffer struct {
	Driver          Driver
	VKCommandBuffer vk.CommandBuffer
}

// ResetAndRelease will reset this commandbuffer and release the associated resources
func (c *CommandBuffer) ResetAndRelease() error {
	return c.Driver.ResetCommandBuffer(c.VKCommandBuffer, vk.CommandBufferResetFlags(vk.CommandBufferResetReleaseResourcesBit))
}

// VK is a utility function for accessing the native vulkan command buffer
func (c *CommandBuffer) VK() vk.CommandBuffer {
	return c.VKCommandBuffer
}

// BeginOneTime begins capturing work for this command buffer, with the stipulation that it will be submitted once before being reset
func (c *CommandBuffer) BeginOneTime() error {
	var beginInfo = vk.CommandBufferBeginInfo{}
	beginInfo.SType = vk.StructureTypeCommandBufferBeginInfo
	beginInfo.Flags = vk.CommandBufferUsageFlags(vk.CommandBufferUsageOneTimeSubmitBit)
	return c.Driver.BeginCommandBuffer(c.VKCommandBuffer, &beginInfo)
}

// End describing work for this command buffer
func (c *CommandBuffer) End() error {
	return c.Driver.EndCommandBuffer(c.VKCommandBuffer)
}

// CmdTransitionDepthImage moves a depth image from the undefined layout to the
// depth stencil attachment layout before any late fragment test touches it.
func (c *CommandBuffer) CmdTransitionDepthImage(image *Image) {
	barrier := vk.ImageMemoryBarrier{
		SType:               vk.StructureTypeImageMemoryBarrier,
		SrcAccessMask:       0,
		DstAccessMask:       vk.AccessFlags(vk.AccessDepthStencilAttachmentReadBit | vk.AccessDepthStencilAttachmentWriteBit),
		OldLayout:           vk.ImageLayoutUndefined,
		NewLayout:           vk.ImageLayoutDepthStencilAttachmentOptimal,
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Image:               image.VKImage,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask: vk.ImageAspectFlags(vk.ImageAspectDepthBit),
			LevelCount: 1,
			LayerCount: 1,
		},
	}

	c.Driver.CmdPipelineBarrier(c.VKCommandBuffer,
		vk.PipelineStageFlags(vk.PipelineStageBottomOfPipeBit),
		vk.PipelineStageFlags(vk.PipelineStageLateFragmentTestsBit),
		[]vk.ImageMemoryBarrier{barrier})
}

func (c *CommandBuffer) CmdBeginRenderPass(info *vk.RenderPassBeginInfo) {
	c.Driver.CmdBeginRenderPass(c.VKCommandBuffer, info, vk.SubpassContentsInline)
}

func (c *CommandBuffer) CmdEndRenderPass() {
	c.Driver.CmdEndRenderPass(c.VKCommandBuffer)
}

func (c *CommandBuffer) CmdBindGraphicsPipeline(p vk.Pipeline) {
	c.Driver.CmdBindPipeline(c.VKCommandBuffer, vk.PipelineBindPointGraphics, p)
}

// CmdBindGraphicsDescriptorSets binds sets starting at set 0 of layout.
func (c *CommandBuffer) CmdBindGraphicsDescriptorSets(layout *PipelineLayout, sets ...*DescriptorSet) {
	vkSets := make([]vk.DescriptorSet, len(sets))
	for i, s := range sets {
		vkSets[i] = s.VKDescriptorSet
	}
	c.Driver.CmdBindDescriptorSets(c.VKCommandBuffer, vk.PipelineBindPointGraphics, layout.VKPipelineLayout, 0, vkSets)
}

func (c *CommandBuffer) CmdSetViewport(viewport vk.Viewport) {
	c.Driver.CmdSetViewport(c.VKCommandBuffer, []vk.Viewport{viewport})
}

func (c *CommandBuffer) CmdSetScissor(scissor vk.Rect2D) {
	c.Driver.CmdSetScissor(c.VKCommandBuffer, []vk.Rect2D{scissor})
}

// CmdBindVertexBuffer binds b to binding 0 at offset 0.
func (c *CommandBuffer) CmdBindVertexBuffer(b *Buffer) {
	c.Driver.CmdBindVertexBuffers(c.VKCommandBuffer, []vk.Buffer{b.VKBuffer}, []vk.DeviceSize{0})
}

func (c *CommandBuffer) CmdBindIndexBuffer(b *Buffer, indexType vk.IndexType) {
	c.Driver.CmdBindIndexBuffer(c.VKCommandBuffer, b.VKBuffer, 0, indexType)
}

func (c *CommandBuffer) CmdDrawIndexed(indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	c.Driver.CmdDrawIndexed(c.VKCommandBuffer, indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
}
