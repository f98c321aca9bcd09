package vkframe

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

type Queue struct {
	Device      *Device
	QueueFamily *QueueFamily
	VKQueue     vk.Queue
}

func (q *Queue) WaitIdle() error {
	return q.Device.Driver.QueueWaitIdle(q.VKQueue)
}

// Submit submits one command buffer. waitSemaphores[i] is waited on at stage
// waitMasks[i]; fence is signaled once the device has finished the work.
func (q *Queue) Submit(cmd *CommandBuffer, waitMasks []vk.PipelineStageFlags, waitSemaphores, signalSemaphores []vk.Semaphore, fence vk.Fence) error {
	submitInfo := vk.SubmitInfo{
		SType:                vk.StructureTypeSubmitInfo,
		WaitSemaphoreCount:   uint32(len(waitSemaphores)),
		PWaitSemaphores:      waitSemaphores,
		PWaitDstStageMask:    waitMasks,
		CommandBufferCount:   1,
		PCommandBuffers:      []vk.CommandBuffer{cmd.VKCommandBuffer},
		SignalSemaphoreCount: uint32(len(signalSemaphores)),
		PSignalSemaphores:    signalSemaphores,
	}
	return q.Device.Driver.QueueSubmit(q.VKQueue, []vk.SubmitInfo{submitInfo}, fence)
}

// Present queues imageIndex of swapchain for presentation once every semaphore in
// waitSemaphores is signaled.
func (q *Queue) Present(swapchain *Swapchain, imageIndex uint32, waitSemaphores []vk.Semaphore) error {
	presentInfo := vk.PresentInfo{
		SType:              vk.StructureTypePresentInfo,
		WaitSemaphoreCount: uint32(len(waitSemaphores)),
		PWaitSemaphores:    waitSemaphores,
		SwapchainCount:     1,
		PSwapchains:        []vk.Swapchain{swapchain.VKSwapchain},
		PImageIndices:      []uint32{imageIndex},
	}
	return q.Device.Driver.QueuePresent(q.VKQueue, &presentInfo)
}

func (q *Queue) String() string {
	return fmt.Sprintf("{Device: %s QueueFamily: %s}", q.Device.String(), q.QueueFamily.String())
}
