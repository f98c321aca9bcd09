package vkframe

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// RecordFunc issues commands into an open command buffer. It must not submit or
// wait on anything itself.
type RecordFunc func(device *Device, cmd *CommandBuffer)

// RecordAndSubmit is the one routine every submission goes through, one-shot setup
// work and per-frame drawing alike:
//
//  1. wait, without timeout, until reuseFence is signaled
//  2. reset reuseFence
//  3. reset cmd, releasing its resources
//  4. begin cmd for one time submission
//  5. call record
//  6. end cmd
//  7. submit cmd to queue, waiting on waitSemaphores[i] at waitMasks[i], signalling
//     signalSemaphores and then reuseFence once the device is done
//
// After it returns the fence is unsignaled until the device finishes the submitted
// work, so the next call on the same buffer/fence pair blocks exactly that long.
func RecordAndSubmit(device *Device, cmd *CommandBuffer, reuseFence vk.Fence, queue *Queue,
	waitMasks []vk.PipelineStageFlags, waitSemaphores, signalSemaphores []vk.Semaphore, record RecordFunc) error {

	if len(waitMasks) != len(waitSemaphores) {
		return fmt.Errorf("%d semaphores, %d masks: %w", len(waitSemaphores), len(waitMasks), ErrWaitStageMismatch)
	}

	if err := device.WaitForFence(reuseFence); err != nil {
		return fmt.Errorf("wait for reuse fence: %w", err)
	}
	if err := device.ResetFence(reuseFence); err != nil {
		return fmt.Errorf("reset reuse fence: %w", err)
	}
	if err := cmd.ResetAndRelease(); err != nil {
		return fmt.Errorf("reset command buffer: %w", err)
	}
	if err := cmd.BeginOneTime(); err != nil {
		return fmt.Errorf("begin command buffer: %w", err)
	}

	record(device, cmd)

	if err := cmd.End(); err != nil {
		return fmt.Errorf("end command buffer: %w", err)
	}
	if err := queue.Submit(cmd, waitMasks, waitSemaphores, signalSemaphores, reuseFence); err != nil {
		return fmt.Errorf("submit command buffer: %w", err)
	}
	return nil
}
