/*
Package vkframe is a small Vulkan frame for go: enough to open a window, bring up a device
and swapchain, and draw indexed geometry every frame. Vulkan is powerful and verbose, most of
what a graphics application needs before its first triangle is the same from one program to
the next, and this package does that part once.

Overview of Vulkan

Vulkan leaves nearly everything OpenGL used to manage up to the application. The application
picks the physical device, decides where each buffer and image lives, records work into
command buffers and submits it to queues, and orders that work itself with fences (host and
device) and semaphores (device only).

Native Vulkan terms
	Instance	the vulkan runtime instance
	PhysicalDevice	the physical hardware device
	Device		the logical device, target of most of the vulkan apis
	Queue		a queue which command buffers are submitted to
	DeviceMemory	an allocation of memory on the host or device backing buffers and images
	Buffer		a hunk of data (vertex, index or storage)
	Image		a description of some image, the depth buffer for example
	ImageView	how an image is viewed by the pipeline
	Swapchain	the images presented to the surface in turn
	Fence		signaled by the device when submitted work finishes, waited on by the host
	Semaphore	orders one queue operation after another on the device

The GraphicsContext

NewGraphicsContext builds, in order: the instance (with the debug report callback when
validation is enabled), the window surface, the physical device and its graphics and present
queue family, the logical device and queue, the swapchain, the command pool with the setup and
draw command buffers, the swapchain image views, the depth image with its view, the two fences
and the two semaphores. Both fences are created signaled so the first wait on each returns at
once.

Every step pushes its release onto a stack, so a failure part way through releases what was
already built and Destroy releases everything in exactly the reverse order.

Submitting work

RecordAndSubmit is the one way work reaches the queue:

	1. wait for the fence, the previous use of the command buffer is done
	2. reset the fence and the command buffer
	3. record
	4. submit, signaling the fence on completion

The setup command buffer and its fence are used for the one time layout transitions during
construction. The draw command buffer and its fence are used once per frame.

Drawing frames

Frame acquires the next swapchain image, records and submits the caller's commands waiting on
the acquire, and presents once rendering is complete. DrawFrame is Frame for the common case of
one render pass, one pipeline and one indexed draw. RenderLoop polls the window and calls the
frame function once per tick until the window asks to close or Escape is pressed.

About this package

Native vulkan structures are exposed on every object under fields prefixed with 'VK', so
applications aren't limited by what this package wraps. All Vulkan calls go through a Driver;
NewDriver returns the one backed by the system loader.
*/
package vkframe
