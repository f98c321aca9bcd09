package vkframe

import (
	"errors"
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

var (
	// ErrNoSuitableDevice is returned when no physical device exposes a queue family
	// that supports both graphics and presentation to the window surface.
	ErrNoSuitableDevice = errors.New("no physical device with a graphics and present capable queue family")

	// ErrNoMemoryType is returned when no memory type satisfies a resource's
	// requirements together with the requested property flags.
	ErrNoMemoryType = errors.New("no compatible memory type")

	// ErrWaitStageMismatch is returned by RecordAndSubmit when wait semaphores and
	// wait stage masks are not paired one to one.
	ErrWaitStageMismatch = errors.New("wait semaphores and wait stage masks differ in length")

	// ErrNoSurfaceFormats is returned when the surface reports no formats at all.
	ErrNoSurfaceFormats = errors.New("surface reports no formats")
)

// vulkanError converts a driver result into an error naming the failed call,
// nil on success.
func vulkanError(op string, res vk.Result) error {
	if err := vk.Error(res); err != nil {
		return fmt.Errorf("%s: vulkan error: %w (%d)", op, err, res)
	}
	return nil
}

// presentError is vulkanError for acquire and present. A suboptimal swapchain
// still acquired or presented the image, so Suboptimal is not a failure.
func presentError(op string, res vk.Result) error {
	if res == vk.Suboptimal {
		Logger().Debug("swapchain suboptimal", "op", op)
		return nil
	}
	return vulkanError(op, res)
}

// enumerateError is vulkanError for count-then-fill queries. Incomplete only
// means the array held fewer entries than exist; the caller keeps what was written.
func enumerateError(op string, res vk.Result) error {
	if res == vk.Incomplete {
		return nil
	}
	return vulkanError(op, res)
}
