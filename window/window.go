// Package window provides a glfw backed vkframe.Window.
package window

import (
	"errors"
	"fmt"

	"github.com/celer/vkframe"
	"github.com/vulkan-go/glfw/v3.3/glfw"
	vk "github.com/vulkan-go/vulkan"
)

// Init initializes glfw and loads the Vulkan loader through it. It must be
// called from the main thread before New, and Terminate when done.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	if !glfw.VulkanSupported() {
		glfw.Terminate()
		return errors.New("vulkan is not supported")
	}
	vk.SetGetInstanceProcAddr(glfw.GetVulkanGetInstanceProcAddress())
	if err := vk.Init(); err != nil {
		glfw.Terminate()
		return fmt.Errorf("vulkan loader: %w", err)
	}
	return nil
}

// Terminate releases glfw. Windows must be destroyed first.
func Terminate() {
	glfw.Terminate()
}

// Window is a glfw window without a client API, to be presented to through a
// Vulkan surface.
type Window struct {
	*glfw.Window
	events eventBuffer
}

// New creates a window of the given size. Init must have been called.
func New(width, height int, title string) (*Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &Window{Window: win}
	win.SetCloseCallback(func(*glfw.Window) {
		w.events.closeRequested()
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		w.events.key(key, action)
	})
	return w, nil
}

// PollEvents processes pending glfw events and returns the ones buffered since
// the previous call.
func (w *Window) PollEvents() []vkframe.Event {
	glfw.PollEvents()
	return w.events.drain()
}

func (w *Window) RequiredInstanceExtensions() []string {
	return w.Window.GetRequiredInstanceExtensions()
}

func (w *Window) CreateSurface(instance vk.Instance) (vk.Surface, error) {
	surface, err := w.Window.CreateWindowSurface(instance, nil)
	if err != nil {
		return vk.NullSurface, fmt.Errorf("create window surface: %w", err)
	}
	return vk.SurfaceFromPointer(surface), nil
}

func (w *Window) FramebufferSize() (int, int) {
	return w.Window.GetFramebufferSize()
}

func (w *Window) Destroy() {
	w.Window.Destroy()
}

var _ vkframe.Window = (*Window)(nil)
