package vkframe

import (
	vk "github.com/vulkan-go/vulkan"
)

// EventKind tells what happened to the window.
type EventKind int

const (
	EventCloseRequested EventKind = iota + 1
	EventKeyPressed
	EventKeyReleased
)

// Key identifies a keyboard key. Values follow the glfw key codes.
type Key int

const (
	KeyUnknown Key = -1
	KeyEscape  Key = 256
)

// Event is a single window event delivered by an EventPump.
type Event struct {
	Kind EventKind
	Key  Key
}

func (e Event) endsLoop() bool {
	switch e.Kind {
	case EventCloseRequested:
		return true
	case EventKeyPressed:
		return e.Key == KeyEscape
	}
	return false
}

// EventPump delivers window events without blocking.
type EventPump interface {
	// PollEvents returns every event received since the previous call, oldest
	// first. It returns an empty slice when nothing happened.
	PollEvents() []Event
}

// Window is the presentation target of a GraphicsContext.
type Window interface {
	EventPump

	// RequiredInstanceExtensions lists the instance extensions needed to create a
	// surface for the window.
	RequiredInstanceExtensions() []string
	CreateSurface(instance vk.Instance) (vk.Surface, error)
	FramebufferSize() (width, height int)
	Destroy()
}

// RenderLoop polls pump and calls callback exactly once per tick until the window
// asks to close or escape is pressed, in which case it returns nil. A callback
// error stops the loop and is returned.
func RenderLoop(pump EventPump, callback func() error) error {
	for {
		for _, e := range pump.PollEvents() {
			if e.endsLoop() {
				return nil
			}
		}
		if err := callback(); err != nil {
			return err
		}
	}
}
