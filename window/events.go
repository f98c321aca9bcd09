package window

import (
	"github.com/celer/vkframe"
	"github.com/vulkan-go/glfw/v3.3/glfw"
)

// eventBuffer collects events from glfw callbacks between polls. glfw runs the
// callbacks on the polling thread, so no locking is needed.
type eventBuffer struct {
	pending []vkframe.Event
}

func (b *eventBuffer) closeRequested() {
	b.pending = append(b.pending, vkframe.Event{Kind: vkframe.EventCloseRequested})
}

// key records presses and releases. Auto repeats are dropped.
func (b *eventBuffer) key(key glfw.Key, action glfw.Action) {
	var kind vkframe.EventKind
	switch action {
	case glfw.Press:
		kind = vkframe.EventKeyPressed
	case glfw.Release:
		kind = vkframe.EventKeyReleased
	default:
		return
	}
	b.pending = append(b.pending, vkframe.Event{Kind: kind, Key: vkframe.Key(key)})
}

func (b *eventBuffer) drain() []vkframe.Event {
	events := b.pending
	b.pending = nil
	return events
}
