package vkframe

import (
	vk "github.com/vulkan-go/vulkan"
)

// BufferObject is anything that can hand out its raw bytes for a host copy.
type BufferObject interface {
	Bytes() []byte
}

type IndexSource interface {
	BufferObject
	IndexType() vk.IndexType
	Len() int
}

type VertexSource interface {
	BufferObject
	GetBindingDescription() vk.VertexInputBindingDescription
	GetAttributeDescriptions() []vk.VertexInputAttributeDescription
}

// VertexDescriptor describes the vertex input layout of a pipeline.
type VertexDescriptor interface {
	GetBindingDescription() vk.VertexInputBindingDescription
	GetAttributeDescriptions() []vk.VertexInputAttributeDescription
}

// IDestructable is implemented by every wrapper that owns a Vulkan object.
type IDestructable interface {
	Destroy()
}
