package vkframe

import (
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
	lin "github.com/xlab/linmath"
)

// Vertex is the fixed vertex layout consumed by the graphics pipeline: a 4 component
// position at offset 0 followed by an RGB color at offset 16, stride 28.
type Vertex struct {
	Pos   lin.Vec4
	Color lin.Vec3
}

type VertexData []Vertex

func (v VertexData) Bytes() []byte {
	if len(v) == 0 {
		return nil
	}
	size := len(v) * int(unsafe.Sizeof(Vertex{}))
	return ToBytes(unsafe.Pointer(&v[0]), size)
}

func (v VertexData) GetBindingDescription() vk.VertexInputBindingDescription {
	var bindingDescription = vk.VertexInputBindingDescription{}
	bindingDescription.Binding = 0
	bindingDescription.Stride = uint32(unsafe.Sizeof(Vertex{}))
	bindingDescription.InputRate = vk.VertexInputRateVertex
	return bindingDescription
}

func (v VertexData) GetAttributeDescriptions() []vk.VertexInputAttributeDescription {
	attr := make([]vk.VertexInputAttributeDescription, 2)

	attr[0].Binding = 0
	attr[0].Location = 0
	attr[0].Format = vk.FormatR32g32b32a32Sfloat
	attr[0].Offset = uint32(unsafe.Offsetof(Vertex{}.Pos))

	attr[1].Binding = 0
	attr[1].Location = 1
	attr[1].Format = vk.FormatR32g32b32Sfloat
	attr[1].Offset = uint32(unsafe.Offsetof(Vertex{}.Color))

	return attr
}
