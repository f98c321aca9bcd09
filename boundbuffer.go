package vkframe

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// HostVisibleCoherent is the property set for buffers the host writes directly.
const HostVisibleCoherent = vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit)

// BoundBuffer is a buffer together with the memory bound to it at offset 0.
type BoundBuffer struct {
	*Buffer
	Memory *DeviceMemory
}

// Destroy destroys the buffer and then frees its memory.
func (b *BoundBuffer) Destroy() {
	b.Buffer.Destroy()
	b.Memory.Destroy()
}

// CreateBoundBuffer creates an exclusive buffer, allocates memory for it from the
// first type carrying props and binds it at offset 0.
func (d *Device) CreateBoundBuffer(size uint64, usage vk.BufferUsageFlags, props vk.MemoryPropertyFlags) (*BoundBuffer, error) {

	buffer, err := d.CreateBufferWithOptions(size, usage, vk.SharingModeExclusive)
	if err != nil {
		return nil, err
	}

	memory, err := d.Allocate(buffer.VKMemoryRequirements(), props)
	if err != nil {
		buffer.Destroy()
		return nil, fmt.Errorf("buffer memory: %w", err)
	}

	if err := buffer.Bind(memory, 0); err != nil {
		buffer.Destroy()
		memory.Destroy()
		return nil, err
	}

	return &BoundBuffer{Buffer: buffer, Memory: memory}, nil
}

// CreateHostBuffer creates a host visible and coherent buffer sized for bo and fills
// it with bo's bytes.
func (d *Device) CreateHostBuffer(bo BufferObject, usage vk.BufferUsageFlags) (*BoundBuffer, error) {
	data := bo.Bytes()

	b, err := d.CreateBoundBuffer(uint64(len(data)), usage, HostVisibleCoherent)
	if err != nil {
		return nil, err
	}

	if err := b.Memory.MapCopyUnmap(data); err != nil {
		b.Destroy()
		return nil, err
	}
	return b, nil
}

// CreateHostIndexBuffer creates an index buffer holding indices.
func (d *Device) CreateHostIndexBuffer(indices IndexSource) (*BoundBuffer, error) {
	return d.CreateHostBuffer(indices, vk.BufferUsageFlags(vk.BufferUsageIndexBufferBit))
}

// CreateHostVertexBuffer creates a vertex buffer holding vertices. The buffer can
// also be bound as a storage buffer.
func (d *Device) CreateHostVertexBuffer(vertices VertexSource) (*BoundBuffer, error) {
	return d.CreateHostBuffer(vertices, vk.BufferUsageFlags(vk.BufferUsageVertexBufferBit|vk.BufferUsageStorageBufferBit))
}
