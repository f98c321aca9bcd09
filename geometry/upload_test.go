package geometry

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/celer/vkframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vk "github.com/vulkan-go/vulkan"
)

// memoryDriver backs buffers with host slices, keyed by handle address. Entry
// points the uploads never reach are left to the nil embedded Driver.
type memoryDriver struct {
	vkframe.Driver
	handles   []*uint64
	memory    map[uintptr][]byte
	destroyed int
}

func newMemoryDevice() (*vkframe.Device, *memoryDriver) {
	d := &memoryDriver{memory: map[uintptr][]byte{}}
	pd := &vkframe.PhysicalDevice{Driver: d, VKPhysicalDevice: vk.PhysicalDevice(d.newHandle())}
	return &vkframe.Device{Driver: d, PhysicalDevice: pd, VKDevice: vk.Device(d.newHandle())}, d
}

// newHandle returns a fake handle that stays reachable for the life of the driver.
func (d *memoryDriver) newHandle() unsafe.Pointer {
	p := new(uint64)
	d.handles = append(d.handles, p)
	return unsafe.Pointer(p)
}

func (d *memoryDriver) backing(mem vk.DeviceMemory) []byte {
	return d.memory[uintptr(unsafe.Pointer(mem))]
}

func (d *memoryDriver) GetPhysicalDeviceMemoryProperties(vk.PhysicalDevice) vk.PhysicalDeviceMemoryProperties {
	var props vk.PhysicalDeviceMemoryProperties
	props.MemoryTypeCount = 1
	props.MemoryTypes[0].PropertyFlags = vkframe.HostVisibleCoherent
	return props
}

func (d *memoryDriver) CreateBuffer(_ vk.Device, info *vk.BufferCreateInfo) (vk.Buffer, error) {
	return vk.Buffer(d.newHandle()), nil
}

func (d *memoryDriver) DestroyBuffer(vk.Device, vk.Buffer) {
	d.destroyed++
}

func (d *memoryDriver) GetBufferMemoryRequirements(vk.Device, vk.Buffer) vk.MemoryRequirements {
	return vk.MemoryRequirements{Size: 512, Alignment: 16, MemoryTypeBits: 1}
}

func (d *memoryDriver) AllocateMemory(_ vk.Device, info *vk.MemoryAllocateInfo) (vk.DeviceMemory, error) {
	h := d.newHandle()
	d.memory[uintptr(h)] = make([]byte, info.AllocationSize)
	return vk.DeviceMemory(h), nil
}

func (d *memoryDriver) FreeMemory(_ vk.Device, mem vk.DeviceMemory) {
	delete(d.memory, uintptr(unsafe.Pointer(mem)))
}

func (d *memoryDriver) BindBufferMemory(vk.Device, vk.Buffer, vk.DeviceMemory, vk.DeviceSize) error {
	return nil
}

func (d *memoryDriver) MapMemory(_ vk.Device, mem vk.DeviceMemory, offset, size vk.DeviceSize) (unsafe.Pointer, error) {
	return unsafe.Pointer(&d.backing(mem)[offset]), nil
}

func (d *memoryDriver) UnmapMemory(vk.Device, vk.DeviceMemory) {}

func TestMeshUpload(t *testing.T) {
	dev, d := newMemoryDevice()
	m := Cube()
	assert.Equal(t, uint64(8*28+36*4), m.Size())

	vertices, indices, err := m.Upload(dev)
	require.NoError(t, err)
	assert.Equal(t, uint64(len(m.Vertices.Bytes())), vertices.Size)
	assert.Equal(t, uint64(36*4), indices.Size)

	backing := d.backing(indices.Memory.VKDeviceMemory)
	for i, want := range m.Indices {
		assert.Equal(t, want, binary.LittleEndian.Uint32(backing[i*4:]))
	}

	vertices.Destroy()
	indices.Destroy()
	assert.Empty(t, d.memory)
	assert.Equal(t, 2, d.destroyed)
}
