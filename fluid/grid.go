// Package fluid holds the host side state of the fluid simulation grid and its
// GPU buffer layout.
package fluid

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/celer/vkframe"
	vk "github.com/vulkan-go/vulkan"
	lin "github.com/xlab/linmath"
)

// Resolution is the default number of cells along each side of the grid.
const Resolution = 128

// BufferUsage is the usage of the grid buffer: read and written by shaders and
// refilled by transfers.
const BufferUsage = vk.BufferUsageFlags(vk.BufferUsageStorageBufferBit | vk.BufferUsageTransferDstBit)

const (
	velocitySize = int(unsafe.Sizeof(lin.Vec2{}))
	pressureSize = int(unsafe.Sizeof(float32(0)))
)

// Grid is a square grid of cells, each with a velocity and a pressure, stored
// row major. In a buffer all velocities come first, then all pressures.
type Grid struct {
	Resolution int
	Velocity   []lin.Vec2
	Pressure   []float32

	velocityRange *vkframe.Allocation
	pressureRange *vkframe.Allocation
	size          uint64
}

// NewGrid returns a zeroed grid with resolution cells per side. Each field
// starts at a multiple of storageAlign, the device's minimum storage buffer
// offset alignment, so either can be bound as a storage buffer range. Zero
// means no device constraint.
func NewGrid(resolution int, storageAlign uint64) (*Grid, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("grid resolution %d", resolution)
	}
	cells := resolution * resolution
	g := &Grid{
		Resolution: resolution,
		Velocity:   make([]lin.Vec2, cells),
		Pressure:   make([]float32, cells),
	}

	velocityBytes := uint64(cells * velocitySize)
	pressureBytes := uint64(cells * pressureSize)
	pressureAlign := max(uint64(pressureSize), storageAlign)
	ranges := &vkframe.LinearAllocator{Size: velocityBytes + pressureAlign + pressureBytes}
	var err error
	if g.velocityRange, err = ranges.Allocate(velocityBytes, max(uint64(velocitySize), storageAlign)); err != nil {
		return nil, err
	}
	if g.pressureRange, err = ranges.Allocate(pressureBytes, pressureAlign); err != nil {
		return nil, err
	}
	g.size = g.pressureRange.End()
	return g, nil
}

// Cells is the number of cells in the grid.
func (g *Grid) Cells() int {
	return g.Resolution * g.Resolution
}

// Index returns the cell index of column x in row y.
func (g *Grid) Index(x, y int) int {
	return y*g.Resolution + x
}

func (g *Grid) Set(x, y int, velocity lin.Vec2, pressure float32) {
	i := g.Index(x, y)
	g.Velocity[i] = velocity
	g.Pressure[i] = pressure
}

// VelocityOffset is the byte offset of the velocity field in the buffer.
func (g *Grid) VelocityOffset() uint64 {
	return g.velocityRange.Offset
}

// PressureOffset is the byte offset of the pressure field in the buffer.
func (g *Grid) PressureOffset() uint64 {
	return g.pressureRange.Offset
}

// PressureSize is the byte size of the pressure field in the buffer.
func (g *Grid) PressureSize() uint64 {
	return g.pressureRange.Size
}

// Splat adds amount of pressure around cell (x, y), falling off linearly to
// zero at radius cells. Cells outside the grid are skipped.
func (g *Grid) Splat(x, y int, radius, amount float32) {
	if radius <= 0 {
		return
	}
	r := int(radius)
	for cy := y - r; cy <= y+r; cy++ {
		for cx := x - r; cx <= x+r; cx++ {
			if cx < 0 || cy < 0 || cx >= g.Resolution || cy >= g.Resolution {
				continue
			}
			dx, dy := float32(cx-x), float32(cy-y)
			d := float32(math.Sqrt(float64(dx*dx + dy*dy)))
			if d >= radius {
				continue
			}
			g.Pressure[g.Index(cx, cy)] += amount * (1 - d/radius)
		}
	}
}

// Size is the byte size of the grid buffer.
func (g *Grid) Size() uint64 {
	return g.size
}

// Bytes returns the grid in buffer layout.
func (g *Grid) Bytes() []byte {
	ret := make([]byte, g.size)
	copy(ret[g.velocityRange.Offset:g.velocityRange.End()],
		vkframe.ToBytes(unsafe.Pointer(&g.Velocity[0]), len(g.Velocity)*velocitySize))
	copy(ret[g.pressureRange.Offset:g.pressureRange.End()],
		vkframe.ToBytes(unsafe.Pointer(&g.Pressure[0]), len(g.Pressure)*pressureSize))
	return ret
}

// CreateBuffer creates a host visible storage buffer holding the grid.
func (g *Grid) CreateBuffer(device *vkframe.Device) (*vkframe.BoundBuffer, error) {
	b, err := device.CreateHostBuffer(g, BufferUsage)
	if err != nil {
		return nil, fmt.Errorf("fluid grid buffer: %w", err)
	}
	return b, nil
}
