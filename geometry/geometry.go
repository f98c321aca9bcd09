// Package geometry produces indexed vertex data for vkframe: a built-in cube and
// meshes decoded from Wavefront OBJ files.
package geometry

import (
	"github.com/celer/vkframe"
	lin "github.com/xlab/linmath"
)

// Mesh is indexed triangle list geometry.
type Mesh struct {
	Vertices vkframe.VertexData
	Indices  vkframe.IndexSliceUint32
}

// Upload creates host visible vertex and index buffers holding the mesh.
func (m *Mesh) Upload(device *vkframe.Device) (*vkframe.BoundBuffer, *vkframe.BoundBuffer, error) {
	vertices, err := device.CreateHostVertexBuffer(m.Vertices)
	if err != nil {
		return nil, nil, err
	}
	indices, err := device.CreateHostIndexBuffer(m.Indices)
	if err != nil {
		vertices.Destroy()
		return nil, nil, err
	}
	return vertices, indices, nil
}

// Size is the number of bytes the mesh takes in vertex and index buffers.
func (m *Mesh) Size() uint64 {
	return uint64(len(m.Vertices.Bytes()) + len(m.Indices.Bytes()))
}

// Cube returns a unit cube centered on the origin, each corner colored by its
// position. Faces wind counter clockwise seen from outside.
func Cube() *Mesh {
	m := &Mesh{}
	for i := 0; i < 8; i++ {
		x, y, z := float32(i&1), float32(i>>1&1), float32(i>>2&1)
		m.Vertices = append(m.Vertices, vkframe.Vertex{
			Pos:   lin.Vec4{x - 0.5, y - 0.5, z - 0.5, 1},
			Color: lin.Vec3{x, y, z},
		})
	}
	// corner index bits are x | y<<1 | z<<2
	faces := [6][4]uint32{
		{0, 2, 3, 1}, // -z
		{4, 5, 7, 6}, // +z
		{0, 1, 5, 4}, // -y
		{2, 6, 7, 3}, // +y
		{0, 4, 6, 2}, // -x
		{1, 3, 7, 5}, // +x
	}
	for _, f := range faces {
		m.Indices = append(m.Indices, f[0], f[1], f[2], f[0], f[2], f[3])
	}
	return m
}
