package geometry

import (
	"fmt"
	"io"
	"os"

	"github.com/celer/vkframe"
	"github.com/mokiat/go-data-front/decoder/obj"
	lin "github.com/xlab/linmath"
)

// LoadOBJFile decodes the Wavefront OBJ file at path.
func LoadOBJFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := LoadOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return m, nil
}

// LoadOBJ decodes OBJ data into a single mesh. Every object and material group
// is merged, polygons are fan triangulated and vertices shared by position are
// emitted once. Vertex colors are white.
func LoadOBJ(r io.Reader) (*Mesh, error) {
	model, err := obj.NewDecoder(obj.DefaultLimits()).Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode obj: %w", err)
	}

	m := &Mesh{}
	seen := map[int64]uint32{}
	for _, object := range model.Objects {
		for _, mesh := range object.Meshes {
			for _, face := range mesh.Faces {
				if len(face.References) < 3 {
					return nil, fmt.Errorf("obj face with %d vertices in %q", len(face.References), object.Name)
				}
				idx := make([]uint32, len(face.References))
				for i, ref := range face.References {
					key := int64(ref.VertexIndex)
					index, ok := seen[key]
					if !ok {
						v := model.GetVertexFromReference(ref)
						index = uint32(len(m.Vertices))
						m.Vertices = append(m.Vertices, vkframe.Vertex{
							Pos:   lin.Vec4{float32(v.X), float32(v.Y), float32(v.Z), 1},
							Color: lin.Vec3{1, 1, 1},
						})
						seen[key] = index
					}
					idx[i] = index
				}
				for i := 1; i+1 < len(idx); i++ {
					m.Indices = append(m.Indices, idx[0], idx[i], idx[i+1])
				}
			}
		}
	}
	if len(m.Indices) == 0 {
		return nil, fmt.Errorf("obj without faces")
	}
	return m, nil
}
