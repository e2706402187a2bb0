package scene

import (
	"fmt"

	"github.com/maxplugins/InfoTexture/types"
)

// A triangle mesh. Faces are triplets of indices into the vertex list and are
// addressed by their zero-based position in the face list.
type Mesh struct {
	Name string

	Verts []types.Vec3
	Faces [][3]uint32
}

// Create a new empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:  name,
		Verts: make([]types.Vec3, 0),
		Faces: make([][3]uint32, 0),
	}
}

// Append a vertex and return its index.
func (m *Mesh) AddVertex(v types.Vec3) uint32 {
	m.Verts = append(m.Verts, v)
	return uint32(len(m.Verts) - 1)
}

// Append a triangle face. All indices must reference vertices that have
// already been added to the mesh.
func (m *Mesh) AddFace(i0, i1, i2 uint32) error {
	numVerts := uint32(len(m.Verts))
	for _, index := range []uint32{i0, i1, i2} {
		if index >= numVerts {
			return fmt.Errorf("mesh: face references unknown vertex %d; mesh %q only defines %d vertices", index, m.Name, numVerts)
		}
	}
	m.Faces = append(m.Faces, [3]uint32{i0, i1, i2})
	return nil
}

// Get the three vertices for the face with the given zero-based index.
func (m *Mesh) FaceVerts(face uint32) (v0, v1, v2 types.Vec3) {
	f := m.Faces[face]
	return m.Verts[f[0]], m.Verts[f[1]], m.Verts[f[2]]
}

// Calculate the mesh bounding box.
func (m *Mesh) BBox() [2]types.Vec3 {
	bbox := [2]types.Vec3{
		{maxFloat, maxFloat, maxFloat},
		{-maxFloat, -maxFloat, -maxFloat},
	}
	for _, v := range m.Verts {
		bbox[0] = types.MinVec3(bbox[0], v)
		bbox[1] = types.MaxVec3(bbox[1], v)
	}
	return bbox
}
