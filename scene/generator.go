package scene

import (
	"github.com/ojrac/opensimplex-go"

	"github.com/maxplugins/InfoTexture/types"
)

// Frequency applied to terrain grid coordinates before sampling the noise
// field.
const terrainNoiseFreq = 0.085

// Create a quad on the XZ plane centered at the given point. The quad is
// split into two triangles.
func NewPlane(name string, center types.Vec3, size float32) *Mesh {
	mesh := NewMesh(name)
	half := size * 0.5
	mesh.AddVertex(center.Add(types.Vec3{-half, 0, -half}))
	mesh.AddVertex(center.Add(types.Vec3{half, 0, -half}))
	mesh.AddVertex(center.Add(types.Vec3{half, 0, half}))
	mesh.AddVertex(center.Add(types.Vec3{-half, 0, half}))
	mesh.Faces = append(mesh.Faces,
		[3]uint32{0, 2, 1},
		[3]uint32{0, 3, 2},
	)
	return mesh
}

// Create an axis-aligned box mesh with 12 triangles.
func NewBox(name string, center, dims types.Vec3) *Mesh {
	mesh := NewMesh(name)
	half := dims.Mul(0.5)
	for _, corner := range [8]types.Vec3{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	} {
		mesh.AddVertex(center.Add(types.Vec3{corner[0] * half[0], corner[1] * half[1], corner[2] * half[2]}))
	}
	mesh.Faces = append(mesh.Faces,
		// back
		[3]uint32{0, 2, 1}, [3]uint32{0, 3, 2},
		// front
		[3]uint32{4, 5, 6}, [3]uint32{4, 6, 7},
		// left
		[3]uint32{0, 7, 3}, [3]uint32{0, 4, 7},
		// right
		[3]uint32{1, 2, 6}, [3]uint32{1, 6, 5},
		// bottom
		[3]uint32{0, 1, 5}, [3]uint32{0, 5, 4},
		// top
		[3]uint32{3, 6, 2}, [3]uint32{3, 7, 6},
	)
	return mesh
}

// Create a heightfield mesh from an opensimplex noise field. The terrain
// spans cells x cells quads centered at the origin with two triangles per
// quad; vertex heights are the noise values scaled by amplitude.
func NewTerrain(name string, cells int, cellSize, amplitude float32, seed int64) *Mesh {
	mesh := NewMesh(name)
	noise := opensimplex.New(seed)

	half := float32(cells) * cellSize * 0.5
	for row := 0; row <= cells; row++ {
		for col := 0; col <= cells; col++ {
			height := float32(noise.Eval2(float64(col)*terrainNoiseFreq, float64(row)*terrainNoiseFreq)) * amplitude
			mesh.AddVertex(types.Vec3{
				float32(col)*cellSize - half,
				height,
				float32(row)*cellSize - half,
			})
		}
	}

	stride := uint32(cells + 1)
	for row := uint32(0); row < uint32(cells); row++ {
		for col := uint32(0); col < uint32(cells); col++ {
			v0 := row*stride + col
			v1 := v0 + 1
			v2 := v0 + stride
			v3 := v2 + 1
			mesh.Faces = append(mesh.Faces,
				[3]uint32{v0, v3, v1},
				[3]uint32{v0, v2, v3},
			)
		}
	}
	return mesh
}
