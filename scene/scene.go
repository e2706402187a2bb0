package scene

import (
	"bytes"
	"fmt"

	"github.com/maxplugins/InfoTexture/types"
)

// Number of triangles per BVH leaf.
const bvhMinLeafItems = 8

// A triangle reference tracked by the scene BVH.
type sceneTri struct {
	verts [3]types.Vec3

	// Owning node id and zero-based face index within the node's mesh.
	node uint32
	face uint32
}

func (t *sceneTri) BBox() [2]types.Vec3 {
	min := types.MinVec3(t.verts[0], types.MinVec3(t.verts[1], t.verts[2]))
	max := types.MaxVec3(t.verts[0], types.MaxVec3(t.verts[1], t.verts[2]))
	return [2]types.Vec3{min, max}
}

func (t *sceneTri) Center() types.Vec3 {
	return t.verts[0].Add(t.verts[1]).Add(t.verts[2]).Mul(1.0 / 3.0)
}

type Scene struct {
	Camera *Camera
	Nodes  []*Node

	// Flattened world-space triangles and their BVH. Populated by Build.
	tris     []*sceneTri
	bvhNodes []BvhNode
	built    bool
}

func NewScene() *Scene {
	return &Scene{
		Nodes: make([]*Node, 0),
	}
}

// Attach a camera to the scene.
func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

// Attach a mesh to the scene as a new node. The transform is baked into a
// world-space copy of the mesh vertices. Node ids are assigned sequentially
// starting at 1; id 0 is reserved for "no node" in the renderer's per-pixel
// node channel.
func (s *Scene) AddNode(name string, mesh *Mesh, transform types.Mat4) (*Node, error) {
	if mesh == nil {
		return nil, fmt.Errorf("scene: no mesh assigned to node %q", name)
	}
	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("scene: mesh %q attached to node %q defines no faces", mesh.Name, name)
	}

	verts := make([]types.Vec3, len(mesh.Verts))
	for i, v := range mesh.Verts {
		verts[i] = transform.Transform(v)
	}

	node := &Node{
		ID:   uint32(len(s.Nodes) + 1),
		Name: name,
		Mesh: &Mesh{
			Name:  mesh.Name,
			Verts: verts,
			Faces: mesh.Faces,
		},
	}
	s.Nodes = append(s.Nodes, node)

	// Invalidate any previously built BVH
	s.tris = nil
	s.bvhNodes = nil
	s.built = false
	return node, nil
}

// Flatten the node meshes into a triangle list and build the BVH used by
// Intersect. Build is idempotent and must not be called concurrently with
// Intersect.
func (s *Scene) Build() {
	if s.built {
		return
	}

	numTris := 0
	for _, node := range s.Nodes {
		numTris += len(node.Mesh.Faces)
	}

	workList := make([]BoundedVolume, 0, numTris)
	for _, node := range s.Nodes {
		for face := range node.Mesh.Faces {
			v0, v1, v2 := node.Mesh.FaceVerts(uint32(face))
			workList = append(workList, &sceneTri{
				verts: [3]types.Vec3{v0, v1, v2},
				node:  node.ID,
				face:  uint32(face),
			})
		}
	}

	if len(workList) > 0 {
		nodes, items := BuildBVH(workList, bvhMinLeafItems)
		tris := make([]*sceneTri, len(items))
		for i, item := range items {
			tris[i] = item.(*sceneTri)
		}
		s.bvhNodes = nodes
		s.tris = tris
	}
	s.built = true
}

// Find the closest intersection of a world-space ray with the scene geometry.
// Safe for concurrent use once the scene has been built; an unbuilt scene
// falls back to a brute-force scan so the result is identical either way.
func (s *Scene) Intersect(r Ray) (RayHit, bool) {
	if !s.built {
		return s.intersectBrute(r)
	}
	if len(s.tris) == 0 {
		return RayHit{}, false
	}

	best := RayHit{T: maxFloat}
	found := false

	// The stack grows on demand; unbalanced SAH trees can exceed any fixed
	// depth bound.
	stack := make([]int32, 1, 64)
	stack[0] = 0
	for len(stack) > 0 {
		node := &s.bvhNodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]
		if !intersectAABB(r, node.Min, node.Max, best.T) {
			continue
		}
		if !node.IsLeaf() {
			stack = append(stack, node.Left, node.Right)
			continue
		}
		for i := node.First; i < node.First+node.Count; i++ {
			if hit, ok := intersectSceneTri(r, s.tris[i], best.T); ok {
				best = hit
				found = true
			}
		}
	}

	return best, found
}

// Brute-force intersection over every node face. Used by Intersect before the
// scene is built and by tests to validate the BVH path.
func (s *Scene) intersectBrute(r Ray) (RayHit, bool) {
	best := RayHit{T: maxFloat}
	found := false
	for _, node := range s.Nodes {
		for face := range node.Mesh.Faces {
			v0, v1, v2 := node.Mesh.FaceVerts(uint32(face))
			t, u, v, ok := intersectTriangle(r, v0, v1, v2)
			if ok && t < best.T {
				best = RayHit{
					Node:      node.ID,
					FaceIndex: uint32(face) + 1,
					Bary:      types.Vec3{1 - u - v, u, v},
					T:         t,
				}
				found = true
			}
		}
	}
	return best, found
}

func intersectSceneTri(r Ray, tri *sceneTri, tMax float32) (RayHit, bool) {
	t, u, v, ok := intersectTriangle(r, tri.verts[0], tri.verts[1], tri.verts[2])
	if !ok || t >= tMax {
		return RayHit{}, false
	}
	return RayHit{
		Node:      tri.node,
		FaceIndex: tri.face + 1,
		Bary:      types.Vec3{1 - u - v, u, v},
		T:         t,
	}, true
}

// Get a printable summary of the scene contents.
func (s *Scene) Stats() string {
	numTris := 0
	for _, node := range s.Nodes {
		numTris += len(node.Mesh.Faces)
	}

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Nodes:     %d\n", len(s.Nodes)))
	buf.WriteString(fmt.Sprintf("Triangles: %d\n", numTris))
	for _, node := range s.Nodes {
		buf.WriteString(fmt.Sprintf("  [%02d] %-20s %6d verts %6d faces\n", node.ID, node.Name, len(node.Mesh.Verts), len(node.Mesh.Faces)))
	}
	if s.built {
		buf.WriteString(fmt.Sprintf("BVH nodes: %d\n", len(s.bvhNodes)))
	}
	return buf.String()
}
