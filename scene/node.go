package scene

// A node attaches a mesh to the scene. Nodes are identified by the non-zero
// id that the scene assigns when the node is attached; the id is what the
// renderer records into the per-pixel node channel of an info pass.
type Node struct {
	ID   uint32
	Name string

	// Mesh vertices are stored in world space; the node transform is baked
	// in when the node is attached to a scene.
	Mesh *Mesh
}
