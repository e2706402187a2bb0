package scene

import "github.com/maxplugins/InfoTexture/types"

// Bvh node definition. Nodes are stored in a contiguous list; inner nodes
// reference their children by index while leaves reference a range inside the
// partitioned item list returned by the builder.
type BvhNode struct {
	// Bounding box extents.
	Min types.Vec3
	Max types.Vec3

	// Child node indices. Negative for leaves.
	Left  int32
	Right int32

	// Partitioned item range covered by a leaf.
	First int32
	Count int32
}

// Returns true if this node is a leaf.
func (n *BvhNode) IsLeaf() bool {
	return n.Left < 0
}
