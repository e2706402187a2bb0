package scene

import (
	"time"

	"github.com/maxplugins/InfoTexture/log"
	"github.com/maxplugins/InfoTexture/types"
)

const (
	// The BVH builder will not attempt to calculate split candidates
	// if the node bbox along an axis is less than this threshold.
	minSideLength float32 = 1e-3

	// Number of split candidates evaluated per axis.
	numSplitCandidates = 32
)

// The BoundedVolume interface is implemented by anything that can be
// partitioned by the bvh builder.
type BoundedVolume interface {
	BBox() [2]types.Vec3
	Center() types.Vec3
}

type bvhStats struct {
	nodes    int
	leafs    int
	maxDepth int
}

type bvhBuilder struct {
	logger log.Logger

	// Bvh nodes stored as a contiguous list.
	nodes []BvhNode

	// Partitioned items in leaf order. Leaves index into this list.
	items []BoundedVolume

	// The minimum number of items that are required for creating a leaf.
	minLeafItems int

	// Stats
	stats bvhStats
}

// Construct a BVH from a set of bounded volumes.
//
// The builder uses SAH for scoring splits:
// score = item count * node bbox face area.
//
// The minLeafItems param specifies the minimum number of items that can form
// a leaf. The builder automatically generates a leaf if the incoming work
// length is <= minLeafItems or no split candidate improves on the unsplit
// node score. It returns the node list together with the partitioned items
// that the leaf ranges reference.
func BuildBVH(workList []BoundedVolume, minLeafItems int) ([]BvhNode, []BoundedVolume) {
	builder := &bvhBuilder{
		logger:       log.New("bvhBuilder"),
		nodes:        make([]BvhNode, 0),
		items:        make([]BoundedVolume, 0, len(workList)),
		minLeafItems: minLeafItems,
	}

	start := time.Now()
	builder.partition(workList, 0)
	builder.logger.Debugf(
		"BVH tree build time: %d ms, maxDepth: %d, nodes: %d, leafs: %d",
		time.Since(start).Nanoseconds()/1e6,
		builder.stats.maxDepth, builder.stats.nodes, builder.stats.leafs,
	)
	return builder.nodes, builder.items
}

// Partition worklist and return node index.
func (b *bvhBuilder) partition(workList []BoundedVolume, depth int) int32 {
	if depth > b.stats.maxDepth {
		b.stats.maxDepth = depth
	}

	node := BvhNode{
		Min:  types.Vec3{maxFloat, maxFloat, maxFloat},
		Max:  types.Vec3{-maxFloat, -maxFloat, -maxFloat},
		Left: -1, Right: -1,
	}

	// Calculate bounding box for node
	for _, item := range workList {
		itemBBox := item.BBox()
		node.Min = types.MinVec3(node.Min, itemBBox[0])
		node.Max = types.MaxVec3(node.Max, itemBBox[1])
	}

	// Do we have enough items for partitioning? If not create a leaf
	if len(workList) <= b.minLeafItems {
		return b.createLeaf(&node, workList)
	}

	// Calc current node score
	side := node.Max.Sub(node.Min)
	bestScore := float32(len(workList)) * (side[0]*side[1] + side[1]*side[2] + side[0]*side[2])
	bestAxis := -1
	var bestSplitPoint float32

	// Try partitioning along each axis and select the split with best score
	for axis := 0; axis < 3; axis++ {
		// Skip axis if bbox dimension is too small
		if side[axis] < minSideLength {
			continue
		}

		splitStep := side[axis] / float32(numSplitCandidates)
		for splitPoint := node.Min[axis] + splitStep; splitPoint < node.Max[axis]; splitPoint += splitStep {
			score, leftCount, rightCount := b.scoreSplit(workList, axis, splitPoint)
			if leftCount == 0 || rightCount == 0 {
				continue
			}
			if score < bestScore {
				bestScore = score
				bestAxis = axis
				bestSplitPoint = splitPoint
			}
		}
	}

	// No split improves on the unsplit node
	if bestAxis == -1 {
		return b.createLeaf(&node, workList)
	}

	leftList := make([]BoundedVolume, 0, len(workList))
	rightList := make([]BoundedVolume, 0, len(workList))
	for _, item := range workList {
		if item.Center()[bestAxis] < bestSplitPoint {
			leftList = append(leftList, item)
		} else {
			rightList = append(rightList, item)
		}
	}

	nodeIndex := int32(len(b.nodes))
	b.nodes = append(b.nodes, node)
	b.stats.nodes++

	leftIndex := b.partition(leftList, depth+1)
	rightIndex := b.partition(rightList, depth+1)
	b.nodes[nodeIndex].Left = leftIndex
	b.nodes[nodeIndex].Right = rightIndex
	return nodeIndex
}

// Score a split candidate by summing the SAH scores of both halves.
func (b *bvhBuilder) scoreSplit(workList []BoundedVolume, axis int, splitPoint float32) (score float32, leftCount, rightCount int) {
	leftMin := types.Vec3{maxFloat, maxFloat, maxFloat}
	leftMax := types.Vec3{-maxFloat, -maxFloat, -maxFloat}
	rightMin := leftMin
	rightMax := leftMax

	for _, item := range workList {
		itemBBox := item.BBox()
		if item.Center()[axis] < splitPoint {
			leftCount++
			leftMin = types.MinVec3(leftMin, itemBBox[0])
			leftMax = types.MaxVec3(leftMax, itemBBox[1])
		} else {
			rightCount++
			rightMin = types.MinVec3(rightMin, itemBBox[0])
			rightMax = types.MaxVec3(rightMax, itemBBox[1])
		}
	}

	leftSide := leftMax.Sub(leftMin)
	rightSide := rightMax.Sub(rightMin)
	score = float32(leftCount)*(leftSide[0]*leftSide[1]+leftSide[1]*leftSide[2]+leftSide[0]*leftSide[2]) +
		float32(rightCount)*(rightSide[0]*rightSide[1]+rightSide[1]*rightSide[2]+rightSide[0]*rightSide[2])
	return score, leftCount, rightCount
}

// Create a leaf covering the given items and return its node index.
func (b *bvhBuilder) createLeaf(node *BvhNode, workList []BoundedVolume) int32 {
	node.First = int32(len(b.items))
	node.Count = int32(len(workList))
	b.items = append(b.items, workList...)

	nodeIndex := int32(len(b.nodes))
	b.nodes = append(b.nodes, *node)
	b.stats.nodes++
	b.stats.leafs++
	return nodeIndex
}
