package geometry

import (
	"math/rand"
	"sort"

	"github.com/df07/go-importance-raytracer/pkg/core"
)

// BVHNode is an interior node of a Bounding Volume Hierarchy.
// Leaves are the scene objects themselves; a node built over a single
// object holds that object as both children.
type BVHNode struct {
	Left  core.Hittable
	Right core.Hittable
	bbox  core.AABB
}

// NewBVH builds a hierarchy over the list's objects. The split axis of each
// node is drawn from random, so equal seeds produce equal trees.
func NewBVH(list *HittableList, random *rand.Rand) *BVHNode {
	if len(list.Objects) == 0 {
		return &BVHNode{bbox: core.EmptyAABB}
	}

	// Sort a copy so the caller's list order is preserved
	objects := make([]core.Hittable, len(list.Objects))
	copy(objects, list.Objects)

	return buildBVH(objects, random)
}

// buildBVH recursively splits objects at the median along a uniformly random axis
func buildBVH(objects []core.Hittable, random *rand.Rand) *BVHNode {
	axis := random.Intn(3)
	node := &BVHNode{}

	switch len(objects) {
	case 1:
		node.Left, node.Right = objects[0], objects[0]
	case 2:
		node.Left, node.Right = objects[0], objects[1]
	default:
		sortByAxis(objects, axis)
		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid], random)
		node.Right = buildBVH(objects[mid:], random)
	}

	node.bbox = core.NewAABBUnion(node.Left.BoundingBox(), node.Right.BoundingBox())
	return node
}

// sortByAxis orders objects by the minimum of their bounding box along axis
func sortByAxis(objects []core.Hittable, axis int) {
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].BoundingBox().AxisInterval(axis).Min < objects[j].BoundingBox().AxisInterval(axis).Min
	})
}

// Hit tests the left subtree first, then the right subtree only up to the left hit distance.
// Each child is tested at most once per call.
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (core.HitRecord, bool) {
	if n.Left == nil || !n.bbox.Hit(ray, rayT) {
		return core.HitRecord{}, false
	}

	leftRec, hitLeft := n.Left.Hit(ray, rayT, sampler)

	// Single-object nodes alias both children; a second test would resample stochastic geometry
	if n.Right == n.Left {
		return leftRec, hitLeft
	}

	rightT := rayT
	if hitLeft {
		rightT.Max = leftRec.T
	}
	if rightRec, hitRight := n.Right.Hit(ray, rightT, sampler); hitRight {
		return rightRec, true
	}

	return leftRec, hitLeft
}

// BoundingBox returns the box enclosing both children
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// PDFValue is zero; the hierarchy is an acceleration structure, not a light-sampling target
func (n *BVHNode) PDFValue(origin, direction core.Vec3) float64 {
	return 0
}

// Random returns an arbitrary fixed direction
func (n *BVHNode) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}

// BVHStats describes the shape of a hierarchy
type BVHStats struct {
	TotalNodes int
	LeafCount  int
	MaxDepth   int
	AvgDepth   float64
}

// Stats walks the hierarchy and returns node, leaf, and depth statistics
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	if n.Left == nil {
		return stats
	}
	n.collectStats(0, &stats)

	// Calculate average depth after collecting all data
	if stats.LeafCount > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafCount)
	}
	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)

	children := []core.Hittable{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}
	for _, child := range children {
		if inner, ok := child.(*BVHNode); ok {
			inner.collectStats(depth+1, stats)
		} else {
			// Leaf object
			stats.LeafCount++
			stats.AvgDepth += float64(depth + 1)
		}
	}
}
