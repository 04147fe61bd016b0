package vdlib

import "math"

// TreeOptions configures TreeBuilder.
type TreeOptions struct {
	// BoxKind selects how node and geometry boxes are fit.
	BoxKind BoxKind
	// MinVertexCount stops splitting a node once its vertex count drops
	// to or below this value.
	MinVertexCount int
	// MinGeometryCount stops splitting a node once its geometry count
	// drops to or below this value.
	MinGeometryCount int
}

// DefaultTreeOptions returns the options the original implementation
// shipped with: AABB fitting, a minimum of 3000 vertices and 1 geometry
// per leaf.
func DefaultTreeOptions() TreeOptions {
	return TreeOptions{
		BoxKind:          AABB,
		MinVertexCount:   3000,
		MinGeometryCount: 1,
	}
}

// TreeStats summarizes a completed CreateTree call.
type TreeStats struct {
	LeafCount int
	NodeCount int
	TreeDepth int
}

// TreeBuilder builds a persistent Node hierarchy out of a SceneData's
// vertex buffer by recursively splitting along the longest axis of each
// node's own bounding box, using the average of its geometries' box
// centers as the split point. This is the "average center" heuristic:
// cheap to compute and, for scenes without pathological geometry-size
// skew, good enough not to need a full surface-area-heuristic search.
type TreeBuilder struct {
	options TreeOptions
	stats   TreeStats
}

// NewTreeBuilder creates a TreeBuilder configured by options.
func NewTreeBuilder(options TreeOptions) *TreeBuilder {
	return &TreeBuilder{options: options}
}

// CreateTree builds the hierarchy rooted at scene (as produced by
// SceneData.EndScene) and returns its root Node along with statistics
// about the resulting tree.
func (tb *TreeBuilder) CreateTree(scene *rawNode) (*Node, TreeStats) {
	tb.stats = TreeStats{}

	geometryCount := len(scene.geometries)
	maxTreeDepth := int(1.2*math.Log2(float64(geometryCount)) + 2.0)

	tb.stats.NodeCount = 1
	root := tb.recursiveCreateHierarchy(scene, nil, 0, 0, maxTreeDepth)
	return root, tb.stats
}

func (tb *TreeBuilder) recursiveCreateHierarchy(raw *rawNode, parent *Node, id, depth, maxTreeDepth int) *Node {
	box := raw.computeBoundingBox(tb.options.BoxKind)

	if raw.vertexCount() <= tb.options.MinVertexCount ||
		len(raw.geometries) <= tb.options.MinGeometryCount ||
		depth >= maxTreeDepth {
		return tb.makeLeaf(raw, parent, id, box, depth)
	}

	left, right := tb.partition(raw, box)
	if left == nil {
		// Partition failed the minimum-vertex-count requirement on one
		// side; fall back to a leaf rather than split further.
		return tb.makeLeaf(raw, parent, id, box, depth)
	}

	node := &Node{ID: id, Parent: parent, Box: box}
	raw.node = node

	// Node ids are assigned densely in build order: NodeCount always
	// equals the next unused id, since it starts at 1 to account for the
	// root (id 0) and every subsequent id handed out bumps it by one.
	leftID := tb.stats.NodeCount
	tb.stats.NodeCount++
	rightID := tb.stats.NodeCount
	tb.stats.NodeCount++

	node.Left = tb.recursiveCreateHierarchy(left, node, leftID, depth+1, maxTreeDepth)
	node.Right = tb.recursiveCreateHierarchy(right, node, rightID, depth+1, maxTreeDepth)

	return node
}

func (tb *TreeBuilder) makeLeaf(raw *rawNode, parent *Node, id int, box Box, depth int) *Node {
	if depth > tb.stats.TreeDepth {
		tb.stats.TreeDepth = depth
	}
	tb.stats.LeafCount++

	node := &Node{ID: id, Parent: parent, Box: box}
	raw.node = node
	raw.assignGeometriesToHierarchyNode()
	return node
}

// partition splits raw into two rawNodes along the longest axis of box,
// using the mean of raw's geometries' box centers as the split point and
// routing any geometry exactly on the plane to the right child. It
// returns (nil, nil) if either side would end up below MinVertexCount.
func (tb *TreeBuilder) partition(raw *rawNode, box Box) (*rawNode, *rawNode) {
	plane := tb.findSplitPlane(raw, box)

	var leftInfos, rightInfos []rawGeometryInfo
	for _, info := range raw.geometries {
		if DistanceToPlane(info.geometry.Box.Center, plane) < 0 {
			leftInfos = append(leftInfos, info)
		} else {
			rightInfos = append(rightInfos, info)
		}
	}

	if len(leftInfos) == 0 || len(rightInfos) == 0 {
		return nil, nil
	}

	left := buildRawChild(raw, leftInfos)
	right := buildRawChild(raw, rightInfos)

	if left.vertexCount() < tb.options.MinVertexCount || right.vertexCount() < tb.options.MinVertexCount {
		return nil, nil
	}

	return left, right
}

// findSplitPlane builds the split plane used by partition: its normal is
// raw's own longest box axis, and it passes through the mean of the
// centers of the boxes of raw's geometries (not the mean of raw's
// vertices — geometries, not triangles, are the unit of partitioning).
func (tb *TreeBuilder) findSplitPlane(raw *rawNode, box Box) Plane {
	normal := box.Axis[box.LongestAxis()]

	mean := raw.geometries[0].geometry.Box.Center
	for _, info := range raw.geometries[1:] {
		mean = mean.Add(info.geometry.Box.Center)
	}
	mean = mean.Mul(1 / float32(len(raw.geometries)))

	return NewPlaneFromPoint(normal, mean)
}

// buildRawChild assembles a child rawNode covering exactly the geometries
// in infos, copying their vertex ranges out of parent's buffer into a
// freshly allocated, tightly sized one.
func buildRawChild(parent *rawNode, infos []rawGeometryInfo) *rawNode {
	totalVertices := 0
	for _, info := range infos {
		totalVertices += info.verticesSize
	}

	vertices := make([]float32, 0, totalVertices)
	geometries := make([]rawGeometryInfo, len(infos))
	for i, info := range infos {
		newStart := len(vertices)
		vertices = append(vertices, parent.vertices[info.verticesStart:info.verticesStart+info.verticesSize]...)
		geometries[i] = rawGeometryInfo{
			verticesStart: newStart,
			verticesSize:  info.verticesSize,
			geometry:      info.geometry,
		}
	}

	return &rawNode{
		vertices:   vertices,
		geometries: geometries,
	}
}
