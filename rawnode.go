package vdlib

// rawGeometryInfo locates one geometry's vertices within a rawNode's
// vertex buffer and carries the persistent Geometry record that will be
// copied onto the final Node.
type rawGeometryInfo struct {
	verticesStart int
	verticesSize  int
	geometry      Geometry
}

// rawNode is a construction-time node: it owns a contiguous slice of
// vertices and the geometries drawn from it. TreeBuilder repeatedly splits
// rawNodes into two children until a termination condition is met, then
// converts the surviving leaves and internal nodes into persistent Nodes.
type rawNode struct {
	vertices   []float32
	geometries []rawGeometryInfo

	node *Node
}

// computeBoundingBox fits a box over this node's content. When the node
// holds exactly one geometry its own box is reused as-is rather than
// refit, since refitting a single geometry can only loosen the bound.
func (rn *rawNode) computeBoundingBox(kind BoxKind) Box {
	if len(rn.geometries) == 1 {
		return rn.geometries[0].geometry.Box
	}
	return FitBox(rn.vertices, kind)
}

// assignGeometriesToHierarchyNode copies this rawNode's geometries onto
// its persistent Node.
func (rn *rawNode) assignGeometriesToHierarchyNode() {
	rn.node.Geometries = make([]Geometry, len(rn.geometries))
	for i, info := range rn.geometries {
		rn.node.Geometries[i] = info.geometry
	}
}

// vertexCount returns the number of vertices (not floats) in this
// rawNode's buffer.
func (rn *rawNode) vertexCount() int {
	return len(rn.vertices) / 3
}
