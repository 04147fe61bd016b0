package vdlib

import "github.com/go-gl/mathgl/mgl32"

// planeCount is the number of frustum planes: near, left, right, bottom,
// top, far.
const planeCount = 6

// allPlanesMask has the low 6 bits set, one per frustum plane. A node's
// mask bit for plane i is set when that plane still needs to be tested
// against the node; a parent that was found fully inside a plane clears
// that plane's bit before testing its children, since a descendant can
// never be outside a plane its ancestor is fully inside of (spatial
// coherence).
const allPlanesMask = uint32(1)<<planeCount - 1

// CullingInfo is FrustumCuller's per-node side table entry. PlaneID
// remembers which plane last excluded this node so the next test checks
// it first (temporal coherence: a node excluded by a plane last frame is
// likely to be excluded by the same plane again).
type CullingInfo struct {
	PlaneID int

	// inheritedMask is the mask left after this node's last test (the
	// mask it was tested with, minus the planes it was fully inside of);
	// its children read it when they are tested in the same traversal.
	inheritedMask uint32
}

// FrustumCallback receives nodes the frustum culler has determined are at
// least partially visible.
type FrustumCallback interface {
	// Inside is called once per node that passed frustum culling, in
	// pre-order, including internal nodes (not just leaves).
	Inside(node *Node)
}

// FrustumCuller performs view-frustum culling over a Node hierarchy. It
// keeps one CullingInfo per node (indexed by Node.ID) across calls to
// UpdateFrustumPlanes so that temporal coherence carries from frame to
// frame.
type FrustumCuller struct {
	planes [planeCount]Plane
	info   []CullingInfo
}

// NewFrustumCuller creates a FrustumCuller with per-node state sized for a
// hierarchy containing nodeCount nodes (Node.ID values in [0, nodeCount)).
func NewFrustumCuller(nodeCount int) *FrustumCuller {
	return &FrustumCuller{info: make([]CullingInfo, nodeCount)}
}

// UpdateFrustumPlanes recomputes the 6 frustum planes from the combined
// view-projection matrix, extracting each as the sum or difference of two
// rows of viewProj in Hessian normal form, then normalizing. mgl32.Mat4
// is column-major and Row returns a logical matrix row regardless of
// storage order, so no manual transpose is needed here.
func (fc *FrustumCuller) UpdateFrustumPlanes(viewProj mgl32.Mat4) {
	r0 := viewProj.Row(0)
	r1 := viewProj.Row(1)
	r2 := viewProj.Row(2)
	r3 := viewProj.Row(3)

	rows := [planeCount]mgl32.Vec4{
		r3.Add(r2), // near
		r3.Add(r0), // left
		r3.Sub(r0), // right
		r3.Add(r1), // bottom
		r3.Sub(r1), // top
		r3.Sub(r2), // far
	}

	for i, r := range rows {
		p := NewPlane(r[0], r[1], r[2], r[3])
		p.Normalize()
		fc.planes[i] = p
	}
}

// Traverse walks root in pre-order, calling callback.Inside for every node
// at least partially inside the frustum and skipping the subtree of any
// node found fully outside.
func (fc *FrustumCuller) Traverse(root *Node, callback FrustumCallback) {
	it := NewPreOrderIterator(root)
	for !it.Done() {
		node := it.Current()

		if !fc.Contains(node) {
			it.Skip()
			continue
		}

		callback.Inside(node)
		it.Next()
	}
}

// Contains reports whether node is at least partially inside the current
// frustum, testing it against the mask inherited from its parent (or all
// planes, for a root). It stamps node's own inherited mask for its
// children to read, so it can be called standalone — e.g. by an
// OcclusionCallback.IsValid implementation composing occlusion culling
// with frustum culling — as long as callers visit a node's ancestors
// before the node itself, which both Traverse and OcclusionCuller.Traverse
// do.
func (fc *FrustumCuller) Contains(node *Node) bool {
	parentMask := allPlanesMask
	if node.Parent != nil {
		parentMask = fc.info[node.Parent.ID].inheritedMask
	}

	outside, mask := fc.contains(node.Box, node.ID, parentMask)
	fc.info[node.ID].inheritedMask = mask
	return !outside
}

// contains classifies box (belonging to node nodeID) against the planes
// still active in parentMask. It returns whether the box is fully outside
// any active plane, and the mask to pass down to this node's children
// (with bits cleared for every plane the box was found fully inside of).
func (fc *FrustumCuller) contains(box Box, nodeID int, parentMask uint32) (outside bool, childMask uint32) {
	mask := parentMask
	if mask == 0 {
		return false, 0
	}

	info := &fc.info[nodeID]

	cachedBit := uint32(1) << uint(info.PlaneID)
	if mask&cachedBit != 0 {
		switch side := PlaneVsBox(fc.planes[info.PlaneID], box); {
		case side < 0:
			return true, mask
		case side > 0:
			mask &^= cachedBit
		}
	}

	for i := 0; i < planeCount; i++ {
		bit := uint32(1) << uint(i)
		if mask&bit == 0 || i == info.PlaneID {
			continue
		}
		switch side := PlaneVsBox(fc.planes[i], box); {
		case side < 0:
			info.PlaneID = i
			return true, mask
		case side > 0:
			mask &^= bit
		}
	}

	return false, mask
}
