package vdlib

import (
	"container/heap"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/potato3d/vdlib/log"
)

// OcclusionOptions configures OcclusionCuller.
type OcclusionOptions struct {
	// VisibilityThreshold is the sample count a query must exceed for
	// its node to be considered visible.
	VisibilityThreshold int
}

// DefaultOcclusionOptions returns the threshold the original
// implementation used: any query that passed at least one sample counts
// as visible.
func DefaultOcclusionOptions() OcclusionOptions {
	return OcclusionOptions{VisibilityThreshold: 0}
}

// OcclusionInfo is OcclusionCuller's per-node side table entry.
type OcclusionInfo struct {
	LastVisited  int
	LastRendered int
	Visible      bool

	DistanceToViewpoint float32
}

// OcclusionCallback collaborates with OcclusionCuller during a Traverse
// call. IsValid composes frustum culling and any other per-frame
// visibility test a caller wants applied before occlusion queries are
// spent on a node.
type OcclusionCallback interface {
	// IsValid reports whether node should be considered for occlusion
	// testing at all this frame.
	IsValid(node *Node) bool
	// Draw renders node's actual geometry.
	Draw(node *Node)
	// DrawBoundingBox renders node's bounding box only, with color and
	// depth writes disabled — used to probe occlusion without
	// contributing to the visible image.
	DrawBoundingBox(node *Node)
}

// OcclusionCuller implements coherent hierarchical occlusion culling
// (Bittner et al.): a front-to-back traversal that interleaves
// asynchronous hardware occlusion queries with ordinary rendering,
// skipping subtrees whose bounding volume query reports no visible
// samples and reusing last frame's visibility to skip redundant queries
// on nodes that were visible and whose children are already known to be
// at least partially visible.
type OcclusionCuller struct {
	backend QueryBackend
	options OcclusionOptions
	logger  log.Logger

	info []OcclusionInfo

	viewpoint mgl32.Vec3
	nearPlane Plane

	queue      distanceQueue
	queryQueue []inFlightQuery
}

type inFlightQuery struct {
	node           *Node
	isGeometryQuery bool
}

// NewOcclusionCuller creates an OcclusionCuller with per-node state sized
// for a hierarchy containing nodeCount nodes (Node.ID values in
// [0, nodeCount)), issuing queries through backend.
func NewOcclusionCuller(nodeCount int, backend QueryBackend, options OcclusionOptions) *OcclusionCuller {
	info := make([]OcclusionInfo, nodeCount)
	for i := range info {
		info[i].LastVisited = -1
		info[i].LastRendered = -1
	}
	return &OcclusionCuller{
		backend: backend,
		options: options,
		logger:  log.New("occlusion"),
		info:    info,
	}
}

// UpdateViewerParameters recomputes the viewpoint (the camera's world
// position, recovered from view) and the frustum's near plane (extracted
// from proj*view, the same recipe FrustumCuller uses for its own near
// plane), both needed by Traverse.
func (oc *OcclusionCuller) UpdateViewerParameters(view, proj mgl32.Mat4) {
	rotation := mgl32.Mat3{
		view[0], view[1], view[2],
		view[4], view[5], view[6],
		view[8], view[9], view[10],
	}
	translation := mgl32.Vec3{view[12], view[13], view[14]}
	oc.viewpoint = rotation.Transpose().Mul3x1(translation.Mul(-1))

	viewProj := proj.Mul4(view)
	r2 := viewProj.Row(2)
	r3 := viewProj.Row(3)
	near := r3.Add(r2)

	p := NewPlane(near[0], near[1], near[2], near[3])
	p.Normalize()
	oc.nearPlane = p
}

// Traverse walks root front-to-back relative to the last viewpoint set by
// UpdateViewerParameters, issuing draw calls through callback for every
// node determined visible and occlusion queries through the configured
// QueryBackend. frameID must increase by exactly one between consecutive
// calls for a given root for the "was visible last frame" optimization to
// apply; any other change (e.g. a reset to 0) is treated as "no history".
func (oc *OcclusionCuller) Traverse(root *Node, frameID int, callback OcclusionCallback) error {
	oc.queue = oc.queue[:0]
	oc.queryQueue = oc.queryQueue[:0]

	oc.pushNode(root)

	for len(oc.queue) > 0 || len(oc.queryQueue) > 0 {
		if err := oc.drainAvailableQueries(frameID, callback); err != nil {
			return err
		}

		if len(oc.queue) == 0 {
			continue
		}

		node := heap.Pop(&oc.queue).(distanceItem).node
		info := &oc.info[node.ID]

		if !callback.IsValid(node) {
			continue
		}

		if PlaneVsBox(oc.nearPlane, node.Box) == 0 {
			// The viewer is inside or straddling this box; an occlusion
			// query here is unreliable (its own near-plane clipping can
			// make a visible box appear to pass zero samples), so treat
			// it as visible outright.
			info.Visible = true
			info.LastVisited = frameID
			oc.pullUpVisibility(node)
			oc.drawAndRecurse(node, frameID, callback)
			continue
		}

		wasVisible := info.Visible && info.LastVisited == frameID-1
		info.Visible = false
		info.LastVisited = frameID

		switch {
		case wasVisible && !node.IsLeaf():
			oc.pushChildren(node)
		case wasVisible && node.IsLeaf():
			if err := oc.backend.BeginGeometryQuery(node.ID); err != nil {
				return oc.wrapBackendErr(node.ID, err)
			}
			callback.Draw(node)
			if err := oc.backend.End(); err != nil {
				return oc.wrapBackendErr(node.ID, err)
			}
			info.LastRendered = frameID
			oc.queryQueue = append(oc.queryQueue, inFlightQuery{node: node, isGeometryQuery: true})
		default:
			if err := oc.backend.BeginBoundingVolumeQuery(node.ID); err != nil {
				return oc.wrapBackendErr(node.ID, err)
			}
			callback.DrawBoundingBox(node)
			if err := oc.backend.End(); err != nil {
				return oc.wrapBackendErr(node.ID, err)
			}
			oc.queryQueue = append(oc.queryQueue, inFlightQuery{node: node, isGeometryQuery: false})
		}
	}

	return nil
}

// drainAvailableQueries resolves every currently-available query result at
// the front of the FIFO, stopping as soon as it hits one that isn't ready
// yet (so results are always consumed in issue order) or the queue is
// drained, unless the distance queue is also empty, in which case it
// blocks on each remaining query in turn so Traverse can make progress.
func (oc *OcclusionCuller) drainAvailableQueries(frameID int, callback OcclusionCallback) error {
	for len(oc.queryQueue) > 0 {
		front := oc.queryQueue[0]

		available, err := oc.backend.ResultAvailable(front.node.ID)
		if err != nil {
			return oc.wrapBackendErr(front.node.ID, err)
		}
		if !available && len(oc.queue) > 0 {
			return nil
		}

		samples, err := oc.backend.Result(front.node.ID)
		if err != nil {
			return oc.wrapBackendErr(front.node.ID, err)
		}
		oc.queryQueue = oc.queryQueue[1:]

		info := &oc.info[front.node.ID]
		if samples <= oc.options.VisibilityThreshold {
			continue
		}

		info.Visible = true
		oc.pullUpVisibility(front.node)

		if front.isGeometryQuery || info.LastRendered == frameID {
			// A geometry query's draw already happened when the query
			// was issued (optimistic rendering); only a bounding-volume
			// query's success still needs its real content drawn.
			continue
		}
		oc.drawAndRecurse(front.node, frameID, callback)
	}

	return nil
}

// drawAndRecurse renders node's real geometry (if a leaf) and queues its
// children (if internal), marking node rendered for this frame either
// way.
func (oc *OcclusionCuller) drawAndRecurse(node *Node, frameID int, callback OcclusionCallback) {
	info := &oc.info[node.ID]
	info.LastRendered = frameID

	if node.IsLeaf() {
		callback.Draw(node)
		return
	}
	oc.pushChildren(node)
}

// pullUpVisibility marks every ancestor of node visible, stopping as soon
// as it reaches one that is already marked visible (its ancestors must
// already be marked too).
func (oc *OcclusionCuller) pullUpVisibility(node *Node) {
	for n := node.Parent; n != nil; n = n.Parent {
		info := &oc.info[n.ID]
		if info.Visible {
			return
		}
		info.Visible = true
	}
}

func (oc *OcclusionCuller) pushChildren(node *Node) {
	if node.Left != nil {
		oc.pushNode(node.Left)
	}
	if node.Right != nil {
		oc.pushNode(node.Right)
	}
}

// wrapBackendErr logs and wraps an error returned by the QueryBackend so
// callers can match it against ErrQueryBackendUnavailable with errors.Is.
func (oc *OcclusionCuller) wrapBackendErr(nodeID int, err error) error {
	oc.logger.Errorf("occlusion query failed for node %d: %v", nodeID, err)
	return fmt.Errorf("%w: %v", ErrQueryBackendUnavailable, err)
}

func (oc *OcclusionCuller) pushNode(node *Node) {
	distance := DistanceToBox(oc.viewpoint, node.Box)
	oc.info[node.ID].DistanceToViewpoint = distance
	heap.Push(&oc.queue, distanceItem{node: node, distance: distance})
}

// distanceItem pairs a node with the distance it had to the viewpoint
// when it was queued, so the heap doesn't need a reference back to
// OcclusionCuller.info to order itself.
type distanceItem struct {
	node     *Node
	distance float32
}

// distanceQueue is a min-heap of nodes ordered by ascending distance to
// the viewpoint, so Traverse always considers the closest pending node
// next (front-to-back order is what makes early occlusion queries likely
// to cull later, farther geometry).
type distanceQueue []distanceItem

func (q distanceQueue) Len() int { return len(q) }

func (q distanceQueue) Less(i, j int) bool { return q[i].distance < q[j].distance }

func (q distanceQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *distanceQueue) Push(x interface{}) { *q = append(*q, x.(distanceItem)) }

func (q *distanceQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
