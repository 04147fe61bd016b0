package vdlib

// QueryBackend abstracts the hardware occlusion queries OcclusionCuller
// issues while traversing the hierarchy. A real implementation (see
// internal/glquery) wraps GL_SAMPLES_PASSED queries against a node's
// bounding box or its actual geometry; tests use an in-memory fake.
//
// OcclusionCuller calls these methods in strict pairs: Begin* opens a
// query for a node, the caller issues its draw in between, End closes it.
// Queries are asynchronous: ResultAvailable/Result poll a query issued in
// an earlier call, identified by the node id passed to Begin*.
type QueryBackend interface {
	// BeginBoundingVolumeQuery starts an occlusion query for node's
	// bounding box. Color and depth writes should be disabled for the
	// draw that follows, since the box is never meant to appear on
	// screen.
	BeginBoundingVolumeQuery(nodeID int) error
	// BeginGeometryQuery starts an occlusion query for node's actual
	// geometry, which is drawn normally (writes enabled).
	BeginGeometryQuery(nodeID int) error
	// End closes the query opened by the most recent Begin* call.
	End() error

	// ResultAvailable reports whether the query issued for nodeID has a
	// result ready without blocking.
	ResultAvailable(nodeID int) (bool, error)
	// Result returns the number of samples that passed the query issued
	// for nodeID. OcclusionCuller calls it once ResultAvailable reports
	// true for the same nodeID, or, when it has no other node left to
	// process, before that; in the latter case Result waits for the
	// result.
	Result(nodeID int) (int, error)
}
