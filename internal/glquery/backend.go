// Package glquery implements vdlib.QueryBackend against a live OpenGL 2.1
// context using GL_SAMPLES_PASSED occlusion queries, mirroring the
// original OcclusionQueryManager's one-query-object-per-node design.
package glquery

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
)

// Backend issues GL_SAMPLES_PASSED occlusion queries. It assumes the
// caller has already made a GL context current; creating or managing that
// context is out of scope here, same as it is for vdlib as a whole.
type Backend struct {
	queries    []uint32
	openNodeID int
	hasOpen    bool
}

// New allocates one query object per node id in [0, nodeCount), via
// gl.GenQueries, matching the original OcclusionQueryManager's
// init-time allocation.
func New(nodeCount int) *Backend {
	b := &Backend{queries: make([]uint32, nodeCount)}
	gl.GenQueries(int32(nodeCount), &b.queries[0])
	return b
}

// Close releases the backend's query objects.
func (b *Backend) Close() {
	if len(b.queries) == 0 {
		return
	}
	gl.DeleteQueries(int32(len(b.queries)), &b.queries[0])
}

// BeginBoundingVolumeQuery starts a query for node's box, disabling color
// and depth writes and lighting for the draw that follows so the probe
// geometry never affects the final image.
func (b *Backend) BeginBoundingVolumeQuery(nodeID int) error {
	if err := b.begin(nodeID); err != nil {
		return err
	}
	gl.ColorMask(false, false, false, false)
	gl.DepthMask(false)
	gl.Disable(gl.LIGHTING)
	return nil
}

// BeginGeometryQuery starts a query for node's actual geometry, leaving
// color and depth writes enabled.
func (b *Backend) BeginGeometryQuery(nodeID int) error {
	return b.begin(nodeID)
}

func (b *Backend) begin(nodeID int) error {
	if nodeID < 0 || nodeID >= len(b.queries) {
		return fmt.Errorf("glquery: node id %d out of range [0,%d)", nodeID, len(b.queries))
	}
	gl.BeginQuery(gl.SAMPLES_PASSED, b.queries[nodeID])
	b.openNodeID = nodeID
	b.hasOpen = true
	return nil
}

// End closes the query opened by the most recent Begin* call and restores
// the write masks a bounding-volume query disabled.
func (b *Backend) End() error {
	if !b.hasOpen {
		return fmt.Errorf("glquery: End called with no open query")
	}
	gl.EndQuery(gl.SAMPLES_PASSED)
	gl.ColorMask(true, true, true, true)
	gl.DepthMask(true)
	gl.Enable(gl.LIGHTING)
	b.hasOpen = false
	return nil
}

// ResultAvailable reports whether nodeID's query result is ready without
// blocking, via GL_QUERY_RESULT_AVAILABLE.
func (b *Backend) ResultAvailable(nodeID int) (bool, error) {
	if nodeID < 0 || nodeID >= len(b.queries) {
		return false, fmt.Errorf("glquery: node id %d out of range [0,%d)", nodeID, len(b.queries))
	}
	var available uint32
	gl.GetQueryObjectuiv(b.queries[nodeID], gl.QUERY_RESULT_AVAILABLE, &available)
	return available != 0, nil
}

// Result returns the sample count for nodeID's query via
// GL_QUERY_RESULT, blocking if the result is not yet available.
func (b *Backend) Result(nodeID int) (int, error) {
	if nodeID < 0 || nodeID >= len(b.queries) {
		return 0, fmt.Errorf("glquery: node id %d out of range [0,%d)", nodeID, len(b.queries))
	}
	var samples uint32
	gl.GetQueryObjectuiv(b.queries[nodeID], gl.QUERY_RESULT, &samples)
	return int(samples), nil
}
