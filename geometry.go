package vdlib

// Geometry is a single piece of renderable content tracked by the
// hierarchy: one contiguous run of triangles sharing a bounding box. The
// host associates its own render state with a Geometry by matching on ID.
type Geometry struct {
	ID  int
	Box Box
}
