package vdlib

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// scriptedBackend is an in-memory QueryBackend whose query results are
// fixed per node id ahead of time, for deterministic CHC traversal tests.
type scriptedBackend struct {
	samplesByNode map[int]int
	pending       map[int]int
	geometryBegins int
	boxBegins      int
}

func newScriptedBackend(samplesByNode map[int]int) *scriptedBackend {
	return &scriptedBackend{samplesByNode: samplesByNode, pending: make(map[int]int)}
}

func (b *scriptedBackend) BeginBoundingVolumeQuery(nodeID int) error {
	b.boxBegins++
	b.pending[nodeID] = b.samplesByNode[nodeID]
	return nil
}

func (b *scriptedBackend) BeginGeometryQuery(nodeID int) error {
	b.geometryBegins++
	b.pending[nodeID] = b.samplesByNode[nodeID]
	return nil
}

func (b *scriptedBackend) End() error { return nil }

func (b *scriptedBackend) ResultAvailable(nodeID int) (bool, error) {
	_, ok := b.pending[nodeID]
	return ok, nil
}

func (b *scriptedBackend) Result(nodeID int) (int, error) {
	samples := b.pending[nodeID]
	delete(b.pending, nodeID)
	return samples, nil
}

type recordingOcclusionCallback struct {
	drawn       []int
	boundingBox []int
}

func (r *recordingOcclusionCallback) IsValid(node *Node) bool { return true }

func (r *recordingOcclusionCallback) Draw(node *Node) {
	r.drawn = append(r.drawn, node.ID)
}

func (r *recordingOcclusionCallback) DrawBoundingBox(node *Node) {
	r.boundingBox = append(r.boundingBox, node.ID)
}

func farAwayView() (mgl32.Mat4, mgl32.Mat4) {
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, -20}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(60), 1, 1, 1000)
	return view, proj
}

func TestOcclusionCullerFirstFrameQueriesBoundingVolumes(t *testing.T) {
	left := &Node{ID: 1, Box: boxAt(mgl32.Vec3{-5, 0, 0})}
	right := &Node{ID: 2, Box: boxAt(mgl32.Vec3{5, 0, 0})}
	root := &Node{ID: 0, Left: left, Right: right,
		Box: Box{Center: mgl32.Vec3{0, 0, 0}, Axis: [3]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, Extents: mgl32.Vec3{6, 1, 1}},
	}
	left.Parent, right.Parent = root, root

	backend := newScriptedBackend(map[int]int{0: 10, 1: 10, 2: 0})
	view, proj := farAwayView()

	oc := NewOcclusionCuller(3, backend, DefaultOcclusionOptions())
	oc.UpdateViewerParameters(view, proj)

	cb := &recordingOcclusionCallback{}
	if err := oc.Traverse(root, 1, cb); err != nil {
		t.Fatalf("Traverse: %v", err)
	}

	if backend.geometryBegins != 0 {
		t.Fatalf("first frame should never skip straight to a geometry query, got %d geometry queries", backend.geometryBegins)
	}

	foundLeft, foundRight := false, false
	for _, id := range cb.drawn {
		if id == 1 {
			foundLeft = true
		}
		if id == 2 {
			foundRight = true
		}
	}
	if !foundLeft {
		t.Fatalf("visible left leaf should have been drawn; drawn = %v", cb.drawn)
	}
	if foundRight {
		t.Fatalf("occluded right leaf should not have been drawn; drawn = %v", cb.drawn)
	}
}

func TestOcclusionCullerReusesVisibilityNextFrame(t *testing.T) {
	left := &Node{ID: 1, Box: boxAt(mgl32.Vec3{-5, 0, 0})}
	root := &Node{ID: 0, Left: left,
		Box: Box{Center: mgl32.Vec3{-5, 0, 0}, Axis: [3]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, Extents: mgl32.Vec3{1, 1, 1}},
	}
	left.Parent = root

	backend := newScriptedBackend(map[int]int{0: 10, 1: 10})
	view, proj := farAwayView()

	oc := NewOcclusionCuller(2, backend, DefaultOcclusionOptions())
	oc.UpdateViewerParameters(view, proj)

	cb := &recordingOcclusionCallback{}
	if err := oc.Traverse(root, 1, cb); err != nil {
		t.Fatalf("Traverse frame 1: %v", err)
	}
	if err := oc.Traverse(root, 2, cb); err != nil {
		t.Fatalf("Traverse frame 2: %v", err)
	}

	if backend.geometryBegins == 0 {
		t.Fatalf("a leaf visible last frame should be drawn optimistically with a geometry query on the next consecutive frame")
	}
}
