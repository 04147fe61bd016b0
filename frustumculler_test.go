package vdlib

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// boxAt returns a small axis-aligned box centered on center.
func boxAt(center mgl32.Vec3) Box {
	return Box{
		Center:  center,
		Axis:    [3]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		Extents: mgl32.Vec3{0.5, 0.5, 0.5},
	}
}

type recordingFrustumCallback struct {
	insideIDs []int
}

func (r *recordingFrustumCallback) Inside(node *Node) {
	r.insideIDs = append(r.insideIDs, node.ID)
}

func TestFrustumCullerSkipsOutsideSubtree(t *testing.T) {
	// root spans both children's boxes; left child is in front of the
	// camera, right child is far behind it and should be culled along
	// with its own child.
	left := &Node{ID: 1, Box: boxAt(mgl32.Vec3{0, 0, 5})}
	right := &Node{ID: 2, Box: boxAt(mgl32.Vec3{0, 0, -100})}
	rightChild := &Node{ID: 3, Box: boxAt(mgl32.Vec3{0, 0, -100}), Parent: right}
	right.Left = rightChild

	root := &Node{ID: 0, Left: left, Right: right,
		Box: Box{
			Center:  mgl32.Vec3{0, 0, -47.5},
			Axis:    [3]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			Extents: mgl32.Vec3{1, 1, 53},
		},
	}
	left.Parent, right.Parent = root, root

	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(60), 1, 1, 50)

	fc := NewFrustumCuller(4)
	fc.UpdateFrustumPlanes(proj.Mul4(view))

	cb := &recordingFrustumCallback{}
	fc.Traverse(root, cb)

	for _, id := range cb.insideIDs {
		if id == 3 {
			t.Fatalf("rightChild (behind far plane) should have been culled, got insideIDs = %v", cb.insideIDs)
		}
	}
}

func TestFrustumCullerContainsStandalone(t *testing.T) {
	root := &Node{ID: 0, Box: boxAt(mgl32.Vec3{0, 0, 5})}

	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(60), 1, 1, 50)

	fc := NewFrustumCuller(1)
	fc.UpdateFrustumPlanes(proj.Mul4(view))

	if !fc.Contains(root) {
		t.Fatalf("box directly in front of the camera should be inside the frustum")
	}
}
