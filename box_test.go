package vdlib

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func unitAABB() Box {
	return Box{
		Center:  mgl32.Vec3{0, 0, 0},
		Axis:    [3]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		Extents: mgl32.Vec3{1, 2, 3},
	}
}

func TestBoxLongestAxis(t *testing.T) {
	box := unitAABB()
	if got := box.LongestAxis(); got != 2 {
		t.Fatalf("LongestAxis() = %d, want 2", got)
	}
}

func TestBoxComputeVertices(t *testing.T) {
	box := unitAABB()
	verts := box.ComputeVertices()

	want := mgl32.Vec3{-1, -2, -3}
	if verts[0] != want {
		t.Fatalf("verts[0] = %v, want %v", verts[0], want)
	}

	want = mgl32.Vec3{1, 2, 3}
	if verts[7] != want {
		t.Fatalf("verts[7] = %v, want %v", verts[7], want)
	}
}
