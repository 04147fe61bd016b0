package vdlib

import "testing"

func TestPlaneVsBoxInside(t *testing.T) {
	box := unitAABB()
	plane := NewPlane(1, 0, 0, -5) // x = 5, box is entirely at x < 5
	if got := PlaneVsBox(plane, box); got != 1 {
		t.Fatalf("PlaneVsBox = %d, want 1", got)
	}
}

func TestPlaneVsBoxOutside(t *testing.T) {
	box := unitAABB()
	plane := NewPlane(1, 0, 0, 5) // x = -5, box is entirely at x > -5
	if got := PlaneVsBox(plane, box); got != -1 {
		t.Fatalf("PlaneVsBox = %d, want -1", got)
	}
}

func TestPlaneVsBoxStraddling(t *testing.T) {
	box := unitAABB()
	plane := NewPlane(1, 0, 0, 0) // x = 0, passes through the box
	if got := PlaneVsBox(plane, box); got != 0 {
		t.Fatalf("PlaneVsBox = %d, want 0", got)
	}
}
