package vdlib

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewPlaneFromPoint(t *testing.T) {
	p := NewPlaneFromPoint(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 5, 0})
	if d := DistanceToPlane(mgl32.Vec3{3, 5, -2}, p); mgl32.Abs(d) > 1e-5 {
		t.Fatalf("point on plane has distance %v, want ~0", d)
	}
	if d := DistanceToPlane(mgl32.Vec3{0, 6, 0}, p); d <= 0 {
		t.Fatalf("point above plane has distance %v, want > 0", d)
	}
}

func TestPlaneNormalize(t *testing.T) {
	p := NewPlane(0, 2, 0, 4)
	p.Normalize()

	if mgl32.Abs(p.Normal.Len()-1) > 1e-5 {
		t.Fatalf("normalized normal length = %v, want 1", p.Normal.Len())
	}
	if mgl32.Abs(p.Position-2) > 1e-5 {
		t.Fatalf("Position = %v, want 2", p.Position)
	}
}
