package vdlib

import "github.com/go-gl/mathgl/mgl32"

// PlaneVsBox classifies box against plane. It returns +1 if box lies
// entirely on the side the plane's normal points to, -1 if it lies
// entirely on the opposite side, and 0 if the plane intersects the box.
func PlaneVsBox(plane Plane, box Box) int {
	projectedCenter := DistanceToPlane(box.Center, plane)

	var projectedRadius float32
	for i := 0; i < 3; i++ {
		projectedRadius += mgl32.Abs(plane.Normal.Dot(box.Axis[i])) * box.Extents[i]
	}

	if projectedCenter >= projectedRadius {
		return 1
	}
	if projectedCenter <= -projectedRadius {
		return -1
	}
	return 0
}
