package vdlib

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DistanceToPlane returns the signed distance from p to the plane. Positive
// means p is on the side the normal points to.
func DistanceToPlane(p mgl32.Vec3, plane Plane) float32 {
	return plane.Normal.Dot(p) + plane.Position
}

// DistanceToBox returns the (unsigned) distance from p to the closest point
// on or inside box. It is zero when p lies inside the box.
func DistanceToBox(p mgl32.Vec3, box Box) float32 {
	d := p.Sub(box.Center)

	var sqrDistance float32
	for i := 0; i < 3; i++ {
		proj := d.Dot(box.Axis[i])
		if proj < -box.Extents[i] {
			excess := proj + box.Extents[i]
			sqrDistance += excess * excess
		} else if proj > box.Extents[i] {
			excess := proj - box.Extents[i]
			sqrDistance += excess * excess
		}
	}

	return float32(math.Sqrt(float64(sqrDistance)))
}
