package vdlib

import "github.com/go-gl/mathgl/mgl32"

// Box is an oriented bounding box: a center, three orthonormal axes, and
// the half-extents along each axis. An axis-aligned box is simply one
// whose axes are the identity basis.
type Box struct {
	Center  mgl32.Vec3
	Axis    [3]mgl32.Vec3
	Extents mgl32.Vec3
}

// LongestAxis returns the index (0, 1 or 2) of the axis with the largest
// extent.
func (b *Box) LongestAxis() int {
	longest := 0
	if b.Extents[1] > b.Extents[longest] {
		longest = 1
	}
	if b.Extents[2] > b.Extents[longest] {
		longest = 2
	}
	return longest
}

// ComputeVertices returns the 8 corners of the box in the following order:
//
//	    6-------7
//	   /|      /|
//	  2-------3 |
//	  | 4-----|-5
//	  |/      |/
//	  0-------1
//
// where axis 0 runs along the 0->1 edge, axis 1 along 0->2, axis 2 along
// 0->4.
func (b *Box) ComputeVertices() [8]mgl32.Vec3 {
	ax := b.Axis[0].Mul(b.Extents[0])
	ay := b.Axis[1].Mul(b.Extents[1])
	az := b.Axis[2].Mul(b.Extents[2])

	var v [8]mgl32.Vec3
	v[0] = b.Center.Sub(ax).Sub(ay).Sub(az)
	v[1] = b.Center.Add(ax).Sub(ay).Sub(az)
	v[2] = b.Center.Sub(ax).Add(ay).Sub(az)
	v[3] = b.Center.Add(ax).Add(ay).Sub(az)
	v[4] = b.Center.Sub(ax).Sub(ay).Add(az)
	v[5] = b.Center.Add(ax).Sub(ay).Add(az)
	v[6] = b.Center.Sub(ax).Add(ay).Add(az)
	v[7] = b.Center.Add(ax).Add(ay).Add(az)
	return v
}
