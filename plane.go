package vdlib

import "github.com/go-gl/mathgl/mgl32"

// Plane is a plane in Hessian normal form: for any point p on the plane,
// Normal.Dot(p) + Position == 0.
type Plane struct {
	Normal   mgl32.Vec3
	Position float32
}

// NewPlane builds a plane from its four Hessian-form coefficients.
func NewPlane(a, b, c, d float32) Plane {
	return Plane{Normal: mgl32.Vec3{a, b, c}, Position: d}
}

// NewPlaneFromPoint builds a plane given its normal and a point known to
// lie on it.
func NewPlaneFromPoint(normal, pointOnPlane mgl32.Vec3) Plane {
	return Plane{
		Normal:   normal,
		Position: -normal.Dot(pointOnPlane),
	}
}

// Normalize scales the plane so that Normal has unit length, preserving
// the set of points that satisfy the plane equation. It is a no-op if the
// normal is already degenerate (zero length).
func (p *Plane) Normalize() {
	length := p.Normal.Len()
	if length < epsilon {
		return
	}
	p.Normal = p.Normal.Mul(1 / length)
	p.Position /= length
}

// epsilon guards divisions by near-zero magnitudes throughout the package.
const epsilon = 1e-8
