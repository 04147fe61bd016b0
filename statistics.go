package vdlib

import "github.com/go-gl/mathgl/mgl32"

// MinMax holds the per-component minimum and maximum of a set of points.
type MinMax struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// MinMaxVertices scans vertices (a flat x,y,z,... buffer) and returns the
// axis-aligned bounds.
func MinMaxVertices(vertices []float32) MinMax {
	mm := MinMax{
		Min: mgl32.Vec3{vertices[0], vertices[1], vertices[2]},
		Max: mgl32.Vec3{vertices[0], vertices[1], vertices[2]},
	}

	for i := 3; i < len(vertices); i += 3 {
		x, y, z := vertices[i], vertices[i+1], vertices[i+2]
		if x < mm.Min[0] {
			mm.Min[0] = x
		}
		if y < mm.Min[1] {
			mm.Min[1] = y
		}
		if z < mm.Min[2] {
			mm.Min[2] = z
		}
		if x > mm.Max[0] {
			mm.Max[0] = x
		}
		if y > mm.Max[1] {
			mm.Max[1] = y
		}
		if z > mm.Max[2] {
			mm.Max[2] = z
		}
	}

	return mm
}

// Average returns the mean vertex of vertices (a flat x,y,z,... buffer).
func Average(vertices []float32) mgl32.Vec3 {
	var sum mgl32.Vec3
	for i := 0; i < len(vertices); i += 3 {
		sum[0] += vertices[i]
		sum[1] += vertices[i+1]
		sum[2] += vertices[i+2]
	}

	// len(vertices) counts floats, not vertices: there are len/3 vertices,
	// so dividing the sum by (len/3) is the same as multiplying by 3/len.
	scale := float32(3.0) / float32(len(vertices))
	return sum.Mul(scale)
}

// Covariance returns the 3x3 covariance matrix of vertices (a flat
// x,y,z,... buffer) about mean, stored as three rows.
func Covariance(vertices []float32, mean mgl32.Vec3) mgl32.Mat3 {
	var xx, yy, zz, xy, xz, yz float32

	for i := 0; i < len(vertices); i += 3 {
		dx := vertices[i] - mean[0]
		dy := vertices[i+1] - mean[1]
		dz := vertices[i+2] - mean[2]

		xx += dx * dx
		yy += dy * dy
		zz += dz * dz
		xy += dx * dy
		xz += dx * dz
		yz += dy * dz
	}

	n := float32(len(vertices)) / 3.0
	xx /= n
	yy /= n
	zz /= n
	xy /= n
	xz /= n
	yz /= n

	return mgl32.Mat3{
		xx, xy, xz,
		xy, yy, yz,
		xz, yz, zz,
	}
}

// AxisMinMaxValues projects vertices (a flat x,y,z,... buffer) onto each of
// the three axes relative to center and returns the min/max projection
// along each axis, in Min[i]/Max[i].
func AxisMinMaxValues(vertices []float32, center mgl32.Vec3, axis [3]mgl32.Vec3) MinMax {
	first := mgl32.Vec3{vertices[0], vertices[1], vertices[2]}.Sub(center)
	mm := MinMax{}
	for i := 0; i < 3; i++ {
		proj := first.Dot(axis[i])
		mm.Min[i] = proj
		mm.Max[i] = proj
	}

	for i := 3; i < len(vertices); i += 3 {
		p := mgl32.Vec3{vertices[i], vertices[i+1], vertices[i+2]}.Sub(center)
		for a := 0; a < 3; a++ {
			proj := p.Dot(axis[a])
			if proj < mm.Min[a] {
				mm.Min[a] = proj
			}
			if proj > mm.Max[a] {
				mm.Max[a] = proj
			}
		}
	}

	return mm
}
