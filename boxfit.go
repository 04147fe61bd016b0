package vdlib

import "github.com/go-gl/mathgl/mgl32"

// BoxKind selects the fitting strategy FitBox uses.
type BoxKind int

const (
	// AABB fits an axis-aligned box: identity axes, extents taken
	// directly from the min/max of the input vertices.
	AABB BoxKind = iota
	// OBB fits an object-oriented box whose axes follow the principal
	// components of the input vertices' covariance matrix.
	OBB
)

// FitBox computes a Box tightly enclosing vertices (a flat x,y,z,...
// buffer) using the strategy named by kind. The original C++ exposed this
// choice through a process-wide static default (BoxFactory::s_defaultType);
// here it is an explicit parameter, so callers pick per call instead of
// mutating shared global state. An empty buffer yields a box with identity
// axes and zero extents at the origin.
func FitBox(vertices []float32, kind BoxKind) Box {
	if len(vertices) < 3 {
		return Box{Axis: [3]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
	}
	switch kind {
	case OBB:
		return fitOBB(vertices)
	default:
		return fitAABB(vertices)
	}
}

func fitAABB(vertices []float32) Box {
	mm := MinMaxVertices(vertices)
	return Box{
		Center:  mm.Min.Add(mm.Max).Mul(0.5),
		Axis:    [3]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		Extents: mm.Max.Sub(mm.Min).Mul(0.5),
	}
}

func fitOBB(vertices []float32) Box {
	mean := Average(vertices)
	cov := Covariance(vertices, mean)
	eigen := SolveEigen(cov)

	// Eigenvectors are sorted by increasing eigenvalue; use them directly
	// as the box axes regardless of that ordering, matching the original.
	axis := eigen.Eigenvectors

	mm := AxisMinMaxValues(vertices, mean, axis)

	var box Box
	box.Axis = axis
	box.Extents = mm.Max.Sub(mm.Min).Mul(0.5)

	mid := mm.Min.Add(mm.Max).Mul(0.5)
	box.Center = mean.
		Add(axis[0].Mul(mid[0])).
		Add(axis[1].Mul(mid[1])).
		Add(axis[2].Mul(mid[2]))

	return box
}
