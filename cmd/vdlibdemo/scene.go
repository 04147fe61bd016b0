package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/potato3d/vdlib"
)

// unitCube is a flat x,y,z,... buffer of 12 triangles (36 vertices)
// describing a unit cube centered at the origin.
var unitCube = buildUnitCube()

func buildUnitCube() []float32 {
	// Corner layout matches Box.ComputeVertices.
	c := [8]mgl32.Vec3{
		{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5},
		{-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5},
		{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5},
		{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5},
	}
	faces := [6][4]int{
		{0, 1, 3, 2}, // back
		{4, 6, 7, 5}, // front
		{0, 2, 6, 4}, // left
		{1, 5, 7, 3}, // right
		{2, 3, 7, 6}, // top
		{0, 4, 5, 1}, // bottom
	}

	var vertices []float32
	for _, f := range faces {
		tris := [2][3]int{{f[0], f[1], f[2]}, {f[0], f[2], f[3]}}
		for _, t := range tris {
			for _, idx := range t {
				v := c[idx]
				vertices = append(vertices, v[0], v[1], v[2])
			}
		}
	}
	return vertices
}

// buildCubeFieldScene assembles a scene of count unit cubes arranged in a
// roughly cubical grid, each scaled and rotated pseudo-randomly, mirroring
// the original demo's randomly transformed teapot field (example/main.cpp)
// without depending on an actual teapot mesh asset.
func buildCubeFieldScene(count int, kind vdlib.BoxKind) *vdlib.SceneData {
	scene := vdlib.NewSceneData(kind)

	side := int(math.Ceil(math.Cbrt(float64(count))))
	spacing := float32(3.0)

	seed := uint32(1)
	nextRand := func() float32 {
		// xorshift32: deterministic so repeated demo runs are
		// reproducible without pulling in a math/rand dependency here.
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		return float32(seed%1000) / 1000.0
	}

	placed := 0
	for x := 0; x < side && placed < count; x++ {
		for y := 0; y < side && placed < count; y++ {
			for z := 0; z < side && placed < count; z++ {
				scale := 0.5 + nextRand()
				angle := nextRand() * 2 * math.Pi

				translation := mgl32.Translate3D(
					float32(x)*spacing,
					float32(y)*spacing,
					float32(z)*spacing,
				)
				rotation := mgl32.HomogRotate3D(angle, mgl32.Vec3{0, 1, 0})
				scaling := mgl32.Scale3D(scale, scale, scale)
				transform := translation.Mul4(rotation).Mul4(scaling)

				scene.BeginGeometry()
				scene.AddVertices(unitCube)
				scene.TransformVertices(transform)
				scene.EndGeometry()

				placed++
			}
		}
	}

	return scene
}
