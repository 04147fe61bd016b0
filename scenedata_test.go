package vdlib

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSceneDataEndGeometryFitsOnlyCurrentSlice(t *testing.T) {
	scene := NewSceneData(AABB)

	scene.BeginGeometry()
	scene.AddVertices(cubeVertices())
	id0 := scene.EndGeometry()

	scene.BeginGeometry()
	scene.AddVertices([]float32{10, 10, 10, 12, 12, 12})
	id1 := scene.EndGeometry()

	if id0 != 0 || id1 != 1 {
		t.Fatalf("ids = %d,%d, want 0,1", id0, id1)
	}

	raw := scene.EndScene()
	if len(raw.geometries) != 2 {
		t.Fatalf("geometries = %d, want 2", len(raw.geometries))
	}

	box0 := raw.geometries[0].geometry.Box
	if box0.Center != (mgl32.Vec3{0, 0, 0}) {
		t.Fatalf("geometry 0 box center = %v, want (0,0,0) (unaffected by geometry 1's vertices)", box0.Center)
	}

	box1 := raw.geometries[1].geometry.Box
	want := mgl32.Vec3{11, 11, 11}
	if box1.Center != want {
		t.Fatalf("geometry 1 box center = %v, want %v", box1.Center, want)
	}
}

func TestSceneDataTransformVertices(t *testing.T) {
	scene := NewSceneData(AABB)
	scene.BeginGeometry()
	scene.AddVertices([]float32{0, 0, 0})
	scene.TransformVertices(mgl32.Translate3D(5, 0, 0))
	got := scene.GetCurrentVertices()

	want := []float32{5, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("vertex = %v, want %v", got, want)
		}
	}
}

func TestSceneDataTransformVerticesIdentityNoop(t *testing.T) {
	scene := NewSceneData(AABB)
	scene.BeginGeometry()
	scene.AddVertices([]float32{1, 2, 3})
	scene.TransformVertices(mgl32.Ident4())
	got := scene.GetCurrentVertices()

	want := []float32{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("vertex = %v, want %v", got, want)
		}
	}
}
