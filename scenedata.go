package vdlib

import "github.com/go-gl/mathgl/mgl32"

// SceneData assembles a scene's vertex data into the single contiguous
// buffer TreeBuilder expects, tracking where each geometry's vertices live
// within it. Geometries must be added one at a time: BeginGeometry,
// zero or more AddVertices/AddVerticesFloat64/TransformVertices, then
// EndGeometry.
type SceneData struct {
	boxKind BoxKind

	vertices     []float32
	geometries   []rawGeometryInfo
	nextGeometry int
	currentStart int
}

// NewSceneData creates an empty scene that fits geometry boxes using kind.
func NewSceneData(kind BoxKind) *SceneData {
	return &SceneData{boxKind: kind}
}

// BeginGeometry opens a new geometry. Vertices added before the matching
// EndGeometry belong to it.
func (s *SceneData) BeginGeometry() {
	s.currentStart = len(s.vertices)
}

// AddVertices appends vertices (a flat x,y,z,... buffer) to the currently
// open geometry.
func (s *SceneData) AddVertices(vertices []float32) {
	s.vertices = append(s.vertices, vertices...)
}

// AddVerticesFloat64 appends vertices (a flat x,y,z,... buffer of
// double-precision input) to the currently open geometry, converting each
// component to float32.
func (s *SceneData) AddVerticesFloat64(vertices []float64) {
	for _, v := range vertices {
		s.vertices = append(s.vertices, float32(v))
	}
}

// GetCurrentVertices returns the vertex slice added so far for the
// currently open geometry. The slice aliases SceneData's internal buffer
// and is only valid until the next AddVertices/AddVerticesFloat64 call,
// since appends may reallocate it.
func (s *SceneData) GetCurrentVertices() []float32 {
	return s.vertices[s.currentStart:]
}

// TransformVertices applies m to every vertex added so far for the
// currently open geometry. It is a no-op for the identity transform.
func (s *SceneData) TransformVertices(m mgl32.Mat4) {
	if m == mgl32.Ident4() {
		return
	}
	cur := s.vertices[s.currentStart:]
	for i := 0; i+2 < len(cur); i += 3 {
		p := m.Mul4x1(mgl32.Vec4{cur[i], cur[i+1], cur[i+2], 1})
		cur[i], cur[i+1], cur[i+2] = p[0], p[1], p[2]
	}
}

// EndGeometry closes the currently open geometry, fitting its box from
// only the vertices added since BeginGeometry, and returns its assigned
// Geometry id.
func (s *SceneData) EndGeometry() int {
	cur := s.vertices[s.currentStart:]
	id := s.nextGeometry
	s.nextGeometry++

	s.geometries = append(s.geometries, rawGeometryInfo{
		verticesStart: s.currentStart,
		verticesSize:  len(cur),
		geometry: Geometry{
			ID:  id,
			Box: FitBox(cur, s.boxKind),
		},
	})
	return id
}

// EndScene finalizes the scene and returns the root construction node
// TreeBuilder consumes. SceneData must not be reused afterwards.
func (s *SceneData) EndScene() *rawNode {
	vertices := make([]float32, len(s.vertices))
	copy(vertices, s.vertices)

	geometries := make([]rawGeometryInfo, len(s.geometries))
	copy(geometries, s.geometries)

	return &rawNode{
		vertices:   vertices,
		geometries: geometries,
	}
}
