package mesh

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxVertices is the number of distinct vertices a 16-bit index buffer can
// address.
const MaxVertices = 1 << 16

// FloatsPerVertex is the number of float32 values in one interleaved vertex:
// position, normal, color.
const FloatsPerVertex = 9

// VertexStride is the byte size of one interleaved vertex.
const VertexStride = FloatsPerVertex * 4

// Material is a named surface color. The empty name is the default material.
type Material struct {
	Name  string     `json:"name"`
	Color mgl32.Vec3 `json:"color"`
}

// Vertex is one output vertex. Vertices are comparable values.
type Vertex struct {
	Position mgl32.Vec3 `json:"position"`
	Normal   mgl32.Vec3 `json:"normal"`
	Color    mgl32.Vec3 `json:"color"`
}

// Mesh is an indexed triangle mesh with an axis-aligned bounding box.
// Indices always come in groups of three.
type Mesh struct {
	Vertices []Vertex   `json:"vertices"`
	Indices  []uint16   `json:"indices"`
	MinBound mgl32.Vec3 `json:"minBound"`
	MaxBound mgl32.Vec3 `json:"maxBound"`
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Extent returns MaxBound - MinBound.
func (m *Mesh) Extent() mgl32.Vec3 {
	return m.MaxBound.Sub(m.MinBound)
}

// Center returns the midpoint of the bounding box.
func (m *Mesh) Center() mgl32.Vec3 {
	return m.MaxBound.Add(m.MinBound).Mul(0.5)
}

// Bounds returns the bounding box as an sdfx box.
func (m *Mesh) Bounds() sdf.Box3 {
	return sdf.Box3{Min: toV3(m.MinBound), Max: toV3(m.MaxBound)}
}

// Validate checks the structural invariants of the index buffer.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh: index count %d is not a multiple of 3", len(m.Indices))
	}
	if len(m.Vertices) > MaxVertices {
		return fmt.Errorf("mesh: %d vertices exceed the 16-bit index range", len(m.Vertices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("mesh: index %d at position %d out of range (vertices: %d)", idx, i, len(m.Vertices))
		}
	}
	return nil
}

// Interleaved returns the vertex buffer laid out for GPU upload: position,
// normal and color per vertex, FloatsPerVertex values each.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out, v.Position[:]...)
		out = append(out, v.Normal[:]...)
		out = append(out, v.Color[:]...)
	}
	return out
}

// Flat returns separate flat arrays: 3 floats per vertex for positions,
// normals and colors, and 32-bit indices.
func (m *Mesh) Flat() (positions, normals, colors []float32, indices []uint32) {
	n := len(m.Vertices)
	positions = make([]float32, 0, n*3)
	normals = make([]float32, 0, n*3)
	colors = make([]float32, 0, n*3)
	for _, v := range m.Vertices {
		positions = append(positions, v.Position[:]...)
		normals = append(normals, v.Normal[:]...)
		colors = append(colors, v.Color[:]...)
	}
	indices = make([]uint32, len(m.Indices))
	for i, idx := range m.Indices {
		indices[i] = uint32(idx)
	}
	return positions, normals, colors, indices
}

// Triangles expands the indexed mesh into a triangle soup.
func (m *Mesh) Triangles() []*sdf.Triangle3 {
	tris := make([]*sdf.Triangle3, 0, m.TriangleCount())
	for i := 0; i+2 < len(m.Indices); i += 3 {
		tri := &sdf.Triangle3{}
		for j := 0; j < 3; j++ {
			tri[j] = toV3(m.Vertices[m.Indices[i+j]].Position)
		}
		tris = append(tris, tri)
	}
	return tris
}

func toV3(v mgl32.Vec3) v3.Vec {
	return v3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}
