package scene

import (
	"github.com/chazu/objmesh/pkg/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms is the per-draw constant block a vertex shader consumes.
type Uniforms struct {
	ModelView  mgl32.Mat4
	Projection mgl32.Mat4
}

// Model is a mesh with its current model matrix.
type Model struct {
	Name      string
	Mesh      *mesh.Mesh
	Transform mgl32.Mat4
	Spin      float32
}

// NewModel fits m according to p.
func NewModel(name string, m *mesh.Mesh, p Placement) *Model {
	return &Model{
		Name:      name,
		Mesh:      m,
		Transform: FitTransform(m, p),
		Spin:      p.Spin,
	}
}

// Step advances the model by one frame, rotating it about its own Y axis.
func (m *Model) Step() {
	if m.Spin == 0 {
		return
	}
	m.Transform = m.Transform.Mul4(mgl32.HomogRotate3DY(m.Spin))
}

// ModelView returns view * transform.
func (m *Model) ModelView(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mul4(m.Transform)
}

// Uniforms returns the constant block for drawing m with the given camera.
func (m *Model) Uniforms(view, projection mgl32.Mat4) Uniforms {
	return Uniforms{ModelView: m.ModelView(view), Projection: projection}
}
