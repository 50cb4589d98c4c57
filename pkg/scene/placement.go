// Package scene places loaded meshes in view space: each model is scaled to a
// target size, centered in front of the camera and spun a little every frame.
package scene

import (
	"github.com/chazu/objmesh/pkg/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

// Default placement values.
const (
	DefaultFit   = 20
	DefaultDepth = -25
	DefaultSpin  = 0.01
)

// Placement controls where a model ends up in view space.
type Placement struct {
	Fit    float32    `json:"fit"`   // length of the fitted bounding box diagonal
	Depth  float32    `json:"depth"` // z of the fitted center
	Offset mgl32.Vec3 `json:"offset"`
	Spin   float32    `json:"spin"` // radians about +Y per Step
}

// DefaultPlacement returns the placement used when a script gives none.
func DefaultPlacement() Placement {
	return Placement{Fit: DefaultFit, Depth: DefaultDepth, Spin: DefaultSpin}
}

// FitScale returns the uniform scale that makes the bounding box diagonal of
// m equal to fit. Degenerate boxes are not scaled.
func FitScale(m *mesh.Mesh, fit float32) float32 {
	diag := m.Extent().Len()
	if diag == 0 || fit <= 0 {
		return 1
	}
	return fit / diag
}

// FitTransform returns the model matrix that scales m to p.Fit and moves its
// bounding box center to (0, 0, p.Depth) + p.Offset.
func FitTransform(m *mesh.Mesh, p Placement) mgl32.Mat4 {
	scale := FitScale(m, p.Fit)
	center := m.Center().Mul(scale)

	translate := mgl32.Translate3D(
		p.Offset.X()-center.X(),
		p.Offset.Y()-center.Y(),
		p.Offset.Z()+p.Depth-center.Z(),
	)
	return translate.Mul4(mgl32.Scale3D(scale, scale, scale))
}
