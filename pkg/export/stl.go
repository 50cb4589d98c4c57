package export

import (
	"fmt"

	"github.com/chazu/objmesh/pkg/mesh"
	"github.com/deadsy/sdfx/render"
)

// WriteSTL writes m as a binary STL file. STL has no color, so materials are
// lost.
func WriteSTL(path string, m *mesh.Mesh) error {
	if m.TriangleCount() == 0 {
		return fmt.Errorf("export: stl: mesh has no triangles")
	}
	if err := render.SaveSTL(path, m.Triangles()); err != nil {
		return fmt.Errorf("export: stl: %w", err)
	}
	return nil
}
