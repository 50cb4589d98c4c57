package export

import (
	"fmt"

	"github.com/chazu/objmesh/pkg/mesh"
	"github.com/chazu/objmesh/pkg/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/samber/lo"
)

// GLTF builds a document with one mesh and one node per model. Vertex colors
// go to COLOR_0 and the model transform to the node matrix.
func GLTF(models ...*scene.Model) (*gltf.Document, error) {
	doc := gltf.NewDocument()
	for _, m := range models {
		if err := addModel(doc, m); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// WriteGLB writes models to a binary glTF file.
func WriteGLB(path string, models ...*scene.Model) error {
	doc, err := GLTF(models...)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("export: glb: %w", err)
	}
	return nil
}

func addModel(doc *gltf.Document, m *scene.Model) error {
	if m.Mesh == nil || m.Mesh.TriangleCount() == 0 {
		return fmt.Errorf("export: gltf: model %q has no triangles", m.Name)
	}

	vertices := m.Mesh.Vertices
	positions := lo.Map(vertices, func(v mesh.Vertex, _ int) [3]float32 { return v.Position })
	normals := lo.Map(vertices, func(v mesh.Vertex, _ int) [3]float32 { return v.Normal })
	colors := lo.Map(vertices, func(v mesh.Vertex, _ int) [3]float32 { return v.Color })

	prim := &gltf.Primitive{
		Indices: gltf.Index(modeler.WriteIndices(doc, m.Mesh.Indices)),
		Attributes: map[string]int{
			gltf.POSITION: modeler.WritePosition(doc, positions),
			gltf.NORMAL:   modeler.WriteNormal(doc, normals),
			gltf.COLOR_0:  modeler.WriteColor(doc, colors),
		},
	}
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name:       m.Name,
		Primitives: []*gltf.Primitive{prim},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name:   m.Name,
		Mesh:   gltf.Index(len(doc.Meshes) - 1),
		Matrix: nodeMatrix(m.Transform),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	return nil
}

// nodeMatrix converts a column-major mgl32 matrix to glTF's column-major
// float64 layout.
func nodeMatrix(m mgl32.Mat4) [16]float64 {
	var out [16]float64
	for i, v := range m {
		out[i] = float64(v)
	}
	return out
}
