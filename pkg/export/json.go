package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/chazu/objmesh/pkg/scene"
)

// MeshData is the JSON mesh format sent to viewers: flat arrays with three
// values per vertex and 32-bit triangle indices.
type MeshData struct {
	Name      string      `json:"name"`
	Vertices  []float32   `json:"vertices"`
	Normals   []float32   `json:"normals"`
	Colors    []float32   `json:"colors"`
	Indices   []uint32    `json:"indices"`
	MinBound  [3]float32  `json:"minBound"`
	MaxBound  [3]float32  `json:"maxBound"`
	Transform [16]float32 `json:"transform"`
}

// NewMeshData flattens a model for JSON output.
func NewMeshData(m *scene.Model) MeshData {
	positions, normals, colors, indices := m.Mesh.Flat()
	return MeshData{
		Name:      m.Name,
		Vertices:  positions,
		Normals:   normals,
		Colors:    colors,
		Indices:   indices,
		MinBound:  m.Mesh.MinBound,
		MaxBound:  m.Mesh.MaxBound,
		Transform: m.Transform,
	}
}

// WriteJSON writes the models as a JSON array of MeshData.
func WriteJSON(w io.Writer, models ...*scene.Model) error {
	data := make([]MeshData, 0, len(models))
	for _, m := range models {
		data = append(data, NewMeshData(m))
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("export: json: %w", err)
	}
	return nil
}
