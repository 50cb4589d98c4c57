package scene

import (
	"fmt"
	"path/filepath"

	"github.com/chazu/objmesh/pkg/wavefront"
)

// BoundsMode selects how a model's bounding box is seeded.
type BoundsMode string

const (
	BoundsZero  BoundsMode = "zero"  // seeded at the origin
	BoundsFirst BoundsMode = "first" // seeded at the first position
)

// ModelSpec describes one model to load.
type ModelSpec struct {
	Name      string     `json:"name"`
	OBJ       string     `json:"obj"`
	MTL       string     `json:"mtl,omitempty"`
	Bounds    BoundsMode `json:"bounds"`
	Placement Placement  `json:"placement"`
}

// Description is the declarative form of a scene, as produced by a script.
type Description struct {
	Models []ModelSpec `json:"models"`
}

// Scene holds loaded models in declaration order.
type Scene struct {
	Models []*Model
}

// Load reads every model of desc. Relative paths resolve against baseDir.
// The first failure aborts the load.
func Load(desc *Description, baseDir string) (*Scene, error) {
	s := &Scene{}
	if desc == nil {
		return s, nil
	}
	for _, spec := range desc.Models {
		m, err := loadModel(spec, baseDir)
		if err != nil {
			return nil, fmt.Errorf("scene: model %q: %w", spec.Name, err)
		}
		s.Models = append(s.Models, m)
	}
	return s, nil
}

func loadModel(spec ModelSpec, baseDir string) (*Model, error) {
	var opts []wavefront.Option
	if spec.Bounds == BoundsFirst {
		opts = append(opts, wavefront.WithBoundsFromFirstVertex())
	}

	mtl := ""
	if spec.MTL != "" {
		mtl = resolve(baseDir, spec.MTL)
	}
	m, err := wavefront.LoadFiles(resolve(baseDir, spec.OBJ), mtl, opts...)
	if err != nil {
		return nil, err
	}
	return NewModel(spec.Name, m, spec.Placement), nil
}

func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}

// Step advances every model by one frame.
func (s *Scene) Step() {
	for _, m := range s.Models {
		m.Step()
	}
}

// Model returns the model with the given name, or nil.
func (s *Scene) Model(name string) *Model {
	for _, m := range s.Models {
		if m.Name == name {
			return m
		}
	}
	return nil
}
