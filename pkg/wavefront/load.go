package wavefront

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chazu/objmesh/pkg/mesh"
)

// Load parses a material stream and a geometry stream into a mesh. A nil
// mtl reader means the geometry uses only the default material.
func Load(obj, mtl io.Reader, opts ...Option) (*mesh.Mesh, error) {
	materials := DefaultMaterials()
	if mtl != nil {
		var err error
		materials, err = parseMaterials(mtl, "")
		if err != nil {
			return nil, err
		}
	}
	return parseGeometry(obj, "", materials, buildOptions(opts))
}

// LoadFiles reads the MTL file at mtlPath and the OBJ file at objPath and
// builds a mesh. An empty mtlPath skips the material file.
func LoadFiles(objPath, mtlPath string, opts ...Option) (*mesh.Mesh, error) {
	materials := DefaultMaterials()
	if mtlPath != "" {
		var err error
		materials, err = loadMaterialFile(mtlPath)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(objPath)
	if err != nil {
		return nil, fmt.Errorf("wavefront: open geometry: %w", err)
	}
	defer f.Close()

	return parseGeometry(f, filepath.Base(objPath), materials, buildOptions(opts))
}

func loadMaterialFile(path string) (Materials, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavefront: open materials: %w", err)
	}
	defer f.Close()

	return parseMaterials(f, filepath.Base(path))
}
