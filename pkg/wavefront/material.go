package wavefront

import (
	"io"

	"github.com/chazu/objmesh/pkg/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMaterialName is the key of the material used before any usemtl.
const DefaultMaterialName = ""

// Materials maps material names to their definitions.
type Materials map[string]mesh.Material

// DefaultMaterials returns a table holding only the white default material.
func DefaultMaterials() Materials {
	return Materials{
		DefaultMaterialName: {Name: DefaultMaterialName, Color: mgl32.Vec3{1, 1, 1}},
	}
}

// ParseMaterials reads an MTL file. The returned table always contains the
// default material. newmtl starts a black material; Kd sets the diffuse color
// of the most recent newmtl and is ignored before the first one.
func ParseMaterials(r io.Reader) (Materials, error) {
	return parseMaterials(r, "")
}

func parseMaterials(r io.Reader, file string) (Materials, error) {
	materials := DefaultMaterials()
	current := ""
	haveCurrent := false

	err := scanLines(r, file, func(line int, tokens []string) error {
		switch classify(tokens[0]) {
		case dirNewMaterial:
			if len(tokens) < 2 {
				return nil
			}
			current = tokens[1]
			haveCurrent = true
			materials[current] = mesh.Material{Name: current}

		case dirDiffuse:
			if !haveCurrent {
				return nil
			}
			color, err := parseVec3(tokens)
			if err != nil {
				return &ParseError{File: file, Line: line, Directive: tokens[0], Err: err}
			}
			m := materials[current]
			m.Color = color
			materials[current] = m
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return materials, nil
}
