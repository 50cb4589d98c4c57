package wavefront

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chazu/objmesh/pkg/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

// vertexKey identifies an output vertex within one material scope.
type vertexKey struct {
	position int
	normal   int
}

// geometryBuilder holds the state of a single ParseGeometry call.
type geometryBuilder struct {
	opts      options
	materials Materials

	positions []mgl32.Vec3
	normals   []mgl32.Vec3

	current string
	dedup   map[string]map[vertexKey]uint16

	out mesh.Mesh
}

func newGeometryBuilder(materials Materials, opts options) *geometryBuilder {
	if _, ok := materials[DefaultMaterialName]; !ok {
		withDefault := DefaultMaterials()
		for name, m := range materials {
			withDefault[name] = m
		}
		materials = withDefault
	}
	return &geometryBuilder{
		opts:      opts,
		materials: materials,
		current:   DefaultMaterialName,
		dedup: map[string]map[vertexKey]uint16{
			DefaultMaterialName: {},
		},
	}
}

// ParseGeometry reads an OBJ file and builds a mesh colored by materials.
// A nil table behaves like DefaultMaterials. On error no mesh is returned.
func ParseGeometry(r io.Reader, materials Materials, opts ...Option) (*mesh.Mesh, error) {
	return parseGeometry(r, "", materials, buildOptions(opts))
}

func parseGeometry(r io.Reader, file string, materials Materials, opts options) (*mesh.Mesh, error) {
	b := newGeometryBuilder(materials, opts)
	err := scanLines(r, file, func(line int, tokens []string) error {
		if err := b.handle(tokens); err != nil {
			return &ParseError{File: file, Line: line, Directive: tokens[0], Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	m := b.out
	return &m, nil
}

func (b *geometryBuilder) handle(tokens []string) error {
	switch classify(tokens[0]) {
	case dirPosition:
		p, err := parseVec3(tokens)
		if err != nil {
			return err
		}
		b.addPosition(p)

	case dirNormal:
		n, err := parseVec3(tokens)
		if err != nil {
			return err
		}
		b.normals = append(b.normals, n)

	case dirFace:
		return b.addFace(tokens[1:])

	case dirUseMaterial:
		if len(tokens) < 2 {
			return fmt.Errorf("%w: material name", ErrMissingField)
		}
		name := tokens[len(tokens)-1]
		if _, ok := b.materials[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
		}
		b.current = name
		b.dedup[name] = map[vertexKey]uint16{}
	}
	return nil
}

func (b *geometryBuilder) addPosition(p mgl32.Vec3) {
	if len(b.positions) == 0 && b.opts.boundsFromFirst {
		b.out.MinBound = p
		b.out.MaxBound = p
	}
	for i := 0; i < 3; i++ {
		if p[i] < b.out.MinBound[i] {
			b.out.MinBound[i] = p[i]
		}
		if p[i] > b.out.MaxBound[i] {
			b.out.MaxBound[i] = p[i]
		}
	}
	b.positions = append(b.positions, p)
}

// addFace resolves every reference of a face and appends its triangles.
// Triangles are kept as-is and quads are split along the 0-2 diagonal.
// Other vertex counts contribute no indices.
func (b *geometryBuilder) addFace(refs []string) error {
	face := make([]uint16, 0, len(refs))
	for _, ref := range refs {
		key, err := b.parseRef(ref)
		if err != nil {
			return err
		}
		idx, err := b.resolve(key)
		if err != nil {
			return err
		}
		face = append(face, idx)
	}

	switch len(face) {
	case 3:
		b.out.Indices = append(b.out.Indices, face...)
	case 4:
		b.out.Indices = append(b.out.Indices,
			face[0], face[1], face[2],
			face[0], face[2], face[3],
		)
	}
	return nil
}

// parseRef reads a slash-delimited face reference. The first field is the
// position index and the last field the normal index, both 1-based.
func (b *geometryBuilder) parseRef(ref string) (vertexKey, error) {
	fields := strings.Split(ref, "/")
	pos, err := strconv.Atoi(fields[0])
	if err != nil {
		return vertexKey{}, fmt.Errorf("%w: position index %q", ErrMalformedNumber, fields[0])
	}
	last := fields[len(fields)-1]
	norm, err := strconv.Atoi(last)
	if err != nil {
		return vertexKey{}, fmt.Errorf("%w: normal index %q", ErrMalformedNumber, last)
	}

	key := vertexKey{position: pos - 1, normal: norm - 1}
	if key.position < 0 || key.position >= len(b.positions) {
		return vertexKey{}, fmt.Errorf("%w: position %d (have %d)", ErrIndexOutOfRange, pos, len(b.positions))
	}
	if key.normal < 0 || key.normal >= len(b.normals) {
		return vertexKey{}, fmt.Errorf("%w: normal %d (have %d)", ErrIndexOutOfRange, norm, len(b.normals))
	}
	return key, nil
}

// resolve returns the output index for key under the current material,
// creating the vertex on first use.
func (b *geometryBuilder) resolve(key vertexKey) (uint16, error) {
	scope := b.dedup[b.current]
	if idx, ok := scope[key]; ok {
		return idx, nil
	}
	if len(b.out.Vertices) >= b.opts.maxVertices {
		return 0, fmt.Errorf("%w: limit %d", ErrTooManyVertices, b.opts.maxVertices)
	}

	idx := uint16(len(b.out.Vertices))
	b.out.Vertices = append(b.out.Vertices, mesh.Vertex{
		Position: b.positions[key.position],
		Normal:   b.normals[key.normal],
		Color:    b.materials[b.current].Color,
	})
	scope[key] = idx
	return idx, nil
}
