package scene

import (
	"errors"
	"io/fs"
	"math"
	"testing"

	"github.com/chazu/objmesh/pkg/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func boxMesh(min, max mgl32.Vec3) *mesh.Mesh {
	return &mesh.Mesh{MinBound: min, MaxBound: max}
}

// vecNear compares component-wise by absolute difference; float32 rotations
// leave residues like -4.37e-8 where 0 is expected.
func vecNear(a, b mgl32.Vec3) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}

func TestVecNear(t *testing.T) {
	tests := []struct {
		name string
		a, b mgl32.Vec3
		want bool
	}{
		{"residue against zero", mgl32.Vec3{-4.371139e-08, 0, -1}, mgl32.Vec3{0, 0, -1}, true},
		{"equal", mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3}, true},
		{"off by more than eps", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1e-3, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vecNear(tt.a, tt.b); got != tt.want {
				t.Errorf("vecNear(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFitScale(t *testing.T) {
	tests := []struct {
		name string
		mesh *mesh.Mesh
		fit  float32
		want float32
	}{
		{"diagonal 2", boxMesh(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 2}), 20, 10},
		{"unit cube", boxMesh(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}), float32(2 * math.Sqrt(3)), 1},
		{"degenerate box", boxMesh(mgl32.Vec3{}, mgl32.Vec3{}), 20, 1},
		{"non-positive fit", boxMesh(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}), 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitScale(tt.mesh, tt.fit)
			if math.Abs(float64(got-tt.want)) > eps {
				t.Errorf("FitScale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFitTransformCentersModel(t *testing.T) {
	m := boxMesh(mgl32.Vec3{2, 4, 6}, mgl32.Vec3{4, 8, 10})
	p := DefaultPlacement()
	tr := FitTransform(m, p)

	center := mgl32.TransformCoordinate(m.Center(), tr)
	if !vecNear(center, mgl32.Vec3{0, 0, DefaultDepth}) {
		t.Errorf("fitted center = %v, want (0, 0, %v)", center, DefaultDepth)
	}

	lo := mgl32.TransformCoordinate(m.MinBound, tr)
	hi := mgl32.TransformCoordinate(m.MaxBound, tr)
	if diag := hi.Sub(lo).Len(); math.Abs(float64(diag-DefaultFit)) > eps {
		t.Errorf("fitted diagonal = %v, want %v", diag, DefaultFit)
	}
}

func TestFitTransformOffset(t *testing.T) {
	m := boxMesh(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})
	p := DefaultPlacement()
	p.Offset = mgl32.Vec3{5, -3, 1}

	center := mgl32.TransformCoordinate(m.Center(), FitTransform(m, p))
	want := mgl32.Vec3{5, -3, DefaultDepth + 1}
	if !vecNear(center, want) {
		t.Errorf("fitted center = %v, want %v", center, want)
	}
}

func TestModelStep(t *testing.T) {
	m := boxMesh(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})
	p := Placement{Fit: 0, Depth: 0, Spin: float32(math.Pi / 2)}
	model := NewModel("cube", m, p)

	// Fit 0 and depth 0 leave the identity, so one step is a quarter turn.
	model.Step()
	got := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, model.Transform)
	if !vecNear(got, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("after one step (1,0,0) -> %v, want (0,0,-1)", got)
	}

	still := NewModel("still", m, Placement{})
	before := still.Transform
	still.Step()
	if still.Transform != before {
		t.Error("Step() with zero spin changed the transform")
	}
}

func TestModelUniforms(t *testing.T) {
	m := boxMesh(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})
	model := NewModel("cube", m, DefaultPlacement())

	view := mgl32.Translate3D(0, 0, -5)
	proj := mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100)
	u := model.Uniforms(view, proj)

	if u.Projection != proj {
		t.Error("Uniforms().Projection differs from the input")
	}
	center := mgl32.TransformCoordinate(mgl32.Vec3{}, u.ModelView)
	if !vecNear(center, mgl32.Vec3{0, 0, DefaultDepth - 5}) {
		t.Errorf("model-view center = %v, want (0, 0, %v)", center, DefaultDepth-5)
	}
}

func TestLoad(t *testing.T) {
	desc := &Description{Models: []ModelSpec{
		{Name: "cube", OBJ: "cube.obj", MTL: "cube.mtl", Placement: DefaultPlacement()},
		{Name: "seeded", OBJ: "cube.obj", MTL: "cube.mtl", Bounds: BoundsFirst, Placement: DefaultPlacement()},
	}}
	s, err := Load(desc, "../wavefront/testdata")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(s.Models) != 2 {
		t.Fatalf("got %d models, want 2", len(s.Models))
	}

	cube := s.Model("cube")
	if cube == nil {
		t.Fatal("Model(\"cube\") = nil")
	}
	if cube.Mesh.VertexCount() != 24 {
		t.Errorf("cube VertexCount() = %d, want 24", cube.Mesh.VertexCount())
	}
	if s.Model("missing") != nil {
		t.Error("Model(\"missing\") should be nil")
	}

	seeded := s.Model("seeded")
	if seeded == nil {
		t.Fatal("Model(\"seeded\") = nil")
	}
	if seeded.Mesh.MinBound != (mgl32.Vec3{-1, -1, -1}) {
		t.Errorf("seeded MinBound = %v, want (-1,-1,-1)", seeded.Mesh.MinBound)
	}
}

func TestLoadFailureIsAllOrNothing(t *testing.T) {
	desc := &Description{Models: []ModelSpec{
		{Name: "cube", OBJ: "cube.obj", MTL: "cube.mtl"},
		{Name: "ghost", OBJ: "ghost.obj"},
	}}
	s, err := Load(desc, "../wavefront/testdata")
	if err == nil {
		t.Fatal("expected error for missing model file")
	}
	if s != nil {
		t.Error("expected nil scene on error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadNilDescription(t *testing.T) {
	s, err := Load(nil, "")
	if err != nil {
		t.Fatalf("Load(nil) error = %v", err)
	}
	if len(s.Models) != 0 {
		t.Errorf("got %d models, want 0", len(s.Models))
	}
}

func TestSceneStep(t *testing.T) {
	m := boxMesh(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})
	s := &Scene{Models: []*Model{
		NewModel("a", m, DefaultPlacement()),
		NewModel("b", m, Placement{Fit: DefaultFit, Depth: DefaultDepth}),
	}}
	a0, b0 := s.Models[0].Transform, s.Models[1].Transform
	s.Step()
	if s.Models[0].Transform == a0 {
		t.Error("spinning model did not move")
	}
	if s.Models[1].Transform != b0 {
		t.Error("non-spinning model moved")
	}
}
