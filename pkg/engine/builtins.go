package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/objmesh/pkg/scene"
	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/go-gl/mathgl/mgl32"
)

// sexpVec3 carries a vector between builtins.
type sexpVec3 struct {
	vec mgl32.Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X(), v.vec.Y(), v.vec.Z())
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpModel is the value of a (model ...) form.
type sexpModel struct {
	name string
}

func (m *sexpModel) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(model %q)", m.name)
}
func (m *sexpModel) Type() *zygo.RegisteredType { return nil }

// isKW reports whether s is a preprocessed keyword and returns its name.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// kwArgs splits an argument list into keyword and positional arguments.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

func toFloat32(s zygo.Sexp) (float32, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float32(v.Val), nil
	case *zygo.SexpFloat:
		return float32(v.Val), nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString accepts either :name or "name".
func toKeywordString(s zygo.Sexp) (string, error) {
	if name, ok := isKW(s); ok {
		return name, nil
	}
	return toString(s)
}

func toVec3(s zygo.Sexp) (mgl32.Vec3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return mgl32.Vec3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

func toBoundsMode(s zygo.Sexp) (scene.BoundsMode, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return "", err
	}
	switch mode := scene.BoundsMode(name); mode {
	case scene.BoundsZero, scene.BoundsFirst:
		return mode, nil
	}
	return "", fmt.Errorf("invalid bounds mode %q, expected zero or first", name)
}

// registerBuiltins installs the scene script builtins. Each (model ...) form
// appends to desc. Source must go through preprocessSource first.
func registerBuiltins(env *zygo.Zlisp, desc *scene.Description) {
	seen := make(map[string]bool)

	// (vec3 x y z)
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		var v mgl32.Vec3
		for i, arg := range args {
			f, err := toFloat32(arg)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vec3: component %d: %w", i, err)
			}
			v[i] = f
		}
		return &sexpVec3{vec: v}, nil
	})

	// (model "teapot" :obj "teapot.obj" :mtl "teapot.mtl"
	//        :fit 20 :depth -25 :spin 0.01 :offset (vec3 0 0 0) :bounds :zero)
	env.AddFunction("model", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("model requires exactly one name argument")
		}
		modelName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("model: name: %w", err)
		}
		if modelName == "" {
			return zygo.SexpNull, fmt.Errorf("model: name must not be empty")
		}
		if seen[modelName] {
			return zygo.SexpNull, fmt.Errorf("model: duplicate model name %q", modelName)
		}

		spec := scene.ModelSpec{
			Name:      modelName,
			Bounds:    scene.BoundsZero,
			Placement: scene.DefaultPlacement(),
		}

		v, ok := pa.kw["obj"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("model %q: :obj is required", modelName)
		}
		if spec.OBJ, err = toString(v); err != nil {
			return zygo.SexpNull, fmt.Errorf("model %q: obj: %w", modelName, err)
		}
		if v, ok := pa.kw["mtl"]; ok {
			if spec.MTL, err = toString(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("model %q: mtl: %w", modelName, err)
			}
		}
		if v, ok := pa.kw["fit"]; ok {
			f, err := toFloat32(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("model %q: fit: %w", modelName, err)
			}
			if f <= 0 {
				return zygo.SexpNull, fmt.Errorf("model %q: fit must be positive, got %g", modelName, f)
			}
			spec.Placement.Fit = f
		}
		if v, ok := pa.kw["depth"]; ok {
			if spec.Placement.Depth, err = toFloat32(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("model %q: depth: %w", modelName, err)
			}
		}
		if v, ok := pa.kw["spin"]; ok {
			if spec.Placement.Spin, err = toFloat32(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("model %q: spin: %w", modelName, err)
			}
		}
		if v, ok := pa.kw["offset"]; ok {
			if spec.Placement.Offset, err = toVec3(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("model %q: offset: %w", modelName, err)
			}
		}
		if v, ok := pa.kw["bounds"]; ok {
			if spec.Bounds, err = toBoundsMode(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("model %q: bounds: %w", modelName, err)
			}
		}

		seen[modelName] = true
		desc.Models = append(desc.Models, spec)
		return &sexpModel{name: modelName}, nil
	})
}
