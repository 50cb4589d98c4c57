// Command objmesh loads Wavefront OBJ/MTL models, either one model given on
// the command line or a scene script, and exports them.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/chazu/objmesh/pkg/export"
	"github.com/chazu/objmesh/pkg/scene"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type config struct {
	script      string
	obj         string
	mtl         string
	stl         string
	glb         string
	json        bool
	firstBounds bool
	placement   scene.Placement
}

func parseFlags(args []string) (config, error) {
	var cfg config
	defaults := scene.DefaultPlacement()

	fs := flag.NewFlagSet("objmesh", flag.ContinueOnError)
	fs.StringVar(&cfg.script, "script", "", "scene script declaring (model ...) forms")
	fs.StringVar(&cfg.obj, "obj", "", "OBJ geometry file")
	fs.StringVar(&cfg.mtl, "mtl", "", "MTL material file")
	fs.StringVar(&cfg.stl, "stl", "", "write the first model as binary STL")
	fs.StringVar(&cfg.glb, "glb", "", "write all models as binary glTF")
	fs.BoolVar(&cfg.json, "json", false, "print mesh data as JSON to stdout")
	fs.BoolVar(&cfg.firstBounds, "first-bounds", false, "seed bounds from the first vertex instead of the origin")
	fit := fs.Float64("fit", float64(defaults.Fit), "fitted bounding box diagonal")
	depth := fs.Float64("depth", float64(defaults.Depth), "z of the fitted center")
	spin := fs.Float64("spin", float64(defaults.Spin), "radians about +Y per frame")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if (cfg.script == "") == (cfg.obj == "") {
		return cfg, fmt.Errorf("exactly one of -script or -obj is required")
	}
	if cfg.script != "" && (cfg.mtl != "" || cfg.firstBounds) {
		return cfg, fmt.Errorf("-mtl and -first-bounds apply to -obj only")
	}
	cfg.placement = scene.Placement{Fit: float32(*fit), Depth: float32(*depth), Spin: float32(*spin)}
	return cfg, nil
}

func run(args []string, stdout io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	var (
		s    *scene.Scene
		errs []EvalErrorData
	)
	if cfg.script != "" {
		source, err := os.ReadFile(cfg.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		s, errs = NewApp(filepath.Dir(cfg.script)).Scene(string(source))
	} else {
		s, errs = NewApp("").Load(singleModel(cfg))
	}
	if len(errs) > 0 {
		for _, e := range errs[1:] {
			log.Printf("line %d: %s", e.Line, e.Message)
		}
		e := errs[0]
		if e.Line > 0 {
			return fmt.Errorf("line %d: %s", e.Line, e.Message)
		}
		return fmt.Errorf("%s", e.Message)
	}

	return writeOutputs(cfg, s, stdout)
}

// singleModel describes the model named by -obj/-mtl.
func singleModel(cfg config) *scene.Description {
	bounds := scene.BoundsZero
	if cfg.firstBounds {
		bounds = scene.BoundsFirst
	}
	name := filepath.Base(cfg.obj)
	name = name[:len(name)-len(filepath.Ext(name))]
	return &scene.Description{Models: []scene.ModelSpec{{
		Name:      name,
		OBJ:       cfg.obj,
		MTL:       cfg.mtl,
		Bounds:    bounds,
		Placement: cfg.placement,
	}}}
}

func writeOutputs(cfg config, s *scene.Scene, stdout io.Writer) error {
	if len(s.Models) == 0 {
		log.Printf("scene declares no models")
		return nil
	}
	if cfg.stl != "" {
		if err := export.WriteSTL(cfg.stl, s.Models[0].Mesh); err != nil {
			return err
		}
		log.Printf("wrote %s", cfg.stl)
	}
	if cfg.glb != "" {
		if err := export.WriteGLB(cfg.glb, s.Models...); err != nil {
			return err
		}
		log.Printf("wrote %s", cfg.glb)
	}
	if cfg.json {
		return export.WriteJSON(stdout, s.Models...)
	}
	return nil
}
