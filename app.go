package main

import (
	"log"

	"github.com/chazu/objmesh/pkg/engine"
	"github.com/chazu/objmesh/pkg/export"
	"github.com/chazu/objmesh/pkg/scene"
)

// App turns scene scripts into loaded, placed models. Model paths in a
// script resolve against baseDir.
type App struct {
	engine  *engine.Engine
	baseDir string
}

// EvalErrorData is a JSON-serializable eval error for the frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result returned to the frontend.
type EvalResult struct {
	Meshes []export.MeshData `json:"meshes"`
	Errors []EvalErrorData   `json:"errors"`
}

// NewApp creates a new App resolving model files against baseDir.
func NewApp(baseDir string) *App {
	return &App{
		engine:  engine.NewEngine(),
		baseDir: baseDir,
	}
}

// Scene evaluates source and loads every model it declares.
func (a *App) Scene(source string) (*scene.Scene, []EvalErrorData) {
	// Step 1: Evaluate the script into a scene description.
	desc, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		log.Printf("Evaluate fatal error: %v", err)
		return nil, []EvalErrorData{{Message: err.Error()}}
	}
	if len(evalErrs) > 0 {
		out := make([]EvalErrorData, 0, len(evalErrs))
		for _, e := range evalErrs {
			out = append(out, EvalErrorData{Line: e.Line, Col: e.Col, Message: e.Message})
		}
		return nil, out
	}

	// Step 2: Load and place the models.
	return a.Load(desc)
}

// Load reads the models of an already built description.
func (a *App) Load(desc *scene.Description) (*scene.Scene, []EvalErrorData) {
	s, err := scene.Load(desc, a.baseDir)
	if err != nil {
		log.Printf("Load error: %v", err)
		return nil, []EvalErrorData{{Message: "load failed: " + err.Error()}}
	}
	for _, m := range s.Models {
		log.Printf("model %s: %d vertices, %d triangles, bounds %v..%v",
			m.Name, m.Mesh.VertexCount(), m.Mesh.TriangleCount(), m.Mesh.MinBound, m.Mesh.MaxBound)
	}
	return s, nil
}

// Evaluate takes script source and returns mesh data + errors.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes: []export.MeshData{},
		Errors: []EvalErrorData{},
	}

	s, errs := a.Scene(source)
	if len(errs) > 0 {
		result.Errors = append(result.Errors, errs...)
		return result
	}
	for _, m := range s.Models {
		result.Meshes = append(result.Meshes, export.NewMeshData(m))
	}
	return result
}
