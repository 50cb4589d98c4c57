package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazu/objmesh/pkg/export"
)

func TestRunSingleModel(t *testing.T) {
	dir := t.TempDir()
	stl := filepath.Join(dir, "cube.stl")
	glb := filepath.Join(dir, "cube.glb")

	var out bytes.Buffer
	args := []string{
		"-obj", "examples/cube.obj", "-mtl", "examples/cube.mtl",
		"-stl", stl, "-glb", glb, "-json", "-fit", "10",
	}
	if err := run(args, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for _, path := range []string{stl, glb} {
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", path, err)
		}
	}

	var data []export.MeshData
	if err := json.Unmarshal(out.Bytes(), &data); err != nil {
		t.Fatalf("stdout is not mesh JSON: %v", err)
	}
	if len(data) != 1 || data[0].Name != "cube" {
		t.Fatalf("unexpected JSON output: %+v", data)
	}
}

func TestRunScript(t *testing.T) {
	glb := filepath.Join(t.TempDir(), "scene.glb")
	if err := run([]string{"-script", "examples/scene.lisp", "-glb", glb}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := os.Stat(glb); err != nil {
		t.Errorf("glb not written: %v", err)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"no input", nil, "exactly one of"},
		{"both inputs", []string{"-obj", "a.obj", "-script", "s.lisp"}, "exactly one of"},
		{"mtl with script", []string{"-script", "examples/scene.lisp", "-mtl", "x.mtl"}, "apply to -obj only"},
		{"missing obj", []string{"-obj", "examples/missing.obj"}, "no such file"},
		{"missing script", []string{"-script", "examples/missing.lisp"}, "read script"},
		{"unknown material", []string{"-obj", "examples/cube.obj"}, "unknown material"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, &bytes.Buffer{})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want containing %q", err, tt.wantMsg)
			}
		})
	}
}

func TestSingleModelName(t *testing.T) {
	desc := singleModel(config{obj: "models/teapot.obj", firstBounds: true})
	if len(desc.Models) != 1 {
		t.Fatalf("got %d models, want 1", len(desc.Models))
	}
	m := desc.Models[0]
	if m.Name != "teapot" {
		t.Errorf("Name = %q, want teapot", m.Name)
	}
	if m.Bounds != "first" {
		t.Errorf("Bounds = %q, want first", m.Bounds)
	}
}
