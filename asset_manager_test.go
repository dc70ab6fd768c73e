package swrast

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/nilsen/swrast/internal/rlog"
	"github.com/nilsen/swrast/shapes"
)

func TestAssetManager_InsertMeshRoundTrip(t *testing.T) {
	a := newAssetManager(rlog.NewNop())

	id := a.InsertMesh(shapes.UnitCubeMesh())

	got, ok := a.Meshes.Get(id)
	if !ok {
		t.Fatalf("expected mesh to round-trip through the store")
	}
	if got.Name() != "Cube" {
		t.Fatalf("expected mesh name %q, got %q", "Cube", got.Name())
	}
	if !a.Meshes.ContainsName("Cube") {
		t.Fatalf("expected ContainsName to find the inserted mesh by name")
	}
}

func TestAssetManager_SpawnMeshInstanceUnknownIDFails(t *testing.T) {
	a := newAssetManager(rlog.NewNop())

	var unknown MeshID
	if _, err := a.SpawnMeshInstance(unknown, mgl32.Ident4()); err == nil {
		t.Fatalf("expected an error spawning an instance of an unregistered mesh id")
	}
}

func TestAssetManager_SpawnMeshInstanceTracksLiveInstances(t *testing.T) {
	a := newAssetManager(rlog.NewNop())

	id := a.InsertMesh(shapes.UnitQuadMesh())
	if _, err := a.SpawnMeshInstance(id, mgl32.Ident4()); err != nil {
		t.Fatalf("SpawnMeshInstance: %v", err)
	}
	if _, err := a.SpawnMeshInstance(id, mgl32.Translate3D(1, 0, 0)); err != nil {
		t.Fatalf("SpawnMeshInstance: %v", err)
	}

	mesh, _ := a.Meshes.Get(id)
	if got := mesh.InstanceCount(); got != 2 {
		t.Fatalf("expected 2 live instances, got %d", got)
	}
}

func TestAssetManager_ModelFromOBJPathUntextured(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "triangle.obj")

	const source = `o Triangle
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
f 1/1 2/2 3/3
`
	if err := os.WriteFile(objPath, []byte(source), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	a := newAssetManager(rlog.NewNop())

	modelID, err := a.ModelFromOBJPath(objPath, true, false, false)
	if err != nil {
		t.Fatalf("ModelFromOBJPath: %v", err)
	}

	mdl, ok := a.Models.Get(modelID)
	if !ok {
		t.Fatalf("expected model to round-trip through the store")
	}
	if len(mdl.MeshIDs) != 1 {
		t.Fatalf("expected 1 mesh in model, got %d", len(mdl.MeshIDs))
	}

	mesh, ok := a.Meshes.Get(mdl.MeshIDs[0])
	if !ok {
		t.Fatalf("expected the model's mesh id to resolve")
	}
	if mesh.TextureID != nil {
		t.Fatalf("expected an untextured mesh, got a texture id")
	}
	if len(mesh.Vertices) != 3 || len(mesh.Indices) != 3 {
		t.Fatalf("expected a single triangle, got %d vertices / %d indices", len(mesh.Vertices), len(mesh.Indices))
	}

	if _, err := a.SpawnModelInstance(modelID, mgl32.Ident4()); err != nil {
		t.Fatalf("SpawnModelInstance: %v", err)
	}
	if got := mesh.InstanceCount(); got != 1 {
		t.Fatalf("expected SpawnModelInstance to spawn its mesh instance, got %d live instances", got)
	}
}

func TestAssetManager_ModelFromOBJPathSecondLoadSkipsExistingMeshNames(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "triangle.obj")

	const source = `o Triangle
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	if err := os.WriteFile(objPath, []byte(source), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	a := newAssetManager(rlog.NewNop())

	if _, err := a.ModelFromOBJPath(objPath, true, false, false); err != nil {
		t.Fatalf("first ModelFromOBJPath: %v", err)
	}
	meshCountAfterFirst := a.Meshes.Len()

	if _, err := a.ModelFromOBJPath(objPath, true, false, false); err != nil {
		t.Fatalf("second ModelFromOBJPath: %v", err)
	}

	if got := a.Meshes.Len(); got != meshCountAfterFirst {
		t.Fatalf("expected a second load of the same names to add no meshes, had %d now have %d", meshCountAfterFirst, got)
	}
}
