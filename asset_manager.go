package swrast

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/nilsen/swrast/asset"
	"github.com/nilsen/swrast/internal/rlog"
	"github.com/nilsen/swrast/model"
	"github.com/nilsen/swrast/objloader"
	"github.com/nilsen/swrast/texture"
)

// MeshID, ModelID and TextureID are the stable handles callers hold onto
// across frames.
type (
	MeshID    = asset.ID[*model.Mesh]
	ModelID   = asset.ID[*model.Model]
	TextureID = asset.ID[*texture.Texture]
)

// AssetManager owns every mesh, model and texture the renderer knows
// about, plus the instance-spawning operations that tie a mesh/model
// handle to a live, transformable placement. Ported from
// renderer/src/asset_manager.rs's AssetManager.
type AssetManager struct {
	Models   *asset.Store[*model.Model]
	Meshes   *asset.Store[*model.Mesh]
	Textures *asset.Store[*texture.Texture]

	log rlog.Logger
}

func newAssetManager(log rlog.Logger) *AssetManager {
	return &AssetManager{
		Models:   asset.NewStore[*model.Model](),
		Meshes:   asset.NewStore[*model.Mesh](),
		Textures: asset.NewStore[*texture.Texture](),
		log:      log,
	}
}

// InsertMesh stores mesh under its own name, returning its id.
func (a *AssetManager) InsertMesh(mesh *model.Mesh) MeshID { return a.Meshes.Insert(mesh) }

// InsertTexture stores tex under its own name, returning its id.
func (a *AssetManager) InsertTexture(tex *texture.Texture) TextureID { return a.Textures.Insert(tex) }

// SpawnMeshInstance places a new instance of meshID under localTransform.
func (a *AssetManager) SpawnMeshInstance(meshID MeshID, localTransform mgl32.Mat4) (uint32, error) {
	mesh, ok := a.Meshes.Get(meshID)
	if !ok {
		a.log.Warnf("spawn mesh instance: unknown mesh id %v", meshID)
		return 0, fmt.Errorf("swrast: spawn mesh instance: unknown mesh id")
	}
	return mesh.SpawnInstance(localTransform), nil
}

// SpawnModelInstance places a new instance of every mesh modelID
// references, all under the same localTransform, and records them as one
// model instance.
func (a *AssetManager) SpawnModelInstance(modelID ModelID, localTransform mgl32.Mat4) (uint32, error) {
	mdl, ok := a.Models.Get(modelID)
	if !ok {
		a.log.Warnf("spawn model instance: unknown model id %v", modelID)
		return 0, fmt.Errorf("swrast: spawn model instance: unknown model id")
	}

	meshInstanceIDs := make([]uint32, len(mdl.MeshIDs))
	for i, meshID := range mdl.MeshIDs {
		mesh, ok := a.Meshes.Get(meshID)
		if !ok {
			a.log.Errorf("spawn model instance: model %v references unknown mesh id %v", modelID, meshID)
			return 0, fmt.Errorf("swrast: spawn model instance: model references unknown mesh id")
		}
		meshInstanceIDs[i] = mesh.SpawnInstance(localTransform)
	}

	return mdl.SpawnInstance(meshInstanceIDs), nil
}

// ModelFromOBJPath loads path as an OBJ+MTL model, inserting any newly
// referenced texture and any mesh whose name isn't already present (a
// second load of the same file is a no-op for its meshes, matching the
// original's collision-skip behaviour), and returns the new Model's id.
// Ported from asset_manager.rs's model_from_obj_path.
func (a *AssetManager) ModelFromOBJPath(path string, triangulate, reverseWinding, flipUVY bool) (ModelID, error) {
	var zero ModelID

	obj, err := objloader.Load(path, triangulate, reverseWinding, flipUVY)
	if err != nil {
		a.log.Errorf("load model %s: %v", path, err)
		return zero, err
	}
	a.log.Infof("loaded model %s: %d mesh groups, %d textures", path, len(obj.Meshes), len(obj.Textures))

	textureIDs := make([]TextureID, len(obj.Textures))
	for i, tex := range obj.Textures {
		if id, ok := a.Textures.Lookup(tex.Name()); ok {
			textureIDs[i] = id
		} else {
			textureIDs[i] = a.Textures.Insert(tex)
		}
	}

	meshIDs := make([]MeshID, 0, len(obj.Meshes))
	for _, group := range obj.Meshes {
		if a.Meshes.ContainsName(group.Mesh.Name()) {
			continue
		}

		if group.MaterialIndex != nil {
			id := textureIDs[*group.MaterialIndex]
			group.Mesh.TextureID = &id
		}

		meshIDs = append(meshIDs, a.Meshes.Insert(group.Mesh))
	}

	name := filepath.Base(path)
	mdl := model.NewModel(name, meshIDs)
	id := a.Models.Insert(mdl)
	a.log.Debugf("registered model %s as %v with %d meshes", name, id, len(meshIDs))
	return id, nil
}
