package model

import "github.com/nilsen/swrast/asset"

// MeshID is the handle a Model holds for each mesh it references.
type MeshID = asset.ID[*Mesh]

// Model groups an ordered list of mesh handles under one name, so a
// multi-mesh asset (e.g. an OBJ with several material groups) can be
// spawned as a single instance. Ported from model/model.rs.
type Model struct {
	name string

	MeshIDs []MeshID

	instances *asset.Pool[ModelInstance]
}

// Name implements asset.Named.
func (m *Model) Name() string { return m.name }

// NewModel builds a Model referencing meshIDs, in the order they should be
// instantiated together.
func NewModel(name string, meshIDs []MeshID) *Model {
	return &Model{
		name:      name,
		MeshIDs:   meshIDs,
		instances: asset.NewPool[ModelInstance](),
	}
}

// ModelInstance is one placement of a Model: one mesh-instance id per
// entry in Model.MeshIDs, all spawned with the same local transform.
type ModelInstance struct {
	MeshInstanceIDs []uint32
}

// SpawnInstance reserves a new model-instance id and records
// meshInstanceIDs (produced by the caller, one per Model.MeshIDs entry, via
// AssetManager.SpawnModelInstance — Model itself does not know how to
// resolve mesh handles into mesh-instance ids).
func (m *Model) SpawnInstance(meshInstanceIDs []uint32) uint32 {
	return m.instances.Insert(ModelInstance{MeshInstanceIDs: meshInstanceIDs})
}

// RemoveInstance drops instanceID, freeing it for reuse.
func (m *Model) RemoveInstance(instanceID uint32) {
	m.instances.Remove(instanceID)
}

// Instance returns a pointer to the live instance at id, or nil.
func (m *Model) Instance(id uint32) *ModelInstance { return m.instances.GetPtr(id) }

// Instances iterates every live (id, instance) pair.
func (m *Model) Instances(yield func(uint32, *ModelInstance) bool) { m.instances.All(yield) }
