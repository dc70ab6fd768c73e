package model

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/nilsen/swrast/asset"
	"github.com/nilsen/swrast/geom"
	"github.com/nilsen/swrast/texture"
)

// TextureID is the handle a Mesh's texture slot holds, nil meaning
// untextured. Defined here (rather than in package texture) so texture
// stays free of any dependency on asset's generic machinery beyond Named.
type TextureID = asset.ID[*texture.Texture]

// Mesh is indexed vertex data shared by every instance spawned from it:
// positions/colours/uvs, a triangle index list, an optional texture and
// the local-space AABB derived from its vertices at construction. Ported
// from model/mesh.rs.
type Mesh struct {
	name string

	Vertices  []Vertex
	Indices   []uint32
	TextureID *TextureID

	localBounds geom.AABB3

	instances *asset.Pool[MeshInstance]
}

// Name implements asset.Named.
func (m *Mesh) Name() string { return m.name }

// NewMesh builds a Mesh, deriving its local-space AABB from vertices.
// indices must have a length that is a multiple of 3, each entry less
// than len(vertices) — a construction-time contract, not checked here.
func NewMesh(name string, vertices []Vertex, indices []uint32, textureID *TextureID) *Mesh {
	positions := make([]mgl32.Vec3, len(vertices))
	for i, v := range vertices {
		positions[i] = v.Position
	}

	return &Mesh{
		name:        name,
		Vertices:    vertices,
		Indices:     indices,
		TextureID:   textureID,
		localBounds: geom.FromPoints3(positions),
		instances:   asset.NewPool[MeshInstance](),
	}
}

// MeshInstance is one placement of a Mesh in world space: its vertices'
// world positions (recomputed whenever the local transform changes) plus
// world- and view-space AABBs. Ported from model/mesh.rs's MeshInstance.
type MeshInstance struct {
	WorldPositions []mgl32.Vec3
	WorldBounds    geom.AABB3
	ViewBounds     geom.AABB3
}

// SpawnInstance places a new instance of the mesh under localTransform,
// returning its instance id.
func (m *Mesh) SpawnInstance(localTransform mgl32.Mat4) uint32 {
	worldBounds := geom.TransformConservative(m.localBounds, localTransform)

	worldPositions := make([]mgl32.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		worldPositions[i] = TransformPoint(v.Position, localTransform)
	}

	return m.instances.Insert(MeshInstance{
		WorldPositions: worldPositions,
		WorldBounds:    worldBounds,
		ViewBounds:     worldBounds,
	})
}

// RemoveInstance drops instanceID, freeing it for reuse by a later
// SpawnInstance.
func (m *Mesh) RemoveInstance(instanceID uint32) {
	m.instances.Remove(instanceID)
}

// UpdateInstanceWorldSpace recomputes instanceID's world positions and
// world AABB under a new local transform.
func (m *Mesh) UpdateInstanceWorldSpace(instanceID uint32, localTransform mgl32.Mat4) {
	instance := m.instances.GetPtr(instanceID)
	if instance == nil {
		return
	}

	instance.WorldBounds = geom.TransformConservative(m.localBounds, localTransform)
	for i, v := range m.Vertices {
		instance.WorldPositions[i] = TransformPoint(v.Position, localTransform)
	}
}

// UpdateAllViewBounds re-derives every instance's view-space AABB from its
// world AABB under the current view transform. Called once per frame,
// before culling, for every mesh with at least one instance.
func (m *Mesh) UpdateAllViewBounds(viewTransform mgl32.Mat4) {
	m.instances.All(func(_ uint32, inst *MeshInstance) bool {
		inst.ViewBounds = geom.TransformConservative(inst.WorldBounds, viewTransform)
		return true
	})
}

// Instance returns a pointer to the live instance at id, or nil.
func (m *Mesh) Instance(id uint32) *MeshInstance { return m.instances.GetPtr(id) }

// Instances iterates every live (id, instance) pair.
func (m *Mesh) Instances(yield func(uint32, *MeshInstance) bool) { m.instances.All(yield) }

// InstanceCount reports how many live instances the mesh has.
func (m *Mesh) InstanceCount() int { return m.instances.Len() }
