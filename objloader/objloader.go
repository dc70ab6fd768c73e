// Package objloader implements the ingestion boundary between the
// renderer and external asset files: a minimal Wavefront OBJ+MTL text
// parser and a PNG decode path, producing model.Mesh/texture.Texture
// values ready for insertion into an asset.Store. Ported from
// renderer/src/model/model.rs's load_obj/load_mtls/load_meshes, with the
// original's tobj dependency replaced by a hand-written parser (no OBJ
// parsing library exists anywhere in the example pack).
package objloader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/nilsen/swrast/colour"
	"github.com/nilsen/swrast/model"
	"github.com/nilsen/swrast/texture"
)

// MeshGroup pairs a parsed mesh with the index of the material (within
// Obj.Textures) it references, or nil if untextured. Mirrors the Rust
// source's Vec<(Mesh, Option<usize>)>.
type MeshGroup struct {
	Mesh          *model.Mesh
	MaterialIndex *int
}

// Obj is the result of parsing one .obj file and its referenced .mtl
// file(s): every object/group as its own mesh, plus every distinct
// diffuse texture the materials reference, decoded and mip-mapped.
type Obj struct {
	Meshes   []MeshGroup
	Textures []*texture.Texture
}

// Load parses the OBJ file at path (and any .mtl it references, resolved
// relative to path's directory). triangulate fan-triangulates faces with
// more than 3 vertices; reverseWinding swaps each triangle's first and
// last index; flipUVY maps v -> 1-v in texture coordinates (OBJ's texture
// origin is bottom-left, many image formats' is top-left).
func Load(path string, triangulate, reverseWinding, flipUVY bool) (*Obj, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objloader: open %s: %w", path, err)
	}
	defer f.Close()

	dir := filepath.Dir(path)

	parsed, err := parseOBJ(f, triangulate, reverseWinding, flipUVY)
	if err != nil {
		return nil, fmt.Errorf("objloader: parse %s: %w", path, err)
	}

	var materials []material
	for _, mtlFile := range parsed.mtlLibs {
		mats, err := loadMTL(filepath.Join(dir, mtlFile))
		if err != nil {
			return nil, err
		}
		materials = append(materials, mats...)
	}

	textures, materialToTexture, err := loadMaterialTextures(materials, dir)
	if err != nil {
		return nil, err
	}

	meshes := make([]MeshGroup, 0, len(parsed.groups))
	names := map[string]int{}
	for _, g := range parsed.groups {
		n := names[g.name]
		name := g.name
		if n > 0 {
			name = fmt.Sprintf("%s (%d)", g.name, n)
		}
		names[g.name] = n + 1

		var materialIndex *int
		if g.material != "" {
			if idx, ok := materialToTexture[g.material]; ok {
				i := idx
				materialIndex = &i
			}
		}

		mesh := model.NewMesh(name, g.vertices, g.indices, nil)
		meshes = append(meshes, MeshGroup{Mesh: mesh, MaterialIndex: materialIndex})
	}

	return &Obj{Meshes: meshes, Textures: textures}, nil
}

type objGroup struct {
	name     string
	material string
	vertices []model.Vertex
	indices  []uint32
}

type parsedOBJ struct {
	groups  []objGroup
	mtlLibs []string
}

// vertexKey is the (position, texcoord) index pair OBJ's single-index
// output collapses to one vertex, matching tobj's single_index mode.
type vertexKey struct {
	posIdx, uvIdx int
}

// parseOBJ reads a Wavefront OBJ stream. Only v/vt/f/o/g/usemtl/mtllib
// directives are understood; vertex normals (vn) are read (to keep face
// index parsing correct) and discarded, matching this renderer's
// vertex-colour-from-position convention rather than any lit shading
// model.
func parseOBJ(r io.Reader, triangulate, reverseWinding, flipUVY bool) (*parsedOBJ, error) {
	var positions []mgl32.Vec3
	var texCoords []mgl32.Vec2

	var groups []objGroup
	var mtlLibs []string

	curName := "default"
	curMaterial := ""
	vertexIndex := map[vertexKey]uint32{}
	ensureGroup := func() *objGroup {
		if len(groups) == 0 || groups[len(groups)-1].name != curName {
			groups = append(groups, objGroup{name: curName, material: curMaterial})
			vertexIndex = map[vertexKey]uint32{}
		}
		return &groups[len(groups)-1]
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			x, y, z, err := parseVec3(fields[1:])
			if err != nil {
				return nil, err
			}
			positions = append(positions, mgl32.Vec3{x, y, z})

		case "vt":
			u, v, err := parseVec2(fields[1:])
			if err != nil {
				return nil, err
			}
			if flipUVY {
				v = 1.0 - v
			}
			texCoords = append(texCoords, mgl32.Vec2{u, v})

		case "vn":
			// normals are unused; vertex colour derives from position.

		case "o", "g":
			if len(fields) > 1 {
				curName = fields[1]
			} else {
				curName = "default"
			}

		case "usemtl":
			if len(fields) > 1 {
				curMaterial = fields[1]
			}
			if len(groups) > 0 {
				groups[len(groups)-1].material = curMaterial
			}

		case "mtllib":
			mtlLibs = append(mtlLibs, fields[1:]...)

		case "f":
			g := ensureGroup()
			if err := parseFace(g, fields[1:], positions, texCoords, vertexIndex, triangulate, reverseWinding); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &parsedOBJ{groups: groups, mtlLibs: mtlLibs}, nil
}

func parseFace(g *objGroup, tokens []string, positions []mgl32.Vec3, texCoords []mgl32.Vec2, vertexIndex map[vertexKey]uint32, triangulate, reverseWinding bool) error {
	faceIndices := make([]uint32, 0, len(tokens))

	for _, tok := range tokens {
		parts := strings.Split(tok, "/")
		posIdx, err := parseOBJIndex(parts[0], len(positions))
		if err != nil {
			return err
		}

		uvIdx := -1
		if len(parts) > 1 && parts[1] != "" {
			uvIdx, err = parseOBJIndex(parts[1], len(texCoords))
			if err != nil {
				return err
			}
		}

		key := vertexKey{posIdx: posIdx, uvIdx: uvIdx}
		idx, ok := vertexIndex[key]
		if !ok {
			pos := positions[posIdx]
			var uv mgl32.Vec2
			if uvIdx >= 0 {
				uv = texCoords[uvIdx]
			}
			idx = uint32(len(g.vertices))
			g.vertices = append(g.vertices, model.Vertex{
				Position: pos,
				Colour:   colourFromPosition(pos),
				TexCoord: uv,
			})
			vertexIndex[key] = idx
		}

		faceIndices = append(faceIndices, idx)
	}

	if !triangulate || len(faceIndices) == 3 {
		if len(faceIndices) != 3 {
			return fmt.Errorf("objloader: non-triangular face with triangulate disabled (%d vertices)", len(faceIndices))
		}
		appendTriangle(g, faceIndices[0], faceIndices[1], faceIndices[2], reverseWinding)
		return nil
	}

	for i := 1; i+1 < len(faceIndices); i++ {
		appendTriangle(g, faceIndices[0], faceIndices[i], faceIndices[i+1], reverseWinding)
	}
	return nil
}

func appendTriangle(g *objGroup, a, b, c uint32, reverseWinding bool) {
	if reverseWinding {
		a, c = c, a
	}
	g.indices = append(g.indices, a, b, c)
}

// colourFromPosition mirrors load_meshes's debug convention of reusing a
// vertex's local position as its colour.
func colourFromPosition(p mgl32.Vec3) colour.RGB {
	return colour.RGB{R: p.X(), G: p.Y(), B: p.Z()}
}

func parseOBJIndex(s string, count int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("objloader: bad index %q: %w", s, err)
	}
	if n > 0 {
		return n - 1, nil
	}
	// negative indices count back from the end of the list so far.
	return count + n, nil
}

func parseVec3(fields []string) (float32, float32, float32, error) {
	if len(fields) < 3 {
		return 0, 0, 0, fmt.Errorf("objloader: expected 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return 0, 0, 0, err
	}
	y, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return 0, 0, 0, err
	}
	z, err := strconv.ParseFloat(fields[2], 32)
	if err != nil {
		return 0, 0, 0, err
	}
	return float32(x), float32(y), float32(z), nil
}

func parseVec2(fields []string) (float32, float32, error) {
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("objloader: expected 2 components, got %d", len(fields))
	}
	u, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return 0, 0, err
	}
	v, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return 0, 0, err
	}
	return float32(u), float32(v), nil
}
