package objloader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nilsen/swrast/texture"
)

// material is a minimal MTL record: only the diffuse texture map matters
// to this renderer (no lighting model is implemented).
type material struct {
	name           string
	diffuseTexture string
}

// loadMTL parses the .mtl file at path.
func loadMTL(path string) ([]material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objloader: open mtl %s: %w", path, err)
	}
	defer f.Close()

	return parseMTL(f)
}

func parseMTL(r io.Reader) ([]material, error) {
	var materials []material

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "newmtl":
			if len(fields) > 1 {
				materials = append(materials, material{name: fields[1]})
			}
		case "map_Kd":
			if len(materials) > 0 && len(fields) > 1 {
				materials[len(materials)-1].diffuseTexture = fields[len(fields)-1]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return materials, nil
}

// loadMaterialTextures decodes every material's diffuse texture (skipping
// materials with none, and deduplicating by file path so two materials
// sharing one texture file share one Texture), returning the decoded
// textures plus a map from material name to its index within that slice.
// Ported from model.rs's load_mtls, generalised to cover materials with no
// diffuse map (the Rust source silently dropped these; a Mesh referencing
// one is left untextured here instead, which ModelFromOBJPath in the
// root package already handles via a nil MaterialIndex).
func loadMaterialTextures(materials []material, dir string) ([]*texture.Texture, map[string]int, error) {
	textures := make([]*texture.Texture, 0, len(materials))
	byPath := map[string]int{}
	materialToTexture := map[string]int{}

	for _, mat := range materials {
		if mat.diffuseTexture == "" {
			continue
		}

		path := filepath.Join(dir, mat.diffuseTexture)
		idx, ok := byPath[path]
		if !ok {
			bmp, err := loadPNG(path)
			if err != nil {
				return nil, nil, err
			}
			tex := texture.FromBitmap(bmp, mat.diffuseTexture)
			idx = len(textures)
			textures = append(textures, tex)
			byPath[path] = idx
		}

		materialToTexture[mat.name] = idx
	}

	return textures, materialToTexture, nil
}
