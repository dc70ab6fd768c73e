package objloader

import (
	"strings"
	"testing"
)

const triangleOBJ = `
o Triangle
v 0.0 0.0 0.0
v 1.0 0.0 0.0
v 0.0 1.0 0.0
vt 0.0 0.0
vt 1.0 0.0
vt 0.0 1.0
usemtl Checker
f 1/1 2/2 3/3
`

const quadOBJ = `
o Quad
v -1 -1 0
v 1 -1 0
v 1 1 0
v -1 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1 2/2 3/3 4/4
`

func TestParseOBJ_Triangle(t *testing.T) {
	parsed, err := parseOBJ(strings.NewReader(triangleOBJ), true, false, false)
	if err != nil {
		t.Fatalf("parseOBJ: %v", err)
	}
	if len(parsed.groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(parsed.groups))
	}
	g := parsed.groups[0]
	if g.name != "Triangle" {
		t.Fatalf("expected name Triangle, got %s", g.name)
	}
	if g.material != "Checker" {
		t.Fatalf("expected material Checker, got %s", g.material)
	}
	if len(g.vertices) != 3 || len(g.indices) != 3 {
		t.Fatalf("expected 3 vertices/3 indices, got %d/%d", len(g.vertices), len(g.indices))
	}
}

func TestParseOBJ_QuadTriangulatesToTwoTriangles(t *testing.T) {
	parsed, err := parseOBJ(strings.NewReader(quadOBJ), true, false, false)
	if err != nil {
		t.Fatalf("parseOBJ: %v", err)
	}
	g := parsed.groups[0]
	if len(g.indices) != 6 {
		t.Fatalf("expected 6 indices (2 triangles), got %d", len(g.indices))
	}
	if len(g.vertices) != 4 {
		t.Fatalf("expected 4 unique vertices, got %d", len(g.vertices))
	}
}

func TestParseOBJ_ReverseWindingSwapsFirstAndLast(t *testing.T) {
	forward, err := parseOBJ(strings.NewReader(triangleOBJ), true, false, false)
	if err != nil {
		t.Fatalf("parseOBJ: %v", err)
	}
	reversed, err := parseOBJ(strings.NewReader(triangleOBJ), true, true, false)
	if err != nil {
		t.Fatalf("parseOBJ: %v", err)
	}

	fi, ri := forward.groups[0].indices, reversed.groups[0].indices
	if fi[0] != ri[2] || fi[2] != ri[0] || fi[1] != ri[1] {
		t.Fatalf("expected first/last index swapped: forward=%v reversed=%v", fi, ri)
	}
}

func TestParseOBJ_FlipUVYInvertsVCoordinate(t *testing.T) {
	plain, err := parseOBJ(strings.NewReader(triangleOBJ), true, false, false)
	if err != nil {
		t.Fatalf("parseOBJ: %v", err)
	}
	flipped, err := parseOBJ(strings.NewReader(triangleOBJ), true, false, true)
	if err != nil {
		t.Fatalf("parseOBJ: %v", err)
	}

	for i, v := range plain.groups[0].vertices {
		want := 1.0 - v.TexCoord[1]
		got := flipped.groups[0].vertices[i].TexCoord[1]
		if got != want {
			t.Fatalf("vertex %d: expected flipped v=%v, got %v", i, want, got)
		}
	}
}

const mtlSource = `
newmtl Checker
map_Kd checker.png

newmtl Plain
Kd 1.0 1.0 1.0
`

func TestParseMTL_ExtractsDiffuseTextures(t *testing.T) {
	mats, err := parseMTL(strings.NewReader(mtlSource))
	if err != nil {
		t.Fatalf("parseMTL: %v", err)
	}
	if len(mats) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(mats))
	}
	if mats[0].name != "Checker" || mats[0].diffuseTexture != "checker.png" {
		t.Fatalf("unexpected first material: %+v", mats[0])
	}
	if mats[1].name != "Plain" || mats[1].diffuseTexture != "" {
		t.Fatalf("expected Plain material with no diffuse texture, got %+v", mats[1])
	}
}
