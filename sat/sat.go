// Package sat implements the five-axis separating-axis overlap test used
// to bin projected triangles against the screen's tile grid. Ported from
// renderer/src/sat.rs.
package sat

import "github.com/go-gl/mathgl/mgl32"

// tileAxes are the two world axes; a tile is axis-aligned so these two
// fixed axes suffice on its side of the test.
var tileAxes = [2]mgl32.Vec2{{1, 0}, {0, 1}}

// Overlap classifies a triangle's relation to a tile after SAT.
type Overlap int

const (
	// None: the triangle and tile share no area; the triangle is not
	// binned to the tile.
	None Overlap = iota
	// Partial: the triangle and tile overlap, but the triangle does not
	// fully contain the tile; the per-pixel inside test must run.
	Partial
	// Full: every tile corner lies inside the triangle; the per-pixel
	// inside test may be elided.
	Full
)

// OverlapTest classifies triangle (given its 3 points and 3 outward edge
// normals) against tile (given its 4 corner points) using 5 candidate
// separating axes: the triangle's three edge normals plus the tile's two
// axis-aligned normals.
func OverlapTest(tilePoints [4]mgl32.Vec2, trianglePoints [3]mgl32.Vec2, triangleAxes [3]mgl32.Vec2) Overlap {
	triangleContainsTile := true

	test := func(axis mgl32.Vec2) bool {
		triMin, triMax := projectPolygon(axis, trianglePoints[:])
		tileMin, tileMax := projectPolygon(axis, tilePoints[:])

		if !overlaps(triMin, triMax, tileMin, tileMax) {
			return false
		}
		triangleContainsTile = triangleContainsTile && contains(triMin, triMax, tileMin, tileMax)
		return true
	}

	for _, axis := range triangleAxes {
		if !test(axis) {
			return None
		}
	}
	for _, axis := range tileAxes {
		if !test(axis) {
			return None
		}
	}

	if triangleContainsTile {
		return Full
	}
	return Partial
}

func projectPolygon(axis mgl32.Vec2, points []mgl32.Vec2) (min, max float32) {
	min = float32(3.4e38)
	max = float32(-3.4e38)
	for _, p := range points {
		proj := p.Dot(axis)
		if proj < min {
			min = proj
		}
		if proj > max {
			max = proj
		}
	}
	return min, max
}

func overlaps(mainMin, mainMax, otherMin, otherMax float32) bool {
	return mainMax >= otherMin && otherMax >= mainMin
}

func contains(mainMin, mainMax, otherMin, otherMax float32) bool {
	return mainMin <= otherMin && mainMax >= otherMax
}
