// Package tile implements the screen tile grid, triangle binning via the
// sat package, and the per-tile rasterizer (serial and optional worker-pool
// variants). Ported from renderer/src/tile.rs.
package tile

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/nilsen/swrast/model"
	"github.com/nilsen/swrast/sat"
)

// DebugTiles, when true, stamps the centre pixel of every rasterized tile
// cyan (Full cover) or magenta (Partial cover) after shading it, for
// visualising the binning stage. Ported from lib.rs's DEBUG_TILES.
var DebugTiles = false

// Bounds is a tile's pixel-space rectangle, half-open on max.
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

type binnedTriangle struct {
	cover     sat.Overlap
	triangle  *model.ProjectedTriangle
}

// Tile is one cell of the screen grid: its pixel bounds, its four corner
// points (for SAT) and the triangles binned to it this frame.
type Tile struct {
	Bounds Bounds
	Points [4]mgl32.Vec2

	triangles []binnedTriangle
}

// Grid is the full tile array for one viewport size.
type Grid struct {
	width, height int
	tilesX, tilesY int
	tiles          []Tile

	tileW, tileH int
}

// NewGrid builds an empty grid; call UpdateViewport before binning.
func NewGrid(tileW, tileH int) *Grid {
	return &Grid{tileW: tileW, tileH: tileH}
}

// UpdateViewport rebuilds the tile list for a width x height framebuffer.
func (g *Grid) UpdateViewport(width, height int) {
	g.width, g.height = width, height
	g.tilesX = (width + g.tileW - 1) / g.tileW
	g.tilesY = (height + g.tileH - 1) / g.tileH
	g.tiles = make([]Tile, 0, g.tilesX*g.tilesY)

	for y := 0; y < g.tilesY; y++ {
		for x := 0; x < g.tilesX; x++ {
			bounds := Bounds{
				MinX: x * g.tileW,
				MinY: y * g.tileH,
				MaxX: min(( x+1)*g.tileW, width),
				MaxY: min((y+1)*g.tileH, height),
			}
			points := [4]mgl32.Vec2{
				{float32(bounds.MinX), float32(bounds.MinY)},
				{float32(bounds.MinX), float32(bounds.MaxY)},
				{float32(bounds.MaxX), float32(bounds.MaxY)},
				{float32(bounds.MaxX), float32(bounds.MinY)},
			}
			g.tiles = append(g.tiles, Tile{Bounds: bounds, Points: points})
		}
	}
}

// TileCount reports the number of tiles in the grid.
func (g *Grid) TileCount() int { return len(g.tiles) }

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// PlaceTriangles bins every triangle in triangles against every tile it
// overlaps, tagging it Full or Partial per the SAT test. triangles must
// outlive rasterization: tiles hold pointers into it. Ported from
// tile.rs's place_triangles.
func (g *Grid) PlaceTriangles(triangles []model.ProjectedTriangle) {
	for i := range triangles {
		tri := &triangles[i]
		bounds := tri.Bounds()

		xMin := max0(toUint(bounds.Min[0]) / g.tileW)
		xMax := min((toUintCeil(bounds.Max[0])+g.tileW-1)/g.tileW, g.tilesX)
		yMin := max0(toUint(bounds.Min[1]) / g.tileH)
		yMax := min((toUintCeil(bounds.Max[1])+g.tileH-1)/g.tileH, g.tilesY)

		for y := yMin; y < yMax; y++ {
			for x := xMin; x < xMax; x++ {
				t := &g.tiles[y*g.tilesX+x]

				cover := sat.OverlapTest(t.Points, tri.Vertices.Points(), tri.SATEdges)
				switch cover {
				case sat.None:
				case sat.Partial, sat.Full:
					t.triangles = append(t.triangles, binnedTriangle{cover: cover, triangle: tri})
				}
			}
		}
	}
}

// Reset clears every tile's triangle bucket, ready for the next frame's
// PlaceTriangles call. The underlying slices are kept (not reallocated)
// to avoid churn across frames.
func (g *Grid) Reset() {
	for i := range g.tiles {
		g.tiles[i].triangles = g.tiles[i].triangles[:0]
	}
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// toUint mirrors Rust's `as usize` cast on a float: negative values
// saturate to 0.
func toUint(f float32) int {
	if f < 0 {
		return 0
	}
	return int(f)
}

func toUintCeil(f float32) int {
	return toUint(float32(math.Ceil(float64(f))))
}
