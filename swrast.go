// Package swrast is a CPU-only software rasterizer: perspective-correct,
// depth-buffered, nearest-sampled texture mapping with tile-based binning
// and an optional worker-pool rasterization pass. Ported from the Rust
// crate `software-3d`'s `renderer` crate (`lib.rs` and siblings).
package swrast

// THREADS is the worker-pool size Renderer uses by default; 0 renders on
// the caller's goroutine. Ported from lib.rs's THREADS.
const THREADS = 0

// RES_SCALE scales the host window's reported size down to the internal
// framebuffer's resolution; 0.5 renders at quarter the pixel count of a
// 1:1 framebuffer. Ported from lib.rs's RES_SCALE.
const RES_SCALE = 1.0 / 2.0

// TileWidth and TileHeight are the tile grid's cell dimensions in pixels.
// Ported from lib.rs's TILE_WIDTH/TILE_HEIGHT.
const (
	TileWidth  = 8
	TileHeight = 8
)

// Near and Far bound the view frustum along its facing axis; geometry
// closer than Near is clipped, MapDepthRange is the reciprocal span used
// to normalise a linear depth into [0,1]. Ported from lib.rs's
// NEAR/FAR/MAP_DEPTH_RANGE.
const (
	Near          = 0.1
	Far           = 256.0
	MapDepthRange = 1.0 / (Far - Near)
)

// MipFactor scales the normalised-depth-to-mip-level mapping texture.
// MipLevelForDepth uses; see SPEC_FULL.md's Open Question (i) — never
// called from the hot rasterizer path today, matching the original.
const MipFactor = 14.0

// DebugTilesDefault records lib.rs's DEBUG_TILES default. tile.DebugTiles
// starts with the same value (false) but is initialised in package tile
// and does not read this constant.
const DebugTilesDefault = false
