package swrast

import (
	"github.com/nilsen/swrast/camera"
	"github.com/nilsen/swrast/colour"
	"github.com/nilsen/swrast/internal/rlog"
	"github.com/nilsen/swrast/lineseg"
	"github.com/nilsen/swrast/model"
	"github.com/nilsen/swrast/tile"
)

// Config holds the handful of renderer knobs a host may want to set at
// construction time, layered over the compile-time constants the way
// RendererState caches its own derived fields. Zero-value Config is valid
// and reproduces the original's defaults.
type Config struct {
	// ClearColour paints every pixel before each frame's geometry pass.
	// Zero value falls back to the original's 0x0a96ed sky blue.
	ClearColour *colour.RGB
	// HorizontalFOVDegrees is the camera's horizontal field of view.
	// Zero value falls back to 90 degrees.
	HorizontalFOVDegrees float32
	// Threads selects the tile rasterizer's worker-pool size; 0 renders
	// serially on the caller's goroutine. Defaults to THREADS (0).
	Threads int
	// Logger receives diagnostics; defaults to a no-op logger.
	Logger rlog.Logger
}

func (c Config) fovOrDefault() float32 {
	if c.HorizontalFOVDegrees == 0 {
		return 90.0
	}
	return c.HorizontalFOVDegrees
}

func (c Config) loggerOrDefault() rlog.Logger {
	if c.Logger == nil {
		return rlog.NewNop()
	}
	return c.Logger
}

// Renderer is the public entry point: construct one with New, spawn
// assets and instances through Assets(), position the camera through
// Camera(), and call Render() once per frame. Ported from
// renderer/src/renderer.rs's Renderer.
type Renderer struct {
	state *RendererState

	tiles *tile.Grid
	lines *lineseg.Renderer

	assets *AssetManager

	projected []model.ProjectedTriangle

	threads    int
	debugLines bool

	log rlog.Logger
}

// New builds a Renderer for a width x height host viewport. width/height
// are the host's reported size; the internal framebuffer is scaled by
// RES_SCALE, matching UpdateViewport's own scaling so the two stay
// consistent.
func New(width, height int, cfg Config) *Renderer {
	iw, ih := scaledViewport(width, height)

	state := newRendererState(iw, ih, cfg.fovOrDefault())
	if cfg.ClearColour != nil {
		state.clearColour = *cfg.ClearColour
	}

	tiles := tile.NewGrid(TileWidth, TileHeight)
	tiles.UpdateViewport(iw, ih)

	lines := lineseg.New(iw, ih)

	threads := cfg.Threads
	if threads == 0 {
		threads = THREADS
	}

	log := cfg.loggerOrDefault()
	log.Infof("renderer initialized: viewport %dx%d -> internal %dx%d, threads=%d", width, height, iw, ih, threads)

	return &Renderer{
		state:   state,
		tiles:   tiles,
		lines:   lines,
		assets:  newAssetManager(log),
		threads: threads,
		log:     log,
	}
}

func scaledViewport(width, height int) (int, int) {
	return roundScaled(width), roundScaled(height)
}

func roundScaled(n int) int {
	scaled := float32(n) * RES_SCALE
	return int(scaled + 0.5)
}

// InternalWidth and InternalHeight report the framebuffer's actual pixel
// dimensions, which may differ from the host viewport size by RES_SCALE.
func (r *Renderer) InternalWidth() int  { return r.state.Framebuffer.Width() }
func (r *Renderer) InternalHeight() int { return r.state.Framebuffer.Height() }

// Pixels returns the current frame's colour buffer, row-major,
// InternalWidth()*InternalHeight() long. Valid until the next Render or
// UpdateViewport call.
func (r *Renderer) Pixels() []colour.RGB { return r.state.Framebuffer.Pixels() }

// PixelsBytes reinterprets Pixels as a flat byte slice (3 float32s per
// pixel, native endianness), for handing straight to a present layer that
// expects raw bytes rather than a typed colour slice.
func (r *Renderer) PixelsBytes() []byte {
	pixels := r.state.Framebuffer.Pixels()
	return colourSliceAsBytes(pixels)
}

// Camera returns the mutable camera state; call Camera().Update() after
// changing Position/Direction.
func (r *Renderer) Camera() *camera.Camera { return r.state.Camera }

// Assets returns the mutable asset manager.
func (r *Renderer) Assets() *AssetManager { return r.assets }

// SetClearColour overrides the colour every pixel is reset to at the start
// of each Render call.
func (r *Renderer) SetClearColour(c colour.RGB) { r.state.clearColour = c }

// DebugLines toggles the wireframe overlay: when enabled, every projected
// triangle's edges are drawn in white after the main tile pass, the same
// optional pass renderer.rs leaves commented out in render().
func (r *Renderer) DebugLines(enabled bool) { r.debugLines = enabled }

// UpdateViewport resizes the renderer for a new host viewport size.
func (r *Renderer) UpdateViewport(width, height int) {
	iw, ih := scaledViewport(width, height)

	r.log.Infof("viewport resized: host %dx%d -> internal %dx%d", width, height, iw, ih)

	r.state.resize(iw, ih)
	r.tiles.UpdateViewport(iw, ih)
	r.lines.UpdateViewport(iw, ih)
}

// Render clears the framebuffer, projects every mesh instance's
// triangles, bins them into tiles and rasterizes every tile, writing into
// the colour/depth buffers the most recent Pixels()/InternalWidth() etc.
// observe. Ported from renderer.rs's render.
func (r *Renderer) Render() {
	r.state.Framebuffer.ClearColourBuffer(r.state.clearColour)
	r.state.Framebuffer.ClearDepthBuffer()

	r.projectMeshes()
	r.log.Debugf("projected %d triangles", len(r.projected))

	// Grid.Render drains each tile's triangle list as it rasterizes, and a
	// freshly built grid starts empty, so tiles are already empty here.
	r.tiles.PlaceTriangles(r.projected)
	r.log.Debugf("binned %d triangles across %d tiles", len(r.projected), r.tiles.TileCount())
	r.tiles.Render(r.state.Framebuffer.Pixels(), r.state.Framebuffer.Depth(), r.state.Framebuffer.Width(), r.assets.Textures, r.threads)

	if r.debugLines {
		r.lines.RenderTriangles(r.state.Framebuffer.Pixels(), r.projected, colour.White)
	}
}

// projectMeshes rebuilds r.projected from every mesh's live instances,
// culling instances whose view-space AABB misses the view frustum before
// paying for per-triangle clip+project work. Ported from renderer.rs's
// project_meshes.
func (r *Renderer) projectMeshes() {
	r.projected = r.projected[:0]

	viewTransform := r.state.Camera.ViewTransform()

	r.assets.Meshes.All(func(_ MeshID, mesh **model.Mesh) bool {
		m := *mesh
		m.UpdateAllViewBounds(viewTransform)

		m.Instances(func(id uint32, instance *model.MeshInstance) bool {
			if r.state.viewFrustumBounds.Intersects(instance.ViewBounds) {
				r.projected = model.ProjectInstanceTriangles(r.projected, r.state, m, instance)
			}
			return true
		})
		return true
	})
}
