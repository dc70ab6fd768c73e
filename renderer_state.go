package swrast

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/nilsen/swrast/camera"
	"github.com/nilsen/swrast/colour"
	"github.com/nilsen/swrast/geom"
)

// RendererState bundles the framebuffer, camera and derived per-viewport
// projection quantities a frame needs: the model package's Projector
// interface is satisfied by *RendererState. Ported from renderer.rs's
// RendererState.
type RendererState struct {
	Framebuffer *Framebuffer
	Camera      *camera.Camera

	viewFrustumBounds geom.AABB3
	hFovRad, vFovRad  float32
	focalWidth        float32
	focalHeight       float32
	clearColour       colour.RGB
}

func newRendererState(width, height int, horizFOVDegrees float32) *RendererState {
	fb := NewFramebuffer(width, height)
	cam := camera.New()

	hFov := degreesToRadians(horizFOVDegrees)
	vFov := hFov / fb.AspectRatio()
	focalW, focalH := focalDimensions(hFov, vFov, fb.HalfWidth(), fb.HalfHeight())

	return &RendererState{
		Framebuffer:       fb,
		Camera:            cam,
		viewFrustumBounds: viewFrustumBounds(hFov, vFov),
		hFovRad:           hFov,
		vFovRad:           vFov,
		focalWidth:        focalW,
		focalHeight:       focalH,
		clearColour:       colour.Hex(0x0a96ed),
	}
}

func (s *RendererState) resize(width, height int) {
	s.Framebuffer = NewFramebuffer(width, height)
	s.vFovRad = s.hFovRad / s.Framebuffer.AspectRatio()
	s.focalWidth, s.focalHeight = focalDimensions(s.hFovRad, s.vFovRad, s.Framebuffer.HalfWidth(), s.Framebuffer.HalfHeight())
	s.viewFrustumBounds = viewFrustumBounds(s.hFovRad, s.vFovRad)
}

// ViewTransform implements model.Projector.
func (s *RendererState) ViewTransform() mgl32.Mat4 { return s.Camera.ViewTransform() }

// FocalWidth implements model.Projector.
func (s *RendererState) FocalWidth() float32 { return s.focalWidth }

// FocalHeight implements model.Projector.
func (s *RendererState) FocalHeight() float32 { return s.focalHeight }

// HalfWidth implements model.Projector.
func (s *RendererState) HalfWidth() float32 { return s.Framebuffer.HalfWidth() }

// HalfHeight implements model.Projector.
func (s *RendererState) HalfHeight() float32 { return s.Framebuffer.HalfHeight() }

// Near implements model.Projector.
func (s *RendererState) Near() float32 { return Near }

// degreesToRadians converts a field-of-view in degrees to radians.
func degreesToRadians(deg float32) float32 {
	return deg * float32(math.Pi) / 180.0
}

// focalDimensions derives the camera-space-to-pixel scaling factors from a
// field of view and the half-extents of the viewport, via similar
// triangles. Ported from util.rs's focal_dimensions.
func focalDimensions(hFovRad, vFovRad, halfWidth, halfHeight float32) (focalWidth, focalHeight float32) {
	focalWidth = halfWidth / float32(math.Tan(float64(hFovRad*0.5)))
	focalHeight = halfHeight / float32(math.Tan(float64(vFovRad*0.5)))
	return focalWidth, focalHeight
}

// viewFrustumBounds returns a conservative AABB enclosing the view frustum
// out to Far, used as a coarse per-instance culling test before the
// per-triangle clip+project pass. Ported from util.rs's
// view_frustum_bounds.
func viewFrustumBounds(hFovRad, vFovRad float32) geom.AABB3 {
	hTan := float32(math.Tan(float64(hFovRad * 0.5)))
	vTan := float32(math.Tan(float64(vFovRad * 0.5)))

	hOppFar := Far * hTan
	vOppFar := Far * vTan

	nearBottomLeft := mgl32.Vec3{-hOppFar, -vOppFar, Near}
	farTopRight := mgl32.Vec3{hOppFar, vOppFar, Far}

	return geom.NewAABB3(nearBottomLeft, farTopRight)
}
