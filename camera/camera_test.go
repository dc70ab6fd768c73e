package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestLookAt_IdentityAtOriginLookingPlusZ(t *testing.T) {
	view := LookAt(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0})

	point := mgl32.Vec3{1, 2, 5}
	transformed := view.Mul4x1(point.Vec4(1.0)).Vec3()

	if !closeTo(transformed, point) {
		t.Fatalf("expected identity view at origin facing +Z, got %v", transformed)
	}
}

func TestLookAt_TranslatesToCameraSpace(t *testing.T) {
	view := LookAt(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0})

	world := mgl32.Vec3{0, 0, 15}
	transformed := view.Mul4x1(world.Vec4(1.0)).Vec3()

	want := mgl32.Vec3{0, 0, 5}
	if !closeTo(transformed, want) {
		t.Fatalf("expected point 5 units ahead of camera, got %v", transformed)
	}
}

func closeTo(a, b mgl32.Vec3) bool {
	const eps = 1e-3
	d := a.Sub(b)
	return d.Len() < eps
}
