// Package camera implements the renderer's view transform: position,
// facing direction and the derived look-along view matrix. Ported from
// renderer/src/camera.rs.
package camera

import "github.com/go-gl/mathgl/mgl32"

// up is the fixed world-up axis; this renderer has no roll.
var up = mgl32.Vec3{0, 1, 0}

// Camera holds position/direction and the view matrix derived from them.
// The view matrix is cached and only recomputed when Update is called,
// mirroring the original's explicit update_view step rather than
// recomputing on every access.
type Camera struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3

	view mgl32.Mat4
}

// New builds a camera at the origin looking down +Z, matching the
// original's default.
func New() *Camera {
	c := &Camera{
		Position:  mgl32.Vec3{0, 0, 0},
		Direction: mgl32.Vec3{0, 0, 1},
	}
	c.Update()
	return c
}

// ViewTransform returns the cached view matrix.
func (c *Camera) ViewTransform() mgl32.Mat4 { return c.view }

// Update recomputes the view matrix from the current Position/Direction.
// Callers must invoke this after mutating either field.
func (c *Camera) Update() {
	c.view = LookAt(c.Position, c.Direction, up)
}

// LookAt builds a view matrix such that dir becomes +Z of camera space,
// up×dir normalized becomes +X (right), dir×right normalized becomes +Y.
// This is a left-handed look-along convention, not a look-at-target
// convention: dir is the facing direction itself, not (target - position).
// Translation is stored as the negated projection of position onto each
// basis vector. Ported bit-for-bit from camera.rs's look_at.
func LookAt(position, dir, worldUp mgl32.Vec3) mgl32.Mat4 {
	r := worldUp.Cross(dir).Normalize()
	u := dir.Cross(r).Normalize()
	d := dir

	return mgl32.Mat4{
		r[0], u[0], d[0], 0,
		r[1], u[1], d[1], 0,
		r[2], u[2], d[2], 0,
		-r.Dot(position), -u.Dot(position), -d.Dot(position), 1,
	}
}
