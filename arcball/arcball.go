// Package arcball implements a Shoemake-style arcball rotation controller:
// drag coordinates in the range [-1,1] are projected onto a unit
// hemisphere and turned into an accumulated rotation quaternion.
package arcball

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ArcBall accumulates a rotation across a sequence of drag gestures. The
// zero value is a valid ArcBall at the identity rotation.
type ArcBall struct {
	anchor   mgl32.Quat
	dragging bool
	startVec mgl32.Vec3
	current  mgl32.Quat
}

// New returns an ArcBall at the identity rotation.
func New() *ArcBall {
	return &ArcBall{anchor: mgl32.QuatIdent(), current: mgl32.QuatIdent()}
}

// BeginDrag starts a drag gesture at (x,y), coordinates in [-1,1]. Values
// outside that range are clamped.
func (a *ArcBall) BeginDrag(x, y float32) {
	a.startVec = projectToSphere(x, y)
	a.dragging = true
	a.current = a.anchor
}

// ContinueDrag updates the in-progress rotation to reflect the drag having
// moved to (x,y), without committing it. Calling ContinueDrag before
// BeginDrag is a no-op.
func (a *ArcBall) ContinueDrag(x, y float32) {
	if !a.dragging {
		return
	}
	a.current = a.anchor.Mul(rotationBetween(a.startVec, projectToSphere(x, y)))
}

// EndDrag commits the rotation reached at (x,y) and ends the gesture.
func (a *ArcBall) EndDrag(x, y float32) {
	a.ContinueDrag(x, y)
	a.anchor = a.current
	a.dragging = false
}

// Rotation returns the current accumulated rotation, including any
// in-progress drag.
func (a *ArcBall) Rotation() mgl32.Quat {
	if a.dragging {
		return a.current
	}
	return a.anchor
}

// Reset discards any accumulated rotation, returning to identity.
func (a *ArcBall) Reset() {
	a.anchor = mgl32.QuatIdent()
	a.current = mgl32.QuatIdent()
	a.dragging = false
}

// projectToSphere maps clamped [-1,1] drag coordinates onto the unit
// hemisphere facing the viewer, per the classic arcball construction: points
// inside the unit disc rise onto the sphere's front face, points outside are
// pulled onto its equator.
func projectToSphere(x, y float32) mgl32.Vec3 {
	if x < -1 {
		x = -1
	} else if x > 1 {
		x = 1
	}
	if y < -1 {
		y = -1
	} else if y > 1 {
		y = 1
	}

	d2 := x*x + y*y
	if d2 > 1 {
		scale := float32(1 / math.Sqrt(float64(d2)))
		return mgl32.Vec3{x * scale, y * scale, 0}
	}
	return mgl32.Vec3{x, y, float32(math.Sqrt(float64(1 - d2)))}
}

// rotationBetween returns the quaternion rotating the unit vector from onto
// the unit vector to.
func rotationBetween(from, to mgl32.Vec3) mgl32.Quat {
	dot := from.Dot(to)
	if dot > 0.999999 {
		return mgl32.QuatIdent()
	}
	if dot < -0.999999 {
		// from and to are opposite: any axis perpendicular to from works.
		axis := from.Cross(mgl32.Vec3{1, 0, 0})
		if axis.Len() < 1e-6 {
			axis = from.Cross(mgl32.Vec3{0, 1, 0})
		}
		return mgl32.QuatRotate(float32(math.Pi), axis.Normalize())
	}

	axis := from.Cross(to)
	angle := float32(math.Acos(float64(dot)))
	return mgl32.QuatRotate(angle, axis.Normalize())
}
