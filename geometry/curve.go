package geometry

import (
	"github.com/yangruisxy/curvetrace/types"
)

// A cubic Bezier tube. Control points store the centerline position in
// xyz and the tube radius in w.
type Curve struct {
	P0, P1, P2, P3 types.Vec4
}

// Get the curve start point.
func (c Curve) Begin() types.Vec3 {
	return c.P0.Vec3()
}

// Get the curve end point.
func (c Curve) End() types.Vec3 {
	return c.P3.Vec3()
}

// Evaluate the curve derivative at parameter t=0.
func (c Curve) DerivBegin() types.Vec3 {
	return c.P1.Vec3().Sub(c.P0.Vec3()).Mul(3)
}

// Get the largest control point radius.
func (c Curve) MaxRadius() float32 {
	r := c.P0[3]
	if c.P1[3] > r {
		r = c.P1[3]
	}
	if c.P2[3] > r {
		r = c.P2[3]
	}
	if c.P3[3] > r {
		r = c.P3[3]
	}
	return r
}

// Get a conservative world-space bound for the tube. The curve lies inside
// the convex hull of its control points so the control point bound enlarged
// by the largest radius always contains it.
func (c Curve) Bounds() types.Box {
	b := types.EmptyBox().
		ExtendPoint(c.P0.Vec3()).
		ExtendPoint(c.P1.Vec3()).
		ExtendPoint(c.P2.Vec3()).
		ExtendPoint(c.P3.Vec3())
	return b.Enlarge(c.MaxRadius())
}

// Evaluate the centerline position at parameter t.
func (c Curve) Eval(t float32) types.Vec3 {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return c.P0.Vec3().Mul(b0).
		Add(c.P1.Vec3().Mul(b1)).
		Add(c.P2.Vec3().Mul(b2)).
		Add(c.P3.Vec3().Mul(b3))
}
