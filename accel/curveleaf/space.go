package curveleaf

import (
	"math"

	"github.com/yangruisxy/curvetrace/accel/bvh"
	"github.com/yangruisxy/curvetrace/geometry"
	"github.com/yangruisxy/curvetrace/types"
)

// Curves whose squared chord (or secondary axis) length falls below this
// threshold are treated as directionless.
const degenerateSqrLen = 1e-18

// Derive an orthonormal frame that tightens the bound of the given curves.
// The frame tangent follows the chord of the qualifying curve with the
// smallest composite id, evaluated after applying the shared offset/scale;
// picking the minimum id makes the result independent of the order the
// references are listed in. When every chord is degenerate a canonical
// frame around the default (0,0,1) axis is returned instead.
func alignedSpace(src geometry.CurveSource, prims []bvh.PrimRef, offset types.Vec3, scale float32) types.Basis {
	axisz := types.Vec3{0, 0, 1}
	axisy := types.Vec3{0, 1, 0}
	bestID := uint64(math.MaxUint64)

	for _, prim := range prims {
		if prim.ID64() >= bestID {
			continue
		}
		curve := src.Curve(prim.GeomID, prim.PrimID)
		p0 := curve.Begin().Sub(offset).Mul(scale)
		p3 := curve.End().Sub(offset).Mul(scale)
		chord := p3.Sub(p0)
		if chord.SqrLen() > degenerateSqrLen {
			axisz = chord.Normalize()
			axisy = axisz.Cross(curve.DerivBegin().Mul(scale))
			bestID = prim.ID64()
		}
	}

	if axisy.SqrLen() > degenerateSqrLen {
		axisy = axisy.Normalize()
		axisx := axisy.Cross(axisz).Normalize()
		return types.Basis{VX: axisx, VY: axisy, VZ: axisz}
	}
	return types.Frame(axisz)
}
