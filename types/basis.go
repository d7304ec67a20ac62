package types

// An orthonormal 3-axis local frame stored as row vectors.
type Basis struct {
	VX Vec3
	VY Vec3
	VZ Vec3
}

// Transform v into world space: v[0]*VX + v[1]*VY + v[2]*VZ.
func (b Basis) XfmVector(v Vec3) Vec3 {
	return b.VX.Mul(v[0]).Add(b.VY.Mul(v[1])).Add(b.VZ.Mul(v[2]))
}

// Get the transposed basis. For an orthonormal basis this is also the
// inverse, mapping world-space vectors into the local frame.
func (b Basis) Transposed() Basis {
	return Basis{
		VX: Vec3{b.VX[0], b.VY[0], b.VZ[0]},
		VY: Vec3{b.VX[1], b.VY[1], b.VZ[1]},
		VZ: Vec3{b.VX[2], b.VY[2], b.VZ[2]},
	}
}

// Scale all three axes by s.
func (b Basis) Scale(s float32) Basis {
	return Basis{
		VX: b.VX.Mul(s),
		VY: b.VY.Mul(s),
		VZ: b.VZ.Mul(s),
	}
}

// Construct a right-handed orthonormal frame whose third axis is the given
// (unit) direction. The remaining two axes are picked deterministically by
// crossing against whichever cardinal axis is less parallel to z.
func Frame(z Vec3) Basis {
	dx0 := Vec3{1, 0, 0}.Cross(z)
	dx1 := Vec3{0, 1, 0}.Cross(z)
	dx := dx1
	if dx0.SqrLen() > dx1.SqrLen() {
		dx = dx0
	}
	dx = dx.Normalize()
	dy := z.Cross(dx).Normalize()
	return Basis{VX: dx, VY: dy, VZ: z}
}
