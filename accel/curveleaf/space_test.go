package curveleaf

import (
	"math"
	"testing"

	"github.com/yangruisxy/curvetrace/accel/bvh"
	"github.com/yangruisxy/curvetrace/geometry"
	"github.com/yangruisxy/curvetrace/types"
)

func makeScene(t *testing.T, curves []geometry.Curve) (*geometry.Scene, uint32) {
	t.Helper()

	mesh := &geometry.CurveMesh{}
	for _, c := range curves {
		first := uint32(len(mesh.Vertices))
		mesh.Vertices = append(mesh.Vertices, c.P0, c.P1, c.P2, c.P3)
		mesh.CurveIndices = append(mesh.CurveIndices, first)
	}

	sc := geometry.NewScene()
	geomID, err := sc.AddMesh(mesh)
	if err != nil {
		t.Fatalf("expected mesh to be accepted; got error: %v", err)
	}
	return sc, geomID
}

func primRefs(sc *geometry.Scene, geomID uint32, primIDs ...uint32) []bvh.PrimRef {
	refs := make([]bvh.PrimRef, len(primIDs))
	for i, id := range primIDs {
		refs[i] = bvh.PrimRef{
			GeomID: geomID,
			PrimID: id,
			Bounds: sc.PrimBounds(geomID, id),
		}
	}
	return refs
}

func straightCurve(from, to types.Vec3, radius float32) geometry.Curve {
	step := to.Sub(from).Mul(1.0 / 3.0)
	return geometry.Curve{
		P0: from.Vec4(radius),
		P1: from.Add(step).Vec4(radius),
		P2: from.Add(step.Mul(2)).Vec4(radius),
		P3: to.Vec4(radius),
	}
}

func TestAlignedSpaceDeterminism(t *testing.T) {
	// Primitive 0 has a zero-length chord so primitive 1 must define the
	// frame no matter how the references are ordered.
	curves := []geometry.Curve{
		{
			P0: types.XYZW(0, 0, 0, 0.1),
			P1: types.XYZW(1, 2, 0, 0.1),
			P2: types.XYZW(-1, 2, 0, 0.1),
			P3: types.XYZW(0, 0, 0, 0.1),
		},
		straightCurve(types.Vec3{0, 0, 0}, types.Vec3{0, 5, 0}, 0.1),
		straightCurve(types.Vec3{1, 1, 1}, types.Vec3{8, 1, 1}, 0.1),
	}
	sc, geomID := makeScene(t, curves)

	permutations := [][]uint32{
		{0, 1, 2},
		{2, 1, 0},
		{1, 2, 0},
		{2, 0, 1},
	}

	var want types.Basis
	for i, perm := range permutations {
		got := alignedSpace(sc, primRefs(sc, geomID, perm...), types.Vec3{}, 1)
		if i == 0 {
			want = got
			continue
		}
		if got != want {
			t.Fatalf("expected identical basis for permutation %v; got %+v, want %+v", perm, got, want)
		}
	}

	// The winning curve runs along +y so the frame tangent must too.
	if want.VZ != (types.Vec3{0, 1, 0}) {
		t.Fatalf("expected frame tangent (0,1,0); got %v", want.VZ)
	}
}

func TestAlignedSpaceDegenerateFallback(t *testing.T) {
	// Every chord collapses to a point; the solver must return the
	// canonical frame around (0,0,1) rather than normalizing a
	// near-zero direction.
	curves := []geometry.Curve{
		{
			P0: types.XYZW(1, 1, 1, 0.2),
			P1: types.XYZW(2, 1, 1, 0.2),
			P2: types.XYZW(1, 2, 1, 0.2),
			P3: types.XYZW(1, 1, 1, 0.2),
		},
		{
			P0: types.XYZW(4, 4, 4, 0.2),
			P1: types.XYZW(4, 5, 4, 0.2),
			P2: types.XYZW(5, 4, 4, 0.2),
			P3: types.XYZW(4, 4, 4, 0.2),
		},
	}
	sc, geomID := makeScene(t, curves)

	got := alignedSpace(sc, primRefs(sc, geomID, 0, 1), types.Vec3{}, 1)
	want := types.Frame(types.Vec3{0, 0, 1})
	if got != want {
		t.Fatalf("expected canonical fallback frame %+v; got %+v", want, got)
	}

	for _, axis := range []types.Vec3{got.VX, got.VY, got.VZ} {
		for _, comp := range axis {
			if math.IsNaN(float64(comp)) || math.IsInf(float64(comp), 0) {
				t.Fatalf("expected finite fallback frame; got %+v", got)
			}
		}
	}
}

func TestAlignedSpaceStraightTangent(t *testing.T) {
	curves := []geometry.Curve{straightCurve(types.Vec3{0, 0, 0}, types.Vec3{10, 0, 0}, 0.1)}
	sc, geomID := makeScene(t, curves)

	got := alignedSpace(sc, primRefs(sc, geomID, 0), types.Vec3{}, 1)
	if got.VZ != (types.Vec3{1, 0, 0}) {
		t.Fatalf("expected frame tangent (1,0,0); got %v", got.VZ)
	}
}
