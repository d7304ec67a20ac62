package geometry

import (
	"testing"

	"github.com/yangruisxy/curvetrace/types"
)

func TestCurveBoundsContainCenterline(t *testing.T) {
	curve := Curve{
		P0: types.XYZW(0, 0, 0, 0.5),
		P1: types.XYZW(2, 4, -1, 0.4),
		P2: types.XYZW(5, -3, 2, 0.3),
		P3: types.XYZW(8, 1, 1, 0.2),
	}

	bounds := curve.Bounds()
	for s := 0; s <= 32; s++ {
		p := curve.Eval(float32(s) / 32)
		for axis := 0; axis < 3; axis++ {
			if p[axis] < bounds.Min[axis] || p[axis] > bounds.Max[axis] {
				t.Fatalf("expected centerline sample %d inside bound on axis %d; got %v outside [%v, %v]",
					s, axis, p[axis], bounds.Min[axis], bounds.Max[axis])
			}
		}
	}

	if got := curve.MaxRadius(); got != 0.5 {
		t.Fatalf("expected max radius 0.5; got %v", got)
	}
}

func TestCurveEndpoints(t *testing.T) {
	curve := Curve{
		P0: types.XYZW(1, 2, 3, 0.1),
		P1: types.XYZW(2, 2, 3, 0.1),
		P2: types.XYZW(3, 2, 3, 0.1),
		P3: types.XYZW(4, 2, 3, 0.1),
	}

	if curve.Begin() != (types.Vec3{1, 2, 3}) {
		t.Fatalf("expected begin (1,2,3); got %v", curve.Begin())
	}
	if curve.End() != (types.Vec3{4, 2, 3}) {
		t.Fatalf("expected end (4,2,3); got %v", curve.End())
	}
	if curve.DerivBegin() != (types.Vec3{3, 0, 0}) {
		t.Fatalf("expected derivative (3,0,0) at t=0; got %v", curve.DerivBegin())
	}
}

func TestSceneRejectsBadCurveIndices(t *testing.T) {
	mesh := &CurveMesh{
		Vertices:     []types.Vec4{{0, 0, 0, 0.1}, {1, 0, 0, 0.1}},
		CurveIndices: []uint32{0},
	}

	sc := NewScene()
	if _, err := sc.AddMesh(mesh); err == nil {
		t.Fatalf("expected error for curve index past the vertex list; got nil")
	}
}

func TestRotatedPrimBoundsIdentity(t *testing.T) {
	mesh := &CurveMesh{
		Vertices: []types.Vec4{
			{0, 0, 0, 0.1}, {1, 1, 0, 0.1}, {2, -1, 0, 0.1}, {3, 0, 0, 0.1},
		},
		CurveIndices: []uint32{0},
	}
	sc := NewScene()
	geomID, err := sc.AddMesh(mesh)
	if err != nil {
		t.Fatalf("expected mesh to be accepted; got error: %v", err)
	}

	identity := types.Frame(types.Vec3{0, 0, 1})
	bounds := sc.RotatedPrimBounds(geomID, 0, types.Vec3{1, 0, 0}, 2, 1, identity)

	// Control points shifted by -(1,0,0), doubled, then enlarged by
	// maxRadius * inflation * scale = 0.2.
	want := types.Box{Min: types.Vec3{-2.2, -2.2, -0.2}, Max: types.Vec3{4.2, 2.2, 0.2}}
	const eps = 1e-5
	for axis := 0; axis < 3; axis++ {
		if diff := bounds.Min[axis] - want.Min[axis]; diff < -eps || diff > eps {
			t.Fatalf("expected identity-frame bound %+v; got %+v", want, bounds)
		}
		if diff := bounds.Max[axis] - want.Max[axis]; diff < -eps || diff > eps {
			t.Fatalf("expected identity-frame bound %+v; got %+v", want, bounds)
		}
	}
}
