package geometry

import (
	"fmt"

	"github.com/yangruisxy/curvetrace/types"
)

// CurveSource is the capability the leaf encoder requires from whatever
// stores curve geometry. Given a (geomID, primID) pair it must hand back
// the curve control points, the curve's world-space bound and a bound for
// the curve under an affine map into a quantized local frame.
type CurveSource interface {
	// Get the control points for a curve.
	Curve(geomID, primID uint32) Curve

	// Get the axis-aligned world-space bound for a curve.
	PrimBounds(geomID, primID uint32) types.Box

	// Get a conservative bound for the curve with each control point
	// translated by -offset, multiplied by scale and rotated into the
	// given frame. The bound is enlarged by the largest control point
	// radius times inflation*scale so that it stays conservative when
	// the frame axes are not exactly unit length.
	RotatedPrimBounds(geomID, primID uint32, offset types.Vec3, scale, inflation float32, rotation types.Basis) types.Box
}

// A set of cubic Bezier tubes sharing one vertex pool. CurveIndices holds
// the first control point index for each curve; control points for curve i
// are the four consecutive vertices starting there.
type CurveMesh struct {
	Vertices     []types.Vec4
	CurveIndices []uint32
}

// Get the number of curves in this mesh.
func (m *CurveMesh) CurveCount() int {
	return len(m.CurveIndices)
}

// Get the control points for a curve.
func (m *CurveMesh) Curve(primID uint32) Curve {
	v := m.CurveIndices[primID]
	return Curve{
		P0: m.Vertices[v+0],
		P1: m.Vertices[v+1],
		P2: m.Vertices[v+2],
		P3: m.Vertices[v+3],
	}
}

// A scene groups curve meshes under stable geometry ids and implements the
// CurveSource capability consumed by the acceleration structure builder.
type Scene struct {
	meshes []*CurveMesh
}

// Create an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Append a mesh to the scene and return its assigned geometry id.
func (s *Scene) AddMesh(mesh *CurveMesh) (uint32, error) {
	for _, idx := range mesh.CurveIndices {
		if int(idx)+4 > len(mesh.Vertices) {
			return 0, fmt.Errorf("mesh curve references vertex range [%d, %d) outside of vertex list with length %d", idx, idx+4, len(mesh.Vertices))
		}
	}

	s.meshes = append(s.meshes, mesh)
	return uint32(len(s.meshes) - 1), nil
}

// Get a mesh by geometry id.
func (s *Scene) Mesh(geomID uint32) *CurveMesh {
	return s.meshes[geomID]
}

// Get the number of meshes in the scene.
func (s *Scene) MeshCount() int {
	return len(s.meshes)
}

// Get the control points for a curve.
func (s *Scene) Curve(geomID, primID uint32) Curve {
	return s.meshes[geomID].Curve(primID)
}

// Get the axis-aligned world-space bound for a curve.
func (s *Scene) PrimBounds(geomID, primID uint32) types.Box {
	return s.meshes[geomID].Curve(primID).Bounds()
}

// Get a conservative bound for a curve mapped into a quantized local frame.
// All four control points are transformed and the bound of the transformed
// points is enlarged by maxRadius * inflation * scale.
func (s *Scene) RotatedPrimBounds(geomID, primID uint32, offset types.Vec3, scale, inflation float32, rotation types.Basis) types.Box {
	curve := s.meshes[geomID].Curve(primID)

	bounds := types.EmptyBox().
		ExtendPoint(rotation.XfmVector(curve.P0.Vec3().Sub(offset).Mul(scale))).
		ExtendPoint(rotation.XfmVector(curve.P1.Vec3().Sub(offset).Mul(scale))).
		ExtendPoint(rotation.XfmVector(curve.P2.Vec3().Sub(offset).Mul(scale))).
		ExtendPoint(rotation.XfmVector(curve.P3.Vec3().Sub(offset).Mul(scale)))

	return bounds.Enlarge(curve.MaxRadius() * inflation * scale)
}
