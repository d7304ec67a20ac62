package bvh

import "github.com/yangruisxy/curvetrace/types"

// A reference to one primitive inside a geometry. The builder partitions
// slices of these; leaf encoders consume them in partition order.
type PrimRef struct {
	GeomID uint32
	PrimID uint32
	Bounds types.Box
}

// Get a composite ordering key combining geometry and primitive id. Keys
// are unique per primitive and independent of list order which makes them
// suitable for deterministic tie-breaks.
func (r PrimRef) ID64() uint64 {
	return uint64(r.GeomID)<<32 | uint64(r.PrimID)
}

// Get the primitive bound centroid.
func (r PrimRef) Center() types.Vec3 {
	return r.Bounds.Center()
}
