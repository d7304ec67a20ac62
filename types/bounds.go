package types

import "math"

// An axis-aligned bounding box.
type Box struct {
	Min Vec3
	Max Vec3
}

// Create an empty (inverted) box that can be extended incrementally.
func EmptyBox() Box {
	return Box{
		Min: Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
}

// Grow box so that it includes point p.
func (b Box) ExtendPoint(p Vec3) Box {
	return Box{
		Min: MinVec3(b.Min, p),
		Max: MaxVec3(b.Max, p),
	}
}

// Grow box so that it includes box b2.
func (b Box) Union(b2 Box) Box {
	return Box{
		Min: MinVec3(b.Min, b2.Min),
		Max: MaxVec3(b.Max, b2.Max),
	}
}

// Grow box by the same margin on all sides.
func (b Box) Enlarge(margin float32) Box {
	m := Vec3{margin, margin, margin}
	return Box{
		Min: b.Min.Sub(m),
		Max: b.Max.Add(m),
	}
}

// Get box dimensions.
func (b Box) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Get box center.
func (b Box) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Check whether b fully contains b2.
func (b Box) Contains(b2 Box) bool {
	for axis := 0; axis < 3; axis++ {
		if b2.Min[axis] < b.Min[axis] || b2.Max[axis] > b.Max[axis] {
			return false
		}
	}
	return true
}
