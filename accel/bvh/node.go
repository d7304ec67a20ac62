package bvh

import "github.com/yangruisxy/curvetrace/types"

// Bvh nodes are comprised of two Vec3 and two multipurpose int32 parameters
// whose value depends on the node type:
//
// - For non-leaf nodes both are >0 and point to the L/R child nodes
// - For leaf nodes:
//   - LData is <= 0 and points to the first encoded leaf block
//   - RData is >0 and contains the count of leaf blocks
type Node struct {
	Min   types.Vec3
	LData int32

	Max   types.Vec3
	RData int32
}

// Set bounding box.
func (n *Node) SetBBox(bounds types.Box) {
	n.Min = bounds.Min
	n.Max = bounds.Max
}

// Get bounding box.
func (n *Node) BBox() types.Box {
	return types.Box{Min: n.Min, Max: n.Max}
}

// Set left and right child node indices.
func (n *Node) SetChildNodes(left, right uint32) {
	n.LData = int32(left)
	n.RData = int32(right)
}

// Get left and right child node indices.
func (n *Node) ChildNodes() (left, right uint32) {
	return uint32(n.LData), uint32(n.RData)
}

// Tag this node as a leaf pointing at blockCount encoded blocks starting
// at byte offset blockOffset inside the leaf storage arena.
func (n *Node) SetBlocks(blockOffset, blockCount uint32) {
	n.LData = -int32(blockOffset)
	n.RData = int32(blockCount)
}

// Get the encoded block offset and count for a leaf node.
func (n *Node) Blocks() (blockOffset, blockCount uint32) {
	return uint32(-n.LData), uint32(n.RData)
}

// Check whether this node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.LData <= 0
}
