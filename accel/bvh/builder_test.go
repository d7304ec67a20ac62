package bvh

import (
	"testing"

	"github.com/yangruisxy/curvetrace/types"
)

func TestLeafCallback(t *testing.T) {
	type primSpec struct {
		min types.Vec3
		max types.Vec3
	}

	primSpecs := []primSpec{
		{types.Vec3{-2, 0, -2}, types.Vec3{-1, 1, -1}},
		{types.Vec3{1, 0, -2}, types.Vec3{2, 1, -1}},
		{types.Vec3{-2, 0, 1}, types.Vec3{-1, 1, 2}},
		{types.Vec3{1, 0, 1}, types.Vec3{2, 1, 2}},
	}

	workList := make([]PrimRef, len(primSpecs))
	for idx, ps := range primSpecs {
		workList[idx] = PrimRef{
			GeomID: 0,
			PrimID: uint32(idx),
			Bounds: types.Box{Min: ps.min, Max: ps.max},
		}
	}

	var cbCount = 0
	var expItemListCount = 0
	cb := func(leaf *Node, prims []PrimRef) {
		cbCount++
		if len(prims) != expItemListCount {
			t.Fatalf("expected leaf callback to be called with %d items; got %d", expItemListCount, len(prims))
		}
	}

	var expCount = 0

	// Partition each item in a single leaf
	cbCount = 0
	expItemListCount = 1
	treeNodes := Build(workList, 1, cb, SurfaceAreaHeuristic)

	expCount = 4
	if cbCount != expCount {
		t.Fatalf("expected leaf callback to be called %d times; called %d", expCount, cbCount)
	}
	expCount = 7
	if len(treeNodes) != expCount {
		t.Fatalf("expected bvh tree to have %d nodes; got %d", expCount, len(treeNodes))
	}

	// Partition two items in a single leaf
	cbCount = 0
	expItemListCount = 2
	treeNodes = Build(workList, 2, cb, SurfaceAreaHeuristic)

	expCount = 2
	if cbCount != expCount {
		t.Fatalf("expected leaf callback to be called %d times; called %d", expCount, cbCount)
	}
	expCount = 3
	if len(treeNodes) != expCount {
		t.Fatalf("expected bvh tree to have %d nodes; got %d", expCount, len(treeNodes))
	}
}

func TestNodeBlockEncoding(t *testing.T) {
	var node Node
	node.SetBlocks(4096, 3)

	if !node.IsLeaf() {
		t.Fatalf("expected node with block data to be a leaf")
	}

	offset, count := node.Blocks()
	if offset != 4096 || count != 3 {
		t.Fatalf("expected block offset/count 4096/3; got %d/%d", offset, count)
	}

	node.SetChildNodes(1, 2)
	if node.IsLeaf() {
		t.Fatalf("expected node with child indices to not be a leaf")
	}
}

func TestPrimRefID64(t *testing.T) {
	a := PrimRef{GeomID: 1, PrimID: 0}
	b := PrimRef{GeomID: 0, PrimID: 0xffffffff}

	if a.ID64() <= b.ID64() {
		t.Fatalf("expected geomID to dominate the composite key; got %d <= %d", a.ID64(), b.ID64())
	}
	if b.ID64() != 0xffffffff {
		t.Fatalf("expected composite key 0xffffffff; got %#x", b.ID64())
	}
}
