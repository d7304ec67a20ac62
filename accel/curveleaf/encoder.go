package curveleaf

import (
	"github.com/chewxy/math32"

	"github.com/yangruisxy/curvetrace/accel/bvh"
	"github.com/yangruisxy/curvetrace/geometry"
	"github.com/yangruisxy/curvetrace/log"
	"github.com/yangruisxy/curvetrace/types"
)

// Opaque handle for an encoded leaf: the byte offset of its first block
// inside the allocator storage plus the number of consecutive blocks.
type LeafRef struct {
	Offset     uint32
	BlockCount uint32
}

// Encoder packs runs of curve primitive references into quantized leaf
// blocks. It is not safe for concurrent use; parallel builds give each
// worker its own encoder and allocator.
type Encoder struct {
	src    geometry.CurveSource
	alloc  BlockAllocator
	logger log.Logger

	// Stats
	leafs  int
	blocks int
	bytes  int
}

// Create an encoder that reads curve data from src and stores encoded
// blocks in the given allocator.
func NewEncoder(src geometry.CurveSource, alloc BlockAllocator) *Encoder {
	return &Encoder{
		src:    src,
		alloc:  alloc,
		logger: log.New("curveleaf"),
	}
}

// Encode the given primitive references as one leaf. All references must
// share a single geometry id; the required block storage is allocated,
// each block is filled in reference order and an opaque leaf handle is
// returned for registration with the owning BVH node.
func (e *Encoder) CreateLeaf(prims []bvh.PrimRef) LeafRef {
	primCount := len(prims)
	blockCount := Blocks(primCount)
	byteCount := Bytes(primCount)
	offset, buf := e.alloc.Alloc(byteCount, ByteAlignment)

	for cursor := 0; len(prims) > 0; {
		n := len(prims)
		if n > MaxBlockPrims {
			n = MaxBlockPrims
		}
		size := Layout{N: n}.Bytes()
		e.fillBlock(buf[cursor:cursor+size], prims[:n])
		prims = prims[n:]
		cursor += size
	}

	e.leafs++
	e.blocks += blockCount
	e.bytes += byteCount
	e.logger.Debugf("encoded leaf: %d prims, %d blocks, %d bytes", primCount, blockCount, byteCount)
	return LeafRef{Offset: offset, BlockCount: uint32(blockCount)}
}

// Get the number of leafs, blocks and bytes encoded so far.
func (e *Encoder) Stats() (leafs, blocks, bytes int) {
	return e.leafs, e.blocks, e.bytes
}

// Encode up to MaxBlockPrims primitives into buf. A shared offset/scale
// pair is derived from the union of the primitive world bounds so that any
// rotated bound magnitude fits the 16-bit range; each primitive then gets
// an independent orientation frame. Quantization only ever widens bounds:
// basis components are truncated towards zero, the bound query inflates by
// the largest quantized axis magnitude, and lower/upper bound components
// are floored/ceiled before narrowing.
func (e *Encoder) fillBlock(buf []byte, prims []bvh.PrimRef) {
	block := Block{buf: buf, layout: Layout{N: len(prims)}}
	geomID := prims[0].GeomID
	block.setCount(len(prims))
	block.setGeomID(geomID)

	bounds := types.EmptyBox()
	for _, prim := range prims {
		debugAssert(prim.GeomID == geomID, "primitives in one block must share a geometry id")
		bounds = bounds.Union(e.src.PrimBounds(prim.GeomID, prim.PrimID))
	}

	offset := bounds.Min
	side := bounds.Size()
	scale := types.Vec3{
		256.0 / (side[0] * math32.Sqrt(3)),
		256.0 / (side[1] * math32.Sqrt(3)),
		256.0 / (side[2] * math32.Sqrt(3)),
	}.MinComponent()
	block.setOffset(offset)
	block.setScale(scale)

	for i, prim := range prims {
		space := alignedSpace(e.src, prims[i:i+1], offset, scale)
		quant := types.Basis{
			VX: space.VX.Mul(basisQuantScale).Trunc(),
			VY: space.VY.Mul(basisQuantScale).Trunc(),
			VZ: space.VZ.Mul(basisQuantScale).Trunc(),
		}
		inflation := math32.Max(quant.VX.Len(), math32.Max(quant.VY.Len(), quant.VZ.Len()))
		primBounds := e.src.RotatedPrimBounds(prim.GeomID, prim.PrimID, offset, scale, inflation, quant.Transposed())

		for axis, v := range [3]types.Vec3{quant.VX, quant.VY, quant.VZ} {
			block.setBasisComp(axis, 0, i, int8(v[0]))
			block.setBasisComp(axis, 1, i, int8(v[1]))
			block.setBasisComp(axis, 2, i, int8(v[2]))

			lower := math32.Floor(primBounds.Min[axis])
			upper := math32.Ceil(primBounds.Max[axis])
			debugAssert(-32767.0 <= lower && upper <= 32767.0, "rotated bound exceeds 16-bit quantization range")
			block.setLower(axis, i, int16(clamp(lower, -32767, 32767)))
			block.setUpper(axis, i, int16(clamp(upper, -32767, 32767)))
		}
		block.setPrimID(i, prim.PrimID)
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
