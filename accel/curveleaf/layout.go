package curveleaf

// Each block packs up to MaxBlockPrims curve primitives that share one
// geometry id. A block holding n primitives occupies exactly
// blockFixedBytes + blockPrimBytes*n bytes:
//
//	count             @ 0         1 byte
//	geomID            @ 1         4 bytes
//	primID[n]         @ 5         4 bytes each
//	per axis a=x,y,z (group stride 7n, groups start at 5+4n):
//	  basis a.x[n]    @ group+0   1 byte each
//	  basis a.y[n]    @ group+n   1 byte each
//	  basis a.z[n]    @ group+2n  1 byte each
//	  lower[n]        @ group+3n  2 bytes each
//	  upper[n]        @ group+5n  2 bytes each
//	offset            @ 5+25n     3 floats
//	scale             @ 17+25n    1 float
//
// All multi-byte fields are little-endian.
const (
	// Maximum number of primitives stored per block.
	MaxBlockPrims = 4

	// Alignment required for block storage.
	ByteAlignment = 16

	blockFixedBytes = 21
	blockPrimBytes  = 25
)

// Get the number of blocks required to encode n primitives.
func Blocks(n int) int {
	return (n + MaxBlockPrims - 1) / MaxBlockPrims
}

// Get the total byte size of the blocks encoding n primitives: full blocks
// followed by one partial block for the remainder.
func Bytes(n int) int {
	full, rem := n/MaxBlockPrims, n%MaxBlockPrims
	size := full * Layout{N: MaxBlockPrims}.Bytes()
	if rem != 0 {
		size += Layout{N: rem}.Bytes()
	}
	return size
}

// Layout maps the logical fields of a block holding N primitives to byte
// offsets from the block start. Every offset is a pure function of N; a
// layout constructed with the wrong N silently addresses garbage, so
// callers must pass the count the block was built with.
type Layout struct {
	N int
}

// Get total block size in bytes.
func (l Layout) Bytes() int {
	return blockFixedBytes + blockPrimBytes*l.N
}

// Get the offset of the primitive count.
func (l Layout) Count() int {
	return 0
}

// Get the offset of the shared geometry id.
func (l Layout) GeomID() int {
	return 1
}

// Get the offset of the i-th primitive id.
func (l Layout) PrimID(i int) int {
	return 5 + 4*i
}

// Get the offset of component comp (0..2) of the given frame axis (0..2)
// for primitive i. Components are signed 8-bit values.
func (l Layout) BasisComp(axis, comp, i int) int {
	return 5 + 4*l.N + 7*l.N*axis + comp*l.N + i
}

// Get the offset of the signed 16-bit lower bound along the given frame
// axis for primitive i.
func (l Layout) Lower(axis, i int) int {
	return 5 + 4*l.N + 7*l.N*axis + 3*l.N + 2*i
}

// Get the offset of the signed 16-bit upper bound along the given frame
// axis for primitive i.
func (l Layout) Upper(axis, i int) int {
	return 5 + 4*l.N + 7*l.N*axis + 5*l.N + 2*i
}

// Get the offset of the shared quantization offset vector.
func (l Layout) Offset() int {
	return 5 + 25*l.N
}

// Get the offset of the shared quantization scale.
func (l Layout) Scale() int {
	return 17 + 25*l.N
}
