package curveleaf

import (
	"encoding/binary"
	"math"

	"github.com/yangruisxy/curvetrace/types"
)

// Basis components are quantized by multiplying with basisQuantScale and
// truncating towards zero; truncation never grows a component past its
// true magnitude so dequantized axes are never longer than the originals.
const basisQuantScale = 126.0

// Block is a typed view over the raw bytes of one encoded leaf block. It
// performs no validation; the view is only meaningful when buf was encoded
// with the same primitive count the layout was constructed from.
type Block struct {
	buf    []byte
	layout Layout
}

// Create a block view over buf. The primitive count is read from the
// count field, which every encoded block carries at offset 0.
func BlockAt(buf []byte) Block {
	return Block{buf: buf, layout: Layout{N: int(buf[0])}}
}

// Get the layout describing this block.
func (b Block) Layout() Layout {
	return b.layout
}

// Get the number of primitives encoded in this block.
func (b Block) Count() int {
	return b.layout.N
}

// Get the shared geometry id.
func (b Block) GeomID() uint32 {
	return binary.LittleEndian.Uint32(b.buf[b.layout.GeomID():])
}

// Get the id of the i-th primitive.
func (b Block) PrimID(i int) uint32 {
	return binary.LittleEndian.Uint32(b.buf[b.layout.PrimID(i):])
}

// Get the quantized orientation frame of the i-th primitive. Axis
// components are the stored signed 8-bit values, in the range [-126, 126].
func (b Block) QuantBasis(i int) types.Basis {
	var axes [3]types.Vec3
	for axis := 0; axis < 3; axis++ {
		for comp := 0; comp < 3; comp++ {
			axes[axis][comp] = float32(int8(b.buf[b.layout.BasisComp(axis, comp, i)]))
		}
	}
	return types.Basis{VX: axes[0], VY: axes[1], VZ: axes[2]}
}

// Get the dequantized (approximately unit length) orientation frame of the
// i-th primitive.
func (b Block) Basis(i int) types.Basis {
	return b.QuantBasis(i).Scale(1.0 / basisQuantScale)
}

// Get the stored rotated bound of the i-th primitive. Coordinates live in
// the quantized frame of QuantBasis applied after the shared offset/scale
// translation.
func (b Block) RotatedBounds(i int) types.Box {
	var bounds types.Box
	for axis := 0; axis < 3; axis++ {
		bounds.Min[axis] = float32(int16(binary.LittleEndian.Uint16(b.buf[b.layout.Lower(axis, i):])))
		bounds.Max[axis] = float32(int16(binary.LittleEndian.Uint16(b.buf[b.layout.Upper(axis, i):])))
	}
	return bounds
}

// Get the shared quantization offset.
func (b Block) Offset() types.Vec3 {
	ofs := b.layout.Offset()
	return types.Vec3{
		math.Float32frombits(binary.LittleEndian.Uint32(b.buf[ofs:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b.buf[ofs+4:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b.buf[ofs+8:])),
	}
}

// Get the shared quantization scale.
func (b Block) Scale() float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b.buf[b.layout.Scale():]))
}

func (b Block) setCount(n int) {
	b.buf[b.layout.Count()] = byte(n)
}

func (b Block) setGeomID(id uint32) {
	binary.LittleEndian.PutUint32(b.buf[b.layout.GeomID():], id)
}

func (b Block) setPrimID(i int, id uint32) {
	binary.LittleEndian.PutUint32(b.buf[b.layout.PrimID(i):], id)
}

func (b Block) setBasisComp(axis, comp, i int, v int8) {
	b.buf[b.layout.BasisComp(axis, comp, i)] = byte(v)
}

func (b Block) setLower(axis, i int, v int16) {
	binary.LittleEndian.PutUint16(b.buf[b.layout.Lower(axis, i):], uint16(v))
}

func (b Block) setUpper(axis, i int, v int16) {
	binary.LittleEndian.PutUint16(b.buf[b.layout.Upper(axis, i):], uint16(v))
}

func (b Block) setOffset(v types.Vec3) {
	ofs := b.layout.Offset()
	binary.LittleEndian.PutUint32(b.buf[ofs:], math.Float32bits(v[0]))
	binary.LittleEndian.PutUint32(b.buf[ofs+4:], math.Float32bits(v[1]))
	binary.LittleEndian.PutUint32(b.buf[ofs+8:], math.Float32bits(v[2]))
}

func (b Block) setScale(v float32) {
	binary.LittleEndian.PutUint32(b.buf[b.layout.Scale():], math.Float32bits(v))
}
