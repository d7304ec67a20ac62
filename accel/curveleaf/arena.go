package curveleaf

import "sort"

// BlockAllocator hands out non-aliasing byte regions for encoded leaf
// blocks. Returned buffers must stay valid and stable for the lifetime of
// the acceleration structure being built.
type BlockAllocator interface {
	// Allocate size bytes aligned to align. Returns the global byte
	// offset of the region plus a writable slice over it.
	Alloc(size, align int) (offset uint32, buf []byte)
}

const defaultChunkSize = 1 << 16

// Arena is a chunked bump allocator. Memory is carved out of fixed-size
// chunks that are never reallocated, so slices handed out earlier stay
// valid as the arena grows. An arena is not safe for concurrent use;
// parallel builds give each worker its own arena.
type Arena struct {
	chunkSize int
	chunks    [][]byte
	starts    []int

	// Global offset of the next free byte and of the end of the
	// current chunk.
	used     int
	chunkEnd int
}

// Create an arena carving allocations out of chunks of the given size.
// A non-positive size selects the default chunk size.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	// Round up so chunk starts stay aligned for any supported alignment.
	if rem := chunkSize % ByteAlignment; rem != 0 {
		chunkSize += ByteAlignment - rem
	}
	return &Arena{chunkSize: chunkSize}
}

// Allocate size bytes aligned to align. Allocations never span chunk
// boundaries; requests larger than the chunk size get a dedicated chunk.
func (a *Arena) Alloc(size, align int) (uint32, []byte) {
	if rem := a.used % align; rem != 0 {
		a.used += align - rem
	}

	if a.used+size > a.chunkEnd {
		chunkSize := a.chunkSize
		if size > chunkSize {
			chunkSize = size
			if rem := chunkSize % ByteAlignment; rem != 0 {
				chunkSize += ByteAlignment - rem
			}
		}
		a.chunks = append(a.chunks, make([]byte, chunkSize))
		a.starts = append(a.starts, a.chunkEnd)
		a.used = a.chunkEnd
		a.chunkEnd += chunkSize
	}

	offset := a.used
	a.used += size
	chunk := len(a.chunks) - 1
	return uint32(offset), a.chunks[chunk][offset-a.starts[chunk]:][:size]
}

// Resolve a previously returned offset back to the bytes stored there.
func (a *Arena) Resolve(offset uint32) []byte {
	chunk := sort.SearchInts(a.starts, int(offset)+1) - 1
	return a.chunks[chunk][int(offset)-a.starts[chunk]:]
}

// Get the total number of bytes handed out, padding included.
func (a *Arena) Used() int {
	return a.used
}
