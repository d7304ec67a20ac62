package curveleaf

// Walk the consecutive blocks of an encoded leaf, invoking fn for each
// one. buf must start at the leaf's first block, typically obtained by
// resolving a LeafRef offset against the arena the leaf was encoded into.
func WalkLeaf(buf []byte, blockCount int, fn func(Block)) {
	cursor := 0
	for i := 0; i < blockCount; i++ {
		block := BlockAt(buf[cursor:])
		fn(block)
		cursor += block.Layout().Bytes()
	}
}
