package curveleaf

// Invariant checks on the encode path. These guard against builder bugs
// (mixed geometry ids inside a block, bounds escaping the 16-bit window)
// and are compiled out in normal builds; flip the constant while working
// on the encoder.
const debugChecks = false

func debugAssert(cond bool, msg string) {
	if debugChecks && !cond {
		panic(msg)
	}
}
