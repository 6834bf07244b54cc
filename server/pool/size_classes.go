package pool

import "math/bits"

const (
	// headerSize is the per-block header holding the signed block size.
	headerSize = 4

	// MinBlockSize is the smallest block the pool hands out. Allocation
	// sizes are rounded up to a power-of-two multiple of this.
	MinBlockSize = 32
)

// minBlockShift is log2(MinBlockSize).
const minBlockShift = 5

// blockSizeFor returns the block size serving a payload of need bytes:
// the smallest power of two >= need+headerSize, floored at MinBlockSize.
func blockSizeFor(need int32) int32 {
	total := uint32(need) + headerSize
	if total <= MinBlockSize {
		return MinBlockSize
	}
	return int32(1) << bits.Len32(total-1)
}

// classFor returns the free-list index for a block size.
// Block sizes are powers of two, so this is a shift count.
func classFor(blockSize int32) int {
	return bits.Len32(uint32(blockSize)) - 1 - minBlockShift
}

// numClassesFor returns how many block classes a region of the given
// capacity needs: one per power of two from MinBlockSize up to the largest
// block that fits.
func numClassesFor(capacity int64) int {
	n := 1
	for s := int64(MinBlockSize); s*2 <= capacity; s *= 2 {
		n++
	}
	return n
}

// maxBlockFor returns the largest block size available in a region of the
// given capacity.
func maxBlockFor(capacity int64) int32 {
	return int32(MinBlockSize) << (numClassesFor(capacity) - 1)
}
