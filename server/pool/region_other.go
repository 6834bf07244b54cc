//go:build !unix

package pool

// mapRegion falls back to a single up-front slice allocation on platforms
// without anonymous mmap. The region is still reserved once at startup;
// Alloc/Free never touch the allocator afterwards.
func mapRegion(size int) ([]byte, func([]byte) error, error) {
	return make([]byte, size), nil, nil
}
