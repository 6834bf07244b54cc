//go:build unix

package pool

import "golang.org/x/sys/unix"

// mapRegion reserves an anonymous private mapping for the pool region.
// Keeping the region off the Go heap means pool churn is invisible to the
// garbage collector.
func mapRegion(size int) ([]byte, func([]byte) error, error) {
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	return data, unix.Munmap, nil
}
