//go:build unix

package region

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// New maps size bytes of anonymous, zero-filled memory for use as an
// allocator region. Unlike mmfile's file-backed mapping, there is nothing
// to open or stat here — just a fixed-size private mapping with no backing
// file.
func New(size int) (Region, error) {
	if size <= 0 {
		return Region{}, fmt.Errorf("region: size must be positive, got %d", size)
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return Region{}, fmt.Errorf("region: mmap failed: %w", err)
	}
	closed := false
	closeFn := func() error {
		if closed {
			return nil
		}
		closed = true
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			return nil
		}
		return err
	}
	return Region{Bytes: data, Close: closeFn}, nil
}
